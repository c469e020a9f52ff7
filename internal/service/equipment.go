package service

import (
	"context"
	"strings"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/logger"
	"church-inventory-backend/internal/repository"
)

type equipmentService struct {
	equipRepo repository.EquipmentRepository
}

func NewEquipmentService(equipRepo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{equipRepo: equipRepo}
}

func (s *equipmentService) Create(ctx context.Context, eq *domain.Equipment) error {
	eq.Name = strings.TrimSpace(eq.Name)
	if eq.Name == "" {
		return domain.Validationf("name", "is required")
	}
	if eq.Category == "" {
		return domain.Validationf("category", "is required")
	}
	if !eq.Category.Valid() {
		return domain.Validationf("category", "unknown category %q", eq.Category)
	}
	eq.Status = domain.EquipmentStatusAvailable
	if err := s.equipRepo.Create(ctx, eq); err != nil {
		return err
	}
	logger.InfoContext(ctx, "equipment added", "id", eq.ID, "name", eq.Name, "category", eq.Category)
	return nil
}

func (s *equipmentService) Get(ctx context.Context, id int64) (*domain.Equipment, error) {
	return s.equipRepo.GetByID(ctx, id)
}

func (s *equipmentService) Update(ctx context.Context, id int64, updates EquipmentUpdate) (*domain.Equipment, error) {
	eq, err := s.equipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updates.Name != nil {
		name := strings.TrimSpace(*updates.Name)
		if name == "" {
			return nil, domain.Validationf("name", "is required")
		}
		eq.Name = name
	}
	if updates.Category != nil {
		if !updates.Category.Valid() {
			return nil, domain.Validationf("category", "unknown category %q", *updates.Category)
		}
		eq.Category = *updates.Category
	}
	if updates.Model != nil {
		eq.Model = *updates.Model
	}
	if updates.SerialNumber != nil {
		eq.SerialNumber = *updates.SerialNumber
	}
	if updates.Description != nil {
		eq.Description = *updates.Description
	}
	if updates.Location != nil {
		eq.Location = *updates.Location
	}
	if updates.PurchaseDate != nil {
		eq.PurchaseDate = updates.PurchaseDate
	}
	if updates.PurchasePrice != nil {
		eq.PurchasePrice = updates.PurchasePrice
	}
	if err := s.equipRepo.Update(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) Delete(ctx context.Context, id int64) error {
	if err := s.equipRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoContext(ctx, "equipment deleted", "id", id)
	return nil
}

func (s *equipmentService) SetMaintenance(ctx context.Context, id int64, on bool) (*domain.Equipment, error) {
	status := domain.EquipmentStatusAvailable
	if on {
		status = domain.EquipmentStatusMaintenance
	}
	return s.equipRepo.SetStatus(ctx, id, status)
}

func (s *equipmentService) ToggleMaintenance(ctx context.Context, id int64) (*domain.Equipment, error) {
	eq, err := s.equipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.SetMaintenance(ctx, id, eq.Status != domain.EquipmentStatusMaintenance)
}

func (s *equipmentService) List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	return s.equipRepo.List(ctx, filter)
}

func (s *equipmentService) Stats(ctx context.Context) (*domain.EquipmentStats, error) {
	return s.equipRepo.Stats(ctx)
}
