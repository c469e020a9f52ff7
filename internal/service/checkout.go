package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/logger"
	"church-inventory-backend/internal/repository"
)

type checkoutService struct {
	checkoutRepo repository.CheckoutRepository
	equipRepo    repository.EquipmentRepository
	now          func() time.Time
}

func NewCheckoutService(checkoutRepo repository.CheckoutRepository, equipRepo repository.EquipmentRepository) CheckoutService {
	return &checkoutService{
		checkoutRepo: checkoutRepo,
		equipRepo:    equipRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *checkoutService) Checkout(ctx context.Context, equipmentID int64, req CheckoutRequest) (*domain.Checkout, error) {
	req.CheckedOutBy = strings.TrimSpace(req.CheckedOutBy)
	if req.CheckedOutBy == "" {
		return nil, domain.Validationf("checked_out_by", "is required")
	}
	if req.ConditionOut == "" {
		req.ConditionOut = domain.ConditionGood
	}
	if !req.ConditionOut.Valid() {
		return nil, domain.Validationf("condition_out", "must be good, fair or poor")
	}

	co := &domain.Checkout{
		EquipmentID:        equipmentID,
		CheckedOutBy:       req.CheckedOutBy,
		CheckedOutAt:       s.now(),
		ExpectedReturnDate: req.ExpectedReturnDate,
		ConditionOut:       req.ConditionOut,
		Notes:              req.Notes,
	}
	if err := s.checkoutRepo.Checkout(ctx, co); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "equipment checked out",
		"equipment_id", equipmentID, "checked_out_by", co.CheckedOutBy, "checkout_id", co.ID)
	return co, nil
}

func (s *checkoutService) Checkin(ctx context.Context, equipmentID int64, req CheckinRequest) (*domain.Checkout, error) {
	req.CheckedInBy = strings.TrimSpace(req.CheckedInBy)
	if req.CheckedInBy == "" {
		return nil, domain.Validationf("checked_in_by", "is required")
	}
	if !req.ConditionIn.Valid() {
		return nil, domain.Validationf("condition_in", "must be good, fair or poor")
	}

	// equipment returned in poor shape goes straight to maintenance
	newStatus := domain.EquipmentStatusAvailable
	if req.ConditionIn == domain.ConditionPoor {
		newStatus = domain.EquipmentStatusMaintenance
	}

	co, err := s.checkoutRepo.Checkin(ctx, equipmentID, req.CheckedInBy, req.ConditionIn, req.Notes, newStatus, s.now())
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "equipment checked in",
		"equipment_id", equipmentID, "checked_in_by", req.CheckedInBy, "condition", req.ConditionIn, "new_status", newStatus)
	return co, nil
}

func (s *checkoutService) ActiveCheckout(ctx context.Context, equipmentID int64) (*domain.Checkout, error) {
	return s.checkoutRepo.GetOpenByEquipment(ctx, equipmentID)
}

func (s *checkoutService) History(ctx context.Context, equipmentID int64) ([]domain.Checkout, error) {
	if _, err := s.equipRepo.GetByID(ctx, equipmentID); err != nil {
		return nil, err
	}
	return s.checkoutRepo.ListByEquipment(ctx, equipmentID)
}

func (s *checkoutService) RecentActivity(ctx context.Context, limit int) ([]domain.Checkout, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.checkoutRepo.ListRecent(ctx, limit)
}

func (s *checkoutService) ListOverdue(ctx context.Context) ([]domain.Checkout, error) {
	open, err := s.checkoutRepo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	var overdue []domain.Checkout
	for _, co := range open {
		if co.Overdue(now) {
			overdue = append(overdue, co)
		}
	}
	return overdue, nil
}

func (s *checkoutService) UsageReport(ctx context.Context) (*domain.UsageReport, error) {
	equipment, err := s.equipRepo.List(ctx, domain.EquipmentFilter{})
	if err != nil {
		return nil, err
	}
	history, err := s.checkoutRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	byEquipment := make(map[int64]*domain.EquipmentUsage, len(equipment))
	report := &domain.UsageReport{Monthly: map[string]int64{}}
	for i := range equipment {
		byEquipment[equipment[i].ID] = &domain.EquipmentUsage{Equipment: equipment[i]}
	}
	for i := range history {
		co := history[i]
		report.Monthly[co.CheckedOutAt.Format("2006-01")]++
		usage, ok := byEquipment[co.EquipmentID]
		if !ok {
			continue
		}
		usage.TotalCheckouts++
		if co.Open() {
			usage.ActiveCheckout = &history[i]
		} else {
			usage.TotalUsageDays += co.DurationDays(now)
		}
	}

	for _, usage := range byEquipment {
		report.Equipment = append(report.Equipment, *usage)
	}
	sort.Slice(report.Equipment, func(i, j int) bool {
		a, b := report.Equipment[i], report.Equipment[j]
		if a.TotalCheckouts != b.TotalCheckouts {
			return a.TotalCheckouts > b.TotalCheckouts
		}
		return a.Equipment.Name < b.Equipment.Name
	})
	return report, nil
}
