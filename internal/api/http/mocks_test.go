package http

import (
	"context"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockEquipmentService
type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentService) Get(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) Update(ctx context.Context, id int64, updates service.EquipmentUpdate) (*domain.Equipment, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEquipmentService) SetMaintenance(ctx context.Context, id int64, on bool) (*domain.Equipment, error) {
	args := m.Called(ctx, id, on)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) ToggleMaintenance(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) Stats(ctx context.Context) (*domain.EquipmentStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipmentStats), args.Error(1)
}

// MockCheckoutService
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, equipmentID int64, req service.CheckoutRequest) (*domain.Checkout, error) {
	args := m.Called(ctx, equipmentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkout), args.Error(1)
}
func (m *MockCheckoutService) Checkin(ctx context.Context, equipmentID int64, req service.CheckinRequest) (*domain.Checkout, error) {
	args := m.Called(ctx, equipmentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkout), args.Error(1)
}
func (m *MockCheckoutService) ActiveCheckout(ctx context.Context, equipmentID int64) (*domain.Checkout, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkout), args.Error(1)
}
func (m *MockCheckoutService) History(ctx context.Context, equipmentID int64) ([]domain.Checkout, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Checkout), args.Error(1)
}
func (m *MockCheckoutService) RecentActivity(ctx context.Context, limit int) ([]domain.Checkout, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Checkout), args.Error(1)
}
func (m *MockCheckoutService) ListOverdue(ctx context.Context) ([]domain.Checkout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Checkout), args.Error(1)
}
func (m *MockCheckoutService) UsageReport(ctx context.Context) (*domain.UsageReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UsageReport), args.Error(1)
}
