package service

import (
	"context"
	"time"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEquipmentRepo) SetStatus(ctx context.Context, id int64, status domain.EquipmentStatus) (*domain.Equipment, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Stats(ctx context.Context) (*domain.EquipmentStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipmentStats), args.Error(1)
}

// MockCheckoutRepo
type MockCheckoutRepo struct {
	mock.Mock
}

func (m *MockCheckoutRepo) Checkout(ctx context.Context, co *domain.Checkout) error {
	args := m.Called(ctx, co)
	return args.Error(0)
}
func (m *MockCheckoutRepo) Checkin(ctx context.Context, equipmentID int64, checkedInBy string, conditionIn domain.Condition, notes string, newStatus domain.EquipmentStatus, at time.Time) (*domain.Checkout, error) {
	args := m.Called(ctx, equipmentID, checkedInBy, conditionIn, notes, newStatus, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkout), args.Error(1)
}
func (m *MockCheckoutRepo) GetOpenByEquipment(ctx context.Context, equipmentID int64) (*domain.Checkout, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkout), args.Error(1)
}
func (m *MockCheckoutRepo) ListByEquipment(ctx context.Context, equipmentID int64) ([]domain.Checkout, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Checkout), args.Error(1)
}
func (m *MockCheckoutRepo) ListOpen(ctx context.Context) ([]domain.Checkout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Checkout), args.Error(1)
}
func (m *MockCheckoutRepo) ListAll(ctx context.Context) ([]domain.Checkout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Checkout), args.Error(1)
}
func (m *MockCheckoutRepo) ListRecent(ctx context.Context, limit int) ([]domain.Checkout, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Checkout), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockVerificationRepo
type MockVerificationRepo struct {
	mock.Mock
}

func (m *MockVerificationRepo) Issue(ctx context.Context, code *domain.VerificationCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}
func (m *MockVerificationRepo) Consume(ctx context.Context, userID int64, kind domain.CodeKind, code string, at time.Time) error {
	args := m.Called(ctx, userID, kind, code, at)
	return args.Error(0)
}

// MockVerificationService
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) Issue(ctx context.Context, userID int64, kind domain.CodeKind, purpose domain.CodePurpose, ttl time.Duration) (string, error) {
	args := m.Called(ctx, userID, kind, purpose, ttl)
	return args.String(0), args.Error(1)
}
func (m *MockVerificationService) Redeem(ctx context.Context, userID int64, kind domain.CodeKind, code string) error {
	args := m.Called(ctx, userID, kind, code)
	return args.Error(0)
}

// MockEmailSender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendVerificationCode(ctx context.Context, email, code string, ttl time.Duration) error {
	args := m.Called(ctx, email, code, ttl)
	return args.Error(0)
}
func (m *MockEmailSender) SendOverdueSummary(ctx context.Context, email string, overdue []domain.Checkout) error {
	args := m.Called(ctx, email, overdue)
	return args.Error(0)
}

// MockSMSSender
type MockSMSSender struct {
	mock.Mock
}

func (m *MockSMSSender) SendVerificationCode(ctx context.Context, phone, code string, ttl time.Duration) error {
	args := m.Called(ctx, phone, code, ttl)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Generate(userID int64, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) Validate(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
