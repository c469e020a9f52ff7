package service

import (
	"context"
	"time"

	"church-inventory-backend/internal/domain"
)

type EquipmentService interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	Get(ctx context.Context, id int64) (*domain.Equipment, error)
	Update(ctx context.Context, id int64, updates EquipmentUpdate) (*domain.Equipment, error)
	Delete(ctx context.Context, id int64) error
	SetMaintenance(ctx context.Context, id int64, on bool) (*domain.Equipment, error)
	ToggleMaintenance(ctx context.Context, id int64) (*domain.Equipment, error)
	List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error)
	Stats(ctx context.Context) (*domain.EquipmentStats, error)
}

// EquipmentUpdate carries the mutable equipment fields; nil pointers are
// left untouched. Status is deliberately absent: only the ledger and
// maintenance transitions move it.
type EquipmentUpdate struct {
	Name          *string
	Category      *domain.EquipmentCategory
	Model         *string
	SerialNumber  *string
	Description   *string
	Location      *string
	PurchaseDate  *time.Time
	PurchasePrice *float64
}

type CheckoutService interface {
	Checkout(ctx context.Context, equipmentID int64, req CheckoutRequest) (*domain.Checkout, error)
	Checkin(ctx context.Context, equipmentID int64, req CheckinRequest) (*domain.Checkout, error)
	ActiveCheckout(ctx context.Context, equipmentID int64) (*domain.Checkout, error)
	History(ctx context.Context, equipmentID int64) ([]domain.Checkout, error)
	RecentActivity(ctx context.Context, limit int) ([]domain.Checkout, error)
	ListOverdue(ctx context.Context) ([]domain.Checkout, error)
	UsageReport(ctx context.Context) (*domain.UsageReport, error)
}

type CheckoutRequest struct {
	CheckedOutBy       string
	ExpectedReturnDate *time.Time
	ConditionOut       domain.Condition
	Notes              string
}

type CheckinRequest struct {
	CheckedInBy string
	ConditionIn domain.Condition
	Notes       string
}

type VerificationService interface {
	// Issue invalidates every live code of the same (user, kind) and
	// returns the raw value of the fresh one for the delivery collaborator.
	Issue(ctx context.Context, userID int64, kind domain.CodeKind, purpose domain.CodePurpose, ttl time.Duration) (string, error)
	Redeem(ctx context.Context, userID int64, kind domain.CodeKind, code string) error
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Verify(ctx context.Context, userID int64, kind domain.CodeKind, code string) (*domain.User, error)
	ResendVerification(ctx context.Context, userID int64, kind domain.CodeKind) error
	Profile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, req ProfileUpdate) (*domain.User, error)
}

type RegisterRequest struct {
	Email       string
	Password    string
	PhoneNumber string
	FirstName   string
	LastName    string
}

type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

type ExportService interface {
	ExportEquipment(ctx context.Context) ([]byte, error)
	ExportHistory(ctx context.Context) ([]byte, error)
}

// EmailSender and SMSSender transmit verification codes and notices.
// Delivery is best-effort; the caller records the code regardless.
type EmailSender interface {
	SendVerificationCode(ctx context.Context, email, code string, ttl time.Duration) error
	SendOverdueSummary(ctx context.Context, email string, overdue []domain.Checkout) error
}

type SMSSender interface {
	SendVerificationCode(ctx context.Context, phone, code string, ttl time.Duration) error
}
