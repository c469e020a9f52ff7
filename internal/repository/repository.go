package repository

import (
	"context"
	"time"

	"church-inventory-backend/internal/domain"
)

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	// Delete removes the equipment and, via the schema's cascade, its
	// entire checkout history. Fails with ConflictError while in-use.
	Delete(ctx context.Context, id int64) error
	// SetStatus applies an available<->maintenance transition under a row
	// lock. Fails with ConflictError when the row is in-use.
	SetStatus(ctx context.Context, id int64, status domain.EquipmentStatus) (*domain.Equipment, error)
	List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error)
	Stats(ctx context.Context) (*domain.EquipmentStats, error)
}

type CheckoutRepository interface {
	// Checkout atomically verifies the equipment is available, opens a
	// ledger entry, and flips the equipment to in-use. Both writes commit
	// or fail together.
	Checkout(ctx context.Context, co *domain.Checkout) error
	// Checkin atomically closes the one open entry for the equipment and
	// moves the equipment to newStatus. Returns the closed entry.
	Checkin(ctx context.Context, equipmentID int64, checkedInBy string, conditionIn domain.Condition, notes string, newStatus domain.EquipmentStatus, at time.Time) (*domain.Checkout, error)
	GetOpenByEquipment(ctx context.Context, equipmentID int64) (*domain.Checkout, error)
	ListByEquipment(ctx context.Context, equipmentID int64) ([]domain.Checkout, error)
	ListOpen(ctx context.Context) ([]domain.Checkout, error)
	ListAll(ctx context.Context) ([]domain.Checkout, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Checkout, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type VerificationRepository interface {
	// Issue marks every unused (userID, kind) code used and inserts the
	// new one in a single transaction serialized per user.
	Issue(ctx context.Context, code *domain.VerificationCode) error
	// Consume atomically marks a matching valid code used. Returns
	// NotFoundError when no unused, unexpired match exists.
	Consume(ctx context.Context, userID int64, kind domain.CodeKind, code string, at time.Time) error
}
