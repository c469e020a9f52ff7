package postgres

import (
	"database/sql"

	"church-inventory-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.EquipmentRepository
	repository.CheckoutRepository
	repository.UserRepository
	repository.VerificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		EquipmentRepository:    NewEquipmentRepository(db),
		CheckoutRepository:     NewCheckoutRepository(db),
		UserRepository:         NewUserRepository(db),
		VerificationRepository: NewVerificationRepository(db),
	}
}
