package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/repository"
)

const userColumns = `id, email, password_hash, phone_number, first_name, last_name, email_verified, phone_verified, active, last_login, created_at, updated_at`

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	query := `INSERT INTO users (email, password_hash, phone_number, first_name, last_name, email_verified, phone_verified, active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, nullString(user.PhoneNumber), user.FirstName, user.LastName,
		user.EmailVerified, user.PhoneVerified, user.Active, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone_number = $1`
	return r.getOne(ctx, query, phone)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now().UTC()
	query := `UPDATE users SET email=$1, password_hash=$2, phone_number=$3, first_name=$4, last_name=$5, email_verified=$6, phone_verified=$7, active=$8, last_login=$9, updated_at=$10 WHERE id=$11`
	res, err := r.db.ExecContext(ctx, query,
		user.Email, user.PasswordHash, nullString(user.PhoneNumber), user.FirstName, user.LastName,
		user.EmailVerified, user.PhoneVerified, user.Active, user.LastLogin, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFound("user")
	}
	return nil
}

func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	user := &domain.User{}
	var phone sql.NullString
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &phone, &user.FirstName, &user.LastName,
		&user.EmailVerified, &user.PhoneVerified, &user.Active, &user.LastLogin, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("user")
	}
	if err != nil {
		return nil, err
	}
	user.PhoneNumber = phone.String
	return user, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
