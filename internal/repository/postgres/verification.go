package postgres

import (
	"context"
	"database/sql"
	"time"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/repository"
)

type verificationRepository struct {
	db *sql.DB
}

func NewVerificationRepository(db *sql.DB) repository.VerificationRepository {
	return &verificationRepository{db: db}
}

// Issue supersedes all live (user, kind) codes and inserts the fresh one.
// Locking the user row serializes concurrent issuance and redemption for
// the same user and kind.
func (r *verificationRepository) Issue(ctx context.Context, code *domain.VerificationCode) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, code.UserID); err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`UPDATE verification_codes SET used_at=$1 WHERE user_id=$2 AND kind=$3 AND used_at IS NULL`,
		now, code.UserID, code.Kind)
	if err != nil {
		return err
	}

	code.CreatedAt = now
	query := `INSERT INTO verification_codes (user_id, code, kind, purpose, expires_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		code.UserID, code.Code, code.Kind, code.Purpose, code.ExpiresAt, code.CreatedAt,
	).Scan(&code.ID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// Consume marks the matching live code used in one statement, so a second
// redemption of the same code can never succeed: the used_at guard fails
// and zero rows come back.
func (r *verificationRepository) Consume(ctx context.Context, userID int64, kind domain.CodeKind, code string, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, userID); err != nil {
		return err
	}

	query := `UPDATE verification_codes SET used_at=$1
	          WHERE user_id=$2 AND kind=$3 AND code=$4 AND used_at IS NULL AND expires_at > $1`
	res, err := tx.ExecContext(ctx, query, at, userID, kind, code)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFound("verification code")
	}
	return tx.Commit()
}
