package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/repository"
)

const checkoutColumns = `h.id, h.equipment_id, e.name, h.checked_out_by, h.checked_out_at, h.expected_return_date, h.checked_in_at, h.checked_in_by, h.condition_out, h.condition_in, h.notes`

const checkoutSelect = `SELECT ` + checkoutColumns + ` FROM checkout_history h JOIN equipment e ON e.id = h.equipment_id`

type checkoutRepository struct {
	db *sql.DB
}

func NewCheckoutRepository(db *sql.DB) repository.CheckoutRepository {
	return &checkoutRepository{db: db}
}

// Checkout runs the available -> in-use transition. The equipment row is
// locked first so two concurrent checkouts of the same item cannot both
// pass the status check; the ledger insert and the status flip share the
// transaction.
func (r *checkoutRepository) Checkout(ctx context.Context, co *domain.Checkout) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status domain.EquipmentStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM equipment WHERE id = $1 FOR UPDATE`, co.EquipmentID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("equipment")
	}
	if err != nil {
		return err
	}
	if status != domain.EquipmentStatusAvailable {
		return domain.Conflictf("equipment is not available for checkout (status: %s)", status)
	}

	query := `INSERT INTO checkout_history (equipment_id, checked_out_by, checked_out_at, expected_return_date, condition_out, notes)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		co.EquipmentID, co.CheckedOutBy, co.CheckedOutAt, co.ExpectedReturnDate, co.ConditionOut, co.Notes,
	).Scan(&co.ID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE equipment SET status=$1, updated_at=$2 WHERE id=$3`,
		domain.EquipmentStatusInUse, time.Now().UTC(), co.EquipmentID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// Checkin runs the in-use -> available/maintenance transition, closing the
// single open ledger entry under the same row lock.
func (r *checkoutRepository) Checkin(ctx context.Context, equipmentID int64, checkedInBy string, conditionIn domain.Condition, notes string, newStatus domain.EquipmentStatus, at time.Time) (*domain.Checkout, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var status domain.EquipmentStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM equipment WHERE id = $1 FOR UPDATE`, equipmentID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("equipment")
	}
	if err != nil {
		return nil, err
	}
	if status != domain.EquipmentStatusInUse {
		return nil, domain.Conflictf("equipment is not currently checked out (status: %s)", status)
	}

	query := `UPDATE checkout_history SET checked_in_at=$1, checked_in_by=$2, condition_in=$3, notes=$4
	          WHERE equipment_id=$5 AND checked_in_at IS NULL RETURNING id`
	var id int64
	err = tx.QueryRowContext(ctx, query, at, checkedInBy, conditionIn, notes, equipmentID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		// unreachable while the status/ledger invariant holds
		return nil, domain.Conflictf("no active checkout found for this equipment")
	}
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `UPDATE equipment SET status=$1, updated_at=$2 WHERE id=$3`,
		newStatus, time.Now().UTC(), equipmentID)
	if err != nil {
		return nil, err
	}

	co, err := scanCheckout(tx.QueryRowContext(ctx, checkoutSelect+` WHERE h.id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return co, nil
}

func (r *checkoutRepository) GetOpenByEquipment(ctx context.Context, equipmentID int64) (*domain.Checkout, error) {
	query := checkoutSelect + ` WHERE h.equipment_id = $1 AND h.checked_in_at IS NULL`
	co, err := scanCheckout(r.db.QueryRowContext(ctx, query, equipmentID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("active checkout")
	}
	return co, err
}

func (r *checkoutRepository) ListByEquipment(ctx context.Context, equipmentID int64) ([]domain.Checkout, error) {
	query := checkoutSelect + ` WHERE h.equipment_id = $1 ORDER BY h.checked_out_at DESC`
	return r.queryCheckouts(ctx, query, equipmentID)
}

func (r *checkoutRepository) ListOpen(ctx context.Context) ([]domain.Checkout, error) {
	query := checkoutSelect + ` WHERE h.checked_in_at IS NULL ORDER BY h.checked_out_at DESC`
	return r.queryCheckouts(ctx, query)
}

func (r *checkoutRepository) ListAll(ctx context.Context) ([]domain.Checkout, error) {
	query := checkoutSelect + ` ORDER BY h.checked_out_at DESC`
	return r.queryCheckouts(ctx, query)
}

func (r *checkoutRepository) ListRecent(ctx context.Context, limit int) ([]domain.Checkout, error) {
	query := checkoutSelect + ` ORDER BY h.checked_out_at DESC LIMIT $1`
	return r.queryCheckouts(ctx, query, limit)
}

func (r *checkoutRepository) queryCheckouts(ctx context.Context, query string, args ...interface{}) ([]domain.Checkout, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.Checkout
	for rows.Next() {
		co, err := scanCheckout(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *co)
	}
	return list, rows.Err()
}

func scanCheckout(row rowScanner) (*domain.Checkout, error) {
	co := &domain.Checkout{}
	var checkedInBy, conditionIn, notes sql.NullString
	err := row.Scan(&co.ID, &co.EquipmentID, &co.EquipmentName, &co.CheckedOutBy, &co.CheckedOutAt,
		&co.ExpectedReturnDate, &co.CheckedInAt, &checkedInBy, &co.ConditionOut, &conditionIn, &notes)
	if err != nil {
		return nil, err
	}
	co.CheckedInBy = checkedInBy.String
	co.ConditionIn = domain.Condition(conditionIn.String)
	co.Notes = notes.String
	return co, nil
}
