package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/repository"
)

const equipmentColumns = `id, name, category, model, serial_number, description, status, location, purchase_date, purchase_price, created_at, updated_at`

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	now := time.Now().UTC()
	eq.CreatedAt = now
	eq.UpdatedAt = now
	query := `INSERT INTO equipment (name, category, model, serial_number, description, status, location, purchase_date, purchase_price, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		eq.Name, eq.Category, eq.Model, eq.SerialNumber, eq.Description,
		eq.Status, eq.Location, eq.PurchaseDate, eq.PurchasePrice,
		eq.CreatedAt, eq.UpdatedAt,
	).Scan(&eq.ID)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	eq, err := scanEquipment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("equipment")
	}
	return eq, err
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	eq.UpdatedAt = time.Now().UTC()
	query := `UPDATE equipment SET name=$1, category=$2, model=$3, serial_number=$4, description=$5, location=$6, purchase_date=$7, purchase_price=$8, updated_at=$9 WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query,
		eq.Name, eq.Category, eq.Model, eq.SerialNumber, eq.Description,
		eq.Location, eq.PurchaseDate, eq.PurchasePrice, eq.UpdatedAt, eq.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFound("equipment")
	}
	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status domain.EquipmentStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM equipment WHERE id = $1 FOR UPDATE`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("equipment")
	}
	if err != nil {
		return err
	}
	if status == domain.EquipmentStatusInUse {
		return domain.Conflictf("cannot delete equipment that is currently checked out")
	}
	// checkout_history rows go with it via ON DELETE CASCADE
	if _, err := tx.ExecContext(ctx, `DELETE FROM equipment WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *equipmentRepository) SetStatus(ctx context.Context, id int64, status domain.EquipmentStatus) (*domain.Equipment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var current domain.EquipmentStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM equipment WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("equipment")
	}
	if err != nil {
		return nil, err
	}
	if current == domain.EquipmentStatusInUse {
		return nil, domain.Conflictf("cannot change status of equipment that is currently checked out")
	}

	query := `UPDATE equipment SET status=$1, updated_at=$2 WHERE id=$3 RETURNING ` + equipmentColumns
	eq, err := scanEquipment(tx.QueryRowContext(ctx, query, status, time.Now().UTC(), id))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE 1=1`
	args := []interface{}{}
	idx := 1
	if filter.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", idx)
		args = append(args, "%"+filter.Search+"%")
		idx++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", idx)
		args = append(args, filter.Category)
		idx++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *eq)
	}
	return list, rows.Err()
}

func (r *equipmentRepository) Stats(ctx context.Context) (*domain.EquipmentStats, error) {
	query := `SELECT
		count(*),
		count(*) FILTER (WHERE status = 'available'),
		count(*) FILTER (WHERE status = 'in-use'),
		count(*) FILTER (WHERE status = 'maintenance')
	FROM equipment`
	st := &domain.EquipmentStats{}
	err := r.db.QueryRowContext(ctx, query).Scan(&st.Total, &st.Available, &st.InUse, &st.Maintenance)
	if err != nil {
		return nil, err
	}
	return st, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEquipment(row rowScanner) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	var model, serial, description, location sql.NullString
	err := row.Scan(&eq.ID, &eq.Name, &eq.Category, &model, &serial, &description,
		&eq.Status, &location, &eq.PurchaseDate, &eq.PurchasePrice, &eq.CreatedAt, &eq.UpdatedAt)
	if err != nil {
		return nil, err
	}
	eq.Model = model.String
	eq.SerialNumber = serial.String
	eq.Description = description.String
	eq.Location = location.String
	return eq, nil
}
