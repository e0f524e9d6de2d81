package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/medisys/hospital-api/internal/model"
	apperrors "github.com/medisys/hospital-api/pkg/errors"
)

type billRepository struct {
	BaseRepository
}

func NewBillRepository(db *sqlx.DB) *billRepository {
	return &billRepository{NewBaseRepository(db)}
}

// Create stores patient_id as given. The reference is deliberately
// unenforced; existing data may already dangle.
func (r *billRepository) Create(ctx context.Context, bill *model.Bill) (int64, error) {
	query := `
		INSERT INTO billing (patient_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := r.db.GetContext(ctx, &id, query,
		bill.PatientID,
		bill.Amount,
		bill.Status,
		bill.Date,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create bill: %w", err)
	}
	bill.ID = id
	return id, nil
}

func (r *billRepository) Get(ctx context.Context, id int64) (*model.Bill, error) {
	query := `
		SELECT id, patient_id, amount, status, date
		FROM billing
		WHERE id = $1
	`
	var bill model.Bill
	err := r.db.GetContext(ctx, &bill, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("bill", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return &bill, nil
}

func (r *billRepository) Delete(ctx context.Context, ids ...int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM billing WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to delete bills: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

// List materializes the patient display name via an inner join, so bills
// whose patient row is gone are silently omitted.
func (r *billRepository) List(ctx context.Context, filters *model.BillFilters) ([]*model.BillRecord, error) {
	query := `
		SELECT billing.id, billing.patient_id, billing.amount, billing.status,
			   billing.date, patients.name AS patient_name
		FROM billing
		INNER JOIN patients ON billing.patient_id = patients.id
		WHERE 1=1
	`
	var args []interface{}

	if filters != nil {
		if filters.From != nil {
			args = append(args, *filters.From)
			query += fmt.Sprintf(" AND billing.date >= $%d", len(args))
		}
		if filters.To != nil {
			args = append(args, *filters.To)
			query += fmt.Sprintf(" AND billing.date <= $%d", len(args))
		}
		if filters.MinAmount != nil {
			args = append(args, *filters.MinAmount)
			query += fmt.Sprintf(" AND billing.amount >= $%d", len(args))
		}
		if filters.MaxAmount != nil {
			args = append(args, *filters.MaxAmount)
			query += fmt.Sprintf(" AND billing.amount <= $%d", len(args))
		}
	}

	query += " ORDER BY billing.id ASC"

	bills := []*model.BillRecord{}
	if err := r.db.SelectContext(ctx, &bills, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}
