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

type appointmentRepository struct {
	BaseRepository
}

func NewAppointmentRepository(db *sqlx.DB) *appointmentRepository {
	return &appointmentRepository{NewBaseRepository(db)}
}

// conflict semantics: exact doctor-name equality and exact minute-granularity
// timestamp equality. Two appointments one minute apart do not collide.
const conflictQuery = `
	SELECT EXISTS (
		SELECT 1 FROM appointments
		WHERE doctor_name = $1
		AND start_time = $2
`

func hasConflictTx(ctx context.Context, q sqlx.QueryerContext, doctorName string, start model.DateTime, excludeID *int64) (bool, error) {
	query := conflictQuery
	args := []interface{}{doctorName, start}

	if excludeID != nil {
		query += " AND id != $3"
		args = append(args, *excludeID)
	}
	query += ")"

	var conflict bool
	if err := sqlx.GetContext(ctx, q, &conflict, query, args...); err != nil {
		return false, fmt.Errorf("failed to check conflicts: %w", err)
	}
	return conflict, nil
}

func (r *appointmentRepository) HasConflict(ctx context.Context, doctorName string, start model.DateTime, excludeID *int64) (bool, error) {
	return hasConflictTx(ctx, r.db, doctorName, start, excludeID)
}

// Create re-runs the conflict check inside the insert transaction so the
// double-booking invariant holds even against concurrent writers.
func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) (int64, error) {
	var id int64
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		conflict, err := hasConflictTx(ctx, tx, appointment.DoctorName, appointment.StartTime, nil)
		if err != nil {
			return err
		}
		if conflict {
			return apperrors.Conflict("doctor is not available at the selected time")
		}

		query := `
			INSERT INTO appointments (patient_name, doctor_name, start_time, reason)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		return tx.GetContext(ctx, &id, query,
			appointment.PatientName,
			appointment.DoctorName,
			appointment.StartTime,
			appointment.Reason,
		)
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to create appointment: %w", err)
	}
	appointment.ID = id
	return id, nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `
		SELECT id, patient_name, doctor_name, start_time, reason
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("appointment", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

// Update overwrites all four mutable fields. The conflict check excludes the
// record's own id so an appointment may keep its timestamp.
func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		conflict, err := hasConflictTx(ctx, tx, appointment.DoctorName, appointment.StartTime, &appointment.ID)
		if err != nil {
			return err
		}
		if conflict {
			return apperrors.Conflict("doctor is not available at the selected time")
		}

		query := `
			UPDATE appointments
			SET patient_name = $1, doctor_name = $2, start_time = $3, reason = $4
			WHERE id = $5
		`
		result, err := tx.ExecContext(ctx, query,
			appointment.PatientName,
			appointment.DoctorName,
			appointment.StartTime,
			appointment.Reason,
			appointment.ID,
		)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.NotFound("appointment", nil)
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, ids ...int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM appointments WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to delete appointments: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

func (r *appointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	query := `
		SELECT id, patient_name, doctor_name, start_time, reason
		FROM appointments
		WHERE 1=1
	`
	var args []interface{}

	if filters != nil {
		if filters.DoctorName != "" {
			args = append(args, filters.DoctorName)
			query += fmt.Sprintf(" AND doctor_name = $%d", len(args))
		}
		if filters.From != nil {
			args = append(args, *filters.From)
			query += fmt.Sprintf(" AND start_time >= $%d", len(args))
		}
		if filters.To != nil {
			// inclusive upper bound over the whole calendar day
			args = append(args, filters.To.AddDate(0, 0, 1))
			query += fmt.Sprintf(" AND start_time < $%d", len(args))
		}
	}

	query += " ORDER BY start_time ASC"

	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
