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

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(db *sqlx.DB) *patientRepository {
	return &patientRepository{NewBaseRepository(db)}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (int64, error) {
	query := `
		INSERT INTO patients (
			name, dob, age, gender, contact, date_of_admission, address,
			medical_history, allergies, chronic_conditions, prior_surgeries,
			current_medications
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	var id int64
	err := r.db.GetContext(ctx, &id, query,
		patient.Name,
		patient.DateOfBirth,
		patient.Age,
		patient.Gender,
		patient.Contact,
		patient.DateOfAdmission,
		patient.Address,
		patient.MedicalHistory,
		patient.Allergies,
		patient.ChronicConditions,
		patient.PriorSurgeries,
		patient.CurrentMedications,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create patient: %w", err)
	}
	patient.ID = id
	return id, nil
}

func (r *patientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	query := `
		SELECT id, name, dob, age, gender, contact, date_of_admission, address,
			   medical_history, allergies, chronic_conditions, prior_surgeries,
			   current_medications
		FROM patients
		WHERE id = $1
	`
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("patient", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients
		SET name = $1, dob = $2, age = $3, gender = $4, contact = $5,
			date_of_admission = $6, address = $7, medical_history = $8,
			allergies = $9, chronic_conditions = $10, prior_surgeries = $11,
			current_medications = $12
		WHERE id = $13
	`
	result, err := r.db.ExecContext(ctx, query,
		patient.Name,
		patient.DateOfBirth,
		patient.Age,
		patient.Gender,
		patient.Contact,
		patient.DateOfAdmission,
		patient.Address,
		patient.MedicalHistory,
		patient.Allergies,
		patient.ChronicConditions,
		patient.PriorSurgeries,
		patient.CurrentMedications,
		patient.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("patient", nil)
	}
	return nil
}

// Delete removes the given ids; deleting a nonexistent id is a no-op, not an
// error.
func (r *patientRepository) Delete(ctx context.Context, ids ...int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM patients WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to delete patients: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

func (r *patientRepository) List(ctx context.Context, filters *model.PatientFilters) ([]*model.Patient, error) {
	query := `
		SELECT id, name, dob, age, gender, contact, date_of_admission, address,
			   medical_history, allergies, chronic_conditions, prior_surgeries,
			   current_medications
		FROM patients
		WHERE 1=1
	`
	var args []interface{}

	if filters != nil {
		if filters.AdmittedFrom != nil {
			args = append(args, *filters.AdmittedFrom)
			query += fmt.Sprintf(" AND date_of_admission >= $%d", len(args))
		}
		if filters.AdmittedTo != nil {
			args = append(args, *filters.AdmittedTo)
			query += fmt.Sprintf(" AND date_of_admission <= $%d", len(args))
		}
	}

	query += " ORDER BY id ASC"

	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}
