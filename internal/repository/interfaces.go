package repository

import (
	"context"

	"github.com/medisys/hospital-api/internal/model"
)

// All repository interfaces in one file
type (
	// PatientRepository handles patient rows. Delete takes one or more ids
	// and reports how many rows actually went away; absent ids are skipped
	// silently.
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) (int64, error)
		Get(ctx context.Context, id int64) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, ids ...int64) (int64, error)
		List(ctx context.Context, filters *model.PatientFilters) ([]*model.Patient, error)
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) (int64, error)
		Get(ctx context.Context, id int64) (*model.Doctor, error)
		// GetByName resolves a doctor by exact name. When two doctors share
		// a name the lowest id wins.
		GetByName(ctx context.Context, name string) (*model.Doctor, error)
		Update(ctx context.Context, doctor *model.Doctor) error
		Delete(ctx context.Context, ids ...int64) (int64, error)
		List(ctx context.Context) ([]*model.Doctor, error)
	}

	// AppointmentRepository writes run the double-booking check and the
	// insert/overwrite in one transaction so concurrent requests cannot
	// book the same slot.
	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) (int64, error)
		Get(ctx context.Context, id int64) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, ids ...int64) (int64, error)
		List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error)
		HasConflict(ctx context.Context, doctorName string, start model.DateTime, excludeID *int64) (bool, error)
	}

	BillRepository interface {
		Create(ctx context.Context, bill *model.Bill) (int64, error)
		Get(ctx context.Context, id int64) (*model.Bill, error)
		Delete(ctx context.Context, ids ...int64) (int64, error)
		// List joins against patients for the display name; bills with a
		// dangling patient_id drop out of the join.
		List(ctx context.Context, filters *model.BillFilters) ([]*model.BillRecord, error)
	}
)
