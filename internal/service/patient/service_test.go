package patient

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisys/hospital-api/internal/model"
	apperrors "github.com/medisys/hospital-api/pkg/errors"
)

type fakePatientRepo struct {
	nextID   int64
	patients map[int64]*model.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[int64]*model.Patient)}
}

func (r *fakePatientRepo) Create(_ context.Context, patient *model.Patient) (int64, error) {
	r.nextID++
	patient.ID = r.nextID
	stored := *patient
	r.patients[patient.ID] = &stored
	return patient.ID, nil
}

func (r *fakePatientRepo) Get(_ context.Context, id int64) (*model.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, apperrors.NotFound("patient", nil)
	}
	copied := *p
	return &copied, nil
}

func (r *fakePatientRepo) Update(_ context.Context, patient *model.Patient) error {
	if _, ok := r.patients[patient.ID]; !ok {
		return apperrors.NotFound("patient", nil)
	}
	stored := *patient
	r.patients[patient.ID] = &stored
	return nil
}

func (r *fakePatientRepo) Delete(_ context.Context, ids ...int64) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if _, ok := r.patients[id]; ok {
			delete(r.patients, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakePatientRepo) List(_ context.Context, filters *model.PatientFilters) ([]*model.Patient, error) {
	var out []*model.Patient
	for _, p := range r.patients {
		if filters != nil {
			if filters.AdmittedFrom != nil && p.DateOfAdmission.Before(*filters.AdmittedFrom) {
				continue
			}
			if filters.AdmittedTo != nil && p.DateOfAdmission.After(*filters.AdmittedTo) {
				continue
			}
		}
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func newTestService(repo *fakePatientRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreatePatientPersistsExactValues(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newTestService(repo)

	p := validPatient()
	id, err := svc.CreatePatient(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	stored, err := svc.GetPatient(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", stored.Name)
	assert.Equal(t, model.NewDate(1990, time.May, 1), stored.DateOfBirth)
	assert.Equal(t, 34, stored.Age)
	assert.Equal(t, model.GenderFemale, stored.Gender)
	assert.Equal(t, "9876543210", stored.Contact)
	assert.Equal(t, model.NewDate(2024, time.January, 10), stored.DateOfAdmission)
	assert.Equal(t, "12 MG Road", stored.Address)
}

func TestCreatePatientRejectsInvalidRecord(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newTestService(repo)

	p := validPatient()
	p.Contact = "123"
	p.Address = " "

	_, err := svc.CreatePatient(context.Background(), p)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{
		"Contact number should be exactly 10 digits.",
		"Address cannot be empty.",
	}, appErr.Violations)

	// nothing persisted
	assert.Empty(t, repo.patients)
}

func TestUpdatePatientOverwritesWholeRecord(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newTestService(repo)

	p := validPatient()
	id, err := svc.CreatePatient(context.Background(), p)
	require.NoError(t, err)

	updated := validPatient()
	updated.ID = id
	updated.Address = "44 Residency Road"
	updated.MedicalHistory = "hypertension"
	require.NoError(t, svc.UpdatePatient(context.Background(), updated))

	stored, err := svc.GetPatient(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "44 Residency Road", stored.Address)
	assert.Equal(t, "hypertension", stored.MedicalHistory)
}

func TestListPatientsRejectsInvertedRange(t *testing.T) {
	svc := newTestService(newFakePatientRepo())

	from := model.NewDate(2024, time.February, 1)
	to := model.NewDate(2024, time.January, 1)
	_, err := svc.ListPatients(context.Background(), &model.PatientFilters{
		AdmittedFrom: &from,
		AdmittedTo:   &to,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrBadRequest))
}

func TestDeletePatientsSkipsAbsentIDs(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newTestService(repo)

	id, err := svc.CreatePatient(context.Background(), validPatient())
	require.NoError(t, err)

	// deleting a nonexistent id is a no-op, not an error
	deleted, err := svc.DeletePatients(context.Background(), 999)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	deleted, err = svc.DeletePatients(context.Background(), id, 999)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
