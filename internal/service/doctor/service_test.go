package doctor

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisys/hospital-api/internal/model"
	apperrors "github.com/medisys/hospital-api/pkg/errors"
)

type fakeDoctorRepo struct {
	nextID  int64
	doctors map[int64]*model.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[int64]*model.Doctor)}
}

func (r *fakeDoctorRepo) Create(_ context.Context, doctor *model.Doctor) (int64, error) {
	r.nextID++
	doctor.ID = r.nextID
	stored := *doctor
	r.doctors[doctor.ID] = &stored
	return doctor.ID, nil
}

func (r *fakeDoctorRepo) Get(_ context.Context, id int64) (*model.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, apperrors.NotFound("doctor", nil)
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDoctorRepo) GetByName(_ context.Context, name string) (*model.Doctor, error) {
	var match *model.Doctor
	for _, d := range r.doctors {
		if d.Name != name {
			continue
		}
		if match == nil || d.ID < match.ID {
			match = d
		}
	}
	if match == nil {
		return nil, apperrors.NotFound("doctor", nil)
	}
	copied := *match
	return &copied, nil
}

func (r *fakeDoctorRepo) Update(_ context.Context, doctor *model.Doctor) error {
	if _, ok := r.doctors[doctor.ID]; !ok {
		return apperrors.NotFound("doctor", nil)
	}
	stored := *doctor
	r.doctors[doctor.ID] = &stored
	return nil
}

func (r *fakeDoctorRepo) Delete(_ context.Context, ids ...int64) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if _, ok := r.doctors[id]; ok {
			delete(r.doctors, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeDoctorRepo) List(_ context.Context) ([]*model.Doctor, error) {
	var out []*model.Doctor
	for _, d := range r.doctors {
		copied := *d
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func doctorRequest() *model.CreateDoctorRequest {
	return &model.CreateDoctorRequest{
		Name:           "Dr. Mehta",
		Specialization: "Cardiology",
		Contact:        "9876543210",
		Availability: model.Availability{
			Days: []string{"Monday", "Tuesday"},
			From: "09:00",
			To:   "17:00",
		},
	}
}

func TestCreateDoctorStoresAvailabilityString(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo)

	doctor, err := svc.CreateDoctor(context.Background(), doctorRequest())
	require.NoError(t, err)
	assert.Equal(t, "Monday, Tuesday from 09:00 to 17:00", doctor.Availability)
	assert.Equal(t, doctor.Availability, repo.doctors[doctor.ID].Availability)
}

func TestGetDoctorParsesStoredAvailability(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.CreateDoctor(ctx, doctorRequest())
	require.NoError(t, err)

	detail, err := svc.GetDoctor(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, detail.Name)
	assert.Equal(t, []string{"Monday", "Tuesday"}, detail.AvailabilityDetail.Days)
	assert.Equal(t, "09:00", detail.AvailabilityDetail.From)
	assert.Equal(t, "17:00", detail.AvailabilityDetail.To)
}

func TestGetDoctorCorruptAvailability(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo)

	id, err := repo.Create(context.Background(), &model.Doctor{
		Name:         "Dr. Rao",
		Availability: "whenever",
	})
	require.NoError(t, err)

	_, err = svc.GetDoctor(context.Background(), id)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrInternal))
}

func TestCreateDoctorCollectsViolations(t *testing.T) {
	svc := NewService(newFakeDoctorRepo())

	req := doctorRequest()
	req.Name = "  "
	req.Specialization = ""
	req.Availability.Days = []string{"Funday"}

	_, err := svc.CreateDoctor(context.Background(), req)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{
		"Name cannot be empty.",
		"Specialization cannot be empty.",
		`invalid weekday "Funday"`,
	}, appErr.Violations)
}

func TestUpdateDoctorOverwritesRecord(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.CreateDoctor(ctx, doctorRequest())
	require.NoError(t, err)

	req := doctorRequest()
	req.Specialization = "Neurology"
	req.Availability.Days = []string{"Friday"}
	updated, err := svc.UpdateDoctor(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Neurology", updated.Specialization)
	assert.Equal(t, "Friday from 09:00 to 17:00", repo.doctors[created.ID].Availability)
}

func TestDeleteDoctorsSkipsAbsentIDs(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.CreateDoctor(ctx, doctorRequest())
	require.NoError(t, err)

	deleted, err := svc.DeleteDoctors(ctx, created.ID, 404)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Empty(t, repo.doctors)
}
