package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/medisys/hospital-api/internal/model"
	"github.com/medisys/hospital-api/internal/repository"
	apperrors "github.com/medisys/hospital-api/pkg/errors"
)

type PatientService interface {
	CreatePatient(ctx context.Context, patient *model.Patient) (int64, error)
	GetPatient(ctx context.Context, id int64) (*model.Patient, error)
	UpdatePatient(ctx context.Context, patient *model.Patient) error
	DeletePatients(ctx context.Context, ids ...int64) (int64, error)
	ListPatients(ctx context.Context, filters *model.PatientFilters) ([]*model.Patient, error)
}

type Service struct {
	repo repository.PatientRepository
	now  func() time.Time
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) CreatePatient(ctx context.Context, patient *model.Patient) (int64, error) {
	if violations := Validate(patient, model.DateOf(s.now())); len(violations) > 0 {
		return 0, apperrors.Validation(violations)
	}

	id, err := s.repo.Create(ctx, patient)
	if err != nil {
		return 0, fmt.Errorf("failed to create patient: %w", err)
	}
	return id, nil
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	return s.repo.Get(ctx, id)
}

// UpdatePatient is a full-record overwrite; there is no partial patch.
func (s *Service) UpdatePatient(ctx context.Context, patient *model.Patient) error {
	if violations := Validate(patient, model.DateOf(s.now())); len(violations) > 0 {
		return apperrors.Validation(violations)
	}
	return s.repo.Update(ctx, patient)
}

func (s *Service) DeletePatients(ctx context.Context, ids ...int64) (int64, error) {
	return s.repo.Delete(ctx, ids...)
}

func (s *Service) ListPatients(ctx context.Context, filters *model.PatientFilters) ([]*model.Patient, error) {
	if filters != nil && filters.AdmittedFrom != nil && filters.AdmittedTo != nil &&
		filters.AdmittedFrom.After(*filters.AdmittedTo) {
		return nil, apperrors.BadRequest("Start Date should be earlier than End Date.", nil)
	}
	return s.repo.List(ctx, filters)
}
