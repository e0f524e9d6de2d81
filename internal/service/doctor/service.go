package doctor

import (
	"context"
	"strings"

	"github.com/medisys/hospital-api/internal/model"
	"github.com/medisys/hospital-api/internal/repository"
	apperrors "github.com/medisys/hospital-api/pkg/errors"
)

type DoctorService interface {
	CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error)
	GetDoctor(ctx context.Context, id int64) (*model.DoctorDetail, error)
	UpdateDoctor(ctx context.Context, id int64, req *model.CreateDoctorRequest) (*model.Doctor, error)
	DeleteDoctors(ctx context.Context, ids ...int64) (int64, error)
	ListDoctors(ctx context.Context) ([]*model.Doctor, error)
}

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func validateRequest(req *model.CreateDoctorRequest) []string {
	var violations []string
	if strings.TrimSpace(req.Name) == "" {
		violations = append(violations, "Name cannot be empty.")
	}
	if strings.TrimSpace(req.Specialization) == "" {
		violations = append(violations, "Specialization cannot be empty.")
	}
	if strings.TrimSpace(req.Contact) == "" {
		violations = append(violations, "Contact cannot be empty.")
	}
	if err := req.Availability.Validate(); err != nil {
		violations = append(violations, err.Error())
	}
	return violations
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	if violations := validateRequest(req); len(violations) > 0 {
		return nil, apperrors.Validation(violations)
	}

	doctor := &model.Doctor{
		Name:           req.Name,
		Specialization: req.Specialization,
		Contact:        req.Contact,
		Availability:   req.Availability.String(),
	}
	if _, err := s.repo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// GetDoctor parses the stored availability string back into its day set and
// time window so the record can be edited.
func (s *Service) GetDoctor(ctx context.Context, id int64) (*model.DoctorDetail, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	availability, err := model.ParseAvailability(doctor.Availability)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.DoctorDetail{
		Doctor:             *doctor,
		AvailabilityDetail: availability,
	}, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, id int64, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	if violations := validateRequest(req); len(violations) > 0 {
		return nil, apperrors.Validation(violations)
	}

	doctor := &model.Doctor{
		ID:             id,
		Name:           req.Name,
		Specialization: req.Specialization,
		Contact:        req.Contact,
		Availability:   req.Availability.String(),
	}
	if err := s.repo.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *Service) DeleteDoctors(ctx context.Context, ids ...int64) (int64, error) {
	return s.repo.Delete(ctx, ids...)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	return s.repo.List(ctx)
}
