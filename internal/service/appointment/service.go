package appointment

import (
	"context"
	"strings"

	"github.com/medisys/hospital-api/internal/model"
	"github.com/medisys/hospital-api/internal/repository"
	apperrors "github.com/medisys/hospital-api/pkg/errors"
)

type AppointmentService interface {
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	GetAppointment(ctx context.Context, id int64) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	DeleteAppointments(ctx context.Context, ids ...int64) (int64, error)
	ListAppointments(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error)
	HasConflict(ctx context.Context, doctorName string, start model.DateTime, excludeID *int64) (bool, error)
}

type Service struct {
	repo    repository.AppointmentRepository
	doctors repository.DoctorRepository
}

func NewService(repo repository.AppointmentRepository, doctors repository.DoctorRepository) *Service {
	return &Service{
		repo:    repo,
		doctors: doctors,
	}
}

func validateRequest(req *model.CreateAppointmentRequest) []string {
	var violations []string
	if strings.TrimSpace(req.PatientName) == "" {
		violations = append(violations, "Patient name cannot be empty.")
	}
	if strings.TrimSpace(req.Reason) == "" {
		violations = append(violations, "Reason cannot be empty.")
	}
	return violations
}

// resolveDoctor looks the doctor up by exact name once per operation. The
// appointment still stores the name string, not the id.
func (s *Service) resolveDoctor(ctx context.Context, name string) (*model.Doctor, error) {
	doctor, err := s.doctors.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if violations := validateRequest(req); len(violations) > 0 {
		return nil, apperrors.Validation(violations)
	}

	doctor, err := s.resolveDoctor(ctx, req.DoctorName)
	if err != nil {
		return nil, err
	}

	apt := &model.Appointment{
		PatientName: req.PatientName,
		DoctorName:  doctor.Name,
		StartTime:   model.DateTimeOf(req.StartTime.Time),
		Reason:      req.Reason,
	}

	// The repository re-runs this check inside the insert transaction; the
	// early check keeps the common rejection cheap.
	conflict, err := s.repo.HasConflict(ctx, apt.DoctorName, apt.StartTime, nil)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperrors.Conflict("doctor is not available at the selected time")
	}

	if _, err := s.repo.Create(ctx, apt); err != nil {
		return nil, err
	}
	return apt, nil
}

func (s *Service) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	return s.repo.Get(ctx, id)
}

// UpdateAppointment applies the same preconditions as create, with the
// conflict check excluding the record's own id so it may keep its timestamp.
func (s *Service) UpdateAppointment(ctx context.Context, id int64, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if violations := validateRequest(req); len(violations) > 0 {
		return nil, apperrors.Validation(violations)
	}

	doctor, err := s.resolveDoctor(ctx, req.DoctorName)
	if err != nil {
		return nil, err
	}

	apt := &model.Appointment{
		ID:          id,
		PatientName: req.PatientName,
		DoctorName:  doctor.Name,
		StartTime:   model.DateTimeOf(req.StartTime.Time),
		Reason:      req.Reason,
	}

	conflict, err := s.repo.HasConflict(ctx, apt.DoctorName, apt.StartTime, &id)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperrors.Conflict("doctor is not available at the selected time")
	}

	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, err
	}
	return apt, nil
}

func (s *Service) DeleteAppointments(ctx context.Context, ids ...int64) (int64, error) {
	return s.repo.Delete(ctx, ids...)
}

func (s *Service) ListAppointments(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	if filters != nil && filters.From != nil && filters.To != nil &&
		filters.From.After(*filters.To) {
		return nil, apperrors.BadRequest("From Date cannot be later than To Date.", nil)
	}
	return s.repo.List(ctx, filters)
}

func (s *Service) HasConflict(ctx context.Context, doctorName string, start model.DateTime, excludeID *int64) (bool, error) {
	return s.repo.HasConflict(ctx, doctorName, start, excludeID)
}
