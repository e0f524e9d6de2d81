package billing

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/medisys/hospital-api/internal/model"
	"github.com/medisys/hospital-api/internal/repository"
	apperrors "github.com/medisys/hospital-api/pkg/errors"
)

type BillingService interface {
	CreateBill(ctx context.Context, req *model.CreateBillRequest) (*model.BillRecord, error)
	GetBill(ctx context.Context, id int64) (*model.BillRecord, error)
	DeleteBills(ctx context.Context, ids ...int64) (int64, error)
	ListBills(ctx context.Context, filters *model.BillFilters) ([]*model.BillRecord, error)
	ExportBillCSV(ctx context.Context, id int64) ([]byte, string, error)
}

type Service struct {
	repo     repository.BillRepository
	patients repository.PatientRepository
}

func NewService(repo repository.BillRepository, patients repository.PatientRepository) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
	}
}

func validateRequest(req *model.CreateBillRequest) []string {
	var violations []string
	if req.Amount < 0 {
		violations = append(violations, "Amount cannot be negative.")
	}
	if !req.Status.Valid() {
		violations = append(violations, "Status should be 'Paid' or 'Pending'.")
	}
	return violations
}

// CreateBill stores the patient reference as given. The patient lookup only
// supplies the display name; a dangling patient_id is tolerated and the bill
// is persisted anyway.
func (s *Service) CreateBill(ctx context.Context, req *model.CreateBillRequest) (*model.BillRecord, error) {
	if violations := validateRequest(req); len(violations) > 0 {
		return nil, apperrors.Validation(violations)
	}

	record := &model.BillRecord{
		Bill: model.Bill{
			PatientID: req.PatientID,
			Amount:    req.Amount,
			Status:    req.Status,
			Date:      req.Date,
		},
	}

	patient, err := s.patients.Get(ctx, req.PatientID)
	switch {
	case err == nil:
		record.PatientName = patient.Name
	case apperrors.IsCode(err, apperrors.ErrNotFound):
		// unenforced reference, keep going
	default:
		return nil, err
	}

	if _, err := s.repo.Create(ctx, &record.Bill); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) GetBill(ctx context.Context, id int64) (*model.BillRecord, error) {
	bill, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	record := &model.BillRecord{Bill: *bill}
	patient, err := s.patients.Get(ctx, bill.PatientID)
	switch {
	case err == nil:
		record.PatientName = patient.Name
	case apperrors.IsCode(err, apperrors.ErrNotFound):
	default:
		return nil, err
	}
	return record, nil
}

func (s *Service) DeleteBills(ctx context.Context, ids ...int64) (int64, error) {
	return s.repo.Delete(ctx, ids...)
}

// ListBills rejects an inverted range explicitly rather than returning a
// silently-empty result.
func (s *Service) ListBills(ctx context.Context, filters *model.BillFilters) ([]*model.BillRecord, error) {
	if filters != nil {
		if filters.From != nil && filters.To != nil && filters.From.After(*filters.To) {
			return nil, apperrors.BadRequest("From Date cannot be later than To Date.", nil)
		}
		if filters.MinAmount != nil && filters.MaxAmount != nil && *filters.MinAmount > *filters.MaxAmount {
			return nil, apperrors.BadRequest("Minimum amount cannot be greater than maximum amount.", nil)
		}
	}
	return s.repo.List(ctx, filters)
}

// ExportBillCSV renders one bill as a downloadable CSV summary and returns
// the payload with its suggested filename.
func (s *Service) ExportBillCSV(ctx context.Context, id int64) ([]byte, string, error) {
	record, err := s.GetBill(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{
		{"Bill ID", "Patient Name", "Patient ID", "Amount", "Status", "Date"},
		{
			strconv.FormatInt(record.ID, 10),
			record.PatientName,
			strconv.FormatInt(record.PatientID, 10),
			fmt.Sprintf("%.2f", record.Amount),
			string(record.Status),
			record.Date.String(),
		},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, "", fmt.Errorf("failed to render bill csv: %w", err)
	}

	return buf.Bytes(), fmt.Sprintf("bill_%d.csv", record.ID), nil
}
