package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisys/hospital-api/internal/handler"
	"github.com/medisys/hospital-api/internal/model"
	apperrors "github.com/medisys/hospital-api/pkg/errors"
)

// fakeService scripts one response per call so each test controls the
// service outcome directly.
type fakeService struct {
	appointment *model.Appointment
	list        []*model.Appointment
	deleted     int64
	conflict    bool
	err         error

	gotIDs     []int64
	gotFilters *model.AppointmentFilters
}

func (s *fakeService) CreateAppointment(_ context.Context, _ *model.CreateAppointmentRequest) (*model.Appointment, error) {
	return s.appointment, s.err
}

func (s *fakeService) GetAppointment(_ context.Context, _ int64) (*model.Appointment, error) {
	return s.appointment, s.err
}

func (s *fakeService) UpdateAppointment(_ context.Context, _ int64, _ *model.CreateAppointmentRequest) (*model.Appointment, error) {
	return s.appointment, s.err
}

func (s *fakeService) DeleteAppointments(_ context.Context, ids ...int64) (int64, error) {
	s.gotIDs = ids
	return s.deleted, s.err
}

func (s *fakeService) ListAppointments(_ context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	s.gotFilters = filters
	return s.list, s.err
}

func (s *fakeService) HasConflict(_ context.Context, _ string, _ model.DateTime, _ *int64) (bool, error) {
	return s.conflict, s.err
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func perform(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.Response {
	t.Helper()
	var resp handler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleAppointment() *model.Appointment {
	return &model.Appointment{
		ID:          1,
		PatientName: "Asha Rao",
		DoctorName:  "Dr. Mehta",
		StartTime:   model.DateTimeOf(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)),
		Reason:      "Follow-up",
	}
}

func createBody() gin.H {
	return gin.H{
		"patient_name": "Asha Rao",
		"doctor_name":  "Dr. Mehta",
		"start_time":   "2024-03-01T10:00",
		"reason":       "Follow-up",
	}
}

func TestCreateAppointmentCreated(t *testing.T) {
	svc := &fakeService{appointment: sampleAppointment()}
	r := setupRouter(svc)

	w := perform(t, r, http.MethodPost, "/api/v1/appointments", createBody())

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "success", resp.Status)
}

func TestCreateAppointmentConflict(t *testing.T) {
	svc := &fakeService{err: apperrors.Conflict("doctor is not available at the selected time")}
	r := setupRouter(svc)

	w := perform(t, r, http.MethodPost, "/api/v1/appointments", createBody())

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "doctor is not available at the selected time", resp.Message)
}

func TestCreateAppointmentValidationFailure(t *testing.T) {
	svc := &fakeService{err: apperrors.Validation([]string{
		"Patient name cannot be empty.",
		"Reason cannot be empty.",
	})}
	r := setupRouter(svc)

	w := perform(t, r, http.MethodPost, "/api/v1/appointments", createBody())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode(t, w)
	assert.Equal(t, []string{
		"Patient name cannot be empty.",
		"Reason cannot be empty.",
	}, resp.Errors)
}

func TestCreateAppointmentMalformedBody(t *testing.T) {
	r := setupRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(`{"start_time":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAppointmentNotFound(t *testing.T) {
	svc := &fakeService{err: apperrors.NotFound("appointment", nil)}
	r := setupRouter(svc)

	w := perform(t, r, http.MethodGet, "/api/v1/appointments/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "appointment not found", resp.Message)
}

func TestGetAppointmentInvalidID(t *testing.T) {
	r := setupRouter(&fakeService{})

	w := perform(t, r, http.MethodGet, "/api/v1/appointments/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAppointmentsPassesFilters(t *testing.T) {
	svc := &fakeService{list: []*model.Appointment{sampleAppointment()}}
	r := setupRouter(svc)

	w := perform(t, r, http.MethodGet, "/api/v1/appointments?doctor_name=Dr.+Mehta&from=2024-03-01&to=2024-03-31", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotFilters)
	assert.Equal(t, "Dr. Mehta", svc.gotFilters.DoctorName)
	require.NotNil(t, svc.gotFilters.From)
	assert.Equal(t, "2024-03-01", svc.gotFilters.From.String())
	require.NotNil(t, svc.gotFilters.To)
	assert.Equal(t, "2024-03-31", svc.gotFilters.To.String())
}

func TestListAppointmentsRejectsMalformedDate(t *testing.T) {
	r := setupRouter(&fakeService{})

	w := perform(t, r, http.MethodGet, "/api/v1/appointments?from=March+1st", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAppointmentsInvertedRange(t *testing.T) {
	svc := &fakeService{err: apperrors.BadRequest("From Date cannot be later than To Date.", nil)}
	r := setupRouter(svc)

	w := perform(t, r, http.MethodGet, "/api/v1/appointments?from=2024-03-31&to=2024-03-01", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "From Date cannot be later than To Date.", resp.Message)
}

func TestDeleteAppointmentsBatchBody(t *testing.T) {
	svc := &fakeService{deleted: 2}
	r := setupRouter(svc)

	w := perform(t, r, http.MethodDelete, "/api/v1/appointments", gin.H{"ids": []int64{1, 2, 404}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{1, 2, 404}, svc.gotIDs)
}

func TestDeleteAppointmentsRequiresIDs(t *testing.T) {
	r := setupRouter(&fakeService{})

	w := perform(t, r, http.MethodDelete, "/api/v1/appointments", gin.H{"ids": []int64{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckAvailability(t *testing.T) {
	svc := &fakeService{conflict: true}
	r := setupRouter(svc)

	w := perform(t, r, http.MethodGet, "/api/v1/appointments/availability?doctor_name=Dr.+Mehta&at=2024-03-01T10:00", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := decode(t, w).Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, data["available"])
}

func TestCheckAvailabilityRequiresParams(t *testing.T) {
	r := setupRouter(&fakeService{})

	w := perform(t, r, http.MethodGet, "/api/v1/appointments/availability?at=2024-03-01T10:00", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(t, r, http.MethodGet, "/api/v1/appointments/availability?doctor_name=Dr.+Mehta&at=sometime", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
