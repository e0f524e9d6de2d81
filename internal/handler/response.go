package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medisys/hospital-api/internal/model"
	apperrors "github.com/medisys/hospital-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// Error writes the HTTP rendering of a service error. Validation failures
// carry the full violation list; anything that is not an AppError is a
// persistence error surfaced verbatim.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(err.Error()))
		return
	}

	switch appErr.Code {
	case apperrors.ErrValidation:
		c.JSON(http.StatusUnprocessableEntity, &Response{
			Status:  "error",
			Message: appErr.Message,
			Errors:  appErr.Violations,
		})
	case apperrors.ErrConflict:
		c.JSON(http.StatusConflict, NewErrorResponse(appErr.Message))
	case apperrors.ErrNotFound:
		c.JSON(http.StatusNotFound, NewErrorResponse(appErr.Message))
	case apperrors.ErrBadRequest:
		c.JSON(http.StatusBadRequest, NewErrorResponse(appErr.Message))
	default:
		c.JSON(http.StatusInternalServerError, NewErrorResponse(appErr.Error()))
	}
}

// DeleteRequest carries the ids for a batch delete.
type DeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// ParseID reads the numeric :id route parameter.
func ParseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse("invalid id"))
		return 0, false
	}
	return id, true
}

// QueryDate reads an optional YYYY-MM-DD query parameter.
func QueryDate(c *gin.Context, name string) (*model.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	var d model.Date
	if err := d.UnmarshalJSON([]byte(`"` + raw + `"`)); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse("invalid "+name+" date: expected YYYY-MM-DD"))
		return nil, false
	}
	return &d, true
}

// QueryFloat reads an optional float query parameter.
func QueryFloat(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse("invalid "+name))
		return nil, false
	}
	return &f, true
}
