package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medisys/hospital-api/internal/handler"
	"github.com/medisys/hospital-api/internal/model"
	"github.com/medisys/hospital-api/internal/service/billing"
)

type Handler struct {
	service billing.BillingService
}

func NewHandler(service billing.BillingService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bills := r.Group("/bills")
	{
		bills.POST("", h.CreateBill)
		bills.GET("", h.ListBills)
		bills.GET("/:id", h.GetBill)
		bills.GET("/:id/export", h.ExportBill)
		bills.DELETE("/:id", h.DeleteBill)
		bills.DELETE("", h.DeleteBills)
	}
}

func (h *Handler) CreateBill(c *gin.Context) {
	var req model.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	record, err := h.service.CreateBill(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(record))
}

func (h *Handler) GetBill(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	record, err := h.service.GetBill(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}

func (h *Handler) ListBills(c *gin.Context) {
	from, ok := handler.QueryDate(c, "from")
	if !ok {
		return
	}
	to, ok := handler.QueryDate(c, "to")
	if !ok {
		return
	}
	minAmount, ok := handler.QueryFloat(c, "min_amount")
	if !ok {
		return
	}
	maxAmount, ok := handler.QueryFloat(c, "max_amount")
	if !ok {
		return
	}

	bills, err := h.service.ListBills(c.Request.Context(), &model.BillFilters{
		From:      from,
		To:        to,
		MinAmount: minAmount,
		MaxAmount: maxAmount,
	})
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(bills))
}

// ExportBill streams the bill summary as a CSV attachment.
func (h *Handler) ExportBill(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	payload, filename, err := h.service.ExportBillCSV(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", payload)
}

func (h *Handler) DeleteBill(c *gin.Context) {
	id, ok := handler.ParseID(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteBills(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"deleted": deleted}))
}

func (h *Handler) DeleteBills(c *gin.Context) {
	var req handler.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	deleted, err := h.service.DeleteBills(c.Request.Context(), req.IDs...)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"deleted": deleted}))
}
