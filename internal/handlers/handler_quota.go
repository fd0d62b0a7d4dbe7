package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/rovema/comercial-backend/internal/core/ports/services"
	"github.com/rovema/comercial-backend/internal/dto"
	"github.com/rovema/comercial-backend/internal/middleware"
)

// QuotaHandler handles quota target management requests.
type QuotaHandler struct {
	quotaService portssvc.QuotaSvcFacade
}

// NewQuotaHandler creates a new QuotaHandler.
func NewQuotaHandler(quotaService portssvc.QuotaSvcFacade) *QuotaHandler {
	return &QuotaHandler{quotaService: quotaService}
}

// registerQuotaRoutes sets up the quota management routes. Admin only.
func registerQuotaRoutes(rg *gin.RouterGroup, quotaService portssvc.QuotaSvcFacade) {
	h := NewQuotaHandler(quotaService)

	quotas := rg.Group("/quotas", middleware.RequireAdmin())
	{
		quotas.GET("", h.Overview)
		quotas.GET("/:email", h.GetTarget)
		quotas.PUT("/:email", h.SetTarget)
	}
}

// Overview godoc
// @Summary Quota overview
// @Description Lists every active collaborator with target and current-month progress. Admin only.
// @Tags quotas
// @Produce json
// @Success 200 {object} dto.QuotaOverviewResponse
// @Failure 403 {object} ErrorResponse
// @Router /quotas [get]
// @Security BearerAuth
func (h *QuotaHandler) Overview(c *gin.Context) {
	rows, err := h.quotaService.Overview(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToQuotaOverviewResponse(rows))
}

// GetTarget godoc
// @Summary Get a quota target
// @Description Retrieves a collaborator's monthly target, falling back to the default when unset. Admin only.
// @Tags quotas
// @Produce json
// @Param email path string true "Collaborator email"
// @Success 200 {object} domain.QuotaTarget
// @Failure 403 {object} ErrorResponse
// @Router /quotas/{email} [get]
// @Security BearerAuth
func (h *QuotaHandler) GetTarget(c *gin.Context) {
	target, err := h.quotaService.GetTarget(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, target)
}

// SetTarget godoc
// @Summary Set a quota target
// @Description Creates or overwrites a collaborator's monthly visit target. Admin only.
// @Tags quotas
// @Accept json
// @Produce json
// @Param email path string true "Collaborator email"
// @Param quota body dto.SetQuotaRequest true "Monthly target"
// @Success 200 {object} domain.QuotaTarget
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /quotas/{email} [put]
// @Security BearerAuth
func (h *QuotaHandler) SetTarget(c *gin.Context) {
	var req dto.SetQuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	target, err := h.quotaService.SetTarget(c.Request.Context(), c.Param("email"), *req.MonthlyTarget)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, target)
}
