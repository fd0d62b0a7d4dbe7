package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rovema/comercial-backend/internal/core/domain"
	portssvc "github.com/rovema/comercial-backend/internal/core/ports/services"
	"github.com/rovema/comercial-backend/internal/dto"
	"github.com/rovema/comercial-backend/internal/middleware"
)

// ReportingHandler handles the manager-facing reporting requests.
type ReportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	userService      portssvc.UserSvcFacade
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(reportingService portssvc.ReportingSvcFacade, userService portssvc.UserSvcFacade) *ReportingHandler {
	return &ReportingHandler{reportingService: reportingService, userService: userService}
}

// registerReportingRoutes sets up the reporting routes. All of them are
// admin only.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, userService portssvc.UserSvcFacade) {
	h := NewReportingHandler(reportingService, userService)

	reports := rg.Group("/reports", middleware.RequireAdmin())
	{
		reports.GET("/visits", h.QueryVisits)
		reports.GET("/summary", h.Summary)
		reports.GET("/quotas/:email", h.QuotaProgress)
	}
}

// QueryVisits godoc
// @Summary Query visit records
// @Description Retrieves visits filtered by status list, collaborator name and time window. Admin only.
// @Tags reports
// @Produce json
// @Param status query string false "Comma-separated status list"
// @Param collaborator query string false "Collaborator name"
// @Param window query string false "Time window: today, week, month or all" default(all)
// @Success 200 {object} dto.ListVisitsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /reports/visits [get]
// @Security BearerAuth
func (h *ReportingHandler) QueryVisits(c *gin.Context) {
	var params dto.ReportVisitsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	window, ok := domain.ParseTimeWindow(params.Window)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown time window: " + params.Window})
		return
	}

	var statuses []domain.VisitStatus
	if params.Status != "" {
		for _, raw := range strings.Split(params.Status, ",") {
			status := domain.VisitStatus(strings.TrimSpace(raw))
			if status != domain.StatusNotInformed && !status.IsValid() {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown status: " + string(status)})
				return
			}
			statuses = append(statuses, status)
		}
	}

	visits, err := h.reportingService.QueryVisits(c.Request.Context(), statuses, params.Collaborator, window)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListVisitsResponse(visits))
}

// Summary godoc
// @Summary Dashboard summary
// @Description Computes counts by status, top collaborators and month-over-month volume for a window. Admin only.
// @Tags reports
// @Produce json
// @Param window query string false "Time window: today, week, month or all" default(all)
// @Param topN query int false "Number of top collaborators" default(5)
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /reports/summary [get]
// @Security BearerAuth
func (h *ReportingHandler) Summary(c *gin.Context) {
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	window, ok := domain.ParseTimeWindow(params.Window)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown time window: " + params.Window})
		return
	}
	if params.TopN < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "topN cannot be negative"})
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), window, params.TopN)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(window, summary))
}

// QuotaProgress godoc
// @Summary Collaborator quota progress
// @Description Retrieves one collaborator's current-month progress against their target. Admin only.
// @Tags reports
// @Produce json
// @Param email path string true "Collaborator email"
// @Success 200 {object} dto.QuotaProgressResponse
// @Failure 403 {object} ErrorResponse
// @Router /reports/quotas/{email} [get]
// @Security BearerAuth
func (h *ReportingHandler) QuotaProgress(c *gin.Context) {
	email := c.Param("email")
	progress, err := h.reportingService.QuotaProgress(c.Request.Context(), email)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToQuotaProgressResponse(email, progress))
}
