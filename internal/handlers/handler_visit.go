package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rovema/comercial-backend/internal/core/domain"
	portssvc "github.com/rovema/comercial-backend/internal/core/ports/services"
	"github.com/rovema/comercial-backend/internal/dto"
	"github.com/rovema/comercial-backend/internal/middleware"
)

// VisitHandler handles the collaborator-facing visit ledger requests.
type VisitHandler struct {
	visitService     portssvc.VisitSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// NewVisitHandler creates a new VisitHandler.
func NewVisitHandler(visitService portssvc.VisitSvcFacade, reportingService portssvc.ReportingSvcFacade) *VisitHandler {
	return &VisitHandler{visitService: visitService, reportingService: reportingService}
}

// RegisterVisitRoutes sets up the routes for the visit ledger.
func RegisterVisitRoutes(rg *gin.RouterGroup, visitService portssvc.VisitSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := NewVisitHandler(visitService, reportingService)

	visits := rg.Group("/visits")
	{
		visits.POST("", h.CreateVisit)
		visits.GET("", h.ListMyVisits)
		visits.GET("/clients", h.ListClientNames)
		visits.GET("/followups", h.ListUpcomingFollowUps)
		visits.DELETE("/:visitID", h.DeleteVisit)
	}

	// A collaborator's own quota position lives next to their ledger view.
	rg.GET("/me/quota", h.MyQuotaProgress)
}

// CreateVisit godoc
// @Summary Record a visit
// @Description Validates the GPS reading, resolves the address and persists a new visit record for the caller.
// @Tags visits
// @Accept json
// @Produce json
// @Param visit body dto.CreateVisitRequest true "Visit data"
// @Success 201 {object} dto.VisitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /visits [post]
// @Security BearerAuth
func (h *VisitHandler) CreateVisit(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	visit, err := h.visitService.RecordVisit(c.Request.Context(), auth, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVisitResponse(visit))
}

// ListMyVisits godoc
// @Summary List own visits
// @Description Retrieves the caller's visit history inside a time window, newest first.
// @Tags visits
// @Produce json
// @Param window query string false "Time window: today, week, month or all" default(all)
// @Param limit query int false "Maximum rows, 0 for no limit" default(15)
// @Success 200 {object} dto.ListVisitsResponse
// @Failure 401 {object} ErrorResponse
// @Router /visits [get]
// @Security BearerAuth
func (h *VisitHandler) ListMyVisits(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var params dto.ListVisitsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	window, ok := domain.ParseTimeWindow(params.Window)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown time window: " + params.Window})
		return
	}

	visits, err := h.visitService.ListMyVisits(c.Request.Context(), auth, window, params.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListVisitsResponse(visits))
}

// ListClientNames godoc
// @Summary List known client names
// @Description Retrieves distinct client names across the ledger for entry suggestions.
// @Tags visits
// @Produce json
// @Success 200 {object} dto.ClientNamesResponse
// @Failure 401 {object} ErrorResponse
// @Router /visits/clients [get]
// @Security BearerAuth
func (h *VisitHandler) ListClientNames(c *gin.Context) {
	names, err := h.visitService.ListClientNames(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ClientNamesResponse{Clients: names})
}

// ListUpcomingFollowUps godoc
// @Summary List upcoming follow-ups
// @Description Retrieves the caller's scheduled follow-ups from today onward, soonest first.
// @Tags visits
// @Produce json
// @Success 200 {object} dto.ListVisitsResponse
// @Failure 401 {object} ErrorResponse
// @Router /visits/followups [get]
// @Security BearerAuth
func (h *VisitHandler) ListUpcomingFollowUps(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	visits, err := h.visitService.ListUpcomingFollowUps(c.Request.Context(), auth, time.Time{})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListVisitsResponse(visits))
}

// DeleteVisit godoc
// @Summary Delete an own visit
// @Description Removes one of the caller's visit records. Other collaborators' records cannot be deleted.
// @Tags visits
// @Produce json
// @Param visitID path string true "Visit ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /visits/{visitID} [delete]
// @Security BearerAuth
func (h *VisitHandler) DeleteVisit(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.visitService.DeleteVisit(c.Request.Context(), auth, c.Param("visitID")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MyQuotaProgress godoc
// @Summary Own quota progress
// @Description Retrieves the caller's current-month visit count against their quota target.
// @Tags visits
// @Produce json
// @Success 200 {object} dto.QuotaProgressResponse
// @Failure 401 {object} ErrorResponse
// @Router /me/quota [get]
// @Security BearerAuth
func (h *VisitHandler) MyQuotaProgress(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	progress, err := h.reportingService.QuotaProgress(c.Request.Context(), auth.Email)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToQuotaProgressResponse(auth.Email, progress))
}
