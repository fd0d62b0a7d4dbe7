package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/rovema/comercial-backend/internal/core/ports/services"
	"github.com/rovema/comercial-backend/internal/dto"
	"github.com/rovema/comercial-backend/internal/middleware"
)

// UserHandler handles account management requests.
type UserHandler struct {
	userService portssvc.UserSvcFacade
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService portssvc.UserSvcFacade) *UserHandler {
	return &UserHandler{userService: userService}
}

// registerUserRoutes sets up the account management routes. Mutating routes
// and the full listing are admin only; the collaborator-name list is open to
// any authenticated caller since it feeds report filter dropdowns.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := NewUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/collaborators", h.ListCollaboratorNames)
		users.PUT("/me/password", h.ChangeOwnPassword)

		admin := users.Group("", middleware.RequireAdmin())
		{
			admin.POST("", h.CreateUser)
			admin.GET("", h.ListUsers)
			admin.PATCH("/:email", h.UpdateUser)
		}
	}
}

// CreateUser godoc
// @Summary Create an account
// @Description Creates a collaborator or admin account. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Account data"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users [post]
// @Security BearerAuth
func (h *UserHandler) CreateUser(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req, auth)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// ListUsers godoc
// @Summary List accounts
// @Description Retrieves all accounts ordered by name. Admin only.
// @Tags users
// @Produce json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} ErrorResponse
// @Router /users [get]
// @Security BearerAuth
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// UpdateUser godoc
// @Summary Update an account
// @Description Applies a partial update (name, role, active flag, password) to an account. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "Account email"
// @Param user body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{email} [patch]
// @Security BearerAuth
func (h *UserHandler) UpdateUser(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("email"), req, auth)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ChangeOwnPassword godoc
// @Summary Change own password
// @Description Replaces the caller's password.
// @Tags users
// @Accept json
// @Produce json
// @Param password body dto.ChangePasswordRequest true "New password"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /users/me/password [put]
// @Security BearerAuth
func (h *UserHandler) ChangeOwnPassword(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.userService.SetPassword(c.Request.Context(), auth.Email, req.Password, auth); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCollaboratorNames godoc
// @Summary List collaborator names
// @Description Retrieves the distinct names of active collaborators for filter dropdowns.
// @Tags users
// @Produce json
// @Success 200 {object} dto.CollaboratorNamesResponse
// @Failure 401 {object} ErrorResponse
// @Router /users/collaborators [get]
// @Security BearerAuth
func (h *UserHandler) ListCollaboratorNames(c *gin.Context) {
	names, err := h.userService.ListCollaboratorNames(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CollaboratorNamesResponse{Names: names})
}
