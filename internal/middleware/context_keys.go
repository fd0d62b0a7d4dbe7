package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rovema/comercial-backend/internal/core/domain"
)

// authCtxKey is the key used to store the authenticated user's context.
const authCtxKey = contextKey("authContext")

// GetAuthFromContext retrieves the authenticated user's AuthContext from the
// request. It returns the context and a boolean indicating if it was found.
func GetAuthFromContext(c *gin.Context) (domain.AuthContext, bool) {
	auth, ok := c.Request.Context().Value(authCtxKey).(domain.AuthContext)
	return auth, ok
}
