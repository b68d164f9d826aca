package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/utils"
)

// RequireAuth extracts the authenticated user id forwarded by the gateway.
// Token verification happens upstream; this service only trusts the header.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				utils.CreateErrorResponse("UNAUTHORIZED", "Authentication required"))
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

// requestContext bounds every store operation behind a handler to the
// configured timeout.
func requestContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}

// respondError maps a service error onto the response envelope. Unknown
// errors become SERVER_ERROR with a 500.
func respondError(c *gin.Context, err error) {
	appErr := models.AsAppError(err)
	c.JSON(appErr.HTTPStatus(), utils.CreateErrorResponse(appErr.Code, appErr.Message))
}
