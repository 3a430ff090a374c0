package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/infrastructure/logger"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/interfaces/http/dto"
)

// PanelIDHeader carries the authenticated panel on every dashboard request.
// The reverse proxy in front of this service resolves the session and
// injects the header.
const PanelIDHeader = "X-Panel-ID"

// panelIDContextKey is the gin context key holding the parsed panel ID
const panelIDContextKey = "panel_id"

// RequirePanel extracts and validates the panel ID header. Requests
// without a parseable panel ID are rejected before reaching handlers.
func RequirePanel() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(PanelIDHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Missing panel identity"))
			return
		}

		panelID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Invalid panel identity"))
			return
		}

		c.Set(panelIDContextKey, panelID)

		ctx, _ := logger.WithPanelID(c.Request.Context(), logger.FromContext(c.Request.Context()), panelID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// SetPanelID stores a resolved panel ID on the context. Used by the API
// key middleware, which derives the panel from the key instead of the
// header.
func SetPanelID(c *gin.Context, panelID uuid.UUID) {
	c.Set(panelIDContextKey, panelID)
}

// GetPanelID returns the panel ID set by RequirePanel or SetPanelID
func GetPanelID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(panelIDContextKey)
	if !exists {
		return uuid.Nil, false
	}
	panelID, ok := value.(uuid.UUID)
	return panelID, ok
}
