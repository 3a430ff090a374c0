package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/panel"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/domain/shared"
	"github.com/NoMulaax/MoonSoftwareMeta/internal/interfaces/http/dto"
)

// APIKeyAuth authenticates external API requests with a bearer API key.
// The key resolves to a panel whose license must be active; every
// authenticated request consumes one API use. The use is consumed before
// the guarded operation runs, so a failed operation still spends quota.
func APIKeyAuth(settingsRepo panel.SettingsRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := bearerToken(c.GetHeader("Authorization"))
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Missing API key"))
			return
		}

		settings, err := settingsRepo.FindByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			if err == shared.ErrNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Invalid API key"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(dto.ErrCodeInternal, "An unexpected error occurred"))
			return
		}

		if !settings.HasAPIUses() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeQuotaExhausted, shared.ErrQuotaExhausted.Message))
			return
		}

		consumed, err := settingsRepo.ConsumeAPIUse(c.Request.Context(), settings.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(dto.ErrCodeInternal, "An unexpected error occurred"))
			return
		}
		if !consumed {
			// Lost a race with a concurrent request spending the last use
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeQuotaExhausted, shared.ErrQuotaExhausted.Message))
			return
		}

		SetPanelID(c, settings.ID)
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(header)
}
