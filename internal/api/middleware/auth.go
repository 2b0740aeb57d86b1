package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tokentrack/burn-tracker/internal/logger"
)

// AuthConfig holds the shared-secret configuration for cron and worker routes
type AuthConfig struct {
	CronSecret string
}

// CronAuth returns a gin middleware that requires "Authorization: Bearer
// <cron secret>" on scheduler and operator routes
func CronAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if err := validateCronSecret(authHeader, cfg.CronSecret); err != "" {
			logger.Warn("Cron authentication failed",
				zap.String("reason", err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "unauthorized",
					"message": "Authentication failed",
				},
			})
			return
		}
		c.Next()
	}
}

// validateCronSecret checks the Authorization header against the configured
// secret. Returns an empty string on success, a reason on failure.
func validateCronSecret(authHeader, secret string) string {
	if secret == "" {
		return "cron secret not configured"
	}
	if authHeader == "" {
		return "missing Authorization header"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "invalid Authorization header format"
	}

	if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(secret)) != 1 {
		return "invalid cron secret"
	}
	return ""
}
