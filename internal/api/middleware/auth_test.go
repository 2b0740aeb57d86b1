package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tokentrack/burn-tracker/internal/api/middleware"
	"github.com/tokentrack/burn-tracker/internal/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)
	code := m.Run()
	os.Exit(code)
}

func cronAuthRouter(secret string) *gin.Engine {
	router := gin.New()
	router.GET("/protected",
		middleware.CronAuth(middleware.AuthConfig{CronSecret: secret}),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	return router
}

func TestCronAuth_ValidSecret(t *testing.T) {
	router := cronAuthRouter("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCronAuth_BearerIsCaseInsensitive(t *testing.T) {
	router := cronAuthRouter("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "bearer s3cret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCronAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
	}{
		{name: "missing header", secret: "s3cret", header: ""},
		{name: "wrong secret", secret: "s3cret", header: "Bearer nope"},
		{name: "not bearer", secret: "s3cret", header: "Basic s3cret"},
		{name: "unconfigured secret", secret: "", header: "Bearer s3cret"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := cronAuthRouter(tc.secret)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "unauthorized")
		})
	}
}
