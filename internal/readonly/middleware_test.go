package readonly

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(m *Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(m.Handler())

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.GET("/api/books", ok)
	router.HEAD("/api/books", ok)
	router.POST("/api/books", ok)
	router.PUT("/api/books/genre", ok)
	router.DELETE("/api/favourites", ok)
	return router
}

func TestMiddleware_Handler(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		method   string
		path     string
		expected int
	}{
		{name: "allows GET when enabled", enabled: true, method: http.MethodGet, path: "/api/books", expected: http.StatusOK},
		{name: "allows HEAD when enabled", enabled: true, method: http.MethodHead, path: "/api/books", expected: http.StatusOK},
		{name: "blocks POST when enabled", enabled: true, method: http.MethodPost, path: "/api/books", expected: http.StatusForbidden},
		{name: "blocks PUT when enabled", enabled: true, method: http.MethodPut, path: "/api/books/genre", expected: http.StatusForbidden},
		{name: "blocks DELETE when enabled", enabled: true, method: http.MethodDelete, path: "/api/favourites", expected: http.StatusForbidden},
		{name: "allows POST when disabled", enabled: false, method: http.MethodPost, path: "/api/books", expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(NewMiddleware(tt.enabled))

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestMiddleware_BlockedResponse(t *testing.T) {
	router := setupRouter(NewMiddleware(true))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/books", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "catalog is read-only", "read_only": true}`, w.Body.String())
}

func TestMiddleware_IsEnabled(t *testing.T) {
	assert.True(t, NewMiddleware(true).IsEnabled())
	assert.False(t, NewMiddleware(false).IsEnabled())
}
