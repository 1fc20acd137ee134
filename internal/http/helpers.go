package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// MutationResponse reports the outcome of a write. Applied is false when
// the collector ignored the request; that is not an error.
type MutationResponse struct {
	Applied bool   `json:"applied"`
	Title   string `json:"title"`
	Genre   string `json:"genre,omitempty"`
}

// TitleRequest is the body of requests that name a single book.
type TitleRequest struct {
	Title string `json:"title"`
}

// GenreRequest is the body of a genre assignment. A null genre binds to ""
// and is ignored like any other genre outside the allow-list.
type GenreRequest struct {
	Title string `json:"title"`
	Genre string `json:"genre"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// --- Request Parsing ---

// bindJSON decodes the request body into dst.
// Responds with a 400 error and returns false when the body is malformed.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// requireQuery extracts a query parameter that must be present.
// An empty value is allowed; only a missing key is rejected.
func requireQuery(c *gin.Context, name string) (string, bool) {
	value, ok := c.GetQuery(name)
	if !ok {
		respondBadRequest(c, name+" is required")
		return "", false
	}
	return value, true
}
