package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	catalog    CatalogStore
	favourites FavouritesStore
	version    string
}

func NewHealthController(catalog CatalogStore, favourites FavouritesStore, version string) *HealthController {
	return &HealthController{
		catalog:    catalog,
		favourites: favourites,
		version:    version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.catalog != nil {
		checks["catalog"] = "ok"
		checks["books"] = strconv.Itoa(h.catalog.Len())
	} else {
		checks["catalog"] = "not configured"
		status = "unhealthy"
	}

	if h.favourites != nil {
		checks["favourites"] = strconv.Itoa(len(h.favourites.GetListOfFavoritesBooks()))
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
