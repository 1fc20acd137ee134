package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type GenresController struct {
	source GenreSource
}

func NewGenresController(source GenreSource) *GenresController {
	return &GenresController{source: source}
}

// ListGenres returns the allow-list and its age-restricted subset.
// GET /api/genres
func (gc *GenresController) ListGenres(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"genres":         gc.source.Genres(),
		"age_restricted": gc.source.AgeRestrictedGenres(),
	})
}
