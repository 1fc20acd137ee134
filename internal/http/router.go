package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.ReadOnlyMiddleware != nil && cfg.ReadOnlyMiddleware.IsEnabled() {
		router.Use(cfg.ReadOnlyMiddleware.Handler())
	}

	health := NewHealthController(cfg.Catalog, cfg.Favourites, cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Catalog endpoints
	if cfg.Catalog != nil {
		books := NewBooksController(cfg.Catalog)
		router.GET("/api/books", books.GetAllBooks)
		router.POST("/api/books", books.AddBook)
		router.GET("/api/books/genre", books.GetBookGenre)
		router.PUT("/api/books/genre", books.SetBookGenre)
		router.GET("/api/books/by-genre", books.GetBooksByGenre)
		router.GET("/api/books/children", books.GetBooksForChildren)
	}

	// Favourites endpoints
	if cfg.Favourites != nil {
		favourites := NewFavouritesController(cfg.Favourites)
		router.GET("/api/favourites", favourites.ListFavourites)
		router.POST("/api/favourites", favourites.AddFavourite)
		router.DELETE("/api/favourites", favourites.RemoveFavourite)
	}

	if cfg.Genres != nil {
		genres := NewGenresController(cfg.Genres)
		router.GET("/api/genres", genres.ListGenres)
	}

	return router
}
