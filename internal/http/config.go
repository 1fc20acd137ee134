package http

import "github.com/mrlokans/bookscollector/internal/readonly"

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Catalog    CatalogStore
	Favourites FavouritesStore
	Genres     GenreSource

	// Application info
	Version string

	// Write protection, nil when disabled
	ReadOnlyMiddleware *readonly.Middleware
}
