package interfaces

// Compile-time interface implementation checks.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookscollector/internal/collector"
	"github.com/mrlokans/bookscollector/internal/http"
)

// One collector serves every HTTP store.
var (
	_ http.CatalogStore    = (*collector.BooksCollector)(nil)
	_ http.FavouritesStore = (*collector.BooksCollector)(nil)
	_ http.GenreSource     = (*collector.BooksCollector)(nil)
)
