// Package interfaces documents the abstractions between the HTTP layer and
// the catalog.
//
// # Store Interfaces
//
// Controllers in internal/http depend on narrow interfaces (see
// internal/http/stores.go), each implemented by *collector.BooksCollector:
//
//   - CatalogStore: books and genres
//   - FavouritesStore: the favourites list
//   - GenreSource: the genre allow-list and its age-restricted subset
//
// # Adding a New Endpoint
//
//  1. Add the operation to collector.BooksCollector, keeping the
//     silent no-op policy for invalid input: return false, never an error.
//
//  2. Extend the matching store interface in internal/http/stores.go.
//
//  3. Add the handler and register the route in router.go.
//
// # Compile-Time Interface Checks
//
// Every implementation is checked at compile time in checks.go:
//
//	var _ http.CatalogStore = (*collector.BooksCollector)(nil)
package interfaces
