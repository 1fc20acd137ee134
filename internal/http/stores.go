package http

import "github.com/mrlokans/bookscollector/internal/collector"

// This file consolidates the store interfaces used by HTTP controllers.
// Each controller depends only on the methods it calls; in production all
// of them are served by a single *collector.BooksCollector.

// CatalogStore provides access to books and their genres.
type CatalogStore interface {
	AddNewBook(title string) bool
	AssignGenre(title, genre string) (string, bool)
	GetBookGenre(title string) (string, bool)
	GetBooksGenre() map[string]string
	GetBooksWithSpecificGenre(genre string) []string
	GetBooksForChildren() []string
	Books() []collector.Book
	Len() int
}

// FavouritesStore provides access to the favourites list.
type FavouritesStore interface {
	AddBookInFavorites(title string) bool
	GetListOfFavoritesBooks() []string
	DeleteBookFromFavorites(title string) bool
}

// GenreSource exposes the genre configuration.
type GenreSource interface {
	Genres() []string
	AgeRestrictedGenres() []string
}
