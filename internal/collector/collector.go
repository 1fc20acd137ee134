package collector

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/bookscollector/internal/config"
)

// ErrInvalidConfig is returned when the catalog configuration is unusable.
var ErrInvalidConfig = errors.New("invalid catalog configuration")

// Book is a catalog entry as seen by callers.
type Book struct {
	Title         string `json:"title"`
	Genre         string `json:"genre"`
	AgeRestricted bool   `json:"age_restricted"`
	Favorite      bool   `json:"favorite"`
}

// BooksCollector owns a catalog of books and the favourites picked from it.
type BooksCollector struct {
	mu         sync.RWMutex
	booksGenre map[string]string
	titles     []string // insertion order of booksGenre keys
	favorites  []string

	genres        []string
	allowed       map[string]struct{}
	ageRestricted []string
	restricted    map[string]struct{}

	validate  *validator.Validate
	titleRule string
}

// New creates an empty collector with the default genre configuration.
func New() *BooksCollector {
	c, err := NewWithConfig(config.DefaultCatalog())
	if err != nil {
		panic(err) // defaults are static
	}
	return c
}

// NewWithConfig creates an empty collector for the given genre configuration.
func NewWithConfig(cfg config.Catalog) (*BooksCollector, error) {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	c := &BooksCollector{
		booksGenre:    make(map[string]string),
		titles:        make([]string, 0),
		favorites:     make([]string, 0),
		allowed:       make(map[string]struct{}, len(cfg.Genres)),
		restricted:    make(map[string]struct{}, len(cfg.AgeRestrictedGenres)),
		genres:        make([]string, 0, len(cfg.Genres)),
		ageRestricted: make([]string, 0, len(cfg.AgeRestrictedGenres)),
		validate:      validate,
		titleRule:     fmt.Sprintf("min=%d,max=%d", cfg.MinTitleLength, cfg.MaxTitleLength),
	}

	for _, genre := range cfg.Genres {
		if _, dup := c.allowed[genre]; dup {
			return nil, fmt.Errorf("%w: duplicate genre %q", ErrInvalidConfig, genre)
		}
		c.allowed[genre] = struct{}{}
		c.genres = append(c.genres, genre)
	}

	for _, genre := range cfg.AgeRestrictedGenres {
		if _, ok := c.allowed[genre]; !ok {
			return nil, fmt.Errorf("%w: age-restricted genre %q is not in the genre list", ErrInvalidConfig, genre)
		}
		c.restricted[genre] = struct{}{}
		c.ageRestricted = append(c.ageRestricted, genre)
	}

	return c, nil
}

func (c *BooksCollector) validTitle(title string) bool {
	return c.validate.Var(title, c.titleRule) == nil
}

// AddNewBook adds a book without a genre. Titles outside the length limits
// and titles already in the catalog are ignored.
func (c *BooksCollector) AddNewBook(title string) bool {
	if !c.validTitle(title) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.booksGenre[title]; exists {
		return false
	}
	c.booksGenre[title] = ""
	c.titles = append(c.titles, title)
	return true
}

// SetBookGenre assigns a genre to a known book. Unknown books and genres
// outside the allow-list, including the empty genre, leave the catalog as is.
func (c *BooksCollector) SetBookGenre(title, genre string) bool {
	_, applied := c.AssignGenre(title, genre)
	return applied
}

// AssignGenre works like SetBookGenre and also returns the genre the book
// holds afterwards, read under the same lock. current is "" for unknown books.
func (c *BooksCollector) AssignGenre(title, genre string) (current string, applied bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, exists := c.booksGenre[title]
	if !exists {
		return "", false
	}
	if _, ok := c.allowed[genre]; !ok {
		return current, false
	}
	c.booksGenre[title] = genre
	return genre, true
}

// GetBookGenre returns the genre of a book, "" when none is set.
// ok is false when the book is not in the catalog.
func (c *BooksCollector) GetBookGenre(title string) (genre string, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	genre, ok = c.booksGenre[title]
	return genre, ok
}

// GetBooksGenre returns a copy of the whole catalog.
func (c *BooksCollector) GetBooksGenre() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string, len(c.booksGenre))
	for title, genre := range c.booksGenre {
		out[title] = genre
	}
	return out
}

// GetBooksWithSpecificGenre returns the titles whose genre equals genre
// exactly, in insertion order. The genre is not checked against the allow-list.
func (c *BooksCollector) GetBooksWithSpecificGenre(genre string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.filter(func(g string) bool { return g == genre })
}

// GetBooksForChildren returns the titles whose genre is not age-restricted,
// in insertion order. Books without a genre are included.
func (c *BooksCollector) GetBooksForChildren() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.filter(func(g string) bool {
		_, restricted := c.restricted[g]
		return !restricted
	})
}

// filter must be called with mu held.
func (c *BooksCollector) filter(match func(genre string) bool) []string {
	out := make([]string, 0)
	for _, title := range c.titles {
		if match(c.booksGenre[title]) {
			out = append(out, title)
		}
	}
	return out
}

// AddBookInFavorites appends a catalog book to the favourites.
// Unknown books and books already in the favourites are ignored.
func (c *BooksCollector) AddBookInFavorites(title string) bool {

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.booksGenre[title]; !exists {
		return false
	}
	if slices.Contains(c.favorites, title) {
		return false
	}
	c.favorites = append(c.favorites, title)
	return true
}

// GetListOfFavoritesBooks returns a copy of the favourites in the order they were added.
func (c *BooksCollector) GetListOfFavoritesBooks() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.favorites)
}

// DeleteBookFromFavorites removes a book from the favourites. Removing a
// book that is not there does nothing.
func (c *BooksCollector) DeleteBookFromFavorites(title string) bool {

	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.Index(c.favorites, title)
	if i < 0 {
		return false
	}
	c.favorites = slices.Delete(c.favorites, i, i+1)
	return true
}

// Books returns every catalog entry in insertion order.
func (c *BooksCollector) Books() []Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	books := make([]Book, 0, len(c.titles))
	for _, title := range c.titles {
		genre := c.booksGenre[title]
		_, restricted := c.restricted[genre]
		books = append(books, Book{
			Title:         title,
			Genre:         genre,
			AgeRestricted: restricted,
			Favorite:      slices.Contains(c.favorites, title),
		})
	}
	return books
}

// Len returns the number of books in the catalog.
func (c *BooksCollector) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.booksGenre)
}

// Genres returns the genre allow-list in configured order.
func (c *BooksCollector) Genres() []string {
	return slices.Clone(c.genres)
}

// AgeRestrictedGenres returns the genres not suitable for children.
func (c *BooksCollector) AgeRestrictedGenres() []string {
	return slices.Clone(c.ageRestricted)
}

// IsAgeRestricted reports whether genre is marked as unsuitable for children.
func (c *BooksCollector) IsAgeRestricted(genre string) bool {
	_, ok := c.restricted[genre]
	return ok
}
