package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BooksController struct {
	store CatalogStore
}

func NewBooksController(store CatalogStore) *BooksController {
	return &BooksController{
		store: store,
	}
}

// GetAllBooks returns the catalog both as ordered entries and as a title to genre map.
// GET /api/books
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books := controller.store.Books()
	c.IndentedJSON(http.StatusOK, gin.H{
		"books":  books,
		"genres": controller.store.GetBooksGenre(),
		"count":  len(books),
	})
}

// AddBook adds a book without a genre.
// POST /api/books
func (controller *BooksController) AddBook(c *gin.Context) {
	var req TitleRequest
	if !bindJSON(c, &req) {
		return
	}

	applied := controller.store.AddNewBook(req.Title)
	status := http.StatusOK
	if applied {
		status = http.StatusCreated
	}
	c.JSON(status, MutationResponse{Applied: applied, Title: req.Title})
}

// GetBookGenre returns the genre of one book. Titles travel in the query
// string because they may contain slashes.
// GET /api/books/genre?title=
func (controller *BooksController) GetBookGenre(c *gin.Context) {
	title, ok := requireQuery(c, "title")
	if !ok {
		return
	}

	genre, found := controller.store.GetBookGenre(title)
	if !found {
		respondNotFound(c, "book")
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": title, "genre": genre})
}

// SetBookGenre assigns a genre from the allow-list to a known book.
// PUT /api/books/genre
func (controller *BooksController) SetBookGenre(c *gin.Context) {
	var req GenreRequest
	if !bindJSON(c, &req) {
		return
	}

	genre, applied := controller.store.AssignGenre(req.Title, req.Genre)
	c.JSON(http.StatusOK, MutationResponse{Applied: applied, Title: req.Title, Genre: genre})
}

// GetBooksByGenre lists the books of exactly one genre.
// GET /api/books/by-genre?genre=
func (controller *BooksController) GetBooksByGenre(c *gin.Context) {
	genre, ok := requireQuery(c, "genre")
	if !ok {
		return
	}

	titles := controller.store.GetBooksWithSpecificGenre(genre)
	c.JSON(http.StatusOK, gin.H{"genre": genre, "titles": titles, "count": len(titles)})
}

// GetBooksForChildren lists the books whose genre is not age-restricted.
// GET /api/books/children
func (controller *BooksController) GetBooksForChildren(c *gin.Context) {
	titles := controller.store.GetBooksForChildren()
	c.JSON(http.StatusOK, gin.H{"titles": titles, "count": len(titles)})
}
