package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FavouritesController struct {
	store FavouritesStore
}

func NewFavouritesController(store FavouritesStore) *FavouritesController {
	return &FavouritesController{store: store}
}

// AddFavourite appends a catalog book to the favourites.
// POST /api/favourites
func (fc *FavouritesController) AddFavourite(c *gin.Context) {
	var req TitleRequest
	if !bindJSON(c, &req) {
		return
	}

	applied := fc.store.AddBookInFavorites(req.Title)
	c.JSON(http.StatusOK, MutationResponse{Applied: applied, Title: req.Title})
}

// RemoveFavourite removes a book from the favourites.
// DELETE /api/favourites?title=
func (fc *FavouritesController) RemoveFavourite(c *gin.Context) {
	title, ok := requireQuery(c, "title")
	if !ok {
		return
	}

	applied := fc.store.DeleteBookFromFavorites(title)
	c.JSON(http.StatusOK, MutationResponse{Applied: applied, Title: title})
}

// ListFavourites returns the favourites in the order they were added.
// GET /api/favourites
func (fc *FavouritesController) ListFavourites(c *gin.Context) {
	titles := fc.store.GetListOfFavoritesBooks()
	c.JSON(http.StatusOK, gin.H{
		"titles": titles,
		"count":  len(titles),
	})
}
