package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListBooksWithTags returns every book with its tag associations,
// loaded with a bounded number of queries
// GET /orm/books-with-tags
func (bc *BooksController) ListBooksWithTags(c *gin.Context) {
	result, err := bc.store.ListWithTags(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books with tags")
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListBooksByTag returns the books carrying the named tag, each with
// its full tag set
// GET /orm/books-by-tag/:tagName
func (bc *BooksController) ListBooksByTag(c *gin.Context) {
	tagName := c.Param("tagName")

	result, err := bc.store.ListByTag(c.Request.Context(), tagName)
	if err != nil {
		respondStoreError(c, err, "list books by tag")
		return
	}
	c.JSON(http.StatusOK, result)
}
