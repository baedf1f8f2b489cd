package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Join-style read endpoints. Each one surfaces the same underlying
// book/author/publisher data through a different query shape.

// ListBooksWithAuthors returns books with the author name flattened
// into a scalar column
// GET /orm/books-with-authors
func (bc *BooksController) ListBooksWithAuthors(c *gin.Context) {
	result, err := bc.store.ListWithAuthorName(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books with authors")
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListBooksWithAuthorObject returns books with the author attached as
// a nested object
// GET /orm/books-with-author-object
func (bc *BooksController) ListBooksWithAuthorObject(c *gin.Context) {
	result, err := bc.store.ListWithAuthor(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books with author object")
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListBooksWithPublisher left-joins publishers; publisher_name is null
// for books without one
// GET /orm/books-with-publisher
func (bc *BooksController) ListBooksWithPublisher(c *gin.Context) {
	result, err := bc.store.ListWithPublisher(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books with publisher")
		return
	}
	c.JSON(http.StatusOK, result)
}
