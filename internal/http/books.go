package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ldumont/sqlvsorm/internal/database/books"
	"github.com/ldumont/sqlvsorm/internal/entities"
)

// BookStore defines database operations for the book catalog,
// spanning every query style the API demonstrates.
type BookStore interface {
	List(ctx context.Context) ([]entities.Book, error)
	Create(ctx context.Context, title string, pages int, authorID uint) (*entities.Book, error)
	ListRaw(ctx context.Context) ([]books.BookSummary, error)
	ListWithAuthorName(ctx context.Context) ([]books.BookWithAuthorName, error)
	ListWithAuthor(ctx context.Context) ([]books.BookWithAuthor, error)
	ListWithPublisher(ctx context.Context) ([]books.BookWithPublisher, error)
	ListWithTags(ctx context.Context) ([]books.BookWithTags, error)
	ListByTag(ctx context.Context, tagName string) ([]books.BookWithTags, error)
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

type createBookRequest struct {
	Title    string `json:"title" binding:"required,min=2,max=200"`
	Pages    int    `json:"pages" binding:"required,gt=0,lte=2000"`
	AuthorID uint   `json:"author_id" binding:"required,gt=0"`
}

// ListBooks returns all books ordered by id
// GET /orm/books
func (bc *BooksController) ListBooks(c *gin.Context) {
	result, err := bc.store.List(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateBook creates a new book for an existing author
// POST /orm/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	book, err := bc.store.Create(c.Request.Context(), req.Title, req.Pages, req.AuthorID)
	if err != nil {
		respondStoreError(c, err, "create book")
		return
	}

	c.JSON(http.StatusCreated, book)
}

// ListBooksRaw returns book summaries via a raw textual SQL query
// GET /raw/books
func (bc *BooksController) ListBooksRaw(c *gin.Context) {
	result, err := bc.store.ListRaw(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books raw")
		return
	}
	c.JSON(http.StatusOK, result)
}
