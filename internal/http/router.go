package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ldumont/sqlvsorm/internal/database"
)

// RouterConfig carries all controller dependencies, improving
// testability and reducing parameter count.
type RouterConfig struct {
	Database    *database.Database
	AuthorStore AuthorStore
	BookStore   BookStore
	Version     string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	authorsController := NewAuthorsController(cfg.AuthorStore)
	booksController := NewBooksController(cfg.BookStore)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "API is running",
		})
	})

	// Raw SQL endpoints
	raw := router.Group("/raw")
	raw.GET("/books", booksController.ListBooksRaw)

	// ORM endpoints: simple fetches, joins, eager-loaded collections
	orm := router.Group("/orm")
	orm.GET("/authors", authorsController.ListAuthors)
	orm.POST("/authors", authorsController.CreateAuthor)
	orm.PATCH("/authors/:id", authorsController.UpdateAuthor)
	orm.GET("/books", booksController.ListBooks)
	orm.POST("/books", booksController.CreateBook)
	orm.GET("/books-with-authors", booksController.ListBooksWithAuthors)
	orm.GET("/books-with-author-object", booksController.ListBooksWithAuthorObject)
	orm.GET("/books-with-publisher", booksController.ListBooksWithPublisher)
	orm.GET("/books-with-tags", booksController.ListBooksWithTags)
	orm.GET("/books-by-tag/:tagName", booksController.ListBooksByTag)

	return router
}
