package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ldumont/sqlvsorm/internal/entities"
)

// AuthorStore defines database operations for author management.
type AuthorStore interface {
	List(ctx context.Context) ([]entities.Author, error)
	Create(ctx context.Context, name string) (*entities.Author, error)
	Update(ctx context.Context, id uint, updates map[string]any) (*entities.Author, error)
}

type AuthorsController struct {
	store AuthorStore
}

func NewAuthorsController(store AuthorStore) *AuthorsController {
	return &AuthorsController{store: store}
}

type createAuthorRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type updateAuthorRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=100"`
}

// ListAuthors returns all authors ordered by id
// GET /orm/authors
func (ac *AuthorsController) ListAuthors(c *gin.Context) {
	authors, err := ac.store.List(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.JSON(http.StatusOK, authors)
}

// CreateAuthor creates a new author
// POST /orm/authors
func (ac *AuthorsController) CreateAuthor(c *gin.Context) {
	var req createAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	author, err := ac.store.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondStoreError(c, err, "create author")
		return
	}

	c.JSON(http.StatusCreated, author)
}

// UpdateAuthor applies a partial update to an author. Only fields
// present in the body are written; an empty body returns the author
// unchanged.
// PATCH /orm/authors/:id
func (ac *AuthorsController) UpdateAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}

	author, err := ac.store.Update(c.Request.Context(), id, updates)
	if err != nil {
		respondStoreError(c, err, "update author")
		return
	}

	c.JSON(http.StatusOK, author)
}
