package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldumont/sqlvsorm/internal/entities"
)

func TestBooksController_ListBooksRaw(t *testing.T) {
	router, _, cleanup := setupTestRouter(t, true)
	defer cleanup()

	w := doRequest(t, router, "GET", "/raw/books", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 3)
	assert.Equal(t, "Notes on the Analytical Engine", response[0]["title"])
	// The raw projection carries only id and title
	assert.Len(t, response[0], 2)
}

func TestBooksController_ListBooks(t *testing.T) {
	router, _, cleanup := setupTestRouter(t, true)
	defer cleanup()

	w := doRequest(t, router, "GET", "/orm/books", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 3)
	assert.Equal(t, float64(120), response[0]["pages"])
	assert.NotZero(t, response[0]["author_id"])
}

func TestBooksController_CreateBook(t *testing.T) {
	t.Run("creates book and returns 201", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t, true)
		defer cleanup()

		w := doRequest(t, router, "POST", "/orm/books", `{"title":"On Computable Numbers","pages":36,"author_id":3}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotZero(t, response["id"])
		assert.Equal(t, "On Computable Numbers", response["title"])
		assert.Equal(t, float64(3), response["author_id"])
	})

	t.Run("returns 404 for an unknown author and persists nothing", func(t *testing.T) {
		router, db, cleanup := setupTestRouter(t, true)
		defer cleanup()

		w := doRequest(t, router, "POST", "/orm/books", `{"title":"X Y","pages":100,"author_id":999}`)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var count int64
		require.NoError(t, db.DB.Model(&entities.Book{}).Count(&count).Error)
		assert.Equal(t, int64(3), count)
	})

	t.Run("returns 422 for out-of-range pages", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t, true)
		defer cleanup()

		w := doRequest(t, router, "POST", "/orm/books", `{"title":"Too Long","pages":5000,"author_id":1}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"pages"`)
	})

	t.Run("returns 422 when fields are missing", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t, true)
		defer cleanup()

		w := doRequest(t, router, "POST", "/orm/books", `{"title":"No Pages"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestBooksController_ListBooksWithAuthors(t *testing.T) {
	router, _, cleanup := setupTestRouter(t, true)
	defer cleanup()

	w := doRequest(t, router, "GET", "/orm/books-with-authors", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 3)
	// Flattened projection: author is a scalar column
	assert.Equal(t, "Ada Lovelace", response[0]["author_name"])
	assert.NotContains(t, response[0], "author")
}

func TestBooksController_ListBooksWithAuthorObject(t *testing.T) {
	router, _, cleanup := setupTestRouter(t, true)
	defer cleanup()

	w := doRequest(t, router, "GET", "/orm/books-with-author-object", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 3)

	author, ok := response[0]["author"].(map[string]any)
	require.True(t, ok, "author should be a nested object")
	assert.Equal(t, "Ada Lovelace", author["name"])
	assert.NotZero(t, author["id"])
}

func TestBooksController_ListBooksWithPublisher(t *testing.T) {
	router, _, cleanup := setupTestRouter(t, true)
	defer cleanup()

	w := doRequest(t, router, "GET", "/orm/books-with-publisher", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 3)
	assert.Equal(t, "Taylor & Francis", response[0]["publisher_name"])
	assert.Equal(t, "Mind Press", response[1]["publisher_name"])
	// The unpublished book serializes as an explicit null
	val, present := response[2]["publisher_name"]
	assert.True(t, present)
	assert.Nil(t, val)
}

func TestBooksController_ListBooksWithTags(t *testing.T) {
	router, _, cleanup := setupTestRouter(t, true)
	defer cleanup()

	w := doRequest(t, router, "GET", "/orm/books-with-tags", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 3)

	tags, ok := response[0]["tags"].([]any)
	require.True(t, ok)
	require.Len(t, tags, 2)
	first := tags[0].(map[string]any)
	assert.Equal(t, "algorithms", first["name"])
	assert.Equal(t, "2024-01-15", first["tagged_at"])
}

func TestBooksController_ListBooksByTag(t *testing.T) {
	t.Run("filters to books carrying the tag", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t, true)
		defer cleanup()

		w := doRequest(t, router, "GET", "/orm/books-by-tag/computing", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var response []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 2)
		assert.Equal(t, "Compilers and Cobol", response[0]["title"])
		assert.Equal(t, "Computing Machinery and Intelligence", response[1]["title"])

		// Full tag sets come back, not just the filter tag
		tags := response[1]["tags"].([]any)
		assert.Len(t, tags, 2)
	})

	t.Run("returns 404 for an unknown tag", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t, true)
		defer cleanup()

		w := doRequest(t, router, "GET", "/orm/books-by-tag/romance", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "tag not found")
	})
}
