// Package books provides database operations for the book catalog.
//
// The read operations deliberately span several query styles — a raw
// textual query, builder joins with flattened projections, a
// single-query join with a nested struct, and a batched two-query
// eager load for the tag collections — so each access idiom stays
// visible at the repository boundary.
package books

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ldumont/sqlvsorm/internal/database"
	"github.com/ldumont/sqlvsorm/internal/entities"
)

// DateLayout is how tagged_at dates appear on the wire.
const DateLayout = "2006-01-02"

// BookSummary is the raw-SQL projection of a book row.
type BookSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// BookWithAuthorName flattens the joined author into a scalar column.
type BookWithAuthorName struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Pages      int    `json:"pages"`
	AuthorName string `json:"author_name"`
}

// BookWithAuthor carries the author as a nested object instead of a
// flattened column.
type BookWithAuthor struct {
	ID     uint            `json:"id"`
	Title  string          `json:"title"`
	Pages  int             `json:"pages"`
	Author entities.Author `json:"author"`
}

// BookWithPublisher is a left-join projection: PublisherName is nil,
// and serializes as null, for books without a publisher.
type BookWithPublisher struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Pages         int     `json:"pages"`
	PublisherName *string `json:"publisher_name"`
}

// TagRef is one tag association of a book.
type TagRef struct {
	Name     string `json:"name"`
	TaggedAt string `json:"tagged_at"`
}

// BookWithTags carries the full tag set of a book.
type BookWithTags struct {
	ID    uint     `json:"id"`
	Title string   `json:"title"`
	Tags  []TagRef `json:"tags"`
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all books ordered by id.
func (r *Repository) List(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).Order("id ASC").Find(&books).Error
	return books, err
}

// Create inserts a new book. The author is checked explicitly before
// the insert so an unknown author_id comes back as ErrAuthorNotFound
// instead of a bare foreign-key violation.
func (r *Repository) Create(ctx context.Context, title string, pages int, authorID uint) (*entities.Book, error) {
	book := &entities.Book{Title: title, Pages: pages, AuthorID: authorID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var author entities.Author
		if err := tx.First(&author, authorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return database.ErrAuthorNotFound
			}
			return err
		}
		return tx.Create(book).Error
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// ListRaw fetches book summaries through a textual query and manual
// row mapping, bypassing the query builder entirely.
func (r *Repository) ListRaw(ctx context.Context) ([]BookSummary, error) {
	var summaries []BookSummary
	err := r.db.WithContext(ctx).
		Raw("SELECT id, title FROM books ORDER BY id").
		Scan(&summaries).Error
	return summaries, err
}

// ListWithAuthorName inner-joins authors and projects the author name
// as a flattened column.
func (r *Repository) ListWithAuthorName(ctx context.Context) ([]BookWithAuthorName, error) {
	var rows []BookWithAuthorName
	err := r.db.WithContext(ctx).
		Model(&entities.Book{}).
		Select("books.id, books.title, books.pages, authors.name AS author_name").
		Joins("JOIN authors ON authors.id = books.author_id").
		Order("books.id ASC").
		Scan(&rows).Error
	return rows, err
}

// ListWithAuthor returns the same join as ListWithAuthorName but
// surfaces the author as a nested object. Joins loads the one-to-one
// side within a single SELECT, so no rows are duplicated and no
// follow-up query runs.
func (r *Repository) ListWithAuthor(ctx context.Context) ([]BookWithAuthor, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).
		Joins("Author").
		Order("books.id ASC").
		Find(&books).Error
	if err != nil {
		return nil, err
	}

	rows := make([]BookWithAuthor, 0, len(books))
	for _, b := range books {
		rows = append(rows, BookWithAuthor{
			ID:     b.ID,
			Title:  b.Title,
			Pages:  b.Pages,
			Author: b.Author,
		})
	}
	return rows, nil
}

// ListWithPublisher left-joins publishers on the foreign key. There is
// no navigable Book→Publisher relation, so the join is spelled out;
// publisher_name stays NULL for books without a publisher.
func (r *Repository) ListWithPublisher(ctx context.Context) ([]BookWithPublisher, error) {
	var rows []BookWithPublisher
	err := r.db.WithContext(ctx).
		Model(&entities.Book{}).
		Select("books.id, books.title, books.pages, publishers.name AS publisher_name").
		Joins("LEFT JOIN publishers ON publishers.id = books.publisher_id").
		Order("books.id ASC").
		Scan(&rows).Error
	return rows, err
}

// ListWithTags returns every book with its full tag set attached.
// Exactly two queries run no matter how many books exist: one for the
// books, one for all their tag associations with the tag names joined
// in. Tag order within a book follows association insertion.
func (r *Repository) ListWithTags(ctx context.Context) ([]BookWithTags, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).Order("id ASC").Find(&books).Error
	if err != nil {
		return nil, err
	}
	return r.attachTags(ctx, books)
}

// ListByTag returns the books associated with the named tag, each with
// its full tag set (not just the matching one). An unknown tag name is
// ErrTagNotFound.
func (r *Repository) ListByTag(ctx context.Context, tagName string) ([]BookWithTags, error) {
	var tag entities.Tag
	err := r.db.WithContext(ctx).Where("name = ?", tagName).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrTagNotFound
	}
	if err != nil {
		return nil, err
	}

	var books []entities.Book
	err = r.db.WithContext(ctx).
		Joins("JOIN book_tags ON book_tags.book_id = books.id").
		Joins("JOIN tags ON tags.id = book_tags.tag_id").
		Where("tags.name = ?", tagName).
		Order("books.id ASC").
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return r.attachTags(ctx, books)
}

// bookTagRow is the scan target for the batched association query.
type bookTagRow struct {
	BookID   uint
	Name     string
	TaggedAt time.Time
}

// attachTags loads the tag associations for the given books in one
// batched query keyed by the already-loaded book ids.
func (r *Repository) attachTags(ctx context.Context, books []entities.Book) ([]BookWithTags, error) {
	result := make([]BookWithTags, 0, len(books))
	if len(books) == 0 {
		return result, nil
	}

	ids := make([]uint, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}

	var rows []bookTagRow
	err := r.db.WithContext(ctx).
		Table("book_tags").
		Select("book_tags.book_id, tags.name, book_tags.tagged_at").
		Joins("JOIN tags ON tags.id = book_tags.tag_id").
		Where("book_tags.book_id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	tagsByBook := make(map[uint][]TagRef, len(books))
	for _, row := range rows {
		tagsByBook[row.BookID] = append(tagsByBook[row.BookID], TagRef{
			Name:     row.Name,
			TaggedAt: row.TaggedAt.Format(DateLayout),
		})
	}

	for _, b := range books {
		tags := tagsByBook[b.ID]
		if tags == nil {
			tags = []TagRef{}
		}
		result = append(result, BookWithTags{ID: b.ID, Title: b.Title, Tags: tags})
	}
	return result, nil
}
