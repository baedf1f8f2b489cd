package entities

import "time"

// Author owns zero or more books.
type Author struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Books []Book `gorm:"foreignKey:AuthorID" json:"-"`
}

// Book belongs to exactly one author and to at most one publisher.
// Author is navigable; Publisher deliberately is not — resolving the
// publisher of a book requires an explicit join on PublisherID, which
// keeps the query cost visible at the call site.
type Book struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Pages       int    `gorm:"not null" json:"pages"`
	AuthorID    uint   `gorm:"index;not null" json:"author_id"`
	PublisherID *uint  `gorm:"index" json:"publisher_id,omitempty"`
	Author      Author `gorm:"foreignKey:AuthorID" json:"-"`
}

type Publisher struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:150;not null" json:"name"`
}

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:50;not null" json:"name"`
}

// BookTag is the book/tag association. It carries its own attribute
// (TaggedAt), so it is a full entity with a composite primary key
// rather than a bare many2many join table.
type BookTag struct {
	BookID   uint      `gorm:"primaryKey;autoIncrement:false" json:"book_id"`
	TagID    uint      `gorm:"primaryKey;autoIncrement:false" json:"tag_id"`
	TaggedAt time.Time `gorm:"not null" json:"tagged_at"`
	Book     Book      `gorm:"foreignKey:BookID" json:"-"`
	Tag      Tag       `gorm:"foreignKey:TagID" json:"-"`
}

func (Author) TableName() string {
	return "authors"
}

func (Book) TableName() string {
	return "books"
}

func (Publisher) TableName() string {
	return "publishers"
}

func (Tag) TableName() string {
	return "tags"
}

func (BookTag) TableName() string {
	return "book_tags"
}
