package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ldumont/sqlvsorm/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the sqlite database at dbPath and creates any
// missing tables. Schema creation is idempotent; existing tables and
// rows are left untouched.
func NewDatabase(dbPath string, logSQL bool) (*Database, error) {
	logLevel := logger.Warn
	if logSQL {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Publisher{},
		&entities.Book{},
		&entities.Tag{},
		&entities.BookTag{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedIfEmpty populates the reference dataset when the authors table
// has no rows. The whole seed runs in one transaction, so a restart
// against a half-seeded database cannot happen; a non-empty authors
// table makes this a no-op.
func (d *Database) SeedIfEmpty() error {
	var authorCount int64
	if err := d.DB.Model(&entities.Author{}).Count(&authorCount).Error; err != nil {
		return fmt.Errorf("failed to count authors: %w", err)
	}
	if authorCount > 0 {
		return nil
	}

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		authors := []entities.Author{
			{Name: "Ada Lovelace"},
			{Name: "Grace Hopper"},
			{Name: "Alan Turing"},
		}
		if err := tx.Create(&authors).Error; err != nil {
			return err
		}

		publishers := []entities.Publisher{
			{Name: "Taylor & Francis"},
			{Name: "Mind Press"},
		}
		if err := tx.Create(&publishers).Error; err != nil {
			return err
		}

		// The third book intentionally has no publisher so the left
		// join endpoint has a NULL to show.
		books := []entities.Book{
			{Title: "Notes on the Analytical Engine", Pages: 120, AuthorID: authors[0].ID, PublisherID: &publishers[0].ID},
			{Title: "Compilers and Cobol", Pages: 220, AuthorID: authors[1].ID, PublisherID: &publishers[1].ID},
			{Title: "Computing Machinery and Intelligence", Pages: 90, AuthorID: authors[2].ID},
		}
		if err := tx.Create(&books).Error; err != nil {
			return err
		}

		tags := []entities.Tag{
			{Name: "algorithms"},
			{Name: "computing"},
			{Name: "history"},
			{Name: "ai"},
		}
		if err := tx.Create(&tags).Error; err != nil {
			return err
		}

		bookTags := []entities.BookTag{
			{BookID: books[0].ID, TagID: tags[0].ID, TaggedAt: date(2024, 1, 15)},
			{BookID: books[0].ID, TagID: tags[2].ID, TaggedAt: date(2024, 1, 20)},
			{BookID: books[1].ID, TagID: tags[1].ID, TaggedAt: date(2024, 2, 3)},
			{BookID: books[2].ID, TagID: tags[3].ID, TaggedAt: date(2024, 2, 10)},
			{BookID: books[2].ID, TagID: tags[1].ID, TaggedAt: date(2024, 3, 5)},
		}
		return tx.Create(&bookTags).Error
	})
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	log.Printf("Seeded reference dataset: 3 authors, 3 books, 2 publishers, 4 tags")
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
