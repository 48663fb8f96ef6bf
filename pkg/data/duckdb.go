package data

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
)

func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS books (
			id VARCHAR PRIMARY KEY,
			title VARCHAR,
			author VARCHAR,
			description VARCHAR,
			settings VARCHAR,
			updated_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS chapters (
			id VARCHAR PRIMARY KEY,
			book_id VARCHAR,
			position INTEGER,
			title VARCHAR,
			content VARCHAR,
			type VARCHAR,
			indentation INTEGER,
			line_spacing DOUBLE,
			page_number INTEGER,
			images VARCHAR,
			subchapters VARCHAR
		)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

type Repository struct {
	db *sql.DB
}

var duckDB *sql.DB

func NewDuckDBRepository() *Repository {
	if duckDB == nil {
		db, err := InitDuckDB("naskah.db")
		if err != nil {
			log.Fatal(err)
		}
		duckDB = db
	}

	return &Repository{db: duckDB}
}

// NewRepositoryAt opens a repository on its own database file, bypassing the
// shared handle. Used by tests and the --db flag.
func NewRepositoryAt(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// SaveBook inserts or updates a book and its settings.
func (r *Repository) SaveBook(book *Book, settings Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO books (id, title, author, description, settings, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			description = excluded.description,
			settings = excluded.settings,
			updated_at = excluded.updated_at`,
		book.ID, book.Title, book.Author, book.Description, string(raw), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save book: %w", err)
	}
	return nil
}

// GetBook returns the book and its stored settings, or (nil, zero, nil) when
// the id is unknown.
func (r *Repository) GetBook(id string) (*Book, Settings, error) {
	row := r.db.QueryRow(`SELECT id, title, author, description, settings FROM books WHERE id = ?`, id)

	var book Book
	var raw string
	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Description, &raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, Settings{}, nil
		}
		return nil, Settings{}, fmt.Errorf("failed to get book: %w", err)
	}

	settings := DefaultSettings()
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &settings); err != nil {
			return nil, Settings{}, fmt.Errorf("failed to decode settings: %w", err)
		}
	}
	return &book, settings, nil
}

func (r *Repository) ListBooks() ([]*Book, error) {
	rows, err := r.db.Query(`SELECT id, title, author, description FROM books ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Description); err != nil {
			return nil, err
		}
		books = append(books, &b)
	}
	return books, rows.Err()
}

// DeleteBook removes a book and all of its chapters.
func (r *Repository) DeleteBook(id string) error {
	if _, err := r.db.Exec(`DELETE FROM chapters WHERE book_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete chapters: %w", err)
	}
	if _, err := r.db.Exec(`DELETE FROM books WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

// ReplaceChapters rewrites the full chapter list of a book in display order.
// The store is the source of truth for ordering, so a wholesale replace is
// simpler and no less correct than diffing.
func (r *Repository) ReplaceChapters(bookID string, chapters []Chapter) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM chapters WHERE book_id = ?`, bookID); err != nil {
		return fmt.Errorf("failed to clear chapters: %w", err)
	}

	for i, ch := range chapters {
		images, err := json.Marshal(ch.Images)
		if err != nil {
			return fmt.Errorf("failed to encode images: %w", err)
		}
		subs, err := json.Marshal(ch.SubChapters)
		if err != nil {
			return fmt.Errorf("failed to encode subchapters: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO chapters (id, book_id, position, title, content, type, indentation, line_spacing, page_number, images, subchapters)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ch.ID, bookID, i, ch.Title, ch.Content, string(ch.Type),
			ch.Indentation, ch.LineSpacing, ch.PageNumber, string(images), string(subs))
		if err != nil {
			return fmt.Errorf("failed to save chapter %s: %w", ch.ID, err)
		}
	}

	return tx.Commit()
}

// GetChapters returns a book's chapters in display order.
func (r *Repository) GetChapters(bookID string) ([]Chapter, error) {
	rows, err := r.db.Query(`
		SELECT id, title, content, type, indentation, line_spacing, page_number, images, subchapters
		FROM chapters WHERE book_id = ? ORDER BY position`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chapters: %w", err)
	}
	defer rows.Close()

	var chapters []Chapter
	for rows.Next() {
		var ch Chapter
		var typ, images, subs string
		if err := rows.Scan(&ch.ID, &ch.Title, &ch.Content, &typ, &ch.Indentation,
			&ch.LineSpacing, &ch.PageNumber, &images, &subs); err != nil {
			return nil, err
		}
		ch.Type = ChapterType(typ)
		if err := json.Unmarshal([]byte(images), &ch.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images: %w", err)
		}
		if err := json.Unmarshal([]byte(subs), &ch.SubChapters); err != nil {
			return nil, fmt.Errorf("failed to decode subchapters: %w", err)
		}
		chapters = append(chapters, ch)
	}
	return chapters, rows.Err()
}
