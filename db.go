package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const (
	// migration queries
	createEntriesTableSQL = `
  CREATE TABLE IF NOT EXISTS entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  uid TEXT NOT NULL UNIQUE,
  text TEXT NOT NULL,
  created_at DATETIME NOT NULL
  )`

	createQuotesTableSQL = `
  CREATE TABLE IF NOT EXISTS quotes (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  text TEXT NOT NULL,
  author TEXT NOT NULL,
  UNIQUE(text, author)
  )`

	// entry queries. created_at is stored as utc text: the driver keeps
	// the offset a time.Time arrives with, and mixed offsets would make
	// ORDER BY and the window comparisons order by string, not instant.
	createEntrySQL        = `INSERT INTO entries (uid, text, created_at) VALUES (?, ?, ?)`
	importEntrySQL        = `INSERT OR IGNORE INTO entries (uid, text, created_at) VALUES (?, ?, ?)`
	listEntriesSQL        = `SELECT id, uid, text, created_at FROM entries ORDER BY created_at, id`
	listEntriesBetweenSQL = `SELECT id, uid, text, created_at FROM entries WHERE created_at >= ? AND created_at < ? ORDER BY created_at, id`

	// quote queries
	saveQuoteSQL   = `INSERT OR IGNORE INTO quotes (text, author) VALUES (?, ?)`
	countQuotesSQL = `SELECT COUNT(*) FROM quotes`
	quoteAtSQL     = `SELECT text, author FROM quotes ORDER BY id LIMIT 1 OFFSET ?`
)

type Repo struct {
	db *sql.DB
}

func NewRepo(dbPath string) (*Repo, error) {
	// ensure directory exists
	err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// verify connection with database
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := &Repo{db: db}

	// run migrations
	if err := repo.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

func (r *Repo) Close() error {
	return r.db.Close()
}

// runs migrations on initial start
func (r *Repo) runMigrations() error {
	tables := []string{
		createEntriesTableSQL,
		createQuotesTableSQL,
	}

	for _, tableSQL := range tables {
		if _, err := r.db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// +---------------------+
// |                     |
// |    Entry Queries    |
// |                     |
// +---------------------+

// AddEntry stores text as a new entry stamped with the current time.
// Entries are append-only; nothing ever updates or reorders them.
func (r *Repo) AddEntry(text string) (Entry, error) {
	entry := Entry{
		UID:       uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now(),
	}

	res, err := r.db.Exec(createEntrySQL, entry.UID, entry.Text, entry.CreatedAt.UTC())
	if err != nil {
		return Entry{}, fmt.Errorf("failed to insert entry: %w", err)
	}

	entry.ID, err = res.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("failed to read entry id: %w", err)
	}

	return entry, nil
}

// ImportEntry inserts an entry keeping its original uid and timestamp.
// Returns false when an entry with that uid is already stored.
func (r *Repo) ImportEntry(entry Entry) (bool, error) {
	res, err := r.db.Exec(importEntrySQL, entry.UID, entry.Text, entry.CreatedAt.UTC())
	if err != nil {
		return false, fmt.Errorf("failed to import entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected == 1, nil
}

// ListEntries returns every entry, oldest first. Entries created in the
// same instant keep their insertion order.
func (r *Repo) ListEntries() ([]Entry, error) {
	return r.queryEntries(listEntriesSQL)
}

// ListEntriesBetween returns entries created in [start, end), oldest first.
func (r *Repo) ListEntriesBetween(start, end time.Time) ([]Entry, error) {
	return r.queryEntries(listEntriesBetweenSQL, start.UTC(), end.UTC())
}

func (r *Repo) queryEntries(query string, args ...any) ([]Entry, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.UID, &entry.Text, &entry.CreatedAt); err != nil {
			return nil, err
		}
		// utc in the column, local wall time for display
		entry.CreatedAt = entry.CreatedAt.Local()
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// +---------------------+
// |                     |
// |    Quote Queries    |
// |                     |
// +---------------------+

// SaveQuotes caches quotes, skipping ones already stored.
func (r *Repo) SaveQuotes(quotes []Quote) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, quote := range quotes {
		if _, err := tx.Exec(saveQuoteSQL, quote.Text, quote.Author); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// CountQuotes reports how many quotes are cached.
func (r *Repo) CountQuotes() (int, error) {
	var count int
	if err := r.db.QueryRow(countQuotesSQL).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// QuoteAt returns the cached quote at position n, in insertion order.
func (r *Repo) QuoteAt(n int) (Quote, error) {
	var quote Quote
	if err := r.db.QueryRow(quoteAtSQL, n).Scan(&quote.Text, &quote.Author); err != nil {
		return Quote{}, err
	}
	return quote, nil
}
