// Package reference reads external manga reference datasets stored as SQLite
// files.
package reference

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"manga_ingest/internal/domain"
)

// Store reads the "manga" table of a reference dataset. The dataset is opened
// read-only and never modified.
type Store struct {
	db *sqlx.DB
}

type row struct {
	ID        int64   `db:"rowid"`
	Title     string  `db:"title"`
	AltTitles *string `db:"alt_titles"`
	Genres    *string `db:"genres"`
	Authors   *string `db:"authors"`
	CoverURL  *string `db:"cover_url"`
}

func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reference dataset: %w", err)
	}

	dsn := path + "?_pragma=query_only(1)&_pragma=busy_timeout(5000)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open reference dataset: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping reference dataset: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM manga`)
	return n, err
}

// Read returns up to limit records with rowid greater than afterID, in rowid
// order.
func (s *Store) Read(ctx context.Context, afterID int64, limit int) ([]domain.ReferenceRecord, error) {
	query := `
		SELECT rowid, title, alt_titles, genres, authors, cover_url
		FROM manga
		WHERE rowid > ?
		ORDER BY rowid
		LIMIT ?`

	var rows []row
	if err := s.db.SelectContext(ctx, &rows, query, afterID, limit); err != nil {
		return nil, fmt.Errorf("read reference records: %w", err)
	}

	out := make([]domain.ReferenceRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ReferenceRecord{
			ID:        r.ID,
			Title:     strings.TrimSpace(r.Title),
			AltTitles: decodeList(r.AltTitles),
			Genres:    decodeList(r.Genres),
			Authors:   decodeList(r.Authors),
			CoverURL:  strings.TrimSpace(deref(r.CoverURL)),
		})
	}

	return out, nil
}

// decodeList accepts a JSON array of strings and falls back to a comma
// separated list for hand-edited datasets.
func decodeList(raw *string) []string {
	s := strings.TrimSpace(deref(raw))
	if s == "" || s == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		list = strings.Split(s, ",")
	}

	out := make([]string, 0, len(list))
	for _, v := range list {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
