package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"manga_ingest/internal/domain"
)

type PageStore struct {
	db *sqlx.DB
}

func NewPageStore(db *sqlx.DB) *PageStore {
	return &PageStore{db: db}
}

// InsertBatch stores the pages of a chapter in a single statement. Page
// numbers are 1..len(refs) in the given order.
func (s *PageStore) InsertBatch(ctx context.Context, chapterID int64, refs []string) error {
	if len(refs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO pages (chapter_id, page_number, image_url) VALUES ")
	valueArgs := make([]interface{}, 0, len(refs)*2+1)
	valueArgs = append(valueArgs, chapterID)

	for i, ref := range refs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(i*2 + 2))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*2 + 3))
		sb.WriteString(")")
		valueArgs = append(valueArgs, i+1, ref)
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return mapError(err)
}

func (s *PageStore) ListByChapter(ctx context.Context, chapterID int64) ([]domain.Page, error) {
	var pages []domain.Page
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &pages,
		`SELECT id, chapter_id, page_number, image_url, image_url_secondary
		FROM pages WHERE chapter_id = $1 ORDER BY page_number`,
		chapterID,
	)
	return pages, err
}

// ListMissingSecondary returns up to limit pages without a secondary
// reference whose id is greater than afterID, in id order.
func (s *PageStore) ListMissingSecondary(ctx context.Context, afterID int64, limit int) ([]domain.RelocationCandidate, error) {
	query := `
		SELECT p.id, p.page_number, p.image_url, c.slug AS chapter_slug, m.slug AS manga_slug
		FROM pages p
		INNER JOIN chapters c ON c.id = p.chapter_id
		INNER JOIN mangas m ON m.id = c.manga_id
		WHERE p.image_url_secondary IS NULL AND p.id > $1
		ORDER BY p.id
		LIMIT $2`

	var out []domain.RelocationCandidate
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &out, query, afterID, limit)
	return out, err
}

// SetSecondary writes the secondary reference unless another run already did.
func (s *PageStore) SetSecondary(ctx context.Context, pageID int64, ref string) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE pages SET image_url_secondary = $2 WHERE id = $1 AND image_url_secondary IS NULL`,
		pageID, ref,
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	return n > 0, err
}
