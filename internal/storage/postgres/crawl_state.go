package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"manga_ingest/internal/domain"
)

type CrawlStateStore struct {
	db *sqlx.DB
}

func NewCrawlStateStore(db *sqlx.DB) *CrawlStateStore {
	return &CrawlStateStore{db: db}
}

func (s *CrawlStateStore) Get(ctx context.Context, sourceID string) (*domain.CrawlState, error) {
	var state domain.CrawlState
	query := `
		SELECT id, source_id, last_page, last_crawled_at, total_mangas, total_chapters
		FROM crawl_state
		WHERE source_id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, sourceID)
	if errors.Is(err, sql.ErrNoRows) {
		// Return empty state for new sources
		return &domain.CrawlState{SourceID: sourceID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *CrawlStateStore) Update(ctx context.Context, state *domain.CrawlState) error {
	query := `
		INSERT INTO crawl_state (source_id, last_page, last_crawled_at, total_mangas, total_chapters)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (source_id) DO UPDATE SET
			last_page = EXCLUDED.last_page,
			last_crawled_at = EXCLUDED.last_crawled_at,
			total_mangas = EXCLUDED.total_mangas,
			total_chapters = EXCLUDED.total_chapters`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		state.SourceID,
		state.LastPage,
		state.LastCrawledAt,
		state.TotalMangas,
		state.TotalChapters,
	)
	return err
}
