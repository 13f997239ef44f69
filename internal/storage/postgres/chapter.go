package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"manga_ingest/internal/domain"
)

type ChapterStore struct {
	db *sqlx.DB
}

func NewChapterStore(db *sqlx.DB) *ChapterStore {
	return &ChapterStore{db: db}
}

// ListNumbers returns the chapter numbers already stored for a manga.
func (s *ChapterStore) ListNumbers(ctx context.Context, mangaID int64) ([]float64, error) {
	var numbers []float64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &numbers,
		`SELECT chapter_number::float8 FROM chapters WHERE manga_id = $1 ORDER BY chapter_number`,
		mangaID,
	)
	return numbers, err
}

func (s *ChapterStore) ExistsByNumber(ctx context.Context, mangaID int64, number float64) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		`SELECT EXISTS (SELECT 1 FROM chapters WHERE manga_id = $1 AND chapter_number = $2::numeric)`,
		mangaID, number,
	)
	return exists, err
}

func (s *ChapterStore) SlugExists(ctx context.Context, mangaID int64, slug string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		`SELECT EXISTS (SELECT 1 FROM chapters WHERE manga_id = $1 AND slug = $2)`,
		mangaID, slug,
	)
	return exists, err
}

func (s *ChapterStore) Create(ctx context.Context, ch *domain.Chapter) (int64, error) {
	query := `
		INSERT INTO chapters (manga_id, title, slug, chapter_number, volume_number, published_at, views)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		ch.MangaID,
		ch.Title,
		ch.Slug,
		ch.ChapterNumber,
		ch.VolumeNumber,
		ch.PublishedAt,
		ch.Views,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}

	ch.ID = id
	return id, nil
}
