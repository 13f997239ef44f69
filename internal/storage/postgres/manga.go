package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"manga_ingest/internal/domain"
)

type MangaStore struct {
	db *sqlx.DB
}

func NewMangaStore(db *sqlx.DB) *MangaStore {
	return &MangaStore{db: db}
}

const mangaColumns = `id, name, description, status, views, cover, slug, created_at, updated_at`

// FindByName returns the manga with exactly this name, or nil.
func (s *MangaStore) FindByName(ctx context.Context, name string) (*domain.Manga, error) {
	return s.findOne(ctx, `SELECT `+mangaColumns+` FROM mangas WHERE name = $1 ORDER BY id LIMIT 1`, name)
}

// FindBySlug returns the manga holding slug, or nil.
func (s *MangaStore) FindBySlug(ctx context.Context, slug string) (*domain.Manga, error) {
	return s.findOne(ctx, `SELECT `+mangaColumns+` FROM mangas WHERE slug = $1`, slug)
}

func (s *MangaStore) findOne(ctx context.Context, query string, arg any) (*domain.Manga, error) {
	var m domain.Manga
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &m, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MangaStore) Create(ctx context.Context, m *domain.Manga) (int64, error) {
	query := `
		INSERT INTO mangas (name, alternative_names, description, status, views, cover, slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	altNames := m.AlternativeNames
	if altNames == nil {
		altNames = []string{}
	}

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		m.Name,
		pq.Array(altNames),
		m.Description,
		m.Status,
		m.Views,
		m.Cover,
		m.Slug,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}

	m.ID = id
	return id, nil
}

// SetCoverIfEmpty sets the cover only when none is stored yet.
func (s *MangaStore) SetCoverIfEmpty(ctx context.Context, id int64, cover string) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE mangas SET cover = $2, updated_at = NOW() WHERE id = $1 AND cover = ''`,
		id, cover,
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	return n > 0, err
}

type mangaIndexRow struct {
	ID               int64          `db:"id"`
	Name             string         `db:"name"`
	AlternativeNames pq.StringArray `db:"alternative_names"`
	Cover            string         `db:"cover"`
}

// ListIndex returns every manga's names and cover for building title indices.
func (s *MangaStore) ListIndex(ctx context.Context) ([]domain.MangaIndexEntry, error) {
	var rows []mangaIndexRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows,
		`SELECT id, name, alternative_names, cover FROM mangas ORDER BY id`)
	if err != nil {
		return nil, err
	}

	out := make([]domain.MangaIndexEntry, len(rows))
	for i, r := range rows {
		out[i] = domain.MangaIndexEntry{
			ID:               r.ID,
			Name:             r.Name,
			AlternativeNames: r.AlternativeNames,
			Cover:            r.Cover,
		}
	}

	return out, nil
}
