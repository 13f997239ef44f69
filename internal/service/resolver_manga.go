package service

import (
	"context"
	"fmt"
	"strings"

	"manga_ingest/internal/domain"
	"manga_ingest/internal/slug"
)

// MangaResolver decides whether a source entry is already stored and picks
// slugs for new manga.
type MangaResolver struct {
	mangas MangaStore
}

func NewMangaResolver(mangas MangaStore) *MangaResolver {
	return &MangaResolver{mangas: mangas}
}

// Match returns the stored manga with exactly this title, or nil.
func (r *MangaResolver) Match(ctx context.Context, title string) (*domain.Manga, error) {
	m, err := r.mangas.FindByName(ctx, strings.TrimSpace(title))
	if err != nil {
		return nil, fmt.Errorf("find manga by name: %w", err)
	}
	return m, nil
}

// Slug returns a free slug for title: the plain slug, else the first free
// numeric suffix. When a manga with the same title already holds a candidate,
// that manga is returned with its slug and should be reused.
func (r *MangaResolver) Slug(ctx context.Context, title string) (string, *domain.Manga, error) {
	title = strings.TrimSpace(title)

	var holder *domain.Manga
	s, err := slug.Unique(ctx, slug.Slug(title), func(ctx context.Context, candidate string) (bool, bool, error) {
		m, err := r.mangas.FindBySlug(ctx, candidate)
		if err != nil || m == nil {
			return false, false, err
		}
		if m.Name == title {
			holder = m
			return true, true, nil
		}
		return true, false, nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("manga slug: %w", err)
	}

	return s, holder, nil
}
