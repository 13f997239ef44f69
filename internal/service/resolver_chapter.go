package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"manga_ingest/internal/domain"
	"manga_ingest/internal/slug"
	"manga_ingest/internal/source"
)

// PendingChapter is a source chapter that is not stored yet.
type PendingChapter struct {
	Identifier  string
	Title       string
	Number      float64
	PublishedAt time.Time
}

// ChapterResolver finds the chapters of a manga that still have to be
// ingested and picks their slugs.
type ChapterResolver struct {
	chapters ChapterStore
	logger   *slog.Logger
}

func NewChapterResolver(chapters ChapterStore, logger *slog.Logger) *ChapterResolver {
	return &ChapterResolver{chapters: chapters, logger: logger}
}

// numberKey compares chapter numbers at the precision they are stored with.
func numberKey(n float64) int64 {
	return int64(math.Round(n * 100))
}

// Missing returns the chapters of list whose number is not stored for the
// manga, in ascending number order. A number absent from the stored set is
// confirmed with a point query before it counts as missing. mangaID 0 stands
// for a manga that is not stored yet. Chapters without a usable number are
// skipped.
func (r *ChapterResolver) Missing(ctx context.Context, mangaID int64, list []domain.SourceChapter) ([]PendingChapter, error) {
	existing := make(map[int64]bool)
	if mangaID != 0 {
		numbers, err := r.chapters.ListNumbers(ctx, mangaID)
		if err != nil {
			return nil, fmt.Errorf("list chapter numbers: %w", err)
		}
		for _, n := range numbers {
			existing[numberKey(n)] = true
		}
	}

	var pending []PendingChapter
	for _, ch := range list {
		number, ok := chapterNumber(ch)
		if !ok {
			r.logger.Debug("chapter without number skipped", "name", ch.Name, "identifier", ch.Identifier)
			continue
		}

		key := numberKey(number)
		if existing[key] {
			continue
		}

		if mangaID != 0 {
			found, err := r.chapters.ExistsByNumber(ctx, mangaID, number)
			if err != nil {
				return nil, fmt.Errorf("check chapter %v: %w", number, err)
			}
			if found {
				existing[key] = true
				continue
			}
		}

		existing[key] = true
		pending = append(pending, PendingChapter{
			Identifier:  ch.Identifier,
			Title:       chapterTitle(ch.Name, number),
			Number:      number,
			PublishedAt: ch.PublishedAt,
		})
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Number < pending[j].Number
	})

	return pending, nil
}

// Slug returns a chapter slug unique within the manga. Any holder of a
// candidate is a different chapter, so taken candidates are never reused.
func (r *ChapterResolver) Slug(ctx context.Context, mangaID int64, title string) (string, error) {
	s, err := slug.Unique(ctx, slug.ChapterSlug(title), func(ctx context.Context, candidate string) (bool, bool, error) {
		if mangaID == 0 {
			return false, false, nil
		}
		taken, err := r.chapters.SlugExists(ctx, mangaID, candidate)
		return taken, false, err
	})
	if err != nil {
		return "", fmt.Errorf("chapter slug: %w", err)
	}
	return s, nil
}

func chapterNumber(ch domain.SourceChapter) (float64, bool) {
	if ch.Number != nil {
		return *ch.Number, true
	}
	return source.ChapterNumber(ch.Name)
}

func chapterTitle(name string, number float64) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return "第" + strconv.FormatFloat(number, 'f', -1, 64) + "话"
}
