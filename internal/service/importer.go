package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"manga_ingest/internal/domain"
	"manga_ingest/internal/match"
	"manga_ingest/internal/source"
)

type ImportOptions struct {
	ExternalDBPath string
	BatchSize      int
	MaxRecords     int
}

// ReferenceOpener opens the reference dataset at path.
type ReferenceOpener func(path string) (ReferenceReader, error)

// ImportService enriches stored manga from an external reference dataset.
// Only missing data is added: genres and authors when none are linked, the
// cover when none is set.
type ImportService struct {
	open       ReferenceOpener
	mangas     MangaStore
	taxonomies TaxonomyStore
	txManager  TransactionManager
	terms      *TermResolver
	genres     source.GenreFilter
	logger     *slog.Logger
}

func NewImportService(
	open ReferenceOpener,
	mangas MangaStore,
	taxonomies TaxonomyStore,
	txManager TransactionManager,
	terms *TermResolver,
	genres source.GenreFilter,
	logger *slog.Logger,
) *ImportService {
	if terms == nil {
		terms = NewTermResolver(taxonomies, nil)
	}

	return &ImportService{
		open:       open,
		mangas:     mangas,
		taxonomies: taxonomies,
		txManager:  txManager,
		terms:      terms,
		genres:     genres,
		logger:     logger.With("component", "import"),
	}
}

// titleIndex resolves reference titles onto stored manga.
type titleIndex struct {
	matcher *match.Matcher
	entries map[int64]*domain.MangaIndexEntry
}

func newTitleIndex(entries []domain.MangaIndexEntry) *titleIndex {
	names := make(map[string]string, len(entries))
	byID := make(map[int64]*domain.MangaIndexEntry, len(entries))

	for i := range entries {
		e := &entries[i]
		id := strconv.FormatInt(e.ID, 10)
		byID[e.ID] = e

		for _, name := range append([]string{e.Name}, e.AlternativeNames...) {
			if _, taken := names[name]; name != "" && !taken {
				names[name] = id
			}
		}
	}

	return &titleIndex{
		matcher: match.New(match.Exact(names), match.Fold(names), match.Normalized(names)),
		entries: byID,
	}
}

func (t *titleIndex) lookup(titles ...string) (*domain.MangaIndexEntry, string) {
	for _, title := range titles {
		res, ok := t.matcher.Match(title)
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(res.Value, 10, 64)
		if err != nil {
			continue
		}
		if e, ok := t.entries[id]; ok {
			return e, res.Rule
		}
	}
	return nil, ""
}

func (s *ImportService) Import(ctx context.Context, opts ImportOptions) (*domain.ImportStats, error) {
	if opts.BatchSize < 1 {
		opts.BatchSize = 100
	}

	reader, err := s.open(opts.ExternalDBPath)
	if err != nil {
		return nil, fmt.Errorf("open reference dataset: %w", err)
	}
	defer reader.Close()

	startTime := time.Now()

	total, err := reader.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reference records: %w", err)
	}

	entries, err := s.mangas.ListIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("load title index: %w", err)
	}
	index := newTitleIndex(entries)

	s.logger.Info("starting import",
		"path", opts.ExternalDBPath,
		"records", total,
		"stored_manga", len(entries),
		"batch_size", opts.BatchSize,
		"max_records", opts.MaxRecords,
	)

	stats := &domain.ImportStats{}
	var afterID int64

	for {
		limit := opts.BatchSize
		if opts.MaxRecords > 0 {
			remaining := opts.MaxRecords - stats.Read
			if remaining <= 0 {
				break
			}
			limit = min(limit, remaining)
		}

		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(startTime)
			return stats, err
		}

		records, err := reader.Read(ctx, afterID, limit)
		if err != nil {
			stats.Duration = time.Since(startTime)
			return stats, fmt.Errorf("read reference records: %w", err)
		}
		if len(records) == 0 {
			break
		}
		afterID = records[len(records)-1].ID

		for i := range records {
			s.importRecord(ctx, index, &records[i], stats)
		}

		s.logger.Info("import progress", "read", stats.Read, "total", total, "matched", stats.Matched)
	}

	stats.Duration = time.Since(startTime)
	s.logger.Info("import completed",
		"read", stats.Read,
		"matched", stats.Matched,
		"unmatched", stats.Unmatched,
		"genres_linked", stats.GenresLinked,
		"authors_linked", stats.AuthorsLinked,
		"covers_set", stats.CoversSet,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *ImportService) importRecord(ctx context.Context, index *titleIndex, rec *domain.ReferenceRecord, stats *domain.ImportStats) {
	stats.Read++

	entry, rule := index.lookup(append([]string{rec.Title}, rec.AltTitles...)...)
	if entry == nil {
		stats.Unmatched++
		s.logger.Debug("no match", "title", rec.Title)
		return
	}
	stats.Matched++

	logger := s.logger.With("manga_id", entry.ID, "title", rec.Title, "rule", rule)

	genres := source.FilterGenres(s.genres, rec.Genres, logger)
	genresLinked, authorsLinked, err := s.linkMissing(ctx, entry.ID, genres, rec.Authors)
	if err != nil {
		stats.Errors++
		logger.Warn("link terms failed", "error", err)
	}
	if genresLinked {
		stats.GenresLinked++
	}
	if authorsLinked {
		stats.AuthorsLinked++
	}

	if entry.Cover == "" && rec.CoverURL != "" {
		ok, err := s.mangas.SetCoverIfEmpty(ctx, entry.ID, rec.CoverURL)
		if err != nil {
			stats.Errors++
			logger.Warn("set cover failed", "error", err)
			return
		}
		if ok {
			entry.Cover = rec.CoverURL
			stats.CoversSet++
		}
	}
}

// linkMissing attaches genres and authors to a manga that has none of the
// respective kind, in one transaction.
func (s *ImportService) linkMissing(ctx context.Context, mangaID int64, genres, authors []string) (genresLinked, authorsLinked bool, err error) {
	if len(genres) == 0 && len(authors) == 0 {
		return false, false, nil
	}

	s.terms.Lock()
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var linkErr error
		if genresLinked, linkErr = s.linkIfNone(txCtx, mangaID, domain.TaxonomyGenre, genres); linkErr != nil {
			return linkErr
		}
		authorsLinked, linkErr = s.linkIfNone(txCtx, mangaID, domain.TaxonomyAuthor, authors)
		return linkErr
	})
	if err != nil {
		s.terms.Rollback()
		return false, false, err
	}
	s.terms.Commit()

	return genresLinked, authorsLinked, nil
}

func (s *ImportService) linkIfNone(ctx context.Context, mangaID int64, t domain.TaxonomyType, names []string) (bool, error) {
	if len(names) == 0 {
		return false, nil
	}

	n, err := s.taxonomies.CountLinks(ctx, mangaID, t)
	if err != nil {
		return false, fmt.Errorf("count %s links: %w", t, err)
	}
	if n > 0 {
		return false, nil
	}

	ids, err := s.terms.Resolve(ctx, t, names)
	if err != nil {
		return false, err
	}

	linked, err := s.taxonomies.LinkTerms(ctx, mangaID, ids)
	if err != nil {
		return false, fmt.Errorf("link %s terms: %w", t, err)
	}

	return linked > 0, nil
}
