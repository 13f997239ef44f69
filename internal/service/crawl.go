package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"manga_ingest/internal/config"
	"manga_ingest/internal/domain"
	"manga_ingest/internal/images"
	"manga_ingest/internal/source"
	"manga_ingest/internal/storage"
)

type CrawlOptions struct {
	StartPage      int
	EndPage        int
	DryRun         bool
	DownloadImages bool
}

type CrawlService struct {
	source     Source
	mangas     MangaStore
	chapters   ChapterStore
	pages      PageStore
	taxonomies TaxonomyStore
	crawlState CrawlStateStore
	txManager  TransactionManager
	downloader ChapterDownloader
	proxies    *images.ProxyPool
	publisher  Publisher
	terms      *TermResolver
	titles     *MangaResolver
	numbers    *ChapterResolver
	logger     *slog.Logger
	config     config.CrawlConfig
}

// NewCrawlService wires a crawl. downloader may be nil when images are never
// downloaded, publisher may be nil to skip events and terms may be nil to get
// a resolver with a fresh cache.
func NewCrawlService(
	source Source,
	mangas MangaStore,
	chapters ChapterStore,
	pages PageStore,
	taxonomies TaxonomyStore,
	crawlState CrawlStateStore,
	txManager TransactionManager,
	downloader ChapterDownloader,
	proxies *images.ProxyPool,
	publisher Publisher,
	terms *TermResolver,
	logger *slog.Logger,
	cfg config.CrawlConfig,
) *CrawlService {
	if terms == nil {
		terms = NewTermResolver(taxonomies, nil)
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	logger = logger.With("source", source.ID())

	return &CrawlService{
		source:     source,
		mangas:     mangas,
		chapters:   chapters,
		pages:      pages,
		taxonomies: taxonomies,
		crawlState: crawlState,
		txManager:  txManager,
		downloader: downloader,
		proxies:    proxies,
		publisher:  publisher,
		terms:      terms,
		titles:     NewMangaResolver(mangas),
		numbers:    NewChapterResolver(chapters, logger),
		logger:     logger,
		config:     cfg,
	}
}

// crawlRun collects statistics from concurrent manga workers.
type crawlRun struct {
	mu    sync.Mutex
	stats domain.CrawlStats
}

func (r *crawlRun) add(fn func(s *domain.CrawlStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.stats)
}

func (r *crawlRun) snapshot() domain.CrawlStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Crawl ingests listing pages StartPage..EndPage. Pages are processed in order,
// manga of one page concurrently. Failures of single manga or chapters are
// logged and counted; only context cancellation stops the range early.
func (s *CrawlService) Crawl(ctx context.Context, opts CrawlOptions) (*domain.CrawlStats, error) {
	if opts.StartPage < 1 {
		opts.StartPage = 1
	}
	if opts.EndPage < opts.StartPage {
		return nil, fmt.Errorf("invalid page range %d-%d", opts.StartPage, opts.EndPage)
	}
	if opts.DownloadImages && !opts.DryRun && s.downloader == nil {
		return nil, errors.New("image download requested but no downloader configured")
	}

	startTime := time.Now()
	s.logger.Info("starting crawl",
		"source_name", s.source.Name(),
		"start_page", opts.StartPage,
		"end_page", opts.EndPage,
		"dry_run", opts.DryRun,
		"download_images", opts.DownloadImages,
		"concurrency", s.config.Concurrency,
	)

	run := &crawlRun{stats: domain.CrawlStats{SourceID: s.source.ID()}}
	finish := func(err error) (*domain.CrawlStats, error) {
		stats := run.snapshot()
		stats.Duration = time.Since(startTime)
		s.logStats(&stats)
		return &stats, err
	}

	for page := opts.StartPage; page <= opts.EndPage; page++ {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}

		items, err := s.source.ListPage(ctx, page)
		if err != nil {
			s.logger.Error("list page failed", "page", page, "error", err)
		} else if len(items) == 0 {
			s.logger.Info("listing exhausted", "page", page)
			break
		} else {
			before := run.snapshot()
			s.crawlPage(ctx, items, opts, run)
			run.add(func(st *domain.CrawlStats) { st.Pages++ })

			if !opts.DryRun {
				after := run.snapshot()
				if err := s.updateCrawlState(ctx, page, &before, &after); err != nil {
					s.logger.Warn("update crawl state failed", "page", page, "error", err)
				}
			}
		}

		if page < opts.EndPage {
			if err := sleep(ctx, s.config.PageDelay); err != nil {
				return finish(err)
			}
		}
	}

	return finish(nil)
}

func (s *CrawlService) crawlPage(ctx context.Context, items []domain.SourceManga, opts CrawlOptions, run *crawlRun) {
	g := new(errgroup.Group)
	g.SetLimit(s.config.Concurrency)

	for _, item := range items {
		item := item
		g.Go(func() error {
			if err := s.crawlManga(ctx, item, opts, run); err != nil {
				s.logger.Error("manga failed", "title", item.Title, "identifier", item.Identifier, "error", err)
				run.add(func(st *domain.CrawlStats) { st.MangasFailed++ })
			}
			return nil
		})
	}

	_ = g.Wait()
}

func (s *CrawlService) crawlManga(ctx context.Context, item domain.SourceManga, opts CrawlOptions, run *crawlRun) error {
	if strings.TrimSpace(item.Title) == "" {
		return errors.New("listing entry without title")
	}

	run.add(func(st *domain.CrawlStats) { st.MangasSeen++ })
	logger := s.logger.With("title", item.Title)

	existing, err := s.titles.Match(ctx, item.Title)
	if err != nil {
		return err
	}

	detail, err := s.source.Detail(ctx, item.Identifier)
	if err != nil {
		return fmt.Errorf("fetch detail: %w", err)
	}
	if detail.IsEmpty() {
		// Listing data alone still yields a bare manga without chapters.
		logger.Warn("detail not available, using listing data", "identifier", item.Identifier)
		if detail == nil {
			detail = &domain.SourceDetail{}
		}
	}

	var (
		m     *domain.Manga
		isNew bool
	)

	switch {
	case existing != nil:
		m = existing
		run.add(func(st *domain.CrawlStats) { st.MangasMatched++ })
		if !opts.DryRun {
			s.backfill(ctx, m, item, detail, opts, logger)
		}
	case opts.DryRun:
		m, err = s.previewManga(ctx, item)
		if err != nil {
			return err
		}
	default:
		m, isNew, err = s.createManga(ctx, item, detail, opts, logger)
		if err != nil {
			return err
		}
		run.add(func(st *domain.CrawlStats) {
			if isNew {
				st.MangasCreated++
			} else {
				st.MangasMatched++
			}
		})
	}

	pending, err := s.numbers.Missing(ctx, m.ID, detail.Chapters)
	if err != nil {
		return err
	}

	if opts.DryRun {
		s.preview(ctx, m, detail, pending, logger)
		return nil
	}

	logger.Info("chapters enumerated",
		"manga_id", m.ID,
		"slug", m.Slug,
		"listed", len(detail.Chapters),
		"missing", len(pending),
	)

	announceNew := isNew
	for _, ch := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.crawlChapter(ctx, m, ch, announceNew, opts, run, logger) {
			announceNew = false
		}
	}

	return nil
}

// previewManga resolves the slug a new manga would get without storing it.
func (s *CrawlService) previewManga(ctx context.Context, item domain.SourceManga) (*domain.Manga, error) {
	mangaSlug, holder, err := s.titles.Slug(ctx, item.Title)
	if err != nil {
		return nil, err
	}
	if holder != nil {
		return holder, nil
	}
	return &domain.Manga{Name: strings.TrimSpace(item.Title), Slug: mangaSlug}, nil
}

func (s *CrawlService) preview(ctx context.Context, m *domain.Manga, detail *domain.SourceDetail, pending []PendingChapter, logger *slog.Logger) {
	fields := []any{
		"slug", m.Slug,
		"genres", detail.Genres,
		"chapters", len(detail.Chapters),
		"missing", len(pending),
	}

	if m.ID != 0 {
		stored, err := s.taxonomies.ListTermNames(ctx, m.ID, domain.TaxonomyGenre)
		if err != nil {
			logger.Warn("list stored genres failed", "error", err)
		}
		fields = append(fields, "manga_id", m.ID, "stored_genres", stored)
	}

	if len(pending) > 0 {
		first := pending[0]
		urls, err := s.source.ChapterPages(ctx, first.Identifier)
		if err != nil {
			logger.Warn("fetch chapter pages failed", "chapter", first.Title, "error", err)
		}
		fields = append(fields, "first_chapter", first.Title, "page_count", len(urls))
		if len(urls) > 0 {
			fields = append(fields, "first_page", urls[0], "last_page", urls[len(urls)-1])
		}
	}

	logger.Info("dry run", fields...)
}

// createManga stores a new manga with its terms in one transaction. A manga
// created concurrently under the same title is returned instead.
func (s *CrawlService) createManga(ctx context.Context, item domain.SourceManga, detail *domain.SourceDetail, opts CrawlOptions, logger *slog.Logger) (*domain.Manga, bool, error) {
	thumbnail := firstNonEmpty(detail.Thumbnail, item.Thumbnail)
	status := source.NormalizeStatus(firstNonEmpty(detail.StatusText, item.StatusText))

	s.terms.Lock()

	mangaSlug, holder, err := s.titles.Slug(ctx, item.Title)
	if err != nil {
		s.terms.Rollback()
		return nil, false, err
	}
	if holder != nil {
		s.terms.Rollback()
		return holder, false, nil
	}

	m := &domain.Manga{
		Name:             strings.TrimSpace(item.Title),
		AlternativeNames: detail.AlternativeNames,
		Description:      detail.Description,
		Status:           status,
		Slug:             mangaSlug,
	}
	if !opts.DownloadImages {
		m.Cover = thumbnail
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.mangas.Create(txCtx, m)
		if err != nil {
			return fmt.Errorf("create manga: %w", err)
		}
		m.ID = id

		termIDs, err := s.resolveTerms(txCtx, item, detail, status)
		if err != nil {
			return err
		}

		if _, err := s.taxonomies.LinkTerms(txCtx, id, termIDs); err != nil {
			return fmt.Errorf("link terms: %w", err)
		}

		return nil
	})
	if err != nil {
		s.terms.Rollback()
		if errors.Is(err, storage.ErrDuplicate) {
			if existing, findErr := s.titles.Match(ctx, item.Title); findErr == nil && existing != nil {
				logger.Info("manga created concurrently, reusing", "manga_id", existing.ID)
				return existing, false, nil
			}
		}
		return nil, false, err
	}
	s.terms.Commit()

	logger.Info("manga created", "manga_id", m.ID, "slug", m.Slug, "status", m.Status)

	if opts.DownloadImages && thumbnail != "" {
		s.setCover(ctx, m, thumbnail, opts, logger)
	}

	return m, true, nil
}

func (s *CrawlService) resolveTerms(ctx context.Context, item domain.SourceManga, detail *domain.SourceDetail, status domain.MangaStatus) ([]int64, error) {
	groups := []struct {
		taxonomy domain.TaxonomyType
		names    []string
	}{
		{domain.TaxonomyGenre, firstNonEmptyList(detail.Genres, item.Genres)},
		{domain.TaxonomyAuthor, firstNonEmptyList(detail.Authors, item.Authors)},
		{domain.TaxonomyArtist, firstNonEmptyList(detail.Artists, item.Artists)},
		{domain.TaxonomyStatus, []string{string(status)}},
	}

	var ids []int64
	for _, g := range groups {
		got, err := s.terms.Resolve(ctx, g.taxonomy, g.names)
		if err != nil {
			return nil, err
		}
		ids = append(ids, got...)
	}

	return ids, nil
}

// backfill fills in what an existing manga lacks: genres when none are linked
// and a cover when none is set. Nothing else is touched.
func (s *CrawlService) backfill(ctx context.Context, m *domain.Manga, item domain.SourceManga, detail *domain.SourceDetail, opts CrawlOptions, logger *slog.Logger) {
	genres := firstNonEmptyList(detail.Genres, item.Genres)
	if len(genres) > 0 {
		if err := s.backfillGenres(ctx, m.ID, genres, logger); err != nil {
			logger.Warn("genre backfill failed", "manga_id", m.ID, "error", err)
		}
	}

	if m.Cover == "" {
		if thumbnail := firstNonEmpty(detail.Thumbnail, item.Thumbnail); thumbnail != "" {
			s.setCover(ctx, m, thumbnail, opts, logger)
		}
	}
}

func (s *CrawlService) backfillGenres(ctx context.Context, mangaID int64, genres []string, logger *slog.Logger) error {
	n, err := s.taxonomies.CountLinks(ctx, mangaID, domain.TaxonomyGenre)
	if err != nil {
		return fmt.Errorf("count genres: %w", err)
	}
	if n > 0 {
		return nil
	}

	var linked int
	s.terms.Lock()
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		ids, err := s.terms.Resolve(txCtx, domain.TaxonomyGenre, genres)
		if err != nil {
			return err
		}
		linked, err = s.taxonomies.LinkTerms(txCtx, mangaID, ids)
		return err
	})
	if err != nil {
		s.terms.Rollback()
		return err
	}
	s.terms.Commit()

	logger.Info("genres backfilled", "manga_id", mangaID, "genres", genres, "linked", linked)
	return nil
}

func (s *CrawlService) setCover(ctx context.Context, m *domain.Manga, thumbnail string, opts CrawlOptions, logger *slog.Logger) {
	cover := thumbnail
	if opts.DownloadImages {
		ref, err := s.downloader.Cover(ctx, m.Slug, thumbnail, s.source.ImageHeaders(), s.proxies.Random())
		if err != nil {
			logger.Warn("cover download failed", "manga_id", m.ID, "url", thumbnail, "error", err)
			return
		}
		cover = ref
	}

	ok, err := s.mangas.SetCoverIfEmpty(ctx, m.ID, cover)
	if err != nil {
		logger.Warn("set cover failed", "manga_id", m.ID, "error", err)
		return
	}
	if ok {
		m.Cover = cover
		logger.Info("cover set", "manga_id", m.ID, "cover", cover)
	}
}

// crawlChapter acquires the pages of one missing chapter and commits the
// chapter with every page that survived, renumbered 1..k in source order. A
// chapter without surviving pages is discarded. It reports whether the
// chapter was committed.
func (s *CrawlService) crawlChapter(ctx context.Context, m *domain.Manga, ch PendingChapter, announceNew bool, opts CrawlOptions, run *crawlRun, logger *slog.Logger) bool {
	logger = logger.With("chapter", ch.Title, "number", ch.Number)

	urls, err := s.source.ChapterPages(ctx, ch.Identifier)
	if err != nil {
		logger.Error("fetch chapter pages failed", "error", err)
		run.add(func(st *domain.CrawlStats) { st.ChaptersFailed++ })
		return false
	}
	if len(urls) == 0 {
		logger.Warn("chapter has no pages, discarded")
		run.add(func(st *domain.CrawlStats) { st.ChaptersDiscarded++ })
		return false
	}

	chapterSlug, err := s.numbers.Slug(ctx, m.ID, ch.Title)
	if err != nil {
		logger.Error("resolve chapter slug failed", "error", err)
		run.add(func(st *domain.CrawlStats) { st.ChaptersFailed++ })
		return false
	}

	refs := urls
	if opts.DownloadImages {
		results := s.downloader.Download(ctx, images.ChapterJob{
			MangaSlug:   m.Slug,
			ChapterSlug: chapterSlug,
			URLs:        urls,
			Headers:     s.source.ImageHeaders(),
			Proxy:       s.proxies.Random(),
		})
		refs = images.Survivors(results)

		for _, r := range results {
			if r.Err != nil {
				logger.Warn("page download failed", "index", r.Index, "url", r.URL, "error", r.Err)
			}
		}
		run.add(func(st *domain.CrawlStats) { st.PagesFailed += len(urls) - len(refs) })
	}

	if len(refs) == 0 {
		logger.Warn("all pages failed, chapter discarded", "pages", len(urls))
		run.add(func(st *domain.CrawlStats) { st.ChaptersDiscarded++ })
		return false
	}

	publishedAt := ch.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}

	chapter := &domain.Chapter{
		MangaID:       m.ID,
		Title:         ch.Title,
		Slug:          chapterSlug,
		ChapterNumber: ch.Number,
		PublishedAt:   publishedAt,
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.chapters.Create(txCtx, chapter)
		if err != nil {
			return fmt.Errorf("create chapter: %w", err)
		}
		chapter.ID = id

		if err := s.pages.InsertBatch(txCtx, id, refs); err != nil {
			return fmt.Errorf("insert pages: %w", err)
		}

		return nil
	})
	if errors.Is(err, storage.ErrDuplicate) {
		logger.Info("chapter already stored, skipped", "error", err)
		run.add(func(st *domain.CrawlStats) { st.ChaptersSkipped++ })
		return false
	}
	if err != nil {
		logger.Error("commit chapter failed", "error", err)
		run.add(func(st *domain.CrawlStats) { st.ChaptersFailed++ })
		return false
	}

	run.add(func(st *domain.CrawlStats) {
		st.ChaptersCreated++
		st.PagesStored += len(refs)
	})
	logger.Info("chapter committed", "chapter_id", chapter.ID, "slug", chapterSlug, "pages", len(refs), "listed_pages", len(urls))

	if s.publisher != nil {
		err := s.publisher.Publish(ctx, &domain.ChapterCommitted{
			SourceID:      s.source.ID(),
			MangaID:       m.ID,
			MangaName:     m.Name,
			MangaSlug:     m.Slug,
			NewManga:      announceNew,
			ChapterID:     chapter.ID,
			ChapterTitle:  chapter.Title,
			ChapterSlug:   chapter.Slug,
			ChapterNumber: chapter.ChapterNumber,
			Pages:         len(refs),
		})
		if err != nil {
			logger.Warn("publish chapter failed", "error", err)
		} else {
			run.add(func(st *domain.CrawlStats) { st.Published++ })
		}
	}

	return true
}

func (s *CrawlService) updateCrawlState(ctx context.Context, page int, before, after *domain.CrawlStats) error {
	state, err := s.crawlState.Get(ctx, s.source.ID())
	if err != nil {
		return err
	}

	state.SourceID = s.source.ID()
	state.LastPage = page
	state.LastCrawledAt = time.Now()
	state.TotalMangas += int64(after.MangasCreated - before.MangasCreated)
	state.TotalChapters += int64(after.ChaptersCreated - before.ChaptersCreated)

	return s.crawlState.Update(ctx, state)
}

func (s *CrawlService) logStats(stats *domain.CrawlStats) {
	s.logger.Info("crawl completed",
		"pages", stats.Pages,
		"mangas_seen", stats.MangasSeen,
		"mangas_created", stats.MangasCreated,
		"mangas_matched", stats.MangasMatched,
		"mangas_failed", stats.MangasFailed,
		"chapters_created", stats.ChaptersCreated,
		"chapters_discarded", stats.ChaptersDiscarded,
		"chapters_skipped", stats.ChaptersSkipped,
		"chapters_failed", stats.ChaptersFailed,
		"pages_stored", stats.PagesStored,
		"pages_failed", stats.PagesFailed,
		"published", stats.Published,
		"duration", stats.Duration,
	)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptyList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}
