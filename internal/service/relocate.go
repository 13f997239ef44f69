package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"manga_ingest/internal/config"
	"manga_ingest/internal/domain"
	"manga_ingest/internal/images"
)

type RelocateOptions struct {
	BatchSize int
	MaxPages  int
}

// RelocateService copies primary page images into object storage and records
// the object URL as the page's secondary reference.
type RelocateService struct {
	pages      PageStore
	acquirer   ImageAcquirer
	proxies    *images.ProxyPool
	keyPrefix  string
	publicBase string
	maxRetries int
	logger     *slog.Logger
	config     config.RelocateConfig
}

// NewRelocateService creates the service. publicBase is the object store's
// canonical URL prefix; primaries already below it are recorded without a
// new upload.
func NewRelocateService(
	pages PageStore,
	acquirer ImageAcquirer,
	proxies *images.ProxyPool,
	keyPrefix string,
	publicBase string,
	maxRetries int,
	logger *slog.Logger,
	cfg config.RelocateConfig,
) *RelocateService {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return &RelocateService{
		pages:      pages,
		acquirer:   acquirer,
		proxies:    proxies,
		keyPrefix:  keyPrefix,
		publicBase: publicBase,
		maxRetries: maxRetries,
		logger:     logger.With("component", "relocate"),
		config:     cfg,
	}
}

// Relocate walks pages without a secondary reference in id order. MaxPages
// bounds the number of pages looked at; 0 means all of them.
func (s *RelocateService) Relocate(ctx context.Context, opts RelocateOptions) (*domain.RelocateStats, error) {
	if opts.BatchSize < 1 {
		opts.BatchSize = s.config.BatchSize
	}
	if opts.BatchSize < 1 {
		opts.BatchSize = 10
	}

	startTime := time.Now()
	s.logger.Info("starting relocation",
		"batch_size", opts.BatchSize,
		"max_pages", opts.MaxPages,
		"workers", s.config.Workers,
	)

	stats := &domain.RelocateStats{}
	var afterID int64

	for {
		limit := opts.BatchSize
		if opts.MaxPages > 0 {
			remaining := opts.MaxPages - stats.Scanned
			if remaining <= 0 {
				break
			}
			limit = min(limit, remaining)
		}

		batch, err := s.pages.ListMissingSecondary(ctx, afterID, limit)
		if err != nil {
			stats.Duration = time.Since(startTime)
			return stats, fmt.Errorf("list pages: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		relocated, failed := s.relocateBatch(ctx, batch)
		stats.Batches++
		stats.Scanned += len(batch)
		stats.Relocated += relocated
		stats.Failed += failed
		afterID = batch[len(batch)-1].PageID

		s.logger.Info("batch relocated",
			"batch", stats.Batches,
			"relocated", relocated,
			"failed", failed,
			"last_page_id", afterID,
		)

		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(startTime)
			return stats, err
		}
		if len(batch) < limit {
			break
		}
		if err := sleep(ctx, s.config.BatchDelay); err != nil {
			stats.Duration = time.Since(startTime)
			return stats, err
		}
	}

	stats.Duration = time.Since(startTime)
	s.logger.Info("relocation completed",
		"scanned", stats.Scanned,
		"relocated", stats.Relocated,
		"failed", stats.Failed,
		"batches", stats.Batches,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *RelocateService) relocateBatch(ctx context.Context, batch []domain.RelocationCandidate) (relocated, failed int) {
	results := make([]error, len(batch))

	g := new(errgroup.Group)
	g.SetLimit(s.config.Workers)

	for i, page := range batch {
		i, page := i, page
		g.Go(func() error {
			results[i] = s.relocatePage(ctx, page)
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range results {
		if err != nil {
			failed++
			s.logger.Warn("page relocation failed",
				"page_id", batch[i].PageID,
				"image_url", batch[i].ImageURL,
				"error", err,
			)
			continue
		}
		relocated++
	}

	return relocated, failed
}

func (s *RelocateService) relocatePage(ctx context.Context, page domain.RelocationCandidate) error {
	ref := page.ImageURL

	if !s.inObjectStore(ref) {
		req := images.Request{MaxRetries: s.maxRetries}
		if isRemote(page.ImageURL) {
			req.Key = images.PageKey(s.keyPrefix, page.MangaSlug, page.ChapterSlug, page.PageNumber, images.Ext(page.ImageURL))
			req.URL = page.ImageURL
			req.Mode = images.ModeObject
			req.Proxy = s.proxies.Next()
		} else {
			// Local files were named at crawl time; reuse that name.
			req.Key = images.LocalPageKey(s.keyPrefix, page.MangaSlug, page.ChapterSlug, page.ImageURL)
			req.Dest = page.ImageURL
			req.Mode = images.ModeBoth
		}

		var err error
		ref, err = s.acquirer.Acquire(ctx, req)
		if err != nil {
			return err
		}

		if err := sleep(ctx, s.config.UploadDelay); err != nil {
			return err
		}
	}

	ok, err := s.pages.SetSecondary(ctx, page.PageID, ref)
	if err != nil {
		return fmt.Errorf("set secondary: %w", err)
	}
	if !ok {
		s.logger.Debug("secondary already set", "page_id", page.PageID)
	}

	return nil
}

func (s *RelocateService) inObjectStore(ref string) bool {
	return s.publicBase != "" && strings.HasPrefix(ref, s.publicBase)
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
