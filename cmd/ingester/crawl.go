package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"manga_ingest/internal/images"
	"manga_ingest/internal/service"
)

var (
	flagPages          string
	flagSource         string
	flagDryRun         bool
	flagDownloadImages bool
)

func init() {
	crawlCmd := &cobra.Command{
		Use:   "crawl",
		Short: "Ingest manga and new chapters from a range of source listing pages",
		RunE:  runCrawl,
	}

	crawlCmd.Flags().StringVar(&flagPages, "pages", "1-1", "listing page range (e.g. 1-5 or 3)")
	crawlCmd.Flags().StringVar(&flagSource, "source", "", "configured source name (defaults to crawl.source)")
	crawlCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "report what would be ingested, write nothing")
	crawlCmd.Flags().BoolVar(&flagDownloadImages, "download-images", false, "download covers and page images instead of storing source URLs")

	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(cmd *cobra.Command, _ []string) error {
	start, end, err := parsePageRange(flagPages)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()

	id, sc, err := a.cfg.Source(flagSource)
	if err != nil {
		return err
	}

	vocabulary, err := a.genres()
	if err != nil {
		return fmt.Errorf("load genres: %w", err)
	}

	src, err := newSource(id, sc, vocabulary, a.logger)
	if err != nil {
		return err
	}

	proxies, err := a.proxies()
	if err != nil {
		return err
	}

	var downloader service.ChapterDownloader
	if flagDownloadImages && !flagDryRun {
		store, err := a.objectStore(ctx)
		if err != nil {
			return fmt.Errorf("object store: %w", err)
		}

		downloader = images.NewChapterDownloader(a.acquirer(store, proxies), images.DownloaderConfig{
			Mode:        images.Mode(a.cfg.Images.Mode),
			LocalDir:    a.cfg.Images.LocalDir,
			KeyPrefix:   a.cfg.Images.KeyPrefix,
			Concurrency: a.cfg.Images.Concurrency,
			MaxRetries:  a.cfg.Images.MaxRetries,
		})
	}

	var pub service.Publisher
	if !flagDryRun {
		rabbitMQ, err := a.publisher()
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		if rabbitMQ != nil {
			defer rabbitMQ.Close()
			pub = rabbitMQ
		}
	}

	crawlService := service.NewCrawlService(
		src,
		a.mangas,
		a.chapters,
		a.pages,
		a.taxonomies,
		a.crawlState,
		a.txManager,
		downloader,
		proxies,
		pub,
		a.terms,
		a.logger,
		a.cfg.Crawl,
	)

	a.logger.Info("starting crawl",
		"source", src.Name(),
		"pages", flagPages,
		"dry_run", flagDryRun,
		"download_images", flagDownloadImages,
	)

	_, err = crawlService.Crawl(ctx, service.CrawlOptions{
		StartPage:      start,
		EndPage:        end,
		DryRun:         flagDryRun,
		DownloadImages: flagDownloadImages,
	})
	return err
}

// parsePageRange accepts "start-end" or a single page number.
func parsePageRange(s string) (start, end int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("empty page range")
	}

	from, to, found := strings.Cut(s, "-")
	if !found {
		to = from
	}

	start, err = strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid page range %q: %w", s, err)
	}
	end, err = strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid page range %q: %w", s, err)
	}

	if start < 1 || end < start {
		return 0, 0, fmt.Errorf("invalid page range %q: want 1 <= start <= end", s)
	}

	return start, end, nil
}
