package images

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

// DownloaderConfig controls where chapter pages end up.
type DownloaderConfig struct {
	Mode        Mode
	LocalDir    string
	KeyPrefix   string
	Concurrency int
	MaxRetries  int
}

// ChapterJob is the set of page images of one chapter.
type ChapterJob struct {
	MangaSlug   string
	ChapterSlug string
	URLs        []string
	Headers     http.Header
	Proxy       string
}

// PageResult is the outcome for the page at Index in the job's URL list.
type PageResult struct {
	Index int
	URL   string
	Ref   string
	Err   error
}

type ChapterDownloader struct {
	acquirer *Acquirer
	cfg      DownloaderConfig
}

func NewChapterDownloader(acquirer *Acquirer, cfg DownloaderConfig) *ChapterDownloader {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeLocal
	}

	return &ChapterDownloader{acquirer: acquirer, cfg: cfg}
}

// Download acquires every page of job with bounded concurrency and waits for
// all of them. Results are in source order; failures are reported per page.
func (d *ChapterDownloader) Download(ctx context.Context, job ChapterJob) []PageResult {
	results := make([]PageResult, len(job.URLs))

	var g errgroup.Group
	g.SetLimit(d.cfg.Concurrency)

	for i, u := range job.URLs {
		i, u := i, u
		g.Go(func() error {
			key := PageKey(d.cfg.KeyPrefix, job.MangaSlug, job.ChapterSlug, i+1, Ext(u))
			ref, err := d.acquirer.Acquire(ctx, Request{
				URL:        u,
				Dest:       d.localPath(job.MangaSlug, job.ChapterSlug, i+1, u),
				Key:        key,
				Headers:    job.Headers,
				MaxRetries: d.cfg.MaxRetries,
				Mode:       d.cfg.Mode,
				Proxy:      job.Proxy,
			})
			results[i] = PageResult{Index: i, URL: u, Ref: ref, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Cover acquires a manga cover image.
func (d *ChapterDownloader) Cover(ctx context.Context, mangaSlug, u string, headers http.Header, proxy string) (string, error) {
	ext := Ext(u)
	return d.acquirer.Acquire(ctx, Request{
		URL:        u,
		Dest:       LocalPath(d.cfg.LocalDir, CoverKey("", mangaSlug, ext)),
		Key:        CoverKey(d.cfg.KeyPrefix, mangaSlug, ext),
		Headers:    headers,
		MaxRetries: d.cfg.MaxRetries,
		Mode:       d.cfg.Mode,
		Proxy:      proxy,
	})
}

func (d *ChapterDownloader) localPath(mangaSlug, chapterSlug string, page int, u string) string {
	if d.cfg.Mode == ModeObject {
		return ""
	}
	return LocalPath(d.cfg.LocalDir, PageKey("", mangaSlug, chapterSlug, page, Ext(u)))
}

// Survivors returns the references of successful pages in source order.
// Committing them numbered 1..k keeps page numbers gap free.
func Survivors(results []PageResult) []string {
	refs := make([]string, 0, len(results))
	for _, r := range results {
		if r.Err == nil && r.Ref != "" {
			refs = append(refs, r.Ref)
		}
	}
	return refs
}
