package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"net/http"

	"manga_ingest/internal/domain"
	"manga_ingest/internal/images"
)

type Source interface {
	ID() string
	Name() string
	ListPage(ctx context.Context, page int) ([]domain.SourceManga, error)
	Detail(ctx context.Context, identifier string) (*domain.SourceDetail, error)
	ChapterPages(ctx context.Context, chapterIdentifier string) ([]string, error)
	ImageHeaders() http.Header
}

type MangaStore interface {
	FindByName(ctx context.Context, name string) (*domain.Manga, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Manga, error)
	Create(ctx context.Context, m *domain.Manga) (int64, error)
	SetCoverIfEmpty(ctx context.Context, id int64, cover string) (bool, error)
	ListIndex(ctx context.Context) ([]domain.MangaIndexEntry, error)
}

type ChapterStore interface {
	ListNumbers(ctx context.Context, mangaID int64) ([]float64, error)
	ExistsByNumber(ctx context.Context, mangaID int64, number float64) (bool, error)
	SlugExists(ctx context.Context, mangaID int64, slug string) (bool, error)
	Create(ctx context.Context, ch *domain.Chapter) (int64, error)
}

type PageStore interface {
	InsertBatch(ctx context.Context, chapterID int64, refs []string) error
	ListMissingSecondary(ctx context.Context, afterID int64, limit int) ([]domain.RelocationCandidate, error)
	SetSecondary(ctx context.Context, pageID int64, ref string) (bool, error)
}

type TaxonomyStore interface {
	EnsureTaxonomy(ctx context.Context, t domain.TaxonomyType) (int64, error)
	FindTerms(ctx context.Context, taxonomyID int64, names []string) ([]domain.Term, error)
	FindTermBySlug(ctx context.Context, taxonomyID int64, slug string) (*domain.Term, error)
	InsertTerms(ctx context.Context, taxonomyID int64, terms []domain.Term) ([]domain.Term, error)
	LinkTerms(ctx context.Context, mangaID int64, termIDs []int64) (int, error)
	CountLinks(ctx context.Context, mangaID int64, t domain.TaxonomyType) (int, error)
	ListTermNames(ctx context.Context, mangaID int64, t domain.TaxonomyType) ([]string, error)
}

type CrawlStateStore interface {
	Get(ctx context.Context, sourceID string) (*domain.CrawlState, error)
	Update(ctx context.Context, state *domain.CrawlState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, chapter *domain.ChapterCommitted) error
	Close() error
}

type ChapterDownloader interface {
	Download(ctx context.Context, job images.ChapterJob) []images.PageResult
	Cover(ctx context.Context, mangaSlug, url string, headers http.Header, proxy string) (string, error)
}

type ImageAcquirer interface {
	Acquire(ctx context.Context, req images.Request) (string, error)
}

type ReferenceReader interface {
	Count(ctx context.Context) (int, error)
	Read(ctx context.Context, afterID int64, limit int) ([]domain.ReferenceRecord, error)
	Close() error
}
