package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"manga_ingest/internal/config"
	"manga_ingest/internal/genre"
	"manga_ingest/internal/images"
	"manga_ingest/internal/publisher"
	"manga_ingest/internal/service"
	"manga_ingest/internal/source/api"
	"manga_ingest/internal/source/fetch"
	"manga_ingest/internal/source/scrape"
	"manga_ingest/internal/storage/postgres"
)

// app holds what every command needs: config, logger and the store.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	mangas     *postgres.MangaStore
	chapters   *postgres.ChapterStore
	pages      *postgres.PageStore
	taxonomies *postgres.TaxonomyStore
	crawlState *postgres.CrawlStateStore
	txManager  *postgres.TransactionManager

	// terms is shared by every service of one invocation.
	terms *service.TermResolver
}

func newApp() (*app, error) {
	logger := setupLogger("info")

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("connected to database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)

	taxonomies := postgres.NewTaxonomyStore(db)

	return &app{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		mangas:     postgres.NewMangaStore(db),
		chapters:   postgres.NewChapterStore(db),
		pages:      postgres.NewPageStore(db),
		taxonomies: taxonomies,
		crawlState: postgres.NewCrawlStateStore(db),
		txManager:  postgres.NewTransactionManager(db),
		terms:      service.NewTermResolver(taxonomies, service.NewTermCache()),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

func (a *app) genres() (*genre.Vocabulary, error) {
	if a.cfg.Genres.File == "" {
		return genre.Default()
	}
	return genre.Load(a.cfg.Genres.File)
}

// newSource builds the adapter for one configured source.
func newSource(id string, sc config.SourceConfig, genres *genre.Vocabulary, logger *slog.Logger) (service.Source, error) {
	client := fetch.New(fetch.Config{
		Timeout:        sc.Timeout,
		MaxAttempts:    sc.Retry.MaxAttempts,
		InitialBackoff: sc.Retry.InitialBackoff,
		MaxBackoff:     sc.Retry.MaxBackoff,
		Headers:        sc.Headers,
	}, nil, logger.With("source", id))

	switch sc.Kind {
	case "api":
		return api.New(api.Config{
			ID:           id,
			Name:         sc.Name,
			BaseURL:      sc.BaseURL,
			ListPath:     sc.ListPath,
			DetailPath:   sc.DetailPath,
			ChaptersPath: sc.ChaptersPath,
			PagesPath:    sc.PagesPath,
			ImageReferer: sc.ImageReferer,
		}, client, genres, logger), nil
	case "html":
		return scrape.New(scrape.Config{
			ID:           id,
			Name:         sc.Name,
			BaseURL:      sc.BaseURL,
			ListPath:     sc.ListPath,
			ImageReferer: sc.ImageReferer,
			DateLayout:   sc.DateLayout,
			Selectors:    sc.Selectors,
		}, client, genres, logger), nil
	default:
		return nil, fmt.Errorf("source %q: unknown kind %q", id, sc.Kind)
	}
}

func (a *app) proxies() (*images.ProxyPool, error) {
	pool, err := images.LoadProxyPool(a.cfg.Proxy.File, a.cfg.Proxy.Timeout)
	if err != nil {
		return nil, err
	}
	if pool.Len() > 0 {
		a.logger.Info("loaded proxies", "count", pool.Len())
	}
	return pool, nil
}

// objectStore returns nil when no bucket is configured.
func (a *app) objectStore(ctx context.Context) (*images.S3Store, error) {
	if !a.cfg.S3.Enabled() {
		return nil, nil
	}

	s3 := a.cfg.S3
	return images.NewS3Store(ctx, images.S3Config{
		Bucket:        s3.Bucket,
		Region:        s3.Region,
		Endpoint:      s3.Endpoint,
		AccessKey:     s3.AccessKey,
		SecretKey:     s3.SecretKey,
		UsePathStyle:  s3.UsePathStyle,
		ACL:           s3.ACL,
		CacheControl:  s3.CacheControl,
		PublicBaseURL: s3.PublicBaseURL,
	})
}

func (a *app) acquirer(store *images.S3Store, proxies *images.ProxyPool) *images.Acquirer {
	var objects images.ObjectStore
	if store != nil {
		objects = store
	}

	return images.NewAcquirer(images.Config{
		MaxSize:        a.cfg.Images.MaxSize,
		RetryBase:      a.cfg.Images.RetryBase,
		AttemptTimeout: a.cfg.Images.AttemptTimeout,
	}, objects, proxies, a.logger)
}

// publisher returns nil when publishing is disabled.
func (a *app) publisher() (*publisher.RabbitMQ, error) {
	if !a.cfg.RabbitMQ.Enabled {
		return nil, nil
	}

	return publisher.NewRabbitMQ(publisher.Config{
		URL:        a.cfg.RabbitMQ.URL,
		Exchange:   a.cfg.RabbitMQ.Exchange,
		RoutingKey: a.cfg.RabbitMQ.RoutingKey,
		QueueName:  a.cfg.RabbitMQ.QueueName,
	}, a.logger)
}
