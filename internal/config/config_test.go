package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
database:
  host: db
  user: ingest
  password: ${INGEST_TEST_DB_PASSWORD}
  dbname: manga
sources:
  manhua:
    kind: api
    base_url: https://api.example.com
    list_path: /list?page={page}
    detail_path: /manga/{id}
    pages_path: /chapter/{chapter}
    headers:
      User-Agent: ingest-bot
  scraped:
    kind: html
    base_url: https://site.example.com
    list_path: /list/{page}
    timeout: 10s
    selectors:
      list_item: .book
      page_image: "#images img"
crawl:
  source: manhua
images:
  mode: both
  key_prefix: manga
s3:
  bucket: media
  public_base_url: https://cdn.example.com
`

func TestParse(t *testing.T) {
	t.Setenv("INGEST_TEST_DB_PASSWORD", "s3cret")

	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")

	api := cfg.Sources["manhua"]
	assert.Equal(t, "manhua", api.Name)
	assert.Equal(t, 15*time.Second, api.Timeout)
	assert.Equal(t, 3, api.Retry.MaxAttempts)
	assert.Equal(t, "ingest-bot", api.Headers["User-Agent"])

	html := cfg.Sources["scraped"]
	assert.Equal(t, 10*time.Second, html.Timeout)
	assert.Equal(t, ".book", html.Selectors.ListItem)
	assert.Equal(t, "#images img", html.Selectors.PageImage)

	assert.Equal(t, "both", cfg.Images.Mode)
	assert.Equal(t, 4, cfg.Images.Concurrency)
	assert.Equal(t, int64(10<<20), cfg.Images.MaxSize)
	assert.Equal(t, 15*time.Second, cfg.Images.AttemptTimeout)
	assert.Equal(t, 15*time.Second, cfg.Proxy.Timeout)
	assert.Equal(t, 3, cfg.Crawl.Concurrency)
	assert.Equal(t, 10, cfg.Relocate.BatchSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.RabbitMQ.Enabled)
}

func TestConfig_Source(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	name, src, err := cfg.Source("")
	require.NoError(t, err)
	assert.Equal(t, "manhua", name)
	assert.Equal(t, "api", src.Kind)

	name, src, err = cfg.Source("scraped")
	require.NoError(t, err)
	assert.Equal(t, "scraped", name)
	assert.Equal(t, "html", src.Kind)

	_, _, err = cfg.Source("missing")
	assert.ErrorContains(t, err, "unknown source")
}

func TestConfig_SingleSourceNeedsNoName(t *testing.T) {
	cfg, err := Parse([]byte("sources:\n  only:\n    base_url: https://x.example.com\n"))
	require.NoError(t, err)

	name, src, err := cfg.Source("")
	require.NoError(t, err)
	assert.Equal(t, "only", name)
	assert.Equal(t, "api", src.Kind)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown kind", "sources:\n  a:\n    kind: rss\n    base_url: https://x\n", "unknown kind"},
		{"missing base url", "sources:\n  a:\n    kind: html\n", "base_url is required"},
		{"unknown mode", "images:\n  mode: ftp\n", "unknown mode"},
		{"object without bucket", "images:\n  mode: object\n", "requires s3.bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}
