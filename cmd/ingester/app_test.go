package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manga_ingest/internal/config"
	"manga_ingest/internal/genre"
)

func TestNewSource(t *testing.T) {
	vocabulary, err := genre.Default()
	require.NoError(t, err)
	logger := setupLogger("error")

	src, err := newSource("mh", config.SourceConfig{
		Kind:         "api",
		Name:         "Manhua API",
		BaseURL:      "https://api.example.com",
		ImageReferer: "https://www.example.com/",
	}, vocabulary, logger)
	require.NoError(t, err)
	assert.Equal(t, "mh", src.ID())
	assert.Equal(t, "Manhua API", src.Name())
	assert.Equal(t, "https://www.example.com/", src.ImageHeaders().Get("Referer"))

	src, err = newSource("site", config.SourceConfig{
		Kind:    "html",
		BaseURL: "https://site.example.com",
	}, vocabulary, logger)
	require.NoError(t, err)
	assert.Equal(t, "site", src.ID())

	_, err = newSource("x", config.SourceConfig{Kind: "rss"}, vocabulary, logger)
	assert.Error(t, err)
}
