package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChapterDownloader_PartialFailure(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)

		if r.URL.Path == "/3.png" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	}))
	defer srv.Close()

	dir := t.TempDir()
	d := NewChapterDownloader(testAcquirer(nil), DownloaderConfig{
		Mode:        ModeLocal,
		LocalDir:    dir,
		Concurrency: 2,
		MaxRetries:  1,
	})

	urls := []string{srv.URL + "/1.png", srv.URL + "/2.png", srv.URL + "/3.png", srv.URL + "/4.png", srv.URL + "/5.png"}
	results := d.Download(context.Background(), ChapterJob{MangaSlug: "one", ChapterSlug: "di-1hua", URLs: urls})

	require.Len(t, results, 5)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, urls[i], r.URL)
	}
	assert.ErrorIs(t, results[2].Err, ErrValidation)
	assert.LessOrEqual(t, peak.Load(), int32(2))

	refs := Survivors(results)
	require.Len(t, refs, 4)
	assert.Equal(t, filepath.Join(dir, "one", "di-1hua", "page-001.png"), refs[0])
	assert.Equal(t, filepath.Join(dir, "one", "di-1hua", "page-004.png"), refs[2])

	_, err := os.Stat(filepath.Join(dir, "one", "di-1hua", "page-003.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestChapterDownloader_ObjectKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/webp")
		_, _ = w.Write(pngBytes)
	}))
	defer srv.Close()

	store := newMemStore()
	d := NewChapterDownloader(testAcquirer(store), DownloaderConfig{Mode: ModeObject, KeyPrefix: "manga"})

	results := d.Download(context.Background(), ChapterJob{
		MangaSlug:   "one",
		ChapterSlug: "di-2hua",
		URLs:        []string{srv.URL + "/a.webp", srv.URL + "/b.webp"},
	})

	assert.Equal(t, []string{
		"https://cdn.example.com/manga/one/di-2hua/page-001.webp",
		"https://cdn.example.com/manga/one/di-2hua/page-002.webp",
	}, Survivors(results))
	assert.Contains(t, store.objects, "manga/one/di-2hua/page-002.webp")

	cover, err := d.Cover(context.Background(), "one", srv.URL+"/c.webp", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/manga/one/cover.webp", cover)
}

func TestSurvivors_AllFailed(t *testing.T) {
	results := []PageResult{{Index: 0, Err: ErrValidation}, {Index: 1, Err: ErrValidation}}
	assert.Empty(t, Survivors(results))
}
