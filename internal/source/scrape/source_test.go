package scrape

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manga_ingest/internal/genre"
	"manga_ingest/internal/source/fetch"
)

const listHTML = `<html><body>
<ul class="list">
  <li class="item"><a class="cover" href="/manga/douluo" title="斗罗大陆"><img data-src="/covers/d.jpg" src="/lazy.gif"></a></li>
  <li class="item"><a class="cover" href="https://example.org/manga/op"><img src="https://cdn.example.org/op.jpg"></a><h3>One Piece</h3></li>
  <li class="item"><a class="cover" href="/manga/douluo" title="dup"></a></li>
  <li class="item"><a class="cover" href="/manga/untitled"></a></li>
</ul>
</body></html>`

const detailHTML = `<html><body>
<div class="info">
  <p class="desc"> 一个故事 </p>
  <p class="alt">Douluo Dalu / 斗羅大陸</p>
  <span class="genre">热血</span><span class="genre">Fantasy</span><span class="genre">Webtoon</span>
  <span class="author">唐家三少</span>
  <span class="status">连载中</span>
  <img class="thumb" data-original="/covers/big.jpg">
</div>
<ul class="chapters">
  <li><a href="ch-1.html">第1话 开始</a><span class="date">2024-01-02</span></li>
  <li><a href="ch-1-5.html">第1.5话</a></li>
  <li><a href="ch-2.html">Chapter 2</a></li>
  <li><a href="ch-2.html">Chapter 2 again</a></li>
</ul>
</body></html>`

const chapterHTML = `<html><body>
<div class="reader">
  <img class="page" data-src="/img/1.jpg" src="/lazy.gif">
  <img class="page" data-original="/img/2.jpg">
  <img class="page" src="https://cdn.example.org/3.jpg">
  <img class="page" src="https://cdn.example.org/3.jpg">
</div>
</body></html>`

func newTestSource(t *testing.T) *Source {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/list", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(listHTML))
	})
	mux.HandleFunc("/manga/douluo/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(detailHTML))
	})
	mux.HandleFunc("/manga/douluo/ch-1.html", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chapterHTML))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	vocab, err := genre.Default()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client := fetch.New(fetch.Config{Timeout: time.Second, MaxAttempts: 1}, nil, logger)

	return New(Config{
		ID:       "html-test",
		BaseURL:  srv.URL,
		ListPath: "/list?page={page}",
		Selectors: Selectors{
			ListItem:      "li.item",
			ListTitle:     "h3",
			ListLink:      "a.cover",
			ListThumbnail: "img",
			Description:   ".desc",
			Genres:        ".genre",
			AltNames:      ".alt",
			Authors:       ".author",
			Status:        ".status",
			Thumbnail:     "img.thumb",
			ChapterItem:   "ul.chapters li",
			ChapterLink:   "a",
			ChapterDate:   ".date",
			PageImage:     "img.page",
		},
	}, client, vocab, logger)
}

func TestListPage(t *testing.T) {
	s := newTestSource(t)

	got, err := s.ListPage(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "斗罗大陆", got[0].Title)
	assert.Equal(t, s.cfg.BaseURL+"/manga/douluo", got[0].Identifier)
	assert.Equal(t, s.cfg.BaseURL+"/covers/d.jpg", got[0].Thumbnail)

	assert.Equal(t, "One Piece", got[1].Title)
	assert.Equal(t, "https://example.org/manga/op", got[1].Identifier)
	assert.Equal(t, "https://cdn.example.org/op.jpg", got[1].Thumbnail)
}

func TestDetail(t *testing.T) {
	s := newTestSource(t)

	d, err := s.Detail(context.Background(), "/manga/douluo/")
	require.NoError(t, err)

	assert.Equal(t, "一个故事", d.Description)
	assert.Equal(t, []string{"Douluo Dalu", "斗羅大陸"}, d.AlternativeNames)
	assert.Equal(t, []string{"热血", "奇幻"}, d.Genres)
	assert.Equal(t, []string{"唐家三少"}, d.Authors)
	assert.Equal(t, "连载中", d.StatusText)
	assert.Equal(t, s.cfg.BaseURL+"/covers/big.jpg", d.Thumbnail)

	require.Len(t, d.Chapters, 3)
	assert.Equal(t, s.cfg.BaseURL+"/manga/douluo/ch-1.html", d.Chapters[0].Identifier)
	assert.Equal(t, 1.0, *d.Chapters[0].Number)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), d.Chapters[0].PublishedAt)
	assert.Equal(t, 1.5, *d.Chapters[1].Number)
	assert.Equal(t, 2.0, *d.Chapters[2].Number)
	assert.Equal(t, "Chapter 2", d.Chapters[2].Name)
}

func TestDetail_NotFoundIsEmpty(t *testing.T) {
	s := newTestSource(t)

	d, err := s.Detail(context.Background(), "/manga/gone")
	require.NoError(t, err)
	assert.True(t, d.IsEmpty())
}

func TestChapterPages(t *testing.T) {
	s := newTestSource(t)

	pages, err := s.ChapterPages(context.Background(), s.cfg.BaseURL+"/manga/douluo/ch-1.html")
	require.NoError(t, err)
	assert.Equal(t, []string{
		s.cfg.BaseURL + "/img/1.jpg",
		s.cfg.BaseURL + "/img/2.jpg",
		"https://cdn.example.org/3.jpg",
	}, pages)
}

func TestImageHeaders_DefaultReferer(t *testing.T) {
	s := newTestSource(t)
	assert.Equal(t, s.cfg.BaseURL+"/", s.ImageHeaders().Get("Referer"))
}
