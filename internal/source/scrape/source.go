// Package scrape implements a source that extracts listings, details and page
// images from HTML using configured CSS selectors.
package scrape

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"manga_ingest/internal/domain"
	"manga_ingest/internal/source"
	"manga_ingest/internal/source/fetch"
)

// Selectors are CSS selectors evaluated with goquery. Empty selectors are
// skipped.
type Selectors struct {
	ListItem      string `yaml:"list_item"`
	ListTitle     string `yaml:"list_title"`
	ListLink      string `yaml:"list_link"`
	ListThumbnail string `yaml:"list_thumbnail"`

	Description string `yaml:"description"`
	Genres      string `yaml:"genres"`
	AltNames    string `yaml:"alt_names"`
	Authors     string `yaml:"authors"`
	Artists     string `yaml:"artists"`
	Status      string `yaml:"status"`
	Thumbnail   string `yaml:"thumbnail"`

	ChapterItem  string `yaml:"chapter_item"`
	ChapterLink  string `yaml:"chapter_link"`
	ChapterTitle string `yaml:"chapter_title"`
	ChapterDate  string `yaml:"chapter_date"`

	PageImage string `yaml:"page_image"`
}

type Config struct {
	ID           string
	Name         string
	BaseURL      string
	ListPath     string
	ImageReferer string
	DateLayout   string
	Selectors    Selectors
}

// imageAttrs are tried in order; lazy loaders keep the real URL in data-*.
var imageAttrs = []string{"data-src", "data-original", "src"}

type Source struct {
	cfg    Config
	client *fetch.Client
	genres source.GenreFilter
	logger *slog.Logger
}

func New(cfg Config, client *fetch.Client, genres source.GenreFilter, logger *slog.Logger) *Source {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Name == "" {
		cfg.Name = cfg.ID
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = "2006-01-02"
	}

	return &Source{
		cfg:    cfg,
		client: client,
		genres: genres,
		logger: logger.With("source", cfg.ID),
	}
}

func (s *Source) ID() string {
	return s.cfg.ID
}

func (s *Source) Name() string {
	return s.cfg.Name
}

func (s *Source) ImageHeaders() http.Header {
	h := s.client.Headers()
	if s.cfg.ImageReferer != "" {
		h.Set("Referer", s.cfg.ImageReferer)
	} else {
		h.Set("Referer", s.cfg.BaseURL+"/")
	}
	return h
}

// ListPage scrapes one listing page. Entry identifiers are absolute detail
// page URLs.
func (s *Source) ListPage(ctx context.Context, page int) ([]domain.SourceManga, error) {
	pageURL := source.ResolveURL(s.cfg.BaseURL+"/", strings.ReplaceAll(s.cfg.ListPath, "{page}", strconv.Itoa(page)))

	doc, err := s.fetchDOM(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("list page %d: %w", page, err)
	}

	sel := s.cfg.Selectors
	var out []domain.SourceManga
	seen := make(map[string]bool)

	doc.Find(sel.ListItem).Each(func(_ int, item *goquery.Selection) {
		link := item
		if sel.ListLink != "" {
			link = item.Find(sel.ListLink).First()
		}
		href, _ := link.Attr("href")
		ident := source.ResolveURL(pageURL, href)

		title := text(item, sel.ListTitle)
		if title == "" {
			title, _ = link.Attr("title")
			title = strings.TrimSpace(title)
		}

		if title == "" || ident == "" || seen[ident] {
			return
		}
		seen[ident] = true

		out = append(out, domain.SourceManga{
			Title:      title,
			Identifier: ident,
			Thumbnail:  imageURL(item.Find(sel.ListThumbnail).First(), pageURL),
		})
	})

	s.logger.Debug("scraped listing page", "page", page, "mangas", len(out))

	return out, nil
}

// Detail scrapes a manga detail page. A 404 yields an empty detail.
func (s *Source) Detail(ctx context.Context, id string) (*domain.SourceDetail, error) {
	pageURL := source.ResolveURL(s.cfg.BaseURL+"/", id)

	doc, err := s.fetchDOM(ctx, pageURL)
	if errors.Is(err, fetch.ErrNotFound) {
		s.logger.Info("detail not found", "id", id)
		return &domain.SourceDetail{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("detail %s: %w", id, err)
	}

	sel := s.cfg.Selectors
	root := doc.Selection

	d := &domain.SourceDetail{
		Description:      text(root, sel.Description),
		Genres:           source.FilterGenres(s.genres, texts(root, sel.Genres), s.logger),
		AlternativeNames: splitList(text(root, sel.AltNames)),
		Authors:          texts(root, sel.Authors),
		Artists:          texts(root, sel.Artists),
		StatusText:       text(root, sel.Status),
	}
	if sel.Thumbnail != "" {
		d.Thumbnail = imageURL(root.Find(sel.Thumbnail).First(), pageURL)
	}

	seen := make(map[string]bool)
	root.Find(sel.ChapterItem).Each(func(_ int, item *goquery.Selection) {
		link := item
		if sel.ChapterLink != "" {
			link = item.Find(sel.ChapterLink).First()
		}
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		ident := source.ResolveURL(pageURL, href)
		if ident == "" || seen[ident] {
			return
		}
		seen[ident] = true

		name := text(item, sel.ChapterTitle)
		if name == "" {
			name = strings.TrimSpace(link.Text())
		}

		ch := domain.SourceChapter{Name: name, Identifier: ident}
		if n, ok := source.ChapterNumber(name); ok {
			ch.Number = &n
		}
		if raw := text(item, sel.ChapterDate); raw != "" {
			if t, err := time.Parse(s.cfg.DateLayout, raw); err == nil {
				ch.PublishedAt = t
			}
		}

		d.Chapters = append(d.Chapters, ch)
	})

	return d, nil
}

// ChapterPages returns the page image URLs of a chapter in document order.
func (s *Source) ChapterPages(ctx context.Context, chapterID string) ([]string, error) {
	pageURL := source.ResolveURL(s.cfg.BaseURL+"/", chapterID)

	doc, err := s.fetchDOM(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("chapter pages %s: %w", chapterID, err)
	}

	var out []string
	seen := make(map[string]bool)
	doc.Find(s.cfg.Selectors.PageImage).Each(func(_ int, img *goquery.Selection) {
		u := imageURL(img, pageURL)
		if u == "" || seen[u] {
			return
		}
		seen[u] = true
		out = append(out, u)
	})

	return out, nil
}

func (s *Source) fetchDOM(ctx context.Context, pageURL string) (*goquery.Document, error) {
	body, err := s.client.Get(ctx, pageURL, "text/html")
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html %s: %w", pageURL, err)
	}

	return doc, nil
}

func imageURL(img *goquery.Selection, base string) string {
	for _, attr := range imageAttrs {
		if v, ok := img.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return source.ResolveURL(base, v)
		}
	}
	return ""
}

func text(s *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return strings.TrimSpace(s.Find(selector).First().Text())
}

func texts(s *goquery.Selection, selector string) []string {
	if selector == "" {
		return nil
	}

	var out []string
	s.Find(selector).Each(func(_ int, el *goquery.Selection) {
		if t := strings.TrimSpace(el.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ',', '/', ';', '、', '，', '；':
			return true
		}
		return false
	})

	var out []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
