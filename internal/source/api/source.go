// Package api implements a source backed by JSON endpoints.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"manga_ingest/internal/domain"
	"manga_ingest/internal/source"
	"manga_ingest/internal/source/fetch"
)

// Config holds API source configuration. Paths are templates relative to
// BaseURL; {page}, {id} and {chapter} are substituted.
type Config struct {
	ID           string
	Name         string
	BaseURL      string
	ListPath     string
	DetailPath   string
	ChaptersPath string
	PagesPath    string
	ImageReferer string
}

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

// ImageHeaders returns the headers image hosts of this source expect.
func (s *Source) ImageHeaders() http.Header {
	h := s.client.Headers()
	if s.cfg.ImageReferer != "" {
		h.Set("Referer", s.cfg.ImageReferer)
	}
	return h
}

// ListPage fetches one listing page.
func (s *Source) ListPage(ctx context.Context, page int) ([]domain.SourceManga, error) {
	var resp ListResponse
	if err := s.client.GetJSON(ctx, s.url(s.cfg.ListPath, "{page}", strconv.Itoa(page)), &resp); err != nil {
		return nil, fmt.Errorf("list page %d: %w", page, err)
	}

	out := make([]domain.SourceManga, 0, len(resp.Data))
	for _, item := range resp.Data {
		title := strings.TrimSpace(item.Title)
		id := item.Slug
		if id == "" {
			id = string(item.ID)
		}
		if title == "" || id == "" {
			s.logger.Warn("skipping listing entry without title or id", "page", page, "id", id)
			continue
		}

		out = append(out, domain.SourceManga{
			Title:      title,
			Identifier: id,
			Thumbnail:  s.absolute(item.Thumbnail),
			StatusText: item.Status,
			Genres:     source.FilterGenres(s.genres, item.Genres, s.logger),
			Authors:    item.Authors,
			Artists:    item.Artists,
		})
	}

	s.logger.Debug("fetched listing page", "page", page, "mangas", len(out))

	return out, nil
}

// Detail fetches description, taxonomy and chapter list of a manga. A 404
// yields an empty detail.
func (s *Source) Detail(ctx context.Context, id string) (*domain.SourceDetail, error) {
	var resp DetailResponse
	err := s.client.GetJSON(ctx, s.url(s.cfg.DetailPath, "{id}", id), &resp)
	if errors.Is(err, fetch.ErrNotFound) {
		s.logger.Info("detail not found", "id", id)
		return &domain.SourceDetail{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("detail %s: %w", id, err)
	}

	d := resp.Data
	chapters := d.Chapters
	if s.cfg.ChaptersPath != "" {
		chapters, err = s.chapters(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	return &domain.SourceDetail{
		Description:      strings.TrimSpace(d.Description),
		Genres:           source.FilterGenres(s.genres, d.Genres, s.logger),
		AlternativeNames: d.AltTitles,
		Authors:          d.Authors,
		Artists:          d.Artists,
		StatusText:       d.Status,
		Thumbnail:        s.absolute(d.Thumbnail),
		Chapters:         s.transformChapters(chapters),
	}, nil
}

// ChapterPages returns the image URLs of a chapter in reading order.
func (s *Source) ChapterPages(ctx context.Context, chapterID string) ([]string, error) {
	var resp PagesResponse
	if err := s.client.GetJSON(ctx, s.url(s.cfg.PagesPath, "{chapter}", chapterID), &resp); err != nil {
		return nil, fmt.Errorf("chapter pages %s: %w", chapterID, err)
	}

	out := make([]string, 0, len(resp.Data.Images))
	for _, img := range resp.Data.Images {
		if u := s.absolute(img); u != "" {
			out = append(out, u)
		}
	}

	return out, nil
}

func (s *Source) chapters(ctx context.Context, id string) ([]ChapterItem, error) {
	var resp ChaptersResponse
	err := s.client.GetJSON(ctx, s.url(s.cfg.ChaptersPath, "{id}", id), &resp)
	if errors.Is(err, fetch.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("chapters %s: %w", id, err)
	}
	return resp.Data, nil
}

func (s *Source) transformChapters(items []ChapterItem) []domain.SourceChapter {
	out := make([]domain.SourceChapter, 0, len(items))

	for _, c := range items {
		ident := c.Path
		if ident == "" {
			ident = string(c.ID)
		}
		if ident == "" {
			s.logger.Warn("skipping chapter without identifier", "name", c.Name)
			continue
		}

		ch := domain.SourceChapter{
			Name:       strings.TrimSpace(c.Name),
			Number:     c.Number,
			Identifier: ident,
		}
		if ch.Number == nil {
			if n, ok := source.ChapterNumber(c.Name); ok {
				ch.Number = &n
			}
		}
		if t, ok := parseTime(c.PublishedAt); ok {
			ch.PublishedAt = t
		} else if c.PublishedAt != "" {
			s.logger.Warn("failed to parse date", "chapter", ident, "date", c.PublishedAt)
		}

		out = append(out, ch)
	}

	return out
}

func (s *Source) url(tmpl, placeholder, value string) string {
	if isAbsolute(value) {
		return value
	}

	path := strings.ReplaceAll(tmpl, placeholder, escapePath(value))
	if isAbsolute(path) {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.cfg.BaseURL + path
}

func (s *Source) absolute(u string) string {
	return source.ResolveURL(s.cfg.BaseURL+"/", u)
}

// escapePath escapes each segment so identifiers that are paths keep their
// slashes.
func escapePath(p string) string {
	segs := strings.Split(strings.Trim(p, "/"), "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return strings.Join(segs, "/")
}

func isAbsolute(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}
