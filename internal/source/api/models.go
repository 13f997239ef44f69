package api

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// ListResponse is the body of a listing page.
type ListResponse struct {
	Data []MangaItem `json:"data"`
}

type MangaItem struct {
	ID        FlexString `json:"id"`
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	Thumbnail string     `json:"thumbnail"`
	Status    string     `json:"status"`
	Genres    []string   `json:"genres"`
	Authors   []string   `json:"authors"`
	Artists   []string   `json:"artists"`
}

// DetailResponse is the body of a manga detail request.
type DetailResponse struct {
	Data MangaDetail `json:"data"`
}

type MangaDetail struct {
	Description string        `json:"description"`
	AltTitles   []string      `json:"alt_titles"`
	Genres      []string      `json:"genres"`
	Authors     []string      `json:"authors"`
	Artists     []string      `json:"artists"`
	Status      string        `json:"status"`
	Thumbnail   string        `json:"thumbnail"`
	Chapters    []ChapterItem `json:"chapters"`
}

// ChaptersResponse is used when chapters live behind their own endpoint.
type ChaptersResponse struct {
	Data []ChapterItem `json:"data"`
}

type ChapterItem struct {
	ID          FlexString `json:"id"`
	Path        string     `json:"path"`
	Name        string     `json:"name"`
	Number      *float64   `json:"number"`
	PublishedAt string     `json:"published_at"`
}

// PagesResponse lists the image URLs of a chapter in reading order.
type PagesResponse struct {
	Data struct {
		Images []string `json:"images"`
	} `json:"data"`
}

// FlexString accepts both JSON strings and numbers.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
