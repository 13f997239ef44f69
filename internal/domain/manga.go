package domain

import "time"

type MangaStatus string

const (
	StatusOngoing   MangaStatus = "ongoing"
	StatusCompleted MangaStatus = "completed"
	StatusHiatus    MangaStatus = "hiatus"
	StatusCancelled MangaStatus = "cancelled"
)

type Manga struct {
	ID               int64       `db:"id"`
	Name             string      `db:"name"`
	AlternativeNames []string    `db:"-"`
	Description      string      `db:"description"`
	Status           MangaStatus `db:"status"`
	Views            int64       `db:"views"`
	Cover            string      `db:"cover"`
	Slug             string      `db:"slug"`
	CreatedAt        time.Time   `db:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at"`
}

type Chapter struct {
	ID            int64     `db:"id"`
	MangaID       int64     `db:"manga_id"`
	Title         string    `db:"title"`
	Slug          string    `db:"slug"`
	ChapterNumber float64   `db:"chapter_number"`
	VolumeNumber  *int      `db:"volume_number"`
	PublishedAt   time.Time `db:"published_at"`
	Views         int64     `db:"views"`
}

type Page struct {
	ID                int64   `db:"id"`
	ChapterID         int64   `db:"chapter_id"`
	PageNumber        int     `db:"page_number"`
	ImageURL          string  `db:"image_url"`
	ImageURLSecondary *string `db:"image_url_secondary"`
}

// RelocationCandidate is a page lacking a secondary reference, joined with the
// slugs needed to derive its object key.
type RelocationCandidate struct {
	PageID      int64  `db:"id"`
	PageNumber  int    `db:"page_number"`
	ImageURL    string `db:"image_url"`
	ChapterSlug string `db:"chapter_slug"`
	MangaSlug   string `db:"manga_slug"`
}

// MangaIndexEntry is the lightweight projection used to build in-memory title
// indices for fuzzy matching.
type MangaIndexEntry struct {
	ID               int64    `db:"id"`
	Name             string   `db:"name"`
	AlternativeNames []string `db:"-"`
	Cover            string   `db:"cover"`
}

// ChapterCommitted describes a chapter stored together with its pages.
type ChapterCommitted struct {
	SourceID      string  `json:"source_id"`
	MangaID       int64   `json:"manga_id"`
	MangaName     string  `json:"manga_name"`
	MangaSlug     string  `json:"manga_slug"`
	NewManga      bool    `json:"new_manga"`
	ChapterID     int64   `json:"chapter_id"`
	ChapterTitle  string  `json:"chapter_title"`
	ChapterSlug   string  `json:"chapter_slug"`
	ChapterNumber float64 `json:"chapter_number"`
	Pages         int     `json:"pages"`
}
