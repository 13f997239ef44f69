package domain

import "time"

// SourceManga is one entry of a source listing page. It only lives until it
// has been mapped onto a Manga.
type SourceManga struct {
	Title      string
	Identifier string // canonical URL, slug or path understood by the source
	Thumbnail  string
	StatusText string
	Genres     []string
	Authors    []string
	Artists    []string
}

type SourceChapter struct {
	Name        string
	Number      *float64
	Identifier  string
	PublishedAt time.Time
}

type SourceDetail struct {
	Description      string
	Genres           []string
	AlternativeNames []string
	Authors          []string
	Artists          []string
	StatusText       string
	Thumbnail        string
	Chapters         []SourceChapter
}

// IsEmpty reports whether the detail carries nothing, as happens when the
// source answered 404.
func (d *SourceDetail) IsEmpty() bool {
	return d == nil || (d.Description == "" && len(d.Genres) == 0 && len(d.Chapters) == 0 &&
		len(d.AlternativeNames) == 0 && len(d.Authors) == 0 && len(d.Artists) == 0)
}

// ReferenceRecord is one entry of an external reference dataset used to
// enrich existing manga.
type ReferenceRecord struct {
	ID        int64
	Title     string
	AltTitles []string
	Genres    []string
	Authors   []string
	CoverURL  string
}
