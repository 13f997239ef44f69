package domain

import "time"

type CrawlState struct {
	ID            int64     `db:"id"`
	SourceID      string    `db:"source_id"`
	LastPage      int       `db:"last_page"`
	LastCrawledAt time.Time `db:"last_crawled_at"`
	TotalMangas   int64     `db:"total_mangas"`
	TotalChapters int64     `db:"total_chapters"`
}

// CrawlStats holds statistics about a page-range crawl.
type CrawlStats struct {
	SourceID          string
	Pages             int
	MangasSeen        int
	MangasCreated     int
	MangasMatched     int
	MangasFailed      int
	ChaptersCreated   int
	ChaptersDiscarded int
	ChaptersSkipped   int
	ChaptersFailed    int
	PagesStored       int
	PagesFailed       int
	Published         int
	Duration          time.Duration
}

// RelocateStats holds statistics about a bulk image relocation run.
type RelocateStats struct {
	Scanned   int
	Relocated int
	Failed    int
	Batches   int
	Duration  time.Duration
}

// ImportStats holds statistics about a reference dataset import.
type ImportStats struct {
	Read          int
	Matched       int
	Unmatched     int
	GenresLinked  int
	AuthorsLinked int
	CoversSet     int
	Errors        int
	Duration      time.Duration
}
