package domain

type TaxonomyType string

const (
	TaxonomyGenre  TaxonomyType = "genre"
	TaxonomyAuthor TaxonomyType = "author"
	TaxonomyArtist TaxonomyType = "artist"
	TaxonomyTag    TaxonomyType = "tag"
	TaxonomyStatus TaxonomyType = "status"
	TaxonomyYear   TaxonomyType = "year"
)

type Taxonomy struct {
	ID   int64        `db:"id"`
	Type TaxonomyType `db:"type"`
	Name string       `db:"name"`
}

type Term struct {
	ID         int64  `db:"id"`
	TaxonomyID int64  `db:"taxonomy_id"`
	Name       string `db:"name"`
	Slug       string `db:"slug"`
}
