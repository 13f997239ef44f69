package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"manga_ingest/internal/domain"
)

type TaxonomyStore struct {
	db *sqlx.DB
}

func NewTaxonomyStore(db *sqlx.DB) *TaxonomyStore {
	return &TaxonomyStore{db: db}
}

// EnsureTaxonomy returns the id of the taxonomy of type t, creating it if
// needed.
func (s *TaxonomyStore) EnsureTaxonomy(ctx context.Context, t domain.TaxonomyType) (int64, error) {
	exec := GetExecutor(ctx, s.db)

	var id int64
	err := sqlx.GetContext(ctx, exec, &id, `SELECT id FROM taxonomies WHERE type = $1`, t)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	name := string(t)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}

	err = exec.QueryRowxContext(ctx, `
		INSERT INTO taxonomies (type, name) VALUES ($1, $2)
		ON CONFLICT (type) DO UPDATE SET name = taxonomies.name
		RETURNING id`,
		t, name,
	).Scan(&id)
	return id, err
}

// FindTerms returns terms matching any of names exactly or after lowercasing
// and trimming.
func (s *TaxonomyStore) FindTerms(ctx context.Context, taxonomyID int64, names []string) ([]domain.Term, error) {
	if len(names) == 0 {
		return nil, nil
	}

	folded := make([]string, len(names))
	for i, n := range names {
		folded[i] = strings.ToLower(strings.TrimSpace(n))
	}

	query := `
		SELECT id, taxonomy_id, name, slug
		FROM taxonomy_terms
		WHERE taxonomy_id = $1 AND (name = ANY($2) OR LOWER(TRIM(name)) = ANY($3))
		ORDER BY (name = ANY($2)) DESC, id`

	var terms []domain.Term
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &terms, query, taxonomyID, pq.Array(names), pq.Array(folded))
	return terms, err
}

// FindTermBySlug returns the term holding slug, or nil.
func (s *TaxonomyStore) FindTermBySlug(ctx context.Context, taxonomyID int64, slug string) (*domain.Term, error) {
	var t domain.Term
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &t,
		`SELECT id, taxonomy_id, name, slug FROM taxonomy_terms WHERE taxonomy_id = $1 AND slug = $2`,
		taxonomyID, slug,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// InsertTerms creates terms in one statement and returns the rows that were
// actually inserted. Rows conflicting with existing terms are skipped.
func (s *TaxonomyStore) InsertTerms(ctx context.Context, taxonomyID int64, terms []domain.Term) ([]domain.Term, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO taxonomy_terms (taxonomy_id, name, slug) VALUES ")
	valueArgs := make([]interface{}, 0, len(terms)*2+1)
	valueArgs = append(valueArgs, taxonomyID)

	for i, t := range terms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(i*2 + 2))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*2 + 3))
		sb.WriteString(")")
		valueArgs = append(valueArgs, t.Name, t.Slug)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING RETURNING id, taxonomy_id, name, slug")

	var inserted []domain.Term
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &inserted, sb.String(), valueArgs...)
	if err != nil {
		return nil, mapError(err)
	}
	return inserted, nil
}

// LinkTerms links terms to a manga; existing links are left alone. Returns the
// number of links created.
func (s *TaxonomyStore) LinkTerms(ctx context.Context, mangaID int64, termIDs []int64) (int, error) {
	if len(termIDs) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO manga_terms (manga_id, term_id) VALUES ")
	valueArgs := make([]interface{}, 0, len(termIDs)+1)
	valueArgs = append(valueArgs, mangaID)

	for i, termID := range termIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(i + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, termID)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	return int(n), err
}

// CountLinks counts the terms of taxonomy type t linked to a manga.
func (s *TaxonomyStore) CountLinks(ctx context.Context, mangaID int64, t domain.TaxonomyType) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM manga_terms mt
		INNER JOIN taxonomy_terms tt ON tt.id = mt.term_id
		INNER JOIN taxonomies tx ON tx.id = tt.taxonomy_id
		WHERE mt.manga_id = $1 AND tx.type = $2`

	var n int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &n, query, mangaID, t)
	return n, err
}

// ListTermNames returns the names of a manga's terms of type t.
func (s *TaxonomyStore) ListTermNames(ctx context.Context, mangaID int64, t domain.TaxonomyType) ([]string, error) {
	query := `
		SELECT tt.name
		FROM manga_terms mt
		INNER JOIN taxonomy_terms tt ON tt.id = mt.term_id
		INNER JOIN taxonomies tx ON tx.id = tt.taxonomy_id
		WHERE mt.manga_id = $1 AND tx.type = $2
		ORDER BY tt.name`

	var names []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &names, query, mangaID, t)
	return names, err
}
