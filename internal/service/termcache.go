package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"manga_ingest/internal/domain"
	"manga_ingest/internal/slug"
)

type termKey struct {
	taxonomy domain.TaxonomyType
	name     string
}

func newTermKey(t domain.TaxonomyType, name string) termKey {
	return termKey{taxonomy: t, name: strings.ToLower(strings.TrimSpace(name))}
}

// TermCache remembers taxonomy and term ids for the lifetime of one command.
// Terms inserted inside a transaction stay pending until Commit; Rollback
// forgets them so a rolled back insert is never handed out again.
type TermCache struct {
	mu         sync.RWMutex
	taxonomies map[domain.TaxonomyType]int64
	terms      map[termKey]int64
	pending    []termKey
}

func NewTermCache() *TermCache {
	return &TermCache{
		taxonomies: make(map[domain.TaxonomyType]int64),
		terms:      make(map[termKey]int64),
	}
}

func (c *TermCache) taxonomy(t domain.TaxonomyType) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.taxonomies[t]
	return id, ok
}

func (c *TermCache) setTaxonomy(t domain.TaxonomyType, id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.taxonomies[t] = id
}

func (c *TermCache) term(t domain.TaxonomyType, name string) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.terms[newTermKey(t, name)]
	return id, ok
}

func (c *TermCache) setTerm(t domain.TaxonomyType, name string, id int64, pending bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := newTermKey(t, name)
	if _, ok := c.terms[key]; ok {
		return
	}
	c.terms[key] = id
	if pending {
		c.pending = append(c.pending, key)
	}
}

// Len returns the number of cached terms.
func (c *TermCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.terms)
}

func (c *TermCache) Commit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}

func (c *TermCache) Rollback() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range c.pending {
		delete(c.terms, key)
	}
	c.pending = nil
}

// TermResolver maps term names onto ids, creating the missing ones. It is the
// single writer of taxonomy terms: callers that create terms inside a
// transaction hold Lock for the whole transaction and settle the cache with
// Commit or Rollback afterwards.
type TermResolver struct {
	store TaxonomyStore
	cache *TermCache
	mu    sync.Mutex
}

func NewTermResolver(store TaxonomyStore, cache *TermCache) *TermResolver {
	if cache == nil {
		cache = NewTermCache()
	}
	return &TermResolver{store: store, cache: cache}
}

// Lock makes the caller the single term writer until Commit or Rollback.
func (r *TermResolver) Lock() { r.mu.Lock() }

// Commit releases the writer lock and keeps terms created since Lock.
func (r *TermResolver) Commit() {
	r.cache.Commit()
	r.mu.Unlock()
}

// Rollback releases the writer lock and forgets terms created since Lock.
func (r *TermResolver) Rollback() {
	r.cache.Rollback()
	r.mu.Unlock()
}

// Resolve returns the ids of names in taxonomy t, in input order without
// duplicates. Names are looked up in the cache, then in the store by exact and
// case-insensitive match; the remainder is inserted in one statement with
// unique slugs. Blank names are ignored.
func (r *TermResolver) Resolve(ctx context.Context, t domain.TaxonomyType, names []string) ([]int64, error) {
	names = uniqueNames(names)
	if len(names) == 0 {
		return nil, nil
	}

	taxonomyID, err := r.taxonomyID(ctx, t)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, name := range names {
		if _, ok := r.cache.term(t, name); !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		if missing, err = r.lookup(ctx, t, taxonomyID, missing); err != nil {
			return nil, err
		}
	}

	if len(missing) > 0 {
		if err := r.create(ctx, t, taxonomyID, missing); err != nil {
			return nil, err
		}
	}

	ids := make([]int64, 0, len(names))
	seen := make(map[int64]bool, len(names))
	for _, name := range names {
		id, ok := r.cache.term(t, name)
		if !ok {
			return nil, fmt.Errorf("resolve %s term %q: not created", t, name)
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (r *TermResolver) taxonomyID(ctx context.Context, t domain.TaxonomyType) (int64, error) {
	if id, ok := r.cache.taxonomy(t); ok {
		return id, nil
	}

	id, err := r.store.EnsureTaxonomy(ctx, t)
	if err != nil {
		return 0, fmt.Errorf("ensure taxonomy %s: %w", t, err)
	}
	r.cache.setTaxonomy(t, id)

	return id, nil
}

// lookup caches stored terms matching names and returns the names still
// unknown.
func (r *TermResolver) lookup(ctx context.Context, t domain.TaxonomyType, taxonomyID int64, names []string) ([]string, error) {
	found, err := r.store.FindTerms(ctx, taxonomyID, names)
	if err != nil {
		return nil, fmt.Errorf("find %s terms: %w", t, err)
	}

	// Exact name matches win over case-insensitive ones.
	exact := make(map[string]bool, len(names))
	for _, name := range names {
		exact[name] = true
	}
	for _, term := range found {
		if exact[term.Name] {
			r.cache.setTerm(t, term.Name, term.ID, false)
		}
	}
	for _, term := range found {
		r.cache.setTerm(t, term.Name, term.ID, false)
	}

	var rest []string
	for _, name := range names {
		if _, ok := r.cache.term(t, name); !ok {
			rest = append(rest, name)
		}
	}

	return rest, nil
}

func (r *TermResolver) create(ctx context.Context, t domain.TaxonomyType, taxonomyID int64, names []string) error {
	planned := make(map[string]bool, len(names))
	toInsert := make([]domain.Term, 0, len(names))

	for _, name := range names {
		var reused *domain.Term
		termSlug, err := slug.Unique(ctx, slug.Slug(name), func(ctx context.Context, candidate string) (bool, bool, error) {
			if planned[candidate] {
				return true, false, nil
			}
			holder, err := r.store.FindTermBySlug(ctx, taxonomyID, candidate)
			if err != nil || holder == nil {
				return false, false, err
			}
			if newTermKey(t, holder.Name) == newTermKey(t, name) {
				reused = holder
				return true, true, nil
			}
			return true, false, nil
		})
		if err != nil {
			return fmt.Errorf("slug for %s term %q: %w", t, name, err)
		}

		if reused != nil {
			r.cache.setTerm(t, name, reused.ID, false)
			continue
		}

		planned[termSlug] = true
		toInsert = append(toInsert, domain.Term{TaxonomyID: taxonomyID, Name: name, Slug: termSlug})
	}

	if len(toInsert) == 0 {
		return nil
	}

	inserted, err := r.store.InsertTerms(ctx, taxonomyID, toInsert)
	if err != nil {
		return fmt.Errorf("insert %s terms: %w", t, err)
	}
	for _, term := range inserted {
		r.cache.setTerm(t, term.Name, term.ID, true)
	}

	// Rows skipped by ON CONFLICT were created elsewhere in the meantime.
	if len(inserted) < len(toInsert) {
		var lost []string
		for _, term := range toInsert {
			if _, ok := r.cache.term(t, term.Name); !ok {
				lost = append(lost, term.Name)
			}
		}
		if _, err := r.lookup(ctx, t, taxonomyID, lost); err != nil {
			return err
		}
	}

	return nil
}

func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		key := strings.ToLower(n)
		if n == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}
