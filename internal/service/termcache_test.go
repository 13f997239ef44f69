package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"manga_ingest/internal/domain"
	"manga_ingest/internal/service/mocks"
)

func TestTermResolver_CreatesMissingTermsInOneInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)
	ctx := context.Background()

	store.EXPECT().EnsureTaxonomy(gomock.Any(), domain.TaxonomyGenre).Return(int64(1), nil)
	store.EXPECT().FindTerms(gomock.Any(), int64(1), []string{"热血", "Action", "Comedy"}).
		Return([]domain.Term{{ID: 11, TaxonomyID: 1, Name: "热血", Slug: "re-xue"}}, nil)
	store.EXPECT().FindTermBySlug(gomock.Any(), int64(1), "action").
		Return(&domain.Term{ID: 12, TaxonomyID: 1, Name: "Action!", Slug: "action"}, nil)
	store.EXPECT().FindTermBySlug(gomock.Any(), int64(1), "action-1").Return(nil, nil)
	store.EXPECT().FindTermBySlug(gomock.Any(), int64(1), "comedy").Return(nil, nil)
	store.EXPECT().InsertTerms(gomock.Any(), int64(1), []domain.Term{
		{TaxonomyID: 1, Name: "Action", Slug: "action-1"},
		{TaxonomyID: 1, Name: "Comedy", Slug: "comedy"},
	}).Return([]domain.Term{
		{ID: 13, TaxonomyID: 1, Name: "Action", Slug: "action-1"},
		{ID: 14, TaxonomyID: 1, Name: "Comedy", Slug: "comedy"},
	}, nil)

	r := NewTermResolver(store, nil)

	ids, err := r.Resolve(ctx, domain.TaxonomyGenre, []string{"热血", "Action", " 热血 ", "", "Comedy"})
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 13, 14}, ids)

	// served from the cache, no further store calls
	ids, err = r.Resolve(ctx, domain.TaxonomyGenre, []string{"comedy", "热血"})
	require.NoError(t, err)
	assert.Equal(t, []int64{14, 11}, ids)
}

func TestTermResolver_ReusesSlugHolderWithSameName(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)

	store.EXPECT().EnsureTaxonomy(gomock.Any(), domain.TaxonomyAuthor).Return(int64(2), nil)
	store.EXPECT().FindTerms(gomock.Any(), int64(2), []string{"Oda"}).Return(nil, nil)
	store.EXPECT().FindTermBySlug(gomock.Any(), int64(2), "oda").
		Return(&domain.Term{ID: 21, TaxonomyID: 2, Name: "ODA ", Slug: "oda"}, nil)

	ids, err := NewTermResolver(store, nil).Resolve(context.Background(), domain.TaxonomyAuthor, []string{"Oda"})
	require.NoError(t, err)
	assert.Equal(t, []int64{21}, ids)
}

func TestTermResolver_ExactNameBeatsFoldedMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)

	store.EXPECT().EnsureTaxonomy(gomock.Any(), domain.TaxonomyGenre).Return(int64(1), nil)
	store.EXPECT().FindTerms(gomock.Any(), int64(1), []string{"naruto"}).Return([]domain.Term{
		{ID: 31, TaxonomyID: 1, Name: "NARUTO", Slug: "naruto"},
		{ID: 32, TaxonomyID: 1, Name: "naruto", Slug: "naruto-1"},
	}, nil)

	ids, err := NewTermResolver(store, nil).Resolve(context.Background(), domain.TaxonomyGenre, []string{"naruto"})
	require.NoError(t, err)
	assert.Equal(t, []int64{32}, ids)
}

func TestTermResolver_ConflictingInsertFallsBackToLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)

	store.EXPECT().EnsureTaxonomy(gomock.Any(), domain.TaxonomyGenre).Return(int64(1), nil)
	store.EXPECT().FindTerms(gomock.Any(), int64(1), []string{"Action"}).Return(nil, nil)
	store.EXPECT().FindTermBySlug(gomock.Any(), int64(1), "action").Return(nil, nil)
	store.EXPECT().InsertTerms(gomock.Any(), int64(1), gomock.Len(1)).Return(nil, nil)
	store.EXPECT().FindTerms(gomock.Any(), int64(1), []string{"Action"}).
		Return([]domain.Term{{ID: 15, TaxonomyID: 1, Name: "Action", Slug: "action"}}, nil)

	ids, err := NewTermResolver(store, nil).Resolve(context.Background(), domain.TaxonomyGenre, []string{"Action"})
	require.NoError(t, err)
	assert.Equal(t, []int64{15}, ids)
}

func TestTermResolver_RollbackForgetsInsertedTerms(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)
	ctx := context.Background()

	store.EXPECT().EnsureTaxonomy(gomock.Any(), domain.TaxonomyGenre).Return(int64(1), nil)
	store.EXPECT().FindTerms(gomock.Any(), int64(1), []string{"热血", "Action"}).
		Return([]domain.Term{{ID: 11, TaxonomyID: 1, Name: "热血"}}, nil)
	store.EXPECT().FindTermBySlug(gomock.Any(), int64(1), "action").Return(nil, nil)
	store.EXPECT().InsertTerms(gomock.Any(), int64(1), gomock.Len(1)).
		Return([]domain.Term{{ID: 13, TaxonomyID: 1, Name: "Action", Slug: "action"}}, nil)

	cache := NewTermCache()
	r := NewTermResolver(store, cache)

	r.Lock()
	_, err := r.Resolve(ctx, domain.TaxonomyGenre, []string{"热血", "Action"})
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
	r.Rollback()

	assert.Equal(t, 1, cache.Len(), "stored term stays, inserted one is forgotten")

	store.EXPECT().FindTerms(gomock.Any(), int64(1), []string{"Action"}).
		Return([]domain.Term{{ID: 16, TaxonomyID: 1, Name: "Action"}}, nil)

	r.Lock()
	ids, err := r.Resolve(ctx, domain.TaxonomyGenre, []string{"Action"})
	r.Commit()
	require.NoError(t, err)
	assert.Equal(t, []int64{16}, ids)
	assert.Equal(t, 2, cache.Len())
}

func TestTermResolver_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)

	ids, err := NewTermResolver(store, nil).Resolve(context.Background(), domain.TaxonomyGenre, []string{" ", ""})
	require.NoError(t, err)
	assert.Empty(t, ids)
}
