package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"manga_ingest/internal/domain"
	"manga_ingest/internal/genre"
	"manga_ingest/internal/service/mocks"
)

type ImportServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	reader     *mocks.MockReferenceReader
	mangas     *mocks.MockMangaStore
	taxonomies *mocks.MockTaxonomyStore
	txManager  *mocks.MockTransactionManager

	openedPath string
	service    *ImportService
}

func (s *ImportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reader = mocks.NewMockReferenceReader(s.ctrl)
	s.mangas = mocks.NewMockMangaStore(s.ctrl)
	s.taxonomies = mocks.NewMockTaxonomyStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	vocabulary, err := genre.Default()
	s.Require().NoError(err)

	open := func(path string) (ReferenceReader, error) {
		s.openedPath = path
		return s.reader, nil
	}

	s.service = NewImportService(open, s.mangas, s.taxonomies, s.txManager, nil, vocabulary, testLogger())
}

func (s *ImportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}

func (s *ImportServiceTestSuite) TestImport_EnrichesMatchedManga() {
	ctx := context.Background()

	s.reader.EXPECT().Count(gomock.Any()).Return(3, nil)
	s.reader.EXPECT().Close().Return(nil)
	s.mangas.EXPECT().ListIndex(gomock.Any()).Return([]domain.MangaIndexEntry{
		{ID: 1, Name: "One Piece", AlternativeNames: []string{"ワンピース"}},
		{ID: 2, Name: "Naruto", Cover: "/covers/naruto.jpg"},
	}, nil)

	s.reader.EXPECT().Read(gomock.Any(), int64(0), 2).Return([]domain.ReferenceRecord{
		{ID: 1, Title: "ONE PIECE", Genres: []string{"Action", "Zzz"}, Authors: []string{"Oda"}, CoverURL: "https://ref.example.com/op.jpg"},
		{ID: 2, Title: "Bleach", Genres: []string{"Action"}},
	}, nil)
	s.reader.EXPECT().Read(gomock.Any(), int64(2), 1).Return([]domain.ReferenceRecord{
		{ID: 3, Title: "Other", AltTitles: []string{"Naruto"}, Genres: []string{"搞笑"}},
	}, nil)

	// One Piece: no genres yet, authors already linked, no cover
	s.taxonomies.EXPECT().CountLinks(gomock.Any(), int64(1), domain.TaxonomyGenre).Return(0, nil)
	s.taxonomies.EXPECT().EnsureTaxonomy(gomock.Any(), domain.TaxonomyGenre).Return(int64(1), nil)
	s.taxonomies.EXPECT().FindTerms(gomock.Any(), int64(1), []string{"热血"}).
		Return([]domain.Term{{ID: 101, TaxonomyID: 1, Name: "热血"}}, nil)
	s.taxonomies.EXPECT().LinkTerms(gomock.Any(), int64(1), []int64{101}).Return(1, nil)
	s.taxonomies.EXPECT().CountLinks(gomock.Any(), int64(1), domain.TaxonomyAuthor).Return(2, nil)
	s.mangas.EXPECT().SetCoverIfEmpty(gomock.Any(), int64(1), "https://ref.example.com/op.jpg").Return(true, nil)

	// Naruto: genres already linked, cover present
	s.taxonomies.EXPECT().CountLinks(gomock.Any(), int64(2), domain.TaxonomyGenre).Return(1, nil)

	stats, err := s.service.Import(ctx, ImportOptions{ExternalDBPath: "ref.db", BatchSize: 2, MaxRecords: 3})

	s.Require().NoError(err)
	s.Equal("ref.db", s.openedPath)
	s.Equal(3, stats.Read)
	s.Equal(2, stats.Matched)
	s.Equal(1, stats.Unmatched)
	s.Equal(1, stats.GenresLinked)
	s.Equal(0, stats.AuthorsLinked)
	s.Equal(1, stats.CoversSet)
	s.Equal(0, stats.Errors)
}

func (s *ImportServiceTestSuite) TestImport_LinkFailureIsCounted() {
	ctx := context.Background()

	s.reader.EXPECT().Count(gomock.Any()).Return(1, nil)
	s.reader.EXPECT().Close().Return(nil)
	s.mangas.EXPECT().ListIndex(gomock.Any()).Return([]domain.MangaIndexEntry{
		{ID: 1, Name: "One Piece", Cover: "/covers/op.jpg"},
	}, nil)
	s.reader.EXPECT().Read(gomock.Any(), int64(0), 100).Return([]domain.ReferenceRecord{
		{ID: 9, Title: "One-Piece", Authors: []string{"Oda"}},
	}, nil)
	s.reader.EXPECT().Read(gomock.Any(), int64(9), 100).Return(nil, nil)

	s.taxonomies.EXPECT().CountLinks(gomock.Any(), int64(1), domain.TaxonomyAuthor).Return(0, errors.New("deadlock detected"))

	stats, err := s.service.Import(ctx, ImportOptions{ExternalDBPath: "ref.db"})

	s.Require().NoError(err)
	s.Equal(1, stats.Matched)
	s.Equal(1, stats.Errors)
}

func (s *ImportServiceTestSuite) TestImport_OpenError() {
	service := NewImportService(
		func(string) (ReferenceReader, error) { return nil, errors.New("no such file") },
		s.mangas, s.taxonomies, s.txManager, nil, nil, testLogger(),
	)

	_, err := service.Import(context.Background(), ImportOptions{ExternalDBPath: "missing.db"})

	s.Error(err)
}
