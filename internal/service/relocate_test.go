package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"manga_ingest/internal/config"
	"manga_ingest/internal/domain"
	"manga_ingest/internal/images"
	"manga_ingest/internal/service/mocks"
)

type RelocateServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	pages    *mocks.MockPageStore
	acquirer *mocks.MockImageAcquirer

	service *RelocateService
	logger  *slog.Logger
}

func (s *RelocateServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.pages = mocks.NewMockPageStore(s.ctrl)
	s.acquirer = mocks.NewMockImageAcquirer(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewRelocateService(
		s.pages,
		s.acquirer,
		nil,
		"manga",
		"https://cdn.example.com/",
		2,
		s.logger,
		config.RelocateConfig{Workers: 2},
	)
}

func (s *RelocateServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRelocateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RelocateServiceTestSuite))
}

func (s *RelocateServiceTestSuite) TestRelocate_UploadsAndRecordsSecondary() {
	ctx := context.Background()

	s.pages.EXPECT().ListMissingSecondary(gomock.Any(), int64(0), 2).Return([]domain.RelocationCandidate{
		{PageID: 1, PageNumber: 1, ImageURL: "https://img.example.com/a.jpg", MangaSlug: "one-piece", ChapterSlug: "di-1hua"},
		{PageID: 2, PageNumber: 2, ImageURL: "/data/one-piece/di-1hua/page-002.png", MangaSlug: "one-piece", ChapterSlug: "di-1hua"},
	}, nil)
	s.pages.EXPECT().ListMissingSecondary(gomock.Any(), int64(2), 2).Return([]domain.RelocationCandidate{
		{PageID: 3, PageNumber: 1, ImageURL: "https://cdn.example.com/manga/naruto/di-1hua/page-001.jpg", MangaSlug: "naruto", ChapterSlug: "di-1hua"},
	}, nil)

	s.acquirer.EXPECT().Acquire(gomock.Any(), images.Request{
		URL:        "https://img.example.com/a.jpg",
		Key:        "manga/one-piece/di-1hua/page-001.jpg",
		MaxRetries: 2,
		Mode:       images.ModeObject,
	}).Return("https://cdn.example.com/manga/one-piece/di-1hua/page-001.jpg", nil)
	s.acquirer.EXPECT().Acquire(gomock.Any(), images.Request{
		Dest:       "/data/one-piece/di-1hua/page-002.png",
		Key:        "manga/one-piece/di-1hua/page-002.png",
		MaxRetries: 2,
		Mode:       images.ModeBoth,
	}).Return("https://cdn.example.com/manga/one-piece/di-1hua/page-002.png", nil)

	s.pages.EXPECT().SetSecondary(gomock.Any(), int64(1), "https://cdn.example.com/manga/one-piece/di-1hua/page-001.jpg").Return(true, nil)
	s.pages.EXPECT().SetSecondary(gomock.Any(), int64(2), "https://cdn.example.com/manga/one-piece/di-1hua/page-002.png").Return(true, nil)
	s.pages.EXPECT().SetSecondary(gomock.Any(), int64(3), "https://cdn.example.com/manga/naruto/di-1hua/page-001.jpg").Return(false, nil)

	stats, err := s.service.Relocate(ctx, RelocateOptions{BatchSize: 2})

	s.Require().NoError(err)
	s.Equal(3, stats.Scanned)
	s.Equal(3, stats.Relocated)
	s.Equal(0, stats.Failed)
	s.Equal(2, stats.Batches)
}

func (s *RelocateServiceTestSuite) TestRelocate_FailuresAreCountedAndSkipped() {
	ctx := context.Background()

	s.pages.EXPECT().ListMissingSecondary(gomock.Any(), int64(0), 2).Return([]domain.RelocationCandidate{
		{PageID: 5, PageNumber: 1, ImageURL: "https://img.example.com/gone.jpg", MangaSlug: "m", ChapterSlug: "c"},
		{PageID: 6, PageNumber: 2, ImageURL: "https://img.example.com/ok.jpg", MangaSlug: "m", ChapterSlug: "c"},
	}, nil)

	s.acquirer.EXPECT().Acquire(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req images.Request) (string, error) {
			if req.URL == "https://img.example.com/gone.jpg" {
				return "", images.ErrValidation
			}
			return "https://cdn.example.com/" + req.Key, nil
		},
	).Times(2)
	s.pages.EXPECT().SetSecondary(gomock.Any(), int64(6), "https://cdn.example.com/manga/m/c/page-002.jpg").Return(true, nil)

	stats, err := s.service.Relocate(ctx, RelocateOptions{BatchSize: 10, MaxPages: 2})

	s.Require().NoError(err)
	s.Equal(2, stats.Scanned)
	s.Equal(1, stats.Relocated)
	s.Equal(1, stats.Failed)
	s.Equal(1, stats.Batches)
}

func (s *RelocateServiceTestSuite) TestRelocate_LocalFileKeepsCrawlName() {
	ctx := context.Background()

	// page 3 of the source failed during the crawl, the stored pages were renumbered
	s.pages.EXPECT().ListMissingSecondary(gomock.Any(), int64(0), 10).Return([]domain.RelocationCandidate{
		{PageID: 8, PageNumber: 3, ImageURL: "images/manga/m/c/page-004.webp", MangaSlug: "m", ChapterSlug: "c"},
	}, nil)

	s.acquirer.EXPECT().Acquire(gomock.Any(), images.Request{
		Dest:       "images/manga/m/c/page-004.webp",
		Key:        "manga/m/c/page-004.webp",
		MaxRetries: 2,
		Mode:       images.ModeBoth,
	}).Return("https://cdn.example.com/manga/m/c/page-004.webp", nil)
	s.pages.EXPECT().SetSecondary(gomock.Any(), int64(8), "https://cdn.example.com/manga/m/c/page-004.webp").Return(true, nil)

	stats, err := s.service.Relocate(ctx, RelocateOptions{BatchSize: 10})

	s.Require().NoError(err)
	s.Equal(1, stats.Relocated)
}

func (s *RelocateServiceTestSuite) TestRelocate_NothingToDo() {
	s.pages.EXPECT().ListMissingSecondary(gomock.Any(), int64(0), 10).Return(nil, nil)

	stats, err := s.service.Relocate(context.Background(), RelocateOptions{})

	s.Require().NoError(err)
	s.Equal(0, stats.Scanned)
	s.Equal(0, stats.Batches)
}

func (s *RelocateServiceTestSuite) TestRelocate_ListError() {
	s.pages.EXPECT().ListMissingSecondary(gomock.Any(), int64(0), 10).Return(nil, errors.New("connection refused"))

	_, err := s.service.Relocate(context.Background(), RelocateOptions{BatchSize: 10})

	s.Error(err)
}
