package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cjwinchester/co-redistricting-applicants/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDownloader struct {
	err    error
	called bool
}

func (s *stubDownloader) DownloadApplicantPages(context.Context) (DownloadResult, error) {
	s.called = true
	return DownloadResult{}, s.err
}

type stubScraper struct {
	err    error
	called bool
}

func (s *stubScraper) SaveApplicantDataset(context.Context) (ScrapeResult, error) {
	s.called = true
	return ScrapeResult{}, s.err
}

func TestUpdateDataset(t *testing.T) {
	updated := filepath.Join(t.TempDir(), "updated")
	downloader, scraper := &stubDownloader{}, &stubScraper{}

	uc := NewUpdateDatasetUseCase(RunArgs{
		Downloader:  downloader,
		NewScraper:  func() (ApplicantScraper, error) { return scraper, nil },
		UpdatedFile: updated,
		Now:         func() time.Time { return time.Date(2021, 3, 4, 5, 6, 7, 123456000, time.UTC) },
		Logger:      logger.NewNopLogger(),
	})

	require.NoError(t, uc.UpdateDataset(context.Background()))
	assert.True(t, downloader.called)
	assert.True(t, scraper.called)

	raw, err := os.ReadFile(updated)
	require.NoError(t, err)
	assert.Equal(t, "2021-03-04T05:06:07.123456Z", string(raw))
}

func TestUpdateDatasetDownloadFailure(t *testing.T) {
	updated := filepath.Join(t.TempDir(), "updated")
	factoryCalled := false

	uc := NewUpdateDatasetUseCase(RunArgs{
		Downloader: &stubDownloader{err: errors.New("listing unavailable")},
		NewScraper: func() (ApplicantScraper, error) {
			factoryCalled = true
			return &stubScraper{}, nil
		},
		UpdatedFile: updated,
		Logger:      logger.NewNopLogger(),
	})

	assert.Error(t, uc.UpdateDataset(context.Background()))
	assert.False(t, factoryCalled)
	assert.NoFileExists(t, updated)
}

func TestUpdateDatasetScrapeFailure(t *testing.T) {
	updated := filepath.Join(t.TempDir(), "updated")

	uc := NewUpdateDatasetUseCase(RunArgs{
		Downloader:  &stubDownloader{},
		NewScraper:  func() (ApplicantScraper, error) { return &stubScraper{err: errors.New("disk full")}, nil },
		UpdatedFile: updated,
		Logger:      logger.NewNopLogger(),
	})

	assert.Error(t, uc.UpdateDataset(context.Background()))
	assert.NoFileExists(t, updated)
}
