package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cjwinchester/co-redistricting-applicants/internal/infra"
	"github.com/cjwinchester/co-redistricting-applicants/internal/logger"
)

type ApplicantDownloader interface {
	DownloadApplicantPages(ctx context.Context) (DownloadResult, error)
}

type ApplicantScraper interface {
	SaveApplicantDataset(ctx context.Context) (ScrapeResult, error)
}

// RunArgsは、ダウンロードからデータセット出力までを続けて行うための引数です。
// 出力ファイルはダウンロードが成功してから作るため、スクレイパーは関数で受け取ります。
type RunArgs struct {
	Downloader  ApplicantDownloader
	NewScraper  func() (ApplicantScraper, error)
	UpdatedFile string
	Now         func() time.Time
	Logger      logger.AppLogger
}

type updateDatasetUseCase struct {
	downloader  ApplicantDownloader
	newScraper  func() (ApplicantScraper, error)
	updatedFile string
	now         func() time.Time
	logger      logger.AppLogger
}

func NewUpdateDatasetUseCase(args RunArgs) *updateDatasetUseCase {
	now := args.Now
	if now == nil {
		now = time.Now
	}
	return &updateDatasetUseCase{
		downloader:  args.Downloader,
		newScraper:  args.NewScraper,
		updatedFile: args.UpdatedFile,
		now:         now,
		logger:      args.Logger,
	}
}

// UpdateDatasetは詳細ページを取得してデータセットを作り直し、更新時刻を記録します。
func (u *updateDatasetUseCase) UpdateDataset(ctx context.Context) error {
	if _, err := u.downloader.DownloadApplicantPages(ctx); err != nil {
		return fmt.Errorf("ダウンロードに失敗しました: %w", err)
	}

	scraper, err := u.newScraper()
	if err != nil {
		return fmt.Errorf("スクレイパーの初期化に失敗しました: %w", err)
	}

	if _, err := scraper.SaveApplicantDataset(ctx); err != nil {
		return fmt.Errorf("スクレイピングに失敗しました: %w", err)
	}

	if err := infra.WriteUpdatedFile(u.updatedFile, u.now()); err != nil {
		return err
	}
	u.logger.Info("更新時刻を記録しました", "path", u.updatedFile)
	return nil
}
