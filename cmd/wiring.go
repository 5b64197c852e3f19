package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cjwinchester/co-redistricting-applicants/internal/config"
	"github.com/cjwinchester/co-redistricting-applicants/internal/constants"
	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/repository"
	"github.com/cjwinchester/co-redistricting-applicants/internal/infra"
	"github.com/cjwinchester/co-redistricting-applicants/internal/logger"
	"github.com/cjwinchester/co-redistricting-applicants/internal/usecase"
	"github.com/redis/go-redis/v9"
)

func newAppLogger() logger.AppLogger {
	return logger.NewTextLogger(os.Stdout, verbose)
}

// newPageFetcherは設定に応じてHTTPクライアントかブラウザクライアントを返します。
func newPageFetcher(cfg *config.Config) (infra.PageFetcher, error) {
	d := cfg.Downloader
	switch d.Fetcher {
	case config.BrowserFetcher:
		return infra.NewBrowserClient(infra.BrowserClientArgs{
			UserAgent:      d.UserAgent,
			Headers:        d.Headers,
			Timeout:        d.Timeout(),
			EnableHeadless: d.EnableHeadless,
		})
	default:
		return infra.NewHTTPClient(infra.HTTPClientArgs{
			UserAgent: d.UserAgent,
			Headers:   d.Headers,
			Timeout:   d.Timeout(),
		}), nil
	}
}

// newCrawlJobRepositoryは REDIS_ADDRESS が設定されていればRedisを、
// 無ければ何も記録しないリポジトリを返します。
func newCrawlJobRepository(ctx context.Context, appLogger logger.AppLogger) (repository.CrawlJobRepository, func(), error) {
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		appLogger.Info("REDIS_ADDRESSが未設定のため、クロールジョブは記録しません")
		return infra.NewNopCrawlJobClient(), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	// Redisへの接続を確認 (ping)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("Redisへの接続に失敗しました: %w", err)
	}
	appLogger.Info("Redisへの接続を確認しました", "addr", addr)

	return infra.NewCrawlJobClient(rdb), func() { rdb.Close() }, nil
}

// newDownloaderはダウンロードユースケースと、その後始末の関数を返します。
func newDownloader(ctx context.Context, cfg *config.Config, appLogger logger.AppLogger) (usecase.ApplicantDownloader, func(), error) {
	parser, err := infra.NewListingParser(infra.ListingParserArgs{
		BaseURL:          cfg.Site.BaseURL,
		PageParam:        cfg.Site.PageParam,
		LastPageLinkText: cfg.Site.LastPageLinkText,
	})
	if err != nil {
		return nil, nil, err
	}

	repo, closeRepo, err := newCrawlJobRepository(ctx, appLogger)
	if err != nil {
		return nil, nil, err
	}

	fetcher, err := newPageFetcher(cfg)
	if err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("ページ取得クライアントの初期化に失敗しました: %w", err)
	}

	timesApplied, err := infra.NewTimesAppliedWriter(cfg.Downloader.TimesAppliedFile, constants.GetTimesAppliedHeaders())
	if err != nil {
		fetcher.Close()
		closeRepo()
		return nil, nil, err
	}

	downloader := usecase.NewDownloadApplicantPagesUseCase(usecase.DownloaderArgs{
		Cfg:          cfg,
		Fetcher:      fetcher,
		Parser:       parser,
		Loader:       infra.NewHTMLFileLoader(cfg.Downloader.HTMLDir),
		TimesApplied: timesApplied,
		Repo:         repo,
		Throttle:     infra.NewThrottle(cfg.Downloader.SleepMin(), cfg.Downloader.SleepMax()),
		Logger:       appLogger,
	})

	cleanup := func() {
		if err := fetcher.Close(); err != nil {
			appLogger.Warn("ページ取得クライアントのクローズに失敗しました", "error", err)
		}
		closeRepo()
	}
	return downloader, cleanup, nil
}

// newScraperはスクレイパーユースケースを返します。出力ファイルはこの時点で作成されます。
func newScraper(cfg *config.Config, appLogger logger.AppLogger) (usecase.ApplicantScraper, error) {
	headers := constants.GetScraperCSVHeaders()

	exporters := make([]infra.FileExporter, 0, len(cfg.Scraper.Outputs))
	for _, output := range cfg.Scraper.Outputs {
		exporter, err := infra.NewFileExporter(filepath.Clean(output), headers)
		if err != nil {
			for _, e := range exporters {
				e.Abort()
			}
			return nil, fmt.Errorf("エクスポーターの初期化に失敗しました: %w", err)
		}
		exporters = append(exporters, exporter)
	}

	return usecase.NewSaveApplicantDatasetUseCase(usecase.ScraperArgs{
		Cfg:      cfg,
		Loader:   infra.NewHTMLFileLoader(cfg.Scraper.HTMLDir),
		Parser:   infra.NewApplicantParser(constants.GetExtractionRules(), constants.GetGenderLookup()),
		Exporter: infra.NewMultiExporter(exporters...),
		Report:   os.Stdout,
		Logger:   appLogger,
	}), nil
}
