package cmd

import (
	"log"
	"os"

	"github.com/cjwinchester/co-redistricting-applicants/internal/config"
	"github.com/cjwinchester/co-redistricting-applicants/internal/usecase"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "download と scrape を続けて実行し、更新時刻を記録します",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		appLogger := newAppLogger()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("設定ファイルの読み込みに失敗: %v", err)
		}

		downloader, cleanup, err := newDownloader(ctx, &cfg, appLogger)
		if err != nil {
			log.Fatalf("ダウンローダーの初期化に失敗: %v", err)
		}
		defer cleanup()

		uc := usecase.NewUpdateDatasetUseCase(usecase.RunArgs{
			Downloader: downloader,
			NewScraper: func() (usecase.ApplicantScraper, error) {
				return newScraper(&cfg, appLogger)
			},
			UpdatedFile: cfg.Scraper.UpdatedFile,
			Logger:      appLogger,
		})
		if err := uc.UpdateDataset(ctx); err != nil {
			appLogger.Error("データセットの更新に失敗しました", "error", err)
			cleanup()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
