package cmd

import (
	"log"

	"github.com/cjwinchester/co-redistricting-applicants/internal/config"
	"github.com/spf13/cobra"
)

var scraperCmd = &cobra.Command{
	Use:   "scrape",
	Short: "保存済みのHTMLから応募者の情報を抽出します",
	Long:  `ローカルに保存された詳細ページを解析し、見出しと値の組を抽出して設定された出力先(CSV/XLSX/SQLite)に保存します`,
	Run: func(cmd *cobra.Command, args []string) {
		appLogger := newAppLogger()

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("スクレイプの設定ファイルを読み込めませんでした: %v", err)
		}

		scraper, err := newScraper(&cfg, appLogger)
		if err != nil {
			log.Fatalf("スクレイパーの初期化に失敗しました: %v", err)
		}

		if _, err := scraper.SaveApplicantDataset(cmd.Context()); err != nil {
			log.Fatalf("スクレイプに失敗しました: %v", err)
		}
	}}

func init() {
	rootCmd.AddCommand(scraperCmd)
}
