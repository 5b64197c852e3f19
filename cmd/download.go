package cmd

import (
	"log"
	"os"

	"github.com/cjwinchester/co-redistricting-applicants/internal/config"
	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "応募者一覧をページングし、未保存の詳細ページをHTMLとして保存します",
	Long: `委員会種別ごとに一覧の全ページから詳細リンクと登録日時を集めて応募日時ファイルに書き出し、
<html_dir>/<委員会種別>/<応募者ID>.html がまだ無い詳細ページだけを取得して保存します。`,
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

		appLogger.Info("詳細ページのダウンロードを開始します")
		if _, err := downloader.DownloadApplicantPages(ctx); err != nil {
			appLogger.Error("ダウンロード中にエラーが発生しました", "error", err)
			cleanup()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)
}
