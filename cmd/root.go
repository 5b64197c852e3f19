package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

// rootCmdは、アプリケーションのエントリーポイントとなるルートコマンドです。
var rootCmd = &cobra.Command{
	Use:   "applicants",
	Short: "コロラド州区割り委員会の応募者ページを収集し、データセットにします。",
	Long: `applicantsは、委員会の応募者一覧をページングして詳細ページをHTMLとして保存するdownloadと、
保存済みのHTMLから見出しと値を抽出してCSVなどに出力するscrapeを提供します。
runは両方を続けて実行し、更新時刻を記録します。`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env が無い環境(CIなど)では環境変数をそのまま使う
		_ = godotenv.Load()
	},
}

// Executeは、全てのサブコマンドをルートコマンドに追加し、フラグを適切に設定します。
// この関数はmain.main()から呼び出され、rootCmdに対して一度だけ実行される必要があります。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "settings/applicants.yaml", "設定ファイルのパス")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "デバッグログを出力します")
}
