package cmd

import (
	"log"
	"os"
	"strings"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"github.com/cjwinchester/co-redistricting-applicants/internal/infra"
	"github.com/spf13/cobra"
)

var (
	jobStatus string
	jobLimit  int
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Redisに記録したクロールジョブをステータス別に表示します",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		appLogger := newAppLogger()

		status, err := model.ParseCrawlJobStatus(strings.ToUpper(jobStatus))
		if err != nil {
			log.Fatalf("%v", err)
		}

		if os.Getenv("REDIS_ADDRESS") == "" {
			log.Fatalf("REDIS_ADDRESSが設定されていません")
		}

		repo, closeRepo, err := newCrawlJobRepository(ctx, appLogger)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer closeRepo()

		jobs, err := repo.FindListByStatus(ctx, jobLimit, status)
		if err != nil {
			appLogger.Error("クロールジョブの取得に失敗しました", "error", err)
			closeRepo()
			os.Exit(1)
		}

		infra.RenderCrawlJobs(os.Stdout, jobs)
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.Flags().StringVarP(&jobStatus, "status", "s", "failed", "表示するステータス (pending, success, failed)")
	jobsCmd.Flags().IntVarP(&jobLimit, "limit", "n", 0, "表示する最大件数 (0は全件)")
}
