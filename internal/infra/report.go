package infra

import (
	"io"
	"sort"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderUnmappedGendersは分類表に無かった性別の回答と件数を表にして出力します。
func RenderUnmappedGenders(w io.Writer, counts map[string]int) {
	answers := make([]string, 0, len(counts))
	for answer := range counts {
		answers = append(answers, answer)
	}
	sort.Strings(answers)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("unmapped gender answers")
	t.AppendHeader(table.Row{"answer", "count"})
	for _, answer := range answers {
		t.AppendRow(table.Row{answer, counts[answer]})
	}
	t.Render()
}

// RenderCrawlJobsはクロールジョブの一覧を表にして出力します。
func RenderCrawlJobs(w io.Writer, jobs []model.CrawlJob) {
	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].CommissionType != jobs[j].CommissionType {
			return jobs[i].CommissionType < jobs[j].CommissionType
		}
		return jobs[i].ApplicantID < jobs[j].ApplicantID
	})

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"commission_type", "applicant_id", "status", "url", "updated_at", "last_error"})
	for _, job := range jobs {
		t.AppendRow(table.Row{
			job.CommissionType,
			job.ApplicantID,
			job.Status,
			job.URL.String(),
			job.UpdatedAt.Format("2006-01-02T15:04:05Z"),
			job.LastError,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "total", len(jobs)})
	t.Render()
}
