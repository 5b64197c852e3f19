package repository

import (
	"context"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
)

// CrawlJobRepositoryは詳細ページのダウンロード状況の記録先です。
// ジョブはステータスと詳細ページのURLの組で一意になります。
type CrawlJobRepository interface {
	// Saveは同じステータス・URLのジョブを上書きします。
	Save(ctx context.Context, job model.CrawlJob) error
	// Deleteはステータスを変える前に古いステータスのジョブを消すために使います。
	Delete(ctx context.Context, job model.CrawlJob) error
	// FindListByStatusはsizeが0以下なら全件を返します。
	FindListByStatus(ctx context.Context, size int, status model.CrawlJobStatus) ([]model.CrawlJob, error)
}
