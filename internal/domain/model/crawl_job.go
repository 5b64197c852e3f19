package model

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

type CrawlJobStatus string

const (
	CrawlJobStatusPending CrawlJobStatus = "PENDING"
	CrawlJobStatusSuccess CrawlJobStatus = "SUCCESS"
	CrawlJobStatusFailed  CrawlJobStatus = "FAILED"
)

func ParseCrawlJobStatus(s string) (CrawlJobStatus, error) {
	switch CrawlJobStatus(s) {
	case CrawlJobStatusPending, CrawlJobStatusSuccess, CrawlJobStatusFailed:
		return CrawlJobStatus(s), nil
	default:
		return "", fmt.Errorf("未対応のジョブステータスです: %s", s)
	}
}

// CrawlJobは詳細ページ1件のダウンロード状況です。
type CrawlJob struct {
	ID             uuid.UUID
	URL            url.URL
	Status         CrawlJobStatus
	CommissionType CommissionType
	ApplicantID    string
	LastError      string
	UpdatedAt      time.Time
}

func NewPendingCrawlJob(commissionType CommissionType, applicantID string, link url.URL) CrawlJob {
	return CrawlJob{
		ID:             uuid.New(),
		URL:            link,
		Status:         CrawlJobStatusPending,
		CommissionType: commissionType,
		ApplicantID:    applicantID,
		UpdatedAt:      time.Now().UTC(),
	}
}

// WithStatusは同じIDのままステータスを更新したジョブを返します。
func (j CrawlJob) WithStatus(status CrawlJobStatus, lastError string) CrawlJob {
	j.Status = status
	j.LastError = lastError
	j.UpdatedAt = time.Now().UTC()
	return j
}
