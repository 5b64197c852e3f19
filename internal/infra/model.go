package infra

import (
	"fmt"
	"net/url"
	"time"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"github.com/google/uuid"
)

// CrawlJobRecordはRedisに保存するCrawlJobのJSON表現です。
type CrawlJobRecord struct {
	ID             string    `json:"id"`
	URL            string    `json:"url"`
	Status         string    `json:"status"`
	CommissionType string    `json:"commission_type"`
	ApplicantID    string    `json:"applicant_id"`
	LastError      string    `json:"last_error,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (c *CrawlJobRecord) ToDomain() (model.CrawlJob, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return model.CrawlJob{}, fmt.Errorf("ジョブIDのパースに失敗しました: %w", err)
	}

	parsed, err := url.Parse(c.URL)
	if err != nil {
		return model.CrawlJob{}, fmt.Errorf("ジョブURLのパースに失敗しました: %w", err)
	}

	status, err := model.ParseCrawlJobStatus(c.Status)
	if err != nil {
		return model.CrawlJob{}, err
	}

	return model.CrawlJob{
		ID:             id,
		URL:            *parsed,
		Status:         status,
		CommissionType: model.CommissionType(c.CommissionType),
		ApplicantID:    c.ApplicantID,
		LastError:      c.LastError,
		UpdatedAt:      c.UpdatedAt,
	}, nil
}

func ToRecord(job model.CrawlJob) CrawlJobRecord {
	return CrawlJobRecord{
		ID:             job.ID.String(),
		URL:            job.URL.String(),
		Status:         string(job.Status),
		CommissionType: string(job.CommissionType),
		ApplicantID:    job.ApplicantID,
		LastError:      job.LastError,
		UpdatedAt:      job.UpdatedAt,
	}
}
