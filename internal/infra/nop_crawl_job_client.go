package infra

import (
	"context"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/repository"
)

// Redisを使わない場合のCrawlJobRepository
type nopCrawlJobClient struct{}

func NewNopCrawlJobClient() repository.CrawlJobRepository {
	return nopCrawlJobClient{}
}

func (nopCrawlJobClient) Save(context.Context, model.CrawlJob) error {
	return nil
}

func (nopCrawlJobClient) Delete(context.Context, model.CrawlJob) error {
	return nil
}

func (nopCrawlJobClient) FindListByStatus(context.Context, int, model.CrawlJobStatus) ([]model.CrawlJob, error) {
	return nil, nil
}
