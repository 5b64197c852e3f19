package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/repository"
	"github.com/redis/go-redis/v9"
)

const scanBatchSize = 100

// crawlJobClientはクロールジョブを <status>_job:<url> のキーにJSONで保存します。
type crawlJobClient struct {
	redis *redis.Client
}

func NewCrawlJobClient(rds *redis.Client) repository.CrawlJobRepository {
	return &crawlJobClient{redis: rds}
}

func (r *crawlJobClient) Save(ctx context.Context, job model.CrawlJob) error {
	key, err := jobKey(job)
	if err != nil {
		return err
	}

	data, err := json.Marshal(ToRecord(job))
	if err != nil {
		return fmt.Errorf("クロールジョブのJSON変換に失敗しました: %w", err)
	}

	if err := r.redis.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("クロールジョブ %s の保存に失敗しました: %w", key, err)
	}
	return nil
}

func (r *crawlJobClient) Delete(ctx context.Context, job model.CrawlJob) error {
	key, err := jobKey(job)
	if err != nil {
		return err
	}

	if err := r.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("クロールジョブ %s の削除に失敗しました: %w", key, err)
	}
	return nil
}

// FindListByStatusはSCANで見つけたキーをバッチごとにMGETで読み出します。
func (r *crawlJobClient) FindListByStatus(ctx context.Context, size int, status model.CrawlJobStatus) ([]model.CrawlJob, error) {
	prefix, err := statusKeyPrefix(status)
	if err != nil {
		return nil, err
	}

	var jobs []model.CrawlJob
	iter := r.redis.Scan(ctx, 0, prefix+"*", scanBatchSize).Iterator()
	batch := make([]string, 0, scanBatchSize)

	flush := func() (bool, error) {
		if len(batch) == 0 {
			return false, nil
		}
		values, err := r.redis.MGet(ctx, batch...).Result()
		if err != nil {
			return false, fmt.Errorf("クロールジョブの読み出しに失敗しました: %w", err)
		}
		for i, v := range values {
			// SCANとMGETの間に消えたキー
			raw, ok := v.(string)
			if !ok {
				continue
			}
			job, err := decodeCrawlJob(raw)
			if err != nil {
				return false, fmt.Errorf("キー %s: %w", batch[i], err)
			}
			jobs = append(jobs, job)
			if size > 0 && len(jobs) >= size {
				return true, nil
			}
		}
		batch = batch[:0]
		return false, nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) < scanBatchSize {
			continue
		}
		done, err := flush()
		if err != nil {
			return nil, err
		}
		if done {
			return jobs, nil
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("クロールジョブのSCANに失敗しました: %w", err)
	}

	if _, err := flush(); err != nil {
		return nil, err
	}
	return jobs, nil
}

func decodeCrawlJob(raw string) (model.CrawlJob, error) {
	var record CrawlJobRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return model.CrawlJob{}, fmt.Errorf("クロールジョブのJSON解析に失敗しました: %w", err)
	}
	return record.ToDomain()
}

func statusKeyPrefix(status model.CrawlJobStatus) (string, error) {
	if _, err := model.ParseCrawlJobStatus(string(status)); err != nil {
		return "", err
	}
	return strings.ToLower(string(status)) + "_job:", nil
}

func jobKey(job model.CrawlJob) (string, error) {
	prefix, err := statusKeyPrefix(job.Status)
	if err != nil {
		return "", err
	}
	return prefix + job.URL.String(), nil
}
