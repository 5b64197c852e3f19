package infra

import (
	"context"
	"net/url"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCrawlJobClient(t *testing.T) (repository.CrawlJobRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewCrawlJobClient(rdb), mr
}

func pendingJob(t *testing.T, id string) model.CrawlJob {
	t.Helper()
	link, err := url.Parse("https://redistricting.colorado.gov/congressional_applicants/" + id)
	require.NoError(t, err)
	return model.NewPendingCrawlJob(model.Congressional, id, *link)
}

func TestCrawlJobClientSaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo, mr := setupCrawlJobClient(t)

	job := pendingJob(t, "1")
	require.NoError(t, repo.Save(ctx, job))
	assert.True(t, mr.Exists("pending_job:https://redistricting.colorado.gov/congressional_applicants/1"))

	jobs, err := repo.FindListByStatus(ctx, 0, model.CrawlJobStatusPending)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)
	assert.Equal(t, "1", jobs[0].ApplicantID)
	assert.Equal(t, model.Congressional, jobs[0].CommissionType)
	assert.Equal(t, job.URL.String(), jobs[0].URL.String())

	require.NoError(t, repo.Delete(ctx, job))
	failed := job.WithStatus(model.CrawlJobStatusFailed, "status 500")
	require.NoError(t, repo.Save(ctx, failed))

	jobs, err = repo.FindListByStatus(ctx, 0, model.CrawlJobStatusPending)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	jobs, err = repo.FindListByStatus(ctx, 0, model.CrawlJobStatusFailed)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "status 500", jobs[0].LastError)
}

func TestCrawlJobClientFindListLimit(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupCrawlJobClient(t)

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, repo.Save(ctx, pendingJob(t, id).WithStatus(model.CrawlJobStatusSuccess, "")))
	}

	jobs, err := repo.FindListByStatus(ctx, 2, model.CrawlJobStatusSuccess)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	jobs, err = repo.FindListByStatus(ctx, 0, model.CrawlJobStatusSuccess)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
}

func TestCrawlJobClientUnsupportedStatus(t *testing.T) {
	repo, _ := setupCrawlJobClient(t)

	_, err := repo.FindListByStatus(context.Background(), 0, model.CrawlJobStatus("RUNNING"))
	assert.Error(t, err)
}
