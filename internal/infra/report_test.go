package infra

import (
	"bytes"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderUnmappedGenders(t *testing.T) {
	var buf bytes.Buffer
	RenderUnmappedGenders(&buf, map[string]int{"Agender": 2, "Bigender": 1})

	out := buf.String()
	assert.Contains(t, out, "Agender")
	assert.Contains(t, out, "Bigender")
	assert.Less(t, strings.Index(out, "Agender"), strings.Index(out, "Bigender"))
}

func TestRenderCrawlJobs(t *testing.T) {
	link, err := url.Parse("https://redistricting.colorado.gov/legislative_applicants/8")
	require.NoError(t, err)

	jobs := []model.CrawlJob{
		model.NewPendingCrawlJob(model.Legislative, "8", *link).WithStatus(model.CrawlJobStatusFailed, "status 500"),
	}

	var buf bytes.Buffer
	RenderCrawlJobs(&buf, jobs)

	out := buf.String()
	assert.Contains(t, out, "legislative")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "status 500")
	assert.Contains(t, out, link.String())
}

func TestWriteUpdatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "updated")
	at := time.Date(2021, 3, 4, 5, 6, 7, 890000000, time.FixedZone("MST", -7*60*60))

	require.NoError(t, WriteUpdatedFile(path, at))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2021-03-04T12:06:07.890000Z", string(raw))
}
