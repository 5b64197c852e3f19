package model

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseURL(t *testing.T, raw string) url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return *u
}

func TestNewListingEntry(t *testing.T) {
	link := mustParseURL(t, "https://redistricting.colorado.gov/congressional_applicants/1042")

	entry, err := NewListingEntry(link, " 2021-02-01 16:20:13 UTC\n")
	require.NoError(t, err)

	assert.Equal(t, "1042", entry.ApplicantID())
	assert.Equal(t, time.Date(2021, 2, 1, 16, 20, 13, 0, time.UTC), entry.AppliedAt())
	assert.Equal(t, "2021-02-01T16:20:13Z", entry.AppliedAtISO())
	assert.Equal(t, " 2021-02-01 16:20:13 UTC\n", entry.AddedRaw())
}

func TestNewListingEntryTrailingSlash(t *testing.T) {
	link := mustParseURL(t, "https://redistricting.colorado.gov/legislative_applicants/7/")

	entry, err := NewListingEntry(link, "2021-03-10 09:00:00 UTC")
	require.NoError(t, err)
	assert.Equal(t, "7", entry.ApplicantID())
}

func TestNewListingEntryUnparsedAdded(t *testing.T) {
	link := mustParseURL(t, "https://redistricting.colorado.gov/congressional_applicants/5")

	entry, err := NewListingEntry(link, "yesterday")
	assert.Error(t, err)
	assert.Equal(t, "5", entry.ApplicantID())
	assert.True(t, entry.AppliedAt().IsZero())
	assert.Empty(t, entry.AppliedAtISO())
}
