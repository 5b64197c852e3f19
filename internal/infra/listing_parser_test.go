package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPageHTML = `<html><body>
<table class="table">
  <tr><th>Name</th><th>County</th><th>Added</th></tr>
  <tr>
    <td><a href="/congressional_applicants/101">Jane Doe</a></td>
    <td>Denver</td>
    <td>2021-02-01 16:20:13 UTC</td>
  </tr>
  <tr>
    <td><a href="https://redistricting.colorado.gov/congressional_applicants/102">John Roe</a></td>
    <td>Mesa</td>
    <td>not a date</td>
  </tr>
</table>
<table><tr><td><a href="/elsewhere/1">other</a></td></tr></table>
<nav>
  <a href="/congressional_applicants/?page=2">Next &rsaquo;</a>
  <a href="/congressional_applicants/?page=14">Last &raquo;</a>
</nav>
</body></html>`

func newTestListingParser(t *testing.T) ListingParser {
	t.Helper()
	parser, err := NewListingParser(ListingParserArgs{
		BaseURL:          "https://redistricting.colorado.gov",
		PageParam:        "page",
		LastPageLinkText: "Last",
	})
	require.NoError(t, err)
	return parser
}

func TestParseListing(t *testing.T) {
	page, err := newTestListingParser(t).ParseListing(listingPageHTML)
	require.NoError(t, err)

	require.Len(t, page.Entries, 2)
	assert.Equal(t, 14, page.LastPage)
	assert.Equal(t, 1, page.UnparsedAdded)

	first := page.Entries[0]
	link := first.Link()
	assert.Equal(t, "https://redistricting.colorado.gov/congressional_applicants/101", link.String())
	assert.Equal(t, "101", first.ApplicantID())
	assert.Equal(t, "2021-02-01T16:20:13Z", first.AppliedAtISO())

	second := page.Entries[1]
	assert.Equal(t, "102", second.ApplicantID())
	assert.Empty(t, second.AppliedAtISO())
}

func TestParseListingWithoutLastLink(t *testing.T) {
	content := `<table>
<tr><th>Name</th><th>Added</th></tr>
<tr><td><a href="/legislative_applicants/7">A</a></td><td>2021-03-10 09:00:00 UTC</td></tr>
</table>`

	page, err := newTestListingParser(t).ParseListing(content)
	require.NoError(t, err)

	assert.Equal(t, 1, page.LastPage)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "7", page.Entries[0].ApplicantID())
}

func TestParseListingErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"表が無い", `<html><body><p>no applicants</p></body></html>`},
		{"詳細リンクが無い", `<table><tr><th>Name</th></tr><tr><td>Jane</td><td>2021-02-01 16:20:13 UTC</td></tr></table>`},
		{"最終ページ番号が数値でない", `<table><tr><th>Name</th></tr></table><a href="/x/?page=abc">Last</a>`},
	}

	parser := newTestListingParser(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseListing(tt.content)
			assert.Error(t, err)
		})
	}
}
