package model

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"
)

const (
	addedLayout   = "2006-01-02 15:04:05"
	appliedLayout = "2006-01-02T15:04:05Z"
)

// ListingEntryは一覧ページの表の1行(詳細ページへのリンクと登録日時)です。
type ListingEntry struct {
	link      url.URL
	addedRaw  string
	appliedAt time.Time
}

// NewListingEntryは詳細リンクと "2021-02-01 16:20:13 UTC" 形式の登録日時から
// ListingEntryを生成します。日時が解釈できない場合はエラーを返します。
func NewListingEntry(link url.URL, added string) (ListingEntry, error) {
	entry := ListingEntry{
		link:     link,
		addedRaw: added,
	}

	trimmed := strings.TrimSpace(strings.Replace(strings.TrimSpace(added), " UTC", "", 1))
	appliedAt, err := time.Parse(addedLayout, trimmed)
	if err != nil {
		return entry, fmt.Errorf("登録日時のパースに失敗しました: %q: %w", added, err)
	}
	entry.appliedAt = appliedAt.UTC()

	return entry, nil
}

func (e ListingEntry) Link() url.URL {
	return e.link
}

func (e ListingEntry) AddedRaw() string {
	return e.addedRaw
}

func (e ListingEntry) AppliedAt() time.Time {
	return e.appliedAt
}

// ApplicantIDは詳細リンクのパス末尾を応募者IDとして返します。
func (e ListingEntry) ApplicantID() string {
	return path.Base(strings.TrimSuffix(e.link.Path, "/"))
}

// AppliedAtISOは登録日時を ISO 8601 (末尾Z) で返します。未解釈の場合は空文字です。
func (e ListingEntry) AppliedAtISO() string {
	if e.appliedAt.IsZero() {
		return ""
	}
	return e.appliedAt.Format(appliedLayout)
}
