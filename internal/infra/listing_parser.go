package infra

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
)

// ListingPageは一覧ページ1枚分の解析結果です。
type ListingPage struct {
	Entries []model.ListingEntry
	// 最終ページ番号。最終ページへのリンクがなければ1
	LastPage int
	// 登録日時が解釈できず、日時なしで取り込んだ行の数
	UnparsedAdded int
}

type ListingParser interface {
	ParseListing(content string) (ListingPage, error)
}

type ListingParserArgs struct {
	BaseURL          string
	PageParam        string
	LastPageLinkText string
}

type listingParser struct {
	base             *url.URL
	pageParam        string
	lastPageLinkText string
}

func NewListingParser(args ListingParserArgs) (ListingParser, error) {
	base, err := url.Parse(args.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("ベースURL %s のパースに失敗しました: %w", args.BaseURL, err)
	}
	return &listingParser{
		base:             base,
		pageParam:        args.PageParam,
		lastPageLinkText: args.LastPageLinkText,
	}, nil
}

// ParseListingは一覧ページの最初の表から詳細リンクと登録日時を取り出し、
// 最終ページへのリンクからページ数を求めます。
func (p *listingParser) ParseListing(content string) (ListingPage, error) {
	doc, err := NewHTMLDocument(content)
	if err != nil {
		return ListingPage{}, fmt.Errorf("一覧ページのHTML解析に失敗しました: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return ListingPage{}, fmt.Errorf("一覧ページに表が見つかりませんでした")
	}

	page := ListingPage{LastPage: 1}
	var rowErr error

	// 先頭行はヘッダー
	table.Find("tr").Slice(1, goquery.ToEnd).EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return true
		}

		href, ok := cells.First().Find("a").Attr("href")
		if !ok {
			rowErr = fmt.Errorf("%d行目に詳細リンクがありません", i+1)
			return false
		}

		link, err := p.resolveURL(href)
		if err != nil {
			rowErr = err
			return false
		}

		entry, err := model.NewListingEntry(*link, cells.Last().Text())
		if err != nil {
			page.UnparsedAdded++
		}
		page.Entries = append(page.Entries, entry)
		return true
	})
	if rowErr != nil {
		return ListingPage{}, rowErr
	}

	lastPage, err := p.parseLastPage(doc)
	if err != nil {
		return ListingPage{}, err
	}
	if lastPage > 0 {
		page.LastPage = lastPage
	}

	return page, nil
}

// parseLastPageは "Last »" リンクの page クエリを返します。リンクがなければ0です。
func (p *listingParser) parseLastPage(doc HTMLDocument) (int, error) {
	var href string
	doc.Find("a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.HasPrefix(strings.TrimSpace(s.Text()), p.lastPageLinkText) {
			return true
		}
		href, _ = s.Attr("href")
		return false
	})
	if href == "" {
		return 0, nil
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return 0, fmt.Errorf("最終ページリンク %s のパースに失敗しました: %w", href, err)
	}

	raw := parsed.Query().Get(p.pageParam)
	if raw == "" {
		return 0, fmt.Errorf("最終ページリンク %s に %s パラメータがありません", href, p.pageParam)
	}

	lastPage, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("最終ページ番号の整数変換に失敗しました: %w", err)
	}
	return lastPage, nil
}

// resolveURLは、リンクが相対パスであればベースURLに対して解決します。
func (p *listingParser) resolveURL(href string) (*url.URL, error) {
	parsed, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return nil, fmt.Errorf("詳細リンク %s のパースに失敗しました: %w", href, err)
	}
	if parsed.IsAbs() {
		return parsed, nil
	}
	return p.base.ResolveReference(parsed), nil
}
