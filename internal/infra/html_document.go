package infra

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// HTMLDocumentは1ページ分のHTMLに対する抽出操作をまとめたインターフェースです。
type HTMLDocument interface {
	Find(selector string) *goquery.Selection
	FindHeadline(tag string, pattern *regexp.Regexp) (*goquery.Selection, bool)
	HeadlineValue(tag string, pattern *regexp.Regexp) (string, bool)
	HeadlineAdjacentText(tag string, pattern *regexp.Regexp) (string, bool)
}

type htmlDocument struct {
	doc *goquery.Document
}

func NewHTMLDocument(content string) (HTMLDocument, error) {
	document, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	return &htmlDocument{doc: document}, nil
}

func (h *htmlDocument) Find(selector string) *goquery.Selection {
	return h.doc.Find(selector)
}

// FindHeadline は tag 要素のうち、テキスト(前後の空白を除く)が pattern にマッチする
// 最初の要素を返します。
//
// 使用例:
//
//   - FindHeadline("h5", regexp.MustCompile(`(?i)full name`))
//     入力: <h5>Full Name</h5><p>Jane Doe</p>
//     出力: <h5>Full Name</h5>
func (h *htmlDocument) FindHeadline(tag string, pattern *regexp.Regexp) (*goquery.Selection, bool) {
	headline := h.doc.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return pattern.MatchString(strings.TrimSpace(s.Text()))
	}).First()

	return headline, headline.Length() > 0
}

// HeadlineValue は見出しの次の兄弟要素のテキストを返します。
// 見出しと値の間の空白テキストノードは読み飛ばします。
//
// 使用例:
//
//   - HeadlineValue("h5", regexp.MustCompile(`(?i)occupation`))
//     入力: <h5>Occupation</h5>\n<p> Librarian </p>
//     出力: "Librarian", true
func (h *htmlDocument) HeadlineValue(tag string, pattern *regexp.Regexp) (string, bool) {
	headline, ok := h.FindHeadline(tag, pattern)
	if !ok {
		return "", false
	}

	next := headline.Next()
	if next.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(next.Text()), true
}

// HeadlineAdjacentText は見出しの直後のノード(テキストノードを含む)のテキストを返します。
//
// 使用例:
//
//   - HeadlineAdjacentText("h5", regexp.MustCompile(`(?i)other names`))
//     入力: <h5>Other Names</h5> Janie Doe <p>...</p>
//     出力: "Janie Doe", true
func (h *htmlDocument) HeadlineAdjacentText(tag string, pattern *regexp.Regexp) (string, bool) {
	headline, ok := h.FindHeadline(tag, pattern)
	if !ok {
		return "", false
	}

	node := headline.Nodes[0].NextSibling
	if node == nil {
		return "", false
	}

	switch node.Type {
	case html.TextNode:
		return strings.TrimSpace(node.Data), true
	case html.ElementNode:
		return strings.TrimSpace(goquery.NewDocumentFromNode(node).Text()), true
	default:
		return "", false
	}
}
