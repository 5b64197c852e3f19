package infra

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/playwright-community/playwright-go"
)

type BrowserClientArgs struct {
	UserAgent      string
	Headers        map[string]string
	Timeout        time.Duration
	EnableHeadless bool
}

type browserClient struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	timeout time.Duration
}

// NewBrowserClientは、Playwright(Chromium)を用いたPageFetcherを生成します。
//
// args:
//
//	args: User-Agent、追加ヘッダー、タイムアウト、ヘッドレス指定
//
// return:
//
//	PageFetcher: 生成されたクライアント
//	error: 失敗時のエラー
func NewBrowserClient(args BrowserClientArgs) (PageFetcher, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("playwrightの起動に失敗しました: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(args.EnableHeadless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("ブラウザの起動に失敗しました: %w", err)
	}

	bctx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		ExtraHttpHeaders: args.Headers,
		UserAgent:        playwright.String(args.UserAgent),
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("ブラウザコンテキストの作成に失敗しました: %w", err)
	}

	if err := setupResourceBlocking(bctx); err != nil {
		bctx.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("リソースブロックの設定に失敗しました: %w", err)
	}

	page, err := bctx.NewPage()
	if err != nil {
		bctx.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("ページの作成に失敗しました: %w", err)
	}

	return &browserClient{
		pw:      pw,
		browser: browser,
		context: bctx,
		page:    page,
		timeout: args.Timeout,
	}, nil
}

// 静的HTMLだけが必要なので画像やフォントは取得しない
func setupResourceBlocking(bctx playwright.BrowserContext) error {
	return bctx.Route("**/*.{png,jpg,jpeg,gif,svg,woff,woff2,ttf,eot,otf}", func(route playwright.Route) {
		route.Abort()
	})
}

// Fetchは、URLに遷移してDOM読み込み後のHTMLを返します。
func (b *browserClient) Fetch(ctx context.Context, rawURL string, query url.Values) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target, err := withQuery(rawURL, query)
	if err != nil {
		return "", fmt.Errorf("URL %s の組み立てに失敗しました: %w", rawURL, err)
	}

	resp, err := b.page.Goto(target, playwright.PageGotoOptions{
		Timeout:   playwright.Float(float64(b.timeout.Milliseconds())),
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		return "", fmt.Errorf("%s へのナビゲーションに失敗しました: %w", target, err)
	}
	if resp != nil && !resp.Ok() {
		return "", fmt.Errorf("%s がステータス %d を返しました", target, resp.Status())
	}

	html, err := b.page.Content()
	if err != nil {
		return "", fmt.Errorf("ページコンテンツの取得に失敗しました: %w", err)
	}
	return html, nil
}

// Closeは、ブラウザとPlaywrightインスタンスを閉じます。
func (b *browserClient) Close() error {
	if err := b.context.Close(); err != nil {
		return fmt.Errorf("ブラウザコンテキストのクローズに失敗しました: %w", err)
	}

	if err := b.browser.Close(); err != nil {
		return fmt.Errorf("ブラウザを閉じれませんでした: %w", err)
	}

	if err := b.pw.Stop(); err != nil {
		return fmt.Errorf("playwrightの停止に失敗しました: %w", err)
	}
	return nil
}
