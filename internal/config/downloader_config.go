package config

import "time"

type FetcherType string

const (
	// resty による素の HTTP GET
	HTTPFetcher FetcherType = "http"
	// playwright の Chromium 経由
	BrowserFetcher FetcherType = "browser"
)

// DownloaderConfigは一覧のページングと詳細ページ保存の動作設定です。
type DownloaderConfig struct {
	// <html_dir>/<type>/<id>.html に保存する
	HTMLDir string `yaml:"html_dir" validate:"required"`
	// 応募日時の中間ファイル
	TimesAppliedFile string `yaml:"times_applied_file" validate:"required"`
	// リクエスト間の最小待機時間
	SleepMinMillis int `yaml:"sleep_min_millis" validate:"min=0,max=60000"`
	// リクエスト間の最大待機時間
	SleepMaxMillis int `yaml:"sleep_max_millis" validate:"min=0,max=60000"`
	// 1リクエストのタイムアウト
	TimeoutSeconds int `yaml:"timeout_seconds" validate:"min=1,max=300"`
	// 取得方法
	Fetcher        FetcherType       `yaml:"fetcher" validate:"required,oneof=http browser"`
	EnableHeadless bool              `yaml:"enable_headless"`
	UserAgent      string            `yaml:"user_agent" validate:"required,min=1"`
	Headers        map[string]string `yaml:"headers"`
}

func (d DownloaderConfig) SleepMin() time.Duration {
	return time.Duration(d.SleepMinMillis) * time.Millisecond
}

func (d DownloaderConfig) SleepMax() time.Duration {
	return time.Duration(d.SleepMaxMillis) * time.Millisecond
}

func (d DownloaderConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}
