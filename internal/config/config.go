package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// Configはsettings/applicants.yamlの全体を表す構造体です。
type Config struct {
	Site       SiteConfig       `yaml:"site" validate:"required"`
	Downloader DownloaderConfig `yaml:"downloader" validate:"required"`
	Scraper    ScraperConfig    `yaml:"scraper" validate:"required"`
}

// SiteConfigは応募者一覧ページの場所とページネーションの情報を定義します。
type SiteConfig struct {
	// 詳細リンクの解決にも使うベースURL
	BaseURL string `yaml:"base_url" validate:"required,url"`
	// 例: "/%s_applicants/"
	ListingPathFormat string `yaml:"listing_path_format" validate:"required,contains=%s"`
	// ページ番号のクエリパラメータ名
	PageParam string `yaml:"page_param" validate:"required"`
	// 最終ページへのリンク文言の先頭
	LastPageLinkText string   `yaml:"last_page_link_text" validate:"required"`
	CommissionTypes  []string `yaml:"commission_types" validate:"required,min=1,dive,oneof=congressional legislative"`
}

// ListingURLは委員会種別ごとの一覧ページURLを返します。
func (s SiteConfig) ListingURL(commissionType string) string {
	return strings.TrimSuffix(s.BaseURL, "/") + fmt.Sprintf(s.ListingPathFormat, commissionType)
}

// ApplicationURLは応募者の詳細ページURLを返します。
func (s SiteConfig) ApplicationURL(commissionType, applicantID string) string {
	return s.ListingURL(commissionType) + applicantID
}

// バリデーターのインスタンス
var validate = validator.New()

// YAMLファイルからConfigを読み込む
func LoadConfig(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("設定ファイルを読み込めませんでした: %w", err)
	}

	return ParseConfig(f)
}

// ParseConfigはYAMLのバイト列をConfigに変換し、検証します。
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("YAMLの解析に失敗しました: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("設定のバリデーションに失敗しました: %w", err)
	}

	// カスタムバリデーション
	if cfg.Downloader.SleepMinMillis > cfg.Downloader.SleepMaxMillis {
		return Config{}, fmt.Errorf("sleep_min_millisはsleep_max_millis以下である必要があります")
	}
	if _, err := url.Parse(cfg.Site.BaseURL); err != nil {
		return Config{}, fmt.Errorf("base_urlのパースに失敗しました: %w", err)
	}

	return cfg, nil
}
