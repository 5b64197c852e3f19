package config

// ScraperConfigは保存済みHTMLからデータセットを作る処理の設定です。
type ScraperConfig struct {
	HTMLDir          string `yaml:"html_dir" validate:"required"`
	TimesAppliedFile string `yaml:"times_applied_file" validate:"required"`
	// 拡張子で出力形式を切り替える (.csv / .xlsx / .db)
	Outputs []string `yaml:"outputs" validate:"required,min=1,dive,required"`
	// link_to_html 列の書式
	HTMLLinkTemplate string `yaml:"html_link_template" validate:"required,contains=%s"`
	// run 完了時刻を書き込むファイル
	UpdatedFile string `yaml:"updated_file" validate:"required"`
}
