package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const updatedLayout = "2006-01-02T15:04:05.000000Z"

// WriteUpdatedFileはデータセットを更新した時刻(UTC)をファイルに書き込みます。
func WriteUpdatedFile(path string, at time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}
	if err := os.WriteFile(path, []byte(at.UTC().Format(updatedLayout)), 0o644); err != nil {
		return fmt.Errorf("更新時刻ファイルの書き込みに失敗しました: %w", err)
	}
	return nil
}
