package infra

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
)

// csvFileはヘッダー行を書いた状態で作られるCSVファイルです。
// データセットと応募日時の中間ファイルの両方で使います。
// 書き込み中は同じディレクトリの一時ファイルに書き、close で本来のパスに置き換えます。
type csvFile struct {
	path   string
	file   *os.File
	writer *csv.Writer
}

func createCSVFile(filePath string, headers []string) (*csvFile, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	file, err := os.CreateTemp(dir, filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("CSVファイル %s の作成に失敗しました: %w", filePath, err)
	}

	c := &csvFile{path: filePath, file: file, writer: csv.NewWriter(file)}
	if err := c.writer.Write(headers); err != nil {
		c.abort()
		return nil, fmt.Errorf("CSVヘッダーの書き込みに失敗しました: %w", err)
	}
	return c, nil
}

func (c *csvFile) write(row []string) error {
	return c.writer.Write(row)
}

// closeはバッファを書き出してから一時ファイルを本来のパスに移します。
func (c *csvFile) close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		c.abort()
		return fmt.Errorf("CSVの書き込みに失敗しました: %w", err)
	}
	if err := c.file.Close(); err != nil {
		os.Remove(c.file.Name())
		return fmt.Errorf("CSVファイルのクローズに失敗しました: %w", err)
	}
	if err := os.Chmod(c.file.Name(), 0o644); err != nil {
		os.Remove(c.file.Name())
		return fmt.Errorf("CSVファイルの権限設定に失敗しました: %w", err)
	}
	if err := os.Rename(c.file.Name(), c.path); err != nil {
		os.Remove(c.file.Name())
		return fmt.Errorf("CSVファイル %s の置き換えに失敗しました: %w", c.path, err)
	}
	return nil
}

// abortは一時ファイルを捨てます。既存のファイルはそのまま残ります。
func (c *csvFile) abort() error {
	closeErr := c.file.Close()
	if err := os.Remove(c.file.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("一時ファイルの削除に失敗しました: %w", err)
	}
	if closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
		return closeErr
	}
	return nil
}

// CSVExporterはデータセットをCSVで書き出します。
type CSVExporter struct {
	out *csvFile
}

func NewCSVExporter(filePath string, headers []string) (*CSVExporter, error) {
	out, err := createCSVFile(filePath, headers)
	if err != nil {
		return nil, err
	}
	return &CSVExporter{out: out}, nil
}

func (c *CSVExporter) Write(applicant model.Applicant) error {
	return c.out.write(ApplicantRow(applicant))
}

func (c *CSVExporter) Close() error {
	return c.out.close()
}

func (c *CSVExporter) Abort() error {
	return c.out.abort()
}
