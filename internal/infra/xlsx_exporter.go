package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"github.com/xuri/excelize/v2"
)

const xlsxSheetName = "applicants"

// XLSXExporterは行をメモリ上のブックに積み、Closeで保存します。
type XLSXExporter struct {
	path string
	file *excelize.File
	row  int
}

func NewXLSXExporter(filePath string, headers []string) (*XLSXExporter, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("シート名の設定に失敗しました: %w", err)
	}

	e := &XLSXExporter{path: filePath, file: f}
	if err := e.writeRow(headers); err != nil {
		f.Close()
		return nil, fmt.Errorf("XLSXヘッダーの書き込みに失敗しました: %w", err)
	}
	return e, nil
}

func (e *XLSXExporter) Write(applicant model.Applicant) error {
	return e.writeRow(ApplicantRow(applicant))
}

func (e *XLSXExporter) writeRow(values []string) error {
	e.row++
	cell, err := excelize.CoordinatesToCellName(1, e.row)
	if err != nil {
		return err
	}

	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return e.file.SetSheetRow(xlsxSheetName, cell, &row)
}

func (e *XLSXExporter) Close() error {
	if err := e.file.SaveAs(e.path); err != nil {
		e.file.Close()
		return fmt.Errorf("XLSXファイルの保存に失敗しました: %w", err)
	}
	return e.file.Close()
}

// Abortは保存せずにブックを閉じます。
func (e *XLSXExporter) Abort() error {
	return e.file.Close()
}
