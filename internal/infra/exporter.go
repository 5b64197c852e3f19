package infra

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
)

// FileExporterは応募者を1行ずつ出力先に書き込みます。
// Close で書き込んだ内容を確定し、Abort で破棄して前回の出力を残します。
type FileExporter interface {
	Write(applicant model.Applicant) error
	Close() error
	Abort() error
}

// NewFileExporterは拡張子に応じたエクスポーターを生成します。
//
//	.csv           : CSV
//	.xlsx          : Excel
//	.db / .sqlite  : SQLite
func NewFileExporter(filePath string, headers []string) (FileExporter, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		return NewCSVExporter(filePath, headers)
	case ".xlsx":
		return NewXLSXExporter(filePath, headers)
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteExporter(filePath, headers)
	default:
		return nil, fmt.Errorf("未対応の出力形式です: %s", filePath)
	}
}

type multiExporter struct {
	exporters []FileExporter
}

// NewMultiExporterは全ての出力先に同じ行を書き込むエクスポーターを返します。
func NewMultiExporter(exporters ...FileExporter) FileExporter {
	return &multiExporter{exporters: exporters}
}

func (m *multiExporter) Write(applicant model.Applicant) error {
	for _, e := range m.exporters {
		if err := e.Write(applicant); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiExporter) Close() error {
	var errs []error
	for _, e := range m.exporters {
		if err := e.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *multiExporter) Abort() error {
	var errs []error
	for _, e := range m.exporters {
		if err := e.Abort(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ApplicantRowはApplicantを出力列の順に並べた文字列に変換します。
// nullの項目は空文字、latinx は True / False です。
func ApplicantRow(a model.Applicant) []string {
	return []string{
		string(a.CommissionType()),
		a.ApplicantID(),
		a.ApplicationDatetime().Format(),
		a.FullName().Format(),
		a.OtherNames().Format(),
		a.PartyAffiliation().Format(),
		a.Gender().Format(),
		string(a.GenderCategory()),
		a.Race().Format(),
		formatLatinx(a.Latinx()),
		a.Zip().Format(),
		a.Occupation().Format(),
		a.Education().Format(),
		a.Statement().Format(),
		a.ProfessionalBackground().Format(),
		a.OrgList().Format(),
		a.AnalyticSkills().Format(),
		a.ConsensusStatement().Format(),
		a.PastPoliticalActivity().Format(),
		a.ApplicationURL(),
		a.LinkToHTML(),
	}
}

func formatLatinx(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
