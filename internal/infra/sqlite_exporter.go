package infra

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	_ "modernc.org/sqlite"
)

const sqliteTableName = "applicants"

// SQLiteExporterは applicants テーブルを作り直して1行ずつ書き込みます。
// 全ての列は TEXT で、(commission_type, applicant_id) が主キーです。
// 作り直しから書き込みまでが1つのトランザクションなので、Abort すると前回のテーブルが残ります。
type SQLiteExporter struct {
	path    string
	created bool
	db      *sql.DB
	tx      *sql.Tx
	insert  *sql.Stmt
}

func NewSQLiteExporter(filePath string, headers []string) (*SQLiteExporter, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	_, statErr := os.Stat(filePath)
	s := &SQLiteExporter{path: filePath, created: errors.Is(statErr, os.ErrNotExist)}

	db, err := sql.Open("sqlite", filePath)
	if err != nil {
		return nil, fmt.Errorf("SQLiteを開けませんでした: %w", err)
	}
	s.db = db

	tx, err := db.Begin()
	if err != nil {
		s.discard()
		return nil, fmt.Errorf("トランザクションの開始に失敗しました: %w", err)
	}
	s.tx = tx

	columns := make([]string, len(headers))
	for i, h := range headers {
		columns[i] = fmt.Sprintf("%q TEXT", h)
	}
	ddl := []string{
		fmt.Sprintf("DROP TABLE IF EXISTS %s", sqliteTableName),
		fmt.Sprintf("CREATE TABLE %s (%s, PRIMARY KEY (commission_type, applicant_id))", sqliteTableName, strings.Join(columns, ", ")),
	}
	for _, stmt := range ddl {
		if _, err := tx.Exec(stmt); err != nil {
			s.discard()
			return nil, fmt.Errorf("テーブルの作成に失敗しました: %w", err)
		}
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(headers)), ", ")
	insert, err := tx.Prepare(fmt.Sprintf("INSERT OR REPLACE INTO %s VALUES (%s)", sqliteTableName, placeholders))
	if err != nil {
		s.discard()
		return nil, fmt.Errorf("INSERT文の準備に失敗しました: %w", err)
	}
	s.insert = insert

	return s, nil
}

func (s *SQLiteExporter) Write(applicant model.Applicant) error {
	if _, err := s.insert.Exec(sqliteArgs(applicant)...); err != nil {
		return fmt.Errorf("応募者 %s の書き込みに失敗しました: %w", applicant.ApplicantID(), err)
	}
	return nil
}

func (s *SQLiteExporter) Close() error {
	s.insert.Close()
	if err := s.tx.Commit(); err != nil {
		s.db.Close()
		return fmt.Errorf("コミットに失敗しました: %w", err)
	}
	return s.db.Close()
}

// Abortはトランザクションをロールバックします。
// この実行で新しく作ったファイルは削除します。
func (s *SQLiteExporter) Abort() error {
	return s.discard()
}

func (s *SQLiteExporter) discard() error {
	var errs []error
	if s.insert != nil {
		s.insert.Close()
	}
	if s.tx != nil {
		if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			errs = append(errs, fmt.Errorf("ロールバックに失敗しました: %w", err))
		}
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, err)
	}
	if s.created {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// sqliteArgsは ApplicantRow と同じ列順で値を並べます。
// 見出しが見つからなかった項目と性別の分類なしは NULL になります。
func sqliteArgs(a model.Applicant) []any {
	return []any{
		string(a.CommissionType()),
		a.ApplicantID(),
		nullText(a.ApplicationDatetime()),
		nullText(a.FullName()),
		nullText(a.OtherNames()),
		nullText(a.PartyAffiliation()),
		nullText(a.Gender()),
		sql.NullString{String: string(a.GenderCategory()), Valid: a.GenderCategory() != model.GenderNone},
		nullText(a.Race()),
		formatLatinx(a.Latinx()),
		nullText(a.Zip()),
		nullText(a.Occupation()),
		nullText(a.Education()),
		nullText(a.Statement()),
		nullText(a.ProfessionalBackground()),
		nullText(a.OrgList()),
		nullText(a.AnalyticSkills()),
		nullText(a.ConsensusStatement()),
		nullText(a.PastPoliticalActivity()),
		a.ApplicationURL(),
		a.LinkToHTML(),
	}
}

func nullText(t model.Text) sql.NullString {
	return sql.NullString{String: t.Value(), Valid: t.Valid()}
}
