package infra

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
)

// TimesAppliedWriterは応募日時の中間ファイル(commission_type,id,time_applied)を書き出します。
type TimesAppliedWriter struct {
	out *csvFile
}

func NewTimesAppliedWriter(filePath string, headers []string) (*TimesAppliedWriter, error) {
	out, err := createCSVFile(filePath, headers)
	if err != nil {
		return nil, fmt.Errorf("応募日時ファイルを作成できませんでした: %w", err)
	}
	return &TimesAppliedWriter{out: out}, nil
}

// Writeは一覧の1行分を書き込みます。登録日時が解釈できなかった行は日時を空にします。
func (w *TimesAppliedWriter) Write(commissionType model.CommissionType, entry model.ListingEntry) error {
	return w.out.write([]string{
		string(commissionType),
		entry.ApplicantID(),
		entry.AppliedAtISO(),
	})
}

func (w *TimesAppliedWriter) Close() error {
	return w.out.close()
}

// Abortは書きかけの内容を捨て、前回の中間ファイルを残します。
func (w *TimesAppliedWriter) Abort() error {
	return w.out.abort()
}

// TimesAppliedは応募者ごとの応募日時の対応表です。
type TimesApplied struct {
	byKey map[string]string
	byID  map[string]string
}

// Lookupは委員会種別と応募者IDの組で応募日時を引きます。
// 組で見つからない場合は応募者IDだけで引き直します。
func (t TimesApplied) Lookup(commissionType model.CommissionType, applicantID string) (string, bool) {
	if v, ok := t.byKey[timesAppliedKey(commissionType, applicantID)]; ok {
		return v, true
	}
	v, ok := t.byID[applicantID]
	return v, ok
}

func (t TimesApplied) Len() int {
	return len(t.byKey)
}

// LoadTimesAppliedは中間ファイルを読み込みます。ファイルが無い場合は空の対応表を返します。
func LoadTimesApplied(filePath string) (TimesApplied, error) {
	table := TimesApplied{
		byKey: map[string]string{},
		byID:  map[string]string{},
	}

	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return table, nil
		}
		return table, fmt.Errorf("応募日時ファイルを開けませんでした: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return table, nil
		}
		return table, fmt.Errorf("応募日時ファイルのヘッダー読み込みに失敗しました: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range []string{"commission_type", "id", "time_applied"} {
		if _, ok := index[name]; !ok {
			return table, fmt.Errorf("応募日時ファイルに %s 列がありません", name)
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return table, fmt.Errorf("応募日時ファイルの読み込みに失敗しました: %w", err)
		}

		commissionType := model.CommissionType(record[index["commission_type"]])
		id := record[index["id"]]
		applied := record[index["time_applied"]]

		table.byKey[timesAppliedKey(commissionType, id)] = applied
		table.byID[id] = applied
	}

	return table, nil
}

func timesAppliedKey(commissionType model.CommissionType, applicantID string) string {
	return string(commissionType) + "/" + applicantID
}
