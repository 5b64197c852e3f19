package infra

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
)

const htmlExt = ".html"

// HTMLFileLoaderは <dir>/<委員会種別>/<応募者ID>.html の形で保存したHTMLを扱います。
type HTMLFileLoader struct {
	dir string
}

func NewHTMLFileLoader(dir string) *HTMLFileLoader {
	return &HTMLFileLoader{dir: dir}
}

// Pathは応募者のHTMLファイルのパスを返します。
func (f *HTMLFileLoader) Path(commissionType model.CommissionType, applicantID string) string {
	return filepath.Join(f.dir, string(commissionType), applicantID+htmlExt)
}

// RelativePathは dir からの相対パスを "/" 区切りで返します。link_to_html の生成に使います。
func (f *HTMLFileLoader) RelativePath(commissionType model.CommissionType, applicantID string) string {
	return string(commissionType) + "/" + applicantID + htmlExt
}

// Existsはファイルが保存済みかどうかを返します。
func (f *HTMLFileLoader) Exists(commissionType model.CommissionType, applicantID string) (bool, error) {
	info, err := os.Stat(f.Path(commissionType, applicantID))
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("HTMLファイルの確認に失敗しました: %w", err)
}

// SaveHTMLはHTMLを保存し、書き込んだパスを返します。
func (f *HTMLFileLoader) SaveHTML(commissionType model.CommissionType, applicantID, content string) (string, error) {
	path := f.Path(commissionType, applicantID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("ディレクトリの作成に失敗しました: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("HTMLファイルの書き込みに失敗しました: %w", err)
	}
	return path, nil
}

func (f *HTMLFileLoader) LoadHTMLFile(path string) (string, error) {
	html, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML file: %w", err)
	}
	return string(html), nil
}

// ListHTMLFilePathsは委員会種別ディレクトリ直下の.htmlファイルを名前順で返します。
// ディレクトリが存在しない場合は空のスライスを返します。
func (f *HTMLFileLoader) ListHTMLFilePaths(commissionType model.CommissionType) ([]string, error) {
	dir := filepath.Join(f.dir, string(commissionType))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("ディレクトリの走査に失敗しました: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != htmlExt {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	return paths, nil
}

// ApplicantIDFromPathはファイル名から拡張子を除いたものを応募者IDとして返します。
func ApplicantIDFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), htmlExt)
}
