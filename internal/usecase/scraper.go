package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/cjwinchester/co-redistricting-applicants/internal/config"
	"github.com/cjwinchester/co-redistricting-applicants/internal/constants"
	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"github.com/cjwinchester/co-redistricting-applicants/internal/infra"
	"github.com/cjwinchester/co-redistricting-applicants/internal/logger"
)

// ScraperArgsは、スクレイパーユースケースを構築するための引数を保持します。
//
// フィールド:
//
//	Cfg      : 設定情報
//	Loader   : 保存済みHTMLのローダー
//	Parser   : 詳細ページのパーサー
//	Exporter : データセットの出力先
//	Report   : 未分類の性別回答の一覧を書き出す先(nilなら出力しない)
//	Logger   : ロガー
type ScraperArgs struct {
	Cfg      *config.Config
	Loader   *infra.HTMLFileLoader
	Parser   infra.ApplicantParser
	Exporter infra.FileExporter
	Report   io.Writer
	Logger   logger.AppLogger
}

// ScrapeResultはスクレイピング処理の結果です。
type ScrapeResult struct {
	Written int
	Failed  int
	// 分類表に無かった性別の回答と件数
	UnmappedGenders map[string]int
}

// saveApplicantDatasetUseCaseは、保存済みHTMLから応募者の情報を抽出して出力するユースケースです。
type saveApplicantDatasetUseCase struct {
	cfg      *config.Config
	loader   *infra.HTMLFileLoader
	parser   infra.ApplicantParser
	exporter infra.FileExporter
	report   io.Writer
	logger   logger.AppLogger
}

func NewSaveApplicantDatasetUseCase(args ScraperArgs) *saveApplicantDatasetUseCase {
	return &saveApplicantDatasetUseCase{
		cfg:      args.Cfg,
		loader:   args.Loader,
		parser:   args.Parser,
		exporter: args.Exporter,
		report:   args.Report,
		logger:   args.Logger,
	}
}

// SaveApplicantDatasetは、委員会種別ごとのディレクトリからHTMLファイルを読み込み、
// 応募者の情報を抽出してエクスポーターに書き込むメインの処理です。
//
// args:
//
//	ctx : コンテキスト
//
// return:
//
//	ScrapeResult : 書き込んだ件数と未分類の性別回答
//	error        : 処理中に発生したエラー
func (u *saveApplicantDatasetUseCase) SaveApplicantDataset(ctx context.Context) (ScrapeResult, error) {
	result := ScrapeResult{UnmappedGenders: map[string]int{}}

	times, err := infra.LoadTimesApplied(u.cfg.Scraper.TimesAppliedFile)
	if err != nil {
		u.abortExporter()
		return result, fmt.Errorf("応募日時ファイルの読み込みに失敗しました: %w", err)
	}
	u.logger.Info("応募日時を読み込みました", "count", times.Len())

	for _, raw := range u.cfg.Site.CommissionTypes {
		commissionType, err := model.ParseCommissionType(raw)
		if err != nil {
			u.abortExporter()
			return result, err
		}

		if err := u.scrapeCommission(ctx, commissionType, times, &result); err != nil {
			u.abortExporter()
			return result, err
		}
	}

	if err := u.exporter.Close(); err != nil {
		u.logger.Error("exporterのクローズに失敗しました", "error", err)
		return result, fmt.Errorf("exporterのクローズに失敗しました: %w", err)
	}

	if len(result.UnmappedGenders) > 0 && u.report != nil {
		infra.RenderUnmappedGenders(u.report, result.UnmappedGenders)
	}

	u.logger.Info("スクレイピング処理が完了しました。", "total_count", result.Written, "failed", result.Failed)
	return result, nil
}

// abortExporterは書きかけの出力を破棄し、前回のデータセットを残します。
func (u *saveApplicantDatasetUseCase) abortExporter() {
	if err := u.exporter.Abort(); err != nil {
		u.logger.Warn("書きかけの出力の破棄に失敗しました", "error", err)
	}
}

func (u *saveApplicantDatasetUseCase) scrapeCommission(ctx context.Context, commissionType model.CommissionType, times infra.TimesApplied, result *ScrapeResult) error {
	paths, err := u.loader.ListHTMLFilePaths(commissionType)
	if err != nil {
		return fmt.Errorf("HTMLファイルの一覧取得に失敗しました: %w", err)
	}
	u.logger.Info("HTMLファイルを処理します", "commission_type", commissionType, "count", len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		applicant, unmapped, err := u.processFile(commissionType, path, times)
		if err != nil {
			u.logger.Error("応募者情報の処理に失敗しました", "path", path, "error", err)
			result.Failed++
			continue
		}
		if unmapped != "" {
			// 分類表に追加すべき回答
			u.logger.Warn("分類表に無い性別の回答です", "path", path, "gender", unmapped)
			result.UnmappedGenders[unmapped]++
		}

		if err := u.exporter.Write(applicant); err != nil {
			return fmt.Errorf("応募者情報の書き込みに失敗しました: %w", err)
		}
		result.Written++
		if result.Written%constants.LogBatchCount == 0 {
			u.logger.Info("応募者情報を書き込みました。", "count", result.Written)
		}
	}

	return nil
}

// processFileは、単一のHTMLファイルから応募者情報を組み立てます。
// 性別の回答が分類表に無い場合は、その回答を2つ目の戻り値で返します。
func (u *saveApplicantDatasetUseCase) processFile(commissionType model.CommissionType, path string, times infra.TimesApplied) (model.Applicant, string, error) {
	content, err := u.loader.LoadHTMLFile(path)
	if err != nil {
		return model.Applicant{}, "", err
	}

	args, err := u.parser.ParseApplicant(content)
	if err != nil {
		return model.Applicant{}, "", err
	}

	applicantID := infra.ApplicantIDFromPath(path)
	args.CommissionType = commissionType
	args.ApplicantID = applicantID
	args.ApplicationURL = u.cfg.Site.ApplicationURL(commissionType.String(), applicantID)
	args.LinkToHTML = fmt.Sprintf(u.cfg.Scraper.HTMLLinkTemplate, u.loader.RelativePath(commissionType, applicantID))

	args.ApplicationDatetime = model.NewNullText()
	if applied, ok := times.Lookup(commissionType, applicantID); ok && applied != "" {
		args.ApplicationDatetime = model.NewText(applied)
	}

	var unmapped string
	if gender := args.Gender.Value(); args.Gender.Valid() && gender != "" {
		category, ok := u.parser.ParseGenderCategory(gender)
		if ok {
			args.GenderCategory = category
		} else {
			unmapped = gender
		}
	}

	return model.NewApplicant(args), unmapped, nil
}
