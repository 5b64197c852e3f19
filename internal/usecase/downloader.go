package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cjwinchester/co-redistricting-applicants/internal/config"
	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/repository"
	"github.com/cjwinchester/co-redistricting-applicants/internal/infra"
	"github.com/cjwinchester/co-redistricting-applicants/internal/logger"
)

// DownloaderArgsは、ダウンロードユースケースを構築するための引数を保持します。
//
// フィールド:
//
//	Cfg          : 設定情報
//	Fetcher      : 一覧・詳細ページの取得クライアント
//	Parser       : 一覧ページのパーサー
//	Loader       : 保存済みHTMLの置き場所
//	TimesApplied : 応募日時の中間ファイル
//	Repo         : クロールジョブの記録先
//	Throttle     : リクエスト間隔の制御
//	Logger       : ロガー
type DownloaderArgs struct {
	Cfg          *config.Config
	Fetcher      infra.PageFetcher
	Parser       infra.ListingParser
	Loader       *infra.HTMLFileLoader
	TimesApplied *infra.TimesAppliedWriter
	Repo         repository.CrawlJobRepository
	Throttle     *infra.Throttle
	Logger       logger.AppLogger
}

// DownloadResultはダウンロード処理の件数の内訳です。
type DownloadResult struct {
	Listed     int
	Downloaded int
	Skipped    int
	Failed     int
}

// downloadApplicantPagesUseCaseは、一覧ページをたどって未保存の詳細ページを保存するユースケースです。
type downloadApplicantPagesUseCase struct {
	cfg          *config.Config
	fetcher      infra.PageFetcher
	parser       infra.ListingParser
	loader       *infra.HTMLFileLoader
	timesApplied *infra.TimesAppliedWriter
	repo         repository.CrawlJobRepository
	throttle     *infra.Throttle
	logger       logger.AppLogger
}

func NewDownloadApplicantPagesUseCase(args DownloaderArgs) *downloadApplicantPagesUseCase {
	return &downloadApplicantPagesUseCase{
		cfg:          args.Cfg,
		fetcher:      args.Fetcher,
		parser:       args.Parser,
		loader:       args.Loader,
		timesApplied: args.TimesApplied,
		repo:         args.Repo,
		throttle:     args.Throttle,
		logger:       args.Logger,
	}
}

// DownloadApplicantPagesは、委員会種別ごとに一覧の全ページから詳細リンクを集め、
// 応募日時を中間ファイルに書き出し、まだ保存していない詳細ページを保存します。
// 一覧ページの取得に失敗した場合は中断し、詳細ページの失敗は記録して続行します。
func (u *downloadApplicantPagesUseCase) DownloadApplicantPages(ctx context.Context) (DownloadResult, error) {
	var result DownloadResult

	for _, raw := range u.cfg.Site.CommissionTypes {
		commissionType, err := model.ParseCommissionType(raw)
		if err != nil {
			u.abortTimesApplied()
			return result, err
		}

		if err := u.downloadCommission(ctx, commissionType, &result); err != nil {
			u.abortTimesApplied()
			return result, fmt.Errorf("%s の処理に失敗しました: %w", commissionType, err)
		}
	}

	if err := u.timesApplied.Close(); err != nil {
		return result, fmt.Errorf("応募日時ファイルのクローズに失敗しました: %w", err)
	}

	u.logger.Info("ダウンロード処理が完了しました。",
		"listed", result.Listed,
		"downloaded", result.Downloaded,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

// abortTimesAppliedは書きかけの応募日時ファイルを捨て、前回のファイルを残します。
func (u *downloadApplicantPagesUseCase) abortTimesApplied() {
	if err := u.timesApplied.Abort(); err != nil {
		u.logger.Warn("応募日時ファイルの破棄に失敗しました", "error", err)
	}
}

func (u *downloadApplicantPagesUseCase) downloadCommission(ctx context.Context, commissionType model.CommissionType, result *DownloadResult) error {
	log := u.logger.With("commission_type", commissionType)

	entries, err := u.collectListingEntries(ctx, commissionType)
	if err != nil {
		return err
	}
	log.Info("詳細リンクを収集しました", "count", len(entries))
	result.Listed += len(entries)

	for _, entry := range entries {
		applicantID := entry.ApplicantID()

		if entry.AppliedAtISO() == "" {
			log.Debug("登録日時なしで書き込みます", "applicant_id", applicantID, "added", entry.AddedRaw())
		}
		if err := u.timesApplied.Write(commissionType, entry); err != nil {
			return fmt.Errorf("応募日時の書き込みに失敗しました: %w", err)
		}

		exists, err := u.loader.Exists(commissionType, applicantID)
		if err != nil {
			return err
		}
		if exists {
			result.Skipped++
			continue
		}

		ok, err := u.downloadDetail(ctx, commissionType, entry)
		if err != nil {
			return err
		}
		if ok {
			result.Downloaded++
		} else {
			result.Failed++
		}
	}

	return nil
}

// collectListingEntriesは一覧の1ページ目から最終ページまでの行を集めます。
func (u *downloadApplicantPagesUseCase) collectListingEntries(ctx context.Context, commissionType model.CommissionType) ([]model.ListingEntry, error) {
	listingURL := u.cfg.Site.ListingURL(commissionType.String())

	first, err := u.fetchListing(ctx, listingURL, nil)
	if err != nil {
		return nil, err
	}
	entries := first.Entries

	u.logger.Info("一覧ページを取得しました", "url", listingURL, "last_page", first.LastPage)

	for page := 2; page <= first.LastPage; page++ {
		query := url.Values{u.cfg.Site.PageParam: []string{strconv.Itoa(page)}}
		listing, err := u.fetchListing(ctx, listingURL, query)
		if err != nil {
			return nil, fmt.Errorf("ページ%dの取得に失敗しました: %w", page, err)
		}
		entries = append(entries, listing.Entries...)
	}

	return entries, nil
}

func (u *downloadApplicantPagesUseCase) fetchListing(ctx context.Context, listingURL string, query url.Values) (infra.ListingPage, error) {
	if err := u.throttle.Wait(ctx); err != nil {
		return infra.ListingPage{}, err
	}

	content, err := u.fetcher.Fetch(ctx, listingURL, query)
	if err != nil {
		return infra.ListingPage{}, err
	}

	listing, err := u.parser.ParseListing(content)
	if err != nil {
		return infra.ListingPage{}, err
	}
	if listing.UnparsedAdded > 0 {
		u.logger.Warn("登録日時を解釈できない行がありました", "url", listingURL, "page", query.Get(u.cfg.Site.PageParam), "count", listing.UnparsedAdded)
	}

	return listing, nil
}

// downloadDetailは詳細ページを1件保存します。
// 取得に失敗した場合は false を返し、ジョブの記録やコンテキストの失敗はエラーを返します。
func (u *downloadApplicantPagesUseCase) downloadDetail(ctx context.Context, commissionType model.CommissionType, entry model.ListingEntry) (bool, error) {
	link := entry.Link()
	job := model.NewPendingCrawlJob(commissionType, entry.ApplicantID(), link)
	if err := u.repo.Save(ctx, job); err != nil {
		return false, fmt.Errorf("クロールジョブの保存に失敗しました: %w", err)
	}

	path, fetchErr := u.fetchAndSave(ctx, commissionType, entry)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}

	if err := u.repo.Delete(ctx, job); err != nil {
		return false, fmt.Errorf("処理済みクロールジョブの削除に失敗しました: %w", err)
	}

	if fetchErr != nil {
		u.logger.Error("詳細ページの保存に失敗しました", "url", link.String(), "error", fetchErr)
		if err := u.repo.Save(ctx, job.WithStatus(model.CrawlJobStatusFailed, fetchErr.Error())); err != nil {
			return false, fmt.Errorf("ジョブのステータスをFAILEDに保存できませんでした: %w", err)
		}
		return false, nil
	}

	if err := u.repo.Save(ctx, job.WithStatus(model.CrawlJobStatusSuccess, "")); err != nil {
		return false, fmt.Errorf("ジョブのステータスをSUCCESSに更新できませんでした: %w", err)
	}

	u.logger.Info("Wrote "+path, "commission_type", commissionType, "applicant_id", entry.ApplicantID())
	return true, nil
}

func (u *downloadApplicantPagesUseCase) fetchAndSave(ctx context.Context, commissionType model.CommissionType, entry model.ListingEntry) (string, error) {
	if err := u.throttle.Wait(ctx); err != nil {
		return "", err
	}

	link := entry.Link()
	content, err := u.fetcher.Fetch(ctx, link.String(), nil)
	if err != nil {
		return "", err
	}

	return u.loader.SaveHTML(commissionType, entry.ApplicantID(), content)
}
