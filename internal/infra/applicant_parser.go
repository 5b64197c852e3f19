package infra

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

type HeadlineField string

const (
	FieldFullName               HeadlineField = "full_name"
	FieldOtherNames             HeadlineField = "other_names"
	FieldPartyAffiliation       HeadlineField = "party_affiliation"
	FieldGender                 HeadlineField = "gender"
	FieldRace                   HeadlineField = "race"
	FieldLatinx                 HeadlineField = "latinx"
	FieldZip                    HeadlineField = "zip"
	FieldOccupation             HeadlineField = "occupation"
	FieldEducation              HeadlineField = "education"
	FieldStatement              HeadlineField = "statement"
	FieldProfessionalBackground HeadlineField = "professional_background"
	FieldOrgList                HeadlineField = "org_list"
	FieldAnalyticSkills         HeadlineField = "analytic_skills"
	FieldConsensusStatement     HeadlineField = "consensus_statement"
	FieldPastPoliticalActivity  HeadlineField = "past_political_activity"
)

// HeadlineRuleは見出し要素のタグとテキストのパターンの組です。
type HeadlineRule struct {
	Field   HeadlineField
	Tag     string
	Pattern *regexp.Regexp
}

// ExtractionRulesは詳細ページから値を取り出すためのルール一式です。
type ExtractionRules struct {
	// 見出しの次の要素のテキストを値とするもの
	Values []HeadlineRule
	// 見出し直後のノードのテキストを値とするもの
	OtherNames HeadlineRule
	// 見出しの有無だけを見るもの
	Latinx HeadlineRule
}

type ApplicantParser interface {
	ParseApplicant(content string) (model.ApplicantArgs, error)
	ParseGenderCategory(answer string) (model.GenderCategory, bool)
}

type applicantParser struct {
	rules        ExtractionRules
	genderLookup map[string]model.GenderCategory
	genderFolded map[string]model.GenderCategory
	folder       cases.Caser
}

// NewApplicantParserは抽出ルールと性別の自由記述の分類表からパーサーを生成します。
func NewApplicantParser(rules ExtractionRules, genderLookup map[string]model.GenderCategory) ApplicantParser {
	p := &applicantParser{
		rules:        rules,
		genderLookup: genderLookup,
		genderFolded: make(map[string]model.GenderCategory, len(genderLookup)),
		folder:       cases.Fold(),
	}
	for answer, category := range genderLookup {
		p.genderFolded[p.foldAnswer(answer)] = category
	}
	return p
}

// ParseApplicantは詳細ページのHTMLから見出しと値の組を抽出します。
// 見出しや値が見つからない項目はnullのままです。
func (p *applicantParser) ParseApplicant(content string) (model.ApplicantArgs, error) {
	doc, err := NewHTMLDocument(content)
	if err != nil {
		return model.ApplicantArgs{}, fmt.Errorf("詳細ページのHTML解析に失敗しました: %w", err)
	}

	var args model.ApplicantArgs
	for _, rule := range p.rules.Values {
		value := model.NewNullText()
		if text, ok := doc.HeadlineValue(rule.Tag, rule.Pattern); ok {
			value = model.NewText(text)
		}
		if err := assignField(&args, rule.Field, value); err != nil {
			return model.ApplicantArgs{}, err
		}
	}

	args.OtherNames = model.NewNullText()
	if text, ok := doc.HeadlineAdjacentText(p.rules.OtherNames.Tag, p.rules.OtherNames.Pattern); ok {
		args.OtherNames = model.NewText(text)
	}

	_, args.Latinx = doc.FindHeadline(p.rules.Latinx.Tag, p.rules.Latinx.Pattern)

	return args, nil
}

// ParseGenderCategoryは性別の回答を分類します。表に完全一致しない場合は
// 正規化(NFKC、大文字小文字の畳み込み、空白の詰め)した回答で引き直します。
// 2つ目の戻り値は分類表に該当があったかどうかです。
func (p *applicantParser) ParseGenderCategory(answer string) (model.GenderCategory, bool) {
	if category, ok := p.genderLookup[answer]; ok {
		return category, true
	}
	category, ok := p.genderFolded[p.foldAnswer(answer)]
	return category, ok
}

func (p *applicantParser) foldAnswer(answer string) string {
	normalized := norm.NFKC.String(answer)
	return p.folder.String(strings.Join(strings.Fields(normalized), " "))
}

func assignField(args *model.ApplicantArgs, field HeadlineField, value model.Text) error {
	switch field {
	case FieldFullName:
		args.FullName = value
	case FieldOtherNames:
		args.OtherNames = value
	case FieldPartyAffiliation:
		args.PartyAffiliation = value
	case FieldGender:
		args.Gender = value
	case FieldRace:
		args.Race = value
	case FieldZip:
		args.Zip = value
	case FieldOccupation:
		args.Occupation = value
	case FieldEducation:
		args.Education = value
	case FieldStatement:
		args.Statement = value
	case FieldProfessionalBackground:
		args.ProfessionalBackground = value
	case FieldOrgList:
		args.OrgList = value
	case FieldAnalyticSkills:
		args.AnalyticSkills = value
	case FieldConsensusStatement:
		args.ConsensusStatement = value
	case FieldPastPoliticalActivity:
		args.PastPoliticalActivity = value
	default:
		return fmt.Errorf("値を持たない項目です: %s", field)
	}
	return nil
}
