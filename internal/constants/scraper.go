package constants

import (
	"regexp"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"github.com/cjwinchester/co-redistricting-applicants/internal/infra"
)

// GetExtractionRulesは、詳細ページの見出しと値を取り出すルールを返します。
func GetExtractionRules() infra.ExtractionRules {
	return infra.ExtractionRules{
		Values: []infra.HeadlineRule{
			{Field: infra.FieldFullName, Tag: "h5", Pattern: regexp.MustCompile(`(?i)full name`)},
			{Field: infra.FieldPartyAffiliation, Tag: "h5", Pattern: regexp.MustCompile(`(?i)party affiliation`)},
			{Field: infra.FieldGender, Tag: "h6", Pattern: regexp.MustCompile(`(?i)gender`)},
			{Field: infra.FieldRace, Tag: "h6", Pattern: regexp.MustCompile(`(?i)racial categories`)},
			{Field: infra.FieldZip, Tag: "h5", Pattern: regexp.MustCompile(`(?i)zip code`)},
			{Field: infra.FieldOccupation, Tag: "h5", Pattern: regexp.MustCompile(`(?i)occupation`)},
			{Field: infra.FieldEducation, Tag: "h5", Pattern: regexp.MustCompile(`(?i)educational background`)},
			{Field: infra.FieldStatement, Tag: "h5", Pattern: regexp.MustCompile(`^Statement$`)},
			{Field: infra.FieldProfessionalBackground, Tag: "h5", Pattern: regexp.MustCompile(`(?i)professional background`)},
			{Field: infra.FieldOrgList, Tag: "h5", Pattern: regexp.MustCompile(`(?i)political and civic organizations`)},
			{Field: infra.FieldAnalyticSkills, Tag: "h5", Pattern: regexp.MustCompile(`(?i)analytic skills`)},
			{Field: infra.FieldConsensusStatement, Tag: "h5", Pattern: regexp.MustCompile(`(?i)working with consensus`)},
			{Field: infra.FieldPastPoliticalActivity, Tag: "h5", Pattern: regexp.MustCompile(`(?i)past political activity`)},
		},
		OtherNames: infra.HeadlineRule{Field: infra.FieldOtherNames, Tag: "h5", Pattern: regexp.MustCompile(`(?i)other names`)},
		Latinx:     infra.HeadlineRule{Field: infra.FieldLatinx, Tag: "h6", Pattern: regexp.MustCompile(`(?i)hispanic/latino/spanish`)},
	}
}

// GetGenderLookupは、性別の自由記述の回答と分類の対応表を返します。
// 分類しない回答は model.GenderNone に対応させます。
func GetGenderLookup() map[string]model.GenderCategory {
	lookup := make(map[string]model.GenderCategory, len(genderAnswers))
	for _, a := range genderAnswers {
		lookup[a.answer] = a.category
	}
	return lookup
}

type genderAnswer struct {
	answer   string
	category model.GenderCategory
}

var genderAnswers = []genderAnswer{
	{"male.", model.GenderMale},
	{"Female", model.GenderFemale},
	{"Male", model.GenderMale},
	{"Cisgender male", model.GenderMale},
	{"female", model.GenderFemale},
	{"male", model.GenderMale},
	{"I am a male.", model.GenderMale},
	{"Male, although I feel like it should be \"identify as\" instead of \"identify with\".", model.GenderMale},
	{"male, unless my wife says otherwise", model.GenderMale},
	{"woman / female", model.GenderFemale},
	{"MALE", model.GenderMale},
	{"I'm a man.", model.GenderMale},
	{"I'm a man...this is a strange question and should have no bearing on this position", model.GenderMale},
	{"Humanity", model.GenderNone},
	{"heterosexual male", model.GenderMale},
	{"woman", model.GenderFemale},
	{"Heterosexual Male", model.GenderMale},
	{"Male Heterosexual", model.GenderMale},
	{"FEMALE", model.GenderFemale},
	{"man", model.GenderMale},
	{"He/Him/His", model.GenderMale},
	{"Transgender", model.GenderOther},
	{"Woman", model.GenderFemale},
	{"Male.   I am also openly gay.", model.GenderMale},
	{"I find this irrelevant. This is a committee to develop Legislative Districts.", model.GenderNone},
	{"Male.  I am also openly gay.", model.GenderMale},
	{"I am an American male with military service", model.GenderMale},
	{"Femaile", model.GenderFemale},
	{"Cisgender Male", model.GenderMale},
	{"Make", model.GenderMale}, // 誤記とみなす
	{"emal", model.GenderMale}, // 誤記とみなす
	{"gay woman", model.GenderFemale},
	{"WOMEN", model.GenderFemale},
	{"Female.", model.GenderFemale},
	{"I identify as female and since you did not ask it anywhere, also as queer. Which is an important diversity issue in Colorado.", model.GenderFemale},
	{"M", model.GenderMale},
	{"female, cis-gender", model.GenderFemale},
	{"I’m a female by birth I identify as a woman. God created me a woman 👩", model.GenderFemale},
	{"Male (He/Him)", model.GenderMale},
	{"Biological Male not altered", model.GenderMale},
	{"female.", model.GenderFemale},
	{"Hetero Female", model.GenderFemale},
	{"femail", model.GenderFemale},
	{"she/her/hers", model.GenderFemale},
	{"Female-also, attachments won’t upload", model.GenderFemale},
	{"Cis-Male/Masculine.", model.GenderMale},
	{"Man", model.GenderMale},
	{"cismale", model.GenderMale},
	{"Cisfemale", model.GenderFemale},
	{"Decline", model.GenderNone},
	{"Female. Please note that I have lived in predominantly hispanic neighborhoods for extended periods throughout my life in Colorado.", model.GenderFemale},
	{"Gay Male", model.GenderMale},
	{"Non-binary, genderfluid", model.GenderOther},
	{"Cisgender, Gay Male", model.GenderMale},
	{"Women", model.GenderFemale},
	{"Male (he/his - pronouns)", model.GenderMale},
	{"Female - hetero", model.GenderFemale},
	{"Cisgender, Gay Man", model.GenderMale},
	{"Male.", model.GenderMale},
	{"I am a man.", model.GenderMale},
	{"Queer woman", model.GenderFemale},
	{"Female. And I am queer, which you did not ask but I feel is important in the sphere of getting voices heard.", model.GenderFemale},
	{"She/her/hers", model.GenderFemale},
	{"F", model.GenderFemale},
	{"Male by birth", model.GenderMale},
	{"Female cisgendered", model.GenderFemale},
	{"ciswoman", model.GenderFemale},
	{"Male, I have that chromosome", model.GenderMale},
	{"Female and my pronouns are she/her/hers", model.GenderFemale},
	{"Male, Gay", model.GenderMale},
	{"He/His", model.GenderMale},
	{"female/feminine", model.GenderFemale},
	{"Female and gender non-conforming", model.GenderOther},
	{"Cis Male", model.GenderMale},
	{"Female (she, her, hers pronouns)", model.GenderFemale},
	{"Female - She/Her/Hers", model.GenderFemale},
	{"Woman/female", model.GenderFemale},
	{"human female genome", model.GenderFemale},
	{"Woman/Female", model.GenderFemale},
	{"Female (She/Her/Hers)", model.GenderFemale},
	{"woman/female", model.GenderFemale},
	{"Female, she/her", model.GenderFemale},
	{"Transgender Female", model.GenderOther},
	{"Female (pronouns she her hers)", model.GenderFemale},
	{"female and gender non-conforming", model.GenderOther},
}

// GetScraperCSVHeadersは、データセットの列名を出力順に返します。
func GetScraperCSVHeaders() []string {
	return []string{
		"commission_type",
		"applicant_id",
		"application_datetime",
		"full_name",
		"other_names",
		"party_affiliation",
		"gender",
		"gender_category",
		"race",
		"latinx",
		"zip",
		"occupation",
		"education",
		"statement",
		"professional_background",
		"org_list",
		"analytic_skills",
		"consensus_statement",
		"past_political_activity",
		"application_url",
		"link_to_html",
	}
}

// GetTimesAppliedHeadersは、応募日時の中間ファイルの列名を返します。
func GetTimesAppliedHeaders() []string {
	return []string{"commission_type", "id", "time_applied"}
}

const (
	LogBatchCount = 100
)
