package model

type GenderCategory string

const (
	GenderMale   GenderCategory = "m"
	GenderFemale GenderCategory = "f"
	GenderOther  GenderCategory = "o"
	// 回答はあるが分類しないもの
	GenderNone GenderCategory = ""
)

// ApplicantArgsはApplicantを組み立てるための引数です。
type ApplicantArgs struct {
	CommissionType         CommissionType
	ApplicantID            string
	ApplicationDatetime    Text
	FullName               Text
	OtherNames             Text
	PartyAffiliation       Text
	Gender                 Text
	GenderCategory         GenderCategory
	Race                   Text
	Latinx                 bool
	Zip                    Text
	Occupation             Text
	Education              Text
	Statement              Text
	ProfessionalBackground Text
	OrgList                Text
	AnalyticSkills         Text
	ConsensusStatement     Text
	PastPoliticalActivity  Text
	ApplicationURL         string
	LinkToHTML             string
}

// Applicantはデータセットの1行を表します。
type Applicant struct {
	commissionType         CommissionType
	applicantID            string
	applicationDatetime    Text
	fullName               Text
	otherNames             Text
	partyAffiliation       Text
	gender                 Text
	genderCategory         GenderCategory
	race                   Text
	latinx                 bool
	zip                    Text
	occupation             Text
	education              Text
	statement              Text
	professionalBackground Text
	orgList                Text
	analyticSkills         Text
	consensusStatement     Text
	pastPoliticalActivity  Text
	applicationURL         string
	linkToHTML             string
}

func NewApplicant(args ApplicantArgs) Applicant {
	return Applicant{
		commissionType:         args.CommissionType,
		applicantID:            args.ApplicantID,
		applicationDatetime:    args.ApplicationDatetime,
		fullName:               args.FullName,
		otherNames:             args.OtherNames,
		partyAffiliation:       args.PartyAffiliation,
		gender:                 args.Gender,
		genderCategory:         args.GenderCategory,
		race:                   args.Race,
		latinx:                 args.Latinx,
		zip:                    args.Zip,
		occupation:             args.Occupation,
		education:              args.Education,
		statement:              args.Statement,
		professionalBackground: args.ProfessionalBackground,
		orgList:                args.OrgList,
		analyticSkills:         args.AnalyticSkills,
		consensusStatement:     args.ConsensusStatement,
		pastPoliticalActivity:  args.PastPoliticalActivity,
		applicationURL:         args.ApplicationURL,
		linkToHTML:             args.LinkToHTML,
	}
}

func (a Applicant) CommissionType() CommissionType { return a.commissionType }
func (a Applicant) ApplicantID() string            { return a.applicantID }
func (a Applicant) ApplicationDatetime() Text      { return a.applicationDatetime }
func (a Applicant) FullName() Text                 { return a.fullName }
func (a Applicant) OtherNames() Text               { return a.otherNames }
func (a Applicant) PartyAffiliation() Text         { return a.partyAffiliation }
func (a Applicant) Gender() Text                   { return a.gender }
func (a Applicant) GenderCategory() GenderCategory { return a.genderCategory }
func (a Applicant) Race() Text                     { return a.race }
func (a Applicant) Latinx() bool                   { return a.latinx }
func (a Applicant) Zip() Text                      { return a.zip }
func (a Applicant) Occupation() Text               { return a.occupation }
func (a Applicant) Education() Text                { return a.education }
func (a Applicant) Statement() Text                { return a.statement }
func (a Applicant) ProfessionalBackground() Text   { return a.professionalBackground }
func (a Applicant) OrgList() Text                  { return a.orgList }
func (a Applicant) AnalyticSkills() Text           { return a.analyticSkills }
func (a Applicant) ConsensusStatement() Text       { return a.consensusStatement }
func (a Applicant) PastPoliticalActivity() Text    { return a.pastPoliticalActivity }
func (a Applicant) ApplicationURL() string         { return a.applicationURL }
func (a Applicant) LinkToHTML() string             { return a.linkToHTML }
