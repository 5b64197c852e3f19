package constants

import (
	"testing"

	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"github.com/cjwinchester/co-redistricting-applicants/internal/infra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const applicantPageHTML = `<!DOCTYPE html>
<html><body>
<div class="container">
  <h5>Full Name</h5>
  <p>Jane Q. Doe</p>
  <h5>Other names you have used</h5>
  Janie
  <h5>Party Affiliation</h5>
  <p>Unaffiliated</p>
  <h5>Zip Code</h5>
  <p>80202</p>
  <h6>Gender: With which gender do you identify?</h6>
  <p>  female </p>
  <h6>Racial Categories: Which of the following do you identify with?</h6>
  <p>White</p>
  <h6>Are you of Hispanic/Latino/Spanish origin?</h6>
  <p>Yes</p>
  <h5>Occupation</h5>
  <p>Librarian</p>
  <h5>Educational Background</h5>
  <p>B.A., University of Colorado</p>
  <h5>Statement</h5>
  <p>I want fair maps.</p>
  <h5>Professional Background</h5>
  <p>Twenty years in public schools.</p>
  <h5>Political and Civic Organizations</h5>
  <p>League of Women Voters</p>
  <h5>Analytic Skills</h5>
  <p>Statistics</p>
  <h5>Working with Consensus Statement</h5>
  <p>I listen first.</p>
  <h5>Past Political Activity</h5>
  <p>None</p>
</div>
</body></html>`

func TestExtractionRulesOnApplicantPage(t *testing.T) {
	parser := infra.NewApplicantParser(GetExtractionRules(), GetGenderLookup())

	args, err := parser.ParseApplicant(applicantPageHTML)
	require.NoError(t, err)

	assert.Equal(t, "Jane Q. Doe", args.FullName.Value())
	assert.Equal(t, "Janie", args.OtherNames.Value())
	assert.Equal(t, "Unaffiliated", args.PartyAffiliation.Value())
	assert.Equal(t, "80202", args.Zip.Value())
	assert.Equal(t, "female", args.Gender.Value())
	assert.Equal(t, "White", args.Race.Value())
	assert.True(t, args.Latinx)
	assert.Equal(t, "Librarian", args.Occupation.Value())
	assert.Equal(t, "B.A., University of Colorado", args.Education.Value())
	assert.Equal(t, "I want fair maps.", args.Statement.Value())
	assert.Equal(t, "Twenty years in public schools.", args.ProfessionalBackground.Value())
	assert.Equal(t, "League of Women Voters", args.OrgList.Value())
	assert.Equal(t, "Statistics", args.AnalyticSkills.Value())
	assert.Equal(t, "I listen first.", args.ConsensusStatement.Value())
	assert.Equal(t, "None", args.PastPoliticalActivity.Value())

	category, ok := parser.ParseGenderCategory(args.Gender.Value())
	assert.True(t, ok)
	assert.Equal(t, model.GenderFemale, category)
}

func TestGetGenderLookup(t *testing.T) {
	lookup := GetGenderLookup()

	assert.Equal(t, model.GenderMale, lookup["Male"])
	assert.Equal(t, model.GenderFemale, lookup["F"])
	assert.Equal(t, model.GenderOther, lookup["Transgender"])
	assert.Equal(t, model.GenderNone, lookup["Decline"])
	assert.Len(t, lookup, len(genderAnswers))
}

func TestHeaders(t *testing.T) {
	headers := GetScraperCSVHeaders()

	assert.Len(t, headers, 21)
	assert.Equal(t, "commission_type", headers[0])
	assert.Equal(t, "link_to_html", headers[len(headers)-1])
	assert.Equal(t, []string{"commission_type", "id", "time_applied"}, GetTimesAppliedHeaders())
}
