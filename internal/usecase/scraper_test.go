package usecase

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/cjwinchester/co-redistricting-applicants/internal/constants"
	"github.com/cjwinchester/co-redistricting-applicants/internal/domain/model"
	"github.com/cjwinchester/co-redistricting-applicants/internal/infra"
	"github.com/cjwinchester/co-redistricting-applicants/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applicantPage(name, gender string, latinx bool) string {
	page := "<html><body><h5>Full Name</h5><p>" + name + "</p>"
	page += "<h6>Gender</h6><p>" + gender + "</p>"
	if latinx {
		page += "<h6>Hispanic/Latino/Spanish origin</h6>"
	}
	return page + "</body></html>"
}

func TestSaveApplicantDataset(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig("https://redistricting.colorado.gov", dir)
	cfg.Site.CommissionTypes = []string{"congressional", "legislative"}

	loader := infra.NewHTMLFileLoader(dir)
	pages := []struct {
		ct      model.CommissionType
		id      string
		content string
	}{
		{model.Congressional, "20", applicantPage("John Roe", "Male", false)},
		{model.Congressional, "10", applicantPage("Jane Doe", "Female", true)},
		{model.Legislative, "30", applicantPage("Alex Poe", "Agender", false)},
	}
	for _, p := range pages {
		_, err := loader.SaveHTML(p.ct, p.id, p.content)
		require.NoError(t, err)
	}

	times := "commission_type,id,time_applied\n" +
		"congressional,10,2021-02-01T16:20:13Z\n" +
		"congressional,20,\n"
	require.NoError(t, os.WriteFile(cfg.Scraper.TimesAppliedFile, []byte(times), 0o644))

	output := cfg.Scraper.Outputs[0]
	exporter, err := infra.NewFileExporter(output, constants.GetScraperCSVHeaders())
	require.NoError(t, err)

	var report bytes.Buffer
	uc := NewSaveApplicantDatasetUseCase(ScraperArgs{
		Cfg:      cfg,
		Loader:   loader,
		Parser:   infra.NewApplicantParser(constants.GetExtractionRules(), constants.GetGenderLookup()),
		Exporter: exporter,
		Report:   &report,
		Logger:   logger.NewNopLogger(),
	})

	result, err := uc.SaveApplicantDataset(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Written)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, map[string]int{"Agender": 1}, result.UnmappedGenders)
	assert.Contains(t, report.String(), "Agender")

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	headers := constants.GetScraperCSVHeaders()
	col := func(row []string, name string) string {
		for i, h := range headers {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("unknown column %s", name)
		return ""
	}

	// 種別ごとにファイル名順
	jane, john, alex := records[1], records[2], records[3]
	assert.Equal(t, "10", col(jane, "applicant_id"))
	assert.Equal(t, "20", col(john, "applicant_id"))
	assert.Equal(t, "30", col(alex, "applicant_id"))

	assert.Equal(t, "congressional", col(jane, "commission_type"))
	assert.Equal(t, "Jane Doe", col(jane, "full_name"))
	assert.Equal(t, "2021-02-01T16:20:13Z", col(jane, "application_datetime"))
	assert.Equal(t, "f", col(jane, "gender_category"))
	assert.Equal(t, "True", col(jane, "latinx"))
	assert.Equal(t, "", col(jane, "other_names"))
	assert.Equal(t, "https://redistricting.colorado.gov/congressional_applicants/10", col(jane, "application_url"))
	assert.Equal(t, "https://example.com/blob/master/congressional/10.html", col(jane, "link_to_html"))

	assert.Equal(t, "", col(john, "application_datetime"))
	assert.Equal(t, "m", col(john, "gender_category"))
	assert.Equal(t, "False", col(john, "latinx"))

	assert.Equal(t, "legislative", col(alex, "commission_type"))
	assert.Equal(t, "", col(alex, "gender_category"))
	assert.Equal(t, "https://example.com/blob/master/legislative/30.html", col(alex, "link_to_html"))
}

func TestSaveApplicantDatasetWithoutPages(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig("https://redistricting.colorado.gov", dir)
	output := filepath.Join(dir, "empty.csv")

	exporter, err := infra.NewFileExporter(output, constants.GetScraperCSVHeaders())
	require.NoError(t, err)

	uc := NewSaveApplicantDatasetUseCase(ScraperArgs{
		Cfg:      cfg,
		Loader:   infra.NewHTMLFileLoader(dir),
		Parser:   infra.NewApplicantParser(constants.GetExtractionRules(), constants.GetGenderLookup()),
		Exporter: exporter,
		Logger:   logger.NewNopLogger(),
	})

	result, err := uc.SaveApplicantDataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Written)

	raw, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "commission_type,applicant_id,application_datetime,full_name,other_names,party_affiliation,gender,gender_category,race,latinx,zip,occupation,education,statement,professional_background,org_list,analytic_skills,consensus_statement,past_political_activity,application_url,link_to_html\n", string(raw))
}

func TestSaveApplicantDatasetCanceledKeepsPreviousOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig("https://redistricting.colorado.gov", dir)
	headers := constants.GetScraperCSVHeaders()

	loader := infra.NewHTMLFileLoader(dir)
	_, err := loader.SaveHTML(model.Congressional, "10", applicantPage("Jane Doe", "Female", true))
	require.NoError(t, err)

	csvPath := filepath.Join(dir, "applicants.csv")
	dbPath := filepath.Join(dir, "applicants.db")
	cfg.Scraper.Outputs = []string{csvPath, dbPath}

	// 前回の実行で書き出されたデータセット
	newUseCase := func() *saveApplicantDatasetUseCase {
		exporters := make([]infra.FileExporter, 0, len(cfg.Scraper.Outputs))
		for _, output := range cfg.Scraper.Outputs {
			exporter, err := infra.NewFileExporter(output, headers)
			require.NoError(t, err)
			exporters = append(exporters, exporter)
		}
		return NewSaveApplicantDatasetUseCase(ScraperArgs{
			Cfg:      cfg,
			Loader:   loader,
			Parser:   infra.NewApplicantParser(constants.GetExtractionRules(), constants.GetGenderLookup()),
			Exporter: infra.NewMultiExporter(exporters...),
			Logger:   logger.NewNopLogger(),
		})
	}
	_, err = newUseCase().SaveApplicantDataset(context.Background())
	require.NoError(t, err)

	previousCSV, err := os.ReadFile(csvPath)
	require.NoError(t, err)

	_, err = loader.SaveHTML(model.Congressional, "20", applicantPage("John Roe", "Male", false))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newUseCase().SaveApplicantDataset(ctx)
	require.ErrorIs(t, err, context.Canceled)

	raw, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, string(previousCSV), string(raw))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var ids []string
	rows, err := db.Query("SELECT applicant_id FROM applicants")
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"10"}, ids)
}
