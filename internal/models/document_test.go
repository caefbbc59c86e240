package models

import (
	"errors"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *ExportDocument {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	about := DefaultAbout()
	return &ExportDocument{
		Projects: []Project{{
			ID: "p1", Title: "Portfolio", Description: "desc", GithubURL: "https://github.com/x/y",
			Category: "Web", Status: StatusPlanned, StartDate: "2024-01-01",
			Technologies: []string{"Go"}, Features: []string{}, CreatedAt: now, UpdatedAt: now,
		}},
		Skills: []Skill{{ID: "s1", Name: "Go", Level: 90, Category: "Backend", YearsOfExperience: 4, CreatedAt: now, UpdatedAt: now}},
		Experiences: []Experience{{
			ID: "e1", Title: "Engineer", Company: "Acme", Location: "Remote", StartDate: "2020-01",
			Description: "Built things", Technologies: []string{}, Achievements: []string{}, CreatedAt: now, UpdatedAt: now,
		}},
		Education: []Education{{
			ID: "d1", Degree: "BSc", Institution: "WGU", Location: "Remote", StartDate: "2019-09",
			Achievements: []string{}, CreatedAt: now, UpdatedAt: now,
		}},
		About: &about,
	}
}

func TestParseExportDocument_Valid(t *testing.T) {
	raw, err := json.Marshal(sampleDocument())
	require.NoError(t, err)

	doc, err := ParseExportDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, Counts{Projects: 1, Skills: 1, Experiences: 1, Education: 1}, doc.Counts())
	assert.Equal(t, sampleDocument(), doc)
}

func TestParseExportDocument_MissingAbout(t *testing.T) {
	_, err := ParseExportDocument([]byte(`{"projects": [], "skills": [], "experiences": [], "education": []}`))
	require.Error(t, err)

	var ie *ImportError
	require.True(t, errors.As(err, &ie))
	require.Len(t, ie.Issues, 1)
	assert.Equal(t, CategoryAbout, ie.Issues[0].Category)
}

func TestParseExportDocument_MissingCollection(t *testing.T) {
	about := DefaultAbout()
	raw, _ := json.Marshal(map[string]any{"projects": []any{}, "skills": []any{}, "experiences": []any{}, "about": about})

	_, err := ParseExportDocument(raw)
	var ie *ImportError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, CategoryEducation, ie.Issues[0].Category)
}

func TestParseExportDocument_WrongType(t *testing.T) {
	_, err := ParseExportDocument([]byte(`{"projects": {}, "skills": [], "experiences": [], "education": [], "about": {}}`))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseExportDocument_NotJSON(t *testing.T) {
	_, err := ParseExportDocument([]byte(`not json`))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseExportDocument_ReportsEveryInvalidEntity(t *testing.T) {
	doc := sampleDocument()
	doc.Skills[0].Level = 150
	doc.Experiences[0].Company = ""
	doc.Projects[0].UpdatedAt = time.Time{}
	raw, _ := json.Marshal(doc)

	_, err := ParseExportDocument(raw)
	var ie *ImportError
	require.True(t, errors.As(err, &ie))
	require.Len(t, ie.Issues, 3)

	categories := []string{ie.Issues[0].Category, ie.Issues[1].Category, ie.Issues[2].Category}
	assert.ElementsMatch(t, []string{CategoryProjects, CategorySkills, CategoryExperiences}, categories)
	assert.Contains(t, err.Error(), "experiences[0].company")
}

func TestExportDocument_NormalizeFillsNilLists(t *testing.T) {
	doc := &ExportDocument{}
	doc.Normalize()

	assert.NotNil(t, doc.Projects)
	assert.NotNil(t, doc.Skills)
	assert.NotNil(t, doc.Experiences)
	assert.NotNil(t, doc.Education)
	assert.Nil(t, doc.About)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"projects":[]`)
}
