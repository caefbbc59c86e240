package models

import (
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkill_Validate(t *testing.T) {
	tests := []struct {
		name    string
		skill   Skill
		wantErr bool
	}{
		{"valid", Skill{Name: "Go", Level: 90, Category: "Backend", YearsOfExperience: 5}, false},
		{"zero level", Skill{Name: "Go", Level: 0, Category: "Backend"}, false},
		{"upper bound", Skill{Name: "Go", Level: 100, Category: "Backend"}, false},
		{"missing name", Skill{Level: 50, Category: "Backend"}, true},
		{"missing category", Skill{Name: "Go", Level: 50}, true},
		{"level above range", Skill{Name: "Go", Level: 101, Category: "Backend"}, true},
		{"negative level", Skill{Name: "Go", Level: -1, Category: "Backend"}, true},
		{"negative years", Skill{Name: "Go", Level: 10, Category: "Backend", YearsOfExperience: -2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.skill.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExperience_Validate_NamesFirstMissingField(t *testing.T) {
	e := NewExperience(ExperienceInput{
		Title:       "",
		Company:     "A",
		Location:    "B",
		StartDate:   "2024-01-01",
		Description: "C",
	})

	err := e.Validate()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "title", ve.Field)
	assert.Contains(t, err.Error(), "title")

	e.Title = "Engineer"
	e.Location = ""
	e.Description = ""
	require.True(t, errors.As(e.Validate(), &ve))
	assert.Equal(t, "location", ve.Field)
}

func TestExperience_DecodeMigratesLegacyPosition(t *testing.T) {
	raw := `{"id":"1","position":"Staff Engineer","company":"Acme","technologies":["Go"]}`

	var e Experience
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, "Staff Engineer", e.Title)
	assert.Equal(t, "Acme", e.Company)
	assert.Equal(t, []string{"Go"}, e.Technologies)
}

func TestExperience_DecodePrefersTitle(t *testing.T) {
	raw := `{"title":"Lead","position":"Old Name"}`

	var e Experience
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, "Lead", e.Title)
}

func TestExperience_EncodeOmitsPosition(t *testing.T) {
	data, err := json.Marshal(Experience{Title: "Lead"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "position")
}

func TestSkill_Validate_ReportsSameFieldEveryRun(t *testing.T) {
	sk := Skill{Name: "Go", Level: 150, Category: "Backend", YearsOfExperience: -1}

	var first *ValidationError
	require.True(t, errors.As(sk.Validate(), &first))
	assert.True(t, strings.EqualFold("level", first.Field), first.Field)

	for i := 0; i < 20; i++ {
		var ve *ValidationError
		require.True(t, errors.As(sk.Validate(), &ve))
		assert.Equal(t, first.Field, ve.Field)
		assert.Equal(t, first.Message, ve.Message)
	}
}

func TestEducation_Validate(t *testing.T) {
	e := NewEducation(EducationInput{Degree: "BSc", Institution: "WGU", Location: "Remote", StartDate: "2019-09"})
	assert.NoError(t, e.Validate())

	e.Institution = ""
	var ve *ValidationError
	require.True(t, errors.As(e.Validate(), &ve))
	assert.Equal(t, "institution", ve.Field)
}

func TestAbout_ApplyShallowMerge(t *testing.T) {
	about := DefaultAbout()
	heading := "Hello"
	merged := about.Apply(AboutPatch{Heading: &heading})

	assert.Equal(t, "Hello", merged.Heading)
	assert.Equal(t, about.Paragraphs, merged.Paragraphs)
	assert.Equal(t, about.Stats, merged.Stats)
}

func TestAbout_Validate(t *testing.T) {
	about := DefaultAbout()
	assert.NoError(t, about.Validate())

	about.Heading = ""
	assert.ErrorIs(t, about.Validate(), ErrValidation)

	about = DefaultAbout()
	about.Stats = append(about.Stats, Stat{Label: "", Value: "1"})
	assert.ErrorIs(t, about.Validate(), ErrValidation)
}

func TestDefaultAbout_ReturnsFreshCopy(t *testing.T) {
	a := DefaultAbout()
	a.Paragraphs[0] = "changed"
	assert.NotEqual(t, "changed", DefaultAbout().Paragraphs[0])
}
