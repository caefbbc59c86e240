package models

import (
	"time"

	json "github.com/goccy/go-json"
)

// Experience is one position held. Title is the canonical role field; the
// legacy "position" key is accepted on decode and folded into Title.
type Experience struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Achievements []string  `json:"achievements"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (e *Experience) UnmarshalJSON(data []byte) error {
	type plain Experience
	if err := json.Unmarshal(data, (*plain)(e)); err != nil {
		return err
	}
	if e.Title == "" {
		var legacy struct {
			Position string `json:"position"`
		}
		if err := json.Unmarshal(data, &legacy); err != nil {
			return err
		}
		e.Title = legacy.Position
	}
	return nil
}

type ExperienceInput struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
}

type ExperiencePatch struct {
	Title        *string   `json:"title"`
	Company      *string   `json:"company"`
	Location     *string   `json:"location"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	Achievements *[]string `json:"achievements"`
}

func NewExperience(in ExperienceInput) Experience {
	return Experience{
		Title:        in.Title,
		Company:      in.Company,
		Location:     in.Location,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		Technologies: cloneStrings(in.Technologies),
		Achievements: cloneStrings(in.Achievements),
	}
}

func (e Experience) Apply(patch ExperiencePatch) Experience {
	setString(&e.Title, patch.Title)
	setString(&e.Company, patch.Company)
	setString(&e.Location, patch.Location)
	setString(&e.StartDate, patch.StartDate)
	setString(&e.EndDate, patch.EndDate)
	setString(&e.Description, patch.Description)
	setStrings(&e.Technologies, patch.Technologies)
	setStrings(&e.Achievements, patch.Achievements)
	return e
}

func (e Experience) Clone() Experience {
	e.Technologies = cloneStrings(e.Technologies)
	e.Achievements = cloneStrings(e.Achievements)
	return e
}

func (e *Experience) Validate() error {
	return requireStrings("experience",
		requiredField{"title", e.Title},
		requiredField{"company", e.Company},
		requiredField{"location", e.Location},
		requiredField{"startDate", e.StartDate},
		requiredField{"description", e.Description},
	)
}

func (e *Experience) ValidateStored() error {
	if e.ID == "" {
		return &ValidationError{Entity: "experience", Field: "id", Message: "is required"}
	}
	if err := e.Validate(); err != nil {
		return err
	}
	return requireTimestamps("experience", e.CreatedAt, e.UpdatedAt)
}
