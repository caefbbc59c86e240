package models

import "time"

type Education struct {
	ID           string    `json:"id"`
	Degree       string    `json:"degree"`
	Institution  string    `json:"institution"`
	Location     string    `json:"location"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	GPA          string    `json:"gpa"`
	Description  string    `json:"description"`
	Achievements []string  `json:"achievements"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type EducationInput struct {
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	GPA          string   `json:"gpa"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type EducationPatch struct {
	Degree       *string   `json:"degree"`
	Institution  *string   `json:"institution"`
	Location     *string   `json:"location"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	GPA          *string   `json:"gpa"`
	Description  *string   `json:"description"`
	Achievements *[]string `json:"achievements"`
}

func NewEducation(in EducationInput) Education {
	return Education{
		Degree:       in.Degree,
		Institution:  in.Institution,
		Location:     in.Location,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		GPA:          in.GPA,
		Description:  in.Description,
		Achievements: cloneStrings(in.Achievements),
	}
}

func (e Education) Apply(patch EducationPatch) Education {
	setString(&e.Degree, patch.Degree)
	setString(&e.Institution, patch.Institution)
	setString(&e.Location, patch.Location)
	setString(&e.StartDate, patch.StartDate)
	setString(&e.EndDate, patch.EndDate)
	setString(&e.GPA, patch.GPA)
	setString(&e.Description, patch.Description)
	setStrings(&e.Achievements, patch.Achievements)
	return e
}

func (e Education) Clone() Education {
	e.Achievements = cloneStrings(e.Achievements)
	return e
}

func (e *Education) Validate() error {
	return requireStrings("education",
		requiredField{"degree", e.Degree},
		requiredField{"institution", e.Institution},
		requiredField{"location", e.Location},
		requiredField{"startDate", e.StartDate},
	)
}

func (e *Education) ValidateStored() error {
	if e.ID == "" {
		return &ValidationError{Entity: "education", Field: "id", Message: "is required"}
	}
	if err := e.Validate(); err != nil {
		return err
	}
	return requireTimestamps("education", e.CreatedAt, e.UpdatedAt)
}
