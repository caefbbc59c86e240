package models

import "time"

const (
	StatusPlanned    = "planned"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	Image           string    `json:"image"`
	Video           string    `json:"video"`
	Technologies    []string  `json:"technologies"`
	Features        []string  `json:"features"`
	GithubURL       string    `json:"githubUrl" validate:"fullUrl"`
	LiveURL         string    `json:"liveUrl" validate:"fullUrl"`
	Category        string    `json:"category"`
	Status          string    `json:"status" validate:"in:planned,in-progress,completed"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ProjectInput carries the caller-supplied fields of a new project.
type ProjectInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Image           string   `json:"image"`
	Video           string   `json:"video"`
	Technologies    []string `json:"technologies"`
	Features        []string `json:"features"`
	GithubURL       string   `json:"githubUrl"`
	LiveURL         string   `json:"liveUrl"`
	Category        string   `json:"category"`
	Status          string   `json:"status"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
}

// ProjectPatch is a partial update; nil fields keep their current value.
type ProjectPatch struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"longDescription"`
	Image           *string   `json:"image"`
	Video           *string   `json:"video"`
	Technologies    *[]string `json:"technologies"`
	Features        *[]string `json:"features"`
	GithubURL       *string   `json:"githubUrl"`
	LiveURL         *string   `json:"liveUrl"`
	Category        *string   `json:"category"`
	Status          *string   `json:"status"`
	StartDate       *string   `json:"startDate"`
	EndDate         *string   `json:"endDate"`
}

// NewProject builds an unsaved project from input, applying form defaults.
func NewProject(in ProjectInput) Project {
	p := Project{
		Title:           in.Title,
		Description:     in.Description,
		LongDescription: in.LongDescription,
		Image:           in.Image,
		Video:           in.Video,
		Technologies:    cloneStrings(in.Technologies),
		Features:        cloneStrings(in.Features),
		GithubURL:       in.GithubURL,
		LiveURL:         in.LiveURL,
		Category:        in.Category,
		Status:          in.Status,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
	}
	if p.Status == "" {
		p.Status = StatusPlanned
	}
	return p
}

// Apply merges patch over a copy of p. Lists are replaced only when supplied.
func (p Project) Apply(patch ProjectPatch) Project {
	setString(&p.Title, patch.Title)
	setString(&p.Description, patch.Description)
	setString(&p.LongDescription, patch.LongDescription)
	setString(&p.Image, patch.Image)
	setString(&p.Video, patch.Video)
	setStrings(&p.Technologies, patch.Technologies)
	setStrings(&p.Features, patch.Features)
	setString(&p.GithubURL, patch.GithubURL)
	setString(&p.LiveURL, patch.LiveURL)
	setString(&p.Category, patch.Category)
	setString(&p.Status, patch.Status)
	setString(&p.StartDate, patch.StartDate)
	setString(&p.EndDate, patch.EndDate)
	return p
}

func (p Project) Clone() Project {
	p.Technologies = cloneStrings(p.Technologies)
	p.Features = cloneStrings(p.Features)
	return p
}

// Validate checks the caller-controlled fields.
func (p *Project) Validate() error {
	err := requireStrings("project",
		requiredField{"title", p.Title},
		requiredField{"description", p.Description},
		requiredField{"githubUrl", p.GithubURL},
		requiredField{"category", p.Category},
		requiredField{"status", p.Status},
		requiredField{"startDate", p.StartDate},
	)
	if err != nil {
		return err
	}
	return checkRules("project", p)
}

// ValidateStored additionally requires the store-assigned fields.
func (p *Project) ValidateStored() error {
	if p.ID == "" {
		return &ValidationError{Entity: "project", Field: "id", Message: "is required"}
	}
	if err := p.Validate(); err != nil {
		return err
	}
	return requireTimestamps("project", p.CreatedAt, p.UpdatedAt)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setStrings(dst *[]string, src *[]string) {
	if src != nil {
		*dst = cloneStrings(*src)
	}
}
