package models

import (
	"errors"

	json "github.com/goccy/go-json"
)

// Category names used in documents, counts and change notifications.
const (
	CategoryProjects    = "projects"
	CategorySkills      = "skills"
	CategoryExperiences = "experiences"
	CategoryEducation   = "education"
	CategoryAbout       = "about"
)

// ExportDocument is the export file format and the only accepted import format.
type ExportDocument struct {
	Projects    []Project     `json:"projects"`
	Skills      []Skill       `json:"skills"`
	Experiences []Experience  `json:"experiences"`
	Education   []Education   `json:"education"`
	About       *AboutSection `json:"about"`
}

type Counts struct {
	Projects    int `json:"projects"`
	Skills      int `json:"skills"`
	Experiences int `json:"experiences"`
	Education   int `json:"education"`
}

func (d *ExportDocument) Counts() Counts {
	return Counts{
		Projects:    len(d.Projects),
		Skills:      len(d.Skills),
		Experiences: len(d.Experiences),
		Education:   len(d.Education),
	}
}

// ParseExportDocument decodes raw and checks its structure and every entity.
// Any failure rejects the whole document.
func ParseExportDocument(raw []byte) (*ExportDocument, error) {
	var doc ExportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ImportError{Issues: []EntityIssue{{Category: "document", Index: -1, Message: "not valid JSON: " + err.Error()}}}
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks that every category is present and every entity passes its validator.
func (d *ExportDocument) Validate() error {
	ie := &ImportError{}
	missing := errors.New("must be an array")

	if d.Projects == nil {
		ie.add(CategoryProjects, -1, missing)
	}
	if d.Skills == nil {
		ie.add(CategorySkills, -1, missing)
	}
	if d.Experiences == nil {
		ie.add(CategoryExperiences, -1, missing)
	}
	if d.Education == nil {
		ie.add(CategoryEducation, -1, missing)
	}
	if d.About == nil {
		ie.add(CategoryAbout, -1, errors.New("is required"))
	}

	for i := range d.Projects {
		if err := d.Projects[i].ValidateStored(); err != nil {
			ie.add(CategoryProjects, i, err)
		}
	}
	for i := range d.Skills {
		if err := d.Skills[i].ValidateStored(); err != nil {
			ie.add(CategorySkills, i, err)
		}
	}
	for i := range d.Experiences {
		if err := d.Experiences[i].ValidateStored(); err != nil {
			ie.add(CategoryExperiences, i, err)
		}
	}
	for i := range d.Education {
		if err := d.Education[i].ValidateStored(); err != nil {
			ie.add(CategoryEducation, i, err)
		}
	}
	if d.About != nil {
		if err := d.About.Validate(); err != nil {
			ie.add(CategoryAbout, 0, err)
		}
	}

	if len(ie.Issues) > 0 {
		return ie
	}
	return nil
}

// Normalize replaces nil lists with empty ones so documents serialize stably.
func (d *ExportDocument) Normalize() {
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Experiences == nil {
		d.Experiences = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	for i := range d.Projects {
		d.Projects[i] = d.Projects[i].Clone()
	}
	for i := range d.Experiences {
		d.Experiences[i] = d.Experiences[i].Clone()
	}
	for i := range d.Education {
		d.Education[i] = d.Education[i].Clone()
	}
	if d.About != nil {
		about := d.About.Clone()
		d.About = &about
	}
}
