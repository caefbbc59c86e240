package models

import "time"

type Skill struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Level             int       `json:"level" validate:"min:0|max:100"`
	Category          string    `json:"category"`
	Description       string    `json:"description"`
	YearsOfExperience int       `json:"yearsOfExperience" validate:"min:0"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type SkillInput struct {
	Name              string `json:"name"`
	Level             int    `json:"level"`
	Category          string `json:"category"`
	Description       string `json:"description"`
	YearsOfExperience int    `json:"yearsOfExperience"`
}

type SkillPatch struct {
	Name              *string `json:"name"`
	Level             *int    `json:"level"`
	Category          *string `json:"category"`
	Description       *string `json:"description"`
	YearsOfExperience *int    `json:"yearsOfExperience"`
}

func NewSkill(in SkillInput) Skill {
	return Skill{
		Name:              in.Name,
		Level:             in.Level,
		Category:          in.Category,
		Description:       in.Description,
		YearsOfExperience: in.YearsOfExperience,
	}
}

func (s Skill) Apply(patch SkillPatch) Skill {
	setString(&s.Name, patch.Name)
	setString(&s.Category, patch.Category)
	setString(&s.Description, patch.Description)
	if patch.Level != nil {
		s.Level = *patch.Level
	}
	if patch.YearsOfExperience != nil {
		s.YearsOfExperience = *patch.YearsOfExperience
	}
	return s
}

func (s *Skill) Validate() error {
	err := requireStrings("skill",
		requiredField{"name", s.Name},
		requiredField{"category", s.Category},
	)
	if err != nil {
		return err
	}
	return checkRules("skill", s)
}

func (s *Skill) ValidateStored() error {
	if s.ID == "" {
		return &ValidationError{Entity: "skill", Field: "id", Message: "is required"}
	}
	if err := s.Validate(); err != nil {
		return err
	}
	return requireTimestamps("skill", s.CreatedAt, s.UpdatedAt)
}
