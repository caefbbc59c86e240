package models

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AboutSection is the singleton "about me" block. It has no id and no timestamps.
type AboutSection struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
	Highlights []string `json:"highlights"`
	Stats      []Stat   `json:"stats"`
}

type AboutPatch struct {
	Heading    *string   `json:"heading"`
	Paragraphs *[]string `json:"paragraphs"`
	Highlights *[]string `json:"highlights"`
	Stats      *[]Stat   `json:"stats"`
}

// DefaultAbout is the about section used on first run and after a reset.
func DefaultAbout() AboutSection {
	return AboutSection{
		Heading: "About Me",
		Paragraphs: []string{
			"I am a software engineer who enjoys building reliable, well-tested products end to end.",
			"Outside of work I contribute to open source and write about what I learn along the way.",
		},
		Highlights: []string{"Problem Solver", "Team Player", "Lifelong Learner"},
		Stats: []Stat{
			{Label: "Years Experience", Value: "0+"},
			{Label: "Projects Completed", Value: "0"},
			{Label: "Technologies", Value: "0"},
		},
	}
}

func (a AboutSection) Apply(patch AboutPatch) AboutSection {
	setString(&a.Heading, patch.Heading)
	setStrings(&a.Paragraphs, patch.Paragraphs)
	setStrings(&a.Highlights, patch.Highlights)
	if patch.Stats != nil {
		a.Stats = cloneStats(*patch.Stats)
	}
	return a
}

func (a AboutSection) Clone() AboutSection {
	a.Paragraphs = cloneStrings(a.Paragraphs)
	a.Highlights = cloneStrings(a.Highlights)
	a.Stats = cloneStats(a.Stats)
	return a
}

func (a *AboutSection) Validate() error {
	if a.Heading == "" {
		return &ValidationError{Entity: "about", Field: "heading", Message: "is required"}
	}
	if a.Paragraphs == nil {
		return &ValidationError{Entity: "about", Field: "paragraphs", Message: "must be an array"}
	}
	if a.Highlights == nil {
		return &ValidationError{Entity: "about", Field: "highlights", Message: "must be an array"}
	}
	if a.Stats == nil {
		return &ValidationError{Entity: "about", Field: "stats", Message: "must be an array"}
	}
	for _, s := range a.Stats {
		if s.Label == "" {
			return &ValidationError{Entity: "about", Field: "stats", Message: "every stat needs a label"}
		}
	}
	return nil
}

func cloneStats(s []Stat) []Stat {
	if s == nil {
		return []Stat{}
	}
	out := make([]Stat, len(s))
	copy(out, s)
	return out
}
