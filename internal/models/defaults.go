package models

// DefaultDocument is the bundled dataset used when a category has never been
// stored or its stored value cannot be read. Collections start empty.
func DefaultDocument() *ExportDocument {
	about := DefaultAbout()
	return &ExportDocument{
		Projects:    []Project{},
		Skills:      []Skill{},
		Experiences: []Experience{},
		Education:   []Education{},
		About:       &about,
	}
}
