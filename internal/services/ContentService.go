package services

import (
	"errors"
	"fmt"
	"portfolio/internal/models"
	"portfolio/internal/providers"
	"portfolio/internal/storage"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

type ChangeListener func(category string)

type ContentServiceInterface interface {
	Hydrate()
	Replace(doc *models.ExportDocument) error
	Reset() error
	Subscribe(fn ChangeListener)
	Version() uint64

	Projects() []models.Project
	Project(id string) (models.Project, bool)
	AddProject(in models.ProjectInput) (models.Project, error)
	UpdateProject(id string, patch models.ProjectPatch) (models.Project, bool, error)
	DeleteProject(id string) bool

	Skills() []models.Skill
	Skill(id string) (models.Skill, bool)
	AddSkill(in models.SkillInput) (models.Skill, error)
	UpdateSkill(id string, patch models.SkillPatch) (models.Skill, bool, error)
	DeleteSkill(id string) bool

	Experiences() []models.Experience
	ExperienceByID(id string) (models.Experience, bool)
	AddExperience(in models.ExperienceInput) (models.Experience, error)
	UpdateExperience(id string, patch models.ExperiencePatch) (models.Experience, bool, error)
	DeleteExperience(id string) bool

	Education() []models.Education
	EducationByID(id string) (models.Education, bool)
	AddEducation(in models.EducationInput) (models.Education, error)
	UpdateEducation(id string, patch models.EducationPatch) (models.Education, bool, error)
	DeleteEducation(id string) bool

	About() models.AboutSection
	UpdateAbout(patch models.AboutPatch) (models.AboutSection, error)
	ResetAbout() models.AboutSection

	Snapshot() *models.ExportDocument
	Counts() models.Counts
}

// ContentService is the in-memory content store. Every mutation rewrites the
// whole affected category to the key-value store before the lock is released.
// Mirror failures are logged and counted; memory stays authoritative.
type ContentService struct {
	mu      sync.RWMutex
	store   storage.KeyValueStore
	logger  providers.Logger
	metrics providers.MetricsProviderInterface

	now   func() time.Time
	newID func() string

	projects    []models.Project
	skills      []models.Skill
	experiences []models.Experience
	education   []models.Education
	about       models.AboutSection

	// version changes with every mutation and reload, before s.mu is released.
	version atomic.Uint64

	listenersMu sync.RWMutex
	listeners   []ChangeListener
}

func NewContentService(store storage.KeyValueStore, logger providers.Logger, metrics providers.MetricsProviderInterface) ContentServiceInterface {
	s := &ContentService{
		store:   store,
		logger:  logger,
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   NewID,
	}
	s.Hydrate()
	return s
}

// Hydrate reloads every category from the key-value store. Each category
// falls back to the bundled default on its own.
func (s *ContentService) Hydrate() {
	s.mu.Lock()
	counts := s.hydrateLocked()
	s.mu.Unlock()

	s.changedAll(counts)
}

// Replace writes every category of doc to the store and reloads from it.
// Mutations wait until the reload is done. A failed write restores the
// keys written before it.
func (s *ContentService) Replace(doc *models.ExportDocument) error {
	entries := []struct {
		key   string
		value any
	}{
		{storage.KeyProjects, doc.Projects},
		{storage.KeySkills, doc.Skills},
		{storage.KeyExperiences, doc.Experiences},
		{storage.KeyEducation, doc.Education},
		{storage.KeyAbout, doc.About},
	}
	encoded := make(map[string][]byte, len(entries))
	for _, e := range entries {
		data, err := json.Marshal(e.value)
		if err != nil {
			return fmt.Errorf("unable to encode %s: %w", e.key, err)
		}
		encoded[e.key] = data
	}

	s.mu.Lock()
	var previous []storedValue
	var err error
	for _, key := range storage.ContentKeys {
		prev, getErr := s.readStored(key)
		if getErr != nil {
			err = fmt.Errorf("unable to read %s: %w", key, getErr)
			break
		}
		previous = append(previous, prev)
		if setErr := s.store.Set(key, encoded[key]); setErr != nil {
			err = fmt.Errorf("unable to write %s: %w", key, setErr)
			break
		}
	}
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Replace aborted, restoring previous content: %s", err)
		s.restoreStored(previous)
	}
	counts := s.hydrateLocked()
	s.mu.Unlock()

	s.changedAll(counts)
	return err
}

// Reset deletes every content key and stores the default about section.
// Collections reload empty.
func (s *ContentService) Reset() error {
	s.mu.Lock()
	var errs []error
	for _, key := range storage.ContentKeys {
		if err := s.store.Delete(key); err != nil {
			errs = append(errs, fmt.Errorf("unable to delete %s: %w", key, err))
		}
	}
	s.mirror(storage.KeyAbout, models.DefaultAbout())
	counts := s.hydrateLocked()
	s.mu.Unlock()

	s.changedAll(counts)
	return errors.Join(errs...)
}

func (s *ContentService) Version() uint64 {
	return s.version.Load()
}

type storedValue struct {
	key     string
	data    []byte
	present bool
}

func (s *ContentService) readStored(key string) (storedValue, error) {
	data, err := s.store.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return storedValue{key: key}, nil
	}
	if err != nil {
		return storedValue{}, err
	}
	return storedValue{key: key, data: data, present: true}, nil
}

// restoreStored puts back values saved by readStored, newest first. Caller holds s.mu.
func (s *ContentService) restoreStored(values []storedValue) {
	for i := len(values) - 1; i >= 0; i-- {
		v := values[i]
		var err error
		if v.present {
			err = s.store.Set(v.key, v.data)
		} else {
			err = s.store.Delete(v.key)
		}
		if err != nil {
			s.metrics.IncPersistenceFailures(v.key)
			s.logger.Errorf(providers.TypeApp, "Unable to restore %s: %s", v.key, err)
		}
	}
}

// hydrateLocked reads every category and swaps it in. Caller holds s.mu.
func (s *ContentService) hydrateLocked() models.Counts {
	defaults := models.DefaultDocument()

	about := hydrate(s, storage.KeyAbout, *defaults.About)
	doc := &models.ExportDocument{
		Projects:    hydrate(s, storage.KeyProjects, defaults.Projects),
		Skills:      hydrate(s, storage.KeySkills, defaults.Skills),
		Experiences: hydrate(s, storage.KeyExperiences, defaults.Experiences),
		Education:   hydrate(s, storage.KeyEducation, defaults.Education),
		About:       &about,
	}
	doc.Normalize()
	if err := doc.About.Validate(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Invalid about section, using defaults: %s", err)
		doc.About = defaults.About
	}

	s.projects = doc.Projects
	s.skills = doc.Skills
	s.experiences = doc.Experiences
	s.education = doc.Education
	s.about = *doc.About
	s.version.Add(1)

	counts := s.countsLocked()
	s.logger.Infof(providers.TypeApp, "Content hydrated: %d projects, %d skills, %d experiences, %d education",
		counts.Projects, counts.Skills, counts.Experiences, counts.Education)
	return counts
}

func hydrate[T any](s *ContentService, key string, fallback T) T {
	data, err := s.store.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorf(providers.TypeApp, "Unable to read %s, using defaults: %s", key, err)
		}
		return fallback
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Errorf(providers.TypeApp, "Unable to parse %s, using defaults: %s", key, err)
		return fallback
	}
	return value
}

// mirror serializes value under key and bumps the content version. Caller holds s.mu.
func (s *ContentService) mirror(key string, value any) {
	s.version.Add(1)
	start := time.Now()
	data, err := json.Marshal(value)
	if err == nil {
		err = s.store.Set(key, data)
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		s.metrics.IncPersistenceFailures(key)
		s.logger.Errorf(providers.TypeApp, "Unable to persist %s: %s", key, err)
	}
}

func (s *ContentService) Subscribe(fn ChangeListener) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *ContentService) changed(category string, count int) {
	s.metrics.SetEntitiesTotal(category, count)

	s.listenersMu.RLock()
	listeners := slices.Clone(s.listeners)
	s.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(category)
	}
}

func (s *ContentService) changedAll(counts models.Counts) {
	s.changed(models.CategoryProjects, counts.Projects)
	s.changed(models.CategorySkills, counts.Skills)
	s.changed(models.CategoryExperiences, counts.Experiences)
	s.changed(models.CategoryEducation, counts.Education)
	s.changed(models.CategoryAbout, 1)
}

func indexByID[T any](items []T, id string, idOf func(*T) string) int {
	for i := range items {
		if idOf(&items[i]) == id {
			return i
		}
	}
	return -1
}

func projectID(p *models.Project) string       { return p.ID }
func skillID(sk *models.Skill) string          { return sk.ID }
func experienceID(e *models.Experience) string { return e.ID }
func educationID(e *models.Education) string   { return e.ID }

// --- projects ---

func (s *ContentService) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

func (s *ContentService) Project(id string) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := indexByID(s.projects, id, projectID)
	if idx < 0 {
		return models.Project{}, false
	}
	return s.projects[idx].Clone(), true
}

func (s *ContentService) AddProject(in models.ProjectInput) (models.Project, error) {
	p := models.NewProject(in)
	if err := p.Validate(); err != nil {
		return models.Project{}, err
	}

	s.mu.Lock()
	now := s.now()
	p.ID = s.newID()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.projects = append(s.projects, p)
	s.mirror(storage.KeyProjects, s.projects)
	count := len(s.projects)
	s.mu.Unlock()

	s.changed(models.CategoryProjects, count)
	return p.Clone(), nil
}

func (s *ContentService) UpdateProject(id string, patch models.ProjectPatch) (models.Project, bool, error) {
	s.mu.Lock()
	idx := indexByID(s.projects, id, projectID)
	if idx < 0 {
		s.mu.Unlock()
		return models.Project{}, false, nil
	}
	merged := s.projects[idx].Apply(patch)
	if err := merged.Validate(); err != nil {
		s.mu.Unlock()
		return models.Project{}, true, err
	}
	merged.UpdatedAt = s.now()
	s.projects[idx] = merged
	s.mirror(storage.KeyProjects, s.projects)
	count := len(s.projects)
	s.mu.Unlock()

	s.changed(models.CategoryProjects, count)
	return merged.Clone(), true, nil
}

func (s *ContentService) DeleteProject(id string) bool {
	s.mu.Lock()
	idx := indexByID(s.projects, id, projectID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.projects = slices.Delete(s.projects, idx, idx+1)
	s.mirror(storage.KeyProjects, s.projects)
	count := len(s.projects)
	s.mu.Unlock()

	s.changed(models.CategoryProjects, count)
	return true
}

// --- skills ---

func (s *ContentService) Skills() []models.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.skills)
}

func (s *ContentService) Skill(id string) (models.Skill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := indexByID(s.skills, id, skillID)
	if idx < 0 {
		return models.Skill{}, false
	}
	return s.skills[idx], true
}

func (s *ContentService) AddSkill(in models.SkillInput) (models.Skill, error) {
	sk := models.NewSkill(in)
	if err := sk.Validate(); err != nil {
		return models.Skill{}, err
	}

	s.mu.Lock()
	now := s.now()
	sk.ID = s.newID()
	sk.CreatedAt = now
	sk.UpdatedAt = now
	s.skills = append(s.skills, sk)
	s.mirror(storage.KeySkills, s.skills)
	count := len(s.skills)
	s.mu.Unlock()

	s.changed(models.CategorySkills, count)
	return sk, nil
}

func (s *ContentService) UpdateSkill(id string, patch models.SkillPatch) (models.Skill, bool, error) {
	s.mu.Lock()
	idx := indexByID(s.skills, id, skillID)
	if idx < 0 {
		s.mu.Unlock()
		return models.Skill{}, false, nil
	}
	merged := s.skills[idx].Apply(patch)
	if err := merged.Validate(); err != nil {
		s.mu.Unlock()
		return models.Skill{}, true, err
	}
	merged.UpdatedAt = s.now()
	s.skills[idx] = merged
	s.mirror(storage.KeySkills, s.skills)
	count := len(s.skills)
	s.mu.Unlock()

	s.changed(models.CategorySkills, count)
	return merged, true, nil
}

func (s *ContentService) DeleteSkill(id string) bool {
	s.mu.Lock()
	idx := indexByID(s.skills, id, skillID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.skills = slices.Delete(s.skills, idx, idx+1)
	s.mirror(storage.KeySkills, s.skills)
	count := len(s.skills)
	s.mu.Unlock()

	s.changed(models.CategorySkills, count)
	return true
}

// --- experiences ---

func (s *ContentService) Experiences() []models.Experience {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Experience, len(s.experiences))
	for i, e := range s.experiences {
		out[i] = e.Clone()
	}
	return out
}

func (s *ContentService) ExperienceByID(id string) (models.Experience, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := indexByID(s.experiences, id, experienceID)
	if idx < 0 {
		return models.Experience{}, false
	}
	return s.experiences[idx].Clone(), true
}

// AddExperience rejects input missing title, company, location, startDate
// or description, naming the first missing field.
func (s *ContentService) AddExperience(in models.ExperienceInput) (models.Experience, error) {
	e := models.NewExperience(in)
	if err := e.Validate(); err != nil {
		return models.Experience{}, err
	}

	s.mu.Lock()
	now := s.now()
	e.ID = s.newID()
	e.CreatedAt = now
	e.UpdatedAt = now
	s.experiences = append(s.experiences, e)
	s.mirror(storage.KeyExperiences, s.experiences)
	count := len(s.experiences)
	s.mu.Unlock()

	s.changed(models.CategoryExperiences, count)
	return e.Clone(), nil
}

func (s *ContentService) UpdateExperience(id string, patch models.ExperiencePatch) (models.Experience, bool, error) {
	s.mu.Lock()
	idx := indexByID(s.experiences, id, experienceID)
	if idx < 0 {
		s.mu.Unlock()
		return models.Experience{}, false, nil
	}
	merged := s.experiences[idx].Apply(patch)
	if err := merged.Validate(); err != nil {
		s.mu.Unlock()
		return models.Experience{}, true, err
	}
	merged.UpdatedAt = s.now()
	s.experiences[idx] = merged
	s.mirror(storage.KeyExperiences, s.experiences)
	count := len(s.experiences)
	s.mu.Unlock()

	s.changed(models.CategoryExperiences, count)
	return merged.Clone(), true, nil
}

func (s *ContentService) DeleteExperience(id string) bool {
	s.mu.Lock()
	idx := indexByID(s.experiences, id, experienceID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.experiences = slices.Delete(s.experiences, idx, idx+1)
	s.mirror(storage.KeyExperiences, s.experiences)
	count := len(s.experiences)
	s.mu.Unlock()

	s.changed(models.CategoryExperiences, count)
	return true
}

// --- education ---

func (s *ContentService) Education() []models.Education {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Education, len(s.education))
	for i, e := range s.education {
		out[i] = e.Clone()
	}
	return out
}

func (s *ContentService) EducationByID(id string) (models.Education, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := indexByID(s.education, id, educationID)
	if idx < 0 {
		return models.Education{}, false
	}
	return s.education[idx].Clone(), true
}

func (s *ContentService) AddEducation(in models.EducationInput) (models.Education, error) {
	e := models.NewEducation(in)
	if err := e.Validate(); err != nil {
		return models.Education{}, err
	}

	s.mu.Lock()
	now := s.now()
	e.ID = s.newID()
	e.CreatedAt = now
	e.UpdatedAt = now
	s.education = append(s.education, e)
	s.mirror(storage.KeyEducation, s.education)
	count := len(s.education)
	s.mu.Unlock()

	s.changed(models.CategoryEducation, count)
	return e.Clone(), nil
}

func (s *ContentService) UpdateEducation(id string, patch models.EducationPatch) (models.Education, bool, error) {
	s.mu.Lock()
	idx := indexByID(s.education, id, educationID)
	if idx < 0 {
		s.mu.Unlock()
		return models.Education{}, false, nil
	}
	merged := s.education[idx].Apply(patch)
	if err := merged.Validate(); err != nil {
		s.mu.Unlock()
		return models.Education{}, true, err
	}
	merged.UpdatedAt = s.now()
	s.education[idx] = merged
	s.mirror(storage.KeyEducation, s.education)
	count := len(s.education)
	s.mu.Unlock()

	s.changed(models.CategoryEducation, count)
	return merged.Clone(), true, nil
}

func (s *ContentService) DeleteEducation(id string) bool {
	s.mu.Lock()
	idx := indexByID(s.education, id, educationID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.education = slices.Delete(s.education, idx, idx+1)
	s.mirror(storage.KeyEducation, s.education)
	count := len(s.education)
	s.mu.Unlock()

	s.changed(models.CategoryEducation, count)
	return true
}

// --- about ---

func (s *ContentService) About() models.AboutSection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.about.Clone()
}

func (s *ContentService) UpdateAbout(patch models.AboutPatch) (models.AboutSection, error) {
	s.mu.Lock()
	merged := s.about.Apply(patch)
	if err := merged.Validate(); err != nil {
		s.mu.Unlock()
		return models.AboutSection{}, err
	}
	s.about = merged
	s.mirror(storage.KeyAbout, s.about)
	s.mu.Unlock()

	s.changed(models.CategoryAbout, 1)
	return merged.Clone(), nil
}

func (s *ContentService) ResetAbout() models.AboutSection {
	s.mu.Lock()
	s.about = models.DefaultAbout()
	s.mirror(storage.KeyAbout, s.about)
	about := s.about.Clone()
	s.mu.Unlock()

	s.changed(models.CategoryAbout, 1)
	return about
}

// --- whole store ---

func (s *ContentService) Snapshot() *models.ExportDocument {
	s.mu.RLock()
	about := s.about
	doc := &models.ExportDocument{
		Projects:    slices.Clone(s.projects),
		Skills:      slices.Clone(s.skills),
		Experiences: slices.Clone(s.experiences),
		Education:   slices.Clone(s.education),
		About:       &about,
	}
	s.mu.RUnlock()

	doc.Normalize()
	return doc
}

func (s *ContentService) Counts() models.Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countsLocked()
}

func (s *ContentService) countsLocked() models.Counts {
	return models.Counts{
		Projects:    len(s.projects),
		Skills:      len(s.skills),
		Experiences: len(s.experiences),
		Education:   len(s.education),
	}
}
