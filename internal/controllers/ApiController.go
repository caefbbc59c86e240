package controllers

import (
	"errors"
	"net/http"
	"portfolio/internal/providers"
	"portfolio/internal/services"
	"strconv"

	json "github.com/goccy/go-json"
)

// ApiController serves the public, read-only content endpoints.
type ApiController struct {
	logger  providers.Logger
	service services.ContentServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.ContentServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

var errNotFound = errors.New("not found")

// cacheKey ties a cached response to the content version it was computed
// from. A response computed before a mutation is never served after it.
func cacheKey(name string, version uint64) string {
	return name + "@" + strconv.FormatUint(version, 10)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, name string, compute func() (any, error)) {
	key := cacheKey(name, ac.service.Version())
	if data, ok := ac.cache.Get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if errors.Is(err, errNotFound) {
		writeNotFound(w)
		return
	}
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(key, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func byID[T any](find func(string) (T, bool), id string) func() (any, error) {
	return func() (any, error) {
		v, ok := find(id)
		if !ok {
			return nil, errNotFound
		}
		return v, nil
	}
}

func (ac *ApiController) GetContent(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "content", func() (any, error) {
		return ac.service.Snapshot(), nil
	})
}

func (ac *ApiController) GetProjects(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "projects", func() (any, error) {
		return ac.service.Projects(), nil
	})
}

func (ac *ApiController) GetProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ac.serveFromCacheOrCompute(w, "project:"+id, byID(ac.service.Project, id))
}

func (ac *ApiController) GetSkills(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "skills", func() (any, error) {
		return ac.service.Skills(), nil
	})
}

func (ac *ApiController) GetSkill(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ac.serveFromCacheOrCompute(w, "skill:"+id, byID(ac.service.Skill, id))
}

func (ac *ApiController) GetExperiences(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "experiences", func() (any, error) {
		return ac.service.Experiences(), nil
	})
}

func (ac *ApiController) GetExperience(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ac.serveFromCacheOrCompute(w, "experience:"+id, byID(ac.service.ExperienceByID, id))
}

func (ac *ApiController) GetEducation(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "education", func() (any, error) {
		return ac.service.Education(), nil
	})
}

func (ac *ApiController) GetEducationEntry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ac.serveFromCacheOrCompute(w, "education:"+id, byID(ac.service.EducationByID, id))
}

func (ac *ApiController) GetAbout(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "about", func() (any, error) {
		return ac.service.About(), nil
	})
}
