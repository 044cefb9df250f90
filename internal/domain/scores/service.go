// Package scores exposes the calculation engine over HTTP.
package scores

import (
	"sort"
	"strings"

	"github.com/clinscore/clinscore/internal/registry"
)

type Service struct {
	reg *registry.Registry
}

func NewService(reg *registry.Registry) *Service {
	return &Service{reg: reg}
}

func (s *Service) Calculate(scoreID string, params registry.Params) (*registry.Result, error) {
	return s.reg.Calculate(scoreID, params)
}

func (s *Service) Get(scoreID string) (registry.Definition, bool) {
	return s.reg.Lookup(scoreID)
}

// List returns definitions filtered by category and free-text search.
// Search matches against the score ID, title and description,
// case-insensitively.
func (s *Service) List(category, search string) []registry.Definition {
	defs := s.reg.Definitions()
	if category == "" && search == "" {
		return defs
	}
	category = strings.ToLower(category)
	search = strings.ToLower(search)

	out := defs[:0]
	for _, def := range defs {
		if category != "" && strings.ToLower(def.Category) != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(def.ID), search) &&
			!strings.Contains(strings.ToLower(def.Title), search) &&
			!strings.Contains(strings.ToLower(def.Description), search) {
			continue
		}
		out = append(out, def)
	}
	return out
}

// Categories returns category names with score counts, sorted by name.
func (s *Service) Categories() []CategoryInfo {
	counts := s.reg.Categories()
	out := make([]CategoryInfo, 0, len(counts))
	for name, n := range counts {
		out = append(out, CategoryInfo{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

type CategoryInfo struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
