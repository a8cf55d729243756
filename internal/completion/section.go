// Package completion scores how complete a profile is. A registry of
// weighted sections each scores itself against the record; the aggregate
// scorer folds them into one percentage and a required-sections-met boolean.
package completion

import (
	"fmt"

	"github.com/kindredapp/kindred-backend/internal/domain"
)

// Section is one independently scored facet of a profile.
//
// IsComplete and Percent are two different thresholds against the same data:
// a section can meet its completion bar while scoring under 100 (partner
// preferences are complete at seventeen answers out of twenty-one).
type Section struct {
	Name     string
	Weight   int
	Required bool

	IsComplete func(*domain.ProfileData) bool
	Percent    func(*domain.ProfileData) int
}

// SectionScore is one section's evaluation against a record.
type SectionScore struct {
	Name     string `json:"name"`
	Weight   int    `json:"weight"`
	Required bool   `json:"required"`
	Percent  int    `json:"percent"`
	Complete bool   `json:"complete"`
}

// Score is the aggregate view handed to the UI layer.
type Score struct {
	Overall  int            `json:"overall"`
	Sections []SectionScore `json:"sections"`
	Complete bool           `json:"complete"`
}

// Registry holds a validated section set.
type Registry struct {
	sections []Section
}

// NewRegistry validates and builds a registry. Weights must sum to exactly
// 100; anything else is a programmer error and fails here rather than
// silently skewing every score.
func NewRegistry(sections ...Section) (*Registry, error) {
	sum := 0
	seen := make(map[string]bool, len(sections))
	for _, s := range sections {
		if s.Name == "" {
			return nil, fmt.Errorf("section with empty name")
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate section %q", s.Name)
		}
		seen[s.Name] = true
		if s.Weight < 0 {
			return nil, fmt.Errorf("section %q has negative weight %d", s.Name, s.Weight)
		}
		if s.IsComplete == nil || s.Percent == nil {
			return nil, fmt.Errorf("section %q is missing a scoring function", s.Name)
		}
		sum += s.Weight
	}
	if sum != 100 {
		return nil, fmt.Errorf("section weights sum to %d, want 100", sum)
	}
	return &Registry{sections: sections}, nil
}

// Sections returns the registered sections in order.
func (r *Registry) Sections() []Section {
	return r.sections
}

// Weight returns the weight of a named section, or 0 if unknown.
func (r *Registry) Weight(name string) int {
	for _, s := range r.sections {
		if s.Name == name {
			return s.Weight
		}
	}
	return 0
}

// Score evaluates every section against the record. Pure and linear in the
// number of sections; safe to call on every edit.
func (r *Registry) Score(p *domain.ProfileData) Score {
	out := Score{
		Sections: make([]SectionScore, 0, len(r.sections)),
		Complete: true,
	}
	weighted := 0
	for _, s := range r.sections {
		pct := clampPercent(s.Percent(p))
		complete := s.IsComplete(p)
		weighted += pct * s.Weight
		if s.Required && !complete {
			out.Complete = false
		}
		out.Sections = append(out.Sections, SectionScore{
			Name:     s.Name,
			Weight:   s.Weight,
			Required: s.Required,
			Percent:  pct,
			Complete: complete,
		})
	}
	out.Overall = (weighted + 50) / 100
	return out
}

func clampPercent(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ratio converts populated/total subfield counts into a round-half-up
// percentage. A zero denominator scores 0, never a divide-by-zero.
func ratio(populated, total int) int {
	if total <= 0 {
		return 0
	}
	if populated < 0 {
		populated = 0
	}
	if populated > total {
		populated = total
	}
	return (populated*200 + total) / (2 * total)
}
