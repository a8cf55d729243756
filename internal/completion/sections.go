package completion

import (
	"github.com/kindredapp/kindred-backend/internal/domain"
	"github.com/kindredapp/kindred-backend/internal/questionnaire"
)

// Section names; shared with the wizard's step-to-section mapping.
const (
	SectionBasicInfo          = "Basic Info"
	SectionPreferences        = "Preferences"
	SectionInterests          = "Interests"
	SectionPersonality        = "Personality"
	SectionPartnerPreferences = "Partner Preferences"
	SectionLifestyle          = "Lifestyle"
	SectionSocialLinks        = "Social Links"
	SectionLiveMedia          = "Live Media"
)

// DefaultRegistry is the authoritative weight table. Both the aggregate
// score and the wizard's cumulative step progress derive from it, so the
// two views can never drift apart.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		Section{
			Name:       SectionBasicInfo,
			Weight:     5,
			Required:   true,
			IsComplete: basicInfoComplete,
			Percent: func(p *domain.ProfileData) int {
				return ratio(countTrue(
					p.FullName != "",
					p.BirthDate != nil,
					p.Gender != "",
					len(p.Photos) > 0,
				), 4)
			},
		},
		Section{
			Name:       SectionPreferences,
			Weight:     10,
			Required:   true,
			IsComplete: preferencesComplete,
			Percent: func(p *domain.ProfileData) int {
				return ratio(countTrue(
					len(p.ShowMe) > 0,
					p.LookingFor != "",
					p.AgeRange.Valid(),
					p.MaxDistanceKm > 0,
				), 4)
			},
		},
		Section{
			Name:     SectionInterests,
			Weight:   10,
			Required: true,
			IsComplete: func(p *domain.ProfileData) bool {
				return len(p.Interests) > 0
			},
			Percent: func(p *domain.ProfileData) int {
				return ratio(len(p.Interests), domain.MaxInterests)
			},
		},
		Section{
			Name:     SectionPersonality,
			Weight:   10,
			Required: true,
			IsComplete: func(p *domain.ProfileData) bool {
				return answeredPrompts(p) > 0
			},
			Percent: func(p *domain.ProfileData) int {
				return ratio(answeredPrompts(p), domain.MaxPrompts)
			},
		},
		Section{
			Name:     SectionPartnerPreferences,
			Weight:   20,
			Required: true,
			IsComplete: func(p *domain.ProfileData) bool {
				return p.AnsweredPartnerQuestions() >= questionnaire.RequiredAnswers
			},
			Percent: func(p *domain.ProfileData) int {
				return ratio(p.AnsweredPartnerQuestions(), questionnaire.QuestionCount())
			},
		},
		Section{
			Name:     SectionLifestyle,
			Weight:   15,
			Required: false,
			IsComplete: func(p *domain.ProfileData) bool {
				return lifestyleFields(p) > 0
			},
			Percent: func(p *domain.ProfileData) int {
				return ratio(lifestyleFields(p), 7)
			},
		},
		Section{
			Name:     SectionSocialLinks,
			Weight:   10,
			Required: false,
			IsComplete: func(p *domain.ProfileData) bool {
				return linkedPlatforms(p) > 0
			},
			Percent: func(p *domain.ProfileData) int {
				return ratio(linkedPlatforms(p), domain.MaxSocialLinks)
			},
		},
		Section{
			Name:     SectionLiveMedia,
			Weight:   20,
			Required: false,
			IsComplete: func(p *domain.ProfileData) bool {
				return p.IntroVideoURL != "" && p.LivePhotoURL != ""
			},
			Percent: func(p *domain.ProfileData) int {
				return ratio(countTrue(p.IntroVideoURL != "", p.LivePhotoURL != ""), 2)
			},
		},
	)
	if err != nil {
		panic(err)
	}
	return r
}

func basicInfoComplete(p *domain.ProfileData) bool {
	return p.FullName != "" && p.BirthDate != nil && p.Gender != "" && len(p.Photos) > 0
}

func preferencesComplete(p *domain.ProfileData) bool {
	return len(p.ShowMe) > 0 && p.LookingFor != "" && p.AgeRange.Valid() && p.MaxDistanceKm > 0
}

func answeredPrompts(p *domain.ProfileData) int {
	n := 0
	for _, pr := range p.Prompts {
		if pr.Answer != "" {
			n++
		}
	}
	return n
}

func lifestyleFields(p *domain.ProfileData) int {
	return countTrue(
		p.JobTitle != "",
		p.Education != "",
		p.Drinking != "",
		p.Smoking != "",
		p.Religion != "",
		p.Zodiac != "",
		p.Politics != "",
	)
}

func linkedPlatforms(p *domain.ProfileData) int {
	n := 0
	for _, url := range p.SocialLinks {
		if url != "" {
			n++
		}
	}
	if n > domain.MaxSocialLinks {
		n = domain.MaxSocialLinks
	}
	return n
}

func countTrue(conds ...bool) int {
	n := 0
	for _, c := range conds {
		if c {
			n++
		}
	}
	return n
}
