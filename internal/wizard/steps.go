package wizard

import (
	"github.com/kindredapp/kindred-backend/internal/completion"
	"github.com/kindredapp/kindred-backend/internal/domain"
	"github.com/kindredapp/kindred-backend/internal/questionnaire"
)

// Step ids, stable across releases; the mobile client keys its screens on
// them.
const (
	StepBasicInfo          = "basic-info"
	StepPreferences        = "preferences"
	StepInterests          = "interests"
	StepPersonality        = "personality"
	StepPartnerPreferences = "partner-preferences"
	StepLifestyle          = "lifestyle"
	StepSocialLinks        = "social-links"
)

// Steps returns the ordered guided-setup flow. The social-links step carries
// both the Social Links and Live Media section weights; the two are one page
// in the flow even though they score separately.
func Steps() []Step {
	return []Step{
		{
			ID:       StepBasicInfo,
			Title:    "About you",
			Sections: []string{completion.SectionBasicInfo},
			Gate: func(p *domain.ProfileData) bool {
				return p.FullName != "" && p.BirthDate != nil && p.Gender != "" && len(p.Photos) > 0
			},
		},
		{
			ID:       StepPreferences,
			Title:    "Who you want to meet",
			Sections: []string{completion.SectionPreferences},
			Gate: func(p *domain.ProfileData) bool {
				return len(p.ShowMe) > 0 && p.LookingFor != ""
			},
		},
		{
			ID:       StepInterests,
			Title:    "Your interests",
			Sections: []string{completion.SectionInterests},
			Gate: func(p *domain.ProfileData) bool {
				return len(p.Interests) > 0
			},
		},
		{
			ID:       StepPersonality,
			Title:    "Show your personality",
			Sections: []string{completion.SectionPersonality},
			Gate: func(p *domain.ProfileData) bool {
				for _, pr := range p.Prompts {
					if pr.Answer != "" {
						return true
					}
				}
				return false
			},
		},
		{
			ID:       StepPartnerPreferences,
			Title:    "Your ideal partner",
			Sections: []string{completion.SectionPartnerPreferences},
			Gate: func(p *domain.ProfileData) bool {
				return p.AnsweredPartnerQuestions() >= questionnaire.RequiredAnswers
			},
		},
		{
			ID:       StepLifestyle,
			Title:    "Your lifestyle",
			Sections: []string{completion.SectionLifestyle},
		},
		{
			ID:       StepSocialLinks,
			Title:    "Link your socials",
			Sections: []string{completion.SectionSocialLinks, completion.SectionLiveMedia},
		},
	}
}
