package completion

import (
	"fmt"
	"testing"
	"time"

	"github.com/kindredapp/kindred-backend/internal/domain"
	"github.com/kindredapp/kindred-backend/internal/questionnaire"
)

func birthDate() *time.Time {
	t := time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)
	return &t
}

func basicOnlyProfile() *domain.ProfileData {
	p := domain.NewProfileData(1)
	p.FullName = "Ada Quinn"
	p.BirthDate = birthDate()
	p.Gender = "woman"
	p.Photos = []string{"photo-1"}
	return p
}

func answerPartnerQuestions(p *domain.ProfileData, n int) {
	for i := 0; i < n; i++ {
		p.SetPartnerAnswer(fmt.Sprintf("q-%d", i), domain.SingleAnswer("yes"))
	}
}

func fullProfile() *domain.ProfileData {
	p := basicOnlyProfile()
	p.Location = "Lisbon"
	p.ShowMe = []string{"men"}
	p.LookingFor = "Long-term partner"
	p.AgeRange = domain.AgeRange{Min: 25, Max: 35}
	p.MaxDistanceKm = 50
	p.JobTitle = "Engineer"
	p.Education = "MSc"
	p.Drinking = "Socially"
	p.Smoking = "Never"
	p.Religion = "None"
	p.Zodiac = "Aries"
	p.Politics = "Moderate"
	p.Interests = []string{"hiking", "jazz", "cooking", "film", "wine", "travel", "yoga"}
	p.Prompts = []domain.PromptAnswer{
		{Prompt: "A perfect day", Answer: "Starts with coffee"},
		{Prompt: "I geek out on", Answer: "Synthesizers"},
		{Prompt: "Green flags", Answer: "Asks questions"},
	}
	answerPartnerQuestions(p, questionnaire.QuestionCount())
	p.SocialLinks = map[string]string{
		"instagram": "https://instagram.com/ada",
		"spotify":   "https://open.spotify.com/user/ada",
		"tiktok":    "https://tiktok.com/@ada",
		"x":         "https://x.com/ada",
	}
	p.IntroVideoURL = "https://cdn.example.com/intro.mp4"
	p.LivePhotoURL = "https://cdn.example.com/live.jpg"
	return p
}

func TestEmptyProfileScoresZero(t *testing.T) {
	score := DefaultRegistry().Score(domain.NewProfileData(1))
	if score.Overall != 0 {
		t.Fatalf("expected overall 0, got %d", score.Overall)
	}
	if score.Complete {
		t.Fatalf("expected incomplete profile")
	}
}

func TestBasicInfoOnlyScoresItsWeight(t *testing.T) {
	score := DefaultRegistry().Score(basicOnlyProfile())
	if score.Overall != 5 {
		t.Fatalf("expected overall 5, got %d", score.Overall)
	}
	if score.Complete {
		t.Fatalf("expected incomplete profile: required sections unmet")
	}
	for _, s := range score.Sections {
		if s.Name == SectionBasicInfo {
			if s.Percent != 100 || !s.Complete {
				t.Fatalf("expected basic info 100%% complete, got %d%% complete=%v", s.Percent, s.Complete)
			}
		}
	}
}

func TestFullProfileScoresHundred(t *testing.T) {
	score := DefaultRegistry().Score(fullProfile())
	if score.Overall != 100 {
		t.Fatalf("expected overall 100, got %d", score.Overall)
	}
	if !score.Complete {
		t.Fatalf("expected complete profile")
	}
}

func TestPartnerPreferencesThreshold(t *testing.T) {
	reg := DefaultRegistry()

	find := func(score Score) SectionScore {
		for _, s := range score.Sections {
			if s.Name == SectionPartnerPreferences {
				return s
			}
		}
		t.Fatalf("partner preferences section missing")
		return SectionScore{}
	}

	p := domain.NewProfileData(1)
	answerPartnerQuestions(p, questionnaire.RequiredAnswers)
	at := find(reg.Score(p))
	if !at.Complete {
		t.Fatalf("expected section complete at %d answers", questionnaire.RequiredAnswers)
	}
	if at.Percent == 100 {
		t.Fatalf("expected percent below 100 at the completion threshold, got %d", at.Percent)
	}

	p = domain.NewProfileData(1)
	answerPartnerQuestions(p, questionnaire.RequiredAnswers-1)
	below := find(reg.Score(p))
	if below.Complete {
		t.Fatalf("expected section incomplete at %d answers", questionnaire.RequiredAnswers-1)
	}
}

func TestEmptyAnswersDoNotCount(t *testing.T) {
	p := domain.NewProfileData(1)
	p.PartnerAnswers = map[string]domain.Answer{
		"a": domain.SingleAnswer(""),
		"b": domain.MultiAnswer(),
		"c": domain.SingleAnswer("yes"),
	}
	if got := p.AnsweredPartnerQuestions(); got != 1 {
		t.Fatalf("expected 1 counted answer, got %d", got)
	}
}

func TestOptionalSectionsNeverBlockCompleteness(t *testing.T) {
	p := fullProfile()
	p.JobTitle, p.Education, p.Drinking, p.Smoking, p.Religion, p.Zodiac, p.Politics = "", "", "", "", "", "", ""
	p.SocialLinks = nil
	p.IntroVideoURL = ""
	p.LivePhotoURL = ""

	score := DefaultRegistry().Score(p)
	if !score.Complete {
		t.Fatalf("expected complete profile with empty optional sections")
	}
	if score.Overall >= 100 {
		t.Fatalf("expected overall below 100 with empty optional sections, got %d", score.Overall)
	}
}

func TestRequiredSectionBlocksCompleteness(t *testing.T) {
	p := fullProfile()
	p.Interests = nil
	score := DefaultRegistry().Score(p)
	if score.Complete {
		t.Fatalf("expected incomplete profile with a required section unmet")
	}
}

func TestOverallStaysInBounds(t *testing.T) {
	profiles := []*domain.ProfileData{
		domain.NewProfileData(1),
		basicOnlyProfile(),
		fullProfile(),
	}
	for _, p := range profiles {
		score := DefaultRegistry().Score(p)
		if score.Overall < 0 || score.Overall > 100 {
			t.Fatalf("overall %d out of bounds", score.Overall)
		}
		for _, s := range score.Sections {
			if s.Percent < 0 || s.Percent > 100 {
				t.Fatalf("section %q percent %d out of bounds", s.Name, s.Percent)
			}
		}
	}
}

func TestNewRegistryRejectsBadWeights(t *testing.T) {
	noop := func(*domain.ProfileData) bool { return false }
	zero := func(*domain.ProfileData) int { return 0 }

	tests := []struct {
		name     string
		sections []Section
	}{
		{
			name: "sum below 100",
			sections: []Section{
				{Name: "a", Weight: 60, IsComplete: noop, Percent: zero},
				{Name: "b", Weight: 30, IsComplete: noop, Percent: zero},
			},
		},
		{
			name: "sum above 100",
			sections: []Section{
				{Name: "a", Weight: 60, IsComplete: noop, Percent: zero},
				{Name: "b", Weight: 50, IsComplete: noop, Percent: zero},
			},
		},
		{
			name: "duplicate name",
			sections: []Section{
				{Name: "a", Weight: 50, IsComplete: noop, Percent: zero},
				{Name: "a", Weight: 50, IsComplete: noop, Percent: zero},
			},
		},
		{
			name: "missing scorer",
			sections: []Section{
				{Name: "a", Weight: 100},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRegistry(tt.sections...); err == nil {
				t.Fatalf("expected registry validation error")
			}
		})
	}
}

func TestDefaultRegistryWeightsSumToHundred(t *testing.T) {
	sum := 0
	for _, s := range DefaultRegistry().Sections() {
		sum += s.Weight
	}
	if sum != 100 {
		t.Fatalf("expected weights to sum to 100, got %d", sum)
	}
}

func TestRatioRounding(t *testing.T) {
	tests := []struct {
		populated, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{7, 7, 100},
		{9, 7, 100},
	}
	for _, tt := range tests {
		if got := ratio(tt.populated, tt.total); got != tt.want {
			t.Fatalf("ratio(%d, %d) = %d, want %d", tt.populated, tt.total, got, tt.want)
		}
	}
}
