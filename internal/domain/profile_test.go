package domain

import (
	"reflect"
	"testing"
	"time"
)

func strPtr(s string) *string       { return &s }
func intPtr(i int) *int             { return &i }
func agePtr(min, max int) *AgeRange { return &AgeRange{Min: min, Max: max} }

func TestApplyMergesFieldLevel(t *testing.T) {
	p := NewProfileData(1)
	p.FullName = "Ada Quinn"
	p.Interests = []string{"jazz"}

	update := &ProfileUpdate{
		Location: strPtr("Lisbon"),
		JobTitle: strPtr("Engineer"),
	}
	if err := update.Apply(p); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if p.Location != "Lisbon" || p.JobTitle != "Engineer" {
		t.Fatalf("expected updated fields, got %q %q", p.Location, p.JobTitle)
	}
	// Untouched fields survive: a partial update must never clobber data
	// entered on another step.
	if p.FullName != "Ada Quinn" {
		t.Fatalf("expected full name untouched, got %q", p.FullName)
	}
	if !reflect.DeepEqual(p.Interests, []string{"jazz"}) {
		t.Fatalf("expected interests untouched, got %v", p.Interests)
	}
}

func TestApplyRejectsInvertedAgeRange(t *testing.T) {
	p := NewProfileData(1)
	p.AgeRange = AgeRange{Min: 25, Max: 35}

	update := &ProfileUpdate{
		AgeRange: agePtr(35, 18),
		Location: strPtr("Porto"),
	}
	if err := update.Apply(p); err != ErrInvalidAgeRange {
		t.Fatalf("expected ErrInvalidAgeRange, got %v", err)
	}
	// A rejected update must leave the whole record untouched.
	if p.AgeRange.Min != 25 || p.AgeRange.Max != 35 {
		t.Fatalf("expected stored range untouched, got %+v", p.AgeRange)
	}
	if p.Location != "" {
		t.Fatalf("expected location untouched, got %q", p.Location)
	}
}

func TestApplyRejectsOverCapLists(t *testing.T) {
	p := NewProfileData(1)
	tooMany := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	if err := (&ProfileUpdate{Interests: &tooMany}).Apply(p); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for %d interests, got %v", len(tooMany), err)
	}

	prompts := make([]PromptAnswer, MaxPrompts+1)
	if err := (&ProfileUpdate{Prompts: &prompts}).Apply(p); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for %d prompts, got %v", len(prompts), err)
	}
}

func TestAgeRangeValid(t *testing.T) {
	tests := []struct {
		min, max int
		want     bool
	}{
		{25, 35, true},
		{18, 18, true},
		{35, 18, false},
		{17, 30, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := (AgeRange{Min: tt.min, Max: tt.max}).Valid(); got != tt.want {
			t.Fatalf("AgeRange{%d, %d}.Valid() = %v, want %v", tt.min, tt.max, got, tt.want)
		}
	}
}

func TestReorderPhotos(t *testing.T) {
	p := NewProfileData(1)
	p.Photos = []string{"a", "b", "c"}

	if err := p.ReorderPhotos([]string{"c", "a", "b"}); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if !reflect.DeepEqual(p.Photos, []string{"c", "a", "b"}) {
		t.Fatalf("expected reordered photos, got %v", p.Photos)
	}

	if err := p.ReorderPhotos([]string{"a", "b"}); err != ErrInvalidPhotoOrder {
		t.Fatalf("expected ErrInvalidPhotoOrder for short order, got %v", err)
	}
	if err := p.ReorderPhotos([]string{"a", "b", "x"}); err != ErrInvalidPhotoOrder {
		t.Fatalf("expected ErrInvalidPhotoOrder for unknown ref, got %v", err)
	}
	if err := p.ReorderPhotos([]string{"a", "a", "b"}); err != ErrInvalidPhotoOrder {
		t.Fatalf("expected ErrInvalidPhotoOrder for duplicated ref, got %v", err)
	}
	// Failed reorders leave the stored order alone.
	if !reflect.DeepEqual(p.Photos, []string{"c", "a", "b"}) {
		t.Fatalf("expected order untouched after failures, got %v", p.Photos)
	}
}

func TestSetPartnerAnswerDropsEmpty(t *testing.T) {
	p := NewProfileData(1)
	p.SetPartnerAnswer("q1", SingleAnswer("yes"))
	p.SetPartnerAnswer("q2", MultiAnswer("a", "b"))
	if p.AnsweredPartnerQuestions() != 2 {
		t.Fatalf("expected 2 answers, got %d", p.AnsweredPartnerQuestions())
	}

	p.SetPartnerAnswer("q1", SingleAnswer(""))
	if _, ok := p.PartnerAnswers["q1"]; ok {
		t.Fatalf("expected empty answer to be dropped")
	}
	if p.AnsweredPartnerQuestions() != 1 {
		t.Fatalf("expected 1 answer, got %d", p.AnsweredPartnerQuestions())
	}
}

func TestProfileUpdateDistancePointer(t *testing.T) {
	p := NewProfileData(1)
	p.MaxDistanceKm = 25
	if err := (&ProfileUpdate{MaxDistanceKm: intPtr(80)}).Apply(p); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if p.MaxDistanceKm != 80 {
		t.Fatalf("expected distance 80, got %d", p.MaxDistanceKm)
	}
}

func TestBirthDateMerge(t *testing.T) {
	p := NewProfileData(1)
	birth := time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC)
	if err := (&ProfileUpdate{BirthDate: &birth}).Apply(p); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if p.BirthDate == nil || !p.BirthDate.Equal(birth) {
		t.Fatalf("expected birth date set, got %v", p.BirthDate)
	}
}
