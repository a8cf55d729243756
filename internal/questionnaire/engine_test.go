package questionnaire

import (
	"reflect"
	"testing"

	"github.com/kindredapp/kindred-backend/internal/domain"
)

func answerEverything(t *testing.T, e *Engine) {
	t.Helper()
	for _, s := range Catalog() {
		for _, q := range s.Questions {
			if q.Multi {
				if err := e.ToggleMulti(q.ID, q.Options[0]); err != nil {
					t.Fatalf("toggle %s: %v", q.ID, err)
				}
			} else {
				if err := e.SelectSingle(q.ID, q.Options[0]); err != nil {
					t.Fatalf("select %s: %v", q.ID, err)
				}
			}
		}
	}
}

func TestCatalogShape(t *testing.T) {
	if got := QuestionCount(); got != 21 {
		t.Fatalf("expected 21 questions, got %d", got)
	}
	if QuestionCount() <= RequiredAnswers {
		t.Fatalf("expected total question count above the completion threshold")
	}
	seen := make(map[string]bool)
	for _, s := range Catalog() {
		for _, q := range s.Questions {
			if seen[q.ID] {
				t.Fatalf("duplicate question id %q", q.ID)
			}
			seen[q.ID] = true
			if len(q.Options) < 2 {
				t.Fatalf("question %q has %d options", q.ID, len(q.Options))
			}
		}
	}
}

func TestSelectSingleOverwrites(t *testing.T) {
	e := NewEngine()
	if err := e.SelectSingle("goal_type", "Marriage"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := e.SelectSingle("goal_type", "Something casual"); err != nil {
		t.Fatalf("select: %v", err)
	}
	got := e.Answers()["goal_type"]
	if got.Kind != domain.AnswerSingle || got.Value != "Something casual" {
		t.Fatalf("expected overwrite to %q, got %+v", "Something casual", got)
	}
}

func TestToggleMultiIsIdempotentPair(t *testing.T) {
	e := NewEngine()
	if err := e.ToggleMulti("values_dealbreakers", "Smoking"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	before := e.Answers()["values_dealbreakers"]

	if err := e.ToggleMulti("values_dealbreakers", "Long distance"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := e.ToggleMulti("values_dealbreakers", "Long distance"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	after := e.Answers()["values_dealbreakers"]
	if !reflect.DeepEqual(before.Values, after.Values) {
		t.Fatalf("expected toggle pair to restore %v, got %v", before.Values, after.Values)
	}
}

func TestToggleMultiHonorsSelectionCap(t *testing.T) {
	e := NewEngine()
	// values_important caps at 3 selections.
	for _, opt := range []string{"Honesty", "Ambition", "Kindness", "Humor"} {
		if err := e.ToggleMulti("values_important", opt); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}
	got := e.Answers()["values_important"].Values
	if len(got) != 3 {
		t.Fatalf("expected cap at 3 selections, got %v", got)
	}
	// Removal past the cap must still work.
	if err := e.ToggleMulti("values_important", "Honesty"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := e.Answers()["values_important"].Values; len(got) != 2 {
		t.Fatalf("expected removal at cap, got %v", got)
	}
}

func TestMultiplicityMismatch(t *testing.T) {
	e := NewEngine()
	if err := e.SelectSingle("values_dealbreakers", "Smoking"); err != domain.ErrAnswerMultiplicity {
		t.Fatalf("expected multiplicity error, got %v", err)
	}
	if err := e.ToggleMulti("goal_type", "Marriage"); err != domain.ErrAnswerMultiplicity {
		t.Fatalf("expected multiplicity error, got %v", err)
	}
	if err := e.SelectSingle("nope", "x"); err != domain.ErrUnknownQuestion {
		t.Fatalf("expected unknown question error, got %v", err)
	}
}

func TestNextGatedOnCurrentAnswer(t *testing.T) {
	e := NewEngine()
	if e.CanAdvance() {
		t.Fatalf("expected no advance without an answer")
	}
	if e.Next() {
		t.Fatalf("expected Next to refuse")
	}
	if err := e.SelectSingle("goal_type", "Marriage"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !e.Next() {
		t.Fatalf("expected Next to succeed with an answer")
	}
	si, qi := e.Position()
	if si != 0 || qi != 1 {
		t.Fatalf("expected position (0,1), got (%d,%d)", si, qi)
	}
}

func TestCursorRollsAcrossSectionBoundaries(t *testing.T) {
	e := NewEngine()
	answerEverything(t, e)

	first := Catalog()[0]
	for range first.Questions {
		if !e.Next() {
			t.Fatalf("expected Next to succeed")
		}
	}
	si, qi := e.Position()
	if si != 1 || qi != 0 {
		t.Fatalf("expected roll into section 1, got (%d,%d)", si, qi)
	}

	if !e.Previous() {
		t.Fatalf("expected Previous to succeed")
	}
	si, qi = e.Position()
	if si != 0 || qi != len(first.Questions)-1 {
		t.Fatalf("expected roll back to end of section 0, got (%d,%d)", si, qi)
	}
}

func TestFlatProgressIgnoresCursor(t *testing.T) {
	e := NewEngine()
	if e.Progress() != 0 {
		t.Fatalf("expected progress 0, got %d", e.Progress())
	}

	// Answer questions far from the cursor; progress must count them.
	if err := e.SelectSingle("intimacy_pace", "Slow and steady"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := e.ToggleMulti("life_diet", "Vegan"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	want := (2*200 + 21) / (2 * 21)
	if got := e.Progress(); got != want {
		t.Fatalf("expected progress %d, got %d", want, got)
	}

	si, qi := e.Position()
	if si != 0 || qi != 0 {
		t.Fatalf("expected cursor untouched, got (%d,%d)", si, qi)
	}
}

func TestSubmitFiresOnce(t *testing.T) {
	submits := 0
	var submitted map[string]domain.Answer
	e := NewEngine(OnSubmit(func(answers map[string]domain.Answer) {
		submits++
		submitted = answers
	}))
	answerEverything(t, e)

	for e.Next() {
	}
	if !e.Submitted() {
		t.Fatalf("expected submitted state")
	}
	if submits != 1 {
		t.Fatalf("expected submit callback once, got %d", submits)
	}
	if len(submitted) != QuestionCount() {
		t.Fatalf("expected %d answers in callback, got %d", QuestionCount(), len(submitted))
	}
	if e.Next() || e.Previous() {
		t.Fatalf("expected navigation after submit to be a no-op")
	}
}

func TestCursorRestoreClampsOutOfRange(t *testing.T) {
	e := NewEngine(WithCursor(99, 99))
	si, qi := e.Position()
	if si != 0 || qi != 0 {
		t.Fatalf("expected clamped cursor, got (%d,%d)", si, qi)
	}

	e = NewEngine(WithCursor(2, 3))
	si, qi = e.Position()
	if si != 2 || qi != 3 {
		t.Fatalf("expected cursor restored to (2,3), got (%d,%d)", si, qi)
	}
}
