// Package questionnaire drives the two-level partner-preference flow:
// sections of single- and multi-select questions with a cursor, answer
// capture and a flat progress metric over the whole tree.
package questionnaire

import (
	"github.com/kindredapp/kindred-backend/internal/domain"
)

// Engine walks the questionnaire tree and captures answers. It is not safe
// for concurrent use; every mutation is driven by one user action at a time.
type Engine struct {
	sections  []Section
	si, qi    int
	answers   map[string]domain.Answer
	submitted bool
	onSubmit  func(map[string]domain.Answer)
}

// View is what the UI layer needs to render the current question.
type View struct {
	SectionTitle           string        `json:"section_title"`
	SectionIndex           int           `json:"section_index"`
	QuestionIndexInSection int           `json:"question_index_in_section"`
	TotalInSection         int           `json:"total_in_section"`
	Question               Question      `json:"question"`
	Answer                 domain.Answer `json:"answer"`
	FlatProgress           int           `json:"flat_progress"`
	Submitted              bool          `json:"submitted"`
}

// Option configures a new engine.
type Option func(*Engine)

// WithAnswers seeds the engine with previously stored answers.
func WithAnswers(answers map[string]domain.Answer) Option {
	return func(e *Engine) {
		for id, a := range answers {
			if !a.IsEmpty() {
				e.answers[id] = a
			}
		}
	}
}

// WithCursor restores a saved position. Out-of-range positions are clamped
// to the start so a stale cursor can never panic the engine.
func WithCursor(sectionIndex, questionIndex int) Option {
	return func(e *Engine) {
		if sectionIndex < 0 || sectionIndex >= len(e.sections) {
			return
		}
		if questionIndex < 0 || questionIndex >= len(e.sections[sectionIndex].Questions) {
			return
		}
		e.si, e.qi = sectionIndex, questionIndex
	}
}

// WithSubmitted restores the terminal state of an already-submitted flow.
func WithSubmitted(submitted bool) Option {
	return func(e *Engine) { e.submitted = submitted }
}

// OnSubmit registers the one-time completion callback fired when Next is
// called on the final question of the final section.
func OnSubmit(fn func(map[string]domain.Answer)) Option {
	return func(e *Engine) { e.onSubmit = fn }
}

// NewEngine builds an engine over the default catalog.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		sections: Catalog(),
		answers:  make(map[string]domain.Answer),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) current() Question {
	return e.sections[e.si].Questions[e.qi]
}

func (e *Engine) find(id string) (Question, bool) {
	for _, s := range e.sections {
		for _, q := range s.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

// SelectSingle overwrites the answer to a single-choice question.
func (e *Engine) SelectSingle(questionID, value string) error {
	q, ok := e.find(questionID)
	if !ok {
		return domain.ErrUnknownQuestion
	}
	if q.Multi {
		return domain.ErrAnswerMultiplicity
	}
	if value == "" {
		delete(e.answers, questionID)
		return nil
	}
	e.answers[questionID] = domain.SingleAnswer(value)
	return nil
}

// ToggleMulti adds the option if absent and removes it if present. Adding
// past the question's selection cap is a silent no-op, mirroring a disabled
// checkbox; removal is always allowed.
func (e *Engine) ToggleMulti(questionID, option string) error {
	q, ok := e.find(questionID)
	if !ok {
		return domain.ErrUnknownQuestion
	}
	if !q.Multi {
		return domain.ErrAnswerMultiplicity
	}
	prev := e.answers[questionID]
	if !prev.Contains(option) && q.MaxSelections > 0 && len(prev.Values) >= q.MaxSelections {
		return nil
	}
	next := prev.Toggle(option)
	if next.IsEmpty() {
		delete(e.answers, questionID)
		return nil
	}
	e.answers[questionID] = next
	return nil
}

// CanAdvance reports whether the current question has a non-empty answer.
func (e *Engine) CanAdvance() bool {
	return !e.answers[e.current().ID].IsEmpty()
}

// Next moves to the following question, rolling into the next section at a
// boundary. On the final question it enters the submitted state and fires
// the completion callback exactly once. Returns false when gated or already
// submitted.
func (e *Engine) Next() bool {
	if e.submitted || !e.CanAdvance() {
		return false
	}
	if e.qi < len(e.sections[e.si].Questions)-1 {
		e.qi++
		return true
	}
	if e.si < len(e.sections)-1 {
		e.si++
		e.qi = 0
		return true
	}
	e.submitted = true
	if e.onSubmit != nil {
		e.onSubmit(e.Answers())
	}
	return true
}

// Previous moves back one question, rolling to the last question of the
// prior section at a boundary. Never gated. Returns false only at the very
// first question.
func (e *Engine) Previous() bool {
	if e.submitted {
		return false
	}
	if e.qi > 0 {
		e.qi--
		return true
	}
	if e.si > 0 {
		e.si--
		e.qi = len(e.sections[e.si].Questions) - 1
		return true
	}
	return false
}

// Progress is the flat completion percentage: answered questions over the
// entire tree, independent of the cursor.
func (e *Engine) Progress() int {
	total := 0
	answered := 0
	for _, s := range e.sections {
		for _, q := range s.Questions {
			total++
			if !e.answers[q.ID].IsEmpty() {
				answered++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return (answered*200 + total) / (2 * total)
}

// Answers returns a copy of the non-empty answer map.
func (e *Engine) Answers() map[string]domain.Answer {
	out := make(map[string]domain.Answer, len(e.answers))
	for id, a := range e.answers {
		out[id] = a
	}
	return out
}

// Submitted reports whether the engine reached its terminal state.
func (e *Engine) Submitted() bool { return e.submitted }

// Position returns the current section and question indexes for persistence.
func (e *Engine) Position() (sectionIndex, questionIndex int) {
	return e.si, e.qi
}

// View renders the engine state for the UI layer.
func (e *Engine) View() View {
	s := e.sections[e.si]
	return View{
		SectionTitle:           s.Title,
		SectionIndex:           e.si,
		QuestionIndexInSection: e.qi,
		TotalInSection:         len(s.Questions),
		Question:               e.current(),
		Answer:                 e.answers[e.current().ID],
		FlatProgress:           e.Progress(),
		Submitted:              e.submitted,
	}
}
