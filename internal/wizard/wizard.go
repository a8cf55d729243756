// Package wizard drives the guided profile-setup flow: an ordered list of
// steps with per-step gating rules and a cumulative progress number derived
// from the completion registry's weight table.
package wizard

import (
	"github.com/kindredapp/kindred-backend/internal/completion"
	"github.com/kindredapp/kindred-backend/internal/domain"
)

// Step is one page of the guided flow. Sections lists the completion
// sections whose weight the step carries; a nil Gate means the step is
// optional and always advanceable.
type Step struct {
	ID       string
	Title    string
	Sections []string
	Gate     func(*domain.ProfileData) bool
}

// View is the controller state handed to the UI layer.
type View struct {
	StepID     string `json:"step_id"`
	Title      string `json:"title"`
	StepIndex  int    `json:"step_index"`
	TotalSteps int    `json:"total_steps"`
	CanAdvance bool   `json:"can_advance"`
	Cumulative int    `json:"cumulative_percent"`
	Finished   bool   `json:"finished"`
}

// Controller holds the current step index and drives transitions. Like the
// questionnaire engine it is single-writer: one user action at a time.
type Controller struct {
	steps    []Step
	registry *completion.Registry
	idx      int
	finished bool
	onFinish func()
}

// Option configures a new controller.
type Option func(*Controller)

// WithIndex restores a saved step position, clamped into range.
func WithIndex(idx int) Option {
	return func(c *Controller) {
		if idx >= 0 && idx < len(c.steps) {
			c.idx = idx
		}
	}
}

// WithFinished restores the terminal state of an already-completed flow.
func WithFinished(finished bool) Option {
	return func(c *Controller) { c.finished = finished }
}

// OnFinish registers the one-time callback fired when Next is called on the
// last step with its gate satisfied.
func OnFinish(fn func()) Option {
	return func(c *Controller) { c.onFinish = fn }
}

// NewController builds a controller over the default steps and the given
// registry.
func NewController(registry *completion.Registry, opts ...Option) *Controller {
	c := &Controller{
		steps:    Steps(),
		registry: registry,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the step under the cursor.
func (c *Controller) Current() Step { return c.steps[c.idx] }

// Index returns the current step index.
func (c *Controller) Index() int { return c.idx }

// Finished reports whether the flow reached its terminal state.
func (c *Controller) Finished() bool { return c.finished }

// CanAdvance evaluates the current step's gate against the record.
func (c *Controller) CanAdvance(p *domain.ProfileData) bool {
	gate := c.steps[c.idx].Gate
	return gate == nil || gate(p)
}

// Next advances one step when the gate allows it. On the last step it enters
// the terminal state and fires the finish callback exactly once. A failed
// gate or a call after the terminal state is a no-op returning false, never
// an error: the surrounding product retries freely.
func (c *Controller) Next(p *domain.ProfileData) bool {
	if c.finished || !c.CanAdvance(p) {
		return false
	}
	if c.idx < len(c.steps)-1 {
		c.idx++
		return true
	}
	c.finished = true
	if c.onFinish != nil {
		c.onFinish()
	}
	return true
}

// Previous moves back one step. Going back is never gated; it only fails at
// step zero.
func (c *Controller) Previous() bool {
	if c.idx == 0 {
		return false
	}
	c.idx--
	return true
}

// Progress is the cumulative weight of completed steps up to and including
// the current one. A step counts once every completion section it carries
// reports complete, so this number and the aggregate score share one weight
// table.
func (c *Controller) Progress(p *domain.ProfileData) int {
	total := 0
	for i := 0; i <= c.idx && i < len(c.steps); i++ {
		if c.stepComplete(c.steps[i], p) {
			for _, name := range c.steps[i].Sections {
				total += c.registry.Weight(name)
			}
		}
	}
	if total > 100 {
		total = 100
	}
	return total
}

func (c *Controller) stepComplete(step Step, p *domain.ProfileData) bool {
	for _, s := range c.registry.Sections() {
		for _, name := range step.Sections {
			if s.Name == name && !s.IsComplete(p) {
				return false
			}
		}
	}
	return true
}

// View renders the controller state for the UI layer.
func (c *Controller) View(p *domain.ProfileData) View {
	step := c.Current()
	return View{
		StepID:     step.ID,
		Title:      step.Title,
		StepIndex:  c.idx,
		TotalSteps: len(c.steps),
		CanAdvance: c.CanAdvance(p),
		Cumulative: c.Progress(p),
		Finished:   c.finished,
	}
}
