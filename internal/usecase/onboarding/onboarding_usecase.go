// Package onboarding orchestrates the guided profile-setup flow over HTTP.
// The wizard controller and questionnaire engine are in-memory state
// machines; this layer rehydrates them from the persisted record on every
// request and writes the cursor back after each transition, so abandoning
// the flow mid-step loses nothing.
package onboarding

import (
	"context"
	"fmt"

	"github.com/kindredapp/kindred-backend/internal/completion"
	"github.com/kindredapp/kindred-backend/internal/domain"
	"github.com/kindredapp/kindred-backend/internal/questionnaire"
	"github.com/kindredapp/kindred-backend/internal/repository"
	"github.com/kindredapp/kindred-backend/internal/wizard"
	"github.com/redis/go-redis/v9"
)

type OnboardingUseCase struct {
	profileRepo repository.ProfileRepository
	registry    *completion.Registry
	cache       *redis.Client
}

func NewOnboardingUseCase(
	profileRepo repository.ProfileRepository,
	registry *completion.Registry,
	cache *redis.Client,
) *OnboardingUseCase {
	return &OnboardingUseCase{
		profileRepo: profileRepo,
		registry:    registry,
		cache:       cache,
	}
}

// StateResponse combines the wizard view with the aggregate score, which the
// setup screens render side by side.
type StateResponse struct {
	Wizard wizard.View      `json:"wizard"`
	Score  completion.Score `json:"score"`
}

func (uc *OnboardingUseCase) controller(p *domain.ProfileData) *wizard.Controller {
	return wizard.NewController(
		uc.registry,
		wizard.WithIndex(p.Wizard.StepIndex),
		wizard.WithFinished(p.Wizard.Finished),
		wizard.OnFinish(func() { p.Wizard.Finished = true }),
	)
}

func (uc *OnboardingUseCase) engine(p *domain.ProfileData) *questionnaire.Engine {
	return questionnaire.NewEngine(
		questionnaire.WithAnswers(p.PartnerAnswers),
		questionnaire.WithCursor(p.Wizard.SectionIndex, p.Wizard.QuestionIndex),
		questionnaire.WithSubmitted(p.Wizard.Submitted),
		questionnaire.OnSubmit(func(answers map[string]domain.Answer) {
			p.PartnerAnswers = answers
			p.Wizard.Submitted = true
		}),
	)
}

// State returns the current wizard position and score without mutating
// anything.
func (uc *OnboardingUseCase) State(ctx context.Context, userID int) (*StateResponse, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &StateResponse{
		Wizard: uc.controller(profile).View(profile),
		Score:  uc.registry.Score(profile),
	}, nil
}

// Next tries to advance the wizard. A failed gate is not an error; the
// response simply comes back with the same step and CanAdvance false.
func (uc *OnboardingUseCase) Next(ctx context.Context, userID int) (*StateResponse, error) {
	return uc.transition(ctx, userID, func(c *wizard.Controller, p *domain.ProfileData) {
		c.Next(p)
	})
}

// Previous steps back; never gated.
func (uc *OnboardingUseCase) Previous(ctx context.Context, userID int) (*StateResponse, error) {
	return uc.transition(ctx, userID, func(c *wizard.Controller, p *domain.ProfileData) {
		c.Previous()
	})
}

func (uc *OnboardingUseCase) transition(ctx context.Context, userID int, move func(*wizard.Controller, *domain.ProfileData)) (*StateResponse, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ctrl := uc.controller(profile)
	move(ctrl, profile)
	profile.Wizard.StepIndex = ctrl.Index()

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save wizard state: %w", err)
	}

	return &StateResponse{
		Wizard: ctrl.View(profile),
		Score:  uc.registry.Score(profile),
	}, nil
}

// Questionnaire returns the current question view.
func (uc *OnboardingUseCase) Questionnaire(ctx context.Context, userID int) (questionnaire.View, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return questionnaire.View{}, err
	}
	return uc.engine(profile).View(), nil
}

// AnswerRequest records one questionnaire interaction. Value answers a
// single-choice question; Option toggles one option of a multi-select.
type AnswerRequest struct {
	QuestionID string  `json:"question_id" binding:"required"`
	Value      *string `json:"value"`
	Option     *string `json:"option"`
}

// Answer applies a single selection or a multi-select toggle and persists
// the updated answer map.
func (uc *OnboardingUseCase) Answer(ctx context.Context, userID int, req *AnswerRequest) (questionnaire.View, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return questionnaire.View{}, err
	}

	eng := uc.engine(profile)
	switch {
	case req.Value != nil:
		err = eng.SelectSingle(req.QuestionID, *req.Value)
	case req.Option != nil:
		err = eng.ToggleMulti(req.QuestionID, *req.Option)
	default:
		err = domain.ErrInvalidInput
	}
	if err != nil {
		return questionnaire.View{}, err
	}

	profile.PartnerAnswers = eng.Answers()
	if err := uc.save(ctx, profile, eng); err != nil {
		return questionnaire.View{}, err
	}
	return eng.View(), nil
}

// QuestionnaireNext advances the question cursor; at the end of the tree it
// submits the questionnaire and marks the record accordingly.
func (uc *OnboardingUseCase) QuestionnaireNext(ctx context.Context, userID int) (questionnaire.View, error) {
	return uc.questionnaireMove(ctx, userID, func(e *questionnaire.Engine) { e.Next() })
}

// QuestionnairePrevious steps the cursor back.
func (uc *OnboardingUseCase) QuestionnairePrevious(ctx context.Context, userID int) (questionnaire.View, error) {
	return uc.questionnaireMove(ctx, userID, func(e *questionnaire.Engine) { e.Previous() })
}

func (uc *OnboardingUseCase) questionnaireMove(ctx context.Context, userID int, move func(*questionnaire.Engine)) (questionnaire.View, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return questionnaire.View{}, err
	}

	eng := uc.engine(profile)
	move(eng)
	if err := uc.save(ctx, profile, eng); err != nil {
		return questionnaire.View{}, err
	}
	return eng.View(), nil
}

func (uc *OnboardingUseCase) save(ctx context.Context, profile *domain.ProfileData, eng *questionnaire.Engine) error {
	profile.Wizard.SectionIndex, profile.Wizard.QuestionIndex = eng.Position()
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return fmt.Errorf("failed to save questionnaire state: %w", err)
	}
	if uc.cache != nil {
		uc.cache.Del(ctx, fmt.Sprintf("completion:%d", profile.UserID))
	}
	return nil
}
