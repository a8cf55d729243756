package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kindredapp/kindred-backend/internal/domain"
	"github.com/kindredapp/kindred-backend/internal/usecase/onboarding"
)

type OnboardingHandler struct {
	onboardingUseCase *onboarding.OnboardingUseCase
}

func NewOnboardingHandler(onboardingUseCase *onboarding.OnboardingUseCase) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUseCase: onboardingUseCase,
	}
}

// GetState handles GET /onboarding/state
func (h *OnboardingHandler) GetState(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	state, err := h.onboardingUseCase.State(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Next handles POST /onboarding/next. A step whose gate fails responds 200
// with the same step; refusing to advance is normal flow, not an error.
func (h *OnboardingHandler) Next(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	state, err := h.onboardingUseCase.Next(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Previous handles POST /onboarding/previous
func (h *OnboardingHandler) Previous(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	state, err := h.onboardingUseCase.Previous(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetQuestionnaire handles GET /onboarding/questionnaire
func (h *OnboardingHandler) GetQuestionnaire(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.onboardingUseCase.Questionnaire(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Answer handles POST /onboarding/questionnaire/answer
func (h *OnboardingHandler) Answer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req onboarding.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	view, err := h.onboardingUseCase.Answer(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// QuestionnaireNext handles POST /onboarding/questionnaire/next
func (h *OnboardingHandler) QuestionnaireNext(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.onboardingUseCase.QuestionnaireNext(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// QuestionnairePrevious handles POST /onboarding/questionnaire/previous
func (h *OnboardingHandler) QuestionnairePrevious(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.onboardingUseCase.QuestionnairePrevious(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *OnboardingHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "profile not found",
		})
	case errors.Is(err, domain.ErrUnknownQuestion):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: "unknown question id",
		})
	case errors.Is(err, domain.ErrAnswerMultiplicity):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: "answer shape does not match question",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "either value or option is required",
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "onboarding operation failed",
		})
	}
}
