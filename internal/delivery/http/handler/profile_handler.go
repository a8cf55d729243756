package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kindredapp/kindred-backend/internal/domain"
	"github.com/kindredapp/kindred-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetMyProfile handles GET /profile/me
// @Summary Get my profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.ProfileData
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	p, err := h.profileUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get profile",
		})
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateMyProfile handles PATCH /profile/me
// @Summary Update my profile
// @Description Merge a partial update into the profile record
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body domain.ProfileUpdate true "Fields to merge"
// @Success 200 {object} domain.ProfileData
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [patch]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var update domain.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	updated, err := h.profileUseCase.UpdateProfile(c.Request.Context(), userID, &update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
		case errors.Is(err, domain.ErrInvalidAgeRange):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error: "age range minimum exceeds maximum",
			})
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error: "invalid field value",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to update profile",
			})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ReorderPhotosRequest carries the new photo ordering.
type ReorderPhotosRequest struct {
	Order []string `json:"order" binding:"required"`
}

// ReorderPhotos handles POST /profile/me/photos/reorder
func (h *ProfileHandler) ReorderPhotos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ReorderPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	updated, err := h.profileUseCase.ReorderPhotos(c.Request.Context(), userID, req.Order)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
		case errors.Is(err, domain.ErrInvalidPhotoOrder):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error: "order must be a permutation of stored photos",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to reorder photos",
			})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetCompletion handles GET /profile/me/completion
// @Summary Get profile completion
// @Description Weighted completion score across all profile sections
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} completion.Score
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me/completion [get]
func (h *ProfileHandler) GetCompletion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	score, err := h.profileUseCase.Completion(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to score profile",
		})
		return
	}

	c.JSON(http.StatusOK, score)
}

// GetCompletionTips handles GET /profile/me/completion/tips
func (h *ProfileHandler) GetCompletionTips(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tips, err := h.profileUseCase.CompletionTips(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to generate tips",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

// GenerateBio handles POST /profile/generate-bio
func (h *ProfileHandler) GenerateBio(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req profile.GenerateBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	bios, err := h.profileUseCase.GenerateBio(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to generate bio",
		})
		return
	}

	c.JSON(http.StatusOK, bios)
}
