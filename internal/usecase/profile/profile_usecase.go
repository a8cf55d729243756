package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kindredapp/kindred-backend/internal/completion"
	"github.com/kindredapp/kindred-backend/internal/domain"
	"github.com/kindredapp/kindred-backend/internal/infrastructure/gemini"
	"github.com/kindredapp/kindred-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

const completionCacheTTL = 5 * time.Minute

type ProfileUseCase struct {
	profileRepo  repository.ProfileRepository
	registry     *completion.Registry
	cache        *redis.Client
	geminiClient *gemini.GeminiClient
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	registry *completion.Registry,
	cache *redis.Client,
	geminiClient *gemini.GeminiClient,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo:  profileRepo,
		registry:     registry,
		cache:        cache,
		geminiClient: geminiClient,
	}
}

// GetProfile returns the user's profile record.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID int) (*domain.ProfileData, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

// UpdateProfile merges a partial update into the record and persists it.
// The merge is field-level: fields the caller did not send stay untouched,
// so two wizard steps editing different fields never race each other's data.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID int, update *domain.ProfileUpdate) (*domain.ProfileData, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := update.Apply(profile); err != nil {
		return nil, err
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	uc.invalidateCompletion(ctx, userID)
	return profile, nil
}

// ReorderPhotos applies a new photo ordering; index 0 becomes the main photo.
func (uc *ProfileUseCase) ReorderPhotos(ctx context.Context, userID int, order []string) (*domain.ProfileData, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := profile.ReorderPhotos(order); err != nil {
		return nil, err
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	uc.invalidateCompletion(ctx, userID)
	return profile, nil
}

// Completion scores the profile against the section registry. Scores are
// cached briefly in Redis; the cache is advisory and every mutation path
// invalidates it, so a miss or a dead Redis only costs a recompute.
func (uc *ProfileUseCase) Completion(ctx context.Context, userID int) (completion.Score, error) {
	if score, ok := uc.cachedCompletion(ctx, userID); ok {
		return score, nil
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return completion.Score{}, err
	}

	score := uc.registry.Score(profile)
	uc.storeCompletion(ctx, userID, score)
	return score, nil
}

func completionKey(userID int) string {
	return fmt.Sprintf("completion:%d", userID)
}

func (uc *ProfileUseCase) cachedCompletion(ctx context.Context, userID int) (completion.Score, bool) {
	if uc.cache == nil {
		return completion.Score{}, false
	}
	raw, err := uc.cache.Get(ctx, completionKey(userID)).Bytes()
	if err != nil {
		return completion.Score{}, false
	}
	var score completion.Score
	if err := json.Unmarshal(raw, &score); err != nil {
		return completion.Score{}, false
	}
	return score, true
}

func (uc *ProfileUseCase) storeCompletion(ctx context.Context, userID int, score completion.Score) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(score)
	if err != nil {
		return
	}
	uc.cache.Set(ctx, completionKey(userID), raw, completionCacheTTL)
}

func (uc *ProfileUseCase) invalidateCompletion(ctx context.Context, userID int) {
	if uc.cache == nil {
		return
	}
	uc.cache.Del(ctx, completionKey(userID))
}

// GenerateBioRequest represents a bio generation request.
type GenerateBioRequest struct {
	FullName  string   `json:"full_name" binding:"required"`
	Interests []string `json:"interests" binding:"required"`
	Location  string   `json:"location" binding:"required"`
}

// GenerateBio asks the AI collaborator for bio suggestions.
func (uc *ProfileUseCase) GenerateBio(ctx context.Context, req *GenerateBioRequest) (map[string]string, error) {
	if uc.geminiClient == nil {
		return nil, fmt.Errorf("gemini client is not initialized")
	}
	return uc.geminiClient.GenerateBio(ctx, req.FullName, req.Interests, req.Location)
}

// CompletionTips lists the incomplete sections along with AI-written nudges
// for finishing them. The scoring itself never consults the AI collaborator.
func (uc *ProfileUseCase) CompletionTips(ctx context.Context, userID int) ([]gemini.CompletionTip, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	score := uc.registry.Score(profile)
	var missing []string
	for _, s := range score.Sections {
		if !s.Complete {
			missing = append(missing, s.Name)
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}
	if uc.geminiClient == nil {
		return gemini.FallbackTips(missing), nil
	}
	return uc.geminiClient.GenerateCompletionTips(ctx, missing)
}
