package repository

import (
	"context"

	"github.com/kindredapp/kindred-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, hashedToken string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, hashedToken string) error
	DeleteExpired(ctx context.Context) error
}

// ProfileRepository persists the profile record. Implementations merge by
// field server-side or store the whole row; callers always hand over a record
// that was mutated through field-level merges.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.ProfileData) error
	GetByUserID(ctx context.Context, userID int) (*domain.ProfileData, error)
	Update(ctx context.Context, profile *domain.ProfileData) error
	Delete(ctx context.Context, id int) error
}
