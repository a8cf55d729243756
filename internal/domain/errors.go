package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")

	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrInvalidAgeRange      = errors.New("age range minimum exceeds maximum")
	ErrInvalidPhotoOrder    = errors.New("photo order does not match stored photos")
	ErrInvalidInput         = errors.New("invalid input")

	ErrUnknownQuestion      = errors.New("unknown question id")
	ErrAnswerMultiplicity   = errors.New("answer multiplicity does not match question")
	ErrOnboardingNotStarted = errors.New("onboarding has not been started")
)
