package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kindredapp/kindred-backend/internal/domain"
	"github.com/kindredapp/kindred-backend/internal/repository"
	"github.com/lib/pq"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// jsonFields marshals the JSONB columns. Answer maps, prompt lists, social
// links and the wizard cursor are stored as documents; the flat fields get
// their own columns.
func jsonFields(p *domain.ProfileData) (prompts, answers, links, wizard []byte, err error) {
	if prompts, err = json.Marshal(p.Prompts); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal prompts: %w", err)
	}
	if answers, err = json.Marshal(p.PartnerAnswers); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal partner answers: %w", err)
	}
	if links, err = json.Marshal(p.SocialLinks); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal social links: %w", err)
	}
	if wizard, err = json.Marshal(p.Wizard); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal wizard state: %w", err)
	}
	return prompts, answers, links, wizard, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.ProfileData) error {
	prompts, answers, links, wizard, err := jsonFields(profile)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO profiles (
			user_id, full_name, birth_date, gender, orientation, location, photos,
			show_me, looking_for, age_min, age_max, max_distance_km,
			job_title, education, drinking, smoking, religion, zodiac, politics,
			interests, prompts, partner_answers, social_links,
			intro_video_url, live_photo_url, wizard_state
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.FullName, profile.BirthDate, profile.Gender,
		pq.Array(profile.Orientation), profile.Location, pq.Array(profile.Photos),
		pq.Array(profile.ShowMe), profile.LookingFor,
		profile.AgeRange.Min, profile.AgeRange.Max, profile.MaxDistanceKm,
		profile.JobTitle, profile.Education, profile.Drinking, profile.Smoking,
		profile.Religion, profile.Zodiac, profile.Politics,
		pq.Array(profile.Interests), prompts, answers, links,
		profile.IntroVideoURL, profile.LivePhotoURL, wizard,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int) (*domain.ProfileData, error) {
	var (
		profile                        domain.ProfileData
		prompts, answers, links, state []byte
	)
	query := `
		SELECT id, user_id, full_name, birth_date, gender, orientation, location, photos,
		       show_me, looking_for, age_min, age_max, max_distance_km,
		       job_title, education, drinking, smoking, religion, zodiac, politics,
		       interests, prompts, partner_answers, social_links,
		       intro_video_url, live_photo_url, wizard_state,
		       created_at, updated_at
		FROM profiles WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.FullName, &profile.BirthDate, &profile.Gender,
		pq.Array(&profile.Orientation), &profile.Location, pq.Array(&profile.Photos),
		pq.Array(&profile.ShowMe), &profile.LookingFor,
		&profile.AgeRange.Min, &profile.AgeRange.Max, &profile.MaxDistanceKm,
		&profile.JobTitle, &profile.Education, &profile.Drinking, &profile.Smoking,
		&profile.Religion, &profile.Zodiac, &profile.Politics,
		pq.Array(&profile.Interests), &prompts, &answers, &links,
		&profile.IntroVideoURL, &profile.LivePhotoURL, &state,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(prompts, &profile.Prompts); err != nil {
		return nil, fmt.Errorf("unmarshal prompts: %w", err)
	}
	if err := json.Unmarshal(answers, &profile.PartnerAnswers); err != nil {
		return nil, fmt.Errorf("unmarshal partner answers: %w", err)
	}
	if err := json.Unmarshal(links, &profile.SocialLinks); err != nil {
		return nil, fmt.Errorf("unmarshal social links: %w", err)
	}
	if err := json.Unmarshal(state, &profile.Wizard); err != nil {
		return nil, fmt.Errorf("unmarshal wizard state: %w", err)
	}
	if profile.PartnerAnswers == nil {
		profile.PartnerAnswers = make(map[string]domain.Answer)
	}
	if profile.SocialLinks == nil {
		profile.SocialLinks = make(map[string]string)
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.ProfileData) error {
	prompts, answers, links, wizard, err := jsonFields(profile)
	if err != nil {
		return err
	}
	query := `
		UPDATE profiles
		SET full_name = $1, birth_date = $2, gender = $3, orientation = $4,
		    location = $5, photos = $6, show_me = $7, looking_for = $8,
		    age_min = $9, age_max = $10, max_distance_km = $11,
		    job_title = $12, education = $13, drinking = $14, smoking = $15,
		    religion = $16, zodiac = $17, politics = $18,
		    interests = $19, prompts = $20, partner_answers = $21, social_links = $22,
		    intro_video_url = $23, live_photo_url = $24, wizard_state = $25,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $26
		RETURNING updated_at
	`
	err = r.db.QueryRowContext(
		ctx, query,
		profile.FullName, profile.BirthDate, profile.Gender, pq.Array(profile.Orientation),
		profile.Location, pq.Array(profile.Photos), pq.Array(profile.ShowMe), profile.LookingFor,
		profile.AgeRange.Min, profile.AgeRange.Max, profile.MaxDistanceKm,
		profile.JobTitle, profile.Education, profile.Drinking, profile.Smoking,
		profile.Religion, profile.Zodiac, profile.Politics,
		pq.Array(profile.Interests), prompts, answers, links,
		profile.IntroVideoURL, profile.LivePhotoURL, wizard,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *profileRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
