package domain

import "time"

const (
	// MaxInterests caps the interest tag set.
	MaxInterests = 7
	// MaxPrompts caps the personality prompt list.
	MaxPrompts = 3
	// MaxSocialLinks is the number of platforms counted toward the
	// social-links completion percentage.
	MaxSocialLinks = 4
)

// PromptAnswer is one personality prompt and the user's response to it.
type PromptAnswer struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// AgeRange is an ordered pair; Min must never exceed Max.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Valid reports whether the range is ordered and within bounds.
func (r AgeRange) Valid() bool {
	return r.Min >= 18 && r.Max >= r.Min
}

// IsZero reports whether the range has not been set.
func (r AgeRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// WizardState is the persisted cursor of the onboarding flow: the wizard step
// index plus the questionnaire position, so a user can leave mid-step and
// resume without losing place.
type WizardState struct {
	StepIndex     int  `json:"step_index"`
	SectionIndex  int  `json:"section_index"`
	QuestionIndex int  `json:"question_index"`
	Finished      bool `json:"finished"`
	Submitted     bool `json:"submitted"`
}

// ProfileData is the single record the scoring, wizard and questionnaire
// layers read and write. All mutation happens through field-level merges; the
// record is never replaced wholesale.
type ProfileData struct {
	ID     int `json:"id" db:"id"`
	UserID int `json:"user_id" db:"user_id"`

	// Identity
	FullName    string     `json:"full_name" db:"full_name"`
	BirthDate   *time.Time `json:"birth_date" db:"birth_date"`
	Gender      string     `json:"gender" db:"gender"`
	Orientation []string   `json:"orientation" db:"orientation"`
	Location    string     `json:"location" db:"location"`
	Photos      []string   `json:"photos" db:"photos"`

	// Partner search preferences
	ShowMe        []string `json:"show_me" db:"show_me"`
	LookingFor    string   `json:"looking_for" db:"looking_for"`
	AgeRange      AgeRange `json:"age_range"`
	MaxDistanceKm int      `json:"max_distance_km" db:"max_distance_km"`

	// Lifestyle
	JobTitle  string `json:"job_title" db:"job_title"`
	Education string `json:"education" db:"education"`
	Drinking  string `json:"drinking" db:"drinking"`
	Smoking   string `json:"smoking" db:"smoking"`
	Religion  string `json:"religion" db:"religion"`
	Zodiac    string `json:"zodiac" db:"zodiac"`
	Politics  string `json:"politics" db:"politics"`

	Interests []string       `json:"interests" db:"interests"`
	Prompts   []PromptAnswer `json:"prompts"`

	// Partner-preference questionnaire answers, keyed by question id.
	PartnerAnswers map[string]Answer `json:"partner_answers"`

	// Social and live media
	SocialLinks   map[string]string `json:"social_links"`
	IntroVideoURL string            `json:"intro_video_url" db:"intro_video_url"`
	LivePhotoURL  string            `json:"live_photo_url" db:"live_photo_url"`

	Wizard WizardState `json:"wizard"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewProfileData returns an empty record for a user entering the wizard.
func NewProfileData(userID int) *ProfileData {
	return &ProfileData{
		UserID:         userID,
		PartnerAnswers: make(map[string]Answer),
		SocialLinks:    make(map[string]string),
	}
}

// AnsweredPartnerQuestions counts non-empty questionnaire answers. Empty
// strings and empty sets do not count even when the key is present.
func (p *ProfileData) AnsweredPartnerQuestions() int {
	n := 0
	for _, a := range p.PartnerAnswers {
		if !a.IsEmpty() {
			n++
		}
	}
	return n
}

// SetPartnerAnswer records one questionnaire answer, dropping empty answers
// so they never count toward completion.
func (p *ProfileData) SetPartnerAnswer(questionID string, a Answer) {
	if p.PartnerAnswers == nil {
		p.PartnerAnswers = make(map[string]Answer)
	}
	if a.IsEmpty() {
		delete(p.PartnerAnswers, questionID)
		return
	}
	p.PartnerAnswers[questionID] = a
}

// ReorderPhotos replaces the photo ordering. The new order must be a
// permutation of the stored photos; index 0 becomes the main photo.
func (p *ProfileData) ReorderPhotos(order []string) error {
	if len(order) != len(p.Photos) {
		return ErrInvalidPhotoOrder
	}
	remaining := make(map[string]int, len(p.Photos))
	for _, ref := range p.Photos {
		remaining[ref]++
	}
	for _, ref := range order {
		if remaining[ref] == 0 {
			return ErrInvalidPhotoOrder
		}
		remaining[ref]--
	}
	p.Photos = append([]string(nil), order...)
	return nil
}

// ProfileUpdate is a partial update; nil fields are left untouched so edits
// from different wizard steps never clobber each other.
type ProfileUpdate struct {
	FullName    *string    `json:"full_name" binding:"omitempty,min=1,max=100"`
	BirthDate   *time.Time `json:"birth_date"`
	Gender      *string    `json:"gender" binding:"omitempty,max=40"`
	Orientation *[]string  `json:"orientation" binding:"omitempty,max=5"`
	Location    *string    `json:"location" binding:"omitempty,max=200"`
	Photos      *[]string  `json:"photos" binding:"omitempty,max=9"`

	ShowMe        *[]string `json:"show_me" binding:"omitempty,max=5"`
	LookingFor    *string   `json:"looking_for" binding:"omitempty,max=60"`
	AgeRange      *AgeRange `json:"age_range"`
	MaxDistanceKm *int      `json:"max_distance_km" binding:"omitempty,min=1,max=500"`

	JobTitle  *string `json:"job_title" binding:"omitempty,max=100"`
	Education *string `json:"education" binding:"omitempty,max=100"`
	Drinking  *string `json:"drinking" binding:"omitempty,max=40"`
	Smoking   *string `json:"smoking" binding:"omitempty,max=40"`
	Religion  *string `json:"religion" binding:"omitempty,max=60"`
	Zodiac    *string `json:"zodiac" binding:"omitempty,max=40"`
	Politics  *string `json:"politics" binding:"omitempty,max=60"`

	Interests *[]string       `json:"interests" binding:"omitempty,max=7"`
	Prompts   *[]PromptAnswer `json:"prompts" binding:"omitempty,max=3"`

	SocialLinks   *map[string]string `json:"social_links"`
	IntroVideoURL *string            `json:"intro_video_url" binding:"omitempty,url"`
	LivePhotoURL  *string            `json:"live_photo_url" binding:"omitempty,url"`
}

// Apply merges the update into the record field by field. Inverted age ranges
// and over-cap interest or prompt lists are rejected before anything is
// written, so a bad update leaves the record unchanged.
func (u *ProfileUpdate) Apply(p *ProfileData) error {
	if u.AgeRange != nil && !u.AgeRange.Valid() {
		return ErrInvalidAgeRange
	}
	if u.Interests != nil && len(*u.Interests) > MaxInterests {
		return ErrInvalidInput
	}
	if u.Prompts != nil && len(*u.Prompts) > MaxPrompts {
		return ErrInvalidInput
	}

	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	if u.BirthDate != nil {
		p.BirthDate = u.BirthDate
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Orientation != nil {
		p.Orientation = *u.Orientation
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.Photos != nil {
		p.Photos = *u.Photos
	}
	if u.ShowMe != nil {
		p.ShowMe = *u.ShowMe
	}
	if u.LookingFor != nil {
		p.LookingFor = *u.LookingFor
	}
	if u.AgeRange != nil {
		p.AgeRange = *u.AgeRange
	}
	if u.MaxDistanceKm != nil {
		p.MaxDistanceKm = *u.MaxDistanceKm
	}
	if u.JobTitle != nil {
		p.JobTitle = *u.JobTitle
	}
	if u.Education != nil {
		p.Education = *u.Education
	}
	if u.Drinking != nil {
		p.Drinking = *u.Drinking
	}
	if u.Smoking != nil {
		p.Smoking = *u.Smoking
	}
	if u.Religion != nil {
		p.Religion = *u.Religion
	}
	if u.Zodiac != nil {
		p.Zodiac = *u.Zodiac
	}
	if u.Politics != nil {
		p.Politics = *u.Politics
	}
	if u.Interests != nil {
		p.Interests = *u.Interests
	}
	if u.Prompts != nil {
		p.Prompts = *u.Prompts
	}
	if u.SocialLinks != nil {
		p.SocialLinks = *u.SocialLinks
	}
	if u.IntroVideoURL != nil {
		p.IntroVideoURL = *u.IntroVideoURL
	}
	if u.LivePhotoURL != nil {
		p.LivePhotoURL = *u.LivePhotoURL
	}
	return nil
}
