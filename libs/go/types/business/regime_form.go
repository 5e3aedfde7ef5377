package business

import (
	"time"

	"github.com/google/uuid"
)

// RegimeFormAnswers is the personalization questionnaire. Validation tags are checked
// per step, so a partially filled struct is normal while the wizard is in progress.
type RegimeFormAnswers struct {
	FullName          string   `json:"full_name,omitempty" validate:"required,min=2,max=120"`
	Email             string   `json:"email,omitempty" validate:"required,email"`
	Phone             string   `json:"phone,omitempty" validate:"required,min=7,max=20"`
	AgeRange          string   `json:"age_range,omitempty" validate:"required,oneof=under-18 18-24 25-34 35-44 45-54 55+"`
	Gender            string   `json:"gender,omitempty" validate:"required,oneof=female male non-binary prefer-not-to-say"`
	SkinType          string   `json:"skin_type,omitempty" validate:"required,oneof=oily dry combination normal sensitive"`
	SkinConcerns      []string `json:"skin_concerns,omitempty" validate:"required,min=1,max=5,dive,oneof=acne aging pigmentation dullness redness dehydration pores dark-circles"`
	SkinSensitivity   string   `json:"skin_sensitivity,omitempty" validate:"required,oneof=low medium high"`
	BreakoutFrequency string   `json:"breakout_frequency,omitempty" validate:"required,oneof=never rarely monthly weekly constantly"`
	SunExposure       string   `json:"sun_exposure,omitempty" validate:"required,oneof=minimal moderate high"`
	SunscreenUsage    string   `json:"sunscreen_usage,omitempty" validate:"required,oneof=never sometimes daily"`
	CurrentRoutine    string   `json:"current_routine,omitempty" validate:"required,oneof=none basic moderate extensive"`
	Allergies         string   `json:"allergies,omitempty" validate:"max=500"`
	Climate           string   `json:"climate,omitempty" validate:"required,oneof=humid dry temperate cold"`
	WaterIntake       string   `json:"water_intake,omitempty" validate:"required,oneof=less-than-4 4-6 7-8 more-than-8"`
	SleepHours        string   `json:"sleep_hours,omitempty" validate:"required,oneof=less-than-5 5-6 7-8 more-than-8"`
	Goals             []string `json:"goals,omitempty" validate:"required,min=1,max=3,dive,oneof=clear-skin anti-aging hydration even-tone glow minimize-pores"`
	AdditionalNotes   string   `json:"additional_notes,omitempty" validate:"max=1000"`
}

// FormStep describes one page of the wizard and the answer fields it owns
type FormStep struct {
	Index  int      `json:"index"`
	Key    string   `json:"key"`
	Title  string   `json:"title"`
	Fields []string `json:"-"`
}

// RegimeFormState is the persisted progress of one customer through the wizard
type RegimeFormState struct {
	SessionID    string            `json:"session_id"`
	RegimeID     uuid.UUID         `json:"regime_id"`
	CurrentStep  int               `json:"current_step"`
	FurthestStep int               `json:"furthest_step"`
	TotalSteps   int               `json:"total_steps"`
	Answers      RegimeFormAnswers `json:"answers"`
	Completed    bool              `json:"completed"`
	StartedAt    time.Time         `json:"started_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// FieldError is a validation failure on one answer field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
