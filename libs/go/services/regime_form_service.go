package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/constants"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"go.uber.org/zap"
)

var (
	ErrFormNotStarted   = errors.New("regime form has not been started")
	ErrFormCompleted    = errors.New("regime form is already completed")
	ErrFormIncomplete   = errors.New("regime form is not completed")
	ErrInvalidFormStep  = errors.New("form step does not exist")
	ErrFormStepLocked   = errors.New("form step has not been reached yet")
	ErrMissingSessionID = errors.New("session id is required")
)

// regimeFormSteps is the questionnaire in the order it is presented
var regimeFormSteps = []business.FormStep{
	{Key: "full_name", Title: "What's your name?", Fields: []string{"FullName"}},
	{Key: "email", Title: "Where should we send your regime?", Fields: []string{"Email"}},
	{Key: "phone", Title: "Your phone number", Fields: []string{"Phone"}},
	{Key: "age_range", Title: "How old are you?", Fields: []string{"AgeRange"}},
	{Key: "gender", Title: "How do you identify?", Fields: []string{"Gender"}},
	{Key: "skin_type", Title: "What is your skin type?", Fields: []string{"SkinType"}},
	{Key: "skin_concerns", Title: "What are your main skin concerns?", Fields: []string{"SkinConcerns"}},
	{Key: "skin_sensitivity", Title: "How sensitive is your skin?", Fields: []string{"SkinSensitivity"}},
	{Key: "breakout_frequency", Title: "How often do you break out?", Fields: []string{"BreakoutFrequency"}},
	{Key: "sun_exposure", Title: "How much sun do you get?", Fields: []string{"SunExposure"}},
	{Key: "sunscreen_usage", Title: "Do you wear sunscreen?", Fields: []string{"SunscreenUsage"}},
	{Key: "current_routine", Title: "What does your routine look like today?", Fields: []string{"CurrentRoutine"}},
	{Key: "allergies", Title: "Any allergies we should know about?", Fields: []string{"Allergies"}},
	{Key: "climate", Title: "What is the climate where you live?", Fields: []string{"Climate"}},
	{Key: "water_intake", Title: "How many glasses of water do you drink a day?", Fields: []string{"WaterIntake"}},
	{Key: "sleep_hours", Title: "How many hours do you sleep?", Fields: []string{"SleepHours"}},
	{Key: "goals", Title: "What are your skin goals?", Fields: []string{"Goals", "AdditionalNotes"}},
}

func init() {
	for i := range regimeFormSteps {
		regimeFormSteps[i].Index = i
	}
}

// RegimeFormService walks a customer through the personalization questionnaire.
// Progress lives in the session store so a customer can leave and resume.
type RegimeFormService struct {
	store    interfaces.SessionStore
	regimes  interfaces.RegimeService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewRegimeFormService creates a new regime form service
func NewRegimeFormService(store interfaces.SessionStore, regimes interfaces.RegimeService) *RegimeFormService {
	return &RegimeFormService{
		store:    store,
		regimes:  regimes,
		validate: helpers.NewValidator(),
		logger:   logger.Log,
	}
}

// Steps returns the questionnaire layout
func (s *RegimeFormService) Steps() []business.FormStep {
	steps := make([]business.FormStep, len(regimeFormSteps))
	copy(steps, regimeFormSteps)
	return steps
}

// Start opens the questionnaire for a regime, resuming saved progress when there is any
func (s *RegimeFormService) Start(ctx context.Context, sessionID string, regimeID uuid.UUID) (*business.RegimeFormState, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}
	regime, err := s.regimes.Get(ctx, regimeID)
	if err != nil {
		return nil, err
	}
	if !regime.Active {
		return nil, ErrRegimeInactive
	}

	state, found, err := s.load(ctx, sessionID, regimeID)
	if err != nil {
		return nil, err
	}
	if found {
		return state, nil
	}

	now := time.Now().UTC()
	state = &business.RegimeFormState{
		SessionID:  sessionID,
		RegimeID:   regimeID,
		TotalSteps: len(regimeFormSteps),
		StartedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	s.logger.Debug("regime form started", zap.String("session_id", sessionID), zap.String("regime_id", regimeID.String()))
	return state, nil
}

// Load returns saved progress
func (s *RegimeFormService) Load(ctx context.Context, sessionID string, regimeID uuid.UUID) (*business.RegimeFormState, error) {
	state, found, err := s.load(ctx, sessionID, regimeID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrFormNotStarted
	}
	return state, nil
}

// SubmitStep merges the answers of the current step and advances when they are valid.
// Invalid answers are kept so the customer does not lose what they typed.
func (s *RegimeFormService) SubmitStep(ctx context.Context, sessionID string, regimeID uuid.UUID, answers business.RegimeFormAnswers) (*business.RegimeFormState, []business.FieldError, error) {
	state, err := s.Load(ctx, sessionID, regimeID)
	if err != nil {
		return nil, nil, err
	}
	if state.Completed {
		return state, nil, ErrFormCompleted
	}

	step := regimeFormSteps[state.CurrentStep]
	mergeStepAnswers(&state.Answers, answers, step.Fields)

	fieldErrs, err := s.validateStep(state.Answers, step)
	if err != nil {
		return nil, nil, err
	}
	if len(fieldErrs) == 0 && state.CurrentStep < len(regimeFormSteps)-1 {
		state.CurrentStep++
		state.FurthestStep = max(state.FurthestStep, state.CurrentStep)
	}

	state.UpdatedAt = time.Now().UTC()
	if err := s.save(ctx, state); err != nil {
		return nil, nil, err
	}
	return state, fieldErrs, nil
}

// Back moves one step back. The first step stays where it is.
func (s *RegimeFormService) Back(ctx context.Context, sessionID string, regimeID uuid.UUID) (*business.RegimeFormState, error) {
	state, err := s.Load(ctx, sessionID, regimeID)
	if err != nil {
		return nil, err
	}
	if state.CurrentStep == 0 {
		return state, nil
	}

	state.CurrentStep--
	state.UpdatedAt = time.Now().UTC()
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// JumpTo moves to any step the customer has already unlocked
func (s *RegimeFormService) JumpTo(ctx context.Context, sessionID string, regimeID uuid.UUID, step int) (*business.RegimeFormState, error) {
	if step < 0 || step >= len(regimeFormSteps) {
		return nil, ErrInvalidFormStep
	}
	state, err := s.Load(ctx, sessionID, regimeID)
	if err != nil {
		return nil, err
	}
	if step > state.FurthestStep {
		return nil, ErrFormStepLocked
	}

	state.CurrentStep = step
	state.UpdatedAt = time.Now().UTC()
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Complete validates every answer. On failure the wizard is moved to the first step with an error.
func (s *RegimeFormService) Complete(ctx context.Context, sessionID string, regimeID uuid.UUID) (*business.RegimeFormState, []business.FieldError, error) {
	state, err := s.Load(ctx, sessionID, regimeID)
	if err != nil {
		return nil, nil, err
	}
	if state.Completed {
		return state, nil, nil
	}

	for _, step := range regimeFormSteps {
		fieldErrs, err := s.validateStep(state.Answers, step)
		if err != nil {
			return nil, nil, err
		}
		if len(fieldErrs) > 0 {
			state.CurrentStep = step.Index
			state.UpdatedAt = time.Now().UTC()
			if err := s.save(ctx, state); err != nil {
				return nil, nil, err
			}
			return state, fieldErrs, nil
		}
	}

	state.Completed = true
	state.CurrentStep = len(regimeFormSteps) - 1
	state.FurthestStep = state.CurrentStep
	state.UpdatedAt = time.Now().UTC()
	if err := s.save(ctx, state); err != nil {
		return nil, nil, err
	}

	s.logger.Info("regime form completed", zap.String("session_id", sessionID), zap.String("regime_id", regimeID.String()))
	return state, nil, nil
}

// Reset discards saved progress
func (s *RegimeFormService) Reset(ctx context.Context, sessionID string, regimeID uuid.UUID) error {
	if sessionID == "" {
		return ErrMissingSessionID
	}
	return s.store.Clear(ctx, formKey(sessionID, regimeID))
}

// CompletedAnswers returns the answers of a completed questionnaire for attaching to an order
func (s *RegimeFormService) CompletedAnswers(ctx context.Context, sessionID string, regimeID uuid.UUID) (*business.RegimeFormAnswers, error) {
	state, err := s.Load(ctx, sessionID, regimeID)
	if err != nil {
		if errors.Is(err, ErrFormNotStarted) {
			return nil, ErrFormIncomplete
		}
		return nil, err
	}
	if !state.Completed {
		return nil, ErrFormIncomplete
	}
	answers := state.Answers
	return &answers, nil
}

func (s *RegimeFormService) validateStep(answers business.RegimeFormAnswers, step business.FormStep) ([]business.FieldError, error) {
	err := s.validate.StructPartial(answers, step.Fields...)
	if err == nil {
		return nil, nil
	}
	fieldErrs := helpers.FieldErrors(err)
	if fieldErrs == nil {
		return nil, fmt.Errorf("failed to validate form step %s: %w", step.Key, err)
	}
	return fieldErrs, nil
}

func (s *RegimeFormService) load(ctx context.Context, sessionID string, regimeID uuid.UUID) (*business.RegimeFormState, bool, error) {
	if sessionID == "" {
		return nil, false, ErrMissingSessionID
	}
	var state business.RegimeFormState
	found, err := s.store.Get(ctx, formKey(sessionID, regimeID), &state)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load regime form: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	if state.CurrentStep < 0 || state.CurrentStep >= len(regimeFormSteps) {
		state.CurrentStep = 0
	}
	state.TotalSteps = len(regimeFormSteps)
	return &state, true, nil
}

func (s *RegimeFormService) save(ctx context.Context, state *business.RegimeFormState) error {
	if err := s.store.Put(ctx, formKey(state.SessionID, state.RegimeID), state); err != nil {
		return fmt.Errorf("failed to save regime form: %w", err)
	}
	return nil
}

func formKey(sessionID string, regimeID uuid.UUID) string {
	return SessionKey(constants.FormSessionPrefix, sessionID, regimeID.String())
}

// mergeStepAnswers copies the named fields from src into dst, trimming text answers
func mergeStepAnswers(dst *business.RegimeFormAnswers, src business.RegimeFormAnswers, fields []string) {
	dv := reflect.ValueOf(dst).Elem()
	sv := reflect.ValueOf(src)
	for _, name := range fields {
		value := sv.FieldByName(name)
		if value.Kind() == reflect.String {
			dv.FieldByName(name).SetString(strings.TrimSpace(value.String()))
			continue
		}
		dv.FieldByName(name).Set(value)
	}
}
