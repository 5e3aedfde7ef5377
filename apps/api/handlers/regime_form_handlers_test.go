package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/mocks"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSteps = []business.FormStep{
	{Index: 0, Key: "name", Title: "What should we call you?"},
	{Index: 1, Key: "email", Title: "Where can we reach you?"},
	{Index: 2, Key: "phone", Title: "Your phone number"},
}

func formRouter(h *RegimeFormHandler) *gin.Engine {
	return newTestRouter(func(r *gin.Engine) {
		r.POST("/regimes/:id/form", h.StartForm)
		r.GET("/regimes/:id/form", h.GetForm)
		r.POST("/regimes/:id/form/steps", h.SubmitStep)
		r.POST("/regimes/:id/form/back", h.PreviousStep)
		r.POST("/regimes/:id/form/jump", h.JumpToStep)
		r.POST("/regimes/:id/form/complete", h.CompleteForm)
		r.DELETE("/regimes/:id/form", h.ResetForm)
	})
}

func formState(current, furthest int) *business.RegimeFormState {
	return &business.RegimeFormState{
		SessionID:    testSessionID,
		RegimeID:     testRegimeID,
		CurrentStep:  current,
		FurthestStep: furthest,
		TotalSteps:   len(testSteps),
	}
}

func TestRegimeFormHandler(t *testing.T) {
	base := "/regimes/" + testRegimeID.String() + "/form"

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		headers    map[string]string
		setup      func(m *mocks.MockRegimeFormService)
		wantStatus int
		check      func(t *testing.T, resp RegimeFormResponse)
	}{
		{
			name:       "session header required",
			method:     http.MethodPost,
			path:       base,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "start",
			method:  http.MethodPost,
			path:    base,
			headers: sessionHeaders(),
			setup: func(m *mocks.MockRegimeFormService) {
				m.EXPECT().Start(gomock.Any(), testSessionID, testRegimeID).Return(formState(0, 0), nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, resp RegimeFormResponse) {
				assert.Equal(t, "name", resp.Step.Key)
				assert.Len(t, resp.Steps, 3)
			},
		},
		{
			name:    "start on inactive regime",
			method:  http.MethodPost,
			path:    base,
			headers: sessionHeaders(),
			setup: func(m *mocks.MockRegimeFormService) {
				m.EXPECT().Start(gomock.Any(), testSessionID, testRegimeID).Return(nil, services.ErrRegimeInactive)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:    "load before start",
			method:  http.MethodGet,
			path:    base,
			headers: sessionHeaders(),
			setup: func(m *mocks.MockRegimeFormService) {
				m.EXPECT().Load(gomock.Any(), testSessionID, testRegimeID).Return(nil, services.ErrFormNotStarted)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "valid step advances",
			method:  http.MethodPost,
			path:    base + "/steps",
			body:    map[string]any{"answers": map[string]any{"full_name": "Ayesha Khan"}},
			headers: sessionHeaders(),
			setup: func(m *mocks.MockRegimeFormService) {
				m.EXPECT().SubmitStep(gomock.Any(), testSessionID, testRegimeID, business.RegimeFormAnswers{FullName: "Ayesha Khan"}).
					Return(formState(1, 1), nil, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, resp RegimeFormResponse) {
				assert.Equal(t, "email", resp.Step.Key)
				assert.Empty(t, resp.Errors)
			},
		},
		{
			name:    "invalid step stays put",
			method:  http.MethodPost,
			path:    base + "/steps",
			body:    map[string]any{"answers": map[string]any{"email": "nope"}},
			headers: sessionHeaders(),
			setup: func(m *mocks.MockRegimeFormService) {
				m.EXPECT().SubmitStep(gomock.Any(), testSessionID, testRegimeID, gomock.Any()).
					Return(formState(1, 1), []business.FieldError{{Field: "email", Message: "must be a valid email address"}}, nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
			check: func(t *testing.T, resp RegimeFormResponse) {
				assert.Equal(t, "email", resp.Step.Key)
				require.Len(t, resp.Errors, 1)
				assert.Equal(t, "email", resp.Errors[0].Field)
			},
		},
		{
			name:    "back",
			method:  http.MethodPost,
			path:    base + "/back",
			headers: sessionHeaders(),
			setup: func(m *mocks.MockRegimeFormService) {
				m.EXPECT().Back(gomock.Any(), testSessionID, testRegimeID).Return(formState(0, 2), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "jump needs a step",
			method:     http.MethodPost,
			path:       base + "/jump",
			body:       map[string]any{},
			headers:    sessionHeaders(),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "jump past furthest step",
			method:  http.MethodPost,
			path:    base + "/jump",
			body:    map[string]any{"step": 2},
			headers: sessionHeaders(),
			setup: func(m *mocks.MockRegimeFormService) {
				m.EXPECT().JumpTo(gomock.Any(), testSessionID, testRegimeID, 2).Return(nil, services.ErrFormStepLocked)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:    "complete with gaps",
			method:  http.MethodPost,
			path:    base + "/complete",
			headers: sessionHeaders(),
			setup: func(m *mocks.MockRegimeFormService) {
				m.EXPECT().Complete(gomock.Any(), testSessionID, testRegimeID).
					Return(formState(2, 2), []business.FieldError{{Field: "phone", Message: "is required"}}, nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
			check: func(t *testing.T, resp RegimeFormResponse) {
				assert.Equal(t, "phone", resp.Step.Key)
			},
		},
		{
			name:    "reset",
			method:  http.MethodDelete,
			path:    base,
			headers: sessionHeaders(),
			setup: func(m *mocks.MockRegimeFormService) {
				m.EXPECT().Reset(gomock.Any(), testSessionID, testRegimeID).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			forms := mocks.NewMockRegimeFormService(ctrl)
			forms.EXPECT().Steps().Return(testSteps).AnyTimes()
			if tt.setup != nil {
				tt.setup(forms)
			}

			w := perform(formRouter(NewRegimeFormHandler(forms)), tt.method, tt.path, tt.body, tt.headers)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.check != nil {
				tt.check(t, decodeBody[RegimeFormResponse](t, w))
			}
		})
	}
}
