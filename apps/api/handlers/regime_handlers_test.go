package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/mocks"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testRegime(active bool) business.Regime {
	percent := int32(10)
	return business.Regime{
		ID:          testRegimeID,
		Name:        "Glow Ritual",
		Slug:        "glow-ritual",
		StepCount:   5,
		Active:      active,
		OneTime:     business.TierPricing{Price: decimal.NewFromInt(4500)},
		ThreeMonths: business.TierPricing{Price: decimal.NewFromInt(12000), DiscountPercent: &percent},
		SixMonths:   business.TierPricing{Price: decimal.NewFromInt(22000)},
	}
}

func regimeRouter(h *RegimeHandler) *gin.Engine {
	return newTestRouter(func(r *gin.Engine) {
		r.GET("/regimes", h.ListRegimes)
		r.GET("/regimes/:id", h.GetRegime)
		r.GET("/regimes/slug/:slug", h.GetRegimeBySlug)
		r.GET("/regimes/:id/quote", h.GetQuote)
		r.GET("/regimes/:id/upsell", h.GetUpsell)
		r.GET("/admin/regimes", h.AdminListRegimes)
		r.POST("/admin/regimes", h.CreateRegime)
		r.PATCH("/admin/regimes/:id/active", h.SetRegimeActive)
		r.DELETE("/admin/regimes/:id", h.DeleteRegime)
	})
}

func TestRegimeHandler_ListRegimes(t *testing.T) {
	ctrl := gomock.NewController(t)
	regimes := mocks.NewMockRegimeService(ctrl)
	handler := NewRegimeHandler(regimes, services.NewPricingService())

	regimes.EXPECT().ListActive(gomock.Any()).Return([]business.Regime{testRegime(true)}, nil)

	w := perform(regimeRouter(handler), http.MethodGet, "/regimes", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[struct {
		Object string           `json:"object"`
		Data   []RegimeResponse `json:"data"`
	}](t, w)
	require.Len(t, resp.Data, 1)
	require.Len(t, resp.Data[0].Quotes, 3)
	assert.Equal(t, business.TierThreeMonths, resp.Data[0].Quotes[1].Tier)
	assert.True(t, resp.Data[0].Quotes[1].DiscountedPrice.Equal(decimal.NewFromInt(10800)))
	assert.False(t, resp.Data[0].Quotes[0].HasDiscount)
}

func TestRegimeHandler_GetRegime(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(m *mocks.MockRegimeService)
		wantStatus int
	}{
		{
			name: "active regime",
			path: "/regimes/" + testRegimeID.String(),
			setup: func(m *mocks.MockRegimeService) {
				r := testRegime(true)
				m.EXPECT().Get(gomock.Any(), testRegimeID).Return(&r, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "inactive regime is hidden",
			path: "/regimes/" + testRegimeID.String(),
			setup: func(m *mocks.MockRegimeService) {
				r := testRegime(false)
				m.EXPECT().Get(gomock.Any(), testRegimeID).Return(&r, nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed id",
			path:       "/regimes/not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "by slug",
			path: "/regimes/slug/glow-ritual",
			setup: func(m *mocks.MockRegimeService) {
				r := testRegime(true)
				m.EXPECT().GetBySlug(gomock.Any(), "glow-ritual").Return(&r, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown slug",
			path: "/regimes/slug/nope",
			setup: func(m *mocks.MockRegimeService) {
				m.EXPECT().GetBySlug(gomock.Any(), "nope").Return(nil, services.ErrRegimeNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			regimes := mocks.NewMockRegimeService(ctrl)
			if tt.setup != nil {
				tt.setup(regimes)
			}
			w := perform(regimeRouter(NewRegimeHandler(regimes, services.NewPricingService())), http.MethodGet, tt.path, nil, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRegimeHandler_GetQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	regimes := mocks.NewMockRegimeService(ctrl)
	handler := NewRegimeHandler(regimes, services.NewPricingService())
	router := regimeRouter(handler)

	quote := &business.PriceQuote{Tier: business.TierSixMonths, OriginalPrice: decimal.NewFromInt(22000), DiscountedPrice: decimal.NewFromInt(22000)}
	regimes.EXPECT().Quote(gomock.Any(), testRegimeID, business.TierSixMonths).Return(quote, nil)

	w := perform(router, http.MethodGet, "/regimes/"+testRegimeID.String()+"/quote?tier=6-months", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, business.TierSixMonths, decodeBody[business.PriceQuote](t, w).Tier)

	w = perform(router, http.MethodGet, "/regimes/"+testRegimeID.String()+"/quote?tier=12-months", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	regimes.EXPECT().Upsell(gomock.Any(), testRegimeID, business.TierOneTime).
		Return(&business.UpsellComparison{CurrentTier: business.TierOneTime, NextTier: business.TierThreeMonths}, nil)
	w = perform(router, http.MethodGet, "/regimes/"+testRegimeID.String()+"/upsell", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegimeHandler_Admin(t *testing.T) {
	ctrl := gomock.NewController(t)
	regimes := mocks.NewMockRegimeService(ctrl)
	router := regimeRouter(NewRegimeHandler(regimes, services.NewPricingService()))

	t.Run("list paginates", func(t *testing.T) {
		regimes.EXPECT().List(gomock.Any(), params.ListParams{Limit: 10, Offset: 10}).
			Return([]business.Regime{testRegime(false)}, int64(11), nil)

		w := perform(router, http.MethodGet, "/admin/regimes?limit=10&page=2", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[PaginatedResponse](t, w)
		assert.Equal(t, 2, resp.Pagination.TotalPages)
		assert.False(t, resp.HasMore)
	})

	t.Run("create", func(t *testing.T) {
		regimes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p params.RegimeParams) (*business.Regime, error) {
				assert.Equal(t, "glow-ritual", p.Slug)
				assert.Equal(t, int32(5), p.StepCount)
				require.NotNil(t, p.ThreeMonths.DiscountPercent)
				assert.Equal(t, int32(10), *p.ThreeMonths.DiscountPercent)
				r := testRegime(true)
				return &r, nil
			})

		body := map[string]any{
			"name": "Glow Ritual", "slug": "glow-ritual", "step_count": 5, "active": true,
			"one_time":     map[string]any{"price": "4500"},
			"three_months": map[string]any{"price": "12000", "discount_percent": 10},
			"six_months":   map[string]any{"price": "22000"},
		}
		w := perform(router, http.MethodPost, "/admin/regimes", body, nil)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("create rejects a bad step count", func(t *testing.T) {
		w := perform(router, http.MethodPost, "/admin/regimes", map[string]any{"name": "X", "slug": "x", "step_count": 4}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		regimes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrRegimeSlugExists)
		w := perform(router, http.MethodPost, "/admin/regimes", map[string]any{"name": "X", "slug": "x", "step_count": 3}, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("toggle active needs the flag", func(t *testing.T) {
		w := perform(router, http.MethodPatch, "/admin/regimes/"+testRegimeID.String()+"/active", map[string]any{}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		r := testRegime(false)
		regimes.EXPECT().SetActive(gomock.Any(), testRegimeID, false).Return(&r, nil)
		w = perform(router, http.MethodPatch, "/admin/regimes/"+testRegimeID.String()+"/active", map[string]any{"active": false}, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		regimes.EXPECT().Delete(gomock.Any(), testRegimeID).Return(nil)
		w := perform(router, http.MethodDelete, "/admin/regimes/"+testRegimeID.String(), nil, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
