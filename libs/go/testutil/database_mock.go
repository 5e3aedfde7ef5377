package testutil

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/mocks"
	"go.uber.org/mock/gomock"
)

// MockDatabase provides utilities for database mocking in unit tests
type MockDatabase struct {
	ctrl    *gomock.Controller
	Querier *mocks.MockQuerier
	t       *testing.T
}

// NewMockDatabase creates a new mock database for unit testing
func NewMockDatabase(t *testing.T) *MockDatabase {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &MockDatabase{
		ctrl:    ctrl,
		Querier: mocks.NewMockQuerier(ctrl),
		t:       t,
	}
}

// Controller returns the gomock controller backing the querier
func (m *MockDatabase) Controller() *gomock.Controller {
	return m.ctrl
}

// ExpectRegime sets up a lookup by id. A nil regime is reported as missing.
func (m *MockDatabase) ExpectRegime(regime *db.Regime) *gomock.Call {
	if regime == nil {
		return m.Querier.EXPECT().GetRegime(gomock.Any(), gomock.Any()).Return(db.Regime{}, pgx.ErrNoRows)
	}
	return m.Querier.EXPECT().GetRegime(gomock.Any(), regime.ID).Return(*regime, nil)
}

// ExpectRegimeBySlug sets up a lookup by slug
func (m *MockDatabase) ExpectRegimeBySlug(regime db.Regime) *gomock.Call {
	return m.Querier.EXPECT().GetRegimeBySlug(gomock.Any(), regime.Slug).Return(regime, nil)
}

// ExpectActiveRegimes sets up the storefront listing
func (m *MockDatabase) ExpectActiveRegimes(regimes ...db.Regime) *gomock.Call {
	return m.Querier.EXPECT().ListActiveRegimes(gomock.Any()).Return(regimes, nil)
}

// ExpectOrderByNumber sets up the confirmation page lookup. A nil order is reported as missing.
func (m *MockDatabase) ExpectOrderByNumber(orderNumber string, order *db.Order) *gomock.Call {
	if order == nil {
		return m.Querier.EXPECT().GetOrderByNumber(gomock.Any(), orderNumber).Return(db.Order{}, pgx.ErrNoRows)
	}
	return m.Querier.EXPECT().GetOrderByNumber(gomock.Any(), orderNumber).Return(*order, nil)
}

// ExpectDiscountCode sets up a lookup of a customer-entered code. A nil code is reported as missing.
func (m *MockDatabase) ExpectDiscountCode(code string, discount *db.DiscountCode) *gomock.Call {
	if discount == nil {
		return m.Querier.EXPECT().GetDiscountCodeByCode(gomock.Any(), code).Return(db.DiscountCode{}, pgx.ErrNoRows)
	}
	return m.Querier.EXPECT().GetDiscountCodeByCode(gomock.Any(), code).Return(*discount, nil)
}
