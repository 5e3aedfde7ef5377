package mocks

import (
	"context"
	"testing"

	"github.com/regime-co/regime-api/libs/go/db"
	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockSessionStoreForTest creates a new mock SessionStore for testing
func NewMockSessionStoreForTest(t *testing.T) *MockSessionStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSessionStore(ctrl)
}

// ExpectInlineTx makes the runner execute each transaction closure directly
// against q, times times
func ExpectInlineTx(runner *MockTxRunner, q db.Querier, times int) {
	runner.EXPECT().
		RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(db.Querier) error) error {
			return fn(q)
		}).
		Times(times)
}
