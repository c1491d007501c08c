package reconcile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finance-tracker/internal/entity/calendar"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/entity/user"
	"max.ks1230/finance-tracker/internal/model/store"
)

type testConfig struct {
	interval time.Duration
}

func (c testConfig) SyncInterval() time.Duration {
	return c.interval
}

func (testConfig) RequestTimeout() time.Duration {
	return time.Second
}

type fakeAPI struct {
	mu     sync.Mutex
	calls  []int64
	byUser map[int64][]transaction.Transaction
	err    error
}

func (f *fakeAPI) ListTransactions(_ context.Context, userID int64) ([]transaction.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, userID)
	return f.byUser[userID], f.err
}

func expense(id int64) transaction.Transaction {
	return transaction.Transaction{
		ID:       id,
		Type:     transaction.Expense,
		Amount:   decimal.NewFromInt(10),
		Category: "food",
		Date:     calendar.New(2024, 5, 15, time.UTC),
	}
}

func newSession(r *store.Registry, chatID, userID int64, pending bool) *store.Store {
	s := r.Session(chatID)
	s.Dispatch(store.LoggedIn{User: user.User{ID: userID}}, store.TransactionsLoaded{Transactions: []transaction.Transaction{expense(1)}})
	if pending {
		s.Dispatch(store.TransactionAdded{Transaction: expense(s.NextPendingID())})
	}
	return s
}

func Test_OnPull_ShouldReloadOnlyPendingSessions(t *testing.T) {
	r := store.NewRegistry()
	pending := newSession(r, 10, 7, true)
	newSession(r, 11, 8, false)
	r.Session(12)

	api := &fakeAPI{byUser: map[int64][]transaction.Transaction{7: {expense(1), expense(2)}}}
	NewPuller(api, r, testConfig{interval: time.Minute}).pullOnce(context.Background())

	assert.Equal(t, []int64{7}, api.calls)
	assert.False(t, pending.State().HasPending())
	assert.Len(t, pending.State().Transactions, 2)
}

func Test_OnFailedPull_ShouldKeepPendingRecords(t *testing.T) {
	r := store.NewRegistry()
	pending := newSession(r, 10, 7, true)

	api := &fakeAPI{err: errors.New("connection refused")}
	NewPuller(api, r, testConfig{interval: time.Minute}).pullOnce(context.Background())

	require.Len(t, api.calls, 1)
	assert.True(t, pending.State().HasPending())
}

func Test_OnZeroInterval_PullShouldReturnImmediately(t *testing.T) {
	r := store.NewRegistry()
	newSession(r, 10, 7, true)
	api := &fakeAPI{}

	done := make(chan struct{})
	go func() {
		NewPuller(api, r, testConfig{}).Pull(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Pull did not return")
	}
	assert.Empty(t, api.calls)
}
