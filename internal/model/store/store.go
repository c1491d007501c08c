package store

import (
	"context"
	"sync"

	"max.ks1230/finance-tracker/internal/entity/goal"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/entity/user"
)

type View string

const (
	ViewLogin          View = "Login"
	ViewSignUp         View = "SignUp"
	ViewDashboard      View = "Dashboard"
	ViewAddTransaction View = "AddIncomeExpense"
	ViewManage         View = "ManageExpenses"
	ViewGoals          View = "Goals"
	ViewReports        View = "ExpenseReports"
	ViewProfile        View = "Profile"
)

// State is treated as immutable: Reduce never writes into the slices of the
// state it receives.
type State struct {
	User         *user.User
	View         View
	Transactions []transaction.Transaction
	Goals        []goal.Goal
}

func (s State) LoggedIn() bool {
	return s.User != nil
}

func (s State) Transaction(id int64) (transaction.Transaction, bool) {
	for _, tx := range s.Transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return transaction.Transaction{}, false
}

func (s State) Goal(id int64) (goal.Goal, bool) {
	for _, g := range s.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return goal.Goal{}, false
}

func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case LoggedIn:
		u := a.User
		return State{User: &u, View: ViewDashboard}
	case LoggedOut:
		return State{View: ViewLogin}
	case UserUpdated:
		u := a.User
		s.User = &u
	case Navigated:
		s.View = a.View
	case TransactionsLoaded:
		s.Transactions = append([]transaction.Transaction(nil), a.Transactions...)
	case TransactionAdded:
		txs := make([]transaction.Transaction, 0, len(s.Transactions)+1)
		txs = append(txs, a.Transaction)
		s.Transactions = append(txs, s.Transactions...)
	case TransactionUpdated:
		txs := make([]transaction.Transaction, len(s.Transactions))
		for i, tx := range s.Transactions {
			if tx.ID == a.ID {
				tx = a.Transaction
			}
			txs[i] = tx
		}
		s.Transactions = txs
	case TransactionRemoved:
		txs := make([]transaction.Transaction, 0, len(s.Transactions))
		for _, tx := range s.Transactions {
			if tx.ID != a.ID {
				txs = append(txs, tx)
			}
		}
		s.Transactions = txs
	case GoalsLoaded:
		s.Goals = append([]goal.Goal(nil), a.Goals...)
	case GoalRemoved:
		goals := make([]goal.Goal, 0, len(s.Goals))
		for _, g := range s.Goals {
			if g.ID != a.ID {
				goals = append(goals, g)
			}
		}
		s.Goals = goals
	}
	return s
}

// Store holds the state of one chat session.
type Store struct {
	mu    sync.Mutex
	state State

	// serializes Mutate so a rollback never discards another mutation
	mutateMu sync.Mutex
	pending  int64

	// guarded by mu; bumped when a mutation starts and when it ends
	generation uint64
	mutating   bool
}

func New() *Store {
	return &Store{state: State{View: ViewLogin}}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Dispatch(actions ...Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range actions {
		s.state = Reduce(s.state, a)
	}
}

// NextPendingID hands out negative IDs for records the server has not
// numbered yet.
func (s *Store) NextPendingID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending--
	return s.pending
}

// CommitFunc performs the remote call and returns the actions that reconcile
// the tentative state with the server's answer.
type CommitFunc func(ctx context.Context) ([]Action, error)

// Mutate applies tentative right away, then runs commit. When commit fails
// the state seen before tentative is restored and the error returned.
func (s *Store) Mutate(ctx context.Context, tentative Action, commit CommitFunc) error {
	s.mutateMu.Lock()
	defer s.mutateMu.Unlock()

	s.mu.Lock()
	before := s.state
	s.state = Reduce(s.state, tentative)
	s.generation++
	s.mutating = true
	s.mu.Unlock()

	reconcile, err := commit(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.mutating = false
	if err != nil {
		s.state = before
		return err
	}
	for _, a := range reconcile {
		s.state = Reduce(s.state, a)
	}
	return nil
}

// Reload replaces the cached transactions of userID with a fresh list. It
// never blocks a Mutate: the list is dropped if a mutation overlapped fetch or
// the session changed user meanwhile.
func (s *Store) Reload(ctx context.Context, userID int64, fetch func(ctx context.Context) ([]transaction.Transaction, error)) error {
	s.mu.Lock()
	generation := s.generation
	s.mu.Unlock()

	txs, err := fetch(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutating || s.generation != generation {
		return nil
	}
	if s.state.User == nil || s.state.User.ID != userID {
		return nil
	}
	s.state = Reduce(s.state, TransactionsLoaded{Transactions: txs})
	return nil
}

// HasPending reports whether some cached record still waits for its server ID.
func (s State) HasPending() bool {
	for _, tx := range s.Transactions {
		if tx.Pending() {
			return true
		}
	}
	return false
}
