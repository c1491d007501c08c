package store

import (
	"max.ks1230/finance-tracker/internal/entity/goal"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/entity/user"
)

type Action interface {
	isAction()
}

type LoggedIn struct {
	User user.User
}

type LoggedOut struct{}

type UserUpdated struct {
	User user.User
}

type Navigated struct {
	View View
}

type TransactionsLoaded struct {
	Transactions []transaction.Transaction
}

// TransactionAdded puts the record at the top of the list.
type TransactionAdded struct {
	Transaction transaction.Transaction
}

// TransactionUpdated replaces the record with ID.
type TransactionUpdated struct {
	ID          int64
	Transaction transaction.Transaction
}

type TransactionRemoved struct {
	ID int64
}

type GoalsLoaded struct {
	Goals []goal.Goal
}

type GoalRemoved struct {
	ID int64
}

func (LoggedIn) isAction()           {}
func (LoggedOut) isAction()          {}
func (UserUpdated) isAction()        {}
func (Navigated) isAction()          {}
func (TransactionsLoaded) isAction() {}
func (TransactionAdded) isAction()   {}
func (TransactionUpdated) isAction() {}
func (TransactionRemoved) isAction() {}
func (GoalsLoaded) isAction()        {}
func (GoalRemoved) isAction()        {}
