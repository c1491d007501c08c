package messages

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"max.ks1230/finance-tracker/internal/clients/api"
	"max.ks1230/finance-tracker/internal/entity/calendar"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/model/store"
	"max.ks1230/finance-tracker/internal/utils"
)

const (
	addedMessage                  = "Transaction added successfully"
	addFailedMessage              = "Failed to add transaction. Try again!"
	updatedMessage                = "Transaction updated successfully"
	updateFailedMessage           = "Failed to update transaction"
	deletedMessage                = "Transaction deleted"
	deleteFailedMessage           = "Failed to delete transaction"
	loadTransactionsFailedMessage = "Failed to load transactions"
	noTransactionsMessage         = "You have no transactions yet"
	transactionNotFoundMessage    = "No such transaction. Check /list"
	pendingHintMessage            = "⏳ not synced yet, /refresh to get its ID"
)

func (s *HandlerService) handleAdd(typ transaction.Type) handler {
	return func(ctx context.Context, arg string, session *store.Store) (string, error) {
		session.Dispatch(store.Navigated{View: store.ViewAddTransaction})

		fields := strings.Fields(arg)
		form := transactionForm{Domain: typ.Domain()}
		if len(fields) > 0 {
			form.Category = strings.ToLower(fields[0])
		}
		if len(fields) > 1 {
			form.Amount = fields[1]
		}
		form.Description = rest(fields, 2)
		if len(fields) > 2 && looksLikeDate(fields[2]) {
			form.Date = fields[2]
			form.Description = rest(fields, 3)
		}
		if msg := validateForm(form); msg != "" {
			return msg, nil
		}

		amount, _ := transaction.ParseAmount(form.Amount)
		date := calendar.Today(s.today(), s.loc)
		if form.Date != "" {
			date, _ = calendar.Parse(form.Date, s.loc)
		}
		u := currentUser(session)

		tx := transaction.Transaction{
			ID:          session.NextPendingID(),
			UserID:      u.ID,
			Type:        typ,
			Amount:      amount,
			Category:    form.Category,
			Date:        date,
			Description: form.Description,
		}

		var confirmation string
		err := session.Mutate(ctx, store.TransactionAdded{Transaction: tx}, func(ctx context.Context) ([]store.Action, error) {
			msg, err := s.api.AddTransaction(ctx, api.AddRequest{
				UserID:      u.ID,
				Type:        typ,
				Amount:      amount.String(),
				Category:    tx.Category,
				Description: tx.Description,
				Date:        date,
			})
			confirmation = msg
			return nil, err
		})
		if err != nil {
			return addFailedMessage, errors.Wrap(err, "handle add transaction")
		}

		if confirmation == "" {
			confirmation = addedMessage
		}
		return lines("✅ "+confirmation, formatTransaction(tx)), nil
	}
}

func (s *HandlerService) handleList(_ context.Context, _ string, session *store.Store) (string, error) {
	session.Dispatch(store.Navigated{View: store.ViewManage})

	txs := append([]transaction.Transaction(nil), session.State().Transactions...)
	if len(txs) == 0 {
		return noTransactionsMessage, nil
	}
	transaction.SortNewestFirst(txs)

	res := make([]string, 0, len(txs)+3)
	res = append(res, "📋 Your transactions")
	pending := false
	for _, tx := range txs {
		res = append(res, formatTransaction(tx))
		pending = pending || tx.Pending()
	}
	if pending {
		res = append(res, "", pendingHintMessage)
	}
	return lines(res...), nil
}

func (s *HandlerService) handleEdit(ctx context.Context, arg string, session *store.Store) (string, error) {
	session.Dispatch(store.Navigated{View: store.ViewManage})

	fields := strings.Fields(arg)
	if len(fields) < 4 {
		return incorrectUsageMessage, nil
	}
	id, ok := parseID(fields[0])
	if !ok {
		return incorrectIDMessage, nil
	}
	existing, ok := session.State().Transaction(id)
	if !ok {
		return transactionNotFoundMessage, nil
	}

	form := transactionForm{
		Domain:      existing.Type.Domain(),
		Amount:      fields[1],
		Category:    strings.ToLower(fields[2]),
		Date:        fields[3],
		Description: rest(fields, 4),
	}
	if msg := validateForm(form); msg != "" {
		return msg, nil
	}

	patched := existing
	patched.Amount, _ = transaction.ParseAmount(form.Amount)
	patched.Category = form.Category
	patched.Date, _ = calendar.Parse(form.Date, s.loc)
	patched.Description = form.Description

	err := session.Mutate(ctx, store.TransactionUpdated{ID: id, Transaction: patched}, func(ctx context.Context) ([]store.Action, error) {
		echoed, err := s.api.EditTransaction(ctx, id, api.EditRequest{
			Amount:      patched.Amount.String(),
			Category:    patched.Category,
			Description: patched.Description,
			Date:        patched.Date,
		})
		if err != nil || echoed == nil {
			return nil, err
		}
		return []store.Action{store.TransactionUpdated{ID: id, Transaction: *echoed}}, nil
	})
	if err != nil {
		return updateFailedMessage, errors.Wrap(err, "handle edit transaction")
	}

	updated, _ := session.State().Transaction(id)
	return lines("✅ "+updatedMessage, formatTransaction(updated)), nil
}

func (s *HandlerService) handleDelete(ctx context.Context, arg string, session *store.Store) (string, error) {
	session.Dispatch(store.Navigated{View: store.ViewManage})

	id, ok := parseID(strings.TrimSpace(arg))
	if !ok {
		return incorrectIDMessage, nil
	}
	if _, ok = session.State().Transaction(id); !ok {
		return transactionNotFoundMessage, nil
	}

	err := session.Mutate(ctx, store.TransactionRemoved{ID: id}, func(ctx context.Context) ([]store.Action, error) {
		return nil, s.api.DeleteTransaction(ctx, id)
	})
	if err != nil {
		return deleteFailedMessage, errors.Wrap(err, "handle delete transaction")
	}
	return "🗑 " + deletedMessage, nil
}

func (s *HandlerService) handleRefresh(ctx context.Context, _ string, session *store.Store) (string, error) {
	u := currentUser(session)
	err := session.Reload(ctx, u.ID, func(ctx context.Context) ([]transaction.Transaction, error) {
		return s.api.ListTransactions(ctx, u.ID)
	})
	if err != nil {
		return loadTransactionsFailedMessage, errors.Wrap(err, "handle refresh")
	}
	return fmt.Sprintf("🔄 Loaded %d transactions", len(session.State().Transactions)), nil
}

func formatTransaction(tx transaction.Transaction) string {
	sign := "-"
	if tx.Type == transaction.Income {
		sign = "+"
	}
	id := fmt.Sprintf("#%d", tx.ID)
	if tx.Pending() {
		id = "⏳"
	}

	line := fmt.Sprintf("%s %s %s %s%s", id, tx.Date, tx.CategoryDescriptor(), sign, utils.FormatMoney(tx.Amount))
	if tx.Description != "" {
		line += " · " + tx.Description
	}
	return line
}
