package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"max.ks1230/finance-tracker/internal/entity/calendar"
	"max.ks1230/finance-tracker/internal/entity/transaction"
)

const (
	transactionsPath      = "/api/transactions"
	addTransactionPath    = "/api/transactions/add"
	editTransactionPath   = "/api/transactions/edit"
	deleteTransactionPath = "/api/transactions/delete"
)

// AddRequest is the add form.
type AddRequest struct {
	UserID      int64
	Type        transaction.Type
	Amount      string
	Category    string
	Description string
	Date        calendar.Date
}

// EditRequest carries the editable fields of a transaction.
type EditRequest struct {
	Amount      string
	Category    string
	Description string
	Date        calendar.Date
}

func (c *Client) ListTransactions(ctx context.Context, userID int64) ([]transaction.Transaction, error) {
	return c.listTransactions(ctx, "transactions.list", userID, nil)
}

// ListTransactionsOn returns the user's transactions the server files under
// the given day.
func (c *Client) ListTransactionsOn(ctx context.Context, userID int64, day calendar.Date) ([]transaction.Transaction, error) {
	q := url.Values{}
	q.Set("date", day.String())
	return c.listTransactions(ctx, "transactions.list_by_date", userID, q)
}

func (c *Client) listTransactions(ctx context.Context, endpoint string, userID int64, q url.Values) ([]transaction.Transaction, error) {
	var list transactionList
	err := c.do(ctx, request{
		endpoint: endpoint,
		method:   http.MethodGet,
		path:     idPath(transactionsPath, userID),
		query:    q,
	}, &list)
	if err != nil {
		return nil, err
	}

	txs, err := list.entities(c.loc)
	if err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}
	return txs, nil
}

// AddTransaction returns the server's confirmation message, empty if the
// reply had none. The API does not echo the new record.
func (c *Client) AddTransaction(ctx context.Context, in AddRequest) (string, error) {
	var res messageSchema
	err := c.do(ctx, request{
		endpoint: "transactions.add",
		method:   http.MethodPost,
		path:     addTransactionPath,
		body: addTransactionRequest{
			UserID:      in.UserID,
			Type:        string(in.Type),
			Amount:      in.Amount,
			Category:    in.Category,
			Description: in.Description,
			Date:        in.Date.String(),
		},
	}, &res)
	if IsDecode(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// EditTransaction returns the record echoed by the server, or nil when the
// reply carried none; the edit itself succeeded in both cases.
func (c *Client) EditTransaction(ctx context.Context, id int64, in EditRequest) (*transaction.Transaction, error) {
	const endpoint = "transactions.edit"

	var echoed transactionSchema
	err := c.do(ctx, request{
		endpoint: endpoint,
		method:   http.MethodPut,
		path:     idPath(editTransactionPath, id),
		body: editTransactionRequest{
			Amount:      in.Amount,
			Category:    in.Category,
			Description: in.Description,
			Date:        in.Date.String(),
		},
	}, &echoed)
	if IsDecode(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	tx, err := echoed.entity(c.loc)
	if err != nil {
		return nil, errors.Wrap(err, endpoint)
	}
	return &tx, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		endpoint: "transactions.delete",
		method:   http.MethodDelete,
		path:     idPath(deleteTransactionPath, id),
	}, nil)
}
