package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

const expenseReportPath = "/api/reports/expense-report"

// CategoryTotal is one row of the server's current-month expense report.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

func (c *Client) ExpenseReport(ctx context.Context, userID int64) ([]CategoryTotal, error) {
	var list categoryTotalList
	err := c.do(ctx, request{
		endpoint: "reports.expense",
		method:   http.MethodGet,
		path:     idPath(expenseReportPath, userID),
	}, &list)
	if err != nil {
		return nil, err
	}

	res := make([]CategoryTotal, 0, len(list))
	for _, row := range list {
		res = append(res, CategoryTotal{Category: row.Category, Total: row.Total.Decimal})
	}
	return res, nil
}
