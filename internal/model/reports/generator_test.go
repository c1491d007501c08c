package reports

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finance-tracker/internal/clients/api"
	"max.ks1230/finance-tracker/internal/entity/calendar"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/model/dashboard"
)

var ist = time.FixedZone("IST", 5*3600+1800)

type tzConfig struct{}

func (tzConfig) Timezone() *time.Location {
	return ist
}

type fakeAPI struct {
	mu        sync.Mutex
	report    []api.CategoryTotal
	reportErr error
	byDay     map[string][]transaction.Transaction
	failDay   string
	requested []string
}

func (f *fakeAPI) ExpenseReport(_ context.Context, userID int64) ([]api.CategoryTotal, error) {
	return f.report, f.reportErr
}

func (f *fakeAPI) ListTransactionsOn(_ context.Context, userID int64, day calendar.Date) ([]transaction.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requested = append(f.requested, day.String())
	if day.String() == f.failDay {
		return nil, &api.TransportError{Endpoint: "transactions.list_by_date", Err: errors.New("connection reset")}
	}
	return f.byDay[day.String()], nil
}

func newTestGenerator(fake *fakeAPI) *Generator {
	g := NewGenerator(tzConfig{}, fake)
	g.now = func() time.Time {
		return time.Date(2024, 5, 15, 9, 0, 0, 0, ist)
	}
	return g
}

func tx(id int64, typ transaction.Type, amount string) transaction.Transaction {
	return transaction.Transaction{
		ID:       id,
		Type:     typ,
		Amount:   decimal.RequireFromString(amount),
		Category: "food",
		Date:     calendar.New(2024, 5, 15, ist),
	}
}

func Test_OnGenerateReport_ShouldQueryEachDayOfLastWeek(t *testing.T) {
	fake := &fakeAPI{
		report: []api.CategoryTotal{
			{Category: "food", Total: decimal.RequireFromString("40")},
			{Category: "rent", Total: decimal.RequireFromString("900")},
		},
		byDay: map[string][]transaction.Transaction{
			"2024-05-09": {tx(1, transaction.Expense, "10.10")},
			"2024-05-15": {tx(2, transaction.Expense, "5"), tx(3, transaction.Income, "1000"), tx(4, transaction.Expense, "0.25")},
		},
	}

	report, err := newTestGenerator(fake).GenerateReport(context.Background(), 7)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"2024-05-09", "2024-05-10", "2024-05-11", "2024-05-12", "2024-05-13", "2024-05-14", "2024-05-15",
	}, fake.requested)

	require.Len(t, report.Daily, 7)
	assert.Equal(t, "Thu", report.Daily[0].Day)
	assert.True(t, decimal.RequireFromString("10.10").Equal(report.Daily[0].Amount))
	assert.True(t, decimal.RequireFromString("5.25").Equal(report.Daily[6].Amount))
	assert.True(t, report.Daily[3].Amount.IsZero())

	assert.Equal(t, "rent", report.Categories[0].Category)

	out := report.Format()
	assert.Contains(t, out, "🏠 Rent: ₹900.00")
	assert.Contains(t, out, "Total: ₹940.00")
}

func Test_OnFailedDay_ShouldFailWholeReport(t *testing.T) {
	fake := &fakeAPI{failDay: "2024-05-12"}

	report, err := newTestGenerator(fake).GenerateReport(context.Background(), 7)
	assert.Nil(t, report)
	require.Error(t, err)
	assert.True(t, api.IsTransport(err))
	assert.Contains(t, err.Error(), "2024-05-12")
}

func Test_OnCategoryReportFailure_ShouldNotQueryDays(t *testing.T) {
	fake := &fakeAPI{reportErr: &api.APIError{Endpoint: "reports.expense", Status: 500, Message: "boom"}}

	_, err := newTestGenerator(fake).GenerateReport(context.Background(), 7)
	_, ok := api.AsAPIError(err)
	assert.True(t, ok)
	assert.Empty(t, fake.requested)
}

func Test_OnMalformedDailyRecord_ShouldFail(t *testing.T) {
	bad := tx(9, transaction.Expense, "1")
	bad.Amount = decimal.Zero
	fake := &fakeAPI{byDay: map[string][]transaction.Transaction{"2024-05-15": {bad}}}

	_, err := newTestGenerator(fake).GenerateReport(context.Background(), 7)
	assert.ErrorIs(t, err, dashboard.ErrMalformedTransaction)
}
