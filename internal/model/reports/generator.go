package reports

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/finance-tracker/internal/clients/api"
	"max.ks1230/finance-tracker/internal/entity/calendar"
	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/dashboard"
	"max.ks1230/finance-tracker/internal/utils"
)

const reportDays = 7

type expensesAPI interface {
	ExpenseReport(ctx context.Context, userID int64) ([]api.CategoryTotal, error)
	ListTransactionsOn(ctx context.Context, userID int64, day calendar.Date) ([]transaction.Transaction, error)
}

type config interface {
	Timezone() *time.Location
}

type Report struct {
	Categories []api.CategoryTotal
	Daily      []dashboard.DailyPoint
}

type Generator struct {
	api expensesAPI
	loc *time.Location
	now func() time.Time
}

func NewGenerator(config config, api expensesAPI) *Generator {
	return &Generator{
		api: api,
		loc: config.Timezone(),
		now: time.Now,
	}
}

// GenerateReport combines the server's monthly category report with one
// by-date query per day of the last week. Any failed query fails the report.
func (g *Generator) GenerateReport(ctx context.Context, userID int64) (*Report, error) {
	logger.Info("GenerateReport - start", zap.Int64("userID", userID))
	defer logger.Info("GenerateReport - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()

	categories, err := g.api.ExpenseReport(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Total.GreaterThan(categories[j].Total)
	})

	daily, err := g.dailyExpenses(ctx, userID, calendar.Today(g.now(), g.loc))
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	return &Report{Categories: categories, Daily: daily}, nil
}

func (g *Generator) dailyExpenses(ctx context.Context, userID int64, today calendar.Date) ([]dashboard.DailyPoint, error) {
	points := make([]dashboard.DailyPoint, reportDays)
	group, ctx := errgroup.WithContext(ctx)

	for i := 0; i < reportDays; i++ {
		i := i
		day := today.AddDays(i - (reportDays - 1))
		points[i] = dashboard.DailyPoint{Date: day, Day: day.Format("Mon"), Amount: decimal.Zero}

		group.Go(func() error {
			txs, err := g.api.ListTransactionsOn(ctx, userID, day)
			if err != nil {
				return errors.Wrapf(err, "expenses on %s", day)
			}
			total, err := sumExpenses(txs)
			if err != nil {
				return errors.Wrapf(err, "expenses on %s", day)
			}
			points[i].Amount = total
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

func sumExpenses(txs []transaction.Transaction) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return decimal.Zero, errors.Wrapf(dashboard.ErrMalformedTransaction, "id %d: %v", tx.ID, err)
		}
		if tx.Type == transaction.Expense {
			total = total.Add(tx.Amount)
		}
	}
	return total, nil
}

func (r *Report) Format() string {
	var b strings.Builder

	b.WriteString("🍰 Monthly expense by category\n")
	if len(r.Categories) == 0 {
		b.WriteString("No expenses this month\n")
	}
	total := decimal.Zero
	for _, rec := range r.Categories {
		fmt.Fprintf(&b, "%s: %s\n", category.Lookup(category.Expense, rec.Category), utils.FormatMoney(rec.Total))
		total = total.Add(rec.Total)
	}
	fmt.Fprintf(&b, "Total: %s\n", utils.FormatMoney(total))

	b.WriteString("\n📊 Daily expense (last 7 days)\n")
	b.WriteString(dashboard.FormatDaily(r.Daily))
	return b.String()
}
