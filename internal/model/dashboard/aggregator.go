package dashboard

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-tracker/internal/entity/calendar"
	"max.ks1230/finance-tracker/internal/entity/transaction"
)

const (
	weekDays   = 7
	monthDays  = 30
	seriesDays = 7
)

var ErrMalformedTransaction = errors.New("malformed transaction")

type PeriodTotals struct {
	Today      decimal.Decimal
	Yesterday  decimal.Decimal
	Last7Days  decimal.Decimal
	Last30Days decimal.Decimal
}

type DailyPoint struct {
	Date   calendar.Date
	Day    string
	Amount decimal.Decimal
}

type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

type Summary struct {
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	RemainingBalance decimal.Decimal

	Expenses   PeriodTotals
	Daily      []DailyPoint
	Categories []CategoryTotal
}

// Summarize builds the dashboard for the viewer whose clock reads now;
// calendar days are taken in now's location. A record breaking the
// transaction invariants fails the whole summary instead of being skipped.
func Summarize(txs []transaction.Transaction, now time.Time) (Summary, error) {
	loc := now.Location()
	today := calendar.Today(now, loc)
	w := newWindows(today)

	s := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Expenses: PeriodTotals{
			Today:      decimal.Zero,
			Yesterday:  decimal.Zero,
			Last7Days:  decimal.Zero,
			Last30Days: decimal.Zero,
		},
		Daily:      newDailySeries(today),
		Categories: make([]CategoryTotal, 0),
	}
	byCategory := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return Summary{}, errors.Wrapf(ErrMalformedTransaction, "id %d: %v", tx.ID, err)
		}

		if tx.Type == transaction.Income {
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
			continue
		}
		s.TotalExpense = s.TotalExpense.Add(tx.Amount)

		day := tx.Date.In(loc)
		s.Expenses.add(w, day, tx.Amount)
		for i := range s.Daily {
			if s.Daily[i].Date.Same(day) {
				s.Daily[i].Amount = s.Daily[i].Amount.Add(tx.Amount)
			}
		}
		if day.Between(w.monthStart, today) {
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
		}
	}

	s.RemainingBalance = s.TotalIncome.Sub(s.TotalExpense)
	s.Categories = groupCategories(byCategory)
	return s, nil
}

type windows struct {
	today      calendar.Date
	yesterday  calendar.Date
	week       calendar.Date
	month      calendar.Date
	monthStart calendar.Date
}

// Trailing windows start N calendar days before today and end today,
// both ends inclusive.
func newWindows(today calendar.Date) windows {
	return windows{
		today:      today,
		yesterday:  today.AddDays(-1),
		week:       today.AddDays(-weekDays),
		month:      today.AddDays(-monthDays),
		monthStart: today.BeginningOfMonth(),
	}
}

func (p *PeriodTotals) add(w windows, day calendar.Date, amount decimal.Decimal) {
	if day.Same(w.today) {
		p.Today = p.Today.Add(amount)
	}
	if day.Same(w.yesterday) {
		p.Yesterday = p.Yesterday.Add(amount)
	}
	if day.Between(w.week, w.today) {
		p.Last7Days = p.Last7Days.Add(amount)
	}
	if day.Between(w.month, w.today) {
		p.Last30Days = p.Last30Days.Add(amount)
	}
}

func newDailySeries(today calendar.Date) []DailyPoint {
	points := make([]DailyPoint, 0, seriesDays)
	for i := seriesDays - 1; i >= 0; i-- {
		d := today.AddDays(-i)
		points = append(points, DailyPoint{
			Date:   d,
			Day:    d.Format("Mon"),
			Amount: decimal.Zero,
		})
	}
	return points
}

func groupCategories(m map[string]decimal.Decimal) []CategoryTotal {
	records := make([]CategoryTotal, 0, len(m))
	for cat, am := range m {
		if am.IsZero() {
			continue
		}
		records = append(records, CategoryTotal{Category: cat, Amount: am})
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Amount.Equal(records[j].Amount) {
			return records[i].Amount.GreaterThan(records[j].Amount)
		}
		return records[i].Category < records[j].Category
	})
	return records
}
