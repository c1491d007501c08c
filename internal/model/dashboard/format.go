package dashboard

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/utils"
)

const chartWidth = 12

func (s Summary) Format() string {
	var b strings.Builder

	b.WriteString("📊 Financial Overview\n")
	fmt.Fprintf(&b, "Total Income: %s\n", utils.FormatMoney(s.TotalIncome))
	fmt.Fprintf(&b, "Total Expense: %s\n", utils.FormatMoney(s.TotalExpense))
	fmt.Fprintf(&b, "Remaining Balance: %s\n", utils.FormatMoney(s.RemainingBalance))

	b.WriteString("\n🧾 Expenses\n")
	fmt.Fprintf(&b, "Today: %s\n", utils.FormatMoney(s.Expenses.Today))
	fmt.Fprintf(&b, "Yesterday: %s\n", utils.FormatMoney(s.Expenses.Yesterday))
	fmt.Fprintf(&b, "Last 7 days: %s\n", utils.FormatMoney(s.Expenses.Last7Days))
	fmt.Fprintf(&b, "Last 30 days: %s\n", utils.FormatMoney(s.Expenses.Last30Days))

	b.WriteString("\n📈 Daily expenses (last week)\n")
	b.WriteString(FormatDaily(s.Daily))

	b.WriteString("\n🍰 This month by category\n")
	if len(s.Categories) == 0 {
		b.WriteString("No expenses this month\n")
	}
	for _, c := range s.Categories {
		desc := category.Lookup(category.Expense, c.Category)
		fmt.Fprintf(&b, "%s: %s\n", desc, utils.FormatMoney(c.Amount))
	}

	return b.String()
}

// FormatDaily draws the series as horizontal bars scaled to the largest day.
func FormatDaily(points []DailyPoint) string {
	peak := decimal.Zero
	for _, p := range points {
		if p.Amount.GreaterThan(peak) {
			peak = p.Amount
		}
	}

	var b strings.Builder
	for _, p := range points {
		filled := 0
		if peak.IsPositive() {
			filled = int(p.Amount.Mul(decimal.NewFromInt(chartWidth)).Div(peak).Round(0).IntPart())
		}
		fmt.Fprintf(&b, "%s %s %s\n", p.Day, strings.Repeat("▇", filled), utils.FormatMoney(p.Amount))
	}
	return b.String()
}
