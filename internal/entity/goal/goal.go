package goal

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-tracker/internal/entity/calendar"
	"max.ks1230/finance-tracker/internal/entity/category"
)

var ErrInvalidTarget = errors.New("goal target must be positive")

var hundred = decimal.NewFromInt(100)

type Goal struct {
	ID         int64
	UserID     int64
	Title      string
	Target     decimal.Decimal
	TargetDate calendar.Date
	Category   string
	Saved      decimal.Decimal
	Achieved   bool
}

func (g Goal) CategoryDescriptor() category.Descriptor {
	return category.Lookup(category.Goal, g.Category)
}

// Progress is saved/target without clamping; a goal saved past its target
// reports more than one.
func (g Goal) Progress() decimal.Decimal {
	if !g.Target.IsPositive() {
		return decimal.Zero
	}
	return g.Saved.Div(g.Target)
}

// BarFraction is Progress clamped to [0, 1] for drawing.
func (g Goal) BarFraction() decimal.Decimal {
	p := g.Progress()
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return p
}

// Percent is the unclamped progress in whole percent.
func (g Goal) Percent() decimal.Decimal {
	return g.Progress().Mul(hundred).Round(0)
}

// Bar draws fraction (expected in [0, 1]) as a fixed-width text bar.
func Bar(fraction decimal.Decimal, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(fraction.Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
