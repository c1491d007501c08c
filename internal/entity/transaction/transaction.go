package transaction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-tracker/internal/entity/calendar"
	"max.ks1230/finance-tracker/internal/entity/category"
)

type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

// amounts are entered with cent precision
const amountPlaces = 2

// Plain decimal text only: no sign, no exponent, bounded length.
var amountPattern = regexp.MustCompile(`^\d{1,12}(\.\d{1,12})?$`)

var (
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidAmount = errors.New("invalid amount")
)

type Transaction struct {
	ID          int64
	UserID      int64
	Type        Type
	Amount      decimal.Decimal
	Category    string
	Date        calendar.Date
	Description string
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", errors.Wrapf(ErrInvalidType, "%q", s)
	}
	return t, nil
}

func (t Type) Valid() bool {
	return t == Income || t == Expense
}

func (t Type) Domain() category.Domain {
	if t == Income {
		return category.Income
	}
	return category.Expense
}

// ParseAmount parses user input: plain decimal text of a positive number with
// at most two decimals.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if !amountPattern.MatchString(s) {
		return decimal.Zero, errors.Wrapf(ErrInvalidAmount, "%.32q", s)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrInvalidAmount, "%q", s)
	}
	if !amount.IsPositive() || !amount.Equal(amount.Truncate(amountPlaces)) {
		return decimal.Zero, errors.Wrapf(ErrInvalidAmount, "%q", s)
	}
	return amount, nil
}

// Pending records were created locally and have no server ID yet.
func (t Transaction) Pending() bool {
	return t.ID < 0
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return errors.Wrapf(ErrInvalidType, "%q", t.Type)
	}
	if !t.Amount.IsPositive() {
		return errors.Wrapf(ErrInvalidAmount, "%s", t.Amount)
	}
	if t.Date.IsZero() {
		return calendar.ErrInvalidDate
	}
	return nil
}

func (t Transaction) CategoryDescriptor() category.Descriptor {
	return category.Lookup(t.Type.Domain(), t.Category)
}

// SortNewestFirst orders by date descending, keeping insertion order for
// records of the same day.
func SortNewestFirst(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date.Time)
	})
}
