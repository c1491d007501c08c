package calendar

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
)

const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// date-time layouts the API is known to emit besides plain dates
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Date is a calendar day, stored as midnight of that day in some location.
type Date struct {
	time.Time
}

func New(year int, month time.Month, day int, loc *time.Location) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, loc)}
}

// Of truncates t to its calendar day in t's own location.
func Of(t time.Time) Date {
	return Date{now.With(t).BeginningOfDay()}
}

// Today is the calendar day of the instant in loc.
func Today(instant time.Time, loc *time.Location) Date {
	return Of(instant.In(loc))
}

// Parse accepts a plain YYYY-MM-DD date, which is taken as that calendar
// day, or a date-time, which is first converted to loc.
func Parse(s string, loc *time.Location) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrInvalidDate
	}
	if t, err := time.ParseInLocation(Layout, s, loc); err == nil {
		return Date{t}, nil
	}
	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return Of(t.In(loc)), nil
		}
	}
	return Date{}, errors.Wrapf(ErrInvalidDate, "%q", s)
}

// In keeps the year, month and day and re-anchors them in loc.
func (d Date) In(loc *time.Location) Date {
	return New(d.Year(), d.Month(), d.Day(), loc)
}

func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

func (d Date) Same(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month() && d.Day() == other.Day()
}

// Between reports whether from <= d <= to, comparing calendar days only.
func (d Date) Between(from, to Date) bool {
	k := d.key()
	return from.key() <= k && k <= to.key()
}

func (d Date) BeginningOfMonth() Date {
	return Date{now.With(d.Time).BeginningOfMonth()}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(Layout)
}

func (d Date) key() int {
	return d.Year()*10000 + int(d.Month())*100 + d.Day()
}
