package messages

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/model/dashboard"
	"max.ks1230/finance-tracker/internal/model/store"
)

const (
	brokenDataMessage    = "Some of your transactions look broken. Try /refresh"
	reportFailedMessage  = "Failed to load expense reports"
	categoriesHelpHeader = "Use these codes in /income, /expense and /goal"
)

func (s *HandlerService) handleDashboard(_ context.Context, _ string, session *store.Store) (string, error) {
	session.Dispatch(store.Navigated{View: store.ViewDashboard})
	st := session.State()

	summary, err := dashboard.Summarize(st.Transactions, s.today())
	if err != nil {
		return brokenDataMessage, errors.Wrap(err, "handle dashboard")
	}
	return lines(fmt.Sprintf("Welcome back, %s 👋", currentUser(session).FirstName()), "", summary.Format()), nil
}

func (s *HandlerService) handleReport(ctx context.Context, _ string, session *store.Store) (string, error) {
	session.Dispatch(store.Navigated{View: store.ViewReports})

	report, err := s.reports.GenerateReport(ctx, currentUser(session).ID)
	if err != nil {
		return reportFailedMessage, errors.Wrap(err, "handle report")
	}
	return report.Format(), nil
}

func (s *HandlerService) handleCategories(_ context.Context, _ string, _ *store.Store) (string, error) {
	var b strings.Builder
	b.WriteString(categoriesHelpHeader)
	sections := []struct {
		title  string
		domain category.Domain
	}{
		{"Income", category.Income},
		{"Expense", category.Expense},
		{"Goals", category.Goal},
	}
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n\n%s:", sec.title)
		for _, desc := range category.List(sec.domain) {
			fmt.Fprintf(&b, "\n%s %s", desc.Value, desc)
		}
	}
	return b.String(), nil
}
