package messages

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"max.ks1230/finance-tracker/internal/clients/api"
	"max.ks1230/finance-tracker/internal/entity/calendar"
	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/goal"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/model/store"
	"max.ks1230/finance-tracker/internal/utils"
)

const (
	goalAddedMessage        = "Goal added"
	goalAddFailedMessage    = "Failed to add goal"
	goalDeletedMessage      = "Goal deleted"
	goalDeleteFailedMessage = "Failed to delete goal"
	goalsFetchFailedMessage = "Failed to fetch goals"
	noGoalsMessage          = "You have no goals yet. Add one with /goal"
)

const goalBarWidth = 10

func (s *HandlerService) handleGoals(ctx context.Context, _ string, session *store.Store) (string, error) {
	session.Dispatch(store.Navigated{View: store.ViewGoals})

	goals, err := s.loadGoals(ctx, session)
	if err != nil {
		return goalsFetchFailedMessage, errors.Wrap(err, "handle goals")
	}
	return formatGoals(goals), nil
}

func (s *HandlerService) handleAddGoal(ctx context.Context, arg string, session *store.Store) (string, error) {
	session.Dispatch(store.Navigated{View: store.ViewGoals})

	fields := strings.Fields(arg)
	form := goalForm{Domain: category.Goal, Title: rest(fields, 3)}
	for i, dst := range []*string{&form.Category, &form.Target, &form.TargetDate} {
		if i < len(fields) {
			*dst = fields[i]
		}
	}
	form.Category = strings.ToLower(form.Category)
	if msg := validateForm(form); msg != "" {
		return msg, nil
	}

	target, _ := transaction.ParseAmount(form.Target)
	targetDate, _ := calendar.Parse(form.TargetDate, s.loc)

	err := s.api.AddGoal(ctx, api.AddGoalRequest{
		UserID:     currentUser(session).ID,
		Title:      form.Title,
		Target:     target.String(),
		TargetDate: targetDate,
		Category:   form.Category,
	})
	if err != nil {
		return goalAddFailedMessage, errors.Wrap(err, "handle add goal")
	}

	goals, err := s.loadGoals(ctx, session)
	if err != nil {
		return lines("🎯 "+goalAddedMessage, goalsFetchFailedMessage), errors.Wrap(err, "handle add goal")
	}
	return lines("🎯 "+goalAddedMessage, "", formatGoals(goals)), nil
}

func (s *HandlerService) handleDeleteGoal(ctx context.Context, arg string, session *store.Store) (string, error) {
	session.Dispatch(store.Navigated{View: store.ViewGoals})

	id, ok := parseID(strings.TrimSpace(arg))
	if !ok {
		return incorrectIDMessage, nil
	}

	err := session.Mutate(ctx, store.GoalRemoved{ID: id}, func(ctx context.Context) ([]store.Action, error) {
		return nil, s.api.DeleteGoal(ctx, id)
	})
	if err != nil {
		return goalDeleteFailedMessage, errors.Wrap(err, "handle delete goal")
	}
	return "🗑 " + goalDeletedMessage, nil
}

func (s *HandlerService) loadGoals(ctx context.Context, session *store.Store) ([]goal.Goal, error) {
	goals, err := s.api.ListGoals(ctx, currentUser(session).ID)
	if err != nil {
		return nil, err
	}
	session.Dispatch(store.GoalsLoaded{Goals: goals})
	return goals, nil
}

func formatGoals(goals []goal.Goal) string {
	if len(goals) == 0 {
		return noGoalsMessage
	}

	res := make([]string, 0, len(goals)*4)
	res = append(res, "🎯 Your goals")
	for _, g := range goals {
		title := fmt.Sprintf("#%d %s · %s", g.ID, g.CategoryDescriptor(), g.Title)
		if g.Achieved {
			title += " ✅"
		}
		res = append(res,
			"",
			title,
			fmt.Sprintf("%s of %s by %s", utils.FormatMoney(g.Saved), utils.FormatMoney(g.Target), g.TargetDate),
			fmt.Sprintf("%s %s%%", goal.Bar(g.BarFraction(), goalBarWidth), g.Percent()),
		)
	}
	return lines(res...)
}
