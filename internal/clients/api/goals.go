package api

import (
	"context"
	"net/http"

	"max.ks1230/finance-tracker/internal/entity/calendar"
	"max.ks1230/finance-tracker/internal/entity/goal"
)

const (
	goalsPath      = "/api/goals"
	addGoalPath    = "/api/goals/add"
	deleteGoalPath = "/api/goals/delete"
)

type AddGoalRequest struct {
	UserID     int64
	Title      string
	Target     string
	TargetDate calendar.Date
	Category   string
}

func (c *Client) ListGoals(ctx context.Context, userID int64) ([]goal.Goal, error) {
	const endpoint = "goals.list"

	var list goalList
	err := c.do(ctx, request{
		endpoint: endpoint,
		method:   http.MethodGet,
		path:     idPath(goalsPath, userID),
	}, &list)
	if err != nil {
		return nil, err
	}

	goals, err := list.entities(c.loc)
	if err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}
	return goals, nil
}

func (c *Client) AddGoal(ctx context.Context, in AddGoalRequest) error {
	return c.do(ctx, request{
		endpoint: "goals.add",
		method:   http.MethodPost,
		path:     addGoalPath,
		body: addGoalRequest{
			UserID:     in.UserID,
			Title:      in.Title,
			Target:     in.Target,
			TargetDate: in.TargetDate.String(),
			Category:   in.Category,
		},
	}, nil)
}

func (c *Client) DeleteGoal(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		endpoint: "goals.delete",
		method:   http.MethodDelete,
		path:     idPath(deleteGoalPath, id),
	}, nil)
}
