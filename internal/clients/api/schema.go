package api

import (
	"bytes"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/finance-tracker/internal/entity/calendar"
	"max.ks1230/finance-tracker/internal/entity/goal"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/entity/user"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// date or date-time string the calendar package understands
	_ = validate.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := calendar.Parse(s, time.UTC)
		return err == nil
	})
}

var null = []byte("null")

// flexID accepts both 17 and "17".
type flexID int64

func (f *flexID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, null) {
		return nil
	}
	s := string(bytes.Trim(b, `"`))
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "id %s", b)
	}
	*f = flexID(v)
	return nil
}

// wireAmount accepts both "12.50" and 12.5; anything non-numeric fails the
// decode instead of turning into zero.
type wireAmount struct {
	decimal.Decimal
}

func (a *wireAmount) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.Wrapf(transaction.ErrInvalidAmount, "%s", b)
	}
	a.Decimal = d
	return nil
}

func amountOrZero(a *wireAmount) decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	return a.Decimal
}

type transactionSchema struct {
	ID          flexID      `json:"id" validate:"required"`
	UserID      flexID      `json:"userId"`
	UserIDSnake flexID      `json:"user_id"`
	Type        string      `json:"type" validate:"required,oneof=income expense"`
	Amount      *wireAmount `json:"amount" validate:"required"`
	Category    string      `json:"category" validate:"required"`
	Date        string      `json:"date" validate:"required,calendardate"`
	Description *string     `json:"description"`
}

func (s *transactionSchema) validate() error {
	return validate.Struct(s)
}

func (s *transactionSchema) entity(loc *time.Location) (transaction.Transaction, error) {
	date, err := calendar.Parse(s.Date, loc)
	if err != nil {
		return transaction.Transaction{}, err
	}
	res := transaction.Transaction{
		ID:       int64(s.ID),
		UserID:   int64(s.UserID),
		Type:     transaction.Type(s.Type),
		Amount:   amountOrZero(s.Amount),
		Category: s.Category,
		Date:     date,
	}
	if res.UserID == 0 {
		res.UserID = int64(s.UserIDSnake)
	}
	if s.Description != nil {
		res.Description = *s.Description
	}
	return res, nil
}

type transactionList []transactionSchema

func (l transactionList) validate() error {
	for i := range l {
		if err := l[i].validate(); err != nil {
			return errors.Wrapf(err, "item %d", i)
		}
	}
	return nil
}

func (l transactionList) entities(loc *time.Location) ([]transaction.Transaction, error) {
	res := make([]transaction.Transaction, 0, len(l))
	for i := range l {
		tx, err := l[i].entity(loc)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
		res = append(res, tx)
	}
	return res, nil
}

type goalSchema struct {
	ID              flexID      `json:"id" validate:"required"`
	UserID          flexID      `json:"userId"`
	UserIDSnake     flexID      `json:"user_id"`
	Title           string      `json:"title" validate:"required"`
	Target          *wireAmount `json:"target" validate:"required"`
	TargetDate      string      `json:"targetDate" validate:"required_without=TargetDateSnake,calendardate"`
	TargetDateSnake string      `json:"target_date" validate:"calendardate"`
	Category        string      `json:"category"`
	Saved           *wireAmount `json:"saved"`
	Achieved        bool        `json:"achieved"`
}

func (s *goalSchema) validate() error {
	return validate.Struct(s)
}

func (s *goalSchema) entity(loc *time.Location) (goal.Goal, error) {
	raw := s.TargetDate
	if raw == "" {
		raw = s.TargetDateSnake
	}
	date, err := calendar.Parse(raw, loc)
	if err != nil {
		return goal.Goal{}, err
	}
	res := goal.Goal{
		ID:         int64(s.ID),
		UserID:     int64(s.UserID),
		Title:      s.Title,
		Target:     amountOrZero(s.Target),
		TargetDate: date,
		Category:   s.Category,
		Saved:      amountOrZero(s.Saved),
		Achieved:   s.Achieved,
	}
	if res.UserID == 0 {
		res.UserID = int64(s.UserIDSnake)
	}
	return res, nil
}

type goalList []goalSchema

func (l goalList) validate() error {
	for i := range l {
		if err := l[i].validate(); err != nil {
			return errors.Wrapf(err, "item %d", i)
		}
	}
	return nil
}

func (l goalList) entities(loc *time.Location) ([]goal.Goal, error) {
	res := make([]goal.Goal, 0, len(l))
	for i := range l {
		g, err := l[i].entity(loc)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
		res = append(res, g)
	}
	return res, nil
}

type userSchema struct {
	ID            flexID `json:"id" validate:"required"`
	FullName      string `json:"full_name"`
	FullNameCamel string `json:"fullName"`
	Email         string `json:"email" validate:"required,email"`
	ProfileImage  string `json:"profile_image"`
}

func (s *userSchema) entity() user.User {
	name := s.FullName
	if name == "" {
		name = s.FullNameCamel
	}
	return user.User{
		ID:           int64(s.ID),
		FullName:     name,
		Email:        s.Email,
		ProfileImage: s.ProfileImage,
	}
}

type userEnvelope struct {
	User *userSchema `json:"user" validate:"required"`
}

func (s *userEnvelope) validate() error {
	return validate.Struct(s)
}

type messageSchema struct {
	Message string `json:"message"`
}

func (s *messageSchema) validate() error {
	return nil
}

type categoryTotalSchema struct {
	Category string      `json:"category" validate:"required"`
	Total    *wireAmount `json:"total" validate:"required"`
}

type categoryTotalList []categoryTotalSchema

func (l categoryTotalList) validate() error {
	for i := range l {
		if err := validate.Struct(&l[i]); err != nil {
			return errors.Wrapf(err, "item %d", i)
		}
	}
	return nil
}

// request bodies

type addTransactionRequest struct {
	UserID      int64  `json:"userId"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type editTransactionRequest struct {
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type addGoalRequest struct {
	UserID     int64  `json:"userId"`
	Title      string `json:"title"`
	Target     string `json:"target"`
	TargetDate string `json:"targetDate"`
	Category   string `json:"category"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}
