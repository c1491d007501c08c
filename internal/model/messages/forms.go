package messages

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"max.ks1230/finance-tracker/internal/entity/calendar"
	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/transaction"
)

var validate *validator.Validate

var nonBlank = regexp.MustCompile(`\S`)

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonBlank.MatchString(fl.Field().String())
	})

	_ = validate.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		_, err := transaction.ParseAmount(fl.Field().String())
		return err == nil
	})

	_ = validate.RegisterValidation("day", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(calendar.Layout, fl.Field().String())
		return err == nil
	})

	// the sibling Domain field picks the category set
	_ = validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		domain := fl.Parent().FieldByName("Domain")
		if !domain.IsValid() {
			return false
		}
		return category.Valid(category.Domain(domain.String()), fl.Field().String())
	})
}

type loginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type signupForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
	Confirm  string `validate:"required,eqfield=Password"`
	FullName string `validate:"required,notblank"`
}

type transactionForm struct {
	Domain      category.Domain `validate:"required,oneof=income expense"`
	Category    string          `validate:"required,category"`
	Amount      string          `validate:"required,amount"`
	Date        string          `validate:"omitempty,day"`
	Description string
}

type goalForm struct {
	Domain     category.Domain `validate:"required,eq=goal"`
	Category   string          `validate:"required,category"`
	Target     string          `validate:"required,amount"`
	TargetDate string          `validate:"required,day"`
	Title      string          `validate:"required,notblank"`
}

type profileForm struct {
	Email    string `validate:"required,email"`
	FullName string `validate:"required,notblank"`
}

// validateForm returns the notification for the first invalid field, or ""
// when the form is fine.
func validateForm(form interface{}) string {
	err := validate.Struct(form)
	if err == nil {
		return ""
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return incorrectUsageMessage
	}
	return fieldErrorToString(errs[0])
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return allFieldsRequiredMessage
	case "eqfield":
		return passwordsMismatchMessage
	case "amount":
		return incorrectAmountMessage
	case "day":
		return incorrectDateMessage
	case "category":
		return unknownCategoryMessage
	case "email":
		return incorrectEmailMessage
	default:
		return incorrectUsageMessage
	}
}
