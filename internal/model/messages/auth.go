package messages

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"max.ks1230/finance-tracker/internal/clients/api"
	"max.ks1230/finance-tracker/internal/model/store"
)

const (
	signupSuccessMessage   = "Signup successful! Please /login."
	loggedOutMessage       = "You have been logged out 👋"
	profileUpdatedMessage  = "Profile updated ✅"
	profileFailedMessage   = "Error updating profile. Please try again."
	profileEditHintMessage = "Edit with /profile <email> <full name>"
)

// authFailure shows the server's own words when it rejected the request.
func authFailure(err error) string {
	if apiErr, ok := api.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return somethingWrongMessage
}

func (s *HandlerService) handleSignup(ctx context.Context, arg string, session *store.Store) (string, error) {
	if !session.State().LoggedIn() {
		session.Dispatch(store.Navigated{View: store.ViewSignUp})
	}

	fields := strings.Fields(arg)
	form := signupForm{FullName: rest(fields, 3)}
	for i, dst := range []*string{&form.Email, &form.Password, &form.Confirm} {
		if i < len(fields) {
			*dst = fields[i]
		}
	}
	if msg := validateForm(form); msg != "" {
		return msg, nil
	}

	err := s.api.Signup(ctx, form.FullName, form.Email, form.Password)
	if err != nil {
		return authFailure(err), errors.Wrap(err, "handle signup")
	}

	if !session.State().LoggedIn() {
		session.Dispatch(store.Navigated{View: store.ViewLogin})
	}
	return signupSuccessMessage, nil
}

func (s *HandlerService) handleLogin(ctx context.Context, arg string, session *store.Store) (string, error) {
	fields := strings.Fields(arg)
	form := loginForm{}
	if len(fields) > 0 {
		form.Email = fields[0]
	}
	if len(fields) > 1 {
		form.Password = fields[1]
	}
	if msg := validateForm(form); msg != "" {
		return msg, nil
	}

	u, err := s.api.Login(ctx, form.Email, form.Password)
	if err != nil {
		return authFailure(err), errors.Wrap(err, "handle login")
	}
	session.Dispatch(store.LoggedIn{User: u})

	welcome := fmt.Sprintf("Login successful! Welcome, %s 👋", u.FirstName())
	txs, err := s.api.ListTransactions(ctx, u.ID)
	if err != nil {
		return lines(welcome, loadTransactionsFailedMessage), errors.Wrap(err, "handle login")
	}
	session.Dispatch(store.TransactionsLoaded{Transactions: txs})

	return lines(welcome, "", "See your /dashboard or add an /expense"), nil
}

func (s *HandlerService) handleLogout(_ context.Context, _ string, session *store.Store) (string, error) {
	session.Dispatch(store.LoggedOut{})
	return loggedOutMessage, nil
}

func (s *HandlerService) handleProfile(ctx context.Context, arg string, session *store.Store) (string, error) {
	session.Dispatch(store.Navigated{View: store.ViewProfile})
	u := currentUser(session)

	if arg == "" {
		return lines(
			fmt.Sprintf("👤 %s (%s)", u.FullName, u.Initial()),
			"📧 "+u.Email,
			"",
			profileEditHintMessage,
		), nil
	}

	fields := strings.Fields(arg)
	form := profileForm{Email: fields[0], FullName: rest(fields, 1)}
	if msg := validateForm(form); msg != "" {
		return msg, nil
	}

	updated, err := s.api.UpdateProfile(ctx, u.ID, form.FullName, form.Email)
	if err != nil {
		return profileFailedMessage, errors.Wrap(err, "handle profile")
	}
	if updated.ID == 0 {
		updated.ID = u.ID
	}
	session.Dispatch(store.UserUpdated{User: updated})

	return lines(profileUpdatedMessage, fmt.Sprintf("👤 %s", updated.FullName), "📧 "+updated.Email), nil
}
