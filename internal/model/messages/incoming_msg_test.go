package messages

import (
	"context"
	"net/http"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"max.ks1230/finance-tracker/internal/model/messages/mock"
)

func newTestService(t *testing.T, sender messageSender, routes map[string]http.HandlerFunc) *Service {
	h, _ := newTestHandler(t, routes)
	return &Service{tgClient: sender, handler: h}
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(helpMessage, int64(123)).
		Return(nil)

	model := newTestService(t, sender, map[string]http.HandlerFunc{})
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/start",
		ChatID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(dontUnderstandMessage, int64(123)).
		Return(nil)

	model := newTestService(t, sender, map[string]http.HandlerFunc{})
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/none",
		ChatID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnFailedCommand_ShouldSendNotificationAndReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect("Invalid email or password", int64(123)).
		Return(nil)

	model := newTestService(t, sender, map[string]http.HandlerFunc{
		"POST /api/auth/login": reply(http.StatusUnauthorized, `{"error": "Invalid email or password"}`),
	})
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/login asha@example.com wrong",
		ChatID: 123,
	})

	assert.Error(t, err)
}

func Test_OnSendFailure_ShouldReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Inspect(func(text string, chatID int64) {
			assert.Equal(m, int64(123), chatID)
		}).
		Return(errors.New("telegram is down"))

	model := newTestService(t, sender, map[string]http.HandlerFunc{})
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/help",
		ChatID: 123,
	})

	assert.EqualError(t, err, "telegram is down")
}
