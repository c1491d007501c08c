package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"max.ks1230/finance-tracker/internal/model/store"
)

//go:generate minimock -i messageSender -o ./mock/ -s "_mock.go"

type messageSender interface {
	SendMessage(text string, chatID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, chatID int64) (string, error)
}

type Service struct {
	tgClient messageSender
	handler  MessageHandler
}

func NewService(tgClient messageSender, api financeAPI, reports reportGenerator, sessions *store.Registry, config config) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(api, reports, sessions, config),
	}
}

type Message struct {
	Text   string
	ChatID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	cmd, _ := parseCommand(msg.Text)
	span.SetTag("command", cmd)

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(cmd, elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

// handle always answers: a failed command still gets its notification, and
// the error is passed up for logging.
func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.ChatID)
	if err != nil {
		if resp == "" {
			resp = somethingWrongMessage
		}
		if sendErr := s.tgClient.SendMessage(resp, msg.ChatID); sendErr != nil {
			return errors.Wrap(sendErr, "send notification")
		}
		return err
	}
	return s.tgClient.SendMessage(resp, msg.ChatID)
}
