package tg

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	updatesTimeout      = 60
)

type tokenGetter interface {
	Token() string
}

type timeoutGetter interface {
	RequestTimeout() time.Duration
}

type Client struct {
	client  *tgbotapi.BotAPI
	timeout time.Duration
}

func New(tokenGetter tokenGetter, timeoutGetter timeoutGetter) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{client: client, timeout: timeoutGetter.RequestTimeout()}, nil
}

func (c *Client) SendMessage(text string, chatID int64) error {
	for _, part := range splitMessage(text, maxMessageLength) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		if _, err := c.client.Send(tgbotapi.NewMessage(chatID, part)); err != nil {
			return errors.Wrap(err, "client.Send")
		}
	}
	return nil
}

func (c *Client) ListenUpdates(ctx context.Context, msgModel *messages.Service) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = updatesTimeout

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			c.client.StopReceivingUpdates()
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, msgModel *messages.Service) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	userName := ""
	if update.Message.From != nil {
		userName = update.Message.From.UserName
	}
	logger.Info("incoming message",
		zap.Int64("chatID", chatID),
		zap.String("user", userName),
		zap.String("command", update.Message.Command()),
	)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := msgModel.HandleIncomingMessage(ctx, messages.Message{
		Text:   update.Message.Text,
		ChatID: chatID,
	})
	if err != nil {
		logger.Error("error processing message", zap.Int64("chatID", chatID), zap.Error(err))
	}
}
