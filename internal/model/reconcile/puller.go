package reconcile

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/store"
)

type transactionsAPI interface {
	ListTransactions(ctx context.Context, userID int64) ([]transaction.Transaction, error)
}

type sessionRegistry interface {
	Sessions() map[int64]*store.Store
	Len() int
}

type config interface {
	SyncInterval() time.Duration
	RequestTimeout() time.Duration
}

// Puller reloads the transactions of sessions that still hold records the
// server has not numbered, so they can be edited or deleted.
type Puller struct {
	api      transactionsAPI
	sessions sessionRegistry
	delay    time.Duration
	timeout  time.Duration
}

func NewPuller(api transactionsAPI, sessions sessionRegistry, config config) *Puller {
	return &Puller{
		api:      api,
		sessions: sessions,
		delay:    config.SyncInterval(),
		timeout:  config.RequestTimeout(),
	}
}

func (p *Puller) Pull(ctx context.Context) {
	if p.delay <= 0 {
		logger.Info("Background sync is off")
		return
	}

	ticker := time.NewTicker(p.delay)
	defer ticker.Stop()

	logger.Info("Start syncing sessions", zap.Duration("interval", p.delay))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop syncing sessions")
			return
		case <-ticker.C:
			p.pullOnce(ctx)
		}
	}
}

func (p *Puller) pullOnce(ctx context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "syncSessions")
	defer span.Finish()

	synced := 0
	for chatID, session := range p.sessions.Sessions() {
		st := session.State()
		if !st.LoggedIn() || !st.HasPending() {
			continue
		}
		if p.syncSession(ctx, chatID, st.User.ID, session) {
			synced++
		}
	}
	if synced > 0 {
		logger.Info("Synced sessions", zap.Int("count", synced), zap.Int("sessions", p.sessions.Len()))
	}
}

func (p *Puller) syncSession(ctx context.Context, chatID, userID int64, session *store.Store) bool {
	span, ctx := opentracing.StartSpanFromContext(ctx, "syncSession")
	defer span.Finish()
	span.SetTag("chatID", chatID)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err := session.Reload(ctx, userID, func(ctx context.Context) ([]transaction.Transaction, error) {
		return p.api.ListTransactions(ctx, userID)
	})
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("failed to sync session", zap.Int64("chatID", chatID), zap.Error(err))
		return false
	}
	return true
}
