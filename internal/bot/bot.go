// Package bot is the Telegram front door: it receives files into the
// Download Station watch directory and answers status queries on demand.
package bot

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ag0n1k/tg-fsyn/internal/report"
	"github.com/ag0n1k/tg-fsyn/internal/storage"
)

const defaultMaxFileSize = 50 << 20

// StationFactory opens a fresh Download Station session for one status
// query. Each query logs in and out on its own.
type StationFactory func() report.Station

// Bot serves one Telegram bot account over long polling.
type Bot struct {
	api         *tgbotapi.BotAPI
	store       *storage.Local
	station     StationFactory
	access      *Access
	maxFileSize int64
	StopSignal  chan struct{}
}

// WithStorage sets the store incoming files are saved to. Without it the
// bot declines files.
func WithStorage(store *storage.Local) func(*Bot) {
	return func(b *Bot) {
		b.store = store
	}
}

// WithStation enables the status command.
func WithStation(factory StationFactory) func(*Bot) {
	return func(b *Bot) {
		b.station = factory
	}
}

// WithAccess restricts who may talk to the bot.
func WithAccess(access *Access) func(*Bot) {
	return func(b *Bot) {
		b.access = access
	}
}

// WithMaxFileSize caps the size of accepted files in bytes.
func WithMaxFileSize(limit int64) func(*Bot) {
	return func(b *Bot) {
		b.maxFileSize = limit
	}
}

// New authorizes against the Telegram API with token and returns the bot.
func New(token string, opts ...func(*Bot)) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		api:         api,
		access:      NewAccess(nil, nil),
		maxFileSize: defaultMaxFileSize,
		StopSignal:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Run consumes updates over long polling until the context is cancelled or
// Stop is called. Both shutdowns are clean and return nil.
func (b *Bot) Run(ctx context.Context) error {
	log.Info("Bot authorized", "username", b.api.Self.UserName)
	if b.access.Open() {
		log.Warn("No allowed users configured, bot is open to everyone")
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message != nil {
				b.handleMessage(ctx, update.Message)
			}
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case <-b.StopSignal:
			b.api.StopReceivingUpdates()
			return nil
		}
	}
}

// Stop ends the update loop.
func (b *Bot) Stop() {
	close(b.StopSignal)
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Error("Failed to send message", "error", err, "chat", chatID)
	}
}
