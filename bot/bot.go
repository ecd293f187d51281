package bot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	oakerrors "oakbot/errors"
	"oakbot/services"
)

const genericFailure = "Something went wrong on my side. Try again in a moment."

// Poller is the part of the Telegram client the update loop needs on
// top of BotAPI.
type Poller interface {
	BotAPI
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot wires the command registry to the Telegram long-poll loop.
// Updates are handled one at a time; there is no shared mutable state
// between commands beyond the record store itself.
type Bot struct {
	api         Poller
	registry    *Registry
	limiter     *UserLimiter
	log         *slog.Logger
	pollTimeout int
}

// Options carries the knobs New needs beyond its collaborators.
type Options struct {
	PollTimeout     int
	RateLimitBurst  int
	RateLimitWindow time.Duration
}

func New(api Poller, sets services.ISetService, admin services.IAdminService, log *slog.Logger, opts Options) *Bot {
	registry := NewRegistry()
	sessions := newSessionStore()

	registry.Register("set", storeCommand{sets: sets})
	registry.Register("get", getCommand{sets: sets, log: log})
	registry.Register("del", delCommand{sets: sets})
	registry.Register("mysets", mySetsCommand{sets: sets})
	registry.Register("dex", dexCommand{sets: sets, log: log})
	registry.Register("login", loginCommand{admin: admin, sessions: sessions})
	registry.Register("clear", clearCommand{admin: admin, sessions: sessions})
	registry.Register("purge", purgeCommand{admin: admin, sessions: sessions})
	registry.Register("status", statusCommand{admin: admin, sessions: sessions})
	registry.Register("help", helpCommand{registry: registry})

	return &Bot{
		api:         api,
		registry:    registry,
		limiter:     NewUserLimiter(opts.RateLimitBurst, opts.RateLimitWindow),
		log:         log,
		pollTimeout: opts.PollTimeout,
	}
}

// Run consumes the update channel until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(u)

	b.log.Info("Bot is listening for commands")
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.Handle(ctx, update)
		}
	}
}

// Handle dispatches one update. Exported so tests can feed updates
// without a live polling channel.
func (b *Bot) Handle(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || !msg.IsCommand() {
		return
	}

	if !b.limiter.Allow(msg.From.ID) {
		b.log.Debug("Rate limited", "user", msg.From.ID)
		if err := reply(b.api, msg, "Easy there, trainer. Give me a few seconds."); err != nil {
			b.log.Error("Reply failed", "error", err)
		}
		return
	}

	cmd, ok := b.registry.Get(msg.Command())
	if !ok {
		if err := reply(b.api, msg, "..what do you want? Try /help."); err != nil {
			b.log.Error("Reply failed", "error", err)
		}
		return
	}

	args := strings.Fields(msg.CommandArguments())
	if err := cmd.Execute(ctx, b.api, msg, args); err != nil {
		b.report(msg, err)
	}
}

// report applies the two-kind error policy: validation errors go to the
// user as-is, infrastructure errors are logged and replaced by a
// generic message.
func (b *Bot) report(msg *tgbotapi.Message, err error) {
	text := genericFailure
	if oakerrors.IsValidation(err) {
		text = err.Error()
	} else {
		b.log.Error("Command failed", "command", msg.Command(), "user", msg.From.ID, "error", err)
	}
	if err := reply(b.api, msg, text); err != nil {
		b.log.Error("Reply failed", "error", err)
	}
}
