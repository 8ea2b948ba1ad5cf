// Package bot runs one chat personality over the shared command set.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/itc-kingsavage/savagebots/audit"
	"github.com/itc-kingsavage/savagebots/auth"
	"github.com/itc-kingsavage/savagebots/command"
	"github.com/itc-kingsavage/savagebots/message"
	"github.com/itc-kingsavage/savagebots/metrics"
	"github.com/itc-kingsavage/savagebots/userhash"
)

// Config describes one bot personality.
type Config struct {
	// Name is the bot's display name.
	Name string
	// Type is the bot's stable identifier.
	Type string
	// Prefix is the bot's command prefix.
	Prefix string
	// Emoji is the bot's signature emoji.
	Emoji string
	// Admin tells whether this is the designated admin bot.
	Admin bool
	// AdminName is the display name of the designated admin bot.
	AdminName string
	// Error overrides the bot's error reply.
	Error string
	// Rate limits the bot's replies. Messages over the limit are
	// dropped.
	Rate *rate.Limiter
	// Timeout bounds each command handler.
	Timeout time.Duration
}

// Options is the resources a bot needs to run.
type Options struct {
	Config  Config
	Env     *command.Env
	Roles   auth.Roles
	Audit   *audit.Log
	Hasher  userhash.Hasher
	Metrics *metrics.Metrics
}

// Bot is one chat personality.
type Bot struct {
	cfg    Config
	reg    *command.Registry
	env    *command.Env
	roles  auth.Roles
	audit  *audit.Log
	hasher userhash.Hasher
	mtr    *metrics.Metrics

	start time.Time
	count atomic.Int64
}

// New creates a bot.
func New(o Options) *Bot {
	b := &Bot{
		cfg:    o.Config,
		reg:    command.Default(),
		env:    o.Env,
		roles:  o.Roles,
		audit:  o.Audit,
		hasher: o.Hasher,
		mtr:    o.Metrics,
		start:  time.Now(),
	}
	if b.cfg.Timeout <= 0 {
		b.cfg.Timeout = 15 * time.Second
	}
	if b.env.Stats == nil {
		b.env.Stats = b.Stats
	}
	if b.env.Recent == nil && b.audit != nil {
		b.env.Recent = func(ctx context.Context, n int) ([]string, error) {
			es, err := b.audit.Recent(ctx, b.cfg.Type, n)
			if err != nil {
				return nil, err
			}
			r := make([]string, len(es))
			for i, e := range es {
				r[i] = b.cfg.Prefix + e.Command
			}
			return r, nil
		}
	}
	return b
}

// Name returns the bot's display name.
func (b *Bot) Name() string { return b.cfg.Name }

// Type returns the bot's stable identifier.
func (b *Bot) Type() string { return b.cfg.Type }

// Prefix returns the bot's command prefix.
func (b *Bot) Prefix() string { return b.cfg.Prefix }

// Emoji returns the bot's signature emoji.
func (b *Bot) Emoji() string { return b.cfg.Emoji }

// Admin reports whether this is the designated admin bot.
func (b *Bot) Admin() bool { return b.cfg.Admin }

func observe(o metrics.Observer, v float64, labels ...string) {
	if o != nil {
		o.Observe(v, labels...)
	}
}

// ProcessMessage routes one received message through parsing, access
// checks, and the command handler, and returns the bot's response. A
// message with no command prefix, or one dropped by the rate limit,
// yields a result of kind None.
func (b *Bot) ProcessMessage(ctx context.Context, m *message.Received) (r message.Result) {
	if b.mtr != nil {
		observe(b.mtr.MsgsCount, 1)
	}
	if m.FromMe {
		return message.Result{}
	}
	name, args, ok := command.Parse(m.Text, b.cfg.Prefix)
	if !ok {
		return message.Result{}
	}
	start := time.Now()
	spec := b.reg.Lookup(name)
	if spec == nil {
		if b.mtr != nil {
			observe(b.mtr.UnknownCount, 1)
		}
		return message.Reply("❌ Unknown command: %s%s\nType %smenu for all commands", b.cfg.Prefix, name, b.cfg.Prefix)
	}
	v, err := auth.Check(ctx, b.roles, spec, m, b.cfg.Admin, b.cfg.AdminName)
	if err != nil {
		b.env.Log.ErrorContext(ctx, "access check failed",
			slog.String("bot", b.cfg.Type),
			slog.String("command", name),
			slog.Any("err", err),
		)
		return b.errorReply()
	}
	if !v.Allowed {
		if b.mtr != nil {
			observe(b.mtr.DeniedCount, 1)
		}
		b.env.Log.InfoContext(ctx, "denied",
			slog.String("bot", b.cfg.Type),
			slog.String("command", name),
			slog.String("reason", v.Reason),
		)
		return message.Reply("❌ %s", v.Reason)
	}
	if spec.Category == command.Reaction {
		b.finish(ctx, m, spec, start)
		return message.React(spec.Emoji)
	}
	if b.cfg.Rate != nil && !b.cfg.Rate.Allow() {
		return message.Result{}
	}
	if _, err := b.env.Sessions.Mutate(m.UserID(), name, nil); err != nil {
		b.env.Log.ErrorContext(ctx, "session touch failed",
			slog.String("bot", b.cfg.Type),
			slog.Any("err", err),
		)
	}
	defer func() {
		if p := recover(); p != nil {
			b.env.Log.ErrorContext(ctx, "handler panicked",
				slog.String("bot", b.cfg.Type),
				slog.String("command", name),
				slog.Any("panic", p),
			)
			if b.mtr != nil {
				observe(b.mtr.HandlerErrorCount, 1)
			}
			r = b.errorReply()
		}
	}()
	hctx, cancel := context.WithTimeout(ctx, b.cfg.Timeout)
	defer cancel()
	res, err := spec.Fn(hctx, b.env, &command.Invocation{Message: m, Name: name, Args: args})
	if err != nil {
		if errors.Is(err, command.ErrRateLimited) || errors.Is(err, context.DeadlineExceeded) {
			b.env.Log.InfoContext(ctx, "handler backed off",
				slog.String("bot", b.cfg.Type),
				slog.String("command", name),
				slog.Any("err", err),
			)
			return message.Reply("⏳ %s is busy right now. Try again in a minute.", b.cfg.Name)
		}
		b.env.Log.ErrorContext(ctx, "handler failed",
			slog.String("bot", b.cfg.Type),
			slog.String("command", name),
			slog.Any("err", err),
		)
		if b.mtr != nil {
			observe(b.mtr.HandlerErrorCount, 1)
		}
		return b.errorReply()
	}
	b.finish(ctx, m, spec, start)
	if res.Kind == message.Text {
		if icon := spec.Category.Icon(); icon != "" {
			res.Text = icon + " " + res.Text
		}
	}
	return res
}

// finish records a successful invocation.
func (b *Bot) finish(ctx context.Context, m *message.Received, spec *command.Spec, start time.Time) {
	b.count.Add(1)
	if b.mtr != nil {
		observe(b.mtr.CommandCount, 1, b.cfg.Type, spec.Name)
		observe(b.mtr.DispatchLatency, time.Since(start).Seconds(), b.cfg.Type, string(spec.Category))
	}
	if b.audit != nil {
		var h userhash.Hash
		b.hasher.Hash(&h, m.UserID(), m.From, m.Time())
		if err := b.audit.Record(ctx, b.cfg.Type, spec.Name, h, time.Now()); err != nil {
			b.env.Log.ErrorContext(ctx, "audit record failed",
				slog.String("bot", b.cfg.Type),
				slog.Any("err", err),
			)
		}
	}
	b.env.Log.InfoContext(ctx, "command",
		slog.String("bot", b.cfg.Type),
		slog.String("name", spec.Name),
		slog.String("category", string(spec.Category)),
	)
}

func (b *Bot) errorReply() message.Result {
	if b.cfg.Error != "" {
		return message.Reply("%s", b.cfg.Error)
	}
	return message.Reply("⚠️ %s %s hit a snag. Try again in a moment.", b.cfg.Emoji, b.cfg.Name)
}

// Stats reports the bot's activity counters.
func (b *Bot) Stats() command.Stats {
	now := time.Now()
	st := command.Stats{
		TotalSessions:  b.env.Sessions.Len(),
		ActiveSessions: b.env.Sessions.Active(now),
		Commands:       b.count.Load(),
		Uptime:         now.Sub(b.start).Truncate(time.Second).String(),
	}
	if b.audit != nil {
		top, err := b.audit.Top(context.Background(), b.cfg.Type, 5)
		if err == nil {
			for _, c := range top {
				st.Top = append(st.Top, command.CommandCount{Name: c.Command, Count: c.Count})
			}
		}
	}
	return st
}

// String describes the bot for logs.
func (b *Bot) String() string {
	return fmt.Sprintf("%s(%s)", b.cfg.Name, b.cfg.Prefix)
}
