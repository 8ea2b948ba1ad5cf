// Package command implements the chat command set and its registry.
package command

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/itc-kingsavage/savagebots/content"
	"github.com/itc-kingsavage/savagebots/groups"
	"github.com/itc-kingsavage/savagebots/message"
	"github.com/itc-kingsavage/savagebots/roles"
	"github.com/itc-kingsavage/savagebots/session"
)

// Env is the resources and capabilities a bot grants its commands.
type Env struct {
	// Log is the logger for commands to use.
	Log *slog.Logger
	// BotName is the display name of the bot running the command.
	BotName string
	// BotType is the stable identifier of the bot running the command.
	BotType string
	// Prefix is the bot's command prefix, for help text.
	Prefix string
	// Emoji is the bot's signature emoji.
	Emoji string
	// AdminName is the display name of the designated admin bot.
	AdminName string
	// AdminBot tells whether this bot is the designated admin bot.
	AdminBot bool
	// Sessions is the per-user session store.
	Sessions *session.Store
	// Groups is the per-group moderation settings store.
	Groups *groups.Store
	// Content provides canned response content.
	Content *content.Provider
	// Roles is the role list, or nil if this bot may not manage roles.
	Roles *roles.List
	// Collab limits calls to external collaborator services. It may be
	// nil, in which case calls are not limited.
	Collab *rate.Limiter
	// Stats reports current bot statistics. It may be nil.
	Stats func() Stats
	// Recent reports recently executed commands on this bot. It may be nil.
	Recent func(ctx context.Context, n int) ([]string, error)
}

// Stats is a snapshot of bot activity for status commands.
type Stats struct {
	TotalSessions  int
	ActiveSessions int
	Commands       int64
	Uptime         string
	Top            []CommandCount
}

// CommandCount is a command name with its execution count.
type CommandCount struct {
	Name  string
	Count int64
}

// Invocation is a single invocation of a command.
type Invocation struct {
	// Message is the message which triggered the invocation.
	Message *message.Received
	// Name is the resolved command name, lowercased.
	Name string
	// Args is the raw argument text following the command name.
	Args string
}

// Func is a command handler. It returns the bot's response, which may be
// empty for commands that act silently.
type Func func(ctx context.Context, env *Env, call *Invocation) (message.Result, error)

// ErrRateLimited indicates a command declined to run because an external
// collaborator is saturated.
var ErrRateLimited = errors.New("rate limited")

// collab reserves a call to an external collaborator.
func collab(env *Env) error {
	if env.Collab != nil && !env.Collab.Allow() {
		return ErrRateLimited
	}
	return nil
}
