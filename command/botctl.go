package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/itc-kingsavage/savagebots/message"
)

// About describes this bot.
func About(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("%s I'm %s. My prefix is %s and %smenu shows everything I do.", env.Emoji, env.BotName, env.Prefix, env.Prefix), nil
}

// BotStats reports bot statistics.
func BotStats(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if env.Stats == nil {
		return message.Reply("📊 No statistics available."), nil
	}
	st := env.Stats()
	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s stats\nSessions: %d (%d active)\nCommands served: %d\nUptime: %s", env.BotName, st.TotalSessions, st.ActiveSessions, st.Commands, st.Uptime)
	if len(st.Top) > 0 {
		b.WriteString("\nTop commands:")
		for _, c := range st.Top {
			fmt.Fprintf(&b, " %s%s×%d", env.Prefix, c.Name, c.Count)
		}
	}
	return message.Reply("%s", b.String()), nil
}

// Uptime tells how long the bot has been running.
func Uptime(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if env.Stats == nil {
		return message.Reply("⏳ Not sure, but it feels like forever."), nil
	}
	return message.Reply("⏳ Up for %s.", env.Stats().Uptime), nil
}

// AutoReply toggles automatic replies.
func AutoReply(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	switch lower.String(call.Args) {
	case "on":
		return message.Reply("💬 Auto-reply on."), nil
	case "off":
		return message.Reply("💬 Auto-reply off."), nil
	default:
		return message.Reply("Usage: %sautoreply <on|off>", env.Prefix), nil
	}
}

// Schedule schedules a message.
func Schedule(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %sschedule <time> <text>", env.Prefix), nil
	}
	return message.Reply("📅 Scheduling needs the delivery pipeline, which is offline right now."), nil
}

// Trigger manages custom triggers.
func Trigger(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("⚡ Custom triggers aren't wired up yet. %smenu lists the built-ins.", env.Prefix), nil
}
