package command

import (
	"context"
	"strings"

	"github.com/itc-kingsavage/savagebots/message"
	"github.com/itc-kingsavage/savagebots/session"
)

// VIPMenu lists the VIP commands.
func VIPMenu(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	var b strings.Builder
	b.WriteString("💎 VIP commands:")
	for s := range std.ByCategory(VIP) {
		b.WriteString(" ")
		b.WriteString(env.Prefix)
		b.WriteString(s.Name)
	}
	return message.Reply("%s", b.String()), nil
}

// VIPStatus tells the user about their VIP standing.
func VIPStatus(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	got, err := env.Sessions.Mutate(call.Message.UserID(), "", nil)
	if err != nil {
		return message.Result{}, err
	}
	badge := got.Badge
	if badge == "" {
		badge = "none"
	}
	return message.Reply("💎 VIP confirmed. Badge: %s. Member of the inner circle since %s.", badge, got.Created.Format("2 Jan 2006")), nil
}

// VIPSession shows the user's session details.
func VIPSession(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	got, err := env.Sessions.Mutate(call.Message.UserID(), "", nil)
	if err != nil {
		return message.Result{}, err
	}
	return message.Reply("💎 Session %s\nStarted: %s\nLast activity: %s\nCommands this session: %d\nMystery level: %d, loyalty: %d",
		got.Token, got.Created.Format("15:04:05"), got.LastActivity.Format("15:04:05"), len(got.History), got.MysteryLevel, got.LoyaltyPoints), nil
}

// Badge sets the user's VIP badge. The badge is stored uppercased, and
// setting a new one replaces the old.
func Badge(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		got, err := env.Sessions.Mutate(call.Message.UserID(), "", nil)
		if err != nil {
			return message.Result{}, err
		}
		if got.Badge == "" {
			return message.Reply("💎 No badge set. Usage: %sbadge <text>", env.Prefix), nil
		}
		return message.Reply("💎 Your badge: %s", got.Badge), nil
	}
	badge := upper.String(call.Args)
	_, err := env.Sessions.Mutate(call.Message.UserID(), "", func(s *session.Session) error {
		s.Badge = badge
		return nil
	})
	if err != nil {
		return message.Result{}, err
	}
	return message.Reply("💎 Badge set: %s", badge), nil
}

// VIPMedia serves exclusive media.
func VIPMedia(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("💎 Exclusive media drops every Friday. The media pipeline is offline right now."), nil
}

// VIPNews serves exclusive news.
func VIPNews(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("💎 Insider brief: new commands land this month. You heard it here first."), nil
}

// VIPMusic serves exclusive music.
func VIPMusic(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("💎 The VIP playlist refreshes soon. Audio delivery is offline right now."), nil
}

// VIPGame serves exclusive games.
func VIPGame(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("💎 VIP tournament lobby opens at the top of the hour."), nil
}
