package command

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/itc-kingsavage/savagebots/message"
	"github.com/itc-kingsavage/savagebots/session"
)

// Menu lists every command available on this bot, grouped by category.
func Menu(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	var b strings.Builder
	b.WriteString(env.Emoji)
	b.WriteString(" ")
	b.WriteString(env.BotName)
	b.WriteString(" Commands\n")
	for _, cat := range []Category{General, AI, Fun, BotCtl, Group, Download, God, Extra, Admin, VIP, Moderation, Analytics} {
		if cat.Exclusive() && !env.AdminBot {
			continue
		}
		b.WriteString("\n")
		b.WriteString(cat.Icon())
		b.WriteString(" ")
		b.WriteString(strings.ToUpper(string(cat)))
		b.WriteString(":")
		for s := range std.ByCategory(cat) {
			b.WriteString(" ")
			b.WriteString(env.Prefix)
			b.WriteString(s.Name)
		}
	}
	b.WriteString("\n\n😂 REACTIONS:")
	for s := range std.ByCategory(Reaction) {
		b.WriteString(" ")
		b.WriteString(env.Prefix)
		b.WriteString(s.Name)
	}
	return message.Reply("%s", b.String()), nil
}

// Help describes one command.
func Help(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %shelp <command>. Try %smenu to see them all.", env.Prefix, env.Prefix), nil
	}
	name := strings.TrimPrefix(lower.String(call.Args), env.Prefix)
	s := std.Lookup(name)
	if s == nil {
		return message.Reply("I don't know %s%s. Try %smenu.", env.Prefix, name, env.Prefix), nil
	}
	if s.Category == Reaction {
		return message.Reply("%s%s reacts to your message with %s.", env.Prefix, s.Name, s.Emoji), nil
	}
	return message.Reply("%s%s (%s): %s", env.Prefix, s.Name, s.Category, s.Help), nil
}

// Ping answers with a timestamped pong.
func Ping(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🏓 Pong! %s", time.Now().Format("15:04:05 MST")), nil
}

// Clock tells the current time.
func Clock(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🕒 %s", time.Now().Format(time.RFC1123)), nil
}

// Weather reports the weather for a location.
func Weather(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %sweather <location>", env.Prefix), nil
	}
	return message.Reply("🌤️ Checking the skies over %s. The forecast service is resting; try again shortly.", call.Args), nil
}

// Currency converts between currencies.
func Currency(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	f := strings.Fields(call.Args)
	if len(f) != 3 {
		return message.Reply("Usage: %scurrency <amount> <from> <to>", env.Prefix), nil
	}
	if _, err := strconv.ParseFloat(f[0], 64); err != nil {
		return message.Reply("%q doesn't look like an amount.", f[0]), nil
	}
	return message.Reply("💱 The exchange desk is closed right now. Try %scurrency again shortly.", env.Prefix), nil
}

// Calc evaluates simple arithmetic of the form a op b.
func Calc(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	f := strings.Fields(call.Args)
	if len(f) != 3 {
		return message.Reply("Usage: %scalc <a> <+|-|*|/> <b>", env.Prefix), nil
	}
	a, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return message.Reply("%q isn't a number.", f[0]), nil
	}
	b, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return message.Reply("%q isn't a number.", f[2]), nil
	}
	var r float64
	switch f[1] {
	case "+":
		r = a + b
	case "-":
		r = a - b
	case "*", "x":
		r = a * b
	case "/":
		if b == 0 {
			return message.Reply("🧮 Dividing by zero is above my pay grade."), nil
		}
		r = a / b
	default:
		return message.Reply("I can do + - * /, not %q.", f[1]), nil
	}
	return message.Reply("🧮 %s %s %s = %s", f[0], f[1], f[2], strconv.FormatFloat(r, 'f', -1, 64)), nil
}

// Reminder acknowledges a reminder request.
func Reminder(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	mins, text, _ := strings.Cut(call.Args, " ")
	n, err := strconv.Atoi(mins)
	if err != nil || n <= 0 || text == "" {
		return message.Reply("Usage: %sreminder <minutes> <text>", env.Prefix), nil
	}
	return message.Reply("⏰ Reminder in %d min: %s", n, text), nil
}

// Notes saves and lists personal notes kept in the session.
func Notes(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		got, err := env.Sessions.Mutate(call.Message.UserID(), "", nil)
		if err != nil {
			return message.Result{}, err
		}
		if len(got.Notes) == 0 {
			return message.Reply("📝 No notes yet. Usage: %snotes <text>", env.Prefix), nil
		}
		lines := []string{"📝 Your notes:"}
		for i, n := range got.Notes {
			lines = append(lines, strconv.Itoa(i+1)+". "+n)
		}
		return message.Reply("%s", strings.Join(lines, "\n")), nil
	}
	_, err := env.Sessions.Mutate(call.Message.UserID(), "", func(s *session.Session) error {
		s.Notes = append(s.Notes, call.Args)
		return nil
	})
	if err != nil {
		return message.Result{}, err
	}
	return message.Reply("📝 Noted."), nil
}

// QR acknowledges a QR code request.
func QR(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("Usage: %sqr <text>", env.Prefix), nil
	}
	return message.Reply("🔳 QR encoding for %q is queued. Media delivery is offline right now.", call.Args), nil
}
