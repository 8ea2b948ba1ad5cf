package command

import (
	"context"
	"strings"

	"github.com/itc-kingsavage/savagebots/message"
)

// GodMenu lists the faith commands.
func GodMenu(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	var b strings.Builder
	b.WriteString("🙏 Faith commands:")
	for s := range std.ByCategory(God) {
		b.WriteString(" ")
		b.WriteString(env.Prefix)
		b.WriteString(s.Name)
	}
	return message.Reply("%s", b.String()), nil
}

// Bible shares a verse.
func Bible(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("📖 %s", env.Content.Pick("verse")), nil
}

// Prayer shares a prayer.
func Prayer(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🙏 %s", env.Content.Pick("prayer")), nil
}

// Sermon shares a short sermon.
func Sermon(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("⛪ %s", env.Content.Pick("sermon")), nil
}

// Devotional shares today's devotional.
func Devotional(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🕯️ %s", env.Content.Pick("devotional")), nil
}

// Church tells service times.
func Church(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("⛪ Services: Sunday 09:00 and 11:30, Wednesday 18:00. All are welcome."), nil
}
