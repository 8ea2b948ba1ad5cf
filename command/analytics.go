package command

import (
	"context"
	"strconv"
	"strings"

	"github.com/itc-kingsavage/savagebots/message"
)

// Active reports the active session count.
func Active(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if env.Stats == nil {
		return message.Reply("📊 No statistics available."), nil
	}
	st := env.Stats()
	return message.Reply("📊 %d of %d sessions active.", st.ActiveSessions, st.TotalSessions), nil
}

// Online reports who is online.
func Online(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if env.Stats == nil {
		return message.Reply("📊 No statistics available."), nil
	}
	return message.Reply("📊 %d users active in the last half hour.", env.Stats().ActiveSessions), nil
}

// Usage reports command usage.
func Usage(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if env.Stats == nil {
		return message.Reply("📊 No statistics available."), nil
	}
	st := env.Stats()
	if len(st.Top) == 0 {
		return message.Reply("📊 %d commands served so far, none ranked yet.", st.Commands), nil
	}
	var b strings.Builder
	b.WriteString("📊 Command usage:")
	for _, c := range st.Top {
		b.WriteString(" ")
		b.WriteString(env.Prefix)
		b.WriteString(c.Name)
		b.WriteString("×")
		b.WriteString(strconv.FormatInt(c.Count, 10))
	}
	return message.Reply("%s", b.String()), nil
}
