package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/itc-kingsavage/savagebots/groups"
	"github.com/itc-kingsavage/savagebots/message"
	"github.com/itc-kingsavage/savagebots/roles"
	"github.com/itc-kingsavage/savagebots/session"
)

func protection(env *Env, call *Invocation, f groups.Feature, what string) (message.Result, error) {
	gid := call.Message.From
	sub, rest, _ := strings.Cut(lower.String(call.Args), " ")
	switch sub {
	case "":
		c, err := env.Groups.Get(gid, f)
		if err != nil {
			return message.Result{}, err
		}
		state := "off"
		if c.Enabled {
			state = "on"
		}
		r := fmt.Sprintf("🔨 %s is %s, action: %s.", what, state, c.Action)
		if len(c.Words) > 0 {
			r += " List: " + strings.Join(c.Words, ", ")
		}
		return message.Reply("%s", r), nil
	case "on", "off":
		c, err := env.Groups.Update(gid, f, func(c *groups.Settings) {
			c.Enabled = sub == "on"
		})
		if err != nil {
			return message.Result{}, err
		}
		return message.Reply("🔨 %s is now %s, action: %s.", what, sub, c.Action), nil
	case "warn", "delete", "remove":
		_, err := env.Groups.Update(gid, f, func(c *groups.Settings) {
			c.Action = sub
		})
		if err != nil {
			return message.Result{}, err
		}
		return message.Reply("🔨 %s action set to %s.", what, sub), nil
	case "add", "allow":
		if rest == "" {
			return message.Reply("Usage: %s%s %s <word>", env.Prefix, call.Name, sub), nil
		}
		_, err := env.Groups.Update(gid, f, func(c *groups.Settings) {
			for _, w := range c.Words {
				if w == rest {
					return
				}
			}
			c.Words = append(c.Words, rest)
		})
		if err != nil {
			return message.Result{}, err
		}
		return message.Reply("🔨 Added %q to the %s list.", rest, what), nil
	case "del", "deny":
		_, err := env.Groups.Update(gid, f, func(c *groups.Settings) {
			c.Words = slicesDelete(c.Words, rest)
		})
		if err != nil {
			return message.Result{}, err
		}
		return message.Reply("🔨 Removed %q from the %s list.", rest, what), nil
	default:
		return message.Reply("Usage: %s%s <on|off|warn|delete|remove|add|del>", env.Prefix, call.Name), nil
	}
}

func slicesDelete(s []string, v string) []string {
	r := s[:0]
	for _, w := range s {
		if w != v {
			r = append(r, w)
		}
	}
	return r
}

// Antilink configures link protection for the group.
func Antilink(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return protection(env, call, groups.Antilink, "Link protection")
}

// Antibot configures bot protection for the group.
func Antibot(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return protection(env, call, groups.Antibot, "Bot protection")
}

// Banword configures the banned word list for the group.
func Banword(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return protection(env, call, groups.Banword, "Word filter")
}

func target(call *Invocation) string {
	if len(call.Message.Mentions) > 0 {
		return call.Message.Mentions[0]
	}
	return strings.TrimPrefix(call.Args, "@")
}

// Promote promotes a group member and rewards their loyalty.
func Promote(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	who := target(call)
	if who == "" {
		return message.Reply("Usage: %spromote @user", env.Prefix), nil
	}
	got, err := env.Sessions.Mutate(who, "", func(s *session.Session) error {
		s.LoyaltyPoints += 100
		return nil
	})
	if err != nil {
		return message.Result{}, err
	}
	return message.Reply("⬆️ Promoted %s. They gain 100 loyalty and now rank %s.", who, got.Rank()), nil
}

// Demote demotes a group member.
func Demote(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	who := target(call)
	if who == "" {
		return message.Reply("Usage: %sdemote @user", env.Prefix), nil
	}
	return message.Reply("⬇️ Demoted %s.", who), nil
}

// TagAll mentions everyone in the group.
func TagAll(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("📢 Everyone, eyes up!"), nil
	}
	return message.Reply("📢 Everyone: %s", call.Args), nil
}

// TagAdmins mentions the group admins.
func TagAdmins(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if env.Roles == nil {
		return message.Reply("🛡️ Admins, assemble!"), nil
	}
	adm, err := env.Roles.Users(ctx, roles.Admin)
	if err != nil {
		return message.Result{}, err
	}
	if len(adm) == 0 {
		return message.Reply("🛡️ No admins registered."), nil
	}
	return message.Reply("🛡️ Admins: %s", strings.Join(adm, ", ")), nil
}
