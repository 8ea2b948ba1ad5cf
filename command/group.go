package command

import (
	"context"

	"github.com/itc-kingsavage/savagebots/groups"
	"github.com/itc-kingsavage/savagebots/message"
)

// GroupInfo describes the current group.
func GroupInfo(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("👥 Group %s. Set a welcome with %swelcome and rules with %srules <text>.", call.Message.From, env.Prefix, env.Prefix), nil
}

// Welcome shows or sets the group welcome message.
func Welcome(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		c, err := env.Groups.Get(call.Message.From, groups.Welcome)
		if err != nil {
			return message.Result{}, err
		}
		if c.Text == "" {
			return message.Reply("👋 No welcome message set. Usage: %swelcome <text>", env.Prefix), nil
		}
		return message.Reply("👋 %s", c.Text), nil
	}
	_, err := env.Groups.Update(call.Message.From, groups.Welcome, func(c *groups.Settings) {
		c.Enabled = true
		c.Text = call.Args
	})
	if err != nil {
		return message.Result{}, err
	}
	return message.Reply("👋 Welcome message saved."), nil
}

// Rules shows or sets the group rules.
func Rules(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		c, err := env.Groups.Get(call.Message.From, groups.Rules)
		if err != nil {
			return message.Result{}, err
		}
		if c.Text == "" {
			return message.Reply("📜 No rules set. Usage: %srules <text>", env.Prefix), nil
		}
		return message.Reply("📜 Group rules:\n%s", c.Text), nil
	}
	_, err := env.Groups.Update(call.Message.From, groups.Rules, func(c *groups.Settings) {
		c.Enabled = true
		c.Text = call.Args
	})
	if err != nil {
		return message.Result{}, err
	}
	return message.Reply("📜 Rules saved."), nil
}
