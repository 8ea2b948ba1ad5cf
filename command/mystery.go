package command

import (
	"context"
	"strings"

	"github.com/itc-kingsavage/savagebots/message"
	"github.com/itc-kingsavage/savagebots/session"
)

// Mystery investigates a subject and records the investigation as a
// discovery.
func Mystery(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("🔮 Name a mystery to investigate: %smystery <subject>", env.Prefix), nil
	}
	var fresh bool
	got, err := env.Sessions.Mutate(call.Message.UserID(), "", func(s *session.Session) error {
		fresh = s.Discover(call.Args)
		return nil
	})
	if err != nil {
		return message.Result{}, err
	}
	line := env.Content.Pick("mystery")
	if fresh {
		return message.Reply("🔮 Investigating %s… %s\nMystery level: %d", call.Args, line, got.MysteryLevel), nil
	}
	return message.Reply("🔮 Back to %s again… %s\nMystery level: %d", call.Args, line, got.MysteryLevel), nil
}

// Discover records a discovery.
func Discover(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	if call.Args == "" {
		return message.Reply("🔍 What did you discover? %sdiscover <subject>", env.Prefix), nil
	}
	var fresh bool
	got, err := env.Sessions.Mutate(call.Message.UserID(), "", func(s *session.Session) error {
		fresh = s.Discover(call.Args)
		return nil
	})
	if err != nil {
		return message.Result{}, err
	}
	if !fresh {
		return message.Reply("🔍 You've already discovered %s. Mystery level: %d", call.Args, got.MysteryLevel), nil
	}
	return message.Reply("🔍 Discovery recorded: %s! Mystery level: %d", call.Args, got.MysteryLevel), nil
}

// Level tells the user's mystery level.
func Level(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	got, err := env.Sessions.Mutate(call.Message.UserID(), "", nil)
	if err != nil {
		return message.Result{}, err
	}
	if got.MysteryLevel == 0 {
		return message.Reply("🔮 Mystery level 0. Everything is still hidden. Try %smystery.", env.Prefix), nil
	}
	return message.Reply("🔮 Mystery level %d with %d discoveries: %s", got.MysteryLevel, len(got.Discoveries), strings.Join(got.Discoveries, ", ")), nil
}

// Puzzle poses a puzzle.
func Puzzle(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🧩 %s", env.Content.Pick("puzzle")), nil
}

// Riddle poses a riddle.
func Riddle(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("❓ %s", env.Content.Pick("riddle")), nil
}

// Secret shares a secret.
func Secret(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🤫 %s", env.Content.Pick("secret")), nil
}

// Clue offers a clue.
func Clue(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🕵️ %s", env.Content.Pick("clue")), nil
}

// Predict makes a prediction.
func Predict(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🔮 %s", env.Content.Pick("prediction")), nil
}

// Fortune tells the user's fortune.
func Fortune(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🥠 %s", env.Content.Pick("fortune")), nil
}

// Wisdom shares words of wisdom.
func Wisdom(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("🦉 %s", env.Content.Pick("wisdom")), nil
}

// Quest assigns the user's current quest.
func Quest(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("⚔️ Your quest: %s", env.Content.Pick("quest")), nil
}
