package command

import (
	"context"

	"github.com/itc-kingsavage/savagebots/message"
	"github.com/itc-kingsavage/savagebots/session"
)

// Court welcomes the user to the royal court.
func Court(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	got, err := env.Sessions.Mutate(call.Message.UserID(), "", nil)
	if err != nil {
		return message.Result{}, err
	}
	return message.Reply("👑 Welcome to the royal court, %s. You hold %d loyalty points.", got.Rank(), got.LoyaltyPoints), nil
}

// Favor grants royal favor worth 50 loyalty points.
func Favor(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	got, err := env.Sessions.Mutate(call.Message.UserID(), "", func(s *session.Session) error {
		s.GrantFavor(50)
		return nil
	})
	if err != nil {
		return message.Result{}, err
	}
	return message.Reply("👑 The crown smiles upon you. +50 loyalty, %d total. Rank: %s", got.LoyaltyPoints, got.Rank()), nil
}

// Rank tells the user's royal rank.
func Rank(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	got, err := env.Sessions.Mutate(call.Message.UserID(), "", nil)
	if err != nil {
		return message.Result{}, err
	}
	return message.Reply("👑 You are a %s with %d loyalty points after %d favors.", got.Rank(), got.LoyaltyPoints, got.Favors), nil
}

// Royal issues a royal decree.
func Royal(ctx context.Context, env *Env, call *Invocation) (message.Result, error) {
	return message.Reply("📜 %s", env.Content.Pick("decree")), nil
}
