// Package auth decides whether a user may run a command.
package auth

import (
	"context"
	"fmt"

	"github.com/itc-kingsavage/savagebots/command"
	"github.com/itc-kingsavage/savagebots/message"
	"github.com/itc-kingsavage/savagebots/roles"
)

// Roles answers role membership questions.
type Roles interface {
	// Has reports whether the user holds the role.
	Has(ctx context.Context, role roles.Role, user string) (bool, error)
}

// Verdict is an access decision.
type Verdict struct {
	// Allowed tells whether the command may run.
	Allowed bool
	// Reason is the user-facing denial reason when the command may not
	// run.
	Reason string
}

var allowed = Verdict{Allowed: true}

func denied(reason string) Verdict {
	return Verdict{Reason: reason}
}

// Check decides whether the sender of m may run the command described by
// spec. adminBot tells whether the deciding bot is the designated admin
// bot, named adminName. Checks apply in a fixed order: bot exclusivity,
// then admin role, then VIP role, then group-only restriction. Moderation
// and analytics commands carry no role requirement; exclusivity and the
// group-only restriction are their only gates.
func Check(ctx context.Context, rl Roles, spec *command.Spec, m *message.Received, adminBot bool, adminName string) (Verdict, error) {
	if spec.Category.Exclusive() && !adminBot {
		return denied(fmt.Sprintf("This command is exclusive to %s.", adminName)), nil
	}
	switch spec.Category {
	case command.Admin:
		ok, err := rl.Has(ctx, roles.Admin, m.UserID())
		if err != nil {
			return denied(""), fmt.Errorf("couldn't check admin role: %w", err)
		}
		if !ok {
			return denied("Admin access required."), nil
		}
	case command.VIP:
		ok, err := rl.Has(ctx, roles.VIP, m.UserID())
		if err != nil {
			return denied(""), fmt.Errorf("couldn't check VIP role: %w", err)
		}
		if !ok {
			return denied("VIP access required."), nil
		}
	default: // do nothing
	}
	if spec.GroupOnly && !m.Group {
		return denied("This command only works in group chats."), nil
	}
	return allowed, nil
}
