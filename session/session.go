// Package session tracks per-user conversation state with idle eviction.
package session

import (
	"slices"
	"time"
)

// historyMax is the number of recent commands a session remembers.
const historyMax = 20

// Session is the state a bot keeps for one user. Sessions are accessed
// through a Store, which guards each against concurrent modification.
type Session struct {
	// ID is the user's chat network address.
	ID string
	// Token identifies the session itself, distinct from the user.
	Token string
	// Created is when the session started.
	Created time.Time
	// LastActivity is the time of the user's most recent command.
	LastActivity time.Time
	// MysteryLevel counts the user's unique discoveries.
	MysteryLevel int
	// Discoveries is what the user has discovered, in order.
	Discoveries []string
	// LoyaltyPoints is the user's accumulated royal favor.
	LoyaltyPoints int
	// Favors counts how many times the user has sought favor.
	Favors int
	// Badge is the user's chosen badge, uppercased, or empty.
	Badge string
	// Notes is the user's saved notes.
	Notes []string
	// History is the user's recent commands, oldest first.
	History []string
}

// Discover records a discovery. The mystery level rises only the first
// time a given subject is discovered; repeats report false.
func (s *Session) Discover(subject string) bool {
	if slices.Contains(s.Discoveries, subject) {
		return false
	}
	s.Discoveries = append(s.Discoveries, subject)
	s.MysteryLevel++
	return true
}

// GrantFavor awards loyalty points and counts the favor.
func (s *Session) GrantFavor(points int) {
	s.LoyaltyPoints += points
	s.Favors++
}

// Rank is the user's royal rank, derived from loyalty points.
func (s *Session) Rank() string {
	switch {
	case s.LoyaltyPoints >= 2000:
		return "Royalty"
	case s.LoyaltyPoints >= 1000:
		return "Duke"
	case s.LoyaltyPoints >= 500:
		return "Noble"
	case s.LoyaltyPoints >= 250:
		return "Knight"
	case s.LoyaltyPoints >= 100:
		return "Squire"
	default:
		return "Peasant"
	}
}

func (s *Session) pushHistory(cmd string) {
	s.History = append(s.History, cmd)
	if len(s.History) > historyMax {
		s.History = s.History[len(s.History)-historyMax:]
	}
}

// clone copies the session deeply enough that modifying the copy leaves
// the original untouched.
func (s *Session) clone() *Session {
	r := *s
	r.Discoveries = slices.Clone(s.Discoveries)
	r.Notes = slices.Clone(s.Notes)
	r.History = slices.Clone(s.History)
	return &r
}
