package session_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/itc-kingsavage/savagebots/session"
)

func TestMutateCreates(t *testing.T) {
	st := session.New(time.Hour, time.Hour)
	got, err := st.Mutate("bocchi", "ping", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "bocchi" {
		t.Errorf("wrong id: got %q", got.ID)
	}
	if got.Token == "" {
		t.Error("no session token")
	}
	if got.Created.IsZero() || got.LastActivity.IsZero() {
		t.Errorf("zero times on new session: %+v", got)
	}
	if st.Len() != 1 {
		t.Errorf("wrong store size: got %d, want 1", st.Len())
	}
}

func TestMutateConcurrent(t *testing.T) {
	st := session.New(time.Hour, time.Hour)
	const n = 64
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.Mutate("bocchi", "discover", func(s *session.Session) error {
				s.Discover(fmt.Sprintf("ruin %d", i))
				return nil
			})
			if err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	ok := st.View("bocchi", func(s *session.Session) {
		if s.MysteryLevel != n {
			t.Errorf("lost discoveries: level %d, want %d", s.MysteryLevel, n)
		}
		if len(s.Discoveries) != n {
			t.Errorf("lost discoveries: %d recorded, want %d", len(s.Discoveries), n)
		}
	})
	if !ok {
		t.Error("no session after mutations")
	}
}

func TestDiscoverDedup(t *testing.T) {
	st := session.New(time.Hour, time.Hour)
	for range 3 {
		_, err := st.Mutate("bocchi", "discover", func(s *session.Session) error {
			s.Discover("ancient ruins")
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	st.View("bocchi", func(s *session.Session) {
		if s.MysteryLevel != 1 {
			t.Errorf("repeat discovery raised level to %d, want 1", s.MysteryLevel)
		}
	})
}

func TestMutateErrorRollsBack(t *testing.T) {
	st := session.New(time.Hour, time.Hour)
	if _, err := st.Mutate("bocchi", "", func(s *session.Session) error { s.LoyaltyPoints = 50; return nil }); err != nil {
		t.Fatal(err)
	}
	oops := errors.New("oops")
	_, err := st.Mutate("bocchi", "", func(s *session.Session) error {
		s.LoyaltyPoints = 9999
		return oops
	})
	if !errors.Is(err, oops) {
		t.Errorf("wrong error: %v", err)
	}
	st.View("bocchi", func(s *session.Session) {
		if s.LoyaltyPoints != 50 {
			t.Errorf("failed mutation applied: points %d, want 50", s.LoyaltyPoints)
		}
	})
}

func TestSweep(t *testing.T) {
	st := session.New(30*time.Minute, 5*time.Minute)
	if _, err := st.Mutate("bocchi", "ping", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Mutate("ryou", "ping", nil); err != nil {
		t.Fatal(err)
	}
	if n := st.Sweep(time.Now()); n != 0 {
		t.Errorf("fresh sessions evicted: %d", n)
	}
	if n := st.Sweep(time.Now().Add(time.Hour)); n != 2 {
		t.Errorf("wrong eviction count: got %d, want 2", n)
	}
	if st.Len() != 0 {
		t.Errorf("%d sessions after full sweep", st.Len())
	}
	// Activity after a sweep starts a new session.
	got, err := st.Mutate("bocchi", "ping", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.History[0] != "ping" || len(got.History) != 1 {
		t.Errorf("revived session has history %v", got.History)
	}
}

func TestActive(t *testing.T) {
	st := session.New(30*time.Minute, 5*time.Minute)
	if _, err := st.Mutate("bocchi", "ping", nil); err != nil {
		t.Fatal(err)
	}
	if got := st.Active(time.Now()); got != 1 {
		t.Errorf("wrong active count: got %d, want 1", got)
	}
	if got := st.Active(time.Now().Add(time.Hour)); got != 0 {
		t.Errorf("idle session counted active: got %d", got)
	}
}

func TestHistoryCap(t *testing.T) {
	st := session.New(time.Hour, time.Hour)
	var last session.Session
	for i := range 30 {
		var err error
		last, err = st.Mutate("bocchi", fmt.Sprintf("cmd%d", i), nil)
		if err != nil {
			t.Fatal(err)
		}
	}
	if len(last.History) != 20 {
		t.Errorf("history holds %d commands, want 20", len(last.History))
	}
	if last.History[len(last.History)-1] != "cmd29" {
		t.Errorf("history lost newest command: %v", last.History)
	}
}

func TestRank(t *testing.T) {
	cases := []struct {
		points int
		want   string
	}{
		{0, "Peasant"},
		{99, "Peasant"},
		{100, "Squire"},
		{250, "Knight"},
		{500, "Noble"},
		{1000, "Duke"},
		{2000, "Royalty"},
	}
	for _, c := range cases {
		s := session.Session{LoyaltyPoints: c.points}
		if got := s.Rank(); got != c.want {
			t.Errorf("wrong rank for %d points: got %q, want %q", c.points, got, c.want)
		}
	}
}
