package userhash_test

import (
	"testing"
	"time"

	"github.com/itc-kingsavage/savagebots/userhash"
)

func TestHasher(t *testing.T) {
	t.Parallel()
	// Every combination of key, time, user, and chat must produce a
	// distinct userhash.
	keys := []string{
		"madoka",
		"homura",
	}
	users := []string{
		"+255700000001@c.us",
		"+255700000002@c.us",
		"+255700000003@c.us",
	}
	chats := []string{
		"+255700000001@c.us",
		"120363040000000000@g.us",
	}
	times := []time.Time{
		time.Unix(0, -userhash.TimeQuantum.Nanoseconds()),
		time.Unix(0, 0),
		time.Unix(0, userhash.TimeQuantum.Nanoseconds()),
	}
	u := make(map[userhash.Hash]bool, len(keys)*len(users)*len(chats)*len(times))
	for _, key := range keys {
		for _, user := range users {
			for _, chat := range chats {
				for _, when := range times {
					hr := userhash.New([]byte(key))
					a := *hr.Hash(new(userhash.Hash), user, chat, when)
					if u[a] {
						t.Errorf("duplicate hash: %s/%s/%s/%v gave %x", key, user, chat, when, a)
					}
					u[a] = true
					b := *hr.Hash(new(userhash.Hash), user, chat, when)
					if a != b {
						t.Errorf("repeated hash changed: %s/%s/%s/%v gave first %x then %x", key, user, chat, when, a, b)
					}
				}
			}
		}
	}
}
