// Package groups persists per-group moderation settings.
package groups

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-json-experiment/json"

	"github.com/itc-kingsavage/savagebots/syncmap"
)

// Feature is a moderation feature with its own settings per group.
type Feature string

// Moderation features.
const (
	Antilink Feature = "antilink"
	Antibot  Feature = "antibot"
	Banword  Feature = "banword"
	Welcome  Feature = "welcome"
	Rules    Feature = "rules"
)

// Actions a feature may take on a violation.
const (
	ActionWarn   = "warn"
	ActionDelete = "delete"
	ActionRemove = "remove"
)

// Settings is the configuration of one feature in one group.
type Settings struct {
	// Enabled tells whether the feature is on.
	Enabled bool `json:"enabled"`
	// Action is what the feature does on a violation, one of warn,
	// delete, or remove.
	Action string `json:"action"`
	// Words is the feature's word or domain list: banned words for
	// banword, whitelisted domains for antilink.
	Words []string `json:"words,omitempty"`
	// Text is free text for features that carry some, like the welcome
	// message.
	Text string `json:"text,omitempty"`
}

// Store is a store of group moderation settings.
type Store struct {
	db *badger.DB
	// mu serializes updates per group.
	mu *syncmap.Map[string, *sync.Mutex]
}

// New opens a settings store over a database.
func New(db *badger.DB) *Store {
	return &Store{db: db, mu: syncmap.New[string, *sync.Mutex]()}
}

func key(gid string, f Feature) []byte {
	b := make([]byte, 0, len(gid)+1+len(f))
	b = append(b, gid...)
	b = append(b, 0x1f)
	b = append(b, f...)
	return b
}

// Get loads the settings for a feature in a group. A group that has
// never configured the feature gets disabled settings with the warn
// action.
func (s *Store) Get(gid string, f Feature) (Settings, error) {
	out := Settings{Action: ActionWarn}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(gid, f))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Settings{Action: ActionWarn}, nil
	}
	if err != nil {
		return out, fmt.Errorf("couldn't load %s settings for %s: %w", f, gid, err)
	}
	return out, nil
}

// Update atomically modifies the settings for a feature in a group and
// returns the result. Concurrent updates to the same group serialize.
func (s *Store) Update(gid string, f Feature, mod func(*Settings)) (Settings, error) {
	mu, _ := s.mu.LoadOrStore(gid, new(sync.Mutex))
	mu.Lock()
	defer mu.Unlock()
	cur, err := s.Get(gid, f)
	if err != nil {
		return cur, err
	}
	mod(&cur)
	val, err := json.Marshal(&cur)
	if err != nil {
		return cur, fmt.Errorf("couldn't encode %s settings for %s: %w", f, gid, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(gid, f), val)
	})
	if err != nil {
		return cur, fmt.Errorf("couldn't store %s settings for %s: %w", f, gid, err)
	}
	return cur, nil
}
