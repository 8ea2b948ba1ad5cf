package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Load loads the bot fleet configuration from TOML.
func Load(ctx context.Context, r io.Reader) (*Config, *toml.MetaData, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't decode config: %w", err)
	}
	expandcfg(&cfg, os.Getenv)
	return &cfg, &md, nil
}

func loadDBs(ctx context.Context, cfg DBCfg) (kv *badger.DB, role, audit *sqlitex.Pool, err error) {
	if cfg.Groups == "" {
		return nil, nil, nil, fmt.Errorf("no group settings path configured")
	}
	slog.DebugContext(ctx, "group settings db", slog.String("path", cfg.Groups), slog.String("flags", cfg.KVFlag))
	opts := badger.DefaultOptions(cfg.Groups)
	opts = opts.WithLogger(nil)
	opts = opts.WithCompression(options.None)
	opts = opts.WithBloomFalsePositive(0)
	kv, err = badger.Open(opts.FromSuperFlag(cfg.KVFlag))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("couldn't open group settings db: %w", err)
	}

	slog.DebugContext(ctx, "roles db", slog.String("path", cfg.Roles))
	role, err = sqlitex.NewPool(cfg.Roles, sqlitex.PoolOptions{})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("couldn't open roles db: %w", err)
	}

	switch cfg.Audit {
	case cfg.Roles:
		slog.DebugContext(ctx, "audit db shared with roles db")
		audit = role
	default:
		slog.DebugContext(ctx, "audit db", slog.String("path", cfg.Audit))
		audit, err = sqlitex.NewPool(cfg.Audit, sqlitex.PoolOptions{})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("couldn't open audit db: %w", err)
		}
	}

	return kv, role, audit, nil
}

func mergemaps(ms ...map[string]int) map[string]int {
	u := make(map[string]int)
	for _, m := range ms {
		for k, v := range m {
			u[k] += v
		}
	}
	return u
}

func fseconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

type keys struct {
	// userhash is the hasher key for userhashes.
	userhash []byte
}

// loadSecrets reads the fixed secret and derives the per-domain keys.
func loadSecrets(file string) (*keys, error) {
	k, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("couldn't read secret key: %w", err)
	}
	uk := domainkey(make([]byte, 64), k, []byte("userhash"))
	return &keys{userhash: uk}, nil
}

// domainkey fills o with a key derived from k for the given domain. Panics if
// a key cannot be expanded.
func domainkey(o, k, domain []byte) []byte {
	kr := hkdf.Expand(sha3.New224, k, domain)
	if _, err := io.ReadFull(kr, o); err != nil {
		panic(err)
	}
	return o
}

// Config is the marshaled structure of the fleet configuration.
type Config struct {
	// SecretFile is the path to a file containing a secret key used to
	// create userhashes.
	SecretFile string `toml:"secret"`
	// Owner is the table of metadata about the owner.
	Owner Owner `toml:"owner"`
	// DB is the table of database connection strings.
	DB DBCfg `toml:"db"`
	// HTTP is the HTTP server configuration.
	HTTP HTTPCfg `toml:"http"`
	// Session is the session lifecycle configuration.
	Session SessionCfg `toml:"session"`
	// Global is the table of settings applied to every bot.
	Global Global `toml:"global"`
	// Bots is the set of bot personalities, keyed by bot type.
	Bots map[string]*BotCfg `toml:"bots"`
}

// BotCfg is the configuration for one bot personality.
type BotCfg struct {
	// Name is the bot's display name.
	Name string `toml:"name"`
	// Prefix is the bot's command prefix.
	Prefix string `toml:"prefix"`
	// Emoji is the bot's signature emoji.
	Emoji string `toml:"emoji"`
	// Admin marks the designated admin bot. Exactly one bot must set it.
	Admin bool `toml:"admin"`
	// Error overrides the bot's error reply.
	Error string `toml:"error"`
	// Rate is the bot's reply rate limit. If unset, the global rate
	// applies.
	Rate Rate `toml:"rate"`
	// Content is canned content for this bot, merged over the global
	// content.
	Content map[string]map[string]int `toml:"content"`
}

// Global is the configuration for globally applied options.
type Global struct {
	// Rate is the default reply rate limit.
	Rate Rate `toml:"rate"`
	// Timeout is the command handler timeout in seconds.
	Timeout float64 `toml:"timeout"`
	// Content is canned content available to every bot.
	Content map[string]map[string]int `toml:"content"`
}

// Owner is metadata about the fleet owner.
type Owner struct {
	// Name is the name of the owner. It does not need to be a username.
	Name string `toml:"name"`
	// Contact describes owner contact information.
	Contact string `toml:"contact"`
}

// DBCfg is the configuration of databases.
type DBCfg struct {
	// Roles is the SQLite DSN for the role list.
	Roles string `toml:"roles"`
	// Audit is the SQLite DSN for the audit log. It may equal Roles to
	// share one database.
	Audit string `toml:"audit"`
	// Groups is the directory for the group settings store.
	Groups string `toml:"groups"`
	// KVFlag is a Badger superflag applied to the group settings store.
	KVFlag string `toml:"kvflag"`
}

// HTTPCfg is the HTTP server configuration.
type HTTPCfg struct {
	Listen string `toml:"listen"`
}

// SessionCfg is the session lifecycle configuration, in seconds.
type SessionCfg struct {
	// Idle is how long a session may go without activity before
	// eviction.
	Idle float64 `toml:"idle"`
	// Sweep is how often idle sessions are swept.
	Sweep float64 `toml:"sweep"`
}

// Rate is a rate limit configuration.
type Rate struct {
	Every float64 `toml:"every"`
	Num   int     `toml:"num"`
}

func expandcfg(cfg *Config, expand func(s string) string) {
	fields := []*string{
		&cfg.SecretFile,
		&cfg.Owner.Name,
		&cfg.Owner.Contact,
		&cfg.DB.Roles,
		&cfg.DB.Audit,
		&cfg.DB.Groups,
		&cfg.DB.KVFlag,
		&cfg.HTTP.Listen,
	}
	for _, f := range fields {
		*f = os.Expand(*f, expand)
	}
	for _, v := range cfg.Bots {
		v.Name = os.Expand(v.Name, expand)
		v.Prefix = os.Expand(v.Prefix, expand)
	}
}
