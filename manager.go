package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/itc-kingsavage/savagebots/audit"
	"github.com/itc-kingsavage/savagebots/bot"
	"github.com/itc-kingsavage/savagebots/command"
	"github.com/itc-kingsavage/savagebots/content"
	"github.com/itc-kingsavage/savagebots/groups"
	"github.com/itc-kingsavage/savagebots/message"
	"github.com/itc-kingsavage/savagebots/metrics"
	"github.com/itc-kingsavage/savagebots/roles"
	"github.com/itc-kingsavage/savagebots/session"
	"github.com/itc-kingsavage/savagebots/syncmap"
	"github.com/itc-kingsavage/savagebots/userhash"
)

// Manager runs the bot fleet.
type Manager struct {
	owner        string
	ownerContact string
	secrets      *keys
	mtr          *metrics.Metrics

	bots     *syncmap.Map[string, *bot.Bot]
	sessions *syncmap.Map[string, *session.Store]
	roles    *roles.List
	audit    *audit.Log
	groups   *groups.Store
	kv       *badger.DB

	// works is the pool of worker channels for message dispatch.
	works chan chan func(context.Context)
}

// New creates a manager with the given metrics and dispatch pool size.
func New(mtr *metrics.Metrics, poolSize int) *Manager {
	return &Manager{
		mtr:      mtr,
		bots:     syncmap.New[string, *bot.Bot](),
		sessions: syncmap.New[string, *session.Store](),
		works:    make(chan chan func(context.Context), poolSize),
	}
}

// SetOwner sets owner metadata used in self-description surfaces.
func (m *Manager) SetOwner(ownerName, ownerContact string) {
	m.owner = ownerName
	m.ownerContact = ownerContact
}

// SetSecrets loads the fleet's fixed secret and initializes derived secrets.
func (m *Manager) SetSecrets(file string) error {
	s, err := loadSecrets(file)
	if err != nil {
		return err
	}
	m.secrets = s
	return nil
}

// SetSources opens the role list, audit log, and group settings wrappers
// around the respective databases. Use [loadDBs] to open the databases
// themselves from the configuration.
func (m *Manager) SetSources(ctx context.Context, kv *badger.DB, role, aud *sqlitex.Pool) error {
	var err error
	m.roles, err = roles.Open(ctx, role)
	if err != nil {
		return fmt.Errorf("couldn't open role list: %w", err)
	}
	m.audit = audit.Open(aud)
	m.groups = groups.New(kv)
	m.kv = kv
	return nil
}

// SetBots initializes the bot personalities from configuration. Exactly
// one bot must be marked as the admin bot.
func (m *Manager) SetBots(ctx context.Context, cfg *Config) error {
	adminName := ""
	for _, bc := range cfg.Bots {
		if !bc.Admin {
			continue
		}
		if adminName != "" {
			return fmt.Errorf("multiple admin bots configured; use exactly one")
		}
		adminName = bc.Name
	}
	if adminName == "" {
		return fmt.Errorf("no admin bot configured; use exactly one")
	}
	idle := fseconds(cfg.Session.Idle)
	if idle <= 0 {
		idle = 30 * time.Minute
	}
	sweep := fseconds(cfg.Session.Sweep)
	if sweep <= 0 {
		sweep = 5 * time.Minute
	}
	timeout := fseconds(cfg.Global.Timeout)
	for typ, bc := range cfg.Bots {
		if bc.Prefix == "" {
			return fmt.Errorf("bot %s has no prefix", typ)
		}
		sess := session.New(idle, sweep)
		over := make(map[string]map[string]int, len(cfg.Global.Content)+len(bc.Content))
		for kind, v := range cfg.Global.Content {
			over[kind] = mergemaps(v, bc.Content[kind])
		}
		for kind, v := range bc.Content {
			if over[kind] == nil {
				over[kind] = mergemaps(v)
			}
		}
		env := &command.Env{
			Log:       slog.Default(),
			BotName:   bc.Name,
			BotType:   typ,
			Prefix:    bc.Prefix,
			Emoji:     bc.Emoji,
			AdminName: adminName,
			AdminBot:  bc.Admin,
			Sessions:  sess,
			Groups:    m.groups,
			Content:   content.New(over, nil),
			// Collaborator services tolerate far less traffic than chat.
			Collab: rate.NewLimiter(rate.Every(2*time.Second), 5),
		}
		if bc.Admin {
			env.Roles = m.roles
		}
		rc := bc.Rate
		if rc.Num == 0 {
			rc = cfg.Global.Rate
		}
		var lim *rate.Limiter
		if rc.Num > 0 {
			lim = rate.NewLimiter(rate.Every(fseconds(rc.Every)), rc.Num)
		}
		b := bot.New(bot.Options{
			Config: bot.Config{
				Name:      bc.Name,
				Type:      typ,
				Prefix:    bc.Prefix,
				Emoji:     bc.Emoji,
				Admin:     bc.Admin,
				AdminName: adminName,
				Error:     bc.Error,
				Rate:      lim,
				Timeout:   timeout,
			},
			Env:     env,
			Roles:   m.roles,
			Audit:   m.audit,
			Hasher:  userhash.New(m.secrets.userhash),
			Metrics: m.mtr,
		})
		m.bots.Store(typ, b)
		m.sessions.Store(typ, sess)
		slog.InfoContext(ctx, "bot configured",
			slog.String("type", typ),
			slog.String("name", bc.Name),
			slog.String("prefix", bc.Prefix),
			slog.Bool("admin", bc.Admin),
		)
	}
	return nil
}

// Bot finds the bot with the given type, or nil if there is none.
func (m *Manager) Bot(typ string) *bot.Bot {
	b, _ := m.bots.Load(typ)
	return b
}

// Dispatch routes a message to the named bot on a pool worker and passes
// the response to respond. It returns an error only when no such bot
// exists; handler outcomes are reported through respond.
func (m *Manager) Dispatch(ctx context.Context, typ string, msg *message.Received, respond func(message.Result)) error {
	b := m.Bot(typ)
	if b == nil {
		return fmt.Errorf("no such bot %q", typ)
	}
	work := func(ctx context.Context) {
		r := b.ProcessMessage(ctx, msg)
		if r.Kind == message.None {
			return
		}
		respond(r)
	}
	m.enqueue(ctx, work)
	return nil
}

func (m *Manager) enqueue(ctx context.Context, work func(context.Context)) {
	var w chan func(context.Context)
	// Get a worker if one exists. Otherwise, spawn a new one.
	select {
	case w = <-m.works:
	default:
		w = make(chan func(context.Context), 1)
		go worker(ctx, m.works, w)
	}
	// Send it work.
	select {
	case <-ctx.Done():
		return
	case w <- work:
	}
}

// worker runs works for a while. The provided context is passed to each work.
func worker(ctx context.Context, works chan chan func(context.Context), ch chan func(context.Context)) {
	for {
		select {
		case <-ctx.Done():
			return
		case work := <-ch:
			work(ctx)
			// Replace ourselves in the pool if it needs additional capacity.
			// Otherwise, we're done.
			select {
			case works <- ch:
			default:
				return
			}
		}
	}
}

// Run serves the fleet until the context is canceled: the HTTP surface
// and the per-bot session sweepers.
func (m *Manager) Run(ctx context.Context, listen string) error {
	group, ctx := errgroup.WithContext(ctx)
	for typ, sess := range m.sessions.All() {
		group.Go(func() error {
			err := sess.Run(ctx, func(n int) {
				if m.mtr != nil && m.mtr.EvictedCount != nil {
					m.mtr.EvictedCount.Observe(float64(n))
				}
				slog.InfoContext(ctx, "sessions evicted",
					slog.String("bot", typ),
					slog.Int("count", n),
				)
			})
			if err == context.Canceled {
				return nil
			}
			return err
		})
	}
	group.Go(func() error {
		mux := http.NewServeMux()
		var coll []prometheus.Collector
		if m.mtr != nil {
			coll = m.mtr.Collectors()
		}
		return m.api(ctx, listen, mux, coll)
	})
	return group.Wait()
}
