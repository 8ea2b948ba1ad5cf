package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/itc-kingsavage/savagebots/audit"
	"github.com/itc-kingsavage/savagebots/message"
	"github.com/itc-kingsavage/savagebots/metrics"
	"github.com/itc-kingsavage/savagebots/roles"
)

var app = cli.Command{
	Name:  "savagebots",
	Usage: "WhatsApp chat bot fleet",

	Flags: []cli.Flag{
		&flagConfig,
		&flagLog,
		&flagLogFormat,
	},
	Commands: []*cli.Command{
		{
			Name:   "init",
			Usage:  "Initialize the role and audit databases",
			Action: cliInit,
		},
		{
			Name:    "dispatch",
			Aliases: []string{"send"},
			Usage:   "Run a single message through a bot without serving",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "bot",
					Usage:    "Bot type to dispatch to",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "text",
					Usage:    "Message text",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "user",
					Usage: "Sender address",
					Value: "cli@local",
				},
				&cli.StringFlag{
					Name:  "name",
					Usage: "Sender display name",
					Value: "cli",
				},
				&cli.BoolFlag{
					Name:  "group",
					Usage: "Treat the message as sent in a group chat",
				},
			},
			Action: cliDispatch,
		},
		{
			Name:  "roles",
			Usage: "Manage role lists without serving",
			Commands: []*cli.Command{
				{
					Name:   "list",
					Usage:  "List users holding a role",
					Flags:  []cli.Flag{&flagRole},
					Action: cliRoleList,
				},
				{
					Name:   "add",
					Usage:  "Grant a role to a user",
					Flags:  []cli.Flag{&flagRole, &flagUser},
					Action: cliRoleAdd,
				},
				{
					Name:   "remove",
					Usage:  "Revoke a role from a user",
					Flags:  []cli.Flag{&flagRole, &flagUser},
					Action: cliRoleRemove,
				},
			},
		},
	},
	Action: cliRun,

	Authors: []any{
		"ITC KingSavage  @itc-kingsavage",
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		<-ctx.Done()
		stop()
	}()
	err := app.Run(ctx, os.Args)
	if err != nil {
		fmt.Println(err)
	}
}

func loadConfig(ctx context.Context, cmd *cli.Command) (*Config, error) {
	r, err := os.Open(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("couldn't open config file: %w", err)
	}
	defer r.Close()
	cfg, _, err := Load(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("couldn't load config: %w", err)
	}
	return cfg, nil
}

func cliRun(ctx context.Context, cmd *cli.Command) error {
	slog.SetDefault(loggerFromFlags(cmd))
	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	m := New(newMetrics(), runtime.GOMAXPROCS(0))
	m.SetOwner(cfg.Owner.Name, cfg.Owner.Contact)
	if err := m.SetSecrets(cfg.SecretFile); err != nil {
		return err
	}
	kv, role, aud, err := loadDBs(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer kv.Close()
	if err := m.SetSources(ctx, kv, role, aud); err != nil {
		return err
	}
	if err := m.SetBots(ctx, cfg); err != nil {
		return err
	}
	return m.Run(ctx, cfg.HTTP.Listen)
}

func cliInit(ctx context.Context, cmd *cli.Command) error {
	slog.SetDefault(loggerFromFlags(cmd))
	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	_, role, aud, err := loadDBs(ctx, cfg.DB)
	if err != nil {
		return err
	}
	if err := roles.Init(ctx, role); err != nil {
		return fmt.Errorf("couldn't init role list: %w", err)
	}
	if err := audit.Init(ctx, aud); err != nil {
		return fmt.Errorf("couldn't init audit log: %w", err)
	}
	slog.InfoContext(ctx, "databases initialized")
	return nil
}

func cliDispatch(ctx context.Context, cmd *cli.Command) error {
	slog.SetDefault(loggerFromFlags(cmd))
	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	m := New(nil, 1)
	m.SetOwner(cfg.Owner.Name, cfg.Owner.Contact)
	if err := m.SetSecrets(cfg.SecretFile); err != nil {
		return err
	}
	kv, role, aud, err := loadDBs(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer kv.Close()
	if err := m.SetSources(ctx, kv, role, aud); err != nil {
		return err
	}
	if err := m.SetBots(ctx, cfg); err != nil {
		return err
	}
	typ := cmd.String("bot")
	b := m.Bot(typ)
	if b == nil {
		return fmt.Errorf("no such bot %q", typ)
	}
	user := cmd.String("user")
	msg := &message.Received{
		ID:        "cli:" + uuid.NewString(),
		From:      user,
		Sender:    user,
		Name:      cmd.String("name"),
		Text:      cmd.String("text"),
		Timestamp: time.Now().UnixMilli(),
		Group:     cmd.Bool("group"),
	}
	if msg.Group {
		msg.From = "cli-group@local"
	}
	r := b.ProcessMessage(ctx, msg)
	switch r.Kind {
	case message.None:
		fmt.Println("(no response)")
	case message.Text:
		fmt.Println(r.Text)
	case message.Reaction:
		fmt.Println("reaction:", r.Emoji)
	}
	return nil
}

func openRoles(ctx context.Context, cmd *cli.Command) (*roles.List, error) {
	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return nil, err
	}
	_, role, _, err := loadDBs(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return roles.Open(ctx, role)
}

func cliRoleList(ctx context.Context, cmd *cli.Command) error {
	slog.SetDefault(loggerFromFlags(cmd))
	l, err := openRoles(ctx, cmd)
	if err != nil {
		return err
	}
	users, err := l.Users(ctx, roles.Role(cmd.String("role")))
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Println(u)
	}
	return nil
}

func cliRoleAdd(ctx context.Context, cmd *cli.Command) error {
	slog.SetDefault(loggerFromFlags(cmd))
	l, err := openRoles(ctx, cmd)
	if err != nil {
		return err
	}
	return l.Add(ctx, roles.Role(cmd.String("role")), cmd.String("user"))
}

func cliRoleRemove(ctx context.Context, cmd *cli.Command) error {
	slog.SetDefault(loggerFromFlags(cmd))
	l, err := openRoles(ctx, cmd)
	if err != nil {
		return err
	}
	return l.Remove(ctx, roles.Role(cmd.String("role")), cmd.String("user"))
}

var (
	flagConfig = cli.StringFlag{
		Name:       "config",
		Required:   true,
		Usage:      "TOML config file",
		Persistent: true,
		Action: func(ctx context.Context, cmd *cli.Command, s string) error {
			i, err := os.Stat(s)
			if err != nil {
				return err
			}
			if !i.Mode().IsRegular() {
				return errors.New("config must be a regular file")
			}
			return nil
		},
	}

	flagLog = cli.StringFlag{
		Name:       "log",
		Usage:      "Logging level, one of debug, info, warn, error",
		Value:      "info",
		Persistent: true,
		Action: func(ctx context.Context, c *cli.Command, s string) error {
			var l slog.Level
			return l.UnmarshalText([]byte(s))
		},
	}

	flagLogFormat = cli.StringFlag{
		Name:       "log-format",
		Usage:      "Logging format, either text or json",
		Value:      "text",
		Persistent: true,
		Action: func(ctx context.Context, c *cli.Command, s string) error {
			switch strings.ToLower(s) {
			case "text", "json":
				return nil
			default:
				return errors.New("unknown logging format")
			}
		},
	}

	flagRole = cli.StringFlag{
		Name:     "role",
		Usage:    "Role name, either vip or admin",
		Required: true,
		Action: func(ctx context.Context, c *cli.Command, s string) error {
			switch roles.Role(s) {
			case roles.VIP, roles.Admin:
				return nil
			default:
				return errors.New("unknown role")
			}
		},
	}

	flagUser = cli.StringFlag{
		Name:     "user",
		Usage:    "User address",
		Required: true,
	}
)

func loggerFromFlags(cmd *cli.Command) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cmd.String("log"))); err != nil {
		panic(err)
	}
	var h slog.Handler
	switch strings.ToLower(cmd.String("log-format")) {
	case "text":
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	case "json":
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	}
	return slog.New(h)
}

// metrics configuration
func newMetrics() *metrics.Metrics {
	return &metrics.Metrics{
		MsgsCount: metrics.NewPromCounter(
			prometheus.NewCounter(
				prometheus.CounterOpts{
					Namespace: "savagebots",
					Subsystem: "gateway",
					Name:      "messages",
					Help:      "Number of messages received from the gateway.",
				},
			),
		),
		CommandCount: metrics.NewPromCounterVec(
			prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "savagebots",
					Subsystem: "bot",
					Name:      "commands",
					Help:      "Number of command invocations dispatched to handlers.",
				},
				[]string{"bot", "command"},
			),
		),
		DeniedCount: metrics.NewPromCounter(
			prometheus.NewCounter(
				prometheus.CounterOpts{
					Namespace: "savagebots",
					Subsystem: "bot",
					Name:      "denied",
					Help:      "Number of command invocations rejected by the access policy.",
				},
			),
		),
		UnknownCount: metrics.NewPromCounter(
			prometheus.NewCounter(
				prometheus.CounterOpts{
					Namespace: "savagebots",
					Subsystem: "bot",
					Name:      "unknown",
					Help:      "Number of invocations of commands that don't exist.",
				},
			),
		),
		HandlerErrorCount: metrics.NewPromCounter(
			prometheus.NewCounter(
				prometheus.CounterOpts{
					Namespace: "savagebots",
					Subsystem: "bot",
					Name:      "handler_errors",
					Help:      "Number of handler failures converted to error replies.",
				},
			),
		),
		EvictedCount: metrics.NewPromCounter(
			prometheus.NewCounter(
				prometheus.CounterOpts{
					Namespace: "savagebots",
					Subsystem: "sessions",
					Name:      "evicted",
					Help:      "Number of sessions removed by idle sweeps.",
				},
			),
		),
		DispatchLatency: metrics.NewPromObserverVec(
			prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Buckets:   []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1, 5, 10},
					Namespace: "savagebots",
					Subsystem: "bot",
					Name:      "dispatch_latency",
					Help:      "How long a command takes from parse to response in seconds",
				},
				[]string{"bot", "category"},
			),
		),
	}
}
