package main_test

import (
	"context"
	_ "embed"
	"strings"
	"testing"

	main "github.com/itc-kingsavage/savagebots"
)

//go:embed example.toml
var exampleToml string

func eqcase[T comparable](t *testing.T, name string, val T, eq T) {
	t.Helper()
	if val != eq {
		t.Errorf("wrong %s: want %#v, got %#v", name, eq, val)
	}
}

func TestExampleConfig(t *testing.T) {
	cfg, _, err := main.Load(context.Background(), strings.NewReader(exampleToml))
	if err != nil {
		t.Errorf("failed to load example.toml: %v", err)
	}

	eqcase(t, "Owner.Name", cfg.Owner.Name, `kingsavage`)
	eqcase(t, "Owner.Contact", cfg.Owner.Contact, `wa.me/255700000000`)
	eqcase(t, "DB.Groups", cfg.DB.Groups, `/var/savagebots/groups`)
	eqcase(t, "DB.KVFlag", cfg.DB.KVFlag, "")
	eqcase(t, "HTTP.Listen", cfg.HTTP.Listen, ":4959")
	eqcase(t, "Session.Idle", cfg.Session.Idle, 1800.0)
	eqcase(t, "Session.Sweep", cfg.Session.Sweep, 300.0)
	eqcase(t, "Global.Timeout", cfg.Global.Timeout, 15.0)
	eqcase(t, "Global.Rate.Every", cfg.Global.Rate.Every, 10.0)
	eqcase(t, "Global.Rate.Num", cfg.Global.Rate.Num, 5)
	eqcase(t, "Bots[`savage-x`].Name", cfg.Bots[`savage-x`].Name, `Savage-X`)
	eqcase(t, "Bots[`savage-x`].Prefix", cfg.Bots[`savage-x`].Prefix, `$`)
	eqcase(t, "Bots[`savage-x`].Emoji", cfg.Bots[`savage-x`].Emoji, `🦅`)
	eqcase(t, "Bots[`savage-x`].Admin", cfg.Bots[`savage-x`].Admin, true)
	eqcase(t, "Bots[`queen-rixie`].Prefix", cfg.Bots[`queen-rixie`].Prefix, `.`)
	eqcase(t, "Bots[`queen-rixie`].Admin", cfg.Bots[`queen-rixie`].Admin, false)
	eqcase(t, "Bots[`queen-rixie`].Rate.Every", cfg.Bots[`queen-rixie`].Rate.Every, 5.0)
	eqcase(t, "Bots[`queen-rixie`].Rate.Num", cfg.Bots[`queen-rixie`].Rate.Num, 10)
	eqcase(t, "Bots[`de-unknown`].Emoji", cfg.Bots[`de-unknown`].Emoji, `🔮`)
	eqcase(t, "Bots[`de-unknown`].Error", cfg.Bots[`de-unknown`].Error, `🔮 The mists cloud my sight. Ask again.`)
	eqcase(t, "global content", cfg.Global.Content[`joke`][`Why did the bot cross the road? To dispatch the other side.`], 1)
	eqcase(t, "bot content", cfg.Bots[`queen-rixie`].Content[`decree`][`The crown decrees an extra hour of sleep for all subjects.`], 2)
	substrings := []struct {
		name string
		val  string
		has  string
	}{
		{"SecretFile", cfg.SecretFile, "/key"},
		{"DB.Roles", cfg.DB.Roles, "file:"},
		{"DB.Audit", cfg.DB.Audit, "file:"},
	}
	for _, c := range substrings {
		if !strings.Contains(c.val, c.has) {
			t.Errorf("wrong %s: %q does not contain %q", c.name, c.val, c.has)
		}
	}
}
