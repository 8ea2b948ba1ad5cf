package command_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/itc-kingsavage/savagebots/command"
	"github.com/itc-kingsavage/savagebots/content"
	"github.com/itc-kingsavage/savagebots/groups"
	"github.com/itc-kingsavage/savagebots/message"
	"github.com/itc-kingsavage/savagebots/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEnv(t *testing.T) *command.Env {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return &command.Env{
		Log:       testLogger(),
		BotName:   "Savage-X",
		BotType:   "savage-x",
		Prefix:    "$",
		Emoji:     "🦅",
		AdminName: "Savage-X",
		AdminBot:  true,
		Sessions:  session.New(30*time.Minute, 5*time.Minute),
		Groups:    groups.New(db),
		Content:   content.New(nil, func() uint32 { return 0 }),
	}
}

func invoke(t *testing.T, env *command.Env, user, raw string) message.Result {
	t.Helper()
	name, args, ok := command.Parse(raw, env.Prefix)
	if !ok {
		t.Fatalf("unparseable command %q", raw)
	}
	s := command.Default().Lookup(name)
	if s == nil {
		t.Fatalf("no such command %q", name)
	}
	m := &message.Received{ID: "1", From: user, Text: raw, Timestamp: time.Now().UnixMilli()}
	r, err := s.Fn(context.Background(), env, &command.Invocation{Message: m, Name: name, Args: args})
	if err != nil {
		t.Fatalf("%s failed: %v", name, err)
	}
	return r
}

func TestPing(t *testing.T) {
	env := testEnv(t)
	r := invoke(t, env, "bocchi", "$ping")
	if !strings.Contains(r.Text, "Pong") {
		t.Errorf("no pong in %q", r.Text)
	}
	// The response carries a timestamp.
	if !strings.ContainsAny(r.Text, "0123456789") {
		t.Errorf("no timestamp in %q", r.Text)
	}
}

func TestMysteryEmbedsSubject(t *testing.T) {
	env := testEnv(t)
	r := invoke(t, env, "bocchi", "$mystery ancient ruins")
	if !strings.Contains(r.Text, "ancient ruins") {
		t.Errorf("subject missing from %q", r.Text)
	}
	if !strings.Contains(r.Text, "Mystery level: 1") {
		t.Errorf("level missing from %q", r.Text)
	}
	// Repeat investigation of the same subject does not raise the level.
	r = invoke(t, env, "bocchi", "$mystery ancient ruins")
	if !strings.Contains(r.Text, "Mystery level: 1") {
		t.Errorf("repeat raised level: %q", r.Text)
	}
	r = invoke(t, env, "bocchi", "$mystery the old harbor")
	if !strings.Contains(r.Text, "Mystery level: 2") {
		t.Errorf("new subject kept level: %q", r.Text)
	}
}

func TestBadgeLastWriteWins(t *testing.T) {
	env := testEnv(t)
	invoke(t, env, "bocchi", "$badge Foo")
	r := invoke(t, env, "bocchi", "$badge Bar")
	if !strings.Contains(r.Text, "BAR") {
		t.Errorf("badge not uppercased in %q", r.Text)
	}
	r = invoke(t, env, "bocchi", "$badge")
	if !strings.Contains(r.Text, "BAR") || strings.Contains(r.Text, "FOO") {
		t.Errorf("wrong stored badge: %q", r.Text)
	}
}

func TestFavorLoyalty(t *testing.T) {
	env := testEnv(t)
	r := invoke(t, env, "bocchi", "$favor")
	if !strings.Contains(r.Text, "50") {
		t.Errorf("no points in %q", r.Text)
	}
	invoke(t, env, "bocchi", "$favor")
	r = invoke(t, env, "bocchi", "$rank")
	if !strings.Contains(r.Text, "Squire") || !strings.Contains(r.Text, "100") {
		t.Errorf("wrong rank report: %q", r.Text)
	}
}

func TestNotes(t *testing.T) {
	env := testEnv(t)
	r := invoke(t, env, "bocchi", "$notes")
	if !strings.Contains(r.Text, "No notes") {
		t.Errorf("unexpected notes: %q", r.Text)
	}
	invoke(t, env, "bocchi", "$notes buy strings")
	invoke(t, env, "bocchi", "$notes practice")
	r = invoke(t, env, "bocchi", "$notes")
	if !strings.Contains(r.Text, "buy strings") || !strings.Contains(r.Text, "practice") {
		t.Errorf("notes lost: %q", r.Text)
	}
}

func TestAntilinkSettings(t *testing.T) {
	env := testEnv(t)
	name, args, _ := command.Parse("$antilink on", env.Prefix)
	m := &message.Received{ID: "1", From: "kessoku@g.us", Sender: "seika", Group: true, Text: "$antilink on"}
	r, err := command.Default().Lookup(name).Fn(context.Background(), env, &command.Invocation{Message: m, Name: name, Args: args})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(r.Text, "on") {
		t.Errorf("not enabled: %q", r.Text)
	}
	got, err := env.Groups.Get("kessoku@g.us", groups.Antilink)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Enabled {
		t.Error("antilink not persisted")
	}
	if got.Action != groups.ActionWarn {
		t.Errorf("wrong default action: %q", got.Action)
	}
}

func TestMenuOmitsExclusive(t *testing.T) {
	env := testEnv(t)
	env.AdminBot = false
	env.BotName, env.Prefix, env.Emoji = "Queen-Rixie", ".", "👑"
	r := invoke(t, env, "bocchi", ".menu")
	if strings.Contains(r.Text, "vipstatus") || strings.Contains(r.Text, "ADMIN") {
		t.Errorf("exclusive commands in non-admin menu: %q", r.Text)
	}
	if !strings.Contains(r.Text, ".joke") {
		t.Errorf("fun commands missing from menu: %q", r.Text)
	}
	env = testEnv(t)
	r = invoke(t, env, "bocchi", "$menu")
	if !strings.Contains(r.Text, "$vipstatus") {
		t.Errorf("vip commands missing from admin bot menu: %q", r.Text)
	}
}

func TestCalc(t *testing.T) {
	env := testEnv(t)
	r := invoke(t, env, "bocchi", "$calc 6 * 7")
	if !strings.Contains(r.Text, "42") {
		t.Errorf("wrong product: %q", r.Text)
	}
	r = invoke(t, env, "bocchi", "$calc 1 / 0")
	if !strings.Contains(r.Text, "zero") {
		t.Errorf("divided by zero: %q", r.Text)
	}
}

func TestEncryptDecode(t *testing.T) {
	env := testEnv(t)
	r := invoke(t, env, "bocchi", "$encrypt bocchi the rock")
	enc := strings.TrimPrefix(r.Text, "🔐 ")
	r = invoke(t, env, "bocchi", "$decode "+enc)
	if !strings.Contains(r.Text, "bocchi the rock") {
		t.Errorf("round trip failed: %q", r.Text)
	}
}
