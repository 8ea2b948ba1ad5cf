package command_test

import (
	"testing"

	"github.com/itc-kingsavage/savagebots/command"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		prefix string
		cmd    string
		args   string
		ok     bool
	}{
		{name: "plain", raw: "$ping", prefix: "$", cmd: "ping", args: "", ok: true},
		{name: "args", raw: "$mystery ancient ruins", prefix: "$", cmd: "mystery", args: "ancient ruins", ok: true},
		{name: "case", raw: "$PING", prefix: "$", cmd: "ping", args: "", ok: true},
		{name: "args keep case", raw: "$badge Gold Star", prefix: "$", cmd: "badge", args: "Gold Star", ok: true},
		{name: "space after prefix", raw: "$  ping", prefix: "$", cmd: "ping", args: "", ok: true},
		{name: "leading space", raw: "  $ping", prefix: "$", cmd: "ping", args: "", ok: true},
		{name: "no prefix", raw: "hello there", prefix: "$", ok: false},
		{name: "wrong prefix", raw: ".ping", prefix: "$", ok: false},
		{name: "bare prefix", raw: "$", prefix: "$", cmd: "", args: "", ok: true},
		{name: "prefix and space", raw: "$   ", prefix: "$", cmd: "", args: "", ok: true},
		{name: "dot prefix", raw: ".fortune", prefix: ".", cmd: "fortune", args: "", ok: true},
		{name: "empty prefix", raw: "ping", prefix: "", ok: false},
		{name: "trailing space", raw: "$joke  ", prefix: "$", cmd: "joke", args: "", ok: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cmd, args, ok := command.Parse(c.raw, c.prefix)
			if ok != c.ok {
				t.Fatalf("wrong ok for %q: got %v, want %v", c.raw, ok, c.ok)
			}
			if cmd != c.cmd || args != c.args {
				t.Errorf("wrong parse of %q: got %q %q, want %q %q", c.raw, cmd, args, c.cmd, c.args)
			}
		})
	}
}

func TestRegistryUnique(t *testing.T) {
	// NewRegistry panics on duplicate names, so constructing it is the test.
	r := command.NewRegistry()
	n := 0
	for range r.All() {
		n++
	}
	if n == 0 {
		t.Fatal("empty registry")
	}
}

func TestClassify(t *testing.T) {
	r := command.Default()
	cases := []struct {
		cmd  string
		want command.Category
	}{
		{"ping", command.General},
		{"joke", command.Fun},
		{"vipstatus", command.VIP},
		{"vipadd", command.Admin},
		{"antilink", command.Moderation},
		{"usage", command.Analytics},
		{"mystery", command.Extra},
		{"laugh", command.Reaction},
		{"nonexistent", command.Unknown},
	}
	for _, c := range cases {
		if got := r.Classify(c.cmd); got != c.want {
			t.Errorf("wrong category for %q: got %v, want %v", c.cmd, got, c.want)
		}
	}
}

func TestExclusive(t *testing.T) {
	for _, c := range []command.Category{command.Admin, command.VIP, command.Moderation, command.Analytics} {
		if !c.Exclusive() {
			t.Errorf("%v is not exclusive", c)
		}
	}
	for _, c := range []command.Category{command.General, command.Fun, command.Extra, command.Group, command.Reaction, command.Unknown} {
		if c.Exclusive() {
			t.Errorf("%v is exclusive", c)
		}
	}
}

func TestReactions(t *testing.T) {
	r := command.Default()
	for s := range r.ByCategory(command.Reaction) {
		if s.Emoji == "" {
			t.Errorf("reaction %q has no emoji", s.Name)
		}
		if s.Fn != nil {
			t.Errorf("reaction %q has a handler", s.Name)
		}
	}
	if got := r.Lookup("laugh").Emoji; got != "😂" {
		t.Errorf("wrong laugh emoji: %q", got)
	}
}
