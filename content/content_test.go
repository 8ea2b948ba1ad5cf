package content_test

import (
	"testing"

	"github.com/itc-kingsavage/savagebots/content"
)

func TestPickDeterministic(t *testing.T) {
	over := map[string]map[string]int{
		"joke": {"bocchi": 1},
	}
	p := content.New(over, func() uint32 { return 0 })
	if got := p.Pick("joke"); got != "bocchi" {
		t.Errorf("wrong pick from single-item dist: got %q, want %q", got, "bocchi")
	}
	if got := p.Pick("joke"); got != "bocchi" {
		t.Errorf("pick changed between calls: got %q", got)
	}
}

func TestPickUnknownKind(t *testing.T) {
	p := content.New(nil, func() uint32 { return 0 })
	if got := p.Pick("nonexistent"); got != "" {
		t.Errorf("pick of unknown kind gave %q, want empty", got)
	}
}

func TestPickBuiltins(t *testing.T) {
	p := content.New(nil, nil)
	for _, kind := range []string{"joke", "quote", "fact", "truth", "dare", "8ball", "fortune", "riddle", "wisdom", "mystery", "verse", "prayer", "decree"} {
		if got := p.Pick(kind); got == "" {
			t.Errorf("no content for kind %q", kind)
		}
	}
}
