package command

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Category is the classification of a command.
type Category string

// Command categories. Admin, VIP, Moderation, and Analytics commands run
// only on the designated admin bot.
const (
	General    Category = "general"
	AI         Category = "ai"
	Fun        Category = "fun"
	BotCtl     Category = "bot"
	Group      Category = "group"
	Download   Category = "download"
	God        Category = "god"
	Extra      Category = "extra"
	Reaction   Category = "reaction"
	Admin      Category = "admin"
	VIP        Category = "vip"
	Moderation Category = "moderation"
	Analytics  Category = "analytics"
	Unknown    Category = "unknown"
)

// Exclusive reports whether commands in the category run only on the
// designated admin bot.
func (c Category) Exclusive() bool {
	switch c {
	case Admin, VIP, Moderation, Analytics:
		return true
	default:
		return false
	}
}

// Icon is the decoration prepended to responses from commands in the
// category. Unlisted categories have no icon.
func (c Category) Icon() string {
	return icons[c]
}

var icons = map[Category]string{
	General:    "📋",
	AI:         "🤖",
	Fun:        "🎉",
	BotCtl:     "⚙️",
	Group:      "👥",
	Download:   "📥",
	God:        "🙏",
	Extra:      "✨",
	Admin:      "🛡️",
	VIP:        "💎",
	Moderation: "🔨",
	Analytics:  "📊",
}

// Spec is a single command in the registry.
type Spec struct {
	// Name is the name of the command.
	Name string
	// Category is the command's classification.
	Category Category
	// GroupOnly indicates the command runs only in group chats.
	GroupOnly bool
	// Help describes the command for menus.
	Help string
	// Emoji is the reaction for commands in the Reaction category.
	Emoji string
	// Fn executes the command. It is nil for reactions.
	Fn Func
}

// Registry is the set of all commands, indexed by name. Every command
// belongs to exactly one category.
type Registry struct {
	specs map[string]*Spec
}

// NewRegistry creates the command registry. It panics if any command name
// appears more than once.
func NewRegistry() *Registry {
	specs := make(map[string]*Spec, len(table))
	for i := range table {
		s := &table[i]
		if _, dup := specs[s.Name]; dup {
			panic(fmt.Errorf("duplicate command %q", s.Name))
		}
		specs[s.Name] = s
	}
	return &Registry{specs: specs}
}

// std is assigned in init rather than initialized in place because the
// table's handlers refer back to it for menu and help text.
var std *Registry

func init() {
	std = NewRegistry()
}

// Default returns the registry of all built-in commands.
func Default() *Registry {
	return std
}

// Lookup finds the command with the given name, or nil if there is none.
func (r *Registry) Lookup(name string) *Spec {
	return r.specs[name]
}

// Classify reports the category of the named command, or Unknown if no
// such command exists.
func (r *Registry) Classify(name string) Category {
	s := r.specs[name]
	if s == nil {
		return Unknown
	}
	return s.Category
}

// All yields every command in the registry in name order.
func (r *Registry) All() iter.Seq[*Spec] {
	return func(yield func(*Spec) bool) {
		for _, name := range slices.Sorted(maps.Keys(r.specs)) {
			if !yield(r.specs[name]) {
				return
			}
		}
	}
}

// ByCategory yields every command in the given category in name order.
func (r *Registry) ByCategory(c Category) iter.Seq[*Spec] {
	return func(yield func(*Spec) bool) {
		for s := range r.All() {
			if s.Category != c {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}
