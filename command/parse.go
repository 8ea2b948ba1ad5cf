package command

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	lower = cases.Lower(language.English)
	upper = cases.Upper(language.English)
)

// Parse splits raw message text into a command name and its argument text.
// The text is trimmed before the prefix check. If it does not begin with
// prefix, the result is empty and ok is false. A message that is only the
// prefix parses with an empty name, which no registry resolves. The name
// is case folded; the argument text keeps its original spelling with
// surrounding space trimmed.
func Parse(raw, prefix string) (name, args string, ok bool) {
	if prefix == "" {
		return "", "", false
	}
	r, found := strings.CutPrefix(strings.TrimSpace(raw), prefix)
	if !found {
		return "", "", false
	}
	name, args, _ = strings.Cut(strings.TrimSpace(r), " ")
	return lower.String(name), strings.TrimSpace(args), true
}
