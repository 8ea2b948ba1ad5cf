// Package dash serves the fleet status dashboard.
package dash

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
)

// Fleet is the view model for the dashboard.
type Fleet struct {
	Owner   string
	Contact string
	Bots    []Bot
}

// Bot is one bot's row on the dashboard.
type Bot struct {
	Type     string
	Name     string
	Prefix   string
	Emoji    string
	Admin    bool
	Sessions int
	Active   int
	Commands int64
	Uptime   string
	Recent   []Command
}

// Command is a recently executed command.
type Command struct {
	Name string
	Time string
}

const fleetTemplSrc = `
<html>
<head>
<title>{{.Title}}</title>
<style>
	.bots {
		display: flex;
		flex-direction: column;
	}

	.bot {
		border: 1px solid black;
		display: flex;
		flex: none;
	}

	.bot > div {
		flex: none;
		padding: 0px 8px;
	}

	.bot > .bot__recent {
		display: none;
	}

	.bot:hover > .bot__recent {
		display: contents;
	}
</style>
</head>
<body>
<p>Fleet of {{.Fleet.Owner}}{{if .Fleet.Contact}} ({{.Fleet.Contact}}){{end}}</p>
<div class="bots">
{{range .Fleet.Bots}}	<div class="bot">
		<div class="bot__name"><p>{{.Emoji}} {{.Name}}{{if .Admin}} (admin){{end}}</p></div>
		<div class="bot__prefix"><p>prefix {{.Prefix}}</p></div>
		<div class="bot__sessions"><p>{{.Active}}/{{.Sessions}} sessions</p></div>
		<div class="bot__commands"><p>{{.Commands}} commands</p></div>
		<div class="bot__uptime"><p>up {{.Uptime}}</p></div>
		<div class="bot__recent"><p>{{range .Recent}}{{.Time}} {{.Name}} {{end}}</p></div>
	</div>
{{end}}</div>
</body>
</html>
`

var fleetTempl = template.Must(template.New("fleet").Parse(fleetTemplSrc))

type fleetHandler struct {
	title string
	src   func(context.Context) (Fleet, error)
}

// New creates the dashboard handler. src provides the current fleet
// state per request.
func New(title string, src func(context.Context) (Fleet, error)) http.Handler {
	return &fleetHandler{title: title, src: src}
}

func (h *fleetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		h.get(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *fleetHandler) get(w http.ResponseWriter, r *http.Request) {
	failed := func(err error, where string) {
		if err == nil {
			panic(fmt.Errorf("nil error in failed from %q", where))
		}
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "<html><body><p>%s failed: %v</p></body></html>", where, template.HTMLEscapeString(err.Error()))
	}
	w.Header().Add("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("X-Content-Type-Options", "nosniff")
	f, err := h.src(r.Context())
	if err != nil {
		failed(err, "fleet state")
		return
	}
	v := struct {
		Title string
		Fleet Fleet
	}{
		Title: h.title,
		Fleet: f,
	}
	if err := fleetTempl.Execute(w, v); err != nil {
		failed(err, "writing body")
	}
}
