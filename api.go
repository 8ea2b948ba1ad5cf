package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/pprof" // register handlers
	"regexp"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itc-kingsavage/savagebots/dash"
	"github.com/itc-kingsavage/savagebots/roles"
)

func (m *Manager) api(ctx context.Context, listen string, mux *http.ServeMux, metrics []prometheus.Collector) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(
		collectors.WithGoCollectorMemStatsMetricsDisabled(),
		collectors.WithGoCollectorRuntimeMetrics(
			collectors.GoRuntimeMetricsRule{
				Matcher: regexp.MustCompile(`^(/gc/gogc:percent|/gc/gomemlimit:bytes|/gc/heap/allocs:bytes|/gc/heap/allocs:objects|/gc/heap/goal:bytes|/memory/classes/heap/released:bytes|/memory/classes/heap/stacks:bytes|/memory/classes/total:bytes|/sched/gomaxprocs:threads|/sched/goroutines:goroutines|/sched/latencies:seconds)$`),
			},
		),
	))
	reg.MustRegister(metrics...)
	opts := promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, opts))
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("GET /healthz", m.apiHealth)
	mux.HandleFunc("GET /api/bots", m.apiBots)
	mux.HandleFunc("GET /api/stats", m.apiStats)
	mux.HandleFunc("GET /api/roles/{role}", m.apiRoleList)
	mux.HandleFunc("PUT /api/roles/{role}/{user}", m.apiRoleAdd)
	mux.HandleFunc("DELETE /api/roles/{role}/{user}", m.apiRoleRemove)
	mux.HandleFunc("GET /gateway", m.gateway)
	mux.Handle("GET /{$}", dash.New("savagebots", m.dashView))
	l, err := net.Listen("tcp", listen)
	if err != nil {
		return fmt.Errorf("couldn't start API server: %w", err)
	}
	srv := http.Server{
		Handler:     mux,
		ReadTimeout: 5 * time.Second,
		BaseContext: func(l net.Listener) context.Context { return ctx },
	}
	go func() {
		slog.InfoContext(ctx, "HTTP API server", slog.Any("addr", l.Addr()))
		err := srv.Serve(l)
		if err == http.ErrServerClosed {
			return
		}
		slog.ErrorContext(ctx, "HTTP API server closed", slog.Any("err", err))
	}()
	<-ctx.Done()
	// The context is now done, so it is obviously the wrong choice for
	// managing the shutdown.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func jsonerror(w http.ResponseWriter, status int, msg string) {
	v := struct {
		Error  string `json:"error"`
		Status int    `json:"status"`
	}{
		Error:  msg,
		Status: status,
	}
	b, err := json.Marshal(&v)
	if err != nil {
		panic(err)
	}
	w.WriteHeader(status)
	w.Write(b)
}

func jsonok(w http.ResponseWriter, log *slog.Logger, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	if _, err := w.Write(b); err != nil {
		log.Error("write response failed", slog.Any("err", err))
	}
}

func (m *Manager) apiHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	v := struct {
		Status string `json:"status"`
		Bots   int    `json:"bots"`
	}{
		Status: "ok",
		Bots:   m.bots.Len(),
	}
	b, err := json.Marshal(&v)
	if err != nil {
		panic(err)
	}
	w.Write(b)
}

type apiBot struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
	Emoji  string `json:"emoji"`
	Admin  bool   `json:"admin,omitzero"`
}

func (m *Manager) apiBots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slog.With(slog.String("api", "bots"), slog.Any("trace", uuid.New()))
	log.InfoContext(ctx, "handle", slog.String("route", r.Pattern), slog.String("remote", r.RemoteAddr))
	defer log.InfoContext(ctx, "done")
	w.Header().Set("Content-Type", "application/json")
	u := struct {
		Data   []apiBot `json:"data"`
		Status int      `json:"status"`
	}{
		Status: http.StatusOK,
	}
	for typ, b := range m.bots.All() {
		u.Data = append(u.Data, apiBot{
			Type:   typ,
			Name:   b.Name(),
			Prefix: b.Prefix(),
			Emoji:  b.Emoji(),
			Admin:  b.Admin(),
		})
	}
	jsonok(w, log, &u)
}

type apiStat struct {
	Bot            string            `json:"bot"`
	TotalSessions  int               `json:"totalSessions"`
	ActiveSessions int               `json:"activeSessions"`
	Commands       int64             `json:"commands"`
	Uptime         string            `json:"uptime"`
	Top            []apiCommandCount `json:"top,omitempty"`
}

type apiCommandCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

func (m *Manager) apiStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slog.With(slog.String("api", "stats"), slog.Any("trace", uuid.New()))
	log.InfoContext(ctx, "handle", slog.String("route", r.Pattern), slog.String("remote", r.RemoteAddr))
	defer log.InfoContext(ctx, "done")
	w.Header().Set("Content-Type", "application/json")
	u := struct {
		Data   []apiStat `json:"data"`
		Status int       `json:"status"`
	}{
		Status: http.StatusOK,
	}
	for typ, b := range m.bots.All() {
		st := b.Stats()
		s := apiStat{
			Bot:            typ,
			TotalSessions:  st.TotalSessions,
			ActiveSessions: st.ActiveSessions,
			Commands:       st.Commands,
			Uptime:         st.Uptime,
		}
		for _, c := range st.Top {
			s.Top = append(s.Top, apiCommandCount{Name: c.Name, Count: c.Count})
		}
		u.Data = append(u.Data, s)
	}
	jsonok(w, log, &u)
}

func parseRole(s string) (roles.Role, bool) {
	switch roles.Role(s) {
	case roles.VIP:
		return roles.VIP, true
	case roles.Admin:
		return roles.Admin, true
	default:
		return "", false
	}
}

func (m *Manager) apiRoleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slog.With(slog.String("api", "rolelist"), slog.Any("trace", uuid.New()))
	log.InfoContext(ctx, "handle", slog.String("route", r.Pattern), slog.String("remote", r.RemoteAddr))
	defer log.InfoContext(ctx, "done")
	w.Header().Set("Content-Type", "application/json")
	role, ok := parseRole(r.PathValue("role"))
	if !ok {
		log.WarnContext(ctx, "bad role", slog.String("role", r.PathValue("role")))
		jsonerror(w, http.StatusBadRequest, "unknown role")
		return
	}
	users, err := m.roles.Users(ctx, role)
	if err != nil {
		log.ErrorContext(ctx, "couldn't list role", slog.Any("err", err))
		jsonerror(w, http.StatusInternalServerError, err.Error())
		return
	}
	u := struct {
		Data   []string `json:"data"`
		Status int      `json:"status"`
	}{
		Data:   users,
		Status: http.StatusOK,
	}
	jsonok(w, log, &u)
}

func (m *Manager) apiRoleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slog.With(slog.String("api", "roleadd"), slog.Any("trace", uuid.New()))
	log.InfoContext(ctx, "handle", slog.String("route", r.Pattern), slog.String("remote", r.RemoteAddr))
	defer log.InfoContext(ctx, "done")
	role, ok := parseRole(r.PathValue("role"))
	if !ok {
		log.WarnContext(ctx, "bad role", slog.String("role", r.PathValue("role")))
		jsonerror(w, http.StatusBadRequest, "unknown role")
		return
	}
	user := r.PathValue("user")
	if user == "" {
		jsonerror(w, http.StatusBadRequest, "empty user")
		return
	}
	if err := m.roles.Add(ctx, role, user); err != nil {
		log.ErrorContext(ctx, "couldn't grant role", slog.Any("err", err))
		jsonerror(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.InfoContext(ctx, "granted", slog.String("role", string(role)), slog.String("user", user))
	w.WriteHeader(http.StatusNoContent)
}

func (m *Manager) apiRoleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slog.With(slog.String("api", "roleremove"), slog.Any("trace", uuid.New()))
	log.InfoContext(ctx, "handle", slog.String("route", r.Pattern), slog.String("remote", r.RemoteAddr))
	defer log.InfoContext(ctx, "done")
	role, ok := parseRole(r.PathValue("role"))
	if !ok {
		log.WarnContext(ctx, "bad role", slog.String("role", r.PathValue("role")))
		jsonerror(w, http.StatusBadRequest, "unknown role")
		return
	}
	user := r.PathValue("user")
	if user == "" {
		jsonerror(w, http.StatusBadRequest, "empty user")
		return
	}
	if err := m.roles.Remove(ctx, role, user); err != nil {
		log.ErrorContext(ctx, "couldn't revoke role", slog.Any("err", err))
		jsonerror(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.InfoContext(ctx, "revoked", slog.String("role", string(role)), slog.String("user", user))
	w.WriteHeader(http.StatusNoContent)
}

// dashView assembles the dashboard view model.
func (m *Manager) dashView(ctx context.Context) (dash.Fleet, error) {
	f := dash.Fleet{Owner: m.owner, Contact: m.ownerContact}
	for typ, b := range m.bots.All() {
		st := b.Stats()
		v := dash.Bot{
			Type:     typ,
			Name:     b.Name(),
			Prefix:   b.Prefix(),
			Emoji:    b.Emoji(),
			Admin:    b.Admin(),
			Sessions: st.TotalSessions,
			Active:   st.ActiveSessions,
			Commands: st.Commands,
			Uptime:   st.Uptime,
		}
		recent, err := m.audit.Recent(ctx, typ, 10)
		if err != nil {
			return dash.Fleet{}, fmt.Errorf("couldn't read audit log for %s: %w", typ, err)
		}
		for _, e := range recent {
			v.Recent = append(v.Recent, dash.Command{
				Name: e.Command,
				Time: e.Time.Format("15:04:05"),
			})
		}
		f.Bots = append(f.Bots, v)
	}
	return f, nil
}
