package dash_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itc-kingsavage/savagebots/dash"
)

func TestFleetPage(t *testing.T) {
	src := func(ctx context.Context) (dash.Fleet, error) {
		return dash.Fleet{
			Owner:   "kingsavage",
			Contact: "kingsavage@example.com",
			Bots: []dash.Bot{
				{
					Type:     "savage-x",
					Name:     "Savage-X",
					Prefix:   "$",
					Emoji:    "🦅",
					Admin:    true,
					Sessions: 3,
					Active:   2,
					Commands: 41,
					Uptime:   "1h2m3s",
					Recent:   []dash.Command{{Name: "ping", Time: "12:34:56"}},
				},
			},
		}, nil
	}
	h := dash.New("savagebots", src)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != 200 {
		t.Fatalf("wrong status: %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"savagebots",
		"kingsavage",
		"kingsavage@example.com",
		"Savage-X",
		"(admin)",
		"prefix $",
		"2/3 sessions",
		"41 commands",
		"12:34:56 ping",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page is missing %q", want)
		}
	}
}

func TestFleetPageMethod(t *testing.T) {
	h := dash.New("savagebots", func(ctx context.Context) (dash.Fleet, error) {
		return dash.Fleet{}, nil
	})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/", nil))
	if w.Code != 405 {
		t.Errorf("wrong status for POST: %d", w.Code)
	}
}
