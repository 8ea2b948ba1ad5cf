package audit_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/itc-kingsavage/savagebots/audit"
	"github.com/itc-kingsavage/savagebots/userhash"
)

var dbCount atomic.Int64

func testDB(ctx context.Context, t *testing.T) *sqlitex.Pool {
	t.Helper()
	k := dbCount.Add(1)
	pool, err := sqlitex.NewPool(fmt.Sprintf("file:test-audit-%d.db?mode=memory&cache=shared", k), sqlitex.PoolOptions{Flags: sqlite.OpenReadWrite | sqlite.OpenCreate | sqlite.OpenMemory | sqlite.OpenSharedCache | sqlite.OpenURI})
	if err != nil {
		t.Fatal(err)
	}
	if err := audit.Init(ctx, pool); err != nil {
		t.Fatal(err)
	}
	return pool
}

func TestRecord(t *testing.T) {
	ctx := context.Background()
	l := audit.Open(testDB(ctx, t))
	u := userhash.Hash{1, 2, 3}
	if err := l.Record(ctx, "savage-x", "ping", u, time.Unix(100, 0)); err != nil {
		t.Fatal(err)
	}
	if err := l.Record(ctx, "savage-x", "joke", u, time.Unix(200, 0)); err != nil {
		t.Fatal(err)
	}
	got, err := l.Recent(ctx, "savage-x", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("wrong number of entries: got %d, want 2", len(got))
	}
	if got[0].Command != "joke" || got[1].Command != "ping" {
		t.Errorf("wrong order: %q then %q", got[0].Command, got[1].Command)
	}
	if got[0].User != u {
		t.Errorf("wrong user hash: got %x, want %x", got[0].User, u)
	}
	if !got[1].Time.Equal(time.Unix(100, 0)) {
		t.Errorf("wrong time: got %v", got[1].Time)
	}
}

func TestTop(t *testing.T) {
	ctx := context.Background()
	l := audit.Open(testDB(ctx, t))
	u := userhash.Hash{9}
	for range 3 {
		if err := l.Record(ctx, "savage-x", "joke", u, time.Now()); err != nil {
			t.Fatal(err)
		}
	}
	if err := l.Record(ctx, "savage-x", "ping", u, time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := l.Record(ctx, "queen-rixie", "royal", u, time.Now()); err != nil {
		t.Fatal(err)
	}
	got, err := l.Top(ctx, "savage-x", 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []audit.Count{{Command: "joke", Count: 3}, {Command: "ping", Count: 1}}
	if len(got) != len(want) {
		t.Fatalf("wrong ranking size: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("wrong ranking at %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
