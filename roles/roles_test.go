package roles_test

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"testing"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/itc-kingsavage/savagebots/roles"
)

var dbcount atomic.Uint64

func testConn() *sqlitex.Pool {
	k := dbcount.Add(1)
	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%d.db?mode=memory&cache=shared", k), sqlitex.PoolOptions{Flags: sqlite.OpenReadWrite | sqlite.OpenCreate | sqlite.OpenMemory | sqlite.OpenSharedCache | sqlite.OpenURI})
	if err != nil {
		panic(err)
	}
	return pool
}

func TestInit(t *testing.T) {
	ctx := context.Background()
	db := testConn()
	if err := roles.Init(ctx, db); err != nil {
		t.Error(err)
	}
}

func TestList(t *testing.T) {
	type check struct {
		role roles.Role
		user string
		ok   bool
	}
	type grant struct {
		role roles.Role
		user string
	}
	cases := []struct {
		name string
		add  []grant
		rem  []grant
		chk  []check
	}{
		{
			name: "empty",
			add:  nil,
			rem:  nil,
			chk: []check{
				{role: roles.VIP, user: "bocchi", ok: false},
				{role: roles.Admin, user: "bocchi", ok: false},
			},
		},
		{
			name: "present",
			add: []grant{
				{role: roles.VIP, user: "bocchi"},
				{role: roles.Admin, user: "ryou"},
			},
			rem: nil,
			chk: []check{
				{role: roles.VIP, user: "bocchi", ok: true},
				{role: roles.Admin, user: "bocchi", ok: false},
				{role: roles.VIP, user: "ryou", ok: false},
				{role: roles.Admin, user: "ryou", ok: true},
			},
		},
		{
			name: "overlapping",
			add: []grant{
				{role: roles.VIP, user: "bocchi"},
				{role: roles.Admin, user: "bocchi"},
				{role: roles.VIP, user: "bocchi"},
			},
			rem: nil,
			chk: []check{
				{role: roles.VIP, user: "bocchi", ok: true},
				{role: roles.Admin, user: "bocchi", ok: true},
			},
		},
		{
			name: "remove",
			add: []grant{
				{role: roles.VIP, user: "bocchi"},
				{role: roles.VIP, user: "ryou"},
				{role: roles.Admin, user: "ryou"},
			},
			rem: []grant{
				{role: roles.VIP, user: "ryou"},
				{role: roles.Admin, user: "kita"},
			},
			chk: []check{
				{role: roles.VIP, user: "bocchi", ok: true},
				{role: roles.VIP, user: "ryou", ok: false},
				{role: roles.Admin, user: "ryou", ok: true},
				{role: roles.Admin, user: "kita", ok: false},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			db := testConn()
			if err := roles.Init(ctx, db); err != nil {
				t.Fatal(err)
			}
			l, err := roles.Open(ctx, db)
			if err != nil {
				t.Fatal(err)
			}
			for _, v := range c.add {
				if err := l.Add(ctx, v.role, v.user); err != nil {
					t.Errorf("couldn't grant %s to %q: %v", v.role, v.user, err)
				}
			}
			for _, v := range c.rem {
				if err := l.Remove(ctx, v.role, v.user); err != nil {
					t.Errorf("couldn't revoke %s from %q: %v", v.role, v.user, err)
				}
			}
			for _, v := range c.chk {
				ok, err := l.Has(ctx, v.role, v.user)
				if err != nil {
					t.Errorf("couldn't check %s for %q: %v", v.role, v.user, err)
					continue
				}
				if ok != v.ok {
					t.Errorf("%q %s: want %t, got %t", v.user, v.role, v.ok, ok)
				}
			}
		})
	}
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	db := testConn()
	if err := roles.Init(ctx, db); err != nil {
		t.Fatal(err)
	}
	l, err := roles.Open(ctx, db)
	if err != nil {
		t.Fatal(err)
	}
	for _, u := range []string{"ryou", "bocchi", "nijika"} {
		if err := l.Add(ctx, roles.VIP, u); err != nil {
			t.Fatal(err)
		}
	}
	if err := l.Add(ctx, roles.Admin, "kita"); err != nil {
		t.Fatal(err)
	}
	got, err := l.Users(ctx, roles.VIP)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"bocchi", "nijika", "ryou"}
	if !slices.Equal(got, want) {
		t.Errorf("wrong vip users: want %v, got %v", want, got)
	}
}
