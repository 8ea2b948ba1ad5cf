// Package audit records executed commands for analytics and review.
package audit

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/itc-kingsavage/savagebots/userhash"
)

// Log is a persistent record of executed commands.
type Log struct {
	db *sqlitex.Pool
}

// Open opens an audit log over a database.
func Open(db *sqlitex.Pool) *Log {
	return &Log{db: db}
}

// Record records an executed command. The user is identified only by
// hash.
func (l *Log) Record(ctx context.Context, bot, cmd string, user userhash.Hash, tm time.Time) error {
	conn, err := l.db.Take(ctx)
	defer l.db.Put(conn)
	if err != nil {
		return fmt.Errorf("couldn't get conn to record command: %w", err)
	}
	st, err := conn.Prepare(`INSERT INTO audit (bot, cmd, user, time) VALUES (:bot, :cmd, :user, :time)`)
	if err != nil {
		return fmt.Errorf("couldn't prepare record statement: %w", err)
	}
	st.SetText(":bot", bot)
	st.SetText(":cmd", cmd)
	st.SetBytes(":user", user[:])
	st.SetInt64(":time", tm.UnixNano())
	if _, err := st.Step(); err != nil {
		return fmt.Errorf("couldn't record command: %w", err)
	}
	return nil
}

// Count is a command name with its execution count.
type Count struct {
	Command string
	Count   int64
}

// Top reports the n most executed commands on a bot, most first.
func (l *Log) Top(ctx context.Context, bot string, n int) ([]Count, error) {
	conn, err := l.db.Take(ctx)
	defer l.db.Put(conn)
	if err != nil {
		return nil, fmt.Errorf("couldn't get conn to rank commands: %w", err)
	}
	st, err := conn.Prepare(`SELECT cmd, COUNT(*) AS n FROM audit WHERE bot = :bot GROUP BY cmd ORDER BY n DESC, cmd ASC LIMIT :n`)
	if err != nil {
		return nil, fmt.Errorf("couldn't prepare ranking statement: %w", err)
	}
	st.SetText(":bot", bot)
	st.SetInt64(":n", int64(n))
	var r []Count
	for {
		ok, err := st.Step()
		if err != nil {
			return nil, fmt.Errorf("couldn't rank commands: %w", err)
		}
		if !ok {
			return r, nil
		}
		r = append(r, Count{Command: st.ColumnText(0), Count: st.ColumnInt64(1)})
	}
}

// Entry is one recorded command execution.
type Entry struct {
	Command string
	User    userhash.Hash
	Time    time.Time
}

// Recent reports the n most recently executed commands on a bot, newest
// first.
func (l *Log) Recent(ctx context.Context, bot string, n int) ([]Entry, error) {
	conn, err := l.db.Take(ctx)
	defer l.db.Put(conn)
	if err != nil {
		return nil, fmt.Errorf("couldn't get conn to list commands: %w", err)
	}
	st, err := conn.Prepare(`SELECT cmd, user, time FROM audit WHERE bot = :bot ORDER BY time DESC LIMIT :n`)
	if err != nil {
		return nil, fmt.Errorf("couldn't prepare listing statement: %w", err)
	}
	st.SetText(":bot", bot)
	st.SetInt64(":n", int64(n))
	var r []Entry
	for {
		ok, err := st.Step()
		if err != nil {
			return nil, fmt.Errorf("couldn't list commands: %w", err)
		}
		if !ok {
			return r, nil
		}
		var e Entry
		e.Command = st.ColumnText(0)
		st.ColumnBytes(1, e.User[:])
		e.Time = time.Unix(0, st.ColumnInt64(2))
		r = append(r, e)
	}
}

//go:embed schema.sql
var schemaSQL string

// Init initializes an SQLite DB to record executed commands.
func Init[DB *sqlitex.Pool | *sqlite.Conn](ctx context.Context, db DB) error {
	var conn *sqlite.Conn
	switch db := any(db).(type) {
	case *sqlite.Conn:
		conn = db
	case *sqlitex.Pool:
		var err error
		conn, err = db.Take(ctx)
		defer db.Put(conn)
		if err != nil {
			return fmt.Errorf("couldn't get conn to initialize audit log: %w", err)
		}
	}
	if err := sqlitex.ExecuteScript(conn, schemaSQL, nil); err != nil {
		return fmt.Errorf("couldn't initialize audit schema: %w", err)
	}
	return nil
}
