// Package roles stores the process-wide VIP and admin allow-lists.
package roles

import (
	"context"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Role names a role list. Only [VIP] and [Admin] are valid.
type Role string

const (
	// VIP is the role unlocking VIP-category commands.
	VIP Role = "vip"
	// Admin is the role unlocking admin-category commands.
	Admin Role = "admin"
)

// List is a role list backed by an SQL database.
type List struct {
	db *sqlitex.Pool
}

// Open opens an existing role list in an SQL database.
func Open(ctx context.Context, db *sqlitex.Pool) (*List, error) {
	return &List{db: db}, nil
}

// Init initializes a role list in an SQL database.
// For convenience, it accepts either a single connection or a pool.
func Init[DB *sqlite.Conn | *sqlitex.Pool](ctx context.Context, db DB) error {
	var conn *sqlite.Conn
	switch db := any(db).(type) {
	case *sqlite.Conn:
		conn = db
	case *sqlitex.Pool:
		var err error
		conn, err = db.Take(ctx)
		defer db.Put(conn)
		if err != nil {
			return fmt.Errorf("couldn't get connection from pool: %w", err)
		}
	}
	err := sqlitex.ExecuteTransient(conn, `CREATE TABLE roles (user TEXT, role TEXT, PRIMARY KEY (user, role)) STRICT, WITHOUT ROWID`, nil)
	return err
}

// Add grants a role to a user. Granting an already granted role is not an
// error.
func (l *List) Add(ctx context.Context, role Role, user string) error {
	conn, err := l.db.Take(ctx)
	defer l.db.Put(conn)
	if err != nil {
		return fmt.Errorf("couldn't get connection to grant %s role: %w", role, err)
	}
	opts := sqlitex.ExecOptions{Args: []any{user, string(role)}}
	err = sqlitex.Execute(conn, `INSERT OR IGNORE INTO roles (user, role) VALUES (?, ?)`, &opts)
	return err
}

// Remove revokes a role from a user.
func (l *List) Remove(ctx context.Context, role Role, user string) error {
	conn, err := l.db.Take(ctx)
	defer l.db.Put(conn)
	if err != nil {
		return fmt.Errorf("couldn't get connection to revoke %s role: %w", role, err)
	}
	opts := sqlitex.ExecOptions{Args: []any{user, string(role)}}
	err = sqlitex.Execute(conn, `DELETE FROM roles WHERE user=? AND role=?`, &opts)
	return err
}

// Has reports whether a user holds a role.
func (l *List) Has(ctx context.Context, role Role, user string) (bool, error) {
	conn, err := l.db.Take(ctx)
	defer l.db.Put(conn)
	if err != nil {
		return false, fmt.Errorf("couldn't get connection to check %s role: %w", role, err)
	}
	st, err := conn.Prepare(`SELECT ? IN (SELECT user FROM roles WHERE role=?)`)
	if err != nil {
		return false, fmt.Errorf("couldn't prepare statement to check %s role: %w", role, err)
	}
	st.BindText(1, user)
	st.BindText(2, string(role))
	return sqlitex.ResultBool(st)
}

// Users returns every user holding a role.
func (l *List) Users(ctx context.Context, role Role) ([]string, error) {
	conn, err := l.db.Take(ctx)
	defer l.db.Put(conn)
	if err != nil {
		return nil, fmt.Errorf("couldn't get connection to list %s role: %w", role, err)
	}
	var users []string
	opts := sqlitex.ExecOptions{
		Args: []any{string(role)},
		ResultFunc: func(st *sqlite.Stmt) error {
			users = append(users, st.ColumnText(0))
			return nil
		},
	}
	err = sqlitex.Execute(conn, `SELECT user FROM roles WHERE role=? ORDER BY user`, &opts)
	return users, err
}
