package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"path"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// docsVersion is the PRAGMA user_version of a database with the doc tables.
const docsVersion = 1

// CreateDocTables creates the docs and sentences tables. A database already
// at docsVersion is left untouched.
func CreateDocTables(ctx context.Context, pool *sqlitex.Pool) error {
	return applySchema(ctx, pool, "docs.sql", docsVersion)
}

// applySchema runs the embedded script name and stamps the database with
// version, in one transaction.
func applySchema(ctx context.Context, pool *sqlitex.Pool, name string, version int) (err error) {
	script, err := sqlFiles.ReadFile(path.Join("sql", name))
	if err != nil {
		return fmt.Errorf("failed to read embedded sql file %s: %w", name, err)
	}

	conn, err := pool.Take(ctx)
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	current, err := userVersion(conn)
	if err != nil {
		return err
	}
	if current >= version {
		return nil
	}

	defer sqlitex.Save(conn)(&err)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute script %s: %w", name, err)
	}

	// PRAGMA does not take bound parameters
	return sqlitex.ExecuteTransient(conn, fmt.Sprintf("PRAGMA user_version = %d;", version), nil)
}

func userVersion(conn *sqlite.Conn) (int, error) {
	var v int
	err := sqlitex.ExecuteTransient(conn, "PRAGMA user_version;", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			v = stmt.ColumnInt(0)
			return nil
		},
	})
	return v, err
}
