package resources

import (
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const storeSchema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS ids (
	name TEXT PRIMARY KEY,
	id   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS dimens (
	name TEXT PRIMARY KEY,
	id   INTEGER NOT NULL UNIQUE,
	px   REAL NOT NULL
);
`

// SaveStore writes table into SQLite database at path replacing whatever
// resources it had.
func SaveStore(path string, t *Table) (err error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return fmt.Errorf("open resource store '%s': %w", path, err)
	}
	defer conn.Close()

	if err := sqlitex.ExecuteScript(conn, storeSchema, nil); err != nil {
		return fmt.Errorf("prepare resource store: %w", err)
	}

	defer sqlitex.Save(conn)(&err)

	for _, q := range []string{`DELETE FROM meta`, `DELETE FROM ids`, `DELETE FROM dimens`} {
		if err := sqlitex.Execute(conn, q, nil); err != nil {
			return fmt.Errorf("clear resource store: %w", err)
		}
	}
	err = sqlitex.Execute(conn, `INSERT INTO meta (key, value) VALUES ('package', ?)`,
		&sqlitex.ExecOptions{Args: []any{t.Package}})
	if err != nil {
		return fmt.Errorf("write package name: %w", err)
	}

	for _, e := range t.Entries() {
		switch e.Kind {
		case KindId:
			err = sqlitex.Execute(conn, `INSERT INTO ids (name, id) VALUES (?, ?)`,
				&sqlitex.ExecOptions{Args: []any{e.Name, e.ID}})
		case KindDimen:
			err = sqlitex.Execute(conn, `INSERT INTO dimens (name, id, px) VALUES (?, ?, ?)`,
				&sqlitex.ExecOptions{Args: []any{e.Name, e.ID, e.Value}})
		}
		if err != nil {
			return fmt.Errorf("write %s '%s': %w", e.Kind, e.Name, err)
		}
	}
	return nil
}

// LoadStore reads table previously written with SaveStore.
func LoadStore(path string) (*Table, error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadOnly)
	if err != nil {
		return nil, fmt.Errorf("open resource store '%s': %w", path, err)
	}
	defer conn.Close()

	t := NewTable("")

	err = sqlitex.Execute(conn, `SELECT value FROM meta WHERE key='package'`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			t.Package = stmt.ColumnText(0)
			return nil
		}})
	if err != nil {
		return nil, fmt.Errorf("read package name: %w", err)
	}

	err = sqlitex.Execute(conn, `SELECT name, id FROM ids`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			return t.SetID(stmt.ColumnText(0), int(stmt.ColumnInt64(1)))
		}})
	if err != nil {
		return nil, fmt.Errorf("read ids: %w", err)
	}

	err = sqlitex.Execute(conn, `SELECT name, id, px FROM dimens`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			return t.SetDimension(stmt.ColumnText(0), int(stmt.ColumnInt64(1)), stmt.ColumnFloat(2))
		}})
	if err != nil {
		return nil, fmt.Errorf("read dimens: %w", err)
	}
	return t, nil
}
