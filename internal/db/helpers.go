package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"
)

// QueryRower is the minimal query surface the schema helpers need,
// satisfied by *sql.DB and *sql.Tx alike.
type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// HasTable reports whether the current schema contains the table.
// Connection problems read as "absent" so callers can fall back.
func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)

	if err != nil {
		if errors.Is(err, driver.ErrBadConn) {
			return false
		}
		return false
	}
	return name.Valid && name.String != ""
}

// HasColumn reports whether the table carries the column.
func HasColumn(q QueryRower, table, column string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column).Scan(&name)

	if err != nil {
		if errors.Is(err, driver.ErrBadConn) {
			return false
		}
		return false
	}
	return name.Valid && name.String != ""
}
