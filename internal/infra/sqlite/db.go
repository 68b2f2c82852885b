// Package sqlite keeps command statistics and the tenant registry in a SQLite
// file. Shopping lists themselves are never written here.
package sqlite

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"
)

const busyTimeoutPragma = "_pragma=busy_timeout(5000)"

// Open opens the database shared by every repository in this package. All
// repos must use the same *sql.DB: its single connection serializes writes,
// and the busy timeout covers other processes holding the file.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", withBusyTimeout(dsn))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func withBusyTimeout(dsn string) string {
	if strings.Contains(dsn, "busy_timeout") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + busyTimeoutPragma
	}
	return dsn + "?" + busyTimeoutPragma
}
