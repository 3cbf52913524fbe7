//go:build cgo

package sqlite

import _ "github.com/mattn/go-sqlite3"

// DriverCgo is the database/sql driver name registered by mattn/go-sqlite3,
// which links the SQLite C library into the process.
const DriverCgo = "sqlite3"
