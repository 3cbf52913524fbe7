// Package sqlite implements the embedded storage engine behind the realm
// library names. The engine keeps its on-disk state in a single SQLite file
// under the files directory it is initialized with.
package sqlite

// dbFileName is the engine's database file inside the files directory.
const dbFileName = "realm.db"

// Schema DDL. Every statement is idempotent so an existing file is reused.
const (
	createEngineMeta = `CREATE TABLE IF NOT EXISTS engine_meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// engine_meta keys.
const (
	metaManufacturer  = "manufacturer"
	metaModel         = "model"
	metaBundleID      = "bundle_id"
	metaFilesDir      = "files_dir"
	metaInstallID     = "install_id"
	metaInitializedAt = "initialized_at"
)

// schemaSQL is executed on every Initialize.
const schemaSQL = createEngineMeta
