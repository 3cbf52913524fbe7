package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// DriverPure is the database/sql driver name registered by modernc.org/sqlite.
const DriverPure = "sqlite"

var (
	errFilesDirEmpty = errors.New("files dir must not be empty")
	errNotDir        = errors.New("files dir is not a directory")
)

// Engine implements types.Engine on a database/sql SQLite driver.
type Engine struct {
	mu          sync.RWMutex
	driver      string
	library     string
	initialized bool
	closed      bool
	db          *sql.DB
	filesDir    string

	// now is overridable in tests.
	now func() time.Time
}

// NewEngine creates an engine that opens its database with the named
// database/sql driver. library is the name the engine was loaded under and
// is reported by Info. The engine is not initialized.
func NewEngine(driver, library string) *Engine {
	return &Engine{
		driver:  driver,
		library: library,
		now:     time.Now,
	}
}

// Initialize opens or creates the engine database under params.FilesDir and
// records the device identity. The install id is assigned once, when the
// database is first created, and survives later initializations in new
// processes. Returns ErrEngineInitialized on a second call.
func (e *Engine) Initialize(params types.InitParams) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return types.ErrEngineClosed
	}
	if e.initialized {
		return types.ErrEngineInitialized
	}

	if params.FilesDir == "" {
		return errFilesDirEmpty
	}
	info, err := os.Stat(params.FilesDir)
	if err != nil {
		return fmt.Errorf("stat files dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", params.FilesDir, errNotDir)
	}

	db, err := sql.Open(e.driver, filepath.Join(params.FilesDir, dbFileName))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	// A single connection keeps SQLite writes serialized inside the process.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	if err := e.writeMeta(db, params); err != nil {
		db.Close()
		return err
	}

	e.db = db
	e.filesDir = params.FilesDir
	e.initialized = true
	return nil
}

func (e *Engine) writeMeta(db *sql.DB, params types.InitParams) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	values := map[string]string{
		metaManufacturer:  params.Manufacturer,
		metaModel:         params.Model,
		metaBundleID:      params.BundleID,
		metaFilesDir:      params.FilesDir,
		metaInitializedAt: e.now().UTC().Format(time.RFC3339Nano),
	}
	for key, value := range values {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO engine_meta (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("write %s: %w", key, err)
		}
	}

	if _, err := tx.Exec(`INSERT OR IGNORE INTO engine_meta (key, value) VALUES (?, ?)`,
		metaInstallID, uuid.NewString()); err != nil {
		return fmt.Errorf("write %s: %w", metaInstallID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Info reads back what the engine was initialized with.
func (e *Engine) Info() (types.EngineInfo, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return types.EngineInfo{}, types.ErrEngineClosed
	}
	if !e.initialized {
		return types.EngineInfo{}, types.ErrEngineNotInitialized
	}

	meta, err := readMeta(e.db)
	if err != nil {
		return types.EngineInfo{}, err
	}

	var version string
	if err := e.db.QueryRow(`SELECT sqlite_version()`).Scan(&version); err != nil {
		return types.EngineInfo{}, fmt.Errorf("query version: %w", err)
	}

	initializedAt, err := time.Parse(time.RFC3339Nano, meta[metaInitializedAt])
	if err != nil {
		return types.EngineInfo{}, fmt.Errorf("parse %s: %w", metaInitializedAt, err)
	}

	return types.EngineInfo{
		Library:        e.library,
		LibraryVersion: version,
		FilesPath:      e.filesDir,
		Identity: types.DeviceIdentity{
			Manufacturer: meta[metaManufacturer],
			Model:        meta[metaModel],
			BundleID:     meta[metaBundleID],
		},
		InstallID:     meta[metaInstallID],
		InitializedAt: initializedAt,
	}, nil
}

func readMeta(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM engine_meta`)
	if err != nil {
		return nil, fmt.Errorf("query engine_meta: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan engine_meta: %w", err)
		}
		meta[key] = value
	}
	return meta, rows.Err()
}

// Close releases the database. Idempotent: multiple calls succeed.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	if e.db != nil {
		err := e.db.Close()
		e.db = nil
		return err
	}
	return nil
}
