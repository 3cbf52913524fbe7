package types

import "time"

// Engine is a handle to a loaded native engine image.
type Engine interface {
	// Initialize is the engine's initialization entry point. It locates or
	// creates the engine's on-disk state under params.FilesDir. The engine
	// does not tolerate a second call; it returns ErrEngineInitialized.
	Initialize(params InitParams) error

	// Info reports what the engine was initialized with.
	// Returns ErrEngineNotInitialized before Initialize succeeds.
	Info() (EngineInfo, error)

	// Close releases the engine's resources. Idempotent.
	Close() error
}

// EngineInfo describes an initialized engine.
type EngineInfo struct {
	Library        string         `json:"library"`
	LibraryVersion string         `json:"library_version"`
	FilesPath      string         `json:"files_path"`
	Identity       DeviceIdentity `json:"identity"`
	InstallID      string         `json:"install_id"`
	InitializedAt  time.Time      `json:"initialized_at"`
}

// InitState is the process-wide engine initialization state.
type InitState int32

// Initialization states.
const (
	StateUninitialized InitState = iota
	StateInitialized
	StateFailed
)

// String returns the lowercase state name.
func (s InitState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
