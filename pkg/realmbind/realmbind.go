// Package realmbind is the public entry point for hosts embedding the realm
// plugin. A host creates one Process per OS process, one Messenger for its
// plugin channels, and a Plugin per attachment.
//
//	proc := realmbind.NewProcess()
//	defer proc.Close()
//
//	messenger := realmbind.NewMessenger(nil)
//	p := realmbind.NewPlugin(proc, "")
//	err := p.OnAttachedToEngine(ctx, realmbind.Binding{
//	    Context:   realmbind.DirContext{Dir: filesDir},
//	    Messenger: messenger,
//	    Identity:  identity,
//	})
package realmbind

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/realmbind/internal/channel"
	"github.com/mesh-intelligence/realmbind/internal/engine"
	"github.com/mesh-intelligence/realmbind/internal/paths"
	"github.com/mesh-intelligence/realmbind/internal/plugin"
	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// Version is the realmbind release version.
const Version = "0.1.0"

// Re-exported host-facing types.
type (
	Process      = plugin.Process
	Plugin       = plugin.Plugin
	Binding      = plugin.Binding
	Messenger    = channel.Messenger
	Registration = channel.Registration
	DirContext   = paths.DirContext
	OpenFunc     = engine.OpenFunc
)

// NewProcess creates the per-process plugin state. A nil logger disables
// logging.
func NewProcess(logger *zap.Logger) *Process {
	return plugin.NewProcess(plugin.WithLogger(logger))
}

// NewPlugin creates a detached plugin that loads library on attach.
// An empty library selects types.DefaultLibrary.
func NewPlugin(proc *Process, library string) *Plugin {
	return plugin.New(proc, library)
}

// NewMessenger creates a channel messenger.
func NewMessenger(logger *zap.Logger) *Messenger {
	return channel.NewMessenger(logger)
}

// NewMethodChannel returns the named method channel on m.
func NewMethodChannel(m *Messenger, name string) *channel.MethodChannel {
	return channel.NewMethodChannel(m, name)
}

// RegisterLibrary makes an engine library loadable by name in every process
// created afterward.
func RegisterLibrary(name string, open OpenFunc) {
	engine.RegisterLibrary(name, open)
}

// Libraries lists the registered engine libraries.
func Libraries() []string {
	return engine.Libraries()
}

// Canonicalize returns the canonical form of an existing directory.
func Canonicalize(dir string) (string, error) {
	return paths.Canonicalize(dir)
}

var _ types.StorageContext = DirContext{}
