package plugin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/realmbind/internal/channel"
	"github.com/mesh-intelligence/realmbind/internal/paths"
	"github.com/mesh-intelligence/realmbind/pkg/types"
)

var errNoMessenger = errors.New("binding has no messenger")

// Binding is what a host hands a plugin when attaching it.
type Binding struct {
	Context   types.StorageContext
	Messenger *channel.Messenger
	Identity  types.DeviceIdentity
}

// Plugin is one attachment of the realm plugin to a host.
type Plugin struct {
	proc    *Process
	library string

	mu           sync.Mutex
	attached     bool
	registration *channel.Registration
}

// New creates a detached plugin bound to proc that loads library on attach.
// An empty library selects types.DefaultLibrary.
func New(proc *Process, library string) *Plugin {
	if library == "" {
		library = types.DefaultLibrary
	}
	return &Plugin{proc: proc, library: library}
}

// OnAttachedToEngine loads the engine library, resolves the files directory,
// initializes the engine once per process, and registers the realm channel.
// On any failure nothing is registered and the error is returned; retrying
// will not help. Returns ErrAlreadyAttached if the plugin is attached.
func (p *Plugin) OnAttachedToEngine(ctx context.Context, b Binding) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.attached {
		return types.ErrAlreadyAttached
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.Messenger == nil {
		return fmt.Errorf("attach: %w", errNoMessenger)
	}

	log := p.proc.logger.With(zap.String("library", p.library))

	eng, err := p.proc.loader.Load(p.library)
	if err != nil {
		return fmt.Errorf("attach: %w", err)
	}

	filesDir, err := paths.ResolveFilesDir(b.Context)
	if err != nil {
		log.Error("files dir resolution failed", zap.Error(err))
		return fmt.Errorf("attach: %w", err)
	}

	params := types.InitParams{FilesDir: filesDir, DeviceIdentity: b.Identity}
	if err := p.proc.initialize(p.library, eng, params); err != nil {
		log.Error("engine initialization failed", zap.String("files_dir", filesDir), zap.Error(err))
		return fmt.Errorf("attach: %w", err)
	}

	// Stacked so another attached plugin on the same messenger keeps its
	// handler when this one detaches.
	p.registration = channel.NewMethodChannel(b.Messenger, types.ChannelName).AddMethodCallHandler(p)
	p.attached = true

	log.Info("plugin attached", zap.String("files_dir", filesDir), zap.String("channel", types.ChannelName))
	return nil
}

// HandleMethodCall answers every call as not implemented. The realm channel
// exposes no operations yet.
func (p *Plugin) HandleMethodCall(ctx context.Context, call types.MethodCall) (any, error) {
	p.proc.logger.Debug("method not implemented",
		zap.String("channel", types.ChannelName),
		zap.String("method", call.Method),
		zap.String("call_id", call.ID))
	return nil, types.ErrUnimplemented
}

// OnDetachedFromEngine removes the plugin's channel handler. When it returns
// no call is dispatched to the plugin; a handler installed by another plugin
// on the same messenger stays in place. Idempotent: multiple calls succeed.
func (p *Plugin) OnDetachedFromEngine() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.attached {
		return nil
	}
	p.registration.Remove()
	p.registration = nil
	p.attached = false

	p.proc.logger.Info("plugin detached", zap.String("library", p.library))
	return nil
}

// Attached reports whether the plugin is attached.
func (p *Plugin) Attached() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attached
}

// Engine returns the engine handle of an attached plugin.
func (p *Plugin) Engine() (types.Engine, error) {
	if !p.Attached() {
		return nil, types.ErrDetached
	}
	return p.proc.loader.Load(p.library)
}
