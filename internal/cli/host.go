package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/realmbind/internal/channel"
	"github.com/mesh-intelligence/realmbind/internal/device"
	"github.com/mesh-intelligence/realmbind/internal/engine"
	"github.com/mesh-intelligence/realmbind/internal/paths"
	"github.com/mesh-intelligence/realmbind/internal/plugin"
	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// host is the CLI playing host runtime: one process, one messenger, one
// attached plugin.
type host struct {
	configDir string
	dataDir   string
	config    types.Config
	identity  types.DeviceIdentity

	logger    *zap.Logger
	proc      *plugin.Process
	messenger *channel.Messenger
	plugin    *plugin.Plugin
}

// hostSetup resolves configuration, identity and directories without
// attaching anything.
func hostSetup(cmd *cobra.Command) (*host, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir, cmd.Flags())
	if err != nil {
		return nil, err
	}
	cfg, err := configFromViper(v)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(v.GetString(cfgKeyLogLevel))
	if err != nil {
		return nil, err
	}

	gen, err := device.LoadGenerated(device.GeneratedPath(configDir))
	if err != nil {
		return nil, err
	}
	platform, err := device.FromPlatform()
	if err != nil {
		logger.Warn("platform identity unavailable", zap.Error(err))
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, cfg.DataDir, device.AppDirName(cfg, gen))
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	return &host{
		configDir: configDir,
		dataDir:   dataDir,
		config:    cfg,
		identity:  device.Resolve(cfg, gen, platform),
		logger:    logger,
	}, nil
}

// openHost sets up the host and attaches the realm plugin.
func openHost(cmd *cobra.Command) (*host, error) {
	h, err := hostSetup(cmd)
	if err != nil {
		return nil, err
	}

	engine.SetLogger(h.logger.Named("engine"))
	h.proc = plugin.NewProcess(plugin.WithLogger(h.logger.Named("plugin")))
	h.messenger = channel.NewMessenger(h.logger.Named("channel"))
	h.plugin = plugin.New(h.proc, h.config.Library)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	err = h.plugin.OnAttachedToEngine(ctx, plugin.Binding{
		Context:   paths.DirContext{Dir: h.dataDir, Create: true},
		Messenger: h.messenger,
		Identity:  h.identity,
	})
	if err != nil {
		_ = h.close()
		return nil, err
	}
	return h, nil
}

// close detaches the plugin and tears the process down.
func (h *host) close() error {
	var errs []error
	if h.plugin != nil {
		errs = append(errs, h.plugin.OnDetachedFromEngine())
	}
	if h.proc != nil {
		errs = append(errs, h.proc.Close())
	}
	engine.SetLogger(nil)
	_ = h.logger.Sync()
	return errors.Join(errs...)
}

// newLogger builds the CLI logger at level. Logs go to stderr so stdout
// stays clean for command output.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	config := zap.NewProductionConfig()
	config.Level = lvl
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
