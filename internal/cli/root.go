// Package cli implements the realmbind command-line interface. The CLI acts
// as a desktop host runtime: it resolves the app's data directory, attaches
// the realm plugin, and talks to it over the realm channel.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/realmbind/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	library   string
	logLevel  string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "realmbind" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags = rootFlags{}

	root := &cobra.Command{
		Use:   "realmbind",
		Short: "Host binding for the realm storage engine",
		Long: "realmbind attaches the realm plugin the way a host application does:\n" +
			"it resolves the app's files directory, initializes the engine once,\n" +
			"and exposes the realm channel.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "app files directory (default: platform app data dir)")
	root.PersistentFlags().StringVar(&flags.library, flagLibrary, "", "engine library to load (default: realm_dart)")
	root.PersistentFlags().StringVar(&flags.logLevel, flagLogLevel, "", "log level: debug, info, warn, error (default: warn)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newCallCmd())
	root.AddCommand(newGenerateCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "realmbind:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps startup failures of the engine to exitSysError and
// everything else to exitUserError.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrPathResolution), errors.Is(err, types.ErrNativeLoad):
		return exitSysError
	default:
		return exitUserError
	}
}
