package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Attach the realm plugin and initialize the engine",
		Long: "Create the configuration and app files directories, load the engine\n" +
			"library, and run the one-time engine initialization.",
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	h, err := openHost(cmd)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer h.close()

	if flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"config_dir": h.configDir,
			"files_path": h.proc.FilesPath(),
			"library":    h.config.Library,
			"identity":   h.identity,
			"state":      h.proc.State().String(),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Engine initialized successfully")
	fmt.Fprintln(out, "  config: ", h.configDir)
	fmt.Fprintln(out, "  files:  ", h.proc.FilesPath())
	fmt.Fprintln(out, "  library:", h.config.Library)
	return nil
}
