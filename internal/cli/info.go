package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show what the engine was initialized with",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	h, err := openHost(cmd)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}
	defer h.close()

	eng, err := h.plugin.Engine()
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}
	info, err := eng.Info()
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	if flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), info)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "library:        %s (%s)\n", info.Library, info.LibraryVersion)
	fmt.Fprintf(out, "files path:     %s\n", info.FilesPath)
	fmt.Fprintf(out, "manufacturer:   %s\n", info.Identity.Manufacturer)
	fmt.Fprintf(out, "model:          %s\n", info.Identity.Model)
	fmt.Fprintf(out, "bundle id:      %s\n", info.Identity.BundleID)
	fmt.Fprintf(out, "install id:     %s\n", info.InstallID)
	fmt.Fprintf(out, "initialized at: %s\n", info.InitializedAt.Format(time.RFC3339))
	return nil
}
