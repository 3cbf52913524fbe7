package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/realmbind/internal/engine"
	"github.com/mesh-intelligence/realmbind/pkg/realmbind"
)

const modulePath = "github.com/mesh-intelligence/realmbind"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the realmbind version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"version":   realmbind.Version,
					"module":    modulePath,
					"libraries": engine.Libraries(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "realmbind v%s\nmodule: %s\n", realmbind.Version, modulePath)
			return nil
		},
	}
}
