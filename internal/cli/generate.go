package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/realmbind/internal/device"
	"github.com/mesh-intelligence/realmbind/internal/paths"
	"github.com/mesh-intelligence/realmbind/pkg/types"
)

func newGenerateCmd() *cobra.Command {
	var gen device.Generated

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the generated identity config",
		Long: "Write realm-generated/realm_config.yaml under the config directory.\n" +
			"The bundle id and app dir name it records are used when config.yaml\n" +
			"does not override them.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			check := types.Config{Library: types.DefaultLibrary, AppDirName: gen.AppDirName}
			if err := check.Validate(); err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return fmt.Errorf("generate: resolve config dir: %w", err)
			}
			path := device.GeneratedPath(configDir)
			if err := device.WriteGenerated(path, gen); err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"path":         path,
					"bundle_id":    gen.BundleID,
					"app_dir_name": gen.AppDirName,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&gen.BundleID, "bundle-id", types.DefaultBundleID, "application bundle identifier")
	cmd.Flags().StringVar(&gen.AppDirName, "app-dir-name", types.DefaultAppDirName, "application data directory name")
	return cmd
}
