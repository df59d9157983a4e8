package main

import (
	"github.com/spf13/cobra"

	"github.com/amusingimpala75/macpaperd/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagStore     string
	flagBuildDir  string
)

// Config values loaded by PersistentPreRunE for all subcommands.
var (
	configStorePath string
	configBuildDir  string
	configBackup    = true
)

var rootCmd = &cobra.Command{
	Use:   "macpaperd",
	Short: "macpaperd sets per-space desktop wallpapers",
	Long: `macpaperd rebuilds the desktop wallpaper store the Dock reads
(desktoppicture.db) to set an image or a flat color on every space,
then asks the Dock to reload it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(flagConfigDir)
		if err != nil {
			return err
		}
		configStorePath = cfg.GetString(cfgKeyStorePath)
		configBuildDir = cfg.GetString(cfgKeyBuildDir)
		configBackup = cfg.GetBool(cfgKeyBackup)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "live store path (default: the Dock's desktoppicture.db)")
	rootCmd.PersistentFlags().StringVar(&flagBuildDir, "build-dir", "", "scratch directory for the in-flight build")

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(displaysCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveStorePath follows the precedence chain:
// --store flag > config store_path > MACPAPERD_STORE env > platform default.
func resolveStorePath() (string, error) {
	return paths.ResolveStorePath(flagStore, configStorePath)
}

// resolveBuildDir follows the precedence chain:
// --build-dir flag > config build_dir > MACPAPERD_BUILD_DIR env > temp dir.
func resolveBuildDir() (string, error) {
	return paths.ResolveBuildDir(flagBuildDir, configBuildDir)
}
