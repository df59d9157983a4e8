// Package paths resolves the live wallpaper store location and the scratch
// directory a fresh store is built in before being swapped into place.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// StoreFileName is the file name the Dock reads the wallpaper store from.
const StoreFileName = "desktoppicture.db"

// Environment variable names for path overrides.
const (
	EnvStore    = "MACPAPERD_STORE"
	EnvBuildDir = "MACPAPERD_BUILD_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultStorePath returns the path the Dock reads the store from.
//
// macOS:  ~/Library/Application Support/Dock/desktoppicture.db
// others: <user config dir>/macpaperd/desktoppicture.db (development use)
func DefaultStorePath() (string, error) {
	if runtime.GOOS == "darwin" {
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", "Dock", StoreFileName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "macpaperd", StoreFileName), nil
}

// DefaultBuildDir returns the scratch directory fresh stores are built in.
func DefaultBuildDir() string {
	return filepath.Join(os.TempDir(), "macpaperd")
}

// ResolveStorePath returns the live store path following the precedence
// chain: flag > config value > MACPAPERD_STORE env > DefaultStorePath().
func ResolveStorePath(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvStore); env != "" {
		return filepath.Abs(env)
	}
	return DefaultStorePath()
}

// ResolveBuildDir returns the scratch directory following the precedence
// chain: flag > config value > MACPAPERD_BUILD_DIR env > DefaultBuildDir().
func ResolveBuildDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvBuildDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultBuildDir(), nil
}

// BuildStorePath returns the scratch store file inside buildDir.
func BuildStorePath(buildDir string) string {
	return filepath.Join(buildDir, StoreFileName)
}
