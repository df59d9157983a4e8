package desktop

import (
	"fmt"
	"os/exec"
)

// RestartDock asks launchd to relaunch the Dock so it re-reads the wallpaper
// store. Fire and forget: there is no acknowledgement, and the returned error
// only reports whether the request itself could be made.
func RestartDock() error {
	if err := exec.Command("killall", "Dock").Run(); err != nil {
		return fmt.Errorf("restarting Dock: %w", err)
	}
	return nil
}
