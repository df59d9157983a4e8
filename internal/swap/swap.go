// Package swap commits a freshly built store over the live one. The replace
// step is a single atomic operation: either the previous live store survives
// intact, or the new store is fully in place.
package swap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/amusingimpala75/macpaperd/pkg/types"
)

// BackupSuffix is appended to the live store path for the pre-swap copy.
const BackupSuffix = ".backup"

// Stage identifies where a failed swap stopped. Failures during backup or
// replace leave the previous live store untouched; only after a successful
// replace is the old store gone.
type Stage string

const (
	StageBackup  Stage = "backup"
	StageReplace Stage = "replace"
)

// Error reports a failed swap. It matches types.ErrSwapFailed via errors.Is.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("swap %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches types.ErrSwapFailed so callers can classify without digging out
// the stage.
func (e *Error) Is(target error) bool { return target == types.ErrSwapFailed }

// Commit replaces the live store at livePath with the built store at
// builtPath. When backup is set and a live store exists, it is first copied
// to livePath + BackupSuffix. The replace itself is atomic: a failure leaves
// the previous live store in place.
func Commit(builtPath, livePath string, backup bool) error {
	if _, err := os.Stat(builtPath); err != nil {
		return &Error{Stage: StageReplace, Err: fmt.Errorf("built store missing: %w", err)}
	}

	if backup {
		if err := backupLiveStore(livePath); err != nil {
			return &Error{Stage: StageBackup, Err: err}
		}
	}

	if err := os.MkdirAll(filepath.Dir(livePath), 0o755); err != nil {
		return &Error{Stage: StageReplace, Err: err}
	}
	if err := atomic.ReplaceFile(builtPath, livePath); err != nil {
		return &Error{Stage: StageReplace, Err: err}
	}
	return nil
}

// backupLiveStore copies the current live store aside. A missing live store
// (first run) is not an error.
func backupLiveStore(livePath string) error {
	f, err := os.Open(livePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening live store: %w", err)
	}
	defer f.Close()

	if err := atomic.WriteFile(livePath+BackupSuffix, f); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	return nil
}
