package config

import (
	"errors"
	"os"
)

// EnsureUserConfig writes def to path unless a file is already there.
// It reports whether a new file was written.
func EnsureUserConfig(path string, def any) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := SaveAtomic(path, def); err != nil {
		return false, err
	}
	return true, nil
}
