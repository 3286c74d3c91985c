package sites

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"bizscan/internal/config"
	"bizscan/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/gofrs/flock"
)

func lockPath(path string) string { return path + ".lock" }

// readTable loads the registry under a shared lock. found is false when
// the file does not exist.
func readTable(path string) (sites []domain.Site, found bool, err error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}

	lk := flock.New(lockPath(path))
	if err := lk.RLock(); err != nil {
		return nil, false, fmt.Errorf("lock %s: %w", path, err)
	}
	defer func() { _ = lk.Unlock() }()

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return []domain.Site{}, true, nil
	}

	if err := gocsv.UnmarshalBytes(b, &sites); err != nil {
		return nil, true, fmt.Errorf("parse %s: %w", path, err)
	}
	return sites, true, nil
}

// writeTable replaces the registry file under an exclusive lock.
func writeTable(path string, sites []domain.Site) error {
	lk := flock.New(lockPath(path))
	if err := lk.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer func() { _ = lk.Unlock() }()

	if sites == nil {
		sites = []domain.Site{}
	}
	b, err := gocsv.MarshalBytes(sites)
	if err != nil {
		return err
	}
	return config.WriteFileAtomic(path, b)
}
