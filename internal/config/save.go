package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveAtomic writes cfg to path, encoded by extension (.yml/.yaml as YAML,
// anything else as indented JSON).
func SaveAtomic(path string, cfg any) error {
	var (
		b   []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		b, err = yaml.Marshal(cfg)
	default:
		b, err = json.MarshalIndent(cfg, "", "  ")
		b = append(b, '\n')
	}
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, b)
}

// WriteFileAtomic replaces path with b via a temp file and rename, keeping
// a copy of the previous content at path.bak. path exists at every point
// of the write.
func WriteFileAtomic(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	prev, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := os.WriteFile(bak, prev, 0o644); err != nil {
			_ = os.Remove(tmp)
			return err
		}
	case !errors.Is(err, os.ErrNotExist):
		_ = os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
