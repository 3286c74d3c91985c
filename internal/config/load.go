package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"
)

func load[T any](path string, def T, check func(T) (T, Validation)) T {
	if strings.TrimSpace(path) == "" {
		return def
	}

	cfg := def
	fileCfg, found, err := readFile[T](path)
	if err != nil {
		log.Printf("[config] %s unreadable, using defaults: %v", path, err)
		return def
	}
	if found {
		if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
			log.Printf("[config] %s merge failed, using defaults: %v", path, err)
			return def
		}
	}

	if err := overlayLocal(&cfg, path); err != nil {
		log.Printf("[config] local overrides for %s ignored: %v", path, err)
	}

	normalized, vr := check(cfg)
	for _, w := range vr.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !vr.OK() {
		log.Printf("[config] %s invalid, using defaults: %v", path, vr.Err())
		return def
	}
	return normalized
}

// overlayLocal merges <name>.local.<ext> over cfg when that file exists.
func overlayLocal[T any](cfg *T, path string) error {
	local := LocalPath(path)
	override, found, err := readFile[T](local)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	log.Printf("[config] merging local overrides from %s", local)
	return mergo.Merge(cfg, override, mergo.WithOverride)
}

// LocalPath maps config/x.json to config/x.local.json.
func LocalPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".local" + ext
}

func readFile[T any](path string) (T, bool, error) {
	var out T
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return out, false, nil
	}
	if err != nil {
		return out, false, err
	}
	if err := decode(path, b, &out); err != nil {
		return out, false, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, true, nil
}

func decode(path string, b []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Unmarshal(b, v)
	default:
		// json5 is a superset of JSON, so plain .json files decode too.
		return json5.Unmarshal(b, v)
	}
}
