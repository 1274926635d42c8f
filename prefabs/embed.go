package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed *.yaml scripts/*.tengo
var files embed.FS

// overrideDir, when set, is checked before the embedded files so the
// watcher can hot-reload edited prefabs during development.
var overrideDir string

// SetOverrideDir points Load at an on-disk prefab directory.
func SetOverrideDir(dir string) {
	overrideDir = dir
}

// Load reads a prefab file by name, preferring the override directory.
func Load(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("prefabs: empty file name")
	}
	if overrideDir != "" {
		data, err := os.ReadFile(filepath.Join(overrideDir, filepath.FromSlash(name)))
		if err == nil {
			return data, nil
		}
	}
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: read %s: %w", name, err)
	}
	return data, nil
}
