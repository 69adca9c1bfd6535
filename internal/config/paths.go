package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppDirName is the per-user configuration directory name.
	AppDirName = "baseproject"

	// FileName is the canonical document file name.
	FileName = "baseproject.config"

	// EnvConfigDir overrides the configuration directory when set.
	EnvConfigDir = "BASEPROJECT_CONFIG_DIR"
)

// LegacyFileNames lists names earlier releases wrote the same document under.
// They are only read, never written.
var LegacyFileNames = []string{"BaseProject.config"}

// DefaultDir returns the directory holding the document: $BASEPROJECT_CONFIG_DIR
// when set, otherwise <os.UserConfigDir()>/baseproject.
func DefaultDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(EnvConfigDir)); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// ResolveDir returns explicit when non-empty, otherwise DefaultDir.
func ResolveDir(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return DefaultDir()
}

// DocumentPath returns the canonical document path inside dir.
func DocumentPath(dir string) string {
	return filepath.Join(dir, FileName)
}

// LegacyPaths returns the legacy document paths inside the directory of path.
func LegacyPaths(path string) []string {
	dir := filepath.Dir(path)
	paths := make([]string, 0, len(LegacyFileNames))
	for _, name := range LegacyFileNames {
		legacy := filepath.Join(dir, name)
		if legacy == path {
			continue
		}
		paths = append(paths, legacy)
	}
	return paths
}
