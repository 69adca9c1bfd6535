package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDir(t *testing.T) {
	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/from/env")
		dir, err := ResolveDir("/explicit")
		require.NoError(t, err)
		assert.Equal(t, "/explicit", dir)
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/from/env")
		dir, err := ResolveDir("")
		require.NoError(t, err)
		assert.Equal(t, "/from/env", dir)
	})

	t.Run("user config dir", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		dir, err := ResolveDir("")
		if err != nil {
			t.Skipf("no user config dir: %v", err)
		}
		assert.Equal(t, AppDirName, filepath.Base(dir))
	})
}

func TestDocumentPaths(t *testing.T) {
	path := DocumentPath("/cfg")
	assert.Equal(t, filepath.Join("/cfg", "baseproject.config"), path)
	assert.Equal(t, []string{filepath.Join("/cfg", "BaseProject.config")}, LegacyPaths(path))
	assert.Empty(t, LegacyPaths(filepath.Join("/cfg", "BaseProject.config")))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []Key{KeyProjectConfig, KeyWindowConfig, KeyWindowState}, Keys())

	for _, k := range Keys() {
		assert.True(t, k.Known())
		def, ok := Default(k)
		assert.True(t, ok)
		assert.NotNil(t, def)
	}

	_, ok := ParseKey("plugins")
	assert.False(t, ok)
	_, ok = Default(Key("plugins"))
	assert.False(t, ok)
}
