// FILE: lixenwraith/drift/config/source_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadFile tests file loading across formats
func TestLoadFile(t *testing.T) {
	t.Run("TOML", func(t *testing.T) {
		path := writeConfigFile(t, "drift.toml", `
url = "postgres://localhost/app"
user = "app"
table = "history"
locations = ["db/migration", "db/seed"]
outOfOrder = true
connectRetries = 3

[placeholders]
env = "production"
`)
		cfg := New()
		require.NoError(t, cfg.LoadFile(path))

		assert.Equal(t, "history", cfg.Table())
		assert.Equal(t, []string{"db/migration", "db/seed"}, cfg.Locations())
		assert.True(t, cfg.OutOfOrder())
		assert.Equal(t, 3, cfg.ConnectRetries())
		assert.Equal(t, map[string]string{"env": "production"}, cfg.Placeholders())

		conn := cfg.Connection()
		require.NotNil(t, conn)
		assert.Equal(t, "postgres://localhost/app", conn.URL)
		assert.Equal(t, "app", conn.User)
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeConfigFile(t, "drift.yaml", `
table: history
schemas:
  - public
  - audit
baselineOnMigrate: true
driverProperties:
  ssl: require
`)
		cfg := New()
		require.NoError(t, cfg.LoadFile(path))

		assert.Equal(t, "history", cfg.Table())
		assert.Equal(t, []string{"public", "audit"}, cfg.Schemas())
		assert.True(t, cfg.BaselineOnMigrate())
		assert.Equal(t, map[string]string{"ssl": "require"}, cfg.DriverProps())
	})

	t.Run("JSON", func(t *testing.T) {
		path := writeConfigFile(t, "drift.json", `{
  "table": "history",
  "lockRetryCount": 10,
  "mixed": true
}`)
		cfg := New()
		require.NoError(t, cfg.LoadFile(path))

		assert.Equal(t, "history", cfg.Table())
		assert.Equal(t, 10, cfg.LockRetryCount())
		assert.True(t, cfg.Mixed())
	})

	t.Run("ExplicitPrefixAccepted", func(t *testing.T) {
		path := writeConfigFile(t, "drift.yaml", `
drift:
  table: history
`)
		cfg := New()
		require.NoError(t, cfg.LoadFile(path))
		assert.Equal(t, "history", cfg.Table())
	})

	t.Run("ContentDetectionWithoutExtension", func(t *testing.T) {
		path := writeConfigFile(t, "drift.conf", `table = "history"`)
		cfg := New()
		require.NoError(t, cfg.LoadFile(path))
		assert.Equal(t, "history", cfg.Table())
	})

	t.Run("UnknownKeyInFileFails", func(t *testing.T) {
		path := writeConfigFile(t, "drift.toml", `tabel = "typo"`)
		cfg := New()
		err := cfg.LoadFile(path)
		require.Error(t, err)

		var unrecognized *UnrecognizedPropertiesError
		require.ErrorAs(t, err, &unrecognized)
		assert.Equal(t, []string{"drift.tabel"}, unrecognized.Keys)
	})

	t.Run("MissingFile", func(t *testing.T) {
		cfg := New()
		err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to read config file")
	})

	t.Run("MalformedTOML", func(t *testing.T) {
		path := writeConfigFile(t, "drift.toml", `table = `)
		cfg := New()
		err := cfg.LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to parse TOML")
	})
}
