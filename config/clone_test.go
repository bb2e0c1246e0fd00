// FILE: lixenwraith/drift/config/clone_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drift"
)

func teamsFixture(t *testing.T) *Config {
	t.Helper()

	cfg := NewWithOptions(Options{Edition: EditionTeams})
	require.NoError(t, cfg.ApplyProps(map[string]string{
		KeyDriver:                 "pgx",
		KeyURL:                    "postgres://localhost/app",
		KeyUser:                   "app",
		KeyPassword:               "secret",
		KeyConnectRetries:         "3",
		KeyLocations:              "db/migration,db/seed",
		KeySchemas:                "public,audit",
		KeyTable:                  "history",
		KeyTarget:                 "7.2",
		KeyInstalledBy:            "deployer",
		KeyOutOfOrder:             "true",
		KeyStream:                 "true",
		KeyCherryPick:             "2.1",
		KeyLicenseKey:             "DRIFT-LICENSE",
		PlaceholdersPrefix + "a":  "1",
		DriverPropsPrefix + "ssl": "require",
	}))
	return cfg
}

// TestFromConfig tests the object-to-object copy
func TestFromConfig(t *testing.T) {
	t.Run("TeamsToTeamsCopiesEverything", func(t *testing.T) {
		src := teamsFixture(t)
		dst := NewWithOptions(Options{Edition: EditionTeams})

		require.NoError(t, dst.FromConfig(src))
		assert.Equal(t, src.Export(), dst.Export())
	})

	t.Run("CopyIsIdempotent", func(t *testing.T) {
		src := teamsFixture(t)
		dst := NewWithOptions(Options{Edition: EditionTeams})

		require.NoError(t, dst.FromConfig(src))
		first := dst.Export()
		require.NoError(t, dst.FromConfig(src))
		assert.Equal(t, first, dst.Export())
	})

	t.Run("CopyIsIndependent", func(t *testing.T) {
		src := teamsFixture(t)
		dst := NewWithOptions(Options{Edition: EditionTeams})
		require.NoError(t, dst.FromConfig(src))

		require.NoError(t, src.ApplyProps(map[string]string{
			KeyTable:                 "other",
			PlaceholdersPrefix + "a": "changed",
		}))
		assert.Equal(t, "history", dst.Table())
		assert.Equal(t, map[string]string{"a": "1"}, dst.Placeholders())
	})

	t.Run("CommunityDestinationDropsGatedFields", func(t *testing.T) {
		src := teamsFixture(t)
		dst := New()

		require.NoError(t, dst.FromConfig(src))
		assert.Equal(t, "history", dst.Table())
		assert.False(t, dst.Stream())
		assert.Empty(t, dst.CherryPick())
		assert.Empty(t, dst.LicenseKey())
		assert.Equal(t, DefaultUndoMigrationPrefix, dst.UndoSQLMigrationPrefix())
	})

	t.Run("ScalarParametersSurviveWithoutDerivation", func(t *testing.T) {
		src := New()
		require.NoError(t, src.ApplyProps(map[string]string{
			KeyUser:     "app",
			KeyPassword: "secret",
		}))
		require.Nil(t, src.Connection())

		dst := New()
		require.NoError(t, dst.FromConfig(src))
		assert.Nil(t, dst.Connection())
		assert.Equal(t, "app", dst.User())
		assert.Equal(t, "secret", dst.Password())

		// Completing the quadruplet later still derives on the copy.
		require.NoError(t, dst.ApplyProps(map[string]string{KeyURL: "postgres://localhost/app"}))
		conn := dst.Connection()
		require.NotNil(t, conn)
		assert.Equal(t, "app", conn.User)
	})

	t.Run("SuppliedConnectionCopied", func(t *testing.T) {
		src := New()
		supplied := &Connection{Driver: "sqlite", URL: "file:app.db", Props: map[string]string{"mode": "rwc"}}
		src.SetConnection(supplied)

		dst := New()
		require.NoError(t, dst.FromConfig(src))
		conn := dst.Connection()
		require.NotNil(t, conn)
		assert.Equal(t, "sqlite", conn.Driver)
		assert.Equal(t, "file:app.db", conn.URL)

		// The copy holds its own descriptor; mutating the original does
		// not reach through.
		supplied.Props["mode"] = "ro"
		assert.Equal(t, "rwc", dst.Connection().Props["mode"])
	})

	t.Run("CallbacksAndResolversCarriedAsInstances", func(t *testing.T) {
		src := New()
		src.SetResolvers(noopResolver{})
		src.SetCallbacks(auditCallback{})

		dst := New()
		require.NoError(t, dst.FromConfig(src))
		assert.Len(t, dst.Resolvers(), 1)
		assert.Len(t, dst.Callbacks(), 1)
	})

	t.Run("TargetAndBaselineCopied", func(t *testing.T) {
		src := New()
		src.SetTarget(drift.VersionLatest)
		require.NoError(t, src.SetBaselineVersionString("3.4"))

		dst := New()
		require.NoError(t, dst.FromConfig(src))
		assert.Equal(t, drift.VersionLatest, dst.Target())
		assert.Equal(t, "3.4", dst.BaselineVersion().String())
	})
}
