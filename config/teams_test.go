// FILE: lixenwraith/drift/config/teams_test.go
package config

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drift"
)

// TestEditionGate tests every gated setter against both tiers
func TestEditionGate(t *testing.T) {
	tests := []struct {
		name  string
		field string
		apply func(*Config) error
	}{
		{"CherryPick", "cherryPick", func(c *Config) error { return c.SetCherryPickStrings("2.1") }},
		{"DryRunOutput", "dryRunOutput", func(c *Config) error { return c.SetDryRunOutput(&bytes.Buffer{}) }},
		{"ErrorOverrides", "errorOverrides", func(c *Config) error { return c.SetErrorOverrides("99999:17110:E") }},
		{"Stream", "stream", func(c *Config) error { return c.SetStream(true) }},
		{"Batch", "batch", func(c *Config) error { return c.SetBatch(true) }},
		{"UndoPrefix", "undoSqlMigrationPrefix", func(c *Config) error { return c.SetUndoSQLMigrationPrefix("D") }},
		{"OutputQueryResults", "outputQueryResults", func(c *Config) error { return c.SetOutputQueryResults(false) }},
		{"SkipExecuting", "skipExecutingMigrations", func(c *Config) error { return c.SetSkipExecutingMigrations(true) }},
		{"DriverProps", "driverProperties", func(c *Config) error { return c.SetDriverProps(map[string]string{"ssl": "on"}) }},
		{"OracleSQLPlus", "oracle.sqlplus", func(c *Config) error { return c.SetOracleSQLPlus(true) }},
		{"OracleSQLPlusWarn", "oracle.sqlplusWarn", func(c *Config) error { return c.SetOracleSQLPlusWarn(true) }},
		{"OracleKerberosConfig", "oracle.kerberosConfigFile", func(c *Config) error { return c.SetOracleKerberosConfigFile("/etc/krb5.conf") }},
		{"OracleKerberosCache", "oracle.kerberosCacheFile", func(c *Config) error { return c.SetOracleKerberosCacheFile("/tmp/krb5cc") }},
		{"DB2ZDatabaseName", "db2z.databaseName", func(c *Config) error { return c.SetDB2ZDatabaseName("DSNDB04") }},
		{"VaultURL", "vault.url", func(c *Config) error { return c.SetVaultURL("https://vault:8200/v1/") }},
		{"VaultToken", "vault.token", func(c *Config) error { return c.SetVaultToken("s.token") }},
		{"VaultSecrets", "vault.secrets", func(c *Config) error { return c.SetVaultSecrets("kv/data/drift") }},
	}

	for _, tt := range tests {
		t.Run(tt.name+"RejectedInCommunity", func(t *testing.T) {
			err := tt.apply(New())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUpgradeRequired)

			var upgrade *UpgradeRequiredError
			require.ErrorAs(t, err, &upgrade)
			assert.Equal(t, tt.field, upgrade.Field)
			assert.Contains(t, err.Error(), "community edition")
		})

		t.Run(tt.name+"AcceptedInTeams", func(t *testing.T) {
			cfg := NewWithOptions(Options{Edition: EditionTeams})
			assert.NoError(t, tt.apply(cfg))
		})
	}
}

// TestLicenseKey tests the warn-instead-of-reject behavior
func TestLicenseKey(t *testing.T) {
	t.Run("CommunityWarnsAndDrops", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := NewWithOptions(Options{Logger: zerolog.New(&buf)})

		cfg.SetLicenseKey("DRIFT-LICENSE")
		assert.Empty(t, cfg.LicenseKey())
		assert.Contains(t, buf.String(), "community edition")
	})

	t.Run("TeamsStores", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := NewWithOptions(Options{Logger: zerolog.New(&buf), Edition: EditionTeams})

		cfg.SetLicenseKey("DRIFT-LICENSE")
		assert.Equal(t, "DRIFT-LICENSE", cfg.LicenseKey())
		assert.Empty(t, buf.String())
	})
}

// TestDryRunOutputFile tests file-backed dry-run redirection
func TestDryRunOutputFile(t *testing.T) {
	cfg := NewWithOptions(Options{Edition: EditionTeams})
	path := filepath.Join(t.TempDir(), "dryrun.sql")

	require.NoError(t, cfg.SetDryRunOutputFile(path))
	require.NotNil(t, cfg.DryRunOutput())

	_, err := cfg.DryRunOutput().Write([]byte("SELECT 1;\n"))
	assert.NoError(t, err)
}

// TestEditionString tests the tier names
func TestEditionString(t *testing.T) {
	assert.Equal(t, "Community", EditionCommunity.String())
	assert.Equal(t, "Teams", EditionTeams.String())
}

// TestCherryPickPatterns tests pattern matching through the config
func TestCherryPickPatterns(t *testing.T) {
	cfg := NewWithOptions(Options{Edition: EditionTeams})
	require.NoError(t, cfg.SetCherryPickStrings("2.1", "Insert Data"))

	picks := cfg.CherryPick()
	require.Len(t, picks, 2)
	assert.True(t, picks[0].MatchesVersion(drift.MustVersion("2.01")))
	assert.False(t, picks[0].MatchesVersion(drift.MustVersion("2.2")))
	assert.True(t, picks[1].MatchesDescription("insert_data"))
}
