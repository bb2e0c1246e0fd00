// File: lixenwraith/drift/config/teams.go
package config

import (
	"io"
	"os"

	"github.com/lixenwraith/drift"
)

// Edition is the capability tier a Config runs at. The gated setters in
// this file refuse to work below EditionTeams so that a configuration
// assembled for the community tier can never silently carry paid features
// into the engine.
type Edition int

const (
	EditionCommunity Edition = iota
	EditionTeams
)

func (e Edition) String() string {
	switch e {
	case EditionTeams:
		return "Teams"
	default:
		return "Community"
	}
}

// requireTeams returns an UpgradeRequiredError for field unless the
// instance runs at the Teams tier.
func (c *Config) requireTeams(field string) error {
	if c.edition >= EditionTeams {
		return nil
	}
	return &UpgradeRequiredError{Field: field}
}

// SetCherryPick restricts migrate and undo to the given migrations,
// identified by version or description.
func (c *Config) SetCherryPick(patterns ...drift.Pattern) error {
	if err := c.requireTeams("cherryPick"); err != nil {
		return err
	}
	c.cherryPick = copySlice(patterns)
	return nil
}

// SetCherryPickStrings is SetCherryPick for raw pattern strings.
func (c *Config) SetCherryPickStrings(patterns ...string) error {
	parsed := make([]drift.Pattern, 0, len(patterns))
	for _, p := range patterns {
		parsed = append(parsed, drift.NewPattern(p))
	}
	return c.SetCherryPick(parsed...)
}

// SetDryRunOutput redirects all SQL the engine would execute to the given
// writer instead of the database.
func (c *Config) SetDryRunOutput(w io.Writer) error {
	if err := c.requireTeams("dryRunOutput"); err != nil {
		return err
	}
	c.dryRunOutput = w
	return nil
}

// SetDryRunOutputFile is SetDryRunOutput backed by a file, created or
// truncated on the spot.
func (c *Config) SetDryRunOutputFile(path string) error {
	if err := c.requireTeams("dryRunOutput"); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errorf("unable to create dryRunOutput file %s: %v", path, err)
	}
	c.dryRunOutput = f
	return nil
}

// SetErrorOverrides sets rules overriding how specific database errors are
// handled during migration.
func (c *Config) SetErrorOverrides(overrides ...string) error {
	if err := c.requireTeams("errorOverrides"); err != nil {
		return err
	}
	c.errorOverrides = copySlice(overrides)
	return nil
}

// SetStream streams migrations when executing them, keeping memory usage
// flat for very large scripts.
func (c *Config) SetStream(stream bool) error {
	if err := c.requireTeams("stream"); err != nil {
		return err
	}
	c.stream = stream
	return nil
}

// SetBatch sends SQL statements to the database in batches rather than one
// at a time.
func (c *Config) SetBatch(batch bool) error {
	if err := c.requireTeams("batch"); err != nil {
		return err
	}
	c.batch = batch
	return nil
}

// SetUndoSQLMigrationPrefix sets the file-name prefix of undo SQL
// migrations (U1_1__My_description.sql with the defaults).
func (c *Config) SetUndoSQLMigrationPrefix(prefix string) error {
	if err := c.requireTeams("undoSqlMigrationPrefix"); err != nil {
		return err
	}
	c.undoSQLMigrationPrefix = prefix
	return nil
}

// SetOutputQueryResults controls whether results of queries inside
// migrations are sent to the logs.
func (c *Config) SetOutputQueryResults(output bool) error {
	if err := c.requireTeams("outputQueryResults"); err != nil {
		return err
	}
	c.outputQueryResults = output
	return nil
}

// SetSkipExecutingMigrations marks pending migrations as applied without
// running them.
func (c *Config) SetSkipExecutingMigrations(skip bool) error {
	if err := c.requireTeams("skipExecutingMigrations"); err != nil {
		return err
	}
	c.skipExecutingMigrations = skip
	return nil
}

// SetDriverProps replaces the properties passed through to the database
// driver. Properties arriving through the driverProperties namespace of a
// property pass bypass this gate; only the direct API is gated.
func (c *Config) SetDriverProps(props map[string]string) error {
	if err := c.requireTeams("driverProperties"); err != nil {
		return err
	}
	c.driverProps = copyMap(props)
	return nil
}

// SetLicenseKey records the license key. In the community edition the key
// is dropped with a warning rather than rejected, so one property file can
// serve both tiers.
func (c *Config) SetLicenseKey(key string) {
	if c.edition < EditionTeams {
		c.logger.Warn().Msg("a license key was provided but this is the community edition; the key has no effect here")
		return
	}
	c.licenseKey = key
}

// SetOracleSQLPlus enables support for Oracle SQL*Plus commands in
// migrations.
func (c *Config) SetOracleSQLPlus(enabled bool) error {
	if err := c.requireTeams("oracle.sqlplus"); err != nil {
		return err
	}
	c.oracleSQLPlus = enabled
	return nil
}

// SetOracleSQLPlusWarn warns about SQL*Plus commands that are not yet
// supported instead of failing.
func (c *Config) SetOracleSQLPlusWarn(enabled bool) error {
	if err := c.requireTeams("oracle.sqlplusWarn"); err != nil {
		return err
	}
	c.oracleSQLPlusWarn = enabled
	return nil
}

// SetOracleKerberosConfigFile sets the path of the krb5.conf used for
// Kerberos authentication against Oracle.
func (c *Config) SetOracleKerberosConfigFile(path string) error {
	if err := c.requireTeams("oracle.kerberosConfigFile"); err != nil {
		return err
	}
	c.oracleKerberosConfigFile = path
	return nil
}

// SetOracleKerberosCacheFile sets the path of the Kerberos credential
// cache used against Oracle.
func (c *Config) SetOracleKerberosCacheFile(path string) error {
	if err := c.requireTeams("oracle.kerberosCacheFile"); err != nil {
		return err
	}
	c.oracleKerberosCacheFile = path
	return nil
}

// SetDB2ZDatabaseName sets the database name used on DB2 for z/OS.
func (c *Config) SetDB2ZDatabaseName(name string) error {
	if err := c.requireTeams("db2z.databaseName"); err != nil {
		return err
	}
	c.db2zDatabaseName = name
	return nil
}

// SetVaultURL sets the REST endpoint of the Vault server secrets are read
// from.
func (c *Config) SetVaultURL(url string) error {
	if err := c.requireTeams("vault.url"); err != nil {
		return err
	}
	c.vaultURL = url
	return nil
}

// SetVaultToken sets the token used to authenticate against Vault.
func (c *Config) SetVaultToken(token string) error {
	if err := c.requireTeams("vault.token"); err != nil {
		return err
	}
	c.vaultToken = token
	return nil
}

// SetVaultSecrets sets the Vault paths read for configuration values,
// applied in order.
func (c *Config) SetVaultSecrets(secrets ...string) error {
	if err := c.requireTeams("vault.secrets"); err != nil {
		return err
	}
	c.vaultSecrets = copySlice(secrets)
	return nil
}
