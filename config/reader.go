// File: lixenwraith/drift/config/reader.go
package config

import (
	"io"

	"github.com/lixenwraith/drift"
)

// Reader is the read-only contract the migration engine consumes. *Config
// implements it; the engine never sees the setter surface. Map-, slice-
// and descriptor-valued accessors return copies, so readers cannot mutate
// the configuration behind its back.
type Reader interface {
	Driver() string
	URL() string
	User() string
	Password() string
	Connection() *Connection

	ConnectRetries() int
	InitSQL() string
	LockRetryCount() int

	Locations() []string
	Encoding() string

	DefaultSchema() string
	Schemas() []string
	Table() string
	Tablespace() string

	Target() drift.Version
	CherryPick() []drift.Pattern

	PlaceholderReplacement() bool
	Placeholders() map[string]string
	PlaceholderPrefix() string
	PlaceholderSuffix() string

	SQLMigrationPrefix() string
	UndoSQLMigrationPrefix() string
	RepeatableSQLMigrationPrefix() string
	SQLMigrationSeparator() string
	SQLMigrationSuffixes() []string

	IgnoreMissingMigrations() bool
	IgnoreIgnoredMigrations() bool
	IgnorePendingMigrations() bool
	IgnoreFutureMigrations() bool

	ValidateMigrationNaming() bool
	ValidateOnMigrate() bool
	CleanOnValidationError() bool
	CleanDisabled() bool

	BaselineVersion() drift.Version
	BaselineDescription() string
	BaselineOnMigrate() bool

	OutOfOrder() bool
	SkipExecutingMigrations() bool

	Callbacks() []drift.Callback
	SkipDefaultCallbacks() bool
	Resolvers() []drift.Resolver
	SkipDefaultResolvers() bool

	Mixed() bool
	Group() bool
	InstalledBy() string
	CreateSchemas() bool

	DryRunOutput() io.Writer
	ErrorOverrides() []string
	Stream() bool
	Batch() bool
	OutputQueryResults() bool
	LicenseKey() string
	DriverProps() map[string]string

	OracleSQLPlus() bool
	OracleSQLPlusWarn() bool
	OracleKerberosConfigFile() string
	OracleKerberosCacheFile() string

	DB2ZDatabaseName() string

	VaultURL() string
	VaultToken() string
	VaultSecrets() []string
}

var _ Reader = (*Config)(nil)

func (c *Config) Driver() string   { return c.driver }
func (c *Config) URL() string      { return c.url }
func (c *Config) User() string     { return c.user }
func (c *Config) Password() string { return c.password }

func (c *Config) ConnectRetries() int { return c.connectRetries }
func (c *Config) InitSQL() string     { return c.initSQL }
func (c *Config) LockRetryCount() int { return c.lockRetryCount }

func (c *Config) Locations() []string { return copySlice(c.locations) }
func (c *Config) Encoding() string    { return c.encoding }

func (c *Config) DefaultSchema() string { return c.defaultSchema }
func (c *Config) Schemas() []string     { return copySlice(c.schemas) }
func (c *Config) Table() string         { return c.table }
func (c *Config) Tablespace() string    { return c.tablespace }

func (c *Config) Target() drift.Version       { return c.target }
func (c *Config) CherryPick() []drift.Pattern { return copySlice(c.cherryPick) }

func (c *Config) PlaceholderReplacement() bool     { return c.placeholderReplacement }
func (c *Config) Placeholders() map[string]string  { return copyMap(c.placeholders) }
func (c *Config) PlaceholderPrefix() string        { return c.placeholderPrefix }
func (c *Config) PlaceholderSuffix() string        { return c.placeholderSuffix }

func (c *Config) SQLMigrationPrefix() string           { return c.sqlMigrationPrefix }
func (c *Config) UndoSQLMigrationPrefix() string       { return c.undoSQLMigrationPrefix }
func (c *Config) RepeatableSQLMigrationPrefix() string { return c.repeatableSQLMigrationPrefix }
func (c *Config) SQLMigrationSeparator() string        { return c.sqlMigrationSeparator }
func (c *Config) SQLMigrationSuffixes() []string       { return copySlice(c.sqlMigrationSuffixes) }

func (c *Config) IgnoreMissingMigrations() bool { return c.ignoreMissingMigrations }
func (c *Config) IgnoreIgnoredMigrations() bool { return c.ignoreIgnoredMigrations }
func (c *Config) IgnorePendingMigrations() bool { return c.ignorePendingMigrations }
func (c *Config) IgnoreFutureMigrations() bool  { return c.ignoreFutureMigrations }

func (c *Config) ValidateMigrationNaming() bool { return c.validateMigrationNaming }
func (c *Config) ValidateOnMigrate() bool       { return c.validateOnMigrate }
func (c *Config) CleanOnValidationError() bool  { return c.cleanOnValidationError }
func (c *Config) CleanDisabled() bool           { return c.cleanDisabled }

func (c *Config) BaselineVersion() drift.Version { return c.baselineVersion }
func (c *Config) BaselineDescription() string    { return c.baselineDescription }
func (c *Config) BaselineOnMigrate() bool        { return c.baselineOnMigrate }

func (c *Config) OutOfOrder() bool              { return c.outOfOrder }
func (c *Config) SkipExecutingMigrations() bool { return c.skipExecutingMigrations }

func (c *Config) Callbacks() []drift.Callback { return copySlice(c.callbacks) }
func (c *Config) SkipDefaultCallbacks() bool  { return c.skipDefaultCallbacks }
func (c *Config) Resolvers() []drift.Resolver { return copySlice(c.resolvers) }
func (c *Config) SkipDefaultResolvers() bool  { return c.skipDefaultResolvers }

func (c *Config) Mixed() bool         { return c.mixed }
func (c *Config) Group() bool         { return c.group }
func (c *Config) InstalledBy() string { return c.installedBy }
func (c *Config) CreateSchemas() bool { return c.createSchemas }

func (c *Config) DryRunOutput() io.Writer        { return c.dryRunOutput }
func (c *Config) ErrorOverrides() []string       { return copySlice(c.errorOverrides) }
func (c *Config) Stream() bool                   { return c.stream }
func (c *Config) Batch() bool                    { return c.batch }
func (c *Config) OutputQueryResults() bool       { return c.outputQueryResults }
func (c *Config) LicenseKey() string             { return c.licenseKey }
func (c *Config) DriverProps() map[string]string { return copyMap(c.driverProps) }

func (c *Config) OracleSQLPlus() bool              { return c.oracleSQLPlus }
func (c *Config) OracleSQLPlusWarn() bool          { return c.oracleSQLPlusWarn }
func (c *Config) OracleKerberosConfigFile() string { return c.oracleKerberosConfigFile }
func (c *Config) OracleKerberosCacheFile() string  { return c.oracleKerberosCacheFile }

func (c *Config) DB2ZDatabaseName() string { return c.db2zDatabaseName }

func (c *Config) VaultURL() string       { return c.vaultURL }
func (c *Config) VaultToken() string     { return c.vaultToken }
func (c *Config) VaultSecrets() []string { return copySlice(c.vaultSecrets) }

func copySlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func copyMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
