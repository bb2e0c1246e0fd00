// File: lixenwraith/drift/config/keys.go
package config

// KnownPrefix is the namespace root of every drift property key. Keys
// outside this namespace are ignored by the residue check, so drift
// properties can share a map with other tools' settings.
const KnownPrefix = "drift."

// Leaf property keys recognized by Config.ApplyProps.
const (
	KeyDriver   = "drift.driver"
	KeyURL      = "drift.url"
	KeyUser     = "drift.user"
	KeyPassword = "drift.password"

	KeyConnectRetries = "drift.connectRetries"
	KeyInitSQL        = "drift.initSql"
	KeyLockRetryCount = "drift.lockRetryCount"

	KeyLocations = "drift.locations"
	KeyEncoding  = "drift.encoding"

	KeyDefaultSchema = "drift.defaultSchema"
	KeySchemas       = "drift.schemas"
	KeyTable         = "drift.table"
	KeyTablespace    = "drift.tablespace"

	KeyPlaceholderReplacement = "drift.placeholderReplacement"
	KeyPlaceholderPrefix      = "drift.placeholderPrefix"
	KeyPlaceholderSuffix      = "drift.placeholderSuffix"

	KeySQLMigrationPrefix           = "drift.sqlMigrationPrefix"
	KeyUndoSQLMigrationPrefix       = "drift.undoSqlMigrationPrefix"
	KeyRepeatableSQLMigrationPrefix = "drift.repeatableSqlMigrationPrefix"
	KeySQLMigrationSeparator        = "drift.sqlMigrationSeparator"
	KeySQLMigrationSuffixes         = "drift.sqlMigrationSuffixes"

	KeyCleanOnValidationError  = "drift.cleanOnValidationError"
	KeyCleanDisabled           = "drift.cleanDisabled"
	KeyValidateOnMigrate       = "drift.validateOnMigrate"
	KeyValidateMigrationNaming = "drift.validateMigrationNaming"

	KeyBaselineVersion     = "drift.baselineVersion"
	KeyBaselineDescription = "drift.baselineDescription"
	KeyBaselineOnMigrate   = "drift.baselineOnMigrate"

	KeyIgnoreMissingMigrations = "drift.ignoreMissingMigrations"
	KeyIgnoreIgnoredMigrations = "drift.ignoreIgnoredMigrations"
	KeyIgnorePendingMigrations = "drift.ignorePendingMigrations"
	KeyIgnoreFutureMigrations  = "drift.ignoreFutureMigrations"

	KeyTarget                  = "drift.target"
	KeyCherryPick              = "drift.cherryPick"
	KeyOutOfOrder              = "drift.outOfOrder"
	KeySkipExecutingMigrations = "drift.skipExecutingMigrations"

	KeyResolvers            = "drift.resolvers"
	KeySkipDefaultResolvers = "drift.skipDefaultResolvers"
	KeyCallbacks            = "drift.callbacks"
	KeySkipDefaultCallbacks = "drift.skipDefaultCallbacks"

	KeyMixed         = "drift.mixed"
	KeyGroup         = "drift.group"
	KeyInstalledBy   = "drift.installedBy"
	KeyCreateSchemas = "drift.createSchemas"

	KeyDryRunOutput       = "drift.dryRunOutput"
	KeyErrorOverrides     = "drift.errorOverrides"
	KeyStream             = "drift.stream"
	KeyBatch              = "drift.batch"
	KeyOutputQueryResults = "drift.outputQueryResults"
	KeyLicenseKey         = "drift.licenseKey"

	KeyOracleSQLPlus            = "drift.oracle.sqlplus"
	KeyOracleSQLPlusWarn        = "drift.oracle.sqlplusWarn"
	KeyOracleKerberosConfigFile = "drift.oracle.kerberosConfigFile"
	KeyOracleKerberosCacheFile  = "drift.oracle.kerberosCacheFile"

	KeyDB2ZDatabaseName = "drift.db2z.databaseName"

	KeyVaultURL     = "drift.vault.url"
	KeyVaultToken   = "drift.vault.token"
	KeyVaultSecrets = "drift.vault.secrets"
)

// Prefix namespaces whose suffixes form sub-mappings.
const (
	// PlaceholdersPrefix collects placeholder name/value pairs, e.g.
	// "drift.placeholders.env" configures the placeholder "env".
	PlaceholdersPrefix = "drift.placeholders."

	// DriverPropsPrefix collects properties passed through to the database
	// driver when the connection is opened.
	DriverPropsPrefix = "drift.driverProperties."
)
