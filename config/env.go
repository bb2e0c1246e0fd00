// File: lixenwraith/drift/config/env.go
package config

import (
	"os"
	"strings"
)

// EnvPrefix is the namespace root of drift environment variables.
const EnvPrefix = "DRIFT_"

// envKeys maps environment variable names to property keys. The mapping
// is explicit because camelCase cannot be recovered from an uppercase
// variable name.
var envKeys = map[string]string{
	"DRIFT_DRIVER":   KeyDriver,
	"DRIFT_URL":      KeyURL,
	"DRIFT_USER":     KeyUser,
	"DRIFT_PASSWORD": KeyPassword,

	"DRIFT_CONNECT_RETRIES":  KeyConnectRetries,
	"DRIFT_INIT_SQL":         KeyInitSQL,
	"DRIFT_LOCK_RETRY_COUNT": KeyLockRetryCount,

	"DRIFT_LOCATIONS": KeyLocations,
	"DRIFT_ENCODING":  KeyEncoding,

	"DRIFT_DEFAULT_SCHEMA": KeyDefaultSchema,
	"DRIFT_SCHEMAS":        KeySchemas,
	"DRIFT_TABLE":          KeyTable,
	"DRIFT_TABLESPACE":     KeyTablespace,

	"DRIFT_PLACEHOLDER_REPLACEMENT": KeyPlaceholderReplacement,
	"DRIFT_PLACEHOLDER_PREFIX":      KeyPlaceholderPrefix,
	"DRIFT_PLACEHOLDER_SUFFIX":      KeyPlaceholderSuffix,

	"DRIFT_SQL_MIGRATION_PREFIX":            KeySQLMigrationPrefix,
	"DRIFT_UNDO_SQL_MIGRATION_PREFIX":       KeyUndoSQLMigrationPrefix,
	"DRIFT_REPEATABLE_SQL_MIGRATION_PREFIX": KeyRepeatableSQLMigrationPrefix,
	"DRIFT_SQL_MIGRATION_SEPARATOR":         KeySQLMigrationSeparator,
	"DRIFT_SQL_MIGRATION_SUFFIXES":          KeySQLMigrationSuffixes,

	"DRIFT_CLEAN_ON_VALIDATION_ERROR": KeyCleanOnValidationError,
	"DRIFT_CLEAN_DISABLED":            KeyCleanDisabled,
	"DRIFT_VALIDATE_ON_MIGRATE":       KeyValidateOnMigrate,
	"DRIFT_VALIDATE_MIGRATION_NAMING": KeyValidateMigrationNaming,

	"DRIFT_BASELINE_VERSION":     KeyBaselineVersion,
	"DRIFT_BASELINE_DESCRIPTION": KeyBaselineDescription,
	"DRIFT_BASELINE_ON_MIGRATE":  KeyBaselineOnMigrate,

	"DRIFT_IGNORE_MISSING_MIGRATIONS": KeyIgnoreMissingMigrations,
	"DRIFT_IGNORE_IGNORED_MIGRATIONS": KeyIgnoreIgnoredMigrations,
	"DRIFT_IGNORE_PENDING_MIGRATIONS": KeyIgnorePendingMigrations,
	"DRIFT_IGNORE_FUTURE_MIGRATIONS":  KeyIgnoreFutureMigrations,

	"DRIFT_TARGET":                    KeyTarget,
	"DRIFT_CHERRY_PICK":               KeyCherryPick,
	"DRIFT_OUT_OF_ORDER":              KeyOutOfOrder,
	"DRIFT_SKIP_EXECUTING_MIGRATIONS": KeySkipExecutingMigrations,

	"DRIFT_RESOLVERS":              KeyResolvers,
	"DRIFT_SKIP_DEFAULT_RESOLVERS": KeySkipDefaultResolvers,
	"DRIFT_CALLBACKS":              KeyCallbacks,
	"DRIFT_SKIP_DEFAULT_CALLBACKS": KeySkipDefaultCallbacks,

	"DRIFT_MIXED":          KeyMixed,
	"DRIFT_GROUP":          KeyGroup,
	"DRIFT_INSTALLED_BY":   KeyInstalledBy,
	"DRIFT_CREATE_SCHEMAS": KeyCreateSchemas,

	"DRIFT_DRY_RUN_OUTPUT":       KeyDryRunOutput,
	"DRIFT_ERROR_OVERRIDES":      KeyErrorOverrides,
	"DRIFT_STREAM":               KeyStream,
	"DRIFT_BATCH":                KeyBatch,
	"DRIFT_OUTPUT_QUERY_RESULTS": KeyOutputQueryResults,
	"DRIFT_LICENSE_KEY":          KeyLicenseKey,

	"DRIFT_ORACLE_SQLPLUS":              KeyOracleSQLPlus,
	"DRIFT_ORACLE_SQLPLUS_WARN":         KeyOracleSQLPlusWarn,
	"DRIFT_ORACLE_KERBEROS_CONFIG_FILE": KeyOracleKerberosConfigFile,
	"DRIFT_ORACLE_KERBEROS_CACHE_FILE":  KeyOracleKerberosCacheFile,

	"DRIFT_DB2Z_DATABASE_NAME": KeyDB2ZDatabaseName,

	"DRIFT_VAULT_URL":     KeyVaultURL,
	"DRIFT_VAULT_TOKEN":   KeyVaultToken,
	"DRIFT_VAULT_SECRETS": KeyVaultSecrets,
}

// Environment namespaces whose variable suffixes carry the sub-mapping
// key, lowercased: DRIFT_PLACEHOLDERS_ENV configures the placeholder
// "env".
const (
	envPlaceholdersPrefix = "DRIFT_PLACEHOLDERS_"
	envDriverPropsPrefix  = "DRIFT_DRIVER_PROPERTIES_"
)

// EnvProps translates the current process environment into a property
// map. Variables under the drift namespace that translate to nothing are
// dropped, so unrelated DRIFT_ variables cannot fail a property pass.
func EnvProps() map[string]string {
	props := make(map[string]string)

	for _, entry := range os.Environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}

		switch {
		case strings.HasPrefix(name, envDriverPropsPrefix) && len(name) > len(envDriverPropsPrefix):
			suffix := strings.ToLower(strings.TrimPrefix(name, envDriverPropsPrefix))
			props[DriverPropsPrefix+suffix] = value
		case strings.HasPrefix(name, envPlaceholdersPrefix) && len(name) > len(envPlaceholdersPrefix):
			suffix := strings.ToLower(strings.TrimPrefix(name, envPlaceholdersPrefix))
			props[PlaceholdersPrefix+suffix] = value
		default:
			if key, known := envKeys[name]; known {
				props[key] = value
			}
		}
	}

	return props
}

// ApplyEnv merges the process environment into the configuration through
// ApplyProps.
func (c *Config) ApplyEnv() error {
	return c.ApplyProps(EnvProps())
}
