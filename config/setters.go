// File: lixenwraith/drift/config/setters.go
package config

import (
	"golang.org/x/text/encoding/ianaindex"

	"github.com/lixenwraith/drift"
)

// SetConnectRetries sets the maximum number of connection attempts. The
// engine waits one second between attempts.
func (c *Config) SetConnectRetries(retries int) error {
	if retries < 0 {
		return errorf("invalid number of connectRetries (must be 0 or greater): %d", retries)
	}
	c.connectRetries = retries
	return nil
}

// SetInitSQL sets the SQL run on every new database connection immediately
// after opening it.
func (c *Config) SetInitSQL(sql string) {
	c.initSQL = sql
}

// SetLockRetryCount sets the maximum number of attempts to obtain the
// schema-history lock.
func (c *Config) SetLockRetryCount(count int) error {
	if count < 0 {
		return errorf("invalid lockRetryCount (must be 0 or greater): %d", count)
	}
	c.lockRetryCount = count
	return nil
}

// SetLocations sets the locations scanned recursively for migrations.
// Location prefixes are interpreted by the migration resolver, not here.
func (c *Config) SetLocations(locations ...string) {
	c.locations = copySlice(locations)
}

// SetEncoding sets the character encoding of SQL migrations. The name must
// be a registered IANA charset name such as "UTF-8" or "ISO-8859-1".
func (c *Config) SetEncoding(name string) error {
	if _, err := ianaindex.IANA.Encoding(name); err != nil {
		return errorf("invalid encoding %q: not a recognized charset name", name)
	}
	c.encoding = name
	return nil
}

// SetDefaultSchema sets the schema containing the schema history table. If
// unset, the first entry of Schemas acts as the default.
func (c *Config) SetDefaultSchema(schema string) {
	c.defaultSchema = schema
}

// SetSchemas sets the schemas managed by the tool, in clean order.
func (c *Config) SetSchemas(schemas ...string) {
	c.schemas = copySlice(schemas)
}

// SetTable sets the name of the schema history table.
func (c *Config) SetTable(table string) {
	c.table = table
}

// SetTablespace sets the tablespace the schema history table is created
// in, for databases that support the concept.
func (c *Config) SetTablespace(tablespace string) {
	c.tablespace = tablespace
}

// SetTarget bounds the versions the engine considers. Migrations above the
// target are ignored.
func (c *Config) SetTarget(target drift.Version) {
	c.target = target
}

// SetTargetString parses and sets the target version. The tokens "current"
// and "latest" are accepted alongside numeric versions.
func (c *Config) SetTargetString(target string) error {
	v, err := drift.ParseVersion(target)
	if err != nil {
		return errorf("invalid target: %v", err)
	}
	c.target = v
	return nil
}

// SetPlaceholderReplacement toggles placeholder replacement in SQL
// migrations.
func (c *Config) SetPlaceholderReplacement(enabled bool) {
	c.placeholderReplacement = enabled
}

// SetPlaceholders replaces the placeholder map applied to SQL migrations.
func (c *Config) SetPlaceholders(placeholders map[string]string) {
	c.placeholders = copyMap(placeholders)
	if c.placeholders == nil {
		c.placeholders = make(map[string]string)
	}
}

// SetPlaceholderPrefix sets the prefix of every placeholder.
func (c *Config) SetPlaceholderPrefix(prefix string) error {
	if prefix == "" {
		return errorf("placeholderPrefix cannot be empty")
	}
	c.placeholderPrefix = prefix
	return nil
}

// SetPlaceholderSuffix sets the suffix of every placeholder.
func (c *Config) SetPlaceholderSuffix(suffix string) error {
	if suffix == "" {
		return errorf("placeholderSuffix cannot be empty")
	}
	c.placeholderSuffix = suffix
	return nil
}

// SetSQLMigrationPrefix sets the file-name prefix of versioned SQL
// migrations (V1_1__My_description.sql with the defaults).
func (c *Config) SetSQLMigrationPrefix(prefix string) {
	c.sqlMigrationPrefix = prefix
}

// SetRepeatableSQLMigrationPrefix sets the file-name prefix of repeatable
// SQL migrations (R__My_description.sql with the defaults).
func (c *Config) SetRepeatableSQLMigrationPrefix(prefix string) {
	c.repeatableSQLMigrationPrefix = prefix
}

// SetSQLMigrationSeparator sets the separator between version and
// description in migration file names.
func (c *Config) SetSQLMigrationSeparator(separator string) error {
	if separator == "" {
		return errorf("sqlMigrationSeparator cannot be empty")
	}
	c.sqlMigrationSeparator = separator
	return nil
}

// SetSQLMigrationSuffixes sets the accepted migration file-name suffixes.
func (c *Config) SetSQLMigrationSuffixes(suffixes ...string) {
	c.sqlMigrationSuffixes = copySlice(suffixes)
}

// SetIgnoreMissingMigrations controls whether applied migrations that are
// no longer available fail validation or only log a warning.
func (c *Config) SetIgnoreMissingMigrations(ignore bool) {
	c.ignoreMissingMigrations = ignore
}

// SetIgnoreIgnoredMigrations controls whether migrations inserted between
// already-applied versions are rejected by validate.
func (c *Config) SetIgnoreIgnoredMigrations(ignore bool) {
	c.ignoreIgnoredMigrations = ignore
}

// SetIgnorePendingMigrations controls whether not-yet-applied migrations
// are rejected by validate.
func (c *Config) SetIgnorePendingMigrations(ignore bool) {
	c.ignorePendingMigrations = ignore
}

// SetIgnoreFutureMigrations controls whether migrations applied by a newer
// deployment fail validation or only log a warning.
func (c *Config) SetIgnoreFutureMigrations(ignore bool) {
	c.ignoreFutureMigrations = ignore
}

// SetValidateMigrationNaming controls whether scripts that do not obey the
// naming convention fail validation.
func (c *Config) SetValidateMigrationNaming(validate bool) {
	c.validateMigrationNaming = validate
}

// SetValidateOnMigrate controls the automatic validate run before migrate.
func (c *Config) SetValidateOnMigrate(validate bool) {
	c.validateOnMigrate = validate
}

// SetCleanOnValidationError controls the automatic clean on validation
// failure. Development convenience only.
func (c *Config) SetCleanOnValidationError(clean bool) {
	c.cleanOnValidationError = clean
}

// SetCleanDisabled disables the clean command entirely.
func (c *Config) SetCleanDisabled(disabled bool) {
	c.cleanDisabled = disabled
}

// SetBaselineVersion sets the version an existing schema is tagged with
// when baselining.
func (c *Config) SetBaselineVersion(version drift.Version) {
	c.baselineVersion = version
}

// SetBaselineVersionString parses and sets the baseline version.
func (c *Config) SetBaselineVersionString(version string) error {
	v, err := drift.ParseVersion(version)
	if err != nil {
		return errorf("invalid baselineVersion: %v", err)
	}
	c.baselineVersion = v
	return nil
}

// SetBaselineDescription sets the description an existing schema is tagged
// with when baselining.
func (c *Config) SetBaselineDescription(description string) {
	c.baselineDescription = description
}

// SetBaselineOnMigrate controls automatic baselining when migrating a
// non-empty schema without a history table.
func (c *Config) SetBaselineOnMigrate(baseline bool) {
	c.baselineOnMigrate = baseline
}

// SetOutOfOrder allows migrations with versions below the highest applied
// one to still be applied.
func (c *Config) SetOutOfOrder(outOfOrder bool) {
	c.outOfOrder = outOfOrder
}

// SetCallbacks replaces the lifecycle callbacks.
func (c *Config) SetCallbacks(callbacks ...drift.Callback) {
	c.callbacks = copySlice(callbacks)
}

// SetCallbacksByName replaces the lifecycle callbacks with instances
// resolved from the registry captured at construction.
func (c *Config) SetCallbacksByName(names ...string) error {
	callbacks := make([]drift.Callback, 0, len(names))
	for _, name := range names {
		cb, err := c.registry.Callback(name)
		if err != nil {
			return errorf("invalid callback: %v", err)
		}
		callbacks = append(callbacks, cb)
	}
	c.callbacks = callbacks
	return nil
}

// SetSkipDefaultCallbacks uses only the configured callbacks, skipping the
// built-in ones.
func (c *Config) SetSkipDefaultCallbacks(skip bool) {
	c.skipDefaultCallbacks = skip
}

// SetResolvers replaces the custom migration resolvers used in addition to
// the built-in ones.
func (c *Config) SetResolvers(resolvers ...drift.Resolver) {
	c.resolvers = copySlice(resolvers)
}

// SetResolversByName replaces the custom resolvers with instances resolved
// from the registry captured at construction.
func (c *Config) SetResolversByName(names ...string) error {
	resolvers := make([]drift.Resolver, 0, len(names))
	for _, name := range names {
		r, err := c.registry.Resolver(name)
		if err != nil {
			return errorf("invalid resolver: %v", err)
		}
		resolvers = append(resolvers, r)
	}
	c.resolvers = resolvers
	return nil
}

// SetSkipDefaultResolvers uses only the configured resolvers, skipping the
// built-in ones.
func (c *Config) SetSkipDefaultResolvers(skip bool) {
	c.skipDefaultResolvers = skip
}

// SetMixed allows mixing transactional and non-transactional statements in
// one migration.
func (c *Config) SetMixed(mixed bool) {
	c.mixed = mixed
}

// SetGroup applies all pending migrations in a single transaction.
func (c *Config) SetGroup(group bool) {
	c.group = group
}

// SetInstalledBy sets the username recorded in the schema history table.
// The empty string means the current database user of the connection.
func (c *Config) SetInstalledBy(username string) {
	c.installedBy = username
}

// SetCreateSchemas controls whether the tool attempts to create the
// configured schemas.
func (c *Config) SetCreateSchemas(create bool) {
	c.createSchemas = create
}
