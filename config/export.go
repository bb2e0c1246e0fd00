// File: lixenwraith/drift/config/export.go
package config

import (
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Export renders the configuration back into a flat property map that
// ApplyProps accepts, suitable for persisting or handing to another
// process. String fields are exported only when set, list fields join
// with commas, and edition-gated fields are exported only at the Teams
// tier. Callback and resolver instances have no property form and are
// not exported.
func (c *Config) Export() map[string]string {
	props := make(map[string]string)

	setIf := func(key, value string) {
		if value != "" {
			props[key] = value
		}
	}

	if c.conn != nil {
		setIf(KeyDriver, c.conn.Driver)
		setIf(KeyURL, c.conn.URL)
		setIf(KeyUser, c.conn.User)
		setIf(KeyPassword, c.conn.Password)
	} else {
		setIf(KeyDriver, c.driver)
		setIf(KeyURL, c.url)
		setIf(KeyUser, c.user)
		setIf(KeyPassword, c.password)
	}

	props[KeyConnectRetries] = strconv.Itoa(c.connectRetries)
	setIf(KeyInitSQL, c.initSQL)
	props[KeyLockRetryCount] = strconv.Itoa(c.lockRetryCount)

	setIf(KeyLocations, strings.Join(c.locations, ","))
	setIf(KeyEncoding, c.encoding)

	setIf(KeyDefaultSchema, c.defaultSchema)
	setIf(KeySchemas, strings.Join(c.schemas, ","))
	setIf(KeyTable, c.table)
	setIf(KeyTablespace, c.tablespace)

	if !c.target.IsZero() {
		props[KeyTarget] = c.target.String()
	}

	props[KeyPlaceholderReplacement] = strconv.FormatBool(c.placeholderReplacement)
	setIf(KeyPlaceholderPrefix, c.placeholderPrefix)
	setIf(KeyPlaceholderSuffix, c.placeholderSuffix)
	for name, value := range c.placeholders {
		props[PlaceholdersPrefix+name] = value
	}

	setIf(KeySQLMigrationPrefix, c.sqlMigrationPrefix)
	setIf(KeyRepeatableSQLMigrationPrefix, c.repeatableSQLMigrationPrefix)
	setIf(KeySQLMigrationSeparator, c.sqlMigrationSeparator)
	setIf(KeySQLMigrationSuffixes, strings.Join(c.sqlMigrationSuffixes, ","))

	props[KeyIgnoreMissingMigrations] = strconv.FormatBool(c.ignoreMissingMigrations)
	props[KeyIgnoreIgnoredMigrations] = strconv.FormatBool(c.ignoreIgnoredMigrations)
	props[KeyIgnorePendingMigrations] = strconv.FormatBool(c.ignorePendingMigrations)
	props[KeyIgnoreFutureMigrations] = strconv.FormatBool(c.ignoreFutureMigrations)

	props[KeyValidateMigrationNaming] = strconv.FormatBool(c.validateMigrationNaming)
	props[KeyValidateOnMigrate] = strconv.FormatBool(c.validateOnMigrate)
	props[KeyCleanOnValidationError] = strconv.FormatBool(c.cleanOnValidationError)
	props[KeyCleanDisabled] = strconv.FormatBool(c.cleanDisabled)

	if !c.baselineVersion.IsZero() {
		props[KeyBaselineVersion] = c.baselineVersion.String()
	}
	setIf(KeyBaselineDescription, c.baselineDescription)
	props[KeyBaselineOnMigrate] = strconv.FormatBool(c.baselineOnMigrate)

	props[KeyOutOfOrder] = strconv.FormatBool(c.outOfOrder)
	props[KeySkipDefaultCallbacks] = strconv.FormatBool(c.skipDefaultCallbacks)
	props[KeySkipDefaultResolvers] = strconv.FormatBool(c.skipDefaultResolvers)

	props[KeyMixed] = strconv.FormatBool(c.mixed)
	props[KeyGroup] = strconv.FormatBool(c.group)
	setIf(KeyInstalledBy, c.installedBy)
	props[KeyCreateSchemas] = strconv.FormatBool(c.createSchemas)

	if c.edition >= EditionTeams {
		if len(c.cherryPick) > 0 {
			patterns := make([]string, 0, len(c.cherryPick))
			for _, p := range c.cherryPick {
				patterns = append(patterns, p.String())
			}
			props[KeyCherryPick] = strings.Join(patterns, ",")
		}
		setIf(KeyUndoSQLMigrationPrefix, c.undoSQLMigrationPrefix)
		setIf(KeyErrorOverrides, strings.Join(c.errorOverrides, ","))
		props[KeyStream] = strconv.FormatBool(c.stream)
		props[KeyBatch] = strconv.FormatBool(c.batch)
		props[KeyOutputQueryResults] = strconv.FormatBool(c.outputQueryResults)
		props[KeySkipExecutingMigrations] = strconv.FormatBool(c.skipExecutingMigrations)
		setIf(KeyLicenseKey, c.licenseKey)
		for name, value := range c.driverProps {
			props[DriverPropsPrefix+name] = value
		}

		props[KeyOracleSQLPlus] = strconv.FormatBool(c.oracleSQLPlus)
		props[KeyOracleSQLPlusWarn] = strconv.FormatBool(c.oracleSQLPlusWarn)
		setIf(KeyOracleKerberosConfigFile, c.oracleKerberosConfigFile)
		setIf(KeyOracleKerberosCacheFile, c.oracleKerberosCacheFile)

		setIf(KeyDB2ZDatabaseName, c.db2zDatabaseName)

		setIf(KeyVaultURL, c.vaultURL)
		setIf(KeyVaultToken, c.vaultToken)
		setIf(KeyVaultSecrets, strings.Join(c.vaultSecrets, ","))
	}

	return props
}

// Scan decodes the exported configuration into target, a pointer to a
// struct tagged with `drift:"..."` field tags. Nested keys such as
// "drift.placeholders.env" land in map- or struct-valued fields, and
// comma-joined lists decode into string slices.
func (c *Config) Scan(target any) error {
	nested := make(map[string]any)
	for key, value := range c.Export() {
		setNestedValue(nested, strings.TrimPrefix(key, KnownPrefix), value)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "drift",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return errorf("unable to create decoder: %v", err)
	}
	if err := decoder.Decode(nested); err != nil {
		return errorf("unable to decode configuration: %v", err)
	}
	return nil
}

// setNestedValue sets a value in a nested map using a dot-notation path,
// creating intermediate maps as needed.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested

	for _, segment := range segments[:len(segments)-1] {
		next, exists := current[segment].(map[string]any)
		if !exists {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}
