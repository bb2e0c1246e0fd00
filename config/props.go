// File: lixenwraith/drift/config/props.go
package config

import (
	"strings"
)

// ApplyProps merges a flat string property map into the configuration.
// Recognized keys are coerced to their typed form and applied through the
// same setters the programmatic API uses, so validation and edition gating
// hold on every path. The input map is never mutated.
//
// The connection descriptor is re-derived last, after every scalar and the
// driverProperties namespace have been absorbed, so ordering inside one
// map cannot change the outcome. Leftover keys under the drift namespace
// fail the whole pass; keys outside it are ignored.
func (c *Config) ApplyProps(props map[string]string) error {
	work := copyMap(props)
	if work == nil {
		work = make(map[string]string)
	}
	c.logger.Debug().Int("keys", len(work)).Msg("applying configuration properties")

	// The connection scalars invalidate any previously supplied descriptor
	// individually, then participate in the re-derivation below.
	driverProp, driverSet := removeKey(work, KeyDriver)
	if driverSet {
		c.conn = nil
		c.driver = driverProp
	}
	urlProp, urlSet := removeKey(work, KeyURL)
	if urlSet {
		c.conn = nil
		c.url = urlProp
	}
	userProp, userSet := removeKey(work, KeyUser)
	if userSet {
		c.conn = nil
		c.user = userProp
	}
	passwordProp, passwordSet := removeKey(work, KeyPassword)
	if passwordSet {
		c.conn = nil
		c.password = passwordProp
	}

	if v, present, err := removeInt(work, KeyConnectRetries); err != nil {
		return err
	} else if present {
		if err := c.SetConnectRetries(v); err != nil {
			return err
		}
	}
	if v, ok := removeKey(work, KeyInitSQL); ok {
		c.SetInitSQL(v)
	}
	if v, present, err := removeInt(work, KeyLockRetryCount); err != nil {
		return err
	} else if present {
		if err := c.SetLockRetryCount(v); err != nil {
			return err
		}
	}

	if v, ok := removeKey(work, KeyLocations); ok {
		c.SetLocations(tokenize(v, ",")...)
	}
	if v, ok := removeKey(work, KeyEncoding); ok {
		if err := c.SetEncoding(v); err != nil {
			return err
		}
	}

	if v, ok := removeKey(work, KeyDefaultSchema); ok {
		c.SetDefaultSchema(v)
	}
	if v, ok := removeKey(work, KeySchemas); ok {
		c.SetSchemas(tokenize(v, ",")...)
	}
	if v, ok := removeKey(work, KeyTable); ok {
		c.SetTable(v)
	}
	if v, ok := removeKey(work, KeyTablespace); ok {
		c.SetTablespace(v)
	}

	if v, present, err := removeBool(work, KeyPlaceholderReplacement); err != nil {
		return err
	} else if present {
		c.SetPlaceholderReplacement(v)
	}
	if v, ok := removeKey(work, KeyPlaceholderPrefix); ok {
		if err := c.SetPlaceholderPrefix(v); err != nil {
			return err
		}
	}
	if v, ok := removeKey(work, KeyPlaceholderSuffix); ok {
		if err := c.SetPlaceholderSuffix(v); err != nil {
			return err
		}
	}

	if v, ok := removeKey(work, KeySQLMigrationPrefix); ok {
		c.SetSQLMigrationPrefix(v)
	}
	if v, ok := removeKey(work, KeyUndoSQLMigrationPrefix); ok {
		if err := c.SetUndoSQLMigrationPrefix(v); err != nil {
			return err
		}
	}
	if v, ok := removeKey(work, KeyRepeatableSQLMigrationPrefix); ok {
		c.SetRepeatableSQLMigrationPrefix(v)
	}
	if v, ok := removeKey(work, KeySQLMigrationSeparator); ok {
		if err := c.SetSQLMigrationSeparator(v); err != nil {
			return err
		}
	}
	if v, ok := removeKey(work, KeySQLMigrationSuffixes); ok {
		c.SetSQLMigrationSuffixes(tokenize(v, ",")...)
	}

	if v, present, err := removeBool(work, KeyCleanOnValidationError); err != nil {
		return err
	} else if present {
		c.SetCleanOnValidationError(v)
	}
	if v, present, err := removeBool(work, KeyCleanDisabled); err != nil {
		return err
	} else if present {
		c.SetCleanDisabled(v)
	}
	if v, present, err := removeBool(work, KeyValidateOnMigrate); err != nil {
		return err
	} else if present {
		c.SetValidateOnMigrate(v)
	}
	if v, present, err := removeBool(work, KeyValidateMigrationNaming); err != nil {
		return err
	} else if present {
		c.SetValidateMigrationNaming(v)
	}

	if v, ok := removeKey(work, KeyBaselineVersion); ok {
		if err := c.SetBaselineVersionString(v); err != nil {
			return err
		}
	}
	if v, ok := removeKey(work, KeyBaselineDescription); ok {
		c.SetBaselineDescription(v)
	}
	if v, present, err := removeBool(work, KeyBaselineOnMigrate); err != nil {
		return err
	} else if present {
		c.SetBaselineOnMigrate(v)
	}

	if v, present, err := removeBool(work, KeyIgnoreMissingMigrations); err != nil {
		return err
	} else if present {
		c.SetIgnoreMissingMigrations(v)
	}
	if v, present, err := removeBool(work, KeyIgnoreIgnoredMigrations); err != nil {
		return err
	} else if present {
		c.SetIgnoreIgnoredMigrations(v)
	}
	if v, present, err := removeBool(work, KeyIgnorePendingMigrations); err != nil {
		return err
	} else if present {
		c.SetIgnorePendingMigrations(v)
	}
	if v, present, err := removeBool(work, KeyIgnoreFutureMigrations); err != nil {
		return err
	} else if present {
		c.SetIgnoreFutureMigrations(v)
	}

	if v, ok := removeKey(work, KeyTarget); ok {
		if err := c.SetTargetString(v); err != nil {
			return err
		}
	}
	if v, ok := removeKey(work, KeyCherryPick); ok {
		if err := c.SetCherryPickStrings(tokenize(v, ",")...); err != nil {
			return err
		}
	}
	if v, present, err := removeBool(work, KeyOutOfOrder); err != nil {
		return err
	} else if present {
		c.SetOutOfOrder(v)
	}
	if v, present, err := removeBool(work, KeySkipExecutingMigrations); err != nil {
		return err
	} else if present {
		if err := c.SetSkipExecutingMigrations(v); err != nil {
			return err
		}
	}

	if v, ok := removeKey(work, KeyResolvers); ok {
		if err := c.SetResolversByName(tokenize(v, ",")...); err != nil {
			return err
		}
	}
	if v, present, err := removeBool(work, KeySkipDefaultResolvers); err != nil {
		return err
	} else if present {
		c.SetSkipDefaultResolvers(v)
	}
	if v, ok := removeKey(work, KeyCallbacks); ok {
		if err := c.SetCallbacksByName(tokenize(v, ",")...); err != nil {
			return err
		}
	}
	if v, present, err := removeBool(work, KeySkipDefaultCallbacks); err != nil {
		return err
	} else if present {
		c.SetSkipDefaultCallbacks(v)
	}

	if v, present, err := removeBool(work, KeyMixed); err != nil {
		return err
	} else if present {
		c.SetMixed(v)
	}
	if v, present, err := removeBool(work, KeyGroup); err != nil {
		return err
	} else if present {
		c.SetGroup(v)
	}
	if v, ok := removeKey(work, KeyInstalledBy); ok {
		c.SetInstalledBy(v)
	}
	if v, present, err := removeBool(work, KeyCreateSchemas); err != nil {
		return err
	} else if present {
		c.SetCreateSchemas(v)
	}

	if v, ok := removeKey(work, KeyDryRunOutput); ok {
		if err := c.SetDryRunOutputFile(v); err != nil {
			return err
		}
	}
	if v, ok := removeKey(work, KeyErrorOverrides); ok {
		if err := c.SetErrorOverrides(tokenize(v, ",")...); err != nil {
			return err
		}
	}
	if v, present, err := removeBool(work, KeyStream); err != nil {
		return err
	} else if present {
		if err := c.SetStream(v); err != nil {
			return err
		}
	}
	if v, present, err := removeBool(work, KeyBatch); err != nil {
		return err
	} else if present {
		if err := c.SetBatch(v); err != nil {
			return err
		}
	}
	if v, present, err := removeBool(work, KeyOutputQueryResults); err != nil {
		return err
	} else if present {
		if err := c.SetOutputQueryResults(v); err != nil {
			return err
		}
	}
	if v, ok := removeKey(work, KeyLicenseKey); ok {
		c.SetLicenseKey(v)
	}

	if v, present, err := removeBool(work, KeyOracleSQLPlus); err != nil {
		return err
	} else if present {
		if err := c.SetOracleSQLPlus(v); err != nil {
			return err
		}
	}
	if v, present, err := removeBool(work, KeyOracleSQLPlusWarn); err != nil {
		return err
	} else if present {
		if err := c.SetOracleSQLPlusWarn(v); err != nil {
			return err
		}
	}
	if v, ok := removeKey(work, KeyOracleKerberosConfigFile); ok {
		if err := c.SetOracleKerberosConfigFile(v); err != nil {
			return err
		}
	}
	if v, ok := removeKey(work, KeyOracleKerberosCacheFile); ok {
		if err := c.SetOracleKerberosCacheFile(v); err != nil {
			return err
		}
	}

	if v, ok := removeKey(work, KeyDB2ZDatabaseName); ok {
		if err := c.SetDB2ZDatabaseName(v); err != nil {
			return err
		}
	}

	if v, ok := removeKey(work, KeyVaultURL); ok {
		if err := c.SetVaultURL(v); err != nil {
			return err
		}
	}
	if v, ok := removeKey(work, KeyVaultToken); ok {
		if err := c.SetVaultToken(v); err != nil {
			return err
		}
	}
	if v, ok := removeKey(work, KeyVaultSecrets); ok {
		if err := c.SetVaultSecrets(tokenize(v, ",")...); err != nil {
			return err
		}
	}

	// Namespaces merge cumulatively across passes rather than replacing
	// the maps wholesale. The driverProperties namespace bypasses the
	// edition gate; only the direct SetDriverProps API is gated.
	placeholderProps, work := extractNamespace(work, PlaceholdersPrefix)
	for name, value := range placeholderProps {
		if c.placeholders == nil {
			c.placeholders = make(map[string]string)
		}
		c.placeholders[name] = value
	}
	driverProps, work := extractNamespace(work, DriverPropsPrefix)
	for name, value := range driverProps {
		if c.driverProps == nil {
			c.driverProps = make(map[string]string)
		}
		c.driverProps[name] = value
	}

	// Re-derive the connection descriptor only when this pass actually
	// touched it: the final url must be usable and at least one of the
	// four scalars must have arrived with a non-blank value.
	if hasText(c.url) &&
		(hasText(urlProp) || hasText(driverProp) || hasText(userProp) || hasText(passwordProp)) {
		c.conn = c.deriveConnection(nil)
	}

	var unknown []string
	for key := range work {
		if strings.HasPrefix(key, KnownPrefix) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		return newUnrecognizedPropertiesError(unknown)
	}
	return nil
}

// hasText reports whether s contains any non-whitespace character.
func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}
