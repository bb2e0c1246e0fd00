// File: lixenwraith/drift/config/clone.go
package config

// FromConfig copies every value from src into the receiver, overwriting
// what was there. Values travel through the regular setters so validation
// holds, with one exception: the scalar connection parameters are copied
// verbatim at the end so the source's in-between state (scalars recorded,
// descriptor not yet derived) survives the copy. The driver name is
// carried by the descriptor alone.
//
// Edition-gated values are copied only when the receiver runs at the
// Teams tier; a community receiver drops them silently, the same way a
// community assembly would never have produced them.
func (c *Config) FromConfig(src Reader) error {
	if err := c.SetConnectRetries(src.ConnectRetries()); err != nil {
		return err
	}
	c.SetInitSQL(src.InitSQL())
	if err := c.SetLockRetryCount(src.LockRetryCount()); err != nil {
		return err
	}

	c.SetLocations(src.Locations()...)
	if err := c.SetEncoding(src.Encoding()); err != nil {
		return err
	}

	c.SetDefaultSchema(src.DefaultSchema())
	c.SetSchemas(src.Schemas()...)
	c.SetTable(src.Table())
	c.SetTablespace(src.Tablespace())

	c.SetTarget(src.Target())

	c.SetPlaceholderReplacement(src.PlaceholderReplacement())
	c.SetPlaceholders(src.Placeholders())
	if err := c.SetPlaceholderPrefix(src.PlaceholderPrefix()); err != nil {
		return err
	}
	if err := c.SetPlaceholderSuffix(src.PlaceholderSuffix()); err != nil {
		return err
	}

	c.SetSQLMigrationPrefix(src.SQLMigrationPrefix())
	c.SetRepeatableSQLMigrationPrefix(src.RepeatableSQLMigrationPrefix())
	if err := c.SetSQLMigrationSeparator(src.SQLMigrationSeparator()); err != nil {
		return err
	}
	c.SetSQLMigrationSuffixes(src.SQLMigrationSuffixes()...)

	c.SetIgnoreMissingMigrations(src.IgnoreMissingMigrations())
	c.SetIgnoreIgnoredMigrations(src.IgnoreIgnoredMigrations())
	c.SetIgnorePendingMigrations(src.IgnorePendingMigrations())
	c.SetIgnoreFutureMigrations(src.IgnoreFutureMigrations())

	c.SetValidateMigrationNaming(src.ValidateMigrationNaming())
	c.SetValidateOnMigrate(src.ValidateOnMigrate())
	c.SetCleanOnValidationError(src.CleanOnValidationError())
	c.SetCleanDisabled(src.CleanDisabled())

	c.SetBaselineVersion(src.BaselineVersion())
	c.SetBaselineDescription(src.BaselineDescription())
	c.SetBaselineOnMigrate(src.BaselineOnMigrate())

	c.SetOutOfOrder(src.OutOfOrder())

	c.SetCallbacks(src.Callbacks()...)
	c.SetSkipDefaultCallbacks(src.SkipDefaultCallbacks())
	c.SetResolvers(src.Resolvers()...)
	c.SetSkipDefaultResolvers(src.SkipDefaultResolvers())

	c.SetMixed(src.Mixed())
	c.SetGroup(src.Group())
	c.SetInstalledBy(src.InstalledBy())
	c.SetCreateSchemas(src.CreateSchemas())

	if c.edition >= EditionTeams {
		if err := c.SetCherryPick(src.CherryPick()...); err != nil {
			return err
		}
		if err := c.SetUndoSQLMigrationPrefix(src.UndoSQLMigrationPrefix()); err != nil {
			return err
		}
		if err := c.SetSkipExecutingMigrations(src.SkipExecutingMigrations()); err != nil {
			return err
		}
		if src.DryRunOutput() != nil {
			if err := c.SetDryRunOutput(src.DryRunOutput()); err != nil {
				return err
			}
		}
		if err := c.SetErrorOverrides(src.ErrorOverrides()...); err != nil {
			return err
		}
		if err := c.SetStream(src.Stream()); err != nil {
			return err
		}
		if err := c.SetBatch(src.Batch()); err != nil {
			return err
		}
		if err := c.SetOutputQueryResults(src.OutputQueryResults()); err != nil {
			return err
		}
		if err := c.SetDriverProps(src.DriverProps()); err != nil {
			return err
		}
		c.SetLicenseKey(src.LicenseKey())
		if err := c.SetOracleSQLPlus(src.OracleSQLPlus()); err != nil {
			return err
		}
		if err := c.SetOracleSQLPlusWarn(src.OracleSQLPlusWarn()); err != nil {
			return err
		}
		if err := c.SetOracleKerberosConfigFile(src.OracleKerberosConfigFile()); err != nil {
			return err
		}
		if err := c.SetOracleKerberosCacheFile(src.OracleKerberosCacheFile()); err != nil {
			return err
		}
		if err := c.SetDB2ZDatabaseName(src.DB2ZDatabaseName()); err != nil {
			return err
		}
		if err := c.SetVaultURL(src.VaultURL()); err != nil {
			return err
		}
		if err := c.SetVaultToken(src.VaultToken()); err != nil {
			return err
		}
		if err := c.SetVaultSecrets(src.VaultSecrets()...); err != nil {
			return err
		}
	}

	// SetConnection clears the scalar quadruplet, so the descriptor goes
	// first and the scalars are restored verbatim afterwards.
	c.SetConnection(src.Connection())
	c.url = src.URL()
	c.user = src.User()
	c.password = src.Password()

	return nil
}
