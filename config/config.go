// File: lixenwraith/drift/config/config.go
package config

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/drift"
)

// Defaults applied by New.
const (
	DefaultLocation            = "db/migration"
	DefaultEncoding            = "UTF-8"
	DefaultTable               = "drift_schema_history"
	DefaultPlaceholderPrefix   = "${"
	DefaultPlaceholderSuffix   = "}"
	DefaultSQLMigrationPrefix  = "V"
	DefaultUndoMigrationPrefix = "U"
	DefaultRepeatablePrefix    = "R"
	DefaultMigrationSeparator  = "__"
	DefaultMigrationSuffix     = ".sql"
	DefaultBaselineDescription = "<< Drift Baseline >>"
	DefaultLockRetryCount      = 50
)

// Options configures a Config at construction. The zero value selects the
// community edition, a disabled logger and an empty registry.
type Options struct {
	// Logger receives warnings from the configuration layer, such as the
	// incomplete-connection warning. The zero value discards everything.
	Logger zerolog.Logger

	// Edition selects the capability tier the gated setters run at.
	Edition Edition

	// Registry resolves resolver and callback names supplied through
	// properties. Captured once; later registry mutations are not observed
	// as a contract.
	Registry *drift.Registry
}

// Config is the assembled, typed configuration consumed by the migration
// engine. It is built through its setters, through FromConfig, or through
// ApplyProps, and is not safe for concurrent mutation; callers serialize
// all writes and complete assembly before the engine reads it.
type Config struct {
	logger   zerolog.Logger
	edition  Edition
	registry *drift.Registry

	// Scalar connection quadruplet, mutually exclusive with conn as the
	// source of truth. Setting one side invalidates the other.
	driver   string
	url      string
	user     string
	password string
	conn     *Connection

	connectRetries int
	initSQL        string
	lockRetryCount int

	locations []string
	encoding  string

	defaultSchema string
	schemas       []string
	table         string
	tablespace    string

	target     drift.Version
	cherryPick []drift.Pattern

	placeholderReplacement bool
	placeholders           map[string]string
	placeholderPrefix      string
	placeholderSuffix      string

	sqlMigrationPrefix           string
	undoSQLMigrationPrefix       string
	repeatableSQLMigrationPrefix string
	sqlMigrationSeparator        string
	sqlMigrationSuffixes         []string

	ignoreMissingMigrations bool
	ignoreIgnoredMigrations bool
	ignorePendingMigrations bool
	ignoreFutureMigrations  bool

	validateMigrationNaming bool
	validateOnMigrate       bool
	cleanOnValidationError  bool
	cleanDisabled           bool

	baselineVersion     drift.Version
	baselineDescription string
	baselineOnMigrate   bool

	outOfOrder              bool
	skipExecutingMigrations bool

	callbacks            []drift.Callback
	skipDefaultCallbacks bool
	resolvers            []drift.Resolver
	skipDefaultResolvers bool

	mixed         bool
	group         bool
	installedBy   string
	createSchemas bool

	dryRunOutput       io.Writer
	errorOverrides     []string
	stream             bool
	batch              bool
	outputQueryResults bool
	licenseKey         string
	driverProps        map[string]string

	oracleSQLPlus            bool
	oracleSQLPlusWarn        bool
	oracleKerberosConfigFile string
	oracleKerberosCacheFile  string

	db2zDatabaseName string

	vaultURL     string
	vaultToken   string
	vaultSecrets []string
}

// New creates a community-edition Config with schema defaults and a
// disabled logger.
func New() *Config {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a Config with schema defaults, capturing the
// logger, edition and registry for the lifetime of the instance.
func NewWithOptions(opts Options) *Config {
	if opts.Registry == nil {
		opts.Registry = drift.NewRegistry()
	}

	return &Config{
		logger:   opts.Logger,
		edition:  opts.Edition,
		registry: opts.Registry,

		locations: []string{DefaultLocation},
		encoding:  DefaultEncoding,
		table:     DefaultTable,

		placeholderReplacement: true,
		placeholders:           make(map[string]string),
		placeholderPrefix:      DefaultPlaceholderPrefix,
		placeholderSuffix:      DefaultPlaceholderSuffix,

		sqlMigrationPrefix:           DefaultSQLMigrationPrefix,
		undoSQLMigrationPrefix:       DefaultUndoMigrationPrefix,
		repeatableSQLMigrationPrefix: DefaultRepeatablePrefix,
		sqlMigrationSeparator:        DefaultMigrationSeparator,
		sqlMigrationSuffixes:         []string{DefaultMigrationSuffix},

		ignoreFutureMigrations: true,
		validateOnMigrate:      true,
		outputQueryResults:     true,
		createSchemas:          true,
		lockRetryCount:         DefaultLockRetryCount,

		baselineVersion:     drift.MustVersion("1"),
		baselineDescription: DefaultBaselineDescription,
	}
}

// Edition returns the capability tier the instance was constructed with.
func (c *Config) Edition() Edition {
	return c.edition
}

// Registry returns the registry captured at construction.
func (c *Config) Registry() *drift.Registry {
	return c.registry
}
