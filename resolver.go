// File: lixenwraith/drift/resolver.go
package drift

// Migration describes a single resolved migration as seen by the engine.
type Migration struct {
	// Version is unset for repeatable migrations.
	Version     Version
	Description string

	// Script is the location-relative path of the migration source.
	Script string

	// Checksum guards against modification of applied migrations.
	Checksum int32
}

// Resolver discovers migrations from a configured location. Custom
// resolvers run in addition to the built-in ones unless the configuration
// skips the defaults.
type Resolver interface {
	// Resolve returns the migrations available to the engine, unordered.
	Resolve() ([]Migration, error)
}
