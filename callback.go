// File: lixenwraith/drift/callback.go
package drift

// Event identifies a point in the migration lifecycle at which callbacks
// fire.
type Event string

const (
	EventBeforeMigrate  Event = "beforeMigrate"
	EventAfterMigrate   Event = "afterMigrate"
	EventBeforeEachStep Event = "beforeEachMigrate"
	EventAfterEachStep  Event = "afterEachMigrate"
	EventBeforeClean    Event = "beforeClean"
	EventAfterClean     Event = "afterClean"
	EventBeforeValidate Event = "beforeValidate"
	EventAfterValidate  Event = "afterValidate"
	EventBeforeBaseline Event = "beforeBaseline"
	EventAfterBaseline  Event = "afterBaseline"
)

// Callback receives lifecycle notifications from the migration engine.
// Implementations are supplied through the configuration, either as
// instances or by registry name.
type Callback interface {
	// Supports reports whether the callback wants to handle the event.
	Supports(event Event) bool

	// Handle is invoked for each supported event. Returning an error aborts
	// the operation that triggered the event.
	Handle(event Event) error
}
