// FILE: lixenwraith/drift/registry_test.go
package drift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCallback struct {
	events []Event
}

func (c *recordingCallback) Supports(Event) bool { return true }
func (c *recordingCallback) Handle(event Event) error {
	c.events = append(c.events, event)
	return nil
}

type staticResolver struct {
	migrations []Migration
}

func (r staticResolver) Resolve() ([]Migration, error) { return r.migrations, nil }

// TestRegistry tests name-based lookup of callbacks and resolvers
func TestRegistry(t *testing.T) {
	t.Run("CallbackLookup", func(t *testing.T) {
		reg := NewRegistry()
		reg.RegisterCallback("audit", func() Callback { return &recordingCallback{} })

		cb, err := reg.Callback("audit")
		require.NoError(t, err)
		require.NotNil(t, cb)

		require.NoError(t, cb.Handle(EventBeforeMigrate))
		assert.Equal(t, []Event{EventBeforeMigrate}, cb.(*recordingCallback).events)
	})

	t.Run("EachLookupInstantiates", func(t *testing.T) {
		reg := NewRegistry()
		reg.RegisterCallback("audit", func() Callback { return &recordingCallback{} })

		first, err := reg.Callback("audit")
		require.NoError(t, err)
		second, err := reg.Callback("audit")
		require.NoError(t, err)
		assert.NotSame(t, first, second)
	})

	t.Run("ResolverLookup", func(t *testing.T) {
		reg := NewRegistry()
		reg.RegisterResolver("static", func() Resolver {
			return staticResolver{migrations: []Migration{{Version: MustVersion("1"), Description: "init"}}}
		})

		r, err := reg.Resolver("static")
		require.NoError(t, err)

		migrations, err := r.Resolve()
		require.NoError(t, err)
		require.Len(t, migrations, 1)
		assert.Equal(t, "init", migrations[0].Description)
	})

	t.Run("UnknownNamesListRegistrations", func(t *testing.T) {
		reg := NewRegistry()
		reg.RegisterCallback("audit", func() Callback { return &recordingCallback{} })
		reg.RegisterCallback("notify", func() Callback { return &recordingCallback{} })

		_, err := reg.Callback("missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown callback "missing"`)
		assert.Contains(t, err.Error(), "audit")
		assert.Contains(t, err.Error(), "notify")

		_, err = reg.Resolver("missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown resolver "missing"`)
	})

	t.Run("ReRegistrationReplaces", func(t *testing.T) {
		reg := NewRegistry()
		reg.RegisterResolver("r", func() Resolver { return staticResolver{} })
		reg.RegisterResolver("r", func() Resolver {
			return staticResolver{migrations: []Migration{{Version: MustVersion("2"), Description: "second"}}}
		})

		r, err := reg.Resolver("r")
		require.NoError(t, err)
		migrations, err := r.Resolve()
		require.NoError(t, err)
		require.Len(t, migrations, 1)
		assert.Equal(t, "second", migrations[0].Description)
	})
}
