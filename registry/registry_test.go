package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuawatson/rom/option"
	"github.com/joshuawatson/rom/registry"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("lookup finds registered definitions", func(t *testing.T) {
		t.Parallel()

		type widget struct{ option.Host }

		d := registry.Register[widget](option.New("size"))
		got, ok := registry.For[widget]()
		require.True(t, ok)
		assert.Same(t, d, got)
		assert.Equal(t, []string{"size"}, got.Names())
	})

	t.Run("unregistered lookup misses", func(t *testing.T) {
		t.Parallel()

		type never struct{ option.Host }

		_, ok := registry.For[never]()
		assert.False(t, ok)
	})

	t.Run("double registration panics", func(t *testing.T) {
		t.Parallel()

		type once struct{ option.Host }

		registry.Register[once]()
		assert.Panics(t, func() { registry.Register[once]() })
	})
}

func TestDerive(t *testing.T) {
	t.Parallel()

	t.Run("clone is independent of the base", func(t *testing.T) {
		t.Parallel()

		type animal struct{ option.Host }
		type dog struct{ animal }

		base := registry.Register[animal](
			option.New("name"),
			option.New("legs", option.Default(4)),
		)
		sub := registry.Derive[animal, dog](
			option.New("legs", option.Default(3)),
			option.New("breed"),
		)

		assert.Equal(t, []string{"name", "legs"}, base.Names())
		assert.Equal(t, []string{"name", "legs", "breed"}, sub.Names())

		bo, _ := base.Get("legs")
		so, _ := sub.Get("legs")
		assert.Equal(t, 4, bo.ResolveDefault(nil))
		assert.Equal(t, 3, so.ResolveDefault(nil))
	})

	t.Run("unregistered base panics", func(t *testing.T) {
		t.Parallel()

		type ghost struct{ option.Host }
		type haunted struct{ ghost }

		assert.Panics(t, func() { registry.Derive[ghost, haunted]() })
	})

	t.Run("non-embedding subtype panics", func(t *testing.T) {
		t.Parallel()

		type parent struct{ option.Host }
		type stranger struct{ option.Host }

		registry.Register[parent]()
		assert.Panics(t, func() { registry.Derive[parent, stranger]() })
	})
}

func TestConstruct(t *testing.T) {
	t.Parallel()

	t.Run("resolves the owner's dynamic type", func(t *testing.T) {
		t.Parallel()

		type gadget struct{ option.Host }

		registry.Register[gadget](
			option.New("label", option.Type(option.Text()), option.Reader()),
		)

		g := &gadget{}
		require.NoError(t, registry.Construct(g, map[string]any{"label": "dial"}))
		assert.Equal(t, "dial", g.Reader("label"))
	})

	t.Run("unregistered owner fails", func(t *testing.T) {
		t.Parallel()

		type orphan struct{ option.Host }

		err := registry.Construct(&orphan{}, nil)
		require.ErrorIs(t, err, registry.ErrUnregisteredType)
	})
}
