package hook_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cascade/core/hook"
	"github.com/dmitrymomot/cascade/core/inject"
)

func record(order *[]string, name string) hook.Callback {
	return func(ctx context.Context, s *inject.State) error {
		*order = append(*order, name)
		return nil
	}
}

func TestRegistry_DeriveOrdering(t *testing.T) {
	t.Parallel()

	var order []string
	reg := hook.NewRegistry()
	for _, name := range []string{"a", "b", "c"} {
		reg.Add(hook.Hook{
			OnRequest:  record(&order, name+".request"),
			OnResponse: record(&order, name+".response"),
			OnError:    record(&order, name+".error"),
		})
	}

	onRequest, onResponse, onError := reg.Derive()
	require.Len(t, onRequest, 3)
	require.Len(t, onResponse, 3)
	require.Len(t, onError, 3)

	ctx := context.Background()
	s := inject.NewState()
	for _, cb := range onRequest {
		require.NoError(t, cb(ctx, s))
	}
	for _, cb := range onResponse {
		require.NoError(t, cb(ctx, s))
	}
	for _, cb := range onError {
		require.NoError(t, cb(ctx, s))
	}

	assert.Equal(t, []string{
		"a.request", "b.request", "c.request",
		"c.response", "b.response", "a.response",
		"c.error", "b.error", "a.error",
	}, order)
}

func TestRegistry_DeriveSkipsNilCallbacks(t *testing.T) {
	t.Parallel()

	var order []string
	reg := hook.NewRegistry().
		Add(hook.Hook{OnRequest: record(&order, "request-only")}).
		Add(hook.Hook{OnError: record(&order, "error-only")})

	onRequest, onResponse, onError := reg.Derive()

	assert.Len(t, onRequest, 1)
	assert.Empty(t, onResponse)
	assert.Len(t, onError, 1)
}

func TestRegistry_FactoryInvokedPerDerivation(t *testing.T) {
	t.Parallel()

	instantiated := 0
	reg := hook.NewRegistry().AddFactory(func() hook.Hook {
		instantiated++
		return hook.Hook{
			OnRequest: func(ctx context.Context, s *inject.State) error { return nil },
		}
	})

	reg.Derive()
	reg.Derive()
	reg.Derive()

	assert.Equal(t, 3, instantiated)
}

func TestRegistry_FactoryCarriesPerDerivationState(t *testing.T) {
	t.Parallel()

	reg := hook.NewRegistry().AddFactory(func() hook.Hook {
		calls := 0
		return hook.Hook{
			OnRequest: func(ctx context.Context, s *inject.State) error {
				calls++
				s.Set("calls", calls)
				return nil
			},
		}
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		onRequest, _, _ := reg.Derive()
		s := inject.NewState()
		require.NoError(t, onRequest[0](ctx, s))

		// Fresh instance per derivation means the counter restarts.
		calls, ok := inject.Slot[int](s, "calls")
		require.True(t, ok)
		assert.Equal(t, 1, calls)
	}
}

func TestRegistry_Len(t *testing.T) {
	t.Parallel()

	reg := hook.NewRegistry()
	assert.Equal(t, 0, reg.Len())

	reg.Add(hook.Hook{}).AddFactory(func() hook.Hook { return hook.Hook{} })
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_EmptyDerive(t *testing.T) {
	t.Parallel()

	onRequest, onResponse, onError := hook.NewRegistry().Derive()
	assert.Empty(t, onRequest)
	assert.Empty(t, onResponse)
	assert.Empty(t, onError)
}
