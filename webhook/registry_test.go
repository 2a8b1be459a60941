package webhook

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryOrder(t *testing.T) {
	registry := NewRegistry()
	noop := func(context.Context, *Context, interface{}) error {
		return nil
	}
	registry.Register(EventIssues, noop, "first")
	registry.Register(EventIssues, noop, "second")
	registry.Register(EventIssues, noop, "third")
	registry.Register(EventPush, noop, nil)

	registrations := registry.registrations(EventIssues)
	require.Len(t, registrations, 3)
	require.Equal(t, "first", registrations[0].extra)
	require.Equal(t, "second", registrations[1].extra)
	require.Equal(t, "third", registrations[2].extra)
	require.Equal(t, 1, registry.Len(EventPush))
	require.Equal(t, 0, registry.Len(EventRelease))
}

func TestRegistryClear(t *testing.T) {
	registry := NewRegistry()
	noop := func(context.Context, *Context, interface{}) error {
		return nil
	}
	registry.Register(EventIssues, noop, nil)
	registry.Register(EventPush, noop, nil)
	registry.Clear()
	require.Equal(t, 0, registry.Len(EventIssues))
	require.Equal(t, 0, registry.Len(EventPush))
}

func TestRegistryConcurrentRegistration(t *testing.T) {
	registry := NewRegistry()
	noop := func(context.Context, *Context, interface{}) error {
		return nil
	}
	var wg sync.WaitGroup
	const goroutines = 16
	const perGoroutine = 25
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				registry.Register(EventIssues, noop, nil)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, goroutines*perGoroutine, registry.Len(EventIssues))
}

func TestRegistrySnapshotIsolation(t *testing.T) {
	registry := NewRegistry()
	noop := func(context.Context, *Context, interface{}) error {
		return nil
	}
	registry.Register(EventIssues, noop, "first")
	snapshot := registry.registrations(EventIssues)
	registry.Register(EventIssues, noop, "second")
	require.Len(t, snapshot, 1)
}
