package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmill/taskmill/internal/config"
	"github.com/taskmill/taskmill/internal/task"
)

func noop(ctx context.Context, cfg *config.Values, argv map[string]string) error {
	return nil
}

func TestRegisterAndResolve(t *testing.T) {
	r := New()
	r.Register(&task.Task{Name: "hello", Description: "says hello", Run: noop})

	got, ok := r.Resolve("hello")
	require.True(t, ok)
	assert.Equal(t, "hello", got.Name)
	assert.Equal(t, "says hello", got.Description)

	_, ok = r.Resolve("absent")
	assert.False(t, ok)
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	r := New()
	r.Register(&task.Task{Name: "hello", Run: noop})

	require.Panics(t, func() {
		r.Register(&task.Task{Name: "hello", Run: noop})
	})
}

func TestEmptyNamePanics(t *testing.T) {
	r := New()
	require.Panics(t, func() {
		r.Register(&task.Task{Run: noop})
	})
}

func TestAllListsEveryRegisteredTask(t *testing.T) {
	r := New()
	r.Register(&task.Task{Name: "a", Run: noop})
	r.Register(&task.Task{Name: "b", Run: noop})

	all := r.All()
	assert.Len(t, all, 2)
	assert.Contains(t, all, "a")
	assert.Contains(t, all, "b")
}
