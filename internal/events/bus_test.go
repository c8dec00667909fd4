package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusEmit(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers only to the matching topic", func(t *testing.T) {
		bus := NewInMemoryBus(nil)
		var got []Change
		bus.Subscribe(TopicAssignmentChanged, func(_ context.Context, c Change) error {
			got = append(got, c)
			return nil
		})
		bus.Subscribe(TopicRequestChanged, func(context.Context, Change) error {
			t.Error("request handler should not run")
			return nil
		})

		require.NoError(t, bus.Emit(ctx, Change{Topic: TopicAssignmentChanged, Action: ActionCreated, EntityID: "a1"}))
		require.Len(t, got, 1)
		assert.Equal(t, "a1", got[0].EntityID)
		assert.NotEmpty(t, got[0].ID)
		assert.False(t, got[0].Timestamp.IsZero())
	})

	t.Run("unsubscribe stops delivery and is idempotent", func(t *testing.T) {
		bus := NewInMemoryBus(nil)
		calls := 0
		unsubscribe := bus.Subscribe(TopicAvailabilityChanged, func(context.Context, Change) error {
			calls++
			return nil
		})
		other := 0
		bus.Subscribe(TopicAvailabilityChanged, func(context.Context, Change) error {
			other++
			return nil
		})

		require.NoError(t, bus.Emit(ctx, Change{Topic: TopicAvailabilityChanged}))
		unsubscribe()
		unsubscribe()
		require.NoError(t, bus.Emit(ctx, Change{Topic: TopicAvailabilityChanged}))

		assert.Equal(t, 1, calls)
		assert.Equal(t, 2, other)
	})

	t.Run("handler failures do not stop later handlers", func(t *testing.T) {
		bus := NewInMemoryBus(nil)
		boom := errors.New("boom")
		reached := false
		bus.Subscribe(TopicEventChanged, func(context.Context, Change) error { return boom })
		bus.Subscribe(TopicEventChanged, func(context.Context, Change) error { panic("bad handler") })
		bus.Subscribe(TopicEventChanged, func(context.Context, Change) error {
			reached = true
			return nil
		})

		err := bus.Emit(ctx, Change{Topic: TopicEventChanged})
		assert.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "panicked")
		assert.True(t, reached)
	})
}
