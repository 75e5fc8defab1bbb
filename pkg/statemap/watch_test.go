package statemap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeEmitsInitialResnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := store.Subscribe(ctx)

	select {
	case ev := <-sub.Events():
		assert.True(t, ev.Resnapshot)
	case <-time.After(time.Second):
		t.Fatal("expected an initial resnapshot event")
	}
}

func TestSubscribeDeliversChangedKeys(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := store.Subscribe(ctx)
	<-sub.Events() // initial resnapshot

	_, err := store.CAS(ctx, "sub/nqn.x", 0, []byte("v1"), "gw1")
	require.NoError(t, err)

	select {
	case ev := <-sub.Events():
		assert.False(t, ev.Resnapshot)
		assert.Equal(t, []string{"sub/nqn.x"}, ev.ChangedKeys)
	case <-time.After(time.Second):
		t.Fatal("expected a changed-key event")
	}
}

func TestSubscribeClosesOnContextCancel(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())

	sub := store.Subscribe(ctx)
	<-sub.Events()
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-sub.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("subscription channel never closed")
		}
	}
}
