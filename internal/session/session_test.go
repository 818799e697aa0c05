package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentTracksSetAndClear(t *testing.T) {
	p := NewProvider()
	assert.Nil(t, p.Current())

	p.Set(&Identity{ID: "u1", Email: "user@example.com"})
	require.NotNil(t, p.Current())
	assert.Equal(t, "u1", p.Current().ID)

	p.Clear()
	assert.Nil(t, p.Current())
}

func TestSubscribeReceivesTransitions(t *testing.T) {
	p := NewProvider()
	updates, cancel := p.Subscribe()
	defer cancel()

	p.Set(&Identity{ID: "u1"})

	select {
	case identity := <-updates:
		require.NotNil(t, identity)
		assert.Equal(t, "u1", identity.ID)
	case <-time.After(time.Second):
		t.Fatal("no transition delivered")
	}

	p.Clear()
	select {
	case identity := <-updates:
		assert.Nil(t, identity)
	case <-time.After(time.Second):
		t.Fatal("sign-out not delivered")
	}
}

func TestSlowSubscriberSeesNewestIdentity(t *testing.T) {
	p := NewProvider()
	updates, cancel := p.Subscribe()
	defer cancel()

	// Two transitions before the subscriber reads: the pending value is
	// replaced, not queued.
	p.Set(&Identity{ID: "u1"})
	p.Set(&Identity{ID: "u2"})

	select {
	case identity := <-updates:
		require.NotNil(t, identity)
		assert.Equal(t, "u2", identity.ID)
	case <-time.After(time.Second):
		t.Fatal("no transition delivered")
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	p := NewProvider()
	updates, cancel := p.Subscribe()
	cancel()

	_, open := <-updates
	assert.False(t, open, "channel closes on cancel")

	// Publishing after cancel must not panic.
	p.Set(&Identity{ID: "u1"})
}
