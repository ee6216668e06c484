package notice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_AutoDismiss(t *testing.T) {
	dismissed := make(chan Notice, 1)
	b := NewBoard(context.Background(), 20*time.Millisecond, func(n Notice) { dismissed <- n })
	defer b.Close()

	n, ok := b.Post("Password changed successfully!")
	require.True(t, ok)
	assert.Len(t, b.Active(), 1)

	select {
	case got := <-dismissed:
		assert.Equal(t, n.ID, got.ID)
		assert.Equal(t, "Password changed successfully!", got.Message)
	case <-time.After(time.Second):
		t.Fatal("notice was not dismissed")
	}
	assert.Empty(t, b.Active())
}

func TestBoard_DefaultDuration(t *testing.T) {
	b := NewBoard(context.Background(), 0, nil)
	defer b.Close()
	assert.Equal(t, DefaultDismissAfter, b.after)
}

func TestBoard_DismissEarly(t *testing.T) {
	fired := make(chan Notice, 1)
	b := NewBoard(context.Background(), 20*time.Millisecond, func(n Notice) { fired <- n })
	defer b.Close()

	n, _ := b.Post("saved")
	assert.True(t, b.Dismiss(n.ID))
	assert.False(t, b.Dismiss(n.ID))

	select {
	case <-fired:
		t.Fatal("dismissed notice fired")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestBoard_ContextCancelStopsTimers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fired := make(chan Notice, 1)
	b := NewBoard(ctx, 30*time.Millisecond, func(n Notice) { fired <- n })

	_, ok := b.Post("saved")
	require.True(t, ok)
	cancel()

	assert.Eventually(t, func() bool {
		_, ok := b.Post("late")
		return !ok
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, b.Active())

	select {
	case <-fired:
		t.Fatal("callback fired after owner was disposed")
	case <-time.After(80 * time.Millisecond):
	}
}

func TestBoard_CloseIsIdempotent(t *testing.T) {
	b := NewBoard(context.Background(), time.Second, nil)
	b.Close()
	b.Close()
	_, ok := b.Post("x")
	assert.False(t, ok)
}
