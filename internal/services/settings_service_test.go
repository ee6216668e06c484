package services

import (
	"context"
	"testing"
	"time"

	"rentdesk/internal/hub"
	"rentdesk/internal/notice"
	"rentdesk/internal/preferences"
	"rentdesk/pkg/kvstore"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextEvent(t *testing.T, ch <-chan hub.Event) hub.Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
		return hub.Event{}
	}
}

func TestSettingsService_ChangePasswordPostsNotice(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := hub.New(logrus.New())
	ch, unsubscribe := events.Subscribe(8)
	defer unsubscribe()

	prefs := preferences.NewStore(kvstore.NewMemoryStore())
	board := notice.NewBoard(ctx, 100*time.Millisecond, NoticeDismissed(events))
	svc := NewSettingsService(prefs, board, events)

	_, ok := svc.ChangePassword(ctx, "wrong", "abcdef")
	assert.False(t, ok)
	assert.Empty(t, svc.Notices())

	n, ok := svc.ChangePassword(ctx, "password123", "abcdef")
	require.True(t, ok)
	assert.Equal(t, PasswordChangedMessage, n.Message)
	assert.Equal(t, "abcdef", svc.State().User.Password)

	shown := nextEvent(t, ch)
	assert.Equal(t, hub.EventNotice, shown.Type)
	assert.True(t, shown.Data.(NoticeEvent).Visible)

	hidden := nextEvent(t, ch)
	assert.Equal(t, hub.EventNotice, hidden.Type)
	assert.False(t, hidden.Data.(NoticeEvent).Visible)
	assert.Empty(t, svc.Notices())
}

func TestSettingsService_WithoutBoard(t *testing.T) {
	svc := NewSettingsService(preferences.NewStore(kvstore.NewMemoryStore()), nil, nil)
	n, ok := svc.ChangePassword(context.Background(), "password123", "abcdef")
	require.True(t, ok)
	assert.Equal(t, PasswordChangedMessage, n.Message)
	assert.Nil(t, svc.Notices())
}
