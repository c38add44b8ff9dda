// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-messagely/internal/config"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/mock"
	"github.com/MKhiriev/go-messagely/models"
)

func received(id int64, read bool) models.ReceivedMessage {
	m := models.ReceivedMessage{
		ID:       id,
		Body:     "hello",
		SentAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		FromUser: models.UserProfile{Username: "alice"},
	}
	if read {
		readAt := m.SentAt.Add(time.Minute)
		m.ReadAt = &readAt
	}
	return m
}

func TestNewInboxWatcher_DefaultInterval(t *testing.T) {
	w := NewInboxWatcher(nil, "bob", config.Workers{}, func(models.ReceivedMessage) {}, logger.Nop())

	assert.Equal(t, defaultPollInterval, w.interval)
}

func TestInboxWatcher_Poll(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockServerAdapter(ctrl)

	var reported []int64
	w := NewInboxWatcher(adapter, "bob", config.Workers{PollInterval: time.Second}, func(m models.ReceivedMessage) {
		reported = append(reported, m.ID)
	}, logger.Nop())

	gomock.InOrder(
		adapter.EXPECT().MessagesTo(gomock.Any(), "bob").
			Return([]models.ReceivedMessage{received(1, true), received(2, false)}, nil),
		adapter.EXPECT().MessagesTo(gomock.Any(), "bob").
			Return([]models.ReceivedMessage{received(1, true), received(2, false), received(3, false)}, nil),
		adapter.EXPECT().MessagesTo(gomock.Any(), "bob").
			Return([]models.ReceivedMessage{received(1, true), received(2, true), received(3, true)}, nil),
	)

	n, err := w.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n, "first poll reports only unread messages")

	n, err = w.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n, "second poll reports only the new message")

	n, err = w.Poll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n, "read state changes are not reported")

	assert.Equal(t, []int64{2, 3}, reported)
}

func TestInboxWatcher_Poll_NewReadMessageAfterFirstPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockServerAdapter(ctrl)

	var reported []int64
	w := NewInboxWatcher(adapter, "bob", config.Workers{}, func(m models.ReceivedMessage) {
		reported = append(reported, m.ID)
	}, logger.Nop())

	adapter.EXPECT().MessagesTo(gomock.Any(), "bob").Return(nil, nil)
	adapter.EXPECT().MessagesTo(gomock.Any(), "bob").Return([]models.ReceivedMessage{received(4, true)}, nil)

	_, err := w.Poll(context.Background())
	require.NoError(t, err)
	_, err = w.Poll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{4}, reported)
}

func TestInboxWatcher_Poll_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockServerAdapter(ctrl)
	adapterErr := errors.New("connection refused")

	w := NewInboxWatcher(adapter, "bob", config.Workers{}, func(models.ReceivedMessage) {
		t.Fatal("nothing must be reported")
	}, logger.Nop())

	adapter.EXPECT().MessagesTo(gomock.Any(), "bob").Return(nil, adapterErr)

	n, err := w.Poll(context.Background())
	require.ErrorIs(t, err, adapterErr)
	assert.Zero(t, n)
	assert.False(t, w.primed)
}

func TestInboxWatcher_Run_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockServerAdapter(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	reported := make(chan int64, 1)

	w := NewInboxWatcher(adapter, "bob", config.Workers{PollInterval: 10 * time.Millisecond}, func(m models.ReceivedMessage) {
		reported <- m.ID
	}, logger.Nop())

	adapter.EXPECT().MessagesTo(gomock.Any(), "bob").
		Return([]models.ReceivedMessage{received(9, false)}, nil).
		MinTimes(1)

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case id := <-reported:
		assert.Equal(t, int64(9), id)
	case <-time.After(5 * time.Second):
		t.Fatal("message was not reported")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestInboxWatcher_IsAWorker(t *testing.T) {
	var _ Worker = (*InboxWatcher)(nil)
}
