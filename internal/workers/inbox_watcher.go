// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-messagely/internal/adapter"
	"github.com/MKhiriev/go-messagely/internal/config"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/models"
)

const defaultPollInterval = 5 * time.Second

// InboxWatcher polls the inbox of one user and reports every message it has
// not reported before.
//
// The first poll reports only unread messages; later polls report any new
// message id. An InboxWatcher is driven by a single goroutine.
type InboxWatcher struct {
	adapter  adapter.ServerAdapter
	username string
	interval time.Duration
	onNew    func(models.ReceivedMessage)

	seen   map[int64]struct{}
	primed bool

	logger *logger.Logger
}

func NewInboxWatcher(
	serverAdapter adapter.ServerAdapter,
	username string,
	cfg config.Workers,
	onNew func(models.ReceivedMessage),
	logger *logger.Logger,
) *InboxWatcher {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &InboxWatcher{
		adapter:  serverAdapter,
		username: username,
		interval: interval,
		onNew:    onNew,
		seen:     make(map[int64]struct{}),
		logger:   logger,
	}
}

// Run polls immediately and then every interval until ctx is done. A failed
// poll is logged and retried on the next tick.
func (w *InboxWatcher) Run(ctx context.Context) {
	w.logger.Info().Str("username", w.username).Dur("interval", w.interval).Msg("inbox watcher started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.Poll(ctx); err != nil && ctx.Err() == nil {
			w.logger.Err(err).Str("username", w.username).Msg("inbox poll failed")
		}

		select {
		case <-ctx.Done():
			w.logger.Info().Str("username", w.username).Msg("inbox watcher stopped")
			return
		case <-ticker.C:
		}
	}
}

// Poll fetches the inbox once and returns how many messages were reported.
func (w *InboxWatcher) Poll(ctx context.Context) (int, error) {
	messages, err := w.adapter.MessagesTo(ctx, w.username)
	if err != nil {
		return 0, fmt.Errorf("error fetching inbox of %q: %w", w.username, err)
	}

	reported := 0
	for _, message := range messages {
		if _, ok := w.seen[message.ID]; ok {
			continue
		}
		w.seen[message.ID] = struct{}{}

		if !w.primed && message.ReadAt != nil {
			continue
		}

		w.onNew(message)
		reported++
	}
	w.primed = true

	return reported, nil
}
