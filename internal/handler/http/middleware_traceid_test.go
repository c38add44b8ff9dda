// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/utils"
)

func executeWithTraceID(h *Handler, incoming string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantSameID    bool
		wantValidUUID bool
	}{
		{name: "trace id from request header is reused", incoming: "my-custom-trace-id", wantSameID: true},
		{name: "uuid from request header is reused", incoming: "550e8400-e29b-41d4-a716-446655440000", wantSameID: true},
		{name: "no trace id generates a uuid", wantValidUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := executeWithTraceID(newTestHandler(), tt.incoming)

			got := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, http.StatusOK, rec.Code)

			if tt.wantSameID {
				assert.Equal(t, tt.incoming, got)
			}
			if tt.wantValidUUID {
				id, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), id.Version())
			}
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := newTestHandler()
	seen := make(map[string]struct{})

	for range 100 {
		id := executeWithTraceID(h, "").Header().Get(traceIDHeader)
		_, duplicate := seen[id]
		require.False(t, duplicate, "duplicate trace id %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_ContextLoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{
		logger:   &logger.Logger{Logger: zerolog.New(&buf)},
		traceIDs: utils.NewUUIDGenerator(),
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, "trace-context-test")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-context-test"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}

func TestWithTraceID_ConcurrentRequests(t *testing.T) {
	h := newTestHandler()

	const n = 50
	done := make(chan string, n)
	for range n {
		go func() {
			done <- executeWithTraceID(h, "").Header().Get(traceIDHeader)
		}()
	}

	seen := make(map[string]struct{})
	for range n {
		id := <-done
		require.NotEmpty(t, id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}
