// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-messagely/internal/logger"
)

// makeRequest returns a request whose context logger writes to buf, the way
// withTraceID attaches it.
func makeRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:         "GET 200",
			method:       http.MethodGet,
			target:       "/users",
			status:       http.StatusOK,
			body:         "OK",
			wantContains: []string{`"method":"GET"`, `"uri":"/users"`, `"status":200`, `"duration":`, `"size":2`},
		},
		{
			name:         "POST 401",
			method:       http.MethodPost,
			target:       "/messages",
			status:       http.StatusUnauthorized,
			body:         `{"error":{}}`,
			wantContains: []string{`"method":"POST"`, `"status":401`, `"size":12`},
		},
		{
			name:         "no body",
			method:       http.MethodPost,
			target:       "/messages/1/read",
			status:       http.StatusNoContent,
			wantContains: []string{`"status":204`, `"size":0`},
		},
		{
			name:         "query string is kept in uri",
			method:       http.MethodGet,
			target:       "/users?limit=10",
			status:       http.StatusOK,
			wantContains: []string{`"uri":"/users?limit=10"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rec := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rec, makeRequest(tt.method, tt.target, &buf))

			assert.Equal(t, tt.status, rec.Code)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	rec := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rec, makeRequest(http.MethodGet, "/users", &buf))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":1024`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/nop", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() { withLogging(next).ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusOK, rec.Code)
}
