// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name       string
		header     int
		writes     []string
		wantStatus int
		wantSize   int
	}{
		{name: "implicit 200", writes: []string{"hello"}, wantStatus: http.StatusOK, wantSize: 5},
		{name: "explicit status kept", header: http.StatusNotFound, writes: []string{`{"error":{}}`}, wantStatus: http.StatusNotFound, wantSize: 12},
		{name: "size accumulates", writes: []string{"ab", "cde", ""}, wantStatus: http.StatusOK, wantSize: 5},
		{name: "no writes", header: http.StatusNoContent, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rec}

			if tt.header != 0 {
				w.WriteHeader(tt.header)
			}
			for _, s := range tt.writes {
				_, err := w.Write([]byte(s))
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rec.Body.Len())
		})
	}
}

func TestResponseWriter_HeadersAndUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Header().Set("X-Trace-ID", "abc")

	assert.Equal(t, "abc", rec.Header().Get("X-Trace-ID"))
	assert.Same(t, rec, w.Unwrap())
}
