// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a small chi.Mux without Handler.Init, so no services
// are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("users"))
	})
	router.Post("/messages", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/messages/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "registered GET passes through", method: http.MethodGet, path: "/users", wantStatus: http.StatusOK, wantBody: "users"},
		{name: "registered POST passes through", method: http.MethodPost, path: "/messages", wantStatus: http.StatusCreated},
		{name: "parameterised route passes through", method: http.MethodGet, path: "/messages/1", wantStatus: http.StatusOK},
		{name: "wrong method on exact route", method: http.MethodDelete, path: "/users", wantStatus: http.StatusNotFound},
		{name: "GET on POST-only route", method: http.MethodGet, path: "/messages", wantStatus: http.StatusNotFound},
		{name: "wrong method on parameterised route", method: http.MethodDelete, path: "/messages/1", wantStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()

	const n = 50
	done := make(chan int, n)
	for i := range n {
		go func() {
			method := http.MethodGet
			if i%2 == 1 {
				method = http.MethodDelete
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(method, "/users", nil))
			done <- rec.Code
		}()
	}

	for range n {
		code := <-done
		assert.Contains(t, []int{http.StatusOK, http.StatusNotFound}, code)
	}
}
