// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-messagely/internal/service"
	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/internal/validators"
	"github.com/MKhiriev/go-messagely/models"
)

var registerRequest = models.RegisterRequest{
	Username:  "alice",
	Password:  "secret",
	FirstName: "Alice",
	LastName:  "Liddell",
	Phone:     "555-0100",
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       any
		setup      func(m mockedServices)
		wantStatus int
		wantToken  string
	}{
		{
			name: "success",
			path: "/auth/register",
			body: registerRequest,
			setup: func(m mockedServices) {
				m.auth.EXPECT().Register(gomock.Any(), registerRequest).
					Return(models.UserPublic{Username: "alice"}, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), "alice").
					Return(models.Token{SignedString: "signed.jwt.token"}, nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  "signed.jwt.token",
		},
		{
			name: "short path alias",
			path: "/register",
			body: registerRequest,
			setup: func(m mockedServices) {
				m.auth.EXPECT().Register(gomock.Any(), registerRequest).
					Return(models.UserPublic{Username: "alice"}, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), "alice").
					Return(models.Token{SignedString: "t"}, nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  "t",
		},
		{
			name:       "invalid JSON",
			path:       "/auth/register",
			body:       "{not json",
			setup:      func(mockedServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty body",
			path:       "/auth/register",
			body:       "",
			setup:      func(mockedServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid data",
			path: "/auth/register",
			body: models.RegisterRequest{Username: "alice"},
			setup: func(m mockedServices) {
				m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(models.UserPublic{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyPassword))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "username taken",
			path: "/auth/register",
			body: registerRequest,
			setup: func(m mockedServices) {
				m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(models.UserPublic{}, fmt.Errorf("user creation ended with error: %w", store.ErrUsernameAlreadyExists))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "unexpected error",
			path: "/auth/register",
			body: registerRequest,
			setup: func(m mockedServices) {
				m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(models.UserPublic{}, errors.New("db is down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "token creation fails",
			path: "/auth/register",
			body: registerRequest,
			setup: func(m mockedServices) {
				m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(models.UserPublic{Username: "alice"}, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), "alice").
					Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			tt.setup(m)

			rec := doRequest(t, h.Init(), http.MethodPost, tt.path, tt.body, "")

			if tt.wantStatus != http.StatusOK {
				assertErrorResponse(t, rec, tt.wantStatus)
				return
			}
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantToken, decodeBody[models.TokenResponse](t, rec).Token)
		})
	}
}

func TestRegister_DoesNotLeakInternalErrors(t *testing.T) {
	h, m := newMockedHandler(t)
	m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.UserPublic{}, errors.New("pq: connection refused on 10.0.0.5"))

	rec := doRequest(t, h.Init(), http.MethodPost, "/auth/register", registerRequest, "")

	body := assertErrorResponse(t, rec, http.StatusInternalServerError)
	assert.NotContains(t, body.Message, "10.0.0.5")
}

func TestLogin(t *testing.T) {
	creds := models.Credentials{Username: "alice", Password: "secret"}

	tests := []struct {
		name       string
		path       string
		body       any
		setup      func(m mockedServices)
		wantStatus int
		wantToken  string
	}{
		{
			name: "success",
			path: "/auth/login",
			body: creds,
			setup: func(m mockedServices) {
				m.auth.EXPECT().Login(gomock.Any(), creds).
					Return(models.Token{SignedString: "signed.jwt.token"}, nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  "signed.jwt.token",
		},
		{
			name: "short path alias",
			path: "/login",
			body: creds,
			setup: func(m mockedServices) {
				m.auth.EXPECT().Login(gomock.Any(), creds).
					Return(models.Token{SignedString: "t"}, nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  "t",
		},
		{
			name:       "invalid JSON",
			path:       "/auth/login",
			body:       "[",
			setup:      func(mockedServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "wrong password",
			path: "/auth/login",
			body: creds,
			setup: func(m mockedServices) {
				m.auth.EXPECT().Login(gomock.Any(), creds).
					Return(models.Token{}, service.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing password stays unauthorized",
			path: "/auth/login",
			body: models.Credentials{Username: "alice"},
			setup: func(m mockedServices) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(models.Token{}, fmt.Errorf("%w: %w", service.ErrUnauthorized, validators.ErrEmptyPassword))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unexpected error",
			path: "/auth/login",
			body: creds,
			setup: func(m mockedServices) {
				m.auth.EXPECT().Login(gomock.Any(), creds).
					Return(models.Token{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			tt.setup(m)

			rec := doRequest(t, h.Init(), http.MethodPost, tt.path, tt.body, "")

			if tt.wantStatus != http.StatusOK {
				assertErrorResponse(t, rec, tt.wantStatus)
				return
			}
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantToken, decodeBody[models.TokenResponse](t, rec).Token)
		})
	}
}
