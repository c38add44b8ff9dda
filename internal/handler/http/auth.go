// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/models"
)

// register creates an account and answers with a token for it.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user.Username)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("username", user.Username).Msg("user registered")
	h.writeJSON(w, r, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

// login checks the credentials, refreshes the last login timestamp and
// answers with a fresh token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("username", creds.Username).Msg("user logged in")
	h.writeJSON(w, r, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
