// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-messagely/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.All(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if users == nil {
		users = []models.UserSummary{}
	}
	h.writeJSON(w, r, models.UsersResponse{Users: users}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.UserResponse{User: user}, http.StatusOK)
}

// getMessagesTo lists the inbox of {username}.
func (h *Handler) getMessagesTo(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.UserService.MessagesTo(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if messages == nil {
		messages = []models.ReceivedMessage{}
	}
	h.writeJSON(w, r, models.MessagesResponse[models.ReceivedMessage]{Messages: messages}, http.StatusOK)
}

// getMessagesFrom lists the outbox of {username}.
func (h *Handler) getMessagesFrom(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.UserService.MessagesFrom(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if messages == nil {
		messages = []models.SentMessage{}
	}
	h.writeJSON(w, r, models.MessagesResponse[models.SentMessage]{Messages: messages}, http.StatusOK)
}
