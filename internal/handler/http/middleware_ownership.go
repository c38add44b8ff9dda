// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-messagely/internal/service"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/go-chi/chi/v5"
)

// ensureCorrectUser lets the request through only when the {username} path
// parameter names the acting user.
func (h *Handler) ensureCorrectUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actingUser, ok := utils.GetUsernameFromContext(r.Context())
		if !ok {
			h.writeError(w, r, service.ErrNoActingUser)
			return
		}

		if chi.URLParam(r, "username") != actingUser {
			h.writeError(w, r, service.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ensureMessageParticipant resolves the {id} message and requires the acting
// user to be its sender or recipient. The message is stored in the context
// under [utils.MessageCtxKey].
func (h *Handler) ensureMessageParticipant(next http.Handler) http.Handler {
	return h.ensureMessageAccess(next, models.MessageDetail.IsParticipant)
}

// ensureMessageRecipient is like ensureMessageParticipant but admits only the
// recipient.
func (h *Handler) ensureMessageRecipient(next http.Handler) http.Handler {
	return h.ensureMessageAccess(next, models.MessageDetail.IsRecipient)
}

func (h *Handler) ensureMessageAccess(next http.Handler, allowed func(models.MessageDetail, string) bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		actingUser, ok := utils.GetUsernameFromContext(ctx)
		if !ok {
			h.writeError(w, r, service.ErrNoActingUser)
			return
		}

		id, err := messageIDFromRequest(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		message, err := h.services.MessageService.Get(ctx, id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if !allowed(message, actingUser) {
			h.writeError(w, r, service.ErrForbidden)
			return
		}

		ctx = context.WithValue(ctx, utils.MessageCtxKey, message)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func messageIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidMessageID
	}
	return id, nil
}
