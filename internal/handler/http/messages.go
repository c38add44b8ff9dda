// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/service"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
)

// sendMessage stores a message from the acting user. A from_username in the
// body is ignored.
func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actingUser, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrNoActingUser)
		return
	}

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	message, err := h.services.MessageService.Send(ctx, models.Message{
		FromUsername: actingUser,
		ToUsername:   req.ToUsername,
		Body:         req.Body,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("message_id", message.ID).Str("to", message.ToUsername).Msg("message sent")
	h.writeJSON(w, r, models.MessageResponse[models.Message]{Message: message}, http.StatusOK)
}

// getMessage answers with the message resolved by ensureMessageParticipant.
func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	message, ok := utils.GetMessageFromContext(r.Context())
	if !ok {
		h.writeError(w, r, errNoMessageInContext)
		return
	}

	h.writeJSON(w, r, models.MessageResponse[models.MessageDetail]{Message: message}, http.StatusOK)
}

// markRead marks the message resolved by ensureMessageRecipient as read.
func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	message, ok := utils.GetMessageFromContext(ctx)
	if !ok {
		h.writeError(w, r, errNoMessageInContext)
		return
	}

	receipt, err := h.services.MessageService.MarkRead(ctx, message.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.MessageResponse[models.ReadReceipt]{Message: receipt}, http.StatusOK)
}
