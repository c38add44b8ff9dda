// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/service"
	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is ordered: the first match wins. Login failures wrap both
// ErrUnauthorized and a validation error and must stay 401.
var errorStatuses = []errorStatus{
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrNoActingUser, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},

	{service.ErrForbidden, http.StatusForbidden},

	{store.ErrUsernameAlreadyExists, http.StatusConflict},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrMessageNotFound, http.StatusNotFound},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidMessageID, http.StatusBadRequest},
}

// statusFromError returns the HTTP status for err and the message that is
// safe to show to the caller.
func statusFromError(err error) (int, string) {
	for _, es := range errorStatuses {
		if !errors.Is(err, es.target) {
			continue
		}
		if es.status == http.StatusBadRequest {
			return es.status, err.Error()
		}
		return es.status, es.target.Error()
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and writes it as an [models.ErrorResponse].
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	body := models.ErrorResponse{Error: models.ErrorBody{Message: message, Status: status}}
	if _, err = utils.WriteJSON(w, body, status); err != nil {
		log.Err(err).Msg("error writing error response")
	}
}

// writeJSON writes data with the given status and logs a failed write.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
