// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-messagely/internal/config"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and stores adapterCfg.Token when one is configured.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	adapter := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	adapter.SetToken(adapterCfg.Token)

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrAddressNoHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. A "Bearer " prefix is stripped.
func (h *httpServerAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	if parsed, err := utils.ParseBearerToken(token); err == nil {
		token = parsed
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs req to /auth/register and
// stores the returned token.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	return h.requestToken(ctx, "/auth/register", req)
}

// Login implements [ServerAdapter]. It POSTs creds to /auth/login and stores
// the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	return h.requestToken(ctx, "/auth/login", creds)
}

func (h *httpServerAdapter) requestToken(ctx context.Context, path string, body any) (string, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&tokenResp).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if tokenResp.Token == "" {
		return "", ErrNoTokenInReply
	}

	h.SetToken(tokenResp.Token)
	return tokenResp.Token, nil
}

// Users implements [ServerAdapter] via GET /users.
func (h *httpServerAdapter) Users(ctx context.Context) ([]models.UserSummary, error) {
	var usersResp models.UsersResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&usersResp).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return usersResp.Users, nil
}

// User implements [ServerAdapter] via GET /users/{username}.
func (h *httpServerAdapter) User(ctx context.Context, username string) (models.UserPublic, error) {
	var userResp models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("username", username).
		SetResult(&userResp).
		Get("/users/{username}")
	if err != nil {
		return models.UserPublic{}, fmt.Errorf("user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPublic{}, err
	}

	return userResp.User, nil
}

// MessagesTo implements [ServerAdapter] via GET /users/{username}/to.
func (h *httpServerAdapter) MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error) {
	var messagesResp models.MessagesResponse[models.ReceivedMessage]

	resp, err := h.authedRequest(ctx).
		SetPathParam("username", username).
		SetResult(&messagesResp).
		Get("/users/{username}/to")
	if err != nil {
		return nil, fmt.Errorf("inbox request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return messagesResp.Messages, nil
}

// MessagesFrom implements [ServerAdapter] via GET /users/{username}/from.
func (h *httpServerAdapter) MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error) {
	var messagesResp models.MessagesResponse[models.SentMessage]

	resp, err := h.authedRequest(ctx).
		SetPathParam("username", username).
		SetResult(&messagesResp).
		Get("/users/{username}/from")
	if err != nil {
		return nil, fmt.Errorf("outbox request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return messagesResp.Messages, nil
}

// SendMessage implements [ServerAdapter] via POST /messages.
func (h *httpServerAdapter) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error) {
	var messageResp models.MessageResponse[models.Message]

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&messageResp).
		Post("/messages")
	if err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return messageResp.Message, nil
}

// GetMessage implements [ServerAdapter] via GET /messages/{id}.
func (h *httpServerAdapter) GetMessage(ctx context.Context, id int64) (models.MessageDetail, error) {
	var messageResp models.MessageResponse[models.MessageDetail]

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&messageResp).
		Get("/messages/{id}")
	if err != nil {
		return models.MessageDetail{}, fmt.Errorf("get message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageDetail{}, err
	}

	return messageResp.Message, nil
}

// MarkRead implements [ServerAdapter] via POST /messages/{id}/read.
func (h *httpServerAdapter) MarkRead(ctx context.Context, id int64) (models.ReadReceipt, error) {
	var messageResp models.MessageResponse[models.ReadReceipt]

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&messageResp).
		Post("/messages/{id}/read")
	if err != nil {
		return models.ReadReceipt{}, fmt.Errorf("mark read request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReadReceipt{}, err
	}

	return messageResp.Message, nil
}

// Version implements [ServerAdapter] via GET /version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var versionResp models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&versionResp).
		Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return versionResp, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
