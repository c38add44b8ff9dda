// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-messagely/internal/config"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/mock"
	"github.com/MKhiriev/go-messagely/internal/service"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
)

// newTestHandler returns a Handler without services, enough for middleware
// that does not reach the service layer.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop(), traceIDs: utils.NewUUIDGenerator()}
}

type mockedServices struct {
	auth     *mock.MockAuthService
	users    *mock.MockUserService
	messages *mock.MockMessageService
	appInfo  *mock.MockAppInfoService
}

// newMockedHandler returns a Handler whose services are gomock mocks.
func newMockedHandler(t *testing.T) (*Handler, mockedServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mockedServices{
		auth:     mock.NewMockAuthService(ctrl),
		users:    mock.NewMockUserService(ctrl),
		messages: mock.NewMockMessageService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:    m.auth,
		UserService:    m.users,
		MessageService: m.messages,
		AppInfoService: m.appInfo,
	}
	return NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop()), m
}

// authenticateAs makes the token "token-<username>" valid for username.
func (m mockedServices) authenticateAs(username string) string {
	token := "token-" + username
	m.auth.EXPECT().
		ParseToken(gomock.Any(), token).
		Return(models.Token{SignedString: token, Username: username}, nil).
		AnyTimes()
	return token
}

// doRequest sends a request through router. body is JSON encoded unless it
// is a string, which is sent verbatim.
func doRequest(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody decodes the JSON response body into a value of type T.
func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

// assertErrorResponse checks the status code and the JSON error envelope.
func assertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, status int) models.ErrorBody {
	t.Helper()

	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeBody[models.ErrorResponse](t, rec)
	assert.Equal(t, status, resp.Error.Status)
	assert.NotEmpty(t, resp.Error.Message)
	return resp.Error
}

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	h := NewHandler(services, config.Server{RequestTimeout: time.Second}, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.NotNil(t, h.traceIDs)
	assert.Equal(t, time.Second, h.requestTimeout)
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	rec := doRequest(t, router, http.MethodGet, "/no/such/route", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/auth/login"},
		{http.MethodDelete, "/users"},
		{http.MethodPut, "/messages"},
		{http.MethodPost, "/version"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, nil, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_AuthenticatedRoutesRequireToken(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/alice"},
		{http.MethodGet, "/users/alice/to"},
		{http.MethodGet, "/users/alice/from"},
		{http.MethodPost, "/messages"},
		{http.MethodGet, "/messages/1"},
		{http.MethodPost, "/messages/1/read"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, nil, "")
			body := assertErrorResponse(t, rec, http.StatusUnauthorized)
			assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), body.Message)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, m := newMockedHandler(t)
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.VersionResponse{Version: "1.0.0"})

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}
