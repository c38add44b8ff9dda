// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-messagely/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUsernameCtxKey(t *testing.T) {
	if UsernameCtxKey.String() != "username" {
		t.Errorf("expected 'username', got '%s'", UsernameCtxKey.String())
	}
}

func TestGetUsernameFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "alice")

	username, ok := GetUsernameFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if username != "alice" {
		t.Errorf("expected username=alice, got %s", username)
	}
}

func TestGetUsernameFromContext_Missing(t *testing.T) {
	username, ok := GetUsernameFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if username != "" {
		t.Errorf("expected empty username, got %s", username)
	}
}

func TestGetUsernameFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, int64(42))

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetUsernameFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "")

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty username, got true")
	}
}

func TestGetUsernameFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), "alice")

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}

func TestGetMessageFromContext(t *testing.T) {
	want := models.MessageDetail{ID: 7, Body: "hi"}
	ctx := context.WithValue(context.Background(), MessageCtxKey, want)

	got, ok := GetMessageFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.ID != want.ID || got.Body != want.Body {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if _, ok := GetMessageFromContext(context.Background()); ok {
		t.Fatal("expected ok=false on empty context, got true")
	}
}
