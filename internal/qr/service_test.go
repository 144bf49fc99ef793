package qr

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gatepass/backend/pkg/storage"
)

func TestService_CreateInline(t *testing.T) {
	svc := NewService(storage.NewInline(), 64)
	url, err := svc.Create(context.Background(), "http://localhost:3000/scan/abc123", "abc123")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("url = %q, want data URI", url)
	}
}

type failingStore struct{}

func (failingStore) Save(context.Context, string, []byte) (string, error) {
	return "", errors.New("bucket unavailable")
}

func TestService_StoreErrorPropagates(t *testing.T) {
	svc := NewService(failingStore{}, 0)
	if _, err := svc.Create(context.Background(), "http://x/scan/1", "1"); err == nil {
		t.Error("store failure not propagated")
	}
}

func TestService_KeyIncludesAttendeeID(t *testing.T) {
	var gotKey string
	svc := NewService(captureStore{&gotKey}, 64)
	if _, err := svc.Create(context.Background(), "http://x/scan/deadbeef", "deadbeef"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if gotKey != "qr/deadbeef.png" {
		t.Errorf("key = %q, want qr/deadbeef.png", gotKey)
	}
}

type captureStore struct{ key *string }

func (c captureStore) Save(_ context.Context, key string, _ []byte) (string, error) {
	*c.key = key
	return "ok", nil
}
