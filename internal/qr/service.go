// Package qr encodes attendee scan URLs into QR images and hands them to an
// image store for hosting.
package qr

import (
	"context"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the generated PNG edge length in pixels.
const DefaultSize = 256

// ImageStore persists an encoded QR PNG and returns a retrievable URL
// (object URL, local path URL, or data URI depending on the backend).
type ImageStore interface {
	Save(ctx context.Context, key string, png []byte) (string, error)
}

// Service generates and stores QR images.
type Service struct {
	store ImageStore
	size  int
}

// NewService creates a QR service. A size of 0 uses DefaultSize.
func NewService(store ImageStore, size int) *Service {
	if size <= 0 {
		size = DefaultSize
	}
	return &Service{store: store, size: size}
}

// Create encodes the scan URL into a PNG and stores it under
// qr/<attendeeID>.png, returning the image URL.
func (s *Service) Create(ctx context.Context, scanURL, attendeeID string) (string, error) {
	png, err := qrcode.Encode(scanURL, qrcode.Medium, s.size)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return s.store.Save(ctx, "qr/"+attendeeID+".png", png)
}
