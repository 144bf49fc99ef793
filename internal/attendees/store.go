// Package attendees holds the attendee store and the registration, scan,
// update, and listing handlers.
package attendees

import (
	"context"
	"errors"
	"time"

	"github.com/gatepass/backend/internal/models"
)

var (
	// ErrNotFound is returned when no attendee matches the lookup key.
	ErrNotFound = errors.New("attendee not found")
	// ErrDuplicateCode is returned when an insert collides on the manual
	// code unique index; callers regenerate and retry.
	ErrDuplicateCode = errors.New("manual code already in use")
)

// Checkpoint names one of the two independently tracked presence toggles.
type Checkpoint string

const (
	CheckpointGate     Checkpoint = "gate"
	CheckpointWashroom Checkpoint = "washroom"
)

// UpdateParams carries the allow-listed updatable fields. Nil pointers are
// left untouched. The manual code, timestamps, QR image reference, and id
// are deliberately absent: they are never client-writable.
type UpdateParams struct {
	Name             *string
	Phone            *string
	Gender           *string
	AadhaarNumber    *string
	Address          *string
	CarVoucherNumber *string
	CarNumber        *string
	Zone             *string
	SerialNo         *string
	ZoneDay1         *string
	ZoneDay2         *string
	ReferredBy       *float64
	GateStatus       *string
	WashroomStatus   *string
}

// Store persists attendee records. Implemented by the Mongo repository and
// by the in-memory store used for tests and the no-database mode.
type Store interface {
	// Insert creates the record, assigning its id. Returns
	// ErrDuplicateCode if the manual code is already taken.
	Insert(ctx context.Context, a *models.Attendee) error
	// GetByID returns the record for a hex id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Attendee, error)
	// GetByManualCode returns the record for a fallback code, or ErrNotFound.
	GetByManualCode(ctx context.Context, code string) (*models.Attendee, error)
	// List returns every record, newest first by id.
	List(ctx context.Context) ([]models.Attendee, error)
	// Toggle atomically flips one checkpoint status and stamps its
	// timestamp, returning the updated record.
	Toggle(ctx context.Context, id string, cp Checkpoint, at time.Time) (*models.Attendee, error)
	// Update applies the non-nil fields and returns the updated record.
	Update(ctx context.Context, id string, p UpdateParams) (*models.Attendee, error)
	// SetQRImageURL records the hosted QR image reference after upload.
	SetQRImageURL(ctx context.Context, id, url string) error
}
