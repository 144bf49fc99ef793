package attendees

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gatepass/backend/internal/models"
)

// MemoryStore is an in-process Store for tests and the no-database
// deployment mode. Ids keep the ObjectID hex format so scan URLs look the
// same in both modes.
type MemoryStore struct {
	mu       sync.RWMutex
	byID     map[string]*models.Attendee
	idByCode map[string]string
	order    []string // insertion order of ids
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:     make(map[string]*models.Attendee),
		idByCode: make(map[string]string),
	}
}

func (m *MemoryStore) Insert(_ context.Context, a *models.Attendee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.idByCode[a.ManualCode]; taken {
		return ErrDuplicateCode
	}
	a.ID = primitive.NewObjectID()
	id := a.ID.Hex()
	cp := *a
	m.byID[id] = &cp
	m.idByCode[a.ManualCode] = id
	m.order = append(m.order, id)
	return nil
}

func (m *MemoryStore) GetByID(_ context.Context, id string) (*models.Attendee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *MemoryStore) GetByManualCode(_ context.Context, code string) (*models.Attendee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.idByCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *m.byID[id]
	return &cp, nil
}

func (m *MemoryStore) List(_ context.Context) ([]models.Attendee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Attendee, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, *m.byID[m.order[i]])
	}
	return out, nil
}

func (m *MemoryStore) Toggle(_ context.Context, id string, cp Checkpoint, at time.Time) (*models.Attendee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	switch cp {
	case CheckpointGate:
		a.GateStatus = toggled(a.GateStatus)
		t := at
		a.LastGateUpdate = &t
	case CheckpointWashroom:
		a.WashroomStatus = toggled(a.WashroomStatus)
		t := at
		a.LastWashroomUpdate = &t
	}
	out := *a
	return &out, nil
}

func (m *MemoryStore) Update(_ context.Context, id string, p UpdateParams) (*models.Attendee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	setString(&a.Name, p.Name)
	setString(&a.Phone, p.Phone)
	setString(&a.Gender, p.Gender)
	setString(&a.AadhaarNumber, p.AadhaarNumber)
	setString(&a.Address, p.Address)
	setString(&a.CarVoucherNumber, p.CarVoucherNumber)
	setString(&a.CarNumber, p.CarNumber)
	setString(&a.Zone, p.Zone)
	setString(&a.SerialNo, p.SerialNo)
	setString(&a.ZoneDay1, p.ZoneDay1)
	setString(&a.ZoneDay2, p.ZoneDay2)
	setString(&a.GateStatus, p.GateStatus)
	setString(&a.WashroomStatus, p.WashroomStatus)
	if p.ReferredBy != nil {
		v := *p.ReferredBy
		a.ReferredBy = &v
	}
	out := *a
	return &out, nil
}

func (m *MemoryStore) SetQRImageURL(_ context.Context, id, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	a.QRImageURL = url
	return nil
}

func toggled(status string) string {
	if status == models.StatusIn {
		return models.StatusOut
	}
	return models.StatusIn
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
