package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Checkpoint statuses. Every attendee starts OUT at both checkpoints.
const (
	StatusIn  = "IN"
	StatusOut = "OUT"
)

// Attendee is a registered event attendee. The manual code is the short
// human-enterable alternative to scanning the QR code and is assigned exactly
// once at registration.
type Attendee struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Phone            string             `json:"phone" bson:"phone"`
	Gender           string             `json:"gender" bson:"gender"`
	AadhaarNumber    string             `json:"aadhaarNumber" bson:"aadhaarNumber"`
	Address          string             `json:"address" bson:"address"`
	CarVoucherNumber string             `json:"carVoucherNumber" bson:"carVoucherNumber"`
	CarNumber        string             `json:"carNumber" bson:"carNumber"`
	Zone             string             `json:"zone" bson:"zone"`
	SerialNo         string             `json:"serialNo" bson:"serialNo"`
	ZoneDay1         string             `json:"zoneDay1" bson:"zoneDay1"`
	ZoneDay2         string             `json:"zoneDay2" bson:"zoneDay2"`
	ReferredBy       *float64           `json:"referredBy" bson:"referredBy"`
	ManualCode       string             `json:"manualCode" bson:"manualCode"`

	GateStatus     string `json:"gateStatus" bson:"gateStatus"`
	WashroomStatus string `json:"washroomStatus" bson:"washroomStatus"`

	LastGateUpdate     *time.Time `json:"lastGateUpdate" bson:"lastGateUpdate,omitempty"`
	LastWashroomUpdate *time.Time `json:"lastWashroomUpdate" bson:"lastWashroomUpdate,omitempty"`

	QRImageURL string `json:"qrImageUrl" bson:"qrImageUrl"`
}

// AttendeeRedacted is the subset exposed for pre-filling the update form.
type AttendeeRedacted struct {
	Name             string   `json:"name"`
	Phone            string   `json:"phone"`
	Gender           string   `json:"gender"`
	AadhaarNumber    string   `json:"aadhaarNumber"`
	Address          string   `json:"address"`
	CarVoucherNumber string   `json:"carVoucherNumber"`
	CarNumber        string   `json:"carNumber"`
	SerialNo         string   `json:"serialNo"`
	ZoneDay1         string   `json:"zoneDay1"`
	ZoneDay2         string   `json:"zoneDay2"`
	ReferredBy       *float64 `json:"referredBy"`
	ManualCode       string   `json:"manualCode"`
}

// Redacted converts an Attendee to its update-form view.
func (a *Attendee) Redacted() AttendeeRedacted {
	return AttendeeRedacted{
		Name:             a.Name,
		Phone:            a.Phone,
		Gender:           a.Gender,
		AadhaarNumber:    a.AadhaarNumber,
		Address:          a.Address,
		CarVoucherNumber: a.CarVoucherNumber,
		CarNumber:        a.CarNumber,
		SerialNo:         a.SerialNo,
		ZoneDay1:         a.ZoneDay1,
		ZoneDay2:         a.ZoneDay2,
		ReferredBy:       a.ReferredBy,
		ManualCode:       a.ManualCode,
	}
}
