package attendees

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gatepass/backend/internal/codes"
	"github.com/gatepass/backend/internal/models"
	"github.com/gatepass/backend/internal/qr"
	"github.com/gatepass/backend/internal/zones"
	"github.com/gatepass/backend/pkg/response"
)

const (
	msgUserNotFound  = "User not found"
	msgInvalidZone   = "Invalid zoneDay1 (Example: AMW / AFZ)"
	msgInvalidRefBy  = "Referred By must be a valid number"
	msgServerError   = "Server error"
	insertMaxRetries = 5
)

// RegisterRequest is the body for POST /register. Every field is optional;
// only zoneDay1 and referredBy are validated.
type RegisterRequest struct {
	Name             string      `json:"name"`
	Phone            string      `json:"phone"`
	Gender           string      `json:"gender"`
	AadhaarNumber    string      `json:"aadhaarNumber"`
	Address          string      `json:"address"`
	CarVoucherNumber string      `json:"carVoucherNumber"`
	CarNumber        string      `json:"carNumber"`
	Zone             string      `json:"zone"`
	SerialNo         interface{} `json:"serialNo"`   // string or number
	ZoneDay1         string      `json:"zoneDay1"`
	ReferredBy       interface{} `json:"referredBy"` // number or numeric string
}

// Handler handles attendee HTTP endpoints.
type Handler struct {
	store   Store
	qr      *qr.Service
	baseURL string
	logger  *zap.Logger
}

// NewHandler creates an attendees handler. baseURL is the externally
// reachable address embedded in scan URLs.
func NewHandler(store Store, qrService *qr.Service, baseURL string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, qr: qrService, baseURL: strings.TrimRight(baseURL, "/"), logger: logger}
}

// Register handles POST /register. Creates the record first so the scan URL
// can embed the store-assigned id, then generates and stores the QR image.
// A failed image upload is logged and the registration still succeeds.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	referredBy, err := parseReferredBy(req.ReferredBy)
	if err != nil {
		response.Fail(c, msgInvalidRefBy)
		return
	}

	zoneDay1 := zones.Normalize(req.ZoneDay1)
	zoneDay2 := ""
	if zoneDay1 != "" {
		zoneDay2, err = zones.DeriveDay2(zoneDay1)
		if err != nil {
			response.Fail(c, msgInvalidZone)
			return
		}
	}

	a := &models.Attendee{
		Name:             req.Name,
		Phone:            req.Phone,
		Gender:           req.Gender,
		AadhaarNumber:    req.AadhaarNumber,
		Address:          req.Address,
		CarVoucherNumber: req.CarVoucherNumber,
		CarNumber:        req.CarNumber,
		Zone:             req.Zone,
		SerialNo:         stringify(req.SerialNo),
		ZoneDay1:         zoneDay1,
		ZoneDay2:         zoneDay2,
		ReferredBy:       referredBy,
		GateStatus:       models.StatusOut,
		WashroomStatus:   models.StatusOut,
	}
	if err := h.insertWithFreshCode(c.Request.Context(), a); err != nil {
		h.logger.Error("create attendee", zap.Error(err))
		response.Internal(c, msgServerError)
		return
	}

	scanURL := h.baseURL + "/scan/" + a.ID.Hex()
	imageURL, err := h.qr.Create(c.Request.Context(), scanURL, a.ID.Hex())
	if err != nil {
		// Registration is not contingent on QR delivery; the record stays
		// with an empty image reference.
		h.logger.Error("qr image", zap.Error(err), zap.String("attendee_id", a.ID.Hex()))
	} else {
		a.QRImageURL = imageURL
		if err := h.store.SetQRImageURL(c.Request.Context(), a.ID.Hex(), imageURL); err != nil {
			h.logger.Error("persist qr image url", zap.Error(err), zap.String("attendee_id", a.ID.Hex()))
		}
	}

	resp := publicFields(a)
	resp["success"] = true
	resp["scanUrl"] = scanURL
	resp["qrImageUrl"] = a.QRImageURL
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /user/:id. Returns the redacted view used to pre-fill the
// update form.
func (h *Handler) Get(c *gin.Context) {
	a, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, msgUserNotFound)
		return
	}
	if err != nil {
		h.logger.Error("get attendee", zap.Error(err))
		response.Internal(c, msgServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": a.Redacted()})
}

// List handles GET /users. Returns every record, newest first, as a bare
// array.
func (h *Handler) List(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list attendees", zap.Error(err))
		response.Internal(c, msgServerError)
		return
	}
	c.JSON(http.StatusOK, list)
}

// insertWithFreshCode assigns a manual code and inserts, regenerating on a
// unique-index collision.
func (h *Handler) insertWithFreshCode(ctx context.Context, a *models.Attendee) error {
	for attempt := 0; attempt < insertMaxRetries; attempt++ {
		code, err := codes.Generate()
		if err != nil {
			return err
		}
		a.ManualCode = code
		err = h.store.Insert(ctx, a)
		if errors.Is(err, ErrDuplicateCode) {
			continue
		}
		return err
	}
	return ErrDuplicateCode
}

// publicFields is the flat field set shared by the register and scan
// responses. The record id is deliberately absent; clients reach records
// through the scan URL or the manual code.
func publicFields(a *models.Attendee) gin.H {
	return gin.H{
		"name":             a.Name,
		"phone":            a.Phone,
		"gender":           a.Gender,
		"aadhaarNumber":    a.AadhaarNumber,
		"address":          a.Address,
		"carVoucherNumber": a.CarVoucherNumber,
		"carNumber":        a.CarNumber,
		"zone":             a.Zone,
		"serialNo":         a.SerialNo,
		"zoneDay1":         a.ZoneDay1,
		"zoneDay2":         a.ZoneDay2,
		"referredBy":       a.ReferredBy,
		"manualCode":       a.ManualCode,
		"gateStatus":       a.GateStatus,
		"washroomStatus":   a.WashroomStatus,
	}
}

// parseReferredBy coerces the referredBy payload value to a finite number.
// nil and empty strings mean "not provided"; anything else must parse.
func parseReferredBy(v interface{}) (*float64, error) {
	switch n := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return &n, nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.New("referredBy is not a finite number")
		}
		return &f, nil
	default:
		return nil, errors.New("referredBy is not a number")
	}
}

// stringify renders a serial number supplied as either a string or a JSON
// number.
func stringify(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}
