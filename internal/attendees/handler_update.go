package attendees

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gatepass/backend/internal/zones"
	"github.com/gatepass/backend/pkg/response"
)

// UpdateRequest is the body for POST /update. manualCode locates the record
// and is itself never overwritten. Absent and empty fields are skipped.
type UpdateRequest struct {
	ManualCode       string      `json:"manualCode"`
	Name             *string     `json:"name"`
	Phone            *string     `json:"phone"`
	Gender           *string     `json:"gender"`
	AadhaarNumber    *string     `json:"aadhaarNumber"`
	Address          *string     `json:"address"`
	CarVoucherNumber *string     `json:"carVoucherNumber"`
	CarNumber        *string     `json:"carNumber"`
	Zone             *string     `json:"zone"`
	SerialNo         interface{} `json:"serialNo"`
	ZoneDay1         *string     `json:"zoneDay1"`
	ReferredBy       interface{} `json:"referredBy"`
	GateStatus       *string     `json:"gateStatus"`
	WashroomStatus   *string     `json:"washroomStatus"`
}

// Update handles POST /update. Only the allow-listed fields above are
// writable; zoneDay1 and referredBy are re-validated before anything is
// applied, and a validation failure leaves the record untouched.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	a, err := h.store.GetByManualCode(c.Request.Context(), req.ManualCode)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, msgUserNotFound)
		return
	}
	if err != nil {
		h.logger.Error("update lookup", zap.Error(err))
		response.Internal(c, msgServerError)
		return
	}

	var params UpdateParams
	if req.ZoneDay1 != nil {
		if z1 := zones.Normalize(*req.ZoneDay1); z1 != "" {
			z2, err := zones.DeriveDay2(z1)
			if err != nil {
				response.Fail(c, msgInvalidZone)
				return
			}
			params.ZoneDay1 = &z1
			params.ZoneDay2 = &z2
		}
	}

	referredBy, err := parseReferredBy(req.ReferredBy)
	if err != nil {
		response.Fail(c, msgInvalidRefBy)
		return
	}
	params.ReferredBy = referredBy

	params.Name = nonEmpty(req.Name)
	params.Phone = nonEmpty(req.Phone)
	params.Gender = nonEmpty(req.Gender)
	params.AadhaarNumber = nonEmpty(req.AadhaarNumber)
	params.Address = nonEmpty(req.Address)
	params.CarVoucherNumber = nonEmpty(req.CarVoucherNumber)
	params.CarNumber = nonEmpty(req.CarNumber)
	params.Zone = nonEmpty(req.Zone)
	params.GateStatus = nonEmpty(req.GateStatus)
	params.WashroomStatus = nonEmpty(req.WashroomStatus)
	if serial := stringify(req.SerialNo); serial != "" {
		params.SerialNo = &serial
	}

	updated, err := h.store.Update(c.Request.Context(), a.ID.Hex(), params)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, msgUserNotFound)
		return
	}
	if err != nil {
		h.logger.Error("update attendee", zap.Error(err))
		response.Internal(c, msgServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"user":    updated,
	})
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
