package attendees

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gatepass/backend/internal/models"
	"github.com/gatepass/backend/pkg/response"
)

// Scan handles GET /scan/:id?action=gate|washroom. A recognized action flips
// the corresponding status; an unrecognized action changes nothing but still
// returns the current state.
func (h *Handler) Scan(c *gin.Context) {
	action := c.Query("action")
	a, err := h.applyAction(c.Request.Context(), c.Param("id"), action)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, msgUserNotFound)
		return
	}
	if err != nil {
		h.logger.Error("scan", zap.Error(err), zap.String("action", action))
		response.Internal(c, msgServerError)
		return
	}

	resp := publicFields(a)
	resp["success"] = true
	resp["message"] = scanMessage(action)
	resp["time"] = time.Now()
	c.JSON(http.StatusOK, resp)
}

// Manual handles GET /manual?code=...&action=... — the fallback path keyed
// by the attendee's manual code instead of the QR scan URL.
func (h *Handler) Manual(c *gin.Context) {
	code := c.Query("code")
	a, err := h.store.GetByManualCode(c.Request.Context(), code)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Invalid manual code")
		return
	}
	if err != nil {
		h.logger.Error("manual lookup", zap.Error(err))
		response.Internal(c, msgServerError)
		return
	}

	action := c.Query("action")
	a, err = h.applyAction(c.Request.Context(), a.ID.Hex(), action)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Invalid manual code")
		return
	}
	if err != nil {
		h.logger.Error("manual scan", zap.Error(err), zap.String("action", action))
		response.Internal(c, msgServerError)
		return
	}

	resp := publicFields(a)
	resp["success"] = true
	resp["message"] = scanMessage(action)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) applyAction(ctx context.Context, id, action string) (*models.Attendee, error) {
	switch action {
	case string(CheckpointGate):
		return h.store.Toggle(ctx, id, CheckpointGate, time.Now())
	case string(CheckpointWashroom):
		return h.store.Toggle(ctx, id, CheckpointWashroom, time.Now())
	default:
		return h.store.GetByID(ctx, id)
	}
}

func scanMessage(action string) string {
	if action == string(CheckpointGate) {
		return "Gate scan successful"
	}
	return "Washroom scan successful"
}
