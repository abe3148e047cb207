package bids

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nos-auction/backend/internal/middleware"
	"github.com/nos-auction/backend/internal/models"
	"github.com/nos-auction/backend/pkg/response"
	"github.com/nos-auction/backend/pkg/validate"
)

// Store appends bid rows to the record store.
type Store interface {
	AppendBid(ctx context.Context, b models.Bid) error
}

// BidRequest is the body for POST /bids. BidAmount may be omitted (stored as
// an empty cell) but must be positive when present.
type BidRequest struct {
	BundleSlug string   `json:"bundleSlug" binding:"required,oneof=vrf-indoor vrf-outdoor accessories split spare mixed"`
	BidAmount  *float64 `json:"bidAmount" binding:"omitempty,gt=0"`
	Notes      string   `json:"notes" binding:"omitempty,max=2000"`
}

// Handler handles bid HTTP endpoints.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a bids handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

// Submit handles POST /bids. One row per submission; a corrected bid is a
// new row, never an edit.
func (h *Handler) Submit(c *gin.Context) {
	user, ok := middleware.SessionUser(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validate.FieldErrors(err))
		return
	}

	bid := models.Bid{
		Timestamp:     time.Now(),
		ParticipantID: user.ParticipantID,
		Email:         user.Email,
		BundleSlug:    req.BundleSlug,
		BidAmount:     req.BidAmount,
		Notes:         req.Notes,
		ClientIP:      c.ClientIP(),
		UserAgent:     c.Request.UserAgent(),
	}
	if err := h.store.AppendBid(c.Request.Context(), bid); err != nil {
		h.logger.Error("append bid", zap.Error(err),
			zap.String("participant_id", user.ParticipantID),
			zap.String("bundle", req.BundleSlug))
		response.Internal(c, "Bid submission failed. Please try again.")
		return
	}

	h.logger.Info("bid logged",
		zap.String("participant_id", user.ParticipantID),
		zap.String("bundle", req.BundleSlug))
	response.OK(c, nil)
}
