package downloads

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nos-auction/backend/internal/catalogues"
	"github.com/nos-auction/backend/internal/middleware"
	"github.com/nos-auction/backend/internal/models"
	"github.com/nos-auction/backend/pkg/response"
)

// Store appends download rows to the record store.
type Store interface {
	AppendDownload(ctx context.Context, d models.Download) error
}

// Handler handles catalogue download tracking.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a downloads handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

// Track handles GET /track/download?catalogue=slug. On success it records
// the download and redirects to the catalogue file; a slug with no file
// (or an unknown one) is a 404 and nothing is recorded.
func (h *Handler) Track(c *gin.Context) {
	user, ok := middleware.SessionUser(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	slug := c.Query("catalogue")
	cat, found := catalogues.BySlug(slug)
	if !found || cat.FileURL == "" {
		response.NotFound(c, "Catalogue not found")
		return
	}

	rec := models.Download{
		Timestamp:      time.Now(),
		ParticipantID:  user.ParticipantID,
		Email:          user.Email,
		CatalogueSlug:  cat.Slug,
		CatalogueTitle: cat.Title,
		ClientIP:       c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
	}
	if err := h.store.AppendDownload(c.Request.Context(), rec); err != nil {
		h.logger.Error("append download", zap.Error(err),
			zap.String("participant_id", user.ParticipantID),
			zap.String("catalogue", cat.Slug))
		response.Internal(c, "Download failed. Please try again.")
		return
	}

	h.logger.Info("download tracked",
		zap.String("participant_id", user.ParticipantID),
		zap.String("catalogue", cat.Slug))
	c.Redirect(http.StatusFound, cat.FileURL)
}

// List handles GET /catalogues for the access page cards.
func (h *Handler) List(c *gin.Context) {
	response.OK(c, catalogues.All)
}
