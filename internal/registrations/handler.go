package registrations

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nos-auction/backend/internal/middleware"
	"github.com/nos-auction/backend/internal/models"
	"github.com/nos-auction/backend/internal/session"
	"github.com/nos-auction/backend/pkg/response"
	"github.com/nos-auction/backend/pkg/utils"
	"github.com/nos-auction/backend/pkg/validate"
)

// Store appends registration rows to the record store.
type Store interface {
	AppendRegistration(ctx context.Context, r models.Registration) error
}

// RegisterRequest is the body for POST /register.
type RegisterRequest struct {
	FullName    string   `json:"fullName" binding:"required,min=2"`
	CompanyName string   `json:"companyName" binding:"required,min=1"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone" binding:"required,min=5"`
	Country     string   `json:"country" binding:"required,min=2"`
	Interests   []string `json:"interests" binding:"required,min=1,dive,oneof=indoor outdoor accessories split spare"`
}

// Handler handles registration HTTP endpoints.
type Handler struct {
	store    Store
	sessions *session.Service
	logger   *zap.Logger
}

// NewHandler creates a registrations handler.
func NewHandler(store Store, sessions *session.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, sessions: sessions, logger: logger}
}

// Register handles POST /register. The session cookie is issued before the
// row is appended, so a registrant keeps access even when the store write
// fails; the retry then produces a second row, which the append-only model
// tolerates.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validate.FieldErrors(err))
		return
	}

	participantID, err := utils.NewParticipantID()
	if err != nil {
		h.logger.Error("generate participant id", zap.Error(err))
		response.Internal(c, "Registration failed. Please try again.")
		return
	}
	user := models.SessionUser{
		ParticipantID: participantID,
		FullName:      req.FullName,
		Email:         req.Email,
	}
	token, err := h.sessions.Issue(user)
	if err != nil {
		h.logger.Error("issue session", zap.Error(err))
		response.Internal(c, "Registration failed. Please try again.")
		return
	}
	h.sessions.SetCookie(c, token)

	rec := models.Registration{
		Timestamp:     time.Now(),
		ParticipantID: participantID,
		FullName:      req.FullName,
		CompanyName:   req.CompanyName,
		Email:         req.Email,
		Phone:         req.Phone,
		Country:       req.Country,
		Interests:     req.Interests,
		ClientIP:      c.ClientIP(),
		UserAgent:     c.Request.UserAgent(),
	}
	if err := h.store.AppendRegistration(c.Request.Context(), rec); err != nil {
		h.logger.Error("append registration", zap.Error(err),
			zap.String("participant_id", participantID))
		response.Internal(c, "Registration failed. Please try again.")
		return
	}

	h.logger.Info("registration logged",
		zap.String("participant_id", participantID),
		zap.String("email", req.Email))
	response.OK(c, nil)
}

// Session handles GET /session. It runs behind the session middleware and
// echoes the verified identity so the access page can render its view.
func (h *Handler) Session(c *gin.Context) {
	user, ok := middleware.SessionUser(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}
	response.OK(c, user)
}
