package handlers

import (
	"context"
	"io"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justconnect/justconnect-api/internal/httperr"
	"github.com/justconnect/justconnect-api/internal/httpresp"
	"github.com/justconnect/justconnect-api/internal/middleware"
	"github.com/justconnect/justconnect-api/internal/models"
)

// ChatHub is the live-delivery side of the chat feature.
type ChatHub interface {
	Publish(ctx context.Context, bookingID uint, msg models.Message) error
	Subscribe(ctx context.Context, bookingID uint) (<-chan models.Message, error)
}

type ChatHandler struct {
	db  *gorm.DB
	hub ChatHub
}

func NewChatHandler(db *gorm.DB, hub ChatHub) *ChatHandler {
	return &ChatHandler{db: db, hub: hub}
}

// --------- Requests ---------

type SendMessageRequest struct {
	Body string `json:"body" binding:"required,max=1000"`
}

// --------- Handlers ---------

func (h *ChatHandler) Send(c *gin.Context) {
	id := c.MustGet(middleware.ContextIdentity).(middleware.Identity)

	bookingID, ok := h.conversationFor(c, id.ID)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "body is required")
		return
	}

	msg := models.Message{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		SenderID:   id.ID,
		SenderName: id.Name,
		Body:       req.Body,
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, err, "failed to send message")
		return
	}

	// live delivery is best effort; the message is already persisted
	if err := h.hub.Publish(c.Request.Context(), bookingID, msg); err != nil {
		log.Printf("chat: publish failed for booking %d: %v", bookingID, err)
	}

	httpresp.Created(c, "message sent", gin.H{"chat_message": msg})
}

func (h *ChatHandler) History(c *gin.Context) {
	id := c.MustGet(middleware.ContextIdentity).(middleware.Identity)

	bookingID, ok := h.conversationFor(c, id.ID)
	if !ok {
		return
	}

	var messages []models.Message
	if err := h.db.
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		httperr.Internal(c, err, "failed to load messages")
		return
	}

	httpresp.OK(c, "messages retrieved", gin.H{
		"count":    len(messages),
		"messages": messages,
	})
}

// Stream pushes live conversation messages over server-sent events until
// the client disconnects.
func (h *ChatHandler) Stream(c *gin.Context) {
	id := c.MustGet(middleware.ContextIdentity).(middleware.Identity)

	bookingID, ok := h.conversationFor(c, id.ID)
	if !ok {
		return
	}

	msgs, err := h.hub.Subscribe(c.Request.Context(), bookingID)
	if err != nil {
		httperr.Internal(c, err, "failed to open stream")
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, open := <-msgs:
			if !open {
				return false
			}
			c.SSEvent("message", msg)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// conversationFor resolves the :bookingID param and checks the caller is
// one of the two booking parties. Outsiders get 403.
func (h *ChatHandler) conversationFor(c *gin.Context, userID uint) (uint, bool) {
	bookingID, ok := chatBookingParamID(c)
	if !ok {
		return 0, false
	}

	var b models.Booking
	if err := h.db.
		Preload("Professional").
		First(&b, bookingID).Error; err != nil {
		httperr.NotFound(c, "booking not found")
		return 0, false
	}

	if b.ClientID != userID && b.Professional.UserID != userID {
		httperr.Forbidden(c, "not a party of this conversation")
		return 0, false
	}

	return b.ID, true
}

func chatBookingParamID(c *gin.Context) (uint, bool) {
	id, err := parseUintParam(c.Param("bookingID"))
	if err != nil {
		httperr.NotFound(c, "booking not found")
		return 0, false
	}
	return id, true
}
