package handler

import (
	"net/http"

	"gramseva/internal/models"
	"gramseva/internal/repository"
	"gramseva/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	repo   *repository.MessageRepository
	notify *service.NotifyService
}

func NewMessageHandler(repo *repository.MessageRepository, notify *service.NotifyService) *MessageHandler {
	return &MessageHandler{repo: repo, notify: notify}
}

// MessageRequest is the public contact submission body.
type MessageRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=20"`
	Subject string `json:"subject" binding:"required,max=300"`
	Message string `json:"message" binding:"required"`
}

// MessageUpdateRequest covers the staff-only tracking fields. Identity
// fields of a submission are immutable.
type MessageUpdateRequest struct {
	IsRead       *bool   `json:"is_read"`
	IsReplied    *bool   `json:"is_replied"`
	ReplyMessage *string `json:"reply_message"`
}

// Create is open to everyone; this is the contact-form path. The email
// notification fires after the row is committed and can never undo it.
func (h *MessageHandler) Create(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.repo.Create(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit message"})
		return
	}
	h.notify.ContactReceived(m)
	c.JSON(http.StatusCreated, m)
}

func (h *MessageHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": list})
}

func (h *MessageHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MessageHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.repo.GetByID(id)
	if !getOrNotFound(c, err) {
		return
	}
	var req MessageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.IsRead != nil {
		m.IsRead = *req.IsRead
	}
	if req.IsReplied != nil {
		m.IsReplied = *req.IsReplied
	}
	if req.ReplyMessage != nil {
		m.ReplyMessage = *req.ReplyMessage
	}
	if err := h.repo.Update(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// MarkRead flips is_read and nothing else. No request body.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repo.MarkRead(id); !getOrNotFound(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "message marked as read"})
}

func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.repo.GetByID(id); !getOrNotFound(c, err) {
		return
	}
	if err := h.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
