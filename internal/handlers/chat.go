// internal/handlers/chat.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hazaldoster/beautybot/internal/i18n"
	"github.com/hazaldoster/beautybot/internal/services"
	"github.com/hazaldoster/beautybot/internal/utils"
)

type ChatHandler struct {
	chatService *services.ChatService
	log         *logrus.Logger
}

func NewChatHandler(chatService *services.ChatService, log *logrus.Logger) *ChatHandler {
	return &ChatHandler{chatService: chatService, log: log}
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// POST /chat
//
// Streams the reply as server-sent events: each chunk arrives as
// {"text": "..."} and the stream ends with {"done": true}. A failure
// mid-stream is reported in-band as {"error": "..."} because the 200
// status line has already been written.
func (h *ChatHandler) Chat(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyErrMessageRequired), nil)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyErrMessageRequired), nil)
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyErrMessageEmpty), nil)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	flusher, _ := c.Writer.(http.Flusher)
	emit := func(payload interface{}) error {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	}

	err := h.chatService.ChatStream(c.Request.Context(), message, func(chunk string) error {
		return emit(gin.H{"text": chunk})
	})
	if err != nil {
		h.log.WithError(err).Error("chat stream failed")
		_ = emit(gin.H{"error": err.Error()})
		return
	}

	_ = emit(gin.H{"done": true})
}

// POST /chat/reset
func (h *ChatHandler) Reset(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	h.chatService.ResetConversation()

	utils.SuccessResponse(c, gin.H{
		"status":  "ok",
		"message": i18n.T(lang, i18n.KeyChatReset),
	})
}
