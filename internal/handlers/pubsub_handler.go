package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/salon-cloud/salon-api/internal/events"
	"github.com/salon-cloud/salon-api/internal/httperr"
	"github.com/salon-cloud/salon-api/internal/httpresp"
)

type PubSubHandler struct {
	publisher events.Publisher
}

func NewPubSubHandler(publisher events.Publisher) *PubSubHandler {
	return &PubSubHandler{publisher: publisher}
}

type PublishRequest struct {
	TopicName string          `json:"topicName"`
	Message   json.RawMessage `json:"message"`
}

// ======================================================
// POST /pubsub/publish — forwards the message verbatim
// ======================================================
func (h *PubSubHandler) Publish(c *gin.Context) {
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err.Error(), "Message publishing failed")
		return
	}

	if req.TopicName == "" || len(req.Message) == 0 {
		httperr.BadRequest(c, "missing topic name or message", "Message publishing failed")
		return
	}

	result, err := h.publisher.PublishRaw(c.Request.Context(), req.TopicName, req.Message)
	if err != nil {
		httperr.Internal(c, err.Error(), "Message publishing failed")
		return
	}

	httpresp.OK(c, gin.H{
		"messageId": result.MessageID,
		"topicName": result.Topic,
		"message":   "Message published successfully",
	})
}
