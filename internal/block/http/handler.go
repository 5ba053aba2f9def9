package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/penzionapp/guesthouse-booking-backend/internal/block"
	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/response"
)

type Handler struct {
	service block.Service
}

func NewHandler(service block.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	roomID := c.Query("roomId")
	if roomID != "" {
		if _, err := uuid.Parse(roomID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
			return
		}
	}

	blocks, err := h.service.List(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BlockResponse, len(blocks))
	for i, b := range blocks {
		items[i] = NewBlockResponse(b)
	}
	c.JSON(http.StatusOK, gin.H{"blocks": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBlockBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := block.CreateRequest{
		RoomID:  body.RoomID,
		Date:    body.Date.Time,
		HalfDay: calendar.HalfDay(body.HalfDay),
		Reason:  body.Reason,
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"block": NewBlockResponse(b)})
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
