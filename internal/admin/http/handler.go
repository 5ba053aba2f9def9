package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/penzionapp/guesthouse-booking-backend/internal/admin"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/response"
)

type Handler struct {
	service admin.Service
}

func NewHandler(service admin.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Login(c *gin.Context) {
	var body LoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: result.Token, Username: result.Username})
}
