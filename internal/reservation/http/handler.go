package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/penzionapp/guesthouse-booking-backend/internal/auth"
	blockhttp "github.com/penzionapp/guesthouse-booking-backend/internal/block/http"
	"github.com/penzionapp/guesthouse-booking-backend/internal/invoice"
	"github.com/penzionapp/guesthouse-booking-backend/internal/notify"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/request"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/response"
	"github.com/penzionapp/guesthouse-booking-backend/internal/reservation"
	"github.com/penzionapp/guesthouse-booking-backend/internal/settings"
)

type Handler struct {
	service reservation.Service
	config  settings.Service
	sms     *notify.SMSClient
}

func NewHandler(service reservation.Service, config settings.Service, sms *notify.SMSClient) *Handler {
	return &Handler{service: service, config: config, sms: sms}
}

// respondError shapes validation rejections as a 400 carrying the full
// reason list; everything else goes through the shared error translator.
func respondError(c *gin.Context, err error) {
	var verr *reservation.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reservation rejected", "errors": verr.Reasons})
		return
	}
	response.Error(c, err)
}

func (h *Handler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters"})
		return
	}

	reservations, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	total := len(reservations)
	start := (params.Page - 1) * params.PageSize
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	items := make([]ReservationResponse, 0, end-start)
	for _, r := range reservations[start:end] {
		items = append(items, NewReservationResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"reservations": response.NewPageResponse(items, params.Page, params.PageSize, total)})
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": NewReservationResponse(r)})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := reservation.CreateRequest{
		RoomID:         body.RoomID,
		CheckIn:        body.CheckIn.Time,
		CheckOut:       body.CheckOut.Time,
		GuestName:      body.GuestName,
		GuestEmail:     body.GuestEmail,
		GuestPhone:     body.GuestPhone,
		NumberOfGuests: body.NumberOfGuests,
		Note:           body.Note,
	}

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservation": NewReservationResponse(r)})
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := reservation.UpdateRequest{
		GuestName:      body.GuestName,
		GuestEmail:     body.GuestEmail,
		GuestPhone:     body.GuestPhone,
		NumberOfGuests: body.NumberOfGuests,
		Note:           body.Note,
	}
	if body.CheckIn != nil {
		req.CheckIn = &body.CheckIn.Time
	}
	if body.CheckOut != nil {
		req.CheckOut = &body.CheckOut.Time
	}
	if body.Status != nil {
		status := reservation.Status(*body.Status)
		req.Status = &status
	}

	r, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": NewReservationResponse(r)})
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body CancelReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.Cancel(c.Request.Context(), id, body.RefundAmount, body.RefundReason)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": NewReservationResponse(r)})
}

func (h *Handler) MarkPaid(c *gin.Context) {
	h.applyTransition(c, h.service.MarkPaid)
}

func (h *Handler) MarkDepositPaid(c *gin.Context) {
	h.applyTransition(c, h.service.MarkDepositPaid)
}

func (h *Handler) MarkFinalPaymentPaid(c *gin.Context) {
	h.applyTransition(c, h.service.MarkFinalPaymentPaid)
}

func (h *Handler) applyTransition(c *gin.Context, apply func(ctx context.Context, id string) (*reservation.Reservation, error)) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	r, err := apply(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": NewReservationResponse(r)})
}

func (h *Handler) DeleteAll(c *gin.Context) {
	var body DeleteAllBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	count, err := h.service.DeleteAll(c.Request.Context(), auth.GetAdminID(c), body.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deletedCount": count})
}

func (h *Handler) Calendar(c *gin.Context) {
	roomID := c.Param("roomId")
	if _, err := uuid.Parse(roomID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	reservations, blocks, err := h.service.Calendar(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resItems := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		resItems[i] = NewReservationResponse(r)
	}
	blockItems := make([]blockhttp.BlockResponse, len(blocks))
	for i, b := range blocks {
		blockItems[i] = blockhttp.NewBlockResponse(b)
	}
	c.JSON(http.StatusOK, gin.H{"reservations": resItems, "blocks": blockItems})
}

func (h *Handler) PaymentQR(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	deposit := c.Query("type") == "deposit"
	qr, err := h.service.PaymentQR(c.Request.Context(), id, deposit)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"qrCode": qr})
}

func (h *Handler) Invoice(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	cfg, err := h.config.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if cfg.Guesthouse.Name == "" || cfg.Guesthouse.ICO == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guesthouse settings are incomplete"})
		return
	}

	pdf, err := invoice.Render(invoiceData(r, cfg.Guesthouse))
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := invoice.Filename(r.InvoiceNumber)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// SendSMS lets an admin push an ad-hoc SMS to the guest of a reservation.
func (h *Handler) SendSMS(c *gin.Context) {
	id := c.Param("reservationId")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body SendSMSBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	cfg, err := h.config.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.sms.Send(cfg.SMS, r.GuestPhone, body.Message); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send SMS", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func invoiceData(r *reservation.Reservation, gh settings.Guesthouse) invoice.Data {
	return invoice.Data{
		InvoiceNumber:   r.InvoiceNumber,
		VariableSymbol:  r.VariableSymbol,
		IssuedAt:        r.CreatedAt,
		DueAt:           r.CheckIn,
		SupplierName:    gh.Name,
		SupplierICO:     gh.ICO,
		SupplierDIC:     gh.DIC,
		SupplierAddress: gh.Address,
		BankAccount:     gh.BankAccount,
		CustomerName:    r.GuestName,
		CustomerEmail:   r.GuestEmail,
		CustomerPhone:   r.GuestPhone,
		RoomName:        r.RoomName,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		Nights:          r.Nights,
		TotalPrice:      r.TotalPrice,
		DepositAmount:   r.DepositAmount,
	}
}
