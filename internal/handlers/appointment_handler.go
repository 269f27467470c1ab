package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
	domain "github.com/BruksfildServices01/barber-platform/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-platform/internal/httperr"
	"github.com/BruksfildServices01/barber-platform/internal/httpresp"
	"github.com/BruksfildServices01/barber-platform/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-platform/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	updateStatus *ucAppointment.UpdateStatus
	list         *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	updateStatus *ucAppointment.UpdateStatus,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		updateStatus: updateStatus,
		list:         list,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	BarberID   uint   `json:"barber_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	LocationID *uint  `json:"location_id"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:mm
	Notes      string `json:"notes"`
}

type CreateManualAppointmentRequest struct {
	ClientID   uint   `json:"client_id" binding:"required"`
	BarberID   uint   `json:"barber_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	LocationID *uint  `json:"location_id"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Notes      string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

// Create books online on behalf of the authenticated client; the booking
// starts pending review.
func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := middleware.Actor(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateInput{
		Actor:      actor,
		BarberID:   req.BarberID,
		ServiceID:  req.ServiceID,
		LocationID: req.LocationID,
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{"appointment": ap})
}

// CreateManual books on a client's behalf; the booking skips review and
// starts accepted. Slot conflicts surface as 400 on this endpoint.
func (h *AppointmentHandler) CreateManual(c *gin.Context) {
	actor := middleware.Actor(c)

	var req CreateManualAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Campos obrigatórios em falta.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateInput{
		Actor:      actor,
		ClientID:   req.ClientID,
		BarberID:   req.BarberID,
		ServiceID:  req.ServiceID,
		LocationID: req.LocationID,
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
		Manual:     true,
	})
	if err != nil {
		if apperr.IsKind(err, apperr.KindConflict) {
			httperr.BadRequest(c, "slot_conflict", "Horário já reservado.")
			return
		}
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{"appointment": ap})
}

func (h *AppointmentHandler) List(c *gin.Context) {
	actor := middleware.Actor(c)

	in := ucAppointment.ListInput{
		Actor:  actor,
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}

	if barberStr := c.Query("barber_id"); barberStr != "" {
		id, err := strconv.ParseUint(barberStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return
		}
		barberID := uint(id)
		in.BarberID = &barberID
	}

	aps, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actor := middleware.Actor(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Estado obrigatório.")
		return
	}

	ap, err := h.updateStatus.Execute(
		c.Request.Context(),
		actor,
		uint(id),
		domain.Status(req.Status),
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{"appointment": ap})
}
