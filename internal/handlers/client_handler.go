package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-platform/internal/httperr"
	"github.com/BruksfildServices01/barber-platform/internal/httpresp"
	"github.com/BruksfildServices01/barber-platform/internal/middleware"
	ucClient "github.com/BruksfildServices01/barber-platform/internal/usecase/client"
)

type ClientHandler struct {
	db           *gorm.DB
	createManual *ucClient.CreateManualClient
	listStats    *ucClient.ListClientsWithStats
}

func NewClientHandler(
	db *gorm.DB,
	createManual *ucClient.CreateManualClient,
	listStats *ucClient.ListClientsWithStats,
) *ClientHandler {
	return &ClientHandler{
		db:           db,
		createManual: createManual,
		listStats:    listStats,
	}
}

// --------- Requests ---------

type CreateManualClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// --------- Handlers ---------

// CreateManual creates a shadow client. The response echoes the email, which
// is synthetic ("@manual.local") when none was supplied.
func (h *ClientHandler) CreateManual(c *gin.Context) {
	actor := middleware.Actor(c)

	var req CreateManualClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome obrigatório.")
		return
	}

	client, err := h.createManual.Execute(c.Request.Context(), ucClient.CreateManualInput{
		Actor: actor,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{"client": client})
}

// ListWithStatistics is the CRM view: every client joined with booking
// aggregates. Admin only.
func (h *ClientHandler) ListWithStatistics(c *gin.Context) {
	actor := middleware.Actor(c)

	clients, err := h.listStats.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, clients)
}
