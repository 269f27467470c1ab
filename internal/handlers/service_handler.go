package handlers

import (
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-platform/internal/auth"
	"github.com/BruksfildServices01/barber-platform/internal/httperr"
	"github.com/BruksfildServices01/barber-platform/internal/httpresp"
	"github.com/BruksfildServices01/barber-platform/internal/middleware"
	"github.com/BruksfildServices01/barber-platform/internal/models"
	"github.com/BruksfildServices01/barber-platform/internal/storage"
)

const maxImageBytes = 8 << 20

type ServiceHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
}

func NewServiceHandler(db *gorm.DB, uploader storage.Uploader) *ServiceHandler {
	return &ServiceHandler{db: db, uploader: uploader}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	DurationMin int     `json:"duration_min"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	actor := middleware.Actor(c)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("tenant_id = ?", actor.TenantID)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.OK(c, gin.H{"services": services})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actor := middleware.Actor(c)

	if !auth.Can(actor, auth.ActionCreate, auth.ResourceService) {
		httperr.Forbidden(c, "forbidden", "Apenas administradores podem criar serviços.")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	duration := req.DurationMin
	if duration <= 0 {
		duration = 30
	}

	service := models.Service{
		TenantID:    actor.TenantID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: duration,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	httpresp.OK(c, gin.H{"service": service})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	actor := middleware.Actor(c)

	if !auth.Can(actor, auth.ActionUpdate, auth.ResourceService) {
		httperr.Forbidden(c, "forbidden", "Apenas administradores podem editar serviços.")
		return
	}

	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND tenant_id = ?", id, actor.TenantID).
		First(&service).Error; err != nil {

		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, gin.H{"service": service})
}

// UploadImage stores the service image (re-encoded to webp) and saves the
// resulting URL on the service row.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	actor := middleware.Actor(c)

	if !auth.Can(actor, auth.ActionUpdate, auth.ResourceService) {
		httperr.Forbidden(c, "forbidden", "Apenas administradores podem editar serviços.")
		return
	}

	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND tenant_id = ?", id, actor.TenantID).
		First(&service).Error; err != nil {

		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Imagem obrigatória.")
		return
	}
	if file.Size > maxImageBytes {
		httperr.BadRequest(c, "image_too_large", "Imagem demasiado grande.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler imagem.")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler imagem.")
		return
	}

	url, err := h.uploader.UploadImage(c.Request.Context(), data)
	if err != nil {
		httperr.From(c, err)
		return
	}

	service.ImageURL = url
	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, gin.H{"service": service})
}
