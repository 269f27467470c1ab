package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-platform/internal/audit"
	"github.com/BruksfildServices01/barber-platform/internal/auth"
	"github.com/BruksfildServices01/barber-platform/internal/cache"
	"github.com/BruksfildServices01/barber-platform/internal/httperr"
	"github.com/BruksfildServices01/barber-platform/internal/httpresp"
	"github.com/BruksfildServices01/barber-platform/internal/middleware"
	"github.com/BruksfildServices01/barber-platform/internal/models"
	"github.com/BruksfildServices01/barber-platform/internal/quota"
)

type LocationHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewLocationHandler(db *gorm.DB, audit *audit.Dispatcher, cache *cache.Cache) *LocationHandler {
	return &LocationHandler{db: db, audit: audit, cache: cache}
}

// --------- Requests ---------

type LocationHoursConfig struct {
	Weekday  int    `json:"weekday" binding:"min=0,max=6"`
	Open     bool   `json:"open"`
	OpensAt  string `json:"opens_at"`
	ClosesAt string `json:"closes_at"`
}

type CreateLocationRequest struct {
	Name    string                `json:"name" binding:"required"`
	Address string                `json:"address"`
	Phone   string                `json:"phone"`
	Hours   []LocationHoursConfig `json:"hours"`
}

type UpdateLocationRequest struct {
	Name    *string               `json:"name,omitempty"`
	Address *string               `json:"address,omitempty"`
	Phone   *string               `json:"phone,omitempty"`
	Hours   []LocationHoursConfig `json:"hours,omitempty"`
}

// --------- Handlers ---------

// ListActive returns only non-archived locations. Archived ones stay
// reachable through Get so historical appointments still render.
func (h *LocationHandler) ListActive(c *gin.Context) {
	actor := middleware.Actor(c)

	var locations []models.Location
	if err := h.db.
		Preload("Hours").
		Where("tenant_id = ? AND archived = ?", actor.TenantID, false).
		Order("id ASC").
		Find(&locations).Error; err != nil {

		httperr.Internal(c, "failed_to_list_locations", "Erro ao listar locais.")
		return
	}

	httpresp.OK(c, gin.H{"locations": locations})
}

func (h *LocationHandler) Create(c *gin.Context) {
	actor := middleware.Actor(c)

	if !auth.Can(actor, auth.ActionCreate, auth.ResourceLocation) {
		httperr.Forbidden(c, "forbidden", "Apenas administradores podem criar locais.")
		return
	}

	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	location := models.Location{
		TenantID: actor.TenantID,
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
	}

	// The quota gate locks the tenant row inside the insert transaction, so
	// concurrent creates (or an archive-and-create race) serialize and cannot
	// slip past the plan limit.
	var tenant *models.Tenant
	err := h.db.Transaction(func(tx *gorm.DB) error {
		t, err := quota.EnsureCanCreateLocation(tx, actor.TenantID)
		if err != nil {
			return err
		}
		tenant = t

		if err := tx.Create(&location).Error; err != nil {
			return err
		}

		return createHours(tx, location.ID, req.Hours)
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	actorID := actor.ID
	h.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		ActorID:  &actorID,
		Action:   "location_created",
		Entity:   "location",
		EntityID: &location.ID,
	})
	h.invalidatePublicPage(c, tenant)

	httpresp.OK(c, gin.H{"location": location})
}

// Get resolves archived locations too: appointment history needs them.
func (h *LocationHandler) Get(c *gin.Context) {
	actor := middleware.Actor(c)
	id := c.Param("id")

	var location models.Location
	if err := h.db.
		Preload("Hours").
		Where("id = ? AND tenant_id = ?", id, actor.TenantID).
		First(&location).Error; err != nil {

		httperr.NotFound(c, "location_not_found", "Local não encontrado.")
		return
	}

	var barbers []models.User
	h.db.
		Where("tenant_id = ? AND role = ? AND location_id = ?", actor.TenantID, "barbeiro", location.ID).
		Order("id ASC").
		Find(&barbers)

	httpresp.OK(c, gin.H{
		"location": location,
		"barbers":  barbers,
	})
}

func (h *LocationHandler) Update(c *gin.Context) {
	actor := middleware.Actor(c)

	if !auth.Can(actor, auth.ActionUpdate, auth.ResourceLocation) {
		httperr.Forbidden(c, "forbidden", "Apenas administradores podem editar locais.")
		return
	}

	id := c.Param("id")

	var location models.Location
	if err := h.db.
		Where("id = ? AND tenant_id = ?", id, actor.TenantID).
		First(&location).Error; err != nil {

		httperr.NotFound(c, "location_not_found", "Local não encontrado.")
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Address != nil {
		location.Address = *req.Address
	}
	if req.Phone != nil {
		location.Phone = *req.Phone
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&location).Error; err != nil {
			return err
		}

		if req.Hours != nil {
			if err := tx.Where("location_id = ?", location.ID).
				Delete(&models.LocationHours{}).Error; err != nil {
				return err
			}
			return createHours(tx, location.ID, req.Hours)
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_location", "Erro ao atualizar local.")
		return
	}

	h.invalidatePublicPageByID(c, actor.TenantID)

	httpresp.OK(c, gin.H{"location": location})
}

// Archive soft-deletes: the row stays, barbers keep their weak link and
// historical appointments keep resolving.
func (h *LocationHandler) Archive(c *gin.Context) {
	actor := middleware.Actor(c)

	if !auth.Can(actor, auth.ActionDelete, auth.ResourceLocation) {
		httperr.Forbidden(c, "forbidden", "Apenas administradores podem arquivar locais.")
		return
	}

	id := c.Param("id")

	var location models.Location
	if err := h.db.
		Where("id = ? AND tenant_id = ?", id, actor.TenantID).
		First(&location).Error; err != nil {

		httperr.NotFound(c, "location_not_found", "Local não encontrado.")
		return
	}

	location.Archived = true
	if err := h.db.Save(&location).Error; err != nil {
		httperr.Internal(c, "failed_to_archive_location", "Erro ao arquivar local.")
		return
	}

	actorID := actor.ID
	h.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		ActorID:  &actorID,
		Action:   "location_archived",
		Entity:   "location",
		EntityID: &location.ID,
	})
	h.invalidatePublicPageByID(c, actor.TenantID)

	httpresp.OK(c, gin.H{"location": location})
}

// --------- Helpers ---------

func createHours(tx *gorm.DB, locationID uint, hours []LocationHoursConfig) error {
	if len(hours) == 0 {
		return nil
	}

	rows := make([]models.LocationHours, 0, len(hours))
	for _, hc := range hours {
		rows = append(rows, models.LocationHours{
			LocationID: locationID,
			Weekday:    hc.Weekday,
			Open:       hc.Open,
			OpensAt:    hc.OpensAt,
			ClosesAt:   hc.ClosesAt,
		})
	}
	return tx.Create(&rows).Error
}

func (h *LocationHandler) invalidatePublicPage(c *gin.Context, tenant *models.Tenant) {
	h.cache.Delete(c.Request.Context(), cache.PublicPageKey(tenant.Slug))
}

func (h *LocationHandler) invalidatePublicPageByID(c *gin.Context, tenantID uint) {
	var tenant models.Tenant
	if err := h.db.First(&tenant, tenantID).Error; err == nil {
		h.invalidatePublicPage(c, &tenant)
	}
}
