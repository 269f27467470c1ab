package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-platform/internal/audit"
	"github.com/BruksfildServices01/barber-platform/internal/auth"
	"github.com/BruksfildServices01/barber-platform/internal/cache"
	"github.com/BruksfildServices01/barber-platform/internal/httperr"
	"github.com/BruksfildServices01/barber-platform/internal/httpresp"
	"github.com/BruksfildServices01/barber-platform/internal/middleware"
	"github.com/BruksfildServices01/barber-platform/internal/models"
)

type BarberHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewBarberHandler(db *gorm.DB, audit *audit.Dispatcher, cache *cache.Cache) *BarberHandler {
	return &BarberHandler{db: db, audit: audit, cache: cache}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	Phone       string   `json:"phone"`
	Bio         string   `json:"bio"`
	Photo       string   `json:"photo"`
	Specialties []string `json:"specialties"`
	LocationID  *uint    `json:"location_id"`
}

type UpdateBarberRequest struct {
	Name        *string   `json:"name,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	Photo       *string   `json:"photo,omitempty"`
	Specialties *[]string `json:"specialties,omitempty"`
	Active      *bool     `json:"active,omitempty"`

	// Location assignment is a weak nullable link: LocationID assigns,
	// ClearLocation removes (valid even when nothing was assigned).
	LocationID    *uint `json:"location_id,omitempty"`
	ClearLocation bool  `json:"clear_location,omitempty"`
}

// SelfUpdateRequest is the restricted field set a barber may edit on its own
// profile. Role, tenant and location assignment stay admin-only.
type SelfUpdateRequest struct {
	Name        *string   `json:"name,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	Photo       *string   `json:"photo,omitempty"`
	Specialties *[]string `json:"specialties,omitempty"`
	Password    *string   `json:"password,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	actor := middleware.Actor(c)

	var barbers []models.User
	if err := h.db.
		Where("tenant_id = ? AND role = ?", actor.TenantID, "barbeiro").
		Order("id ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.OK(c, gin.H{"barbers": barbers})
}

func (h *BarberHandler) Create(c *gin.Context) {
	actor := middleware.Actor(c)

	if !auth.Can(actor, auth.ActionCreate, auth.ResourceBarber) {
		httperr.Forbidden(c, "forbidden", "Apenas administradores podem criar barbeiros.")
		return
	}

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "Email já registado.")
		return
	}

	if req.LocationID != nil && !h.locationInTenant(actor.TenantID, *req.LocationID) {
		httperr.BadRequest(c, "invalid_location", "Local não pertence a esta barbearia.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar password.")
		return
	}

	barber := models.User{
		TenantID:     actor.TenantID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "barbeiro",
		Bio:          req.Bio,
		Photo:        req.Photo,
		Specialties:  req.Specialties,
		Active:       true,
		LocationID:   req.LocationID,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	actorID := actor.ID
	h.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		ActorID:  &actorID,
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &barber.ID,
	})
	h.invalidatePublicPage(c, actor.TenantID)

	httpresp.OK(c, gin.H{"barber": barber})
}

func (h *BarberHandler) Update(c *gin.Context) {
	actor := middleware.Actor(c)

	if !auth.Can(actor, auth.ActionUpdate, auth.ResourceBarber) {
		httperr.Forbidden(c, "forbidden", "Apenas administradores podem editar barbeiros.")
		return
	}

	id := c.Param("id")

	var barber models.User
	if err := h.db.
		Where("id = ? AND tenant_id = ? AND role = ?", id, actor.TenantID, "barbeiro").
		First(&barber).Error; err != nil {

		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.Bio != nil {
		barber.Bio = *req.Bio
	}
	if req.Photo != nil {
		barber.Photo = *req.Photo
	}
	if req.Specialties != nil {
		barber.Specialties = *req.Specialties
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	switch {
	case req.ClearLocation:
		barber.LocationID = nil
	case req.LocationID != nil:
		if !h.locationInTenant(actor.TenantID, *req.LocationID) {
			httperr.BadRequest(c, "invalid_location", "Local não pertence a esta barbearia.")
			return
		}
		barber.LocationID = req.LocationID
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	h.invalidatePublicPage(c, actor.TenantID)

	httpresp.OK(c, gin.H{"barber": barber})
}

// SelfUpdate lets a barber edit its own profile within the restricted set.
func (h *BarberHandler) SelfUpdate(c *gin.Context) {
	actor := middleware.Actor(c)

	if !auth.Can(actor, auth.ActionSelfUpdate, auth.ResourceBarber) {
		httperr.Forbidden(c, "forbidden", "Apenas barbeiros podem editar o próprio perfil.")
		return
	}

	var barber models.User
	if err := h.db.
		Where("id = ? AND tenant_id = ?", actor.ID, actor.TenantID).
		First(&barber).Error; err != nil {

		httperr.NotFound(c, "barber_not_found", "Perfil não encontrado.")
		return
	}

	var req SelfUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.Bio != nil {
		barber.Bio = *req.Bio
	}
	if req.Photo != nil {
		barber.Photo = *req.Photo
	}
	if req.Specialties != nil {
		barber.Specialties = *req.Specialties
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			httperr.BadRequest(c, "weak_password", "Password demasiado curta.")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao processar password.")
			return
		}
		barber.PasswordHash = string(hashed)
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao atualizar perfil.")
		return
	}

	h.invalidatePublicPage(c, actor.TenantID)

	httpresp.OK(c, gin.H{"barber": barber})
}

func (h *BarberHandler) Deactivate(c *gin.Context) {
	actor := middleware.Actor(c)

	if !auth.Can(actor, auth.ActionDelete, auth.ResourceBarber) {
		httperr.Forbidden(c, "forbidden", "Apenas administradores podem desativar barbeiros.")
		return
	}

	id := c.Param("id")

	var barber models.User
	if err := h.db.
		Where("id = ? AND tenant_id = ? AND role = ?", id, actor.TenantID, "barbeiro").
		First(&barber).Error; err != nil {

		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	barber.Active = false
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_deactivate_barber", "Erro ao desativar barbeiro.")
		return
	}

	actorID := actor.ID
	h.audit.Dispatch(audit.Event{
		TenantID: actor.TenantID,
		ActorID:  &actorID,
		Action:   "barber_deactivated",
		Entity:   "barber",
		EntityID: &barber.ID,
	})
	h.invalidatePublicPage(c, actor.TenantID)

	httpresp.OK(c, gin.H{"barber": barber})
}

// --------- Helpers ---------

// locationInTenant accepts archived locations too: the link is weak and
// archival does not invalidate associations.
func (h *BarberHandler) locationInTenant(tenantID, locationID uint) bool {
	var count int64
	h.db.Model(&models.Location{}).
		Where("id = ? AND tenant_id = ?", locationID, tenantID).
		Count(&count)
	return count > 0
}

func (h *BarberHandler) invalidatePublicPage(c *gin.Context, tenantID uint) {
	var tenant models.Tenant
	if err := h.db.First(&tenant, tenantID).Error; err == nil {
		h.cache.Delete(c.Request.Context(), cache.PublicPageKey(tenant.Slug))
	}
}
