package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-platform/internal/cache"
	"github.com/BruksfildServices01/barber-platform/internal/httperr"
	"github.com/BruksfildServices01/barber-platform/internal/httpresp"
	"github.com/BruksfildServices01/barber-platform/internal/models"
)

const publicPageTTL = 60 * time.Second

type PublicHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPublicHandler(db *gorm.DB, cache *cache.Cache) *PublicHandler {
	return &PublicHandler{db: db, cache: cache}
}

type publicBarber struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Bio         string             `json:"bio"`
	Photo       string             `json:"photo"`
	Specialties models.JSONStrings `json:"specialties"`
	LocationID  *uint              `json:"location_id"`
}

type publicPage struct {
	Tenant    gin.H             `json:"tenant"`
	Locations []models.Location `json:"locations"`
	Barbers   []publicBarber    `json:"barbers"`
}

// ShowTenant is the unauthenticated booking page: the tenant with its active
// locations and active barbers, each barber annotated with its (possibly
// nil) location reference.
func (h *PublicHandler) ShowTenant(c *gin.Context) {
	slug := c.Param("slug")

	key := cache.PublicPageKey(slug)
	if cached, ok := h.cache.Get(c.Request.Context(), key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	var tenant models.Tenant
	if err := h.db.Where("slug = ?", slug).First(&tenant).Error; err != nil {
		httperr.NotFound(c, "tenant_not_found", "Barbearia não encontrada.")
		return
	}

	var locations []models.Location
	h.db.
		Preload("Hours").
		Where("tenant_id = ? AND archived = ?", tenant.ID, false).
		Order("id ASC").
		Find(&locations)

	var barbers []models.User
	h.db.
		Where("tenant_id = ? AND role = ? AND active = ?", tenant.ID, "barbeiro", true).
		Order("id ASC").
		Find(&barbers)

	page := publicPage{
		Tenant: gin.H{
			"id":      tenant.ID,
			"name":    tenant.Name,
			"slug":    tenant.Slug,
			"phone":   tenant.Phone,
			"address": tenant.Address,
		},
		Locations: locations,
		Barbers:   make([]publicBarber, 0, len(barbers)),
	}

	for _, b := range barbers {
		page.Barbers = append(page.Barbers, publicBarber{
			ID:          b.ID,
			Name:        b.Name,
			Bio:         b.Bio,
			Photo:       b.Photo,
			Specialties: b.Specialties,
			LocationID:  b.LocationID,
		})
	}

	if body, err := json.Marshal(page); err == nil {
		h.cache.Set(c.Request.Context(), key, string(body), publicPageTTL)
	}

	httpresp.OK(c, page)
}

// ListServices exposes the active service catalog for the booking page.
func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	var tenant models.Tenant
	if err := h.db.Where("slug = ?", slug).First(&tenant).Error; err != nil {
		httperr.NotFound(c, "tenant_not_found", "Barbearia não encontrada.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("tenant_id = ? AND active = ?", tenant.ID, true).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.OK(c, gin.H{
		"tenant":   gin.H{"id": tenant.ID, "name": tenant.Name, "slug": tenant.Slug},
		"services": services,
	})
}
