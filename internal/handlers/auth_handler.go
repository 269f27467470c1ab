package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-platform/internal/auth"
	"github.com/BruksfildServices01/barber-platform/internal/config"
	"github.com/BruksfildServices01/barber-platform/internal/httperr"
	"github.com/BruksfildServices01/barber-platform/internal/httpresp"
	"github.com/BruksfildServices01/barber-platform/internal/models"
	"github.com/BruksfildServices01/barber-platform/internal/token"
	ucClient "github.com/BruksfildServices01/barber-platform/internal/usecase/client"
	"github.com/BruksfildServices01/barber-platform/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	register *ucClient.RegisterClient
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, register *ucClient.RegisterClient) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, register: register}
}

// --------- Requests ---------

type SignupRequest struct {
	TenantName    string `json:"tenant_name" binding:"required"`
	TenantSlug    string `json:"tenant_slug" binding:"required"`
	TenantPhone   string `json:"tenant_phone"`
	TenantAddress string `json:"tenant_address"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterClientRequest struct {
	TenantSlug string `json:"tenant_slug" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Password   string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

// Signup creates the tenant and its admin account in one call.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.TenantSlug))

	var count int64
	h.db.Model(&models.Tenant{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "slug_already_exists", "Este endereço já está em uso.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "Email já registado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar password.")
		return
	}

	tenant := models.Tenant{
		Name:    req.TenantName,
		Slug:    slug,
		Phone:   req.TenantPhone,
		Address: req.TenantAddress,
		Plan:    models.PlanBasic,
	}

	var admin models.User
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}

		admin = models.User{
			TenantID:     tenant.ID,
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hashed),
			Phone:        req.Phone,
			Role:         string(auth.RoleAdmin),
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_tenant", "Erro ao criar a barbearia.")
		return
	}

	actor := auth.Actor{TenantID: tenant.ID, ID: admin.ID, Role: auth.RoleAdmin}
	signed, err := token.Issue(h.config.JWTSecret, actor)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	httpresp.Created(c, gin.H{
		"user": gin.H{
			"id":        admin.ID,
			"name":      admin.Name,
			"email":     admin.Email,
			"role":      admin.Role,
			"tenant_id": admin.TenantID,
		},
		"tenant": gin.H{
			"id":   tenant.ID,
			"name": tenant.Name,
			"slug": tenant.Slug,
			"plan": tenant.Plan,
		},
		"token": signed,
	})
}

// Login resolves staff accounts first, then registered clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := h.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
			return
		}
		h.respondWithToken(c, auth.Actor{
			TenantID: user.TenantID,
			ID:       user.ID,
			Role:     auth.Role(user.Role),
		}, gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"role":      user.Role,
			"tenant_id": user.TenantID,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	var client models.Client
	if err := h.db.Where("email = ?", email).First(&client).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	if !client.Registered() ||
		bcrypt.CompareHashAndPassword([]byte(*client.PasswordHash), []byte(req.Password)) != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	h.respondWithToken(c, auth.Actor{
		TenantID: client.TenantID,
		ID:       client.ID,
		Role:     auth.RoleClient,
	}, gin.H{
		"id":        client.ID,
		"name":      client.Name,
		"email":     client.Email,
		"role":      auth.RoleClient,
		"tenant_id": client.TenantID,
	})
}

// Register creates a registered client on a tenant's booking page.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client, err := h.register.Execute(c.Request.Context(), ucClient.RegisterInput{
		TenantSlug: strings.ToLower(strings.TrimSpace(req.TenantSlug)),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	actor := auth.Actor{TenantID: client.TenantID, ID: client.ID, Role: auth.RoleClient}
	signed, err := token.Issue(h.config.JWTSecret, actor)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	httpresp.Created(c, gin.H{
		"client": client,
		"token":  signed,
	})
}

func (h *AuthHandler) respondWithToken(c *gin.Context, actor auth.Actor, user gin.H) {
	signed, err := token.Issue(h.config.JWTSecret, actor)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	httpresp.OK(c, gin.H{
		"user":  user,
		"token": signed,
	})
}
