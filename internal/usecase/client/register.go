package client

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
	"github.com/BruksfildServices01/barber-platform/internal/models"
)

type RegisterInput struct {
	TenantSlug string
	Name       string
	Email      string
	Phone      string
	Password   string
}

type RegisterClient struct {
	db *gorm.DB
}

func NewRegisterClient(db *gorm.DB) *RegisterClient {
	return &RegisterClient{db: db}
}

// Execute creates a registered client account. Unlike shadow creation,
// registration enforces global email uniqueness: the email must not belong
// to any client or staff account anywhere.
func (uc *RegisterClient) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.Client, error) {

	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" || email == "" || in.Password == "" {
		return nil, apperr.Validation("missing_fields", "Nome, email e password obrigatórios.")
	}

	var tenant models.Tenant
	if err := uc.db.WithContext(ctx).
		Where("slug = ?", in.TenantSlug).
		First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tenant_not_found", "Barbearia não encontrada.")
		}
		return nil, err
	}

	var count int64
	if err := uc.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		if err := uc.db.WithContext(ctx).
			Model(&models.User{}).
			Where("email = ?", email).
			Count(&count).Error; err != nil {
			return nil, err
		}
	}
	if count > 0 {
		return nil, apperr.Validation("email_already_exists", "Email já registado.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hash := string(hashed)

	cl := &models.Client{
		TenantID:     tenant.ID,
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: &hash,
	}

	if err := uc.db.WithContext(ctx).Create(cl).Error; err != nil {
		return nil, err
	}

	return cl, nil
}
