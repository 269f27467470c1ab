package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
	"github.com/BruksfildServices01/barber-platform/internal/audit"
	"github.com/BruksfildServices01/barber-platform/internal/auth"
	"github.com/BruksfildServices01/barber-platform/internal/models"
	"github.com/BruksfildServices01/barber-platform/internal/validators"
)

// Shadow clients created without an email get a synthetic placeholder on
// this domain so the per-tenant uniqueness constraint holds.
const manualEmailDomain = "manual.local"

type CreateManualInput struct {
	Actor auth.Actor
	Name  string
	Email string
	Phone string
}

type CreateManualClient struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCreateManualClient(db *gorm.DB, audit *audit.Dispatcher) *CreateManualClient {
	return &CreateManualClient{db: db, audit: audit}
}

func (uc *CreateManualClient) Execute(
	ctx context.Context,
	in CreateManualInput,
) (*models.Client, error) {

	if !auth.Can(in.Actor, auth.ActionShadowCreate, auth.ResourceClient) {
		return nil, apperr.Authorization("forbidden", "Sem permissão para criar clientes.")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("missing_name", "Nome obrigatório.")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		generated, err := uc.syntheticEmail(ctx, in.Actor.TenantID, name)
		if err != nil {
			return nil, err
		}
		email = generated
	} else {
		taken, err := uc.emailTaken(ctx, in.Actor.TenantID, email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Validation("email_already_exists", "Já existe um cliente com este email.")
		}
	}

	actorID := in.Actor.ID
	cl := &models.Client{
		TenantID:        in.Actor.TenantID,
		Name:            name,
		Email:           email,
		Phone:           strings.TrimSpace(in.Phone),
		CreatedManually: true,
		CreatedBy:       &actorID,
	}

	if err := uc.db.WithContext(ctx).Create(cl).Error; err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: in.Actor.TenantID,
		ActorID:  &actorID,
		Action:   "client_created_manually",
		Entity:   "client",
		EntityID: &cl.ID,
	})

	return cl, nil
}

func (uc *CreateManualClient) emailTaken(ctx context.Context, tenantID uint, email string) (bool, error) {
	var count int64
	err := uc.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("tenant_id = ? AND email = ?", tenantID, email).
		Count(&count).Error
	return count > 0, err
}

// SyntheticEmail builds the "<slug-of-name>@manual.local" placeholder for a
// shadow client, falling back to a random fragment when the name slugs to
// nothing.
func SyntheticEmail(name string) string {
	slug := validators.Slugify(name)
	if slug == "" {
		slug = uuid.NewString()[:8]
	}
	return fmt.Sprintf("%s@%s", slug, manualEmailDomain)
}

// syntheticEmail resolves the placeholder against existing rows, appending a
// random fragment when the slug is already taken in the tenant.
func (uc *CreateManualClient) syntheticEmail(ctx context.Context, tenantID uint, name string) (string, error) {
	candidate := SyntheticEmail(name)

	var existing models.Client
	err := uc.db.WithContext(ctx).
		Where("tenant_id = ? AND email = ?", tenantID, candidate).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return candidate, nil
	}
	if err != nil {
		return "", err
	}

	local := strings.TrimSuffix(candidate, "@"+manualEmailDomain)
	return fmt.Sprintf("%s-%s@%s", local, uuid.NewString()[:8], manualEmailDomain), nil
}
