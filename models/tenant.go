package models

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/utils"
)

// Tenant is a farm account. All data and display-id sequences are
// partitioned by tenant.
type Tenant struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	FarmName    string    `gorm:"size:255;not null" json:"farm_name"`
	OwnerUserId string    `gorm:"size:255" json:"owner_user_id"`
	Plan        string    `gorm:"size:30;not null;default:freemium" json:"plan"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type NewTenant struct {
	FarmName    string `json:"farm_name" validate:"required"`
	OwnerUserId string `json:"owner_user_id"`
	Plan        string `json:"plan"`
}

func CreateTenant(ctx context.Context, input *NewTenant) (*Tenant, error) {
	if err := utils.ValidateInput(input); err != nil {
		return nil, err
	}
	plan := input.Plan
	if plan == "" {
		plan = "freemium"
	}
	switch plan {
	case "freemium", "starter", "pro", "enterprise":
	default:
		return nil, errors.New("invalid plan")
	}

	tenant := &Tenant{
		ID:          uuid.NewString(),
		FarmName:    input.FarmName,
		OwnerUserId: input.OwnerUserId,
		Plan:        plan,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

func GetTenantById(ctx context.Context, id string) (*Tenant, error) {
	db := config.GetDB()
	var tenant Tenant
	if err := db.WithContext(ctx).Where("id = ?", id).First(&tenant).Error; err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	return &tenant, nil
}
