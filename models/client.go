package models

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/utils"
)

// Client is a fruit/cutting buyer. A nil NegotiatedPricePerKg means the
// standard price applies.
type Client struct {
	ID                   int              `gorm:"primary_key" json:"id"`
	TenantId             string           `gorm:"size:36;not null;uniqueIndex:idx_clients_tenant_display,priority:1" json:"tenant_id"`
	DisplayId            string           `gorm:"size:20;not null;uniqueIndex:idx_clients_tenant_display,priority:2" json:"display_id"`
	Name                 string           `gorm:"size:255;not null" json:"name"`
	Phone                string           `gorm:"size:20" json:"phone"`
	Email                string           `gorm:"size:100" json:"email"`
	Address              string           `gorm:"size:255" json:"address"`
	NegotiatedPricePerKg *decimal.Decimal `gorm:"type:decimal(20,4)" json:"negotiated_price_per_kg"`
	Notes                string           `gorm:"type:text" json:"notes"`
	CreatedAt            time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Client) DisplayIdPrefix() string { return "CL" }

func (c *Client) setDisplayId(id string) { c.DisplayId = id }

type NewClient struct {
	Name                 string           `json:"name" validate:"required"`
	Phone                string           `json:"phone"`
	Email                string           `json:"email" validate:"omitempty,email"`
	Address              string           `json:"address"`
	NegotiatedPricePerKg *decimal.Decimal `json:"negotiated_price_per_kg"`
	Notes                string           `json:"notes"`
}

type UpdateClientInput struct {
	Name                 *string          `json:"name"`
	Phone                *string          `json:"phone"`
	Email                *string          `json:"email" validate:"omitempty,email"`
	Address              *string          `json:"address"`
	NegotiatedPricePerKg *decimal.Decimal `json:"negotiated_price_per_kg"`
	Notes                *string          `json:"notes"`
}

func CreateClient(ctx context.Context, input *NewClient) (*Client, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := utils.ValidateInput(input); err != nil {
		return nil, err
	}
	if input.NegotiatedPricePerKg != nil && input.NegotiatedPricePerKg.IsNegative() {
		return nil, errors.New("negotiated price must not be negative")
	}

	client := &Client{
		TenantId:             tenantId,
		Name:                 input.Name,
		Phone:                input.Phone,
		Email:                input.Email,
		Address:              input.Address,
		NegotiatedPricePerKg: input.NegotiatedPricePerKg,
		Notes:                input.Notes,
	}
	if err := insertWithDisplayId[Client](ctx, tenantId, client); err != nil {
		return nil, err
	}

	if err := utils.RemoveRedisList[Client](tenantId); err != nil {
		return nil, err
	}
	return client, nil
}

func GetClient(ctx context.Context, id int) (*Client, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchModel[Client](ctx, tenantId, id)
}

// GetClients lists the tenant's clients ordered by display id, redis or db.
func GetClients(ctx context.Context) ([]*Client, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}

	results, err := utils.RetrieveRedisList[Client](tenantId)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results, err = utils.FetchAllModelsOrdered[Client](ctx, tenantId, "display_id ASC")
		if err != nil {
			return nil, err
		}
		if err := utils.StoreRedisList[Client](results, tenantId); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// GetClientsWithNegotiatedPrice returns clients with a non-standard price.
func GetClientsWithNegotiatedPrice(ctx context.Context) ([]*Client, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}

	db := config.GetDB()
	var results []*Client
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND negotiated_price_per_kg IS NOT NULL", tenantId).
		Order("display_id ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func UpdateClient(ctx context.Context, id int, input *UpdateClientInput) (*Client, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := utils.ValidateInput(input); err != nil {
		return nil, err
	}
	if input.NegotiatedPricePerKg != nil && input.NegotiatedPricePerKg.IsNegative() {
		return nil, errors.New("negotiated price must not be negative")
	}

	client, err := utils.FetchModel[Client](ctx, tenantId, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.NegotiatedPricePerKg != nil {
		client.NegotiatedPricePerKg = input.NegotiatedPricePerKg
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(client).Error; err != nil {
		return nil, err
	}

	if err := utils.RemoveRedisList[Client](tenantId); err != nil {
		return nil, err
	}
	return client, nil
}

func DeleteClient(ctx context.Context, id int) error {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return errors.New("tenant id is required")
	}
	if err := utils.DeleteModel[Client](ctx, tenantId, id); err != nil {
		return err
	}
	return utils.RemoveRedisList[Client](tenantId)
}
