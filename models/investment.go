package models

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/utils"
)

// Investment is a one-off capital outlay on the farm.
type Investment struct {
	ID          int                `gorm:"primary_key" json:"id"`
	TenantId    string             `gorm:"size:36;not null;uniqueIndex:idx_investments_tenant_display,priority:1" json:"tenant_id"`
	DisplayId   string             `gorm:"size:20;not null;uniqueIndex:idx_investments_tenant_display,priority:2" json:"display_id"`
	Date        time.Time          `gorm:"not null" json:"date"`
	ParcelId    int                `gorm:"index;default:0" json:"parcel_id"`
	Category    InvestmentCategory `gorm:"size:40;not null" json:"category"`
	Supplier    string             `gorm:"size:255" json:"supplier"`
	Description string             `gorm:"type:text" json:"description"`
	AmountLei   decimal.Decimal    `gorm:"type:decimal(14,2);not null" json:"amount_lei"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Investment) DisplayIdPrefix() string { return "INV" }

func (i *Investment) setDisplayId(id string) { i.DisplayId = id }

type NewInvestment struct {
	Date        time.Time          `json:"date" validate:"required"`
	ParcelId    int                `json:"parcel_id"`
	Category    InvestmentCategory `json:"category" validate:"required"`
	Supplier    string             `json:"supplier"`
	Description string             `json:"description"`
	AmountLei   decimal.Decimal    `json:"amount_lei" validate:"required"`
}

type UpdateInvestmentInput struct {
	Date        *time.Time          `json:"date"`
	ParcelId    *int                `json:"parcel_id"`
	Category    *InvestmentCategory `json:"category"`
	Supplier    *string             `json:"supplier"`
	Description *string             `json:"description"`
	AmountLei   *decimal.Decimal    `json:"amount_lei"`
}

func (input *NewInvestment) validate(ctx context.Context, tenantId string, _ int) error {
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	if err := input.Category.Validate(); err != nil {
		return err
	}
	if input.AmountLei.IsNegative() {
		return errors.New("amount must not be negative")
	}

	// exists parcel
	if input.ParcelId > 0 {
		if err := utils.ValidateResourceId[Parcel](ctx, tenantId, input.ParcelId); err != nil {
			return errors.New("parcel not found")
		}
	}
	return nil
}

func CreateInvestment(ctx context.Context, input *NewInvestment) (*Investment, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := input.validate(ctx, tenantId, 0); err != nil {
		return nil, err
	}

	investment := &Investment{
		TenantId:    tenantId,
		Date:        input.Date,
		ParcelId:    input.ParcelId,
		Category:    input.Category,
		Supplier:    input.Supplier,
		Description: input.Description,
		AmountLei:   input.AmountLei,
	}
	if err := insertWithDisplayId[Investment](ctx, tenantId, investment); err != nil {
		return nil, err
	}
	return investment, nil
}

func GetInvestment(ctx context.Context, id int) (*Investment, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchModel[Investment](ctx, tenantId, id)
}

func GetInvestments(ctx context.Context) ([]*Investment, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchAllModelsOrdered[Investment](ctx, tenantId, "date DESC")
}

func GetInvestmentsByMonth(ctx context.Context, year int, month time.Month) ([]*Investment, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}

	startDate, endDate := utils.MonthRange(year, month)
	db := config.GetDB()
	var results []*Investment
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND date >= ? AND date <= ?", tenantId, startDate, endDate).
		Order("date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func UpdateInvestment(ctx context.Context, id int, input *UpdateInvestmentInput) (*Investment, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := utils.ValidateInput(input); err != nil {
		return nil, err
	}
	if input.Category != nil {
		if err := input.Category.Validate(); err != nil {
			return nil, err
		}
	}
	if input.AmountLei != nil && input.AmountLei.IsNegative() {
		return nil, errors.New("amount must not be negative")
	}
	if input.ParcelId != nil && *input.ParcelId > 0 {
		if err := utils.ValidateResourceId[Parcel](ctx, tenantId, *input.ParcelId); err != nil {
			return nil, errors.New("parcel not found")
		}
	}

	investment, err := utils.FetchModel[Investment](ctx, tenantId, id)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		investment.Date = *input.Date
	}
	if input.ParcelId != nil {
		investment.ParcelId = *input.ParcelId
	}
	if input.Category != nil {
		investment.Category = *input.Category
	}
	if input.Supplier != nil {
		investment.Supplier = *input.Supplier
	}
	if input.Description != nil {
		investment.Description = *input.Description
	}
	if input.AmountLei != nil {
		investment.AmountLei = *input.AmountLei
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(investment).Error; err != nil {
		return nil, err
	}
	return investment, nil
}

func DeleteInvestment(ctx context.Context, id int) error {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return errors.New("tenant id is required")
	}
	return utils.DeleteModel[Investment](ctx, tenantId, id)
}
