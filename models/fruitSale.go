package models

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/utils"
)

// FruitSale records fruit sold to a client. ClientId zero means a walk-in
// sale with no registered buyer.
type FruitSale struct {
	ID            int             `gorm:"primary_key" json:"id"`
	TenantId      string          `gorm:"size:36;not null;uniqueIndex:idx_fruit_sales_tenant_display,priority:1" json:"tenant_id"`
	DisplayId     string          `gorm:"size:20;not null;uniqueIndex:idx_fruit_sales_tenant_display,priority:2" json:"display_id"`
	Date          time.Time       `gorm:"not null" json:"date"`
	ClientId      int             `gorm:"index;default:0" json:"client_id"`
	QuantityKg    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity_kg"`
	PricePerKg    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"price_per_kg"`
	PaymentStatus PaymentStatus   `gorm:"size:30;not null;default:Paid" json:"payment_status"`
	CrateNotes    string          `gorm:"type:text" json:"crate_notes"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FruitSale) DisplayIdPrefix() string { return "V" }

func (s *FruitSale) setDisplayId(id string) { s.DisplayId = id }

func (s *FruitSale) TotalAmount() decimal.Decimal {
	return s.QuantityKg.Mul(s.PricePerKg)
}

type NewFruitSale struct {
	Date          time.Time       `json:"date" validate:"required"`
	ClientId      int             `json:"client_id"`
	QuantityKg    decimal.Decimal `json:"quantity_kg" validate:"required"`
	PricePerKg    decimal.Decimal `json:"price_per_kg" validate:"required"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	CrateNotes    string          `json:"crate_notes"`
}

type UpdateFruitSaleInput struct {
	Date          *time.Time       `json:"date"`
	ClientId      *int             `json:"client_id"`
	QuantityKg    *decimal.Decimal `json:"quantity_kg"`
	PricePerKg    *decimal.Decimal `json:"price_per_kg"`
	PaymentStatus *PaymentStatus   `json:"payment_status"`
	CrateNotes    *string          `json:"crate_notes"`
}

func (input *NewFruitSale) validate(ctx context.Context, tenantId string, _ int) error {
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	if !input.QuantityKg.IsPositive() {
		return errors.New("quantity must be positive")
	}
	if input.PricePerKg.IsNegative() {
		return errors.New("price must not be negative")
	}
	if input.PaymentStatus != "" {
		if err := input.PaymentStatus.Validate(); err != nil {
			return err
		}
	}

	// exists client
	if input.ClientId > 0 {
		if err := utils.ValidateResourceId[Client](ctx, tenantId, input.ClientId); err != nil {
			return errors.New("client not found")
		}
	}
	return nil
}

func CreateFruitSale(ctx context.Context, input *NewFruitSale) (*FruitSale, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := input.validate(ctx, tenantId, 0); err != nil {
		return nil, err
	}

	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = PaymentStatusPaid
	}

	sale := &FruitSale{
		TenantId:      tenantId,
		Date:          input.Date,
		ClientId:      input.ClientId,
		QuantityKg:    input.QuantityKg,
		PricePerKg:    input.PricePerKg,
		PaymentStatus: paymentStatus,
		CrateNotes:    input.CrateNotes,
	}
	if err := insertWithDisplayId[FruitSale](ctx, tenantId, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func GetFruitSale(ctx context.Context, id int) (*FruitSale, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchModel[FruitSale](ctx, tenantId, id)
}

// GetFruitSales lists the tenant's fruit sales, newest first.
func GetFruitSales(ctx context.Context) ([]*FruitSale, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchAllModelsOrdered[FruitSale](ctx, tenantId, "date DESC")
}

func GetFruitSalesByMonth(ctx context.Context, year int, month time.Month) ([]*FruitSale, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}

	startDate, endDate := utils.MonthRange(year, month)
	db := config.GetDB()
	var results []*FruitSale
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND date >= ? AND date <= ?", tenantId, startDate, endDate).
		Order("date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func UpdateFruitSale(ctx context.Context, id int, input *UpdateFruitSaleInput) (*FruitSale, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := utils.ValidateInput(input); err != nil {
		return nil, err
	}
	if input.QuantityKg != nil && !input.QuantityKg.IsPositive() {
		return nil, errors.New("quantity must be positive")
	}
	if input.PricePerKg != nil && input.PricePerKg.IsNegative() {
		return nil, errors.New("price must not be negative")
	}
	if input.PaymentStatus != nil {
		if err := input.PaymentStatus.Validate(); err != nil {
			return nil, err
		}
	}
	if input.ClientId != nil && *input.ClientId > 0 {
		if err := utils.ValidateResourceId[Client](ctx, tenantId, *input.ClientId); err != nil {
			return nil, errors.New("client not found")
		}
	}

	sale, err := utils.FetchModel[FruitSale](ctx, tenantId, id)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		sale.Date = *input.Date
	}
	if input.ClientId != nil {
		sale.ClientId = *input.ClientId
	}
	if input.QuantityKg != nil {
		sale.QuantityKg = *input.QuantityKg
	}
	if input.PricePerKg != nil {
		sale.PricePerKg = *input.PricePerKg
	}
	if input.PaymentStatus != nil {
		sale.PaymentStatus = *input.PaymentStatus
	}
	if input.CrateNotes != nil {
		sale.CrateNotes = *input.CrateNotes
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(sale).Error; err != nil {
		return nil, err
	}
	return sale, nil
}

func DeleteFruitSale(ctx context.Context, id int) error {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return errors.New("tenant id is required")
	}
	return utils.DeleteModel[FruitSale](ctx, tenantId, id)
}
