package models

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/utils"
)

// CuttingSale records plant cuttings sold to a client, optionally tracking
// the parcel they were taken from.
type CuttingSale struct {
	ID             int             `gorm:"primary_key" json:"id"`
	TenantId       string          `gorm:"size:36;not null;uniqueIndex:idx_cutting_sales_tenant_display,priority:1" json:"tenant_id"`
	DisplayId      string          `gorm:"size:20;not null;uniqueIndex:idx_cutting_sales_tenant_display,priority:2" json:"display_id"`
	Date           time.Time       `gorm:"not null" json:"date"`
	ClientId       int             `gorm:"index;default:0" json:"client_id"`
	SourceParcelId int             `gorm:"index;default:0" json:"source_parcel_id"`
	CuttingVariety string          `gorm:"size:100;not null" json:"cutting_variety"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"unit_price"`
	Notes          string          `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CuttingSale) DisplayIdPrefix() string { return "VB" }

func (s *CuttingSale) setDisplayId(id string) { s.DisplayId = id }

func (s *CuttingSale) TotalAmount() decimal.Decimal {
	return decimal.NewFromInt(int64(s.Quantity)).Mul(s.UnitPrice)
}

type NewCuttingSale struct {
	Date           time.Time       `json:"date" validate:"required"`
	ClientId       int             `json:"client_id"`
	SourceParcelId int             `json:"source_parcel_id"`
	CuttingVariety string          `json:"cutting_variety" validate:"required"`
	Quantity       int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice      decimal.Decimal `json:"unit_price" validate:"required"`
	Notes          string          `json:"notes"`
}

type UpdateCuttingSaleInput struct {
	Date           *time.Time       `json:"date"`
	ClientId       *int             `json:"client_id"`
	SourceParcelId *int             `json:"source_parcel_id"`
	CuttingVariety *string          `json:"cutting_variety"`
	Quantity       *int             `json:"quantity" validate:"omitempty,gt=0"`
	UnitPrice      *decimal.Decimal `json:"unit_price"`
	Notes          *string          `json:"notes"`
}

func (input *NewCuttingSale) validate(ctx context.Context, tenantId string, _ int) error {
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	if input.UnitPrice.IsNegative() {
		return errors.New("unit price must not be negative")
	}

	// exists client
	if input.ClientId > 0 {
		if err := utils.ValidateResourceId[Client](ctx, tenantId, input.ClientId); err != nil {
			return errors.New("client not found")
		}
	}
	// exists source parcel
	if input.SourceParcelId > 0 {
		if err := utils.ValidateResourceId[Parcel](ctx, tenantId, input.SourceParcelId); err != nil {
			return errors.New("parcel not found")
		}
	}
	return nil
}

func CreateCuttingSale(ctx context.Context, input *NewCuttingSale) (*CuttingSale, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := input.validate(ctx, tenantId, 0); err != nil {
		return nil, err
	}

	sale := &CuttingSale{
		TenantId:       tenantId,
		Date:           input.Date,
		ClientId:       input.ClientId,
		SourceParcelId: input.SourceParcelId,
		CuttingVariety: input.CuttingVariety,
		Quantity:       input.Quantity,
		UnitPrice:      input.UnitPrice,
		Notes:          input.Notes,
	}
	if err := insertWithDisplayId[CuttingSale](ctx, tenantId, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func GetCuttingSale(ctx context.Context, id int) (*CuttingSale, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchModel[CuttingSale](ctx, tenantId, id)
}

// GetCuttingSales lists the tenant's cutting sales, newest first.
func GetCuttingSales(ctx context.Context) ([]*CuttingSale, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchAllModelsOrdered[CuttingSale](ctx, tenantId, "date DESC")
}

func GetCuttingSalesByMonth(ctx context.Context, year int, month time.Month) ([]*CuttingSale, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}

	startDate, endDate := utils.MonthRange(year, month)
	db := config.GetDB()
	var results []*CuttingSale
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND date >= ? AND date <= ?", tenantId, startDate, endDate).
		Order("date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetCuttingSalesTotal sums quantity × unit price over all cutting sales.
func GetCuttingSalesTotal(ctx context.Context) (decimal.Decimal, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return decimal.Zero, errors.New("tenant id is required")
	}

	db := config.GetDB()
	var sales []*CuttingSale
	if err := db.WithContext(ctx).
		Where("tenant_id = ?", tenantId).
		Select("quantity", "unit_price").
		Find(&sales).Error; err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalAmount())
	}
	return total, nil
}

func UpdateCuttingSale(ctx context.Context, id int, input *UpdateCuttingSaleInput) (*CuttingSale, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := utils.ValidateInput(input); err != nil {
		return nil, err
	}
	if input.UnitPrice != nil && input.UnitPrice.IsNegative() {
		return nil, errors.New("unit price must not be negative")
	}
	if input.ClientId != nil && *input.ClientId > 0 {
		if err := utils.ValidateResourceId[Client](ctx, tenantId, *input.ClientId); err != nil {
			return nil, errors.New("client not found")
		}
	}
	if input.SourceParcelId != nil && *input.SourceParcelId > 0 {
		if err := utils.ValidateResourceId[Parcel](ctx, tenantId, *input.SourceParcelId); err != nil {
			return nil, errors.New("parcel not found")
		}
	}

	sale, err := utils.FetchModel[CuttingSale](ctx, tenantId, id)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		sale.Date = *input.Date
	}
	if input.ClientId != nil {
		sale.ClientId = *input.ClientId
	}
	if input.SourceParcelId != nil {
		sale.SourceParcelId = *input.SourceParcelId
	}
	if input.CuttingVariety != nil {
		sale.CuttingVariety = *input.CuttingVariety
	}
	if input.Quantity != nil {
		sale.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		sale.UnitPrice = *input.UnitPrice
	}
	if input.Notes != nil {
		sale.Notes = *input.Notes
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(sale).Error; err != nil {
		return nil, err
	}
	return sale, nil
}

func DeleteCuttingSale(ctx context.Context, id int) error {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return errors.New("tenant id is required")
	}
	return utils.DeleteModel[CuttingSale](ctx, tenantId, id)
}
