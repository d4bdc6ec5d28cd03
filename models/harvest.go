package models

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/utils"
)

// KgPerCrate: one standard crate holds 0.5 kg of fruit.
var KgPerCrate = decimal.NewFromFloat(0.5)

// Harvest records one picking session. PickerId/ParcelId zero means
// unassigned.
type Harvest struct {
	ID         int             `gorm:"primary_key" json:"id"`
	TenantId   string          `gorm:"size:36;not null;uniqueIndex:idx_harvests_tenant_display,priority:1" json:"tenant_id"`
	DisplayId  string          `gorm:"size:20;not null;uniqueIndex:idx_harvests_tenant_display,priority:2" json:"display_id"`
	Date       time.Time       `gorm:"not null" json:"date"`
	PickerId   int             `gorm:"index;default:0" json:"picker_id"`
	ParcelId   int             `gorm:"index;default:0" json:"parcel_id"`
	CrateCount int             `gorm:"not null" json:"crate_count"`
	TareKg     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tare_kg"`
	Notes      string          `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Harvest) DisplayIdPrefix() string { return "R" }

func (h *Harvest) setDisplayId(id string) { h.DisplayId = id }

func (h *Harvest) GrossWeightKg() decimal.Decimal {
	return decimal.NewFromInt(int64(h.CrateCount)).Mul(KgPerCrate)
}

func (h *Harvest) NetWeightKg() decimal.Decimal {
	return h.GrossWeightKg().Sub(h.TareKg)
}

// LaborValue is what the picker earned for this harvest; zero for
// fixed-salary pickers (rate 0).
func (h *Harvest) LaborValue(ratePerKg decimal.Decimal) decimal.Decimal {
	return h.NetWeightKg().Mul(ratePerKg)
}

type NewHarvest struct {
	Date       time.Time       `json:"date" validate:"required"`
	PickerId   int             `json:"picker_id"`
	ParcelId   int             `json:"parcel_id"`
	CrateCount int             `json:"crate_count" validate:"required,gt=0"`
	TareKg     decimal.Decimal `json:"tare_kg"`
	Notes      string          `json:"notes"`
}

type UpdateHarvestInput struct {
	Date       *time.Time       `json:"date"`
	PickerId   *int             `json:"picker_id"`
	ParcelId   *int             `json:"parcel_id"`
	CrateCount *int             `json:"crate_count" validate:"omitempty,gt=0"`
	TareKg     *decimal.Decimal `json:"tare_kg"`
	Notes      *string          `json:"notes"`
}

// validate input for both create & update (id = 0 for create)
func (input *NewHarvest) validate(ctx context.Context, tenantId string, _ int) error {
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	if input.TareKg.IsNegative() {
		return errors.New("tare must not be negative")
	}

	// exists picker
	if input.PickerId > 0 {
		if err := utils.ValidateResourceId[Picker](ctx, tenantId, input.PickerId); err != nil {
			return errors.New("picker not found")
		}
	}
	// exists parcel
	if input.ParcelId > 0 {
		if err := utils.ValidateResourceId[Parcel](ctx, tenantId, input.ParcelId); err != nil {
			return errors.New("parcel not found")
		}
	}
	return nil
}

func CreateHarvest(ctx context.Context, input *NewHarvest) (*Harvest, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := input.validate(ctx, tenantId, 0); err != nil {
		return nil, err
	}

	harvest := &Harvest{
		TenantId:   tenantId,
		Date:       input.Date,
		PickerId:   input.PickerId,
		ParcelId:   input.ParcelId,
		CrateCount: input.CrateCount,
		TareKg:     input.TareKg,
		Notes:      input.Notes,
	}
	if err := insertWithDisplayId[Harvest](ctx, tenantId, harvest); err != nil {
		return nil, err
	}
	return harvest, nil
}

func GetHarvest(ctx context.Context, id int) (*Harvest, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchModel[Harvest](ctx, tenantId, id)
}

// GetHarvests lists the tenant's harvests, newest first.
func GetHarvests(ctx context.Context) ([]*Harvest, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchAllModelsOrdered[Harvest](ctx, tenantId, "date DESC")
}

func GetHarvestsByMonth(ctx context.Context, year int, month time.Month) ([]*Harvest, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}

	startDate, endDate := utils.MonthRange(year, month)
	db := config.GetDB()
	var results []*Harvest
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND date >= ? AND date <= ?", tenantId, startDate, endDate).
		Order("date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func UpdateHarvest(ctx context.Context, id int, input *UpdateHarvestInput) (*Harvest, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := utils.ValidateInput(input); err != nil {
		return nil, err
	}
	if input.TareKg != nil && input.TareKg.IsNegative() {
		return nil, errors.New("tare must not be negative")
	}
	if input.PickerId != nil && *input.PickerId > 0 {
		if err := utils.ValidateResourceId[Picker](ctx, tenantId, *input.PickerId); err != nil {
			return nil, errors.New("picker not found")
		}
	}
	if input.ParcelId != nil && *input.ParcelId > 0 {
		if err := utils.ValidateResourceId[Parcel](ctx, tenantId, *input.ParcelId); err != nil {
			return nil, errors.New("parcel not found")
		}
	}

	harvest, err := utils.FetchModel[Harvest](ctx, tenantId, id)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		harvest.Date = *input.Date
	}
	if input.PickerId != nil {
		harvest.PickerId = *input.PickerId
	}
	if input.ParcelId != nil {
		harvest.ParcelId = *input.ParcelId
	}
	if input.CrateCount != nil {
		harvest.CrateCount = *input.CrateCount
	}
	if input.TareKg != nil {
		harvest.TareKg = *input.TareKg
	}
	if input.Notes != nil {
		harvest.Notes = *input.Notes
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(harvest).Error; err != nil {
		return nil, err
	}
	return harvest, nil
}

func DeleteHarvest(ctx context.Context, id int) error {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return errors.New("tenant id is required")
	}
	return utils.DeleteModel[Harvest](ctx, tenantId, id)
}
