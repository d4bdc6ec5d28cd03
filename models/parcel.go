package models

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/utils"
)

// Parcel is a planted land plot.
type Parcel struct {
	ID             int             `gorm:"primary_key" json:"id"`
	TenantId       string          `gorm:"size:36;not null;uniqueIndex:idx_parcels_tenant_display,priority:1" json:"tenant_id"`
	DisplayId      string          `gorm:"size:20;not null;uniqueIndex:idx_parcels_tenant_display,priority:2" json:"display_id"`
	Name           string          `gorm:"size:255;not null" json:"name"`
	AreaM2         decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"area_m2"`
	PlantedVariety string          `gorm:"size:100" json:"planted_variety"`
	PlantingYear   int             `gorm:"not null" json:"planting_year"`
	PlantCount     int             `gorm:"default:0" json:"plant_count"`
	Status         ParcelStatus    `gorm:"size:30;not null;default:Active" json:"status"`
	GpsLat         *float64        `json:"gps_lat"`
	GpsLng         *float64        `json:"gps_lng"`
	Notes          string          `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Parcel) DisplayIdPrefix() string { return "P" }

func (p *Parcel) setDisplayId(id string) { p.DisplayId = id }

// PlantDensity returns plants per m². Zero for an unset area.
func (p *Parcel) PlantDensity() decimal.Decimal {
	if p.AreaM2.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(p.PlantCount)).DivRound(p.AreaM2, 4)
}

// AgeYears is the plantation age relative to the given year.
func (p *Parcel) AgeYears(now time.Time) int {
	age := now.Year() - p.PlantingYear
	if age < 0 {
		return 0
	}
	return age
}

type NewParcel struct {
	Name           string          `json:"name" validate:"required"`
	AreaM2         decimal.Decimal `json:"area_m2" validate:"required"`
	PlantedVariety string          `json:"planted_variety"`
	PlantingYear   int             `json:"planting_year" validate:"required,gte=1990"`
	PlantCount     int             `json:"plant_count" validate:"gte=0"`
	Status         ParcelStatus    `json:"status"`
	GpsLat         *float64        `json:"gps_lat"`
	GpsLng         *float64        `json:"gps_lng"`
	Notes          string          `json:"notes"`
}

type UpdateParcelInput struct {
	Name           *string          `json:"name"`
	AreaM2         *decimal.Decimal `json:"area_m2"`
	PlantedVariety *string          `json:"planted_variety"`
	PlantingYear   *int             `json:"planting_year" validate:"omitempty,gte=1990"`
	PlantCount     *int             `json:"plant_count" validate:"omitempty,gte=0"`
	Status         *ParcelStatus    `json:"status"`
	GpsLat         *float64         `json:"gps_lat"`
	GpsLng         *float64         `json:"gps_lng"`
	Notes          *string          `json:"notes"`
}

func (input *NewParcel) validate() error {
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	if input.AreaM2.IsNegative() {
		return errors.New("area must not be negative")
	}
	if input.Status != "" {
		if err := input.Status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func CreateParcel(ctx context.Context, input *NewParcel) (*Parcel, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = ParcelStatusActive
	}

	parcel := &Parcel{
		TenantId:       tenantId,
		Name:           input.Name,
		AreaM2:         input.AreaM2,
		PlantedVariety: input.PlantedVariety,
		PlantingYear:   input.PlantingYear,
		PlantCount:     input.PlantCount,
		Status:         status,
		GpsLat:         input.GpsLat,
		GpsLng:         input.GpsLng,
		Notes:          input.Notes,
	}
	if err := insertWithDisplayId[Parcel](ctx, tenantId, parcel); err != nil {
		return nil, err
	}

	if err := utils.RemoveRedisList[Parcel](tenantId); err != nil {
		return nil, err
	}
	return parcel, nil
}

func GetParcel(ctx context.Context, id int) (*Parcel, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchModel[Parcel](ctx, tenantId, id)
}

// GetParcels lists the tenant's parcels ordered by display id, redis or db.
func GetParcels(ctx context.Context) ([]*Parcel, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}

	results, err := utils.RetrieveRedisList[Parcel](tenantId)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results, err = utils.FetchAllModelsOrdered[Parcel](ctx, tenantId, "display_id ASC")
		if err != nil {
			return nil, err
		}
		if err := utils.StoreRedisList[Parcel](results, tenantId); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func UpdateParcel(ctx context.Context, id int, input *UpdateParcelInput) (*Parcel, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := utils.ValidateInput(input); err != nil {
		return nil, err
	}
	if input.Status != nil {
		if err := input.Status.Validate(); err != nil {
			return nil, err
		}
	}
	if input.AreaM2 != nil && input.AreaM2.IsNegative() {
		return nil, errors.New("area must not be negative")
	}

	parcel, err := utils.FetchModel[Parcel](ctx, tenantId, id)
	if err != nil {
		return nil, err
	}

	// display id and tenant id are never part of the mutable field set
	if input.Name != nil {
		parcel.Name = *input.Name
	}
	if input.AreaM2 != nil {
		parcel.AreaM2 = *input.AreaM2
	}
	if input.PlantedVariety != nil {
		parcel.PlantedVariety = *input.PlantedVariety
	}
	if input.PlantingYear != nil {
		parcel.PlantingYear = *input.PlantingYear
	}
	if input.PlantCount != nil {
		parcel.PlantCount = *input.PlantCount
	}
	if input.Status != nil {
		parcel.Status = *input.Status
	}
	if input.GpsLat != nil {
		parcel.GpsLat = input.GpsLat
	}
	if input.GpsLng != nil {
		parcel.GpsLng = input.GpsLng
	}
	if input.Notes != nil {
		parcel.Notes = *input.Notes
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(parcel).Error; err != nil {
		return nil, err
	}

	if err := utils.RemoveRedisList[Parcel](tenantId); err != nil {
		return nil, err
	}
	return parcel, nil
}

// DeleteParcel hard-deletes the row. Harvests, sales and activities that
// reference the parcel keep their reference; the store does not cascade.
func DeleteParcel(ctx context.Context, id int) error {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return errors.New("tenant id is required")
	}
	if err := utils.DeleteModel[Parcel](ctx, tenantId, id); err != nil {
		return err
	}
	return utils.RemoveRedisList[Parcel](tenantId)
}
