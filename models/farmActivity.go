package models

import (
	"context"
	"errors"
	"time"

	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/utils"
)

// FarmActivity is an agricultural treatment or maintenance operation.
// Pesticide treatments carry a pre-harvest waiting period in whole days.
type FarmActivity struct {
	ID                int          `gorm:"primary_key" json:"id"`
	TenantId          string       `gorm:"size:36;not null;uniqueIndex:idx_farm_activities_tenant_display,priority:1" json:"tenant_id"`
	DisplayId         string       `gorm:"size:20;not null;uniqueIndex:idx_farm_activities_tenant_display,priority:2" json:"display_id"`
	ApplicationDate   time.Time    `gorm:"not null" json:"application_date"`
	ParcelId          int          `gorm:"index;default:0" json:"parcel_id"`
	ActivityType      ActivityType `gorm:"size:40;not null" json:"activity_type"`
	ProductUsed       string       `gorm:"size:255" json:"product_used"`
	Dose              string       `gorm:"size:100" json:"dose"`
	WaitingPeriodDays int          `gorm:"default:0" json:"waiting_period_days"`
	Operator          string       `gorm:"size:255" json:"operator"`
	Notes             string       `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FarmActivity) DisplayIdPrefix() string { return "AA" }

func (a *FarmActivity) setDisplayId(id string) { a.DisplayId = id }

// PauseStatus evaluates the waiting period against the given reference date.
func (a *FarmActivity) PauseStatus(now time.Time) PauseResult {
	return ComputePauseStatus(a.ApplicationDate, a.WaitingPeriodDays, now)
}

type NewFarmActivity struct {
	ApplicationDate   time.Time    `json:"application_date" validate:"required"`
	ParcelId          int          `json:"parcel_id"`
	ActivityType      ActivityType `json:"activity_type" validate:"required"`
	ProductUsed       string       `json:"product_used"`
	Dose              string       `json:"dose"`
	WaitingPeriodDays int          `json:"waiting_period_days" validate:"gte=0"`
	Operator          string       `json:"operator"`
	Notes             string       `json:"notes"`
}

type UpdateFarmActivityInput struct {
	ApplicationDate   *time.Time    `json:"application_date"`
	ParcelId          *int          `json:"parcel_id"`
	ActivityType      *ActivityType `json:"activity_type"`
	ProductUsed       *string       `json:"product_used"`
	Dose              *string       `json:"dose"`
	WaitingPeriodDays *int          `json:"waiting_period_days" validate:"omitempty,gte=0"`
	Operator          *string       `json:"operator"`
	Notes             *string       `json:"notes"`
}

func (input *NewFarmActivity) validate(ctx context.Context, tenantId string, _ int) error {
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	if err := input.ActivityType.Validate(); err != nil {
		return err
	}

	// exists parcel
	if input.ParcelId > 0 {
		if err := utils.ValidateResourceId[Parcel](ctx, tenantId, input.ParcelId); err != nil {
			return errors.New("parcel not found")
		}
	}
	return nil
}

func CreateFarmActivity(ctx context.Context, input *NewFarmActivity) (*FarmActivity, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := input.validate(ctx, tenantId, 0); err != nil {
		return nil, err
	}

	activity := &FarmActivity{
		TenantId:          tenantId,
		ApplicationDate:   input.ApplicationDate,
		ParcelId:          input.ParcelId,
		ActivityType:      input.ActivityType,
		ProductUsed:       input.ProductUsed,
		Dose:              input.Dose,
		WaitingPeriodDays: input.WaitingPeriodDays,
		Operator:          input.Operator,
		Notes:             input.Notes,
	}
	if err := insertWithDisplayId[FarmActivity](ctx, tenantId, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func GetFarmActivity(ctx context.Context, id int) (*FarmActivity, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchModel[FarmActivity](ctx, tenantId, id)
}

// GetFarmActivities lists the tenant's activities, newest application first.
func GetFarmActivities(ctx context.Context) ([]*FarmActivity, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchAllModelsOrdered[FarmActivity](ctx, tenantId, "application_date DESC")
}

func GetFarmActivitiesByMonth(ctx context.Context, year int, month time.Month) ([]*FarmActivity, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}

	startDate, endDate := utils.MonthRange(year, month)
	db := config.GetDB()
	var results []*FarmActivity
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND application_date >= ? AND application_date <= ?", tenantId, startDate, endDate).
		Order("application_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func UpdateFarmActivity(ctx context.Context, id int, input *UpdateFarmActivityInput) (*FarmActivity, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := utils.ValidateInput(input); err != nil {
		return nil, err
	}
	if input.ActivityType != nil {
		if err := input.ActivityType.Validate(); err != nil {
			return nil, err
		}
	}
	if input.ParcelId != nil && *input.ParcelId > 0 {
		if err := utils.ValidateResourceId[Parcel](ctx, tenantId, *input.ParcelId); err != nil {
			return nil, errors.New("parcel not found")
		}
	}

	activity, err := utils.FetchModel[FarmActivity](ctx, tenantId, id)
	if err != nil {
		return nil, err
	}

	if input.ApplicationDate != nil {
		activity.ApplicationDate = *input.ApplicationDate
	}
	if input.ParcelId != nil {
		activity.ParcelId = *input.ParcelId
	}
	if input.ActivityType != nil {
		activity.ActivityType = *input.ActivityType
	}
	if input.ProductUsed != nil {
		activity.ProductUsed = *input.ProductUsed
	}
	if input.Dose != nil {
		activity.Dose = *input.Dose
	}
	if input.WaitingPeriodDays != nil {
		activity.WaitingPeriodDays = *input.WaitingPeriodDays
	}
	if input.Operator != nil {
		activity.Operator = *input.Operator
	}
	if input.Notes != nil {
		activity.Notes = *input.Notes
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(activity).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

func DeleteFarmActivity(ctx context.Context, id int) error {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return errors.New("tenant id is required")
	}
	return utils.DeleteModel[FarmActivity](ctx, tenantId, id)
}
