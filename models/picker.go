package models

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/utils"
)

// Picker is a harvest worker. RatePerKg zero means fixed salary.
type Picker struct {
	ID             int             `gorm:"primary_key" json:"id"`
	TenantId       string          `gorm:"size:36;not null;uniqueIndex:idx_pickers_tenant_display,priority:1" json:"tenant_id"`
	DisplayId      string          `gorm:"size:20;not null;uniqueIndex:idx_pickers_tenant_display,priority:2" json:"display_id"`
	FullName       string          `gorm:"size:255;not null" json:"full_name"`
	Phone          string          `gorm:"size:20" json:"phone"`
	EmploymentType EmploymentType  `gorm:"size:30;not null;default:Seasonal" json:"employment_type"`
	RatePerKg      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"rate_per_kg"`
	HireDate       *time.Time      `json:"hire_date"`
	IsActive       *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Picker) DisplayIdPrefix() string { return "C" }

func (p *Picker) setDisplayId(id string) { p.DisplayId = id }

type NewPicker struct {
	FullName       string          `json:"full_name" validate:"required"`
	Phone          string          `json:"phone"`
	EmploymentType EmploymentType  `json:"employment_type"`
	RatePerKg      decimal.Decimal `json:"rate_per_kg"`
	HireDate       *time.Time      `json:"hire_date"`
}

type UpdatePickerInput struct {
	FullName       *string          `json:"full_name"`
	Phone          *string          `json:"phone"`
	EmploymentType *EmploymentType  `json:"employment_type"`
	RatePerKg      *decimal.Decimal `json:"rate_per_kg"`
	HireDate       *time.Time       `json:"hire_date"`
	IsActive       *bool            `json:"is_active"`
}

func (input *NewPicker) validate() error {
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	if input.EmploymentType != "" {
		if err := input.EmploymentType.Validate(); err != nil {
			return err
		}
	}
	if input.RatePerKg.IsNegative() {
		return errors.New("rate must not be negative")
	}
	return nil
}

func CreatePicker(ctx context.Context, input *NewPicker) (*Picker, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	employmentType := input.EmploymentType
	if employmentType == "" {
		employmentType = EmploymentTypeSeasonal
	}

	picker := &Picker{
		TenantId:       tenantId,
		FullName:       input.FullName,
		Phone:          input.Phone,
		EmploymentType: employmentType,
		RatePerKg:      input.RatePerKg,
		HireDate:       input.HireDate,
		IsActive:       utils.NewTrue(),
	}
	if err := insertWithDisplayId[Picker](ctx, tenantId, picker); err != nil {
		return nil, err
	}

	if err := utils.RemoveRedisList[Picker](tenantId); err != nil {
		return nil, err
	}
	return picker, nil
}

func GetPicker(ctx context.Context, id int) (*Picker, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchModel[Picker](ctx, tenantId, id)
}

// GetPickers lists the tenant's pickers ordered by display id, redis or db.
func GetPickers(ctx context.Context) ([]*Picker, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}

	results, err := utils.RetrieveRedisList[Picker](tenantId)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results, err = utils.FetchAllModelsOrdered[Picker](ctx, tenantId, "display_id ASC")
		if err != nil {
			return nil, err
		}
		if err := utils.StoreRedisList[Picker](results, tenantId); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func GetActivePickers(ctx context.Context) ([]*Picker, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}

	db := config.GetDB()
	var results []*Picker
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND is_active = ?", tenantId, true).
		Order("display_id ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func UpdatePicker(ctx context.Context, id int, input *UpdatePickerInput) (*Picker, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if input.EmploymentType != nil {
		if err := input.EmploymentType.Validate(); err != nil {
			return nil, err
		}
	}
	if input.RatePerKg != nil && input.RatePerKg.IsNegative() {
		return nil, errors.New("rate must not be negative")
	}

	picker, err := utils.FetchModel[Picker](ctx, tenantId, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		picker.FullName = *input.FullName
	}
	if input.Phone != nil {
		picker.Phone = *input.Phone
	}
	if input.EmploymentType != nil {
		picker.EmploymentType = *input.EmploymentType
	}
	if input.RatePerKg != nil {
		picker.RatePerKg = *input.RatePerKg
	}
	if input.HireDate != nil {
		picker.HireDate = input.HireDate
	}
	if input.IsActive != nil {
		picker.IsActive = input.IsActive
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(picker).Error; err != nil {
		return nil, err
	}

	if err := utils.RemoveRedisList[Picker](tenantId); err != nil {
		return nil, err
	}
	return picker, nil
}

func DeletePicker(ctx context.Context, id int) error {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return errors.New("tenant id is required")
	}
	if err := utils.DeleteModel[Picker](ctx, tenantId, id); err != nil {
		return err
	}
	return utils.RemoveRedisList[Picker](tenantId)
}
