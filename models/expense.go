package models

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/utils"
)

// Expense is a recurring operational cost.
type Expense struct {
	ID          int             `gorm:"primary_key" json:"id"`
	TenantId    string          `gorm:"size:36;not null;uniqueIndex:idx_expenses_tenant_display,priority:1" json:"tenant_id"`
	DisplayId   string          `gorm:"size:20;not null;uniqueIndex:idx_expenses_tenant_display,priority:2" json:"display_id"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Category    ExpenseCategory `gorm:"size:40;not null" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	AmountLei   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount_lei"`
	Supplier    string          `gorm:"size:255" json:"supplier"`
	DocumentUrl string          `gorm:"size:500" json:"document_url"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Expense) DisplayIdPrefix() string { return "CH" }

func (e *Expense) setDisplayId(id string) { e.DisplayId = id }

type NewExpense struct {
	Date        time.Time       `json:"date" validate:"required"`
	Category    ExpenseCategory `json:"category" validate:"required"`
	Description string          `json:"description"`
	AmountLei   decimal.Decimal `json:"amount_lei" validate:"required"`
	Supplier    string          `json:"supplier"`
	DocumentUrl string          `json:"document_url"`
}

type UpdateExpenseInput struct {
	Date        *time.Time       `json:"date"`
	Category    *ExpenseCategory `json:"category"`
	Description *string          `json:"description"`
	AmountLei   *decimal.Decimal `json:"amount_lei"`
	Supplier    *string          `json:"supplier"`
	DocumentUrl *string          `json:"document_url"`
}

func (input *NewExpense) validate() error {
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	if err := input.Category.Validate(); err != nil {
		return err
	}
	if input.AmountLei.IsNegative() {
		return errors.New("amount must not be negative")
	}
	return nil
}

func CreateExpense(ctx context.Context, input *NewExpense) (*Expense, error) {

	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	expense := &Expense{
		TenantId:    tenantId,
		Date:        input.Date,
		Category:    input.Category,
		Description: input.Description,
		AmountLei:   input.AmountLei,
		Supplier:    input.Supplier,
		DocumentUrl: input.DocumentUrl,
	}
	if err := insertWithDisplayId[Expense](ctx, tenantId, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func GetExpense(ctx context.Context, id int) (*Expense, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchModel[Expense](ctx, tenantId, id)
}

func GetExpenses(ctx context.Context) ([]*Expense, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}
	return utils.FetchAllModelsOrdered[Expense](ctx, tenantId, "date DESC")
}

func GetExpensesByMonth(ctx context.Context, year int, month time.Month) ([]*Expense, error) {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return nil, errors.New("tenant id is required")
	}

	startDate, endDate := utils.MonthRange(year, month)
	db := config.GetDB()
	var results []*Expense
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND date >= ? AND date <= ?", tenantId, startDate, endDate).
		Order("date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func UpdateExpense(ctx context.Context, id int, input *UpdateExpenseInput) (*Expense, error) {

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

	expense, err := utils.FetchModel[Expense](ctx, tenantId, id)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.AmountLei != nil {
		expense.AmountLei = *input.AmountLei
	}
	if input.Supplier != nil {
		expense.Supplier = *input.Supplier
	}
	if input.DocumentUrl != nil {
		expense.DocumentUrl = *input.DocumentUrl
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(expense).Error; err != nil {
		return nil, err
	}
	return expense, nil
}

func DeleteExpense(ctx context.Context, id int) error {
	tenantId, ok := utils.GetTenantIdFromContext(ctx)
	if !ok || tenantId == "" {
		return errors.New("tenant id is required")
	}
	return utils.DeleteModel[Expense](ctx, tenantId, id)
}
