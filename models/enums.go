package models

import "errors"

type ParcelStatus string

const (
	ParcelStatusActive    ParcelStatus = "Active"
	ParcelStatusPreparing ParcelStatus = "Preparing"
	ParcelStatusCleared   ParcelStatus = "Cleared"
)

func (s ParcelStatus) Validate() error {
	switch s {
	case ParcelStatusActive, ParcelStatusPreparing, ParcelStatusCleared:
		return nil
	}
	return errors.New("invalid parcel status")
}

type EmploymentType string

const (
	EmploymentTypeSeasonal  EmploymentType = "Seasonal"
	EmploymentTypePermanent EmploymentType = "Permanent"
)

func (t EmploymentType) Validate() error {
	switch t {
	case EmploymentTypeSeasonal, EmploymentTypePermanent:
		return nil
	}
	return errors.New("invalid employment type")
}

type PaymentStatus string

const (
	PaymentStatusPaid        PaymentStatus = "Paid"
	PaymentStatusOutstanding PaymentStatus = "Outstanding"
	PaymentStatusAdvance     PaymentStatus = "Advance"
)

func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentStatusPaid, PaymentStatusOutstanding, PaymentStatusAdvance:
		return nil
	}
	return errors.New("invalid payment status")
}

type ActivityType string

const (
	ActivityTypeFungicideTreatment   ActivityType = "FungicideTreatment"
	ActivityTypeInsecticideTreatment ActivityType = "InsecticideTreatment"
	ActivityTypeHerbicideTreatment   ActivityType = "HerbicideTreatment"
	ActivityTypeOrganicFertilization ActivityType = "OrganicFertilization"
	ActivityTypeChemicalFertilization ActivityType = "ChemicalFertilization"
	ActivityTypeFoliarFertilization  ActivityType = "FoliarFertilization"
	ActivityTypeIrrigation           ActivityType = "Irrigation"
	ActivityTypePruning              ActivityType = "Pruning"
	ActivityTypeOther                ActivityType = "Other"
)

func (t ActivityType) Validate() error {
	switch t {
	case ActivityTypeFungicideTreatment, ActivityTypeInsecticideTreatment,
		ActivityTypeHerbicideTreatment, ActivityTypeOrganicFertilization,
		ActivityTypeChemicalFertilization, ActivityTypeFoliarFertilization,
		ActivityTypeIrrigation, ActivityTypePruning, ActivityTypeOther:
		return nil
	}
	return errors.New("invalid activity type")
}

type InvestmentCategory string

const (
	InvestmentCategoryCuttings           InvestmentCategory = "Cuttings"
	InvestmentCategoryTrellisAndWire     InvestmentCategory = "TrellisAndWire"
	InvestmentCategoryIrrigationSystem   InvestmentCategory = "IrrigationSystem"
	InvestmentCategoryTransportLogistics InvestmentCategory = "TransportLogistics"
	InvestmentCategoryPlantingLabor      InvestmentCategory = "PlantingLabor"
	InvestmentCategoryOther              InvestmentCategory = "Other"
)

func (c InvestmentCategory) Validate() error {
	switch c {
	case InvestmentCategoryCuttings, InvestmentCategoryTrellisAndWire,
		InvestmentCategoryIrrigationSystem, InvestmentCategoryTransportLogistics,
		InvestmentCategoryPlantingLabor, InvestmentCategoryOther:
		return nil
	}
	return errors.New("invalid investment category")
}

type ExpenseCategory string

const (
	ExpenseCategoryFuel        ExpenseCategory = "Fuel"
	ExpenseCategoryPackaging   ExpenseCategory = "Packaging"
	ExpenseCategoryUtilities   ExpenseCategory = "Utilities"
	ExpenseCategoryLabor       ExpenseCategory = "Labor"
	ExpenseCategoryMaintenance ExpenseCategory = "Maintenance"
	ExpenseCategoryOther       ExpenseCategory = "Other"
)

func (c ExpenseCategory) Validate() error {
	switch c {
	case ExpenseCategoryFuel, ExpenseCategoryPackaging, ExpenseCategoryUtilities,
		ExpenseCategoryLabor, ExpenseCategoryMaintenance, ExpenseCategoryOther:
		return nil
	}
	return errors.New("invalid expense category")
}
