package models

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// MonthlyReport aggregates a calendar month of farm activity for export.
type MonthlyReport struct {
	Year  int
	Month time.Month

	Harvests       []*Harvest
	FruitSales     []*FruitSale
	CuttingSales   []*CuttingSale
	FarmActivities []*FarmActivity
	Investments    []*Investment
	Expenses       []*Expense
}

func BuildMonthlyReport(ctx context.Context, year int, month time.Month) (*MonthlyReport, error) {

	harvests, err := GetHarvestsByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	fruitSales, err := GetFruitSalesByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	cuttingSales, err := GetCuttingSalesByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	activities, err := GetFarmActivitiesByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	investments, err := GetInvestmentsByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	expenses, err := GetExpensesByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	return &MonthlyReport{
		Year:           year,
		Month:          month,
		Harvests:       harvests,
		FruitSales:     fruitSales,
		CuttingSales:   cuttingSales,
		FarmActivities: activities,
		Investments:    investments,
		Expenses:       expenses,
	}, nil
}

// ExportMonthlyReport writes the month's records as an xlsx workbook,
// one sheet per record type.
func ExportMonthlyReport(ctx context.Context, year int, month time.Month, w io.Writer) error {

	report, err := BuildMonthlyReport(ctx, year, month)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Harvests"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	f.SetCellValue(sheetName, "A1", "DisplayId")
	f.SetCellValue(sheetName, "B1", "Date")
	f.SetCellValue(sheetName, "C1", "PickerId")
	f.SetCellValue(sheetName, "D1", "ParcelId")
	f.SetCellValue(sheetName, "E1", "CrateCount")
	f.SetCellValue(sheetName, "F1", "NetWeightKg")
	f.SetCellValue(sheetName, "G1", "LaborValue")

	pickers, err := GetPickers(ctx)
	if err != nil {
		return err
	}
	pickerRates := make(map[int]decimal.Decimal, len(pickers))
	for _, p := range pickers {
		pickerRates[p.ID] = p.RatePerKg
	}

	for i, h := range report.Harvests {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(i+2), h.DisplayId)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(i+2), h.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, "C"+fmt.Sprint(i+2), h.PickerId)
		f.SetCellValue(sheetName, "D"+fmt.Sprint(i+2), h.ParcelId)
		f.SetCellValue(sheetName, "E"+fmt.Sprint(i+2), h.CrateCount)
		f.SetCellValue(sheetName, "F"+fmt.Sprint(i+2), h.NetWeightKg().InexactFloat64())
		f.SetCellValue(sheetName, "G"+fmt.Sprint(i+2), h.LaborValue(pickerRates[h.PickerId]).InexactFloat64())
	}

	sheetName = "FruitSales"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}
	f.SetCellValue(sheetName, "A1", "DisplayId")
	f.SetCellValue(sheetName, "B1", "Date")
	f.SetCellValue(sheetName, "C1", "ClientId")
	f.SetCellValue(sheetName, "D1", "QuantityKg")
	f.SetCellValue(sheetName, "E1", "PricePerKg")
	f.SetCellValue(sheetName, "F1", "TotalAmount")
	f.SetCellValue(sheetName, "G1", "PaymentStatus")
	for i, s := range report.FruitSales {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(i+2), s.DisplayId)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(i+2), s.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, "C"+fmt.Sprint(i+2), s.ClientId)
		f.SetCellValue(sheetName, "D"+fmt.Sprint(i+2), s.QuantityKg.InexactFloat64())
		f.SetCellValue(sheetName, "E"+fmt.Sprint(i+2), s.PricePerKg.InexactFloat64())
		f.SetCellValue(sheetName, "F"+fmt.Sprint(i+2), s.TotalAmount().InexactFloat64())
		f.SetCellValue(sheetName, "G"+fmt.Sprint(i+2), string(s.PaymentStatus))
	}

	sheetName = "CuttingSales"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}
	f.SetCellValue(sheetName, "A1", "DisplayId")
	f.SetCellValue(sheetName, "B1", "Date")
	f.SetCellValue(sheetName, "C1", "ClientId")
	f.SetCellValue(sheetName, "D1", "Variety")
	f.SetCellValue(sheetName, "E1", "Quantity")
	f.SetCellValue(sheetName, "F1", "UnitPrice")
	f.SetCellValue(sheetName, "G1", "TotalAmount")
	for i, s := range report.CuttingSales {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(i+2), s.DisplayId)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(i+2), s.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, "C"+fmt.Sprint(i+2), s.ClientId)
		f.SetCellValue(sheetName, "D"+fmt.Sprint(i+2), s.CuttingVariety)
		f.SetCellValue(sheetName, "E"+fmt.Sprint(i+2), s.Quantity)
		f.SetCellValue(sheetName, "F"+fmt.Sprint(i+2), s.UnitPrice.InexactFloat64())
		f.SetCellValue(sheetName, "G"+fmt.Sprint(i+2), s.TotalAmount().InexactFloat64())
	}

	sheetName = "FarmActivities"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}
	f.SetCellValue(sheetName, "A1", "DisplayId")
	f.SetCellValue(sheetName, "B1", "ApplicationDate")
	f.SetCellValue(sheetName, "C1", "ParcelId")
	f.SetCellValue(sheetName, "D1", "ActivityType")
	f.SetCellValue(sheetName, "E1", "ProductUsed")
	f.SetCellValue(sheetName, "F1", "WaitingPeriodDays")
	f.SetCellValue(sheetName, "G1", "PauseStatus")
	now := time.Now()
	for i, a := range report.FarmActivities {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(i+2), a.DisplayId)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(i+2), a.ApplicationDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, "C"+fmt.Sprint(i+2), a.ParcelId)
		f.SetCellValue(sheetName, "D"+fmt.Sprint(i+2), string(a.ActivityType))
		f.SetCellValue(sheetName, "E"+fmt.Sprint(i+2), a.ProductUsed)
		f.SetCellValue(sheetName, "F"+fmt.Sprint(i+2), a.WaitingPeriodDays)
		f.SetCellValue(sheetName, "G"+fmt.Sprint(i+2), string(a.PauseStatus(now).Status))
	}

	sheetName = "Investments"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}
	f.SetCellValue(sheetName, "A1", "DisplayId")
	f.SetCellValue(sheetName, "B1", "Date")
	f.SetCellValue(sheetName, "C1", "Category")
	f.SetCellValue(sheetName, "D1", "Supplier")
	f.SetCellValue(sheetName, "E1", "AmountLei")
	for i, inv := range report.Investments {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(i+2), inv.DisplayId)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(i+2), inv.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, "C"+fmt.Sprint(i+2), string(inv.Category))
		f.SetCellValue(sheetName, "D"+fmt.Sprint(i+2), inv.Supplier)
		f.SetCellValue(sheetName, "E"+fmt.Sprint(i+2), inv.AmountLei.InexactFloat64())
	}

	sheetName = "Expenses"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}
	f.SetCellValue(sheetName, "A1", "DisplayId")
	f.SetCellValue(sheetName, "B1", "Date")
	f.SetCellValue(sheetName, "C1", "Category")
	f.SetCellValue(sheetName, "D1", "Description")
	f.SetCellValue(sheetName, "E1", "AmountLei")
	for i, e := range report.Expenses {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(i+2), e.DisplayId)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(i+2), e.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, "C"+fmt.Sprint(i+2), string(e.Category))
		f.SetCellValue(sheetName, "D"+fmt.Sprint(i+2), e.Description)
		f.SetCellValue(sheetName, "E"+fmt.Sprint(i+2), e.AmountLei.InexactFloat64())
	}

	return f.Write(w)
}
