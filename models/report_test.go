package models_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"github.com/zmeurelos/farm_backend/models"
)

func TestExportMonthlyReport(t *testing.T) {
	ctx := newTestContext(t)

	picker, err := models.CreatePicker(ctx, &models.NewPicker{
		FullName:  "Elena",
		RatePerKg: decimal.NewFromFloat(2),
	})
	if err != nil {
		t.Fatalf("CreatePicker: %v", err)
	}
	harvest, err := models.CreateHarvest(ctx, &models.NewHarvest{
		Date:       date(2026, time.August, 5),
		PickerId:   picker.ID,
		CrateCount: 20,
	})
	if err != nil {
		t.Fatalf("CreateHarvest: %v", err)
	}
	if _, err := models.CreateExpense(ctx, &models.NewExpense{
		Date:        date(2026, time.August, 20),
		Category:    models.ExpenseCategoryPackaging,
		Description: "Crates",
		AmountLei:   decimal.NewFromInt(300),
	}); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}
	// outside the window, must not appear
	if _, err := models.CreateExpense(ctx, &models.NewExpense{
		Date:      date(2026, time.September, 1),
		Category:  models.ExpenseCategoryFuel,
		AmountLei: decimal.NewFromInt(100),
	}); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	var buf bytes.Buffer
	if err := models.ExportMonthlyReport(ctx, 2026, time.August, &buf); err != nil {
		t.Fatalf("ExportMonthlyReport: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Harvests", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != harvest.DisplayId {
		t.Errorf("harvest row display id = %q, want %q", got, harvest.DisplayId)
	}

	rows, err := f.GetRows("Expenses")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	// header plus the single August expense
	if len(rows) != 2 {
		t.Fatalf("expense rows = %d, want 2", len(rows))
	}
	if rows[1][3] != "Crates" {
		t.Errorf("expense description = %q, want Crates", rows[1][3])
	}
}
