package models_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zmeurelos/farm_backend/models"
	"github.com/zmeurelos/farm_backend/utils"
)

func TestHarvestWeightMath(t *testing.T) {
	h := &models.Harvest{
		CrateCount: 40,
		TareKg:     decimal.NewFromFloat(1.2),
	}

	if !h.GrossWeightKg().Equal(decimal.NewFromInt(20)) {
		t.Errorf("gross weight = %s, want 20 (40 crates at 0.5 kg)", h.GrossWeightKg())
	}
	if !h.NetWeightKg().Equal(decimal.NewFromFloat(18.8)) {
		t.Errorf("net weight = %s, want 18.8", h.NetWeightKg())
	}

	rate := decimal.NewFromFloat(2.5)
	if !h.LaborValue(rate).Equal(decimal.NewFromFloat(47)) {
		t.Errorf("labor value = %s, want 47", h.LaborValue(rate))
	}

	// fixed-salary pickers have rate zero and earn nothing per kg
	if !h.LaborValue(decimal.Zero).Equal(decimal.Zero) {
		t.Errorf("labor value at zero rate = %s, want 0", h.LaborValue(decimal.Zero))
	}
}

func TestCreateHarvestValidatesReferences(t *testing.T) {
	ctx := newTestContext(t)
	now := utils.DateOnly(time.Now())

	_, err := models.CreateHarvest(ctx, &models.NewHarvest{
		Date:       now,
		PickerId:   9999,
		CrateCount: 10,
	})
	if err == nil {
		t.Fatal("expected error for unknown picker id")
	}

	picker, err := models.CreatePicker(ctx, &models.NewPicker{FullName: "Ion"})
	if err != nil {
		t.Fatalf("CreatePicker: %v", err)
	}

	harvest, err := models.CreateHarvest(ctx, &models.NewHarvest{
		Date:       now,
		PickerId:   picker.ID,
		CrateCount: 10,
	})
	if err != nil {
		t.Fatalf("CreateHarvest: %v", err)
	}
	if harvest.DisplayId != "R001" {
		t.Errorf("harvest display id = %q, want R001", harvest.DisplayId)
	}
}

func TestGetHarvestsByMonth(t *testing.T) {
	ctx := newTestContext(t)

	dates := []time.Time{
		date(2026, time.June, 1),
		date(2026, time.June, 30),
		date(2026, time.July, 1),
		date(2026, time.May, 31),
	}
	for _, d := range dates {
		if _, err := models.CreateHarvest(ctx, &models.NewHarvest{
			Date:       d,
			CrateCount: 5,
		}); err != nil {
			t.Fatalf("CreateHarvest %s: %v", d, err)
		}
	}

	june, err := models.GetHarvestsByMonth(ctx, 2026, time.June)
	if err != nil {
		t.Fatalf("GetHarvestsByMonth: %v", err)
	}
	if len(june) != 2 {
		t.Fatalf("june harvests = %d, want 2", len(june))
	}
	for _, h := range june {
		if h.Date.Month() != time.June {
			t.Errorf("harvest dated %s returned for June window", h.Date)
		}
	}
}
