package models_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zmeurelos/farm_backend/models"
	"github.com/zmeurelos/farm_backend/utils"
)

func TestParcelLifecycle(t *testing.T) {
	ctx := newTestContext(t)

	created, err := models.CreateParcel(ctx, &models.NewParcel{
		Name:           "South Slope",
		AreaM2:         decimal.NewFromInt(3200),
		PlantedVariety: "Heritage",
		PlantingYear:   2021,
		PlantCount:     1600,
	})
	if err != nil {
		t.Fatalf("CreateParcel: %v", err)
	}

	fetched, err := models.GetParcel(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetParcel: %v", err)
	}
	if fetched.Name != "South Slope" || fetched.DisplayId != created.DisplayId {
		t.Fatalf("fetched parcel mismatch: %+v", fetched)
	}

	newName := "South Slope Extended"
	newCount := 2000
	updated, err := models.UpdateParcel(ctx, created.ID, &models.UpdateParcelInput{
		Name:       &newName,
		PlantCount: &newCount,
	})
	if err != nil {
		t.Fatalf("UpdateParcel: %v", err)
	}
	if updated.Name != newName || updated.PlantCount != newCount {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.DisplayId != created.DisplayId {
		t.Fatalf("display id changed on update: %q -> %q", created.DisplayId, updated.DisplayId)
	}

	if err := models.DeleteParcel(ctx, created.ID); err != nil {
		t.Fatalf("DeleteParcel: %v", err)
	}
	if _, err := models.GetParcel(ctx, created.ID); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("GetParcel after delete: got %v, want record not found", err)
	}
	if err := models.DeleteParcel(ctx, created.ID); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("second delete: got %v, want record not found", err)
	}
}

func TestTenantIsolation(t *testing.T) {
	ctx := newTestContext(t)

	parcel, err := models.CreateParcel(ctx, &models.NewParcel{
		Name:         "Private Field",
		AreaM2:       decimal.NewFromInt(1000),
		PlantingYear: 2022,
	})
	if err != nil {
		t.Fatalf("CreateParcel: %v", err)
	}

	otherCtx := secondTenantContext(t)
	if _, err := models.GetParcel(otherCtx, parcel.ID); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("cross-tenant fetch: got %v, want record not found", err)
	}
	if err := models.DeleteParcel(otherCtx, parcel.ID); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("cross-tenant delete: got %v, want record not found", err)
	}

	list, err := models.GetParcels(otherCtx)
	if err != nil {
		t.Fatalf("GetParcels (other tenant): %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("other tenant sees %d parcels, want 0", len(list))
	}
}

func TestOperationsRequireTenant(t *testing.T) {
	newTestContext(t)

	bare := context.Background()
	if _, err := models.GetParcels(bare); err == nil {
		t.Fatal("expected error without tenant id in context")
	}
	if _, err := models.CreatePicker(bare, &models.NewPicker{FullName: "Nobody"}); err == nil {
		t.Fatal("expected error without tenant id in context")
	}
}

func TestFarmActivityValidation(t *testing.T) {
	ctx := newTestContext(t)
	now := utils.DateOnly(time.Now())

	_, err := models.CreateFarmActivity(ctx, &models.NewFarmActivity{
		ApplicationDate:   now,
		ActivityType:      models.ActivityTypeFungicideTreatment,
		WaitingPeriodDays: -3,
	})
	if err == nil {
		t.Fatal("expected validation error for negative waiting period")
	}

	_, err = models.CreateFarmActivity(ctx, &models.NewFarmActivity{
		ApplicationDate: now,
		ActivityType:    models.ActivityType("Juggling"),
	})
	if err == nil {
		t.Fatal("expected validation error for unknown activity type")
	}

	activity, err := models.CreateFarmActivity(ctx, &models.NewFarmActivity{
		ApplicationDate:   now,
		ActivityType:      models.ActivityTypeIrrigation,
		WaitingPeriodDays: 0,
		Operator:          "Vasile",
	})
	if err != nil {
		t.Fatalf("CreateFarmActivity: %v", err)
	}
	if activity.DisplayId != "AA001" {
		t.Errorf("activity display id = %q, want AA001", activity.DisplayId)
	}
}

func TestGetActivePickers(t *testing.T) {
	ctx := newTestContext(t)

	active, err := models.CreatePicker(ctx, &models.NewPicker{FullName: "Active Ana"})
	if err != nil {
		t.Fatalf("CreatePicker: %v", err)
	}
	retired, err := models.CreatePicker(ctx, &models.NewPicker{FullName: "Retired Radu"})
	if err != nil {
		t.Fatalf("CreatePicker: %v", err)
	}
	if _, err := models.UpdatePicker(ctx, retired.ID, &models.UpdatePickerInput{
		IsActive: utils.NewFalse(),
	}); err != nil {
		t.Fatalf("UpdatePicker: %v", err)
	}

	pickers, err := models.GetActivePickers(ctx)
	if err != nil {
		t.Fatalf("GetActivePickers: %v", err)
	}
	if len(pickers) != 1 || pickers[0].ID != active.ID {
		t.Fatalf("active pickers = %+v, want only %d", pickers, active.ID)
	}
}

func TestGetClientsWithNegotiatedPrice(t *testing.T) {
	ctx := newTestContext(t)

	price := decimal.NewFromFloat(17.5)
	negotiated, err := models.CreateClient(ctx, &models.NewClient{
		Name:                 "Wholesale Buyer",
		NegotiatedPricePerKg: &price,
	})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if _, err := models.CreateClient(ctx, &models.NewClient{Name: "Walk-in"}); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	clients, err := models.GetClientsWithNegotiatedPrice(ctx)
	if err != nil {
		t.Fatalf("GetClientsWithNegotiatedPrice: %v", err)
	}
	if len(clients) != 1 || clients[0].ID != negotiated.ID {
		t.Fatalf("negotiated clients = %d, want only the wholesale buyer", len(clients))
	}
}

func TestCuttingSalesTotal(t *testing.T) {
	ctx := newTestContext(t)

	client, err := models.CreateClient(ctx, &models.NewClient{Name: "Nursery"})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	sales := []struct {
		qty   int
		price float64
	}{
		{100, 1.5},
		{250, 1.2},
	}
	for _, s := range sales {
		if _, err := models.CreateCuttingSale(ctx, &models.NewCuttingSale{
			Date:           date(2026, time.March, 10),
			ClientId:       client.ID,
			CuttingVariety: "Polka",
			Quantity:       s.qty,
			UnitPrice:      decimal.NewFromFloat(s.price),
		}); err != nil {
			t.Fatalf("CreateCuttingSale: %v", err)
		}
	}

	total, err := models.GetCuttingSalesTotal(ctx)
	if err != nil {
		t.Fatalf("GetCuttingSalesTotal: %v", err)
	}
	// 100*1.5 + 250*1.2 = 450
	if !total.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("cutting sales total = %s, want 450", total)
	}
}

func TestFruitSalePaymentStatusDefaultsToPaid(t *testing.T) {
	ctx := newTestContext(t)

	sale, err := models.CreateFruitSale(ctx, &models.NewFruitSale{
		Date:       date(2026, time.July, 12),
		QuantityKg: decimal.NewFromInt(25),
		PricePerKg: decimal.NewFromInt(16),
	})
	if err != nil {
		t.Fatalf("CreateFruitSale: %v", err)
	}
	if sale.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("payment status = %q, want Paid", sale.PaymentStatus)
	}
	if !sale.TotalAmount().Equal(decimal.NewFromInt(400)) {
		t.Errorf("total amount = %s, want 400", sale.TotalAmount())
	}
}

func TestUpdateFruitSaleRejectsInvalidInput(t *testing.T) {
	ctx := newTestContext(t)

	sale, err := models.CreateFruitSale(ctx, &models.NewFruitSale{
		Date:       date(2026, time.July, 12),
		QuantityKg: decimal.NewFromInt(10),
		PricePerKg: decimal.NewFromInt(15),
	})
	if err != nil {
		t.Fatalf("CreateFruitSale: %v", err)
	}

	zero := decimal.Zero
	if _, err := models.UpdateFruitSale(ctx, sale.ID, &models.UpdateFruitSaleInput{
		QuantityKg: &zero,
	}); err == nil {
		t.Fatal("expected error for non-positive quantity")
	}

	bad := models.PaymentStatus("Bartered")
	if _, err := models.UpdateFruitSale(ctx, sale.ID, &models.UpdateFruitSaleInput{
		PaymentStatus: &bad,
	}); err == nil {
		t.Fatal("expected error for unknown payment status")
	}

	kept, err := models.GetFruitSale(ctx, sale.ID)
	if err != nil {
		t.Fatalf("GetFruitSale: %v", err)
	}
	if !kept.QuantityKg.Equal(decimal.NewFromInt(10)) {
		t.Errorf("quantity changed by rejected update: %s", kept.QuantityKg)
	}
}

func TestDeleteLeavesReferencesDangling(t *testing.T) {
	ctx := newTestContext(t)
	now := utils.DateOnly(time.Now())

	picker, err := models.CreatePicker(ctx, &models.NewPicker{FullName: "Temp"})
	if err != nil {
		t.Fatalf("CreatePicker: %v", err)
	}
	harvest, err := models.CreateHarvest(ctx, &models.NewHarvest{
		Date:       now,
		PickerId:   picker.ID,
		CrateCount: 8,
	})
	if err != nil {
		t.Fatalf("CreateHarvest: %v", err)
	}

	// deleting a referenced picker is allowed; the harvest survives with a
	// dangling picker id
	if err := models.DeletePicker(ctx, picker.ID); err != nil {
		t.Fatalf("DeletePicker: %v", err)
	}
	kept, err := models.GetHarvest(ctx, harvest.ID)
	if err != nil {
		t.Fatalf("GetHarvest after picker delete: %v", err)
	}
	if kept.PickerId != picker.ID {
		t.Errorf("harvest picker id = %d, want %d", kept.PickerId, picker.ID)
	}
}
