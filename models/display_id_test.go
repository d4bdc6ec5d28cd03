package models_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/models"
	"github.com/zmeurelos/farm_backend/utils"
)

func TestFormatDisplayId(t *testing.T) {
	cases := []struct {
		prefix string
		n      int64
		want   string
	}{
		{"P", 1, "P001"},
		{"P", 42, "P042"},
		{"P", 999, "P999"},
		{"P", 1000, "P1000"},
		{"CL", 7, "CL007"},
		{"INV", 123, "INV123"},
	}
	for _, c := range cases {
		if got := models.FormatDisplayId(c.prefix, c.n); got != c.want {
			t.Errorf("FormatDisplayId(%q, %d) = %q, want %q", c.prefix, c.n, got, c.want)
		}
	}
}

func TestParseDisplayIdSuffix(t *testing.T) {
	if n, ok := models.ParseDisplayIdSuffix("P", "P042"); !ok || n != 42 {
		t.Errorf("ParseDisplayIdSuffix(P042) = %d, %v", n, ok)
	}
	if n, ok := models.ParseDisplayIdSuffix("P", "P1000"); !ok || n != 1000 {
		t.Errorf("ParseDisplayIdSuffix(P1000) = %d, %v", n, ok)
	}
	for _, bad := range []string{"P", "PX", "P0", "P-1", "CL001", "", "001"} {
		if _, ok := models.ParseDisplayIdSuffix("P", bad); ok {
			t.Errorf("ParseDisplayIdSuffix(%q) accepted malformed id", bad)
		}
	}
}

func TestFirstDisplayIdPerTenant(t *testing.T) {
	ctx := newTestContext(t)

	parcel, err := models.CreateParcel(ctx, &models.NewParcel{
		Name:         "First",
		AreaM2:       decimal.NewFromInt(1000),
		PlantingYear: 2023,
	})
	if err != nil {
		t.Fatalf("CreateParcel: %v", err)
	}
	if parcel.DisplayId != "P001" {
		t.Fatalf("first parcel display id = %q, want P001", parcel.DisplayId)
	}

	// a second tenant starts its own sequence from 001
	otherCtx := secondTenantContext(t)
	other, err := models.CreateParcel(otherCtx, &models.NewParcel{
		Name:         "Other First",
		AreaM2:       decimal.NewFromInt(800),
		PlantingYear: 2024,
	})
	if err != nil {
		t.Fatalf("CreateParcel (other tenant): %v", err)
	}
	if other.DisplayId != "P001" {
		t.Fatalf("other tenant first parcel display id = %q, want P001", other.DisplayId)
	}
}

func TestDisplayIdSequenceIsContiguous(t *testing.T) {
	ctx := newTestContext(t)

	want := []string{"C001", "C002", "C003", "C004", "C005"}
	for i, w := range want {
		picker, err := models.CreatePicker(ctx, &models.NewPicker{
			FullName: "Picker " + w,
		})
		if err != nil {
			t.Fatalf("CreatePicker #%d: %v", i+1, err)
		}
		if picker.DisplayId != w {
			t.Fatalf("picker #%d display id = %q, want %q", i+1, picker.DisplayId, w)
		}
	}
}

func TestDisplayIdSkipsGaps(t *testing.T) {
	ctx := newTestContext(t)
	tenantId, _ := utils.GetTenantIdFromContext(ctx)

	db := config.GetDB()
	for _, id := range []string{"P001", "P003"} {
		row := &models.Parcel{
			TenantId:     tenantId,
			DisplayId:    id,
			Name:         "Seed " + id,
			AreaM2:       decimal.NewFromInt(100),
			PlantingYear: 2020,
		}
		if err := db.WithContext(ctx).Create(row).Error; err != nil {
			t.Fatalf("seed row %s: %v", id, err)
		}
	}

	parcel, err := models.CreateParcel(ctx, &models.NewParcel{
		Name:         "Next",
		AreaM2:       decimal.NewFromInt(100),
		PlantingYear: 2023,
	})
	if err != nil {
		t.Fatalf("CreateParcel: %v", err)
	}
	// gaps are never backfilled; the next id is max+1
	if parcel.DisplayId != "P004" {
		t.Fatalf("display id after [P001 P003] = %q, want P004", parcel.DisplayId)
	}
}

func TestDisplayIdMaxIsNumericNotLexical(t *testing.T) {
	ctx := newTestContext(t)
	tenantId, _ := utils.GetTenantIdFromContext(ctx)

	db := config.GetDB()
	for _, id := range []string{"P999", "P1000"} {
		row := &models.Parcel{
			TenantId:     tenantId,
			DisplayId:    id,
			Name:         "Seed " + id,
			AreaM2:       decimal.NewFromInt(100),
			PlantingYear: 2020,
		}
		if err := db.WithContext(ctx).Create(row).Error; err != nil {
			t.Fatalf("seed row %s: %v", id, err)
		}
	}

	parcel, err := models.CreateParcel(ctx, &models.NewParcel{
		Name:         "Next",
		AreaM2:       decimal.NewFromInt(100),
		PlantingYear: 2023,
	})
	if err != nil {
		t.Fatalf("CreateParcel: %v", err)
	}
	// lexically "P999" > "P1000"; numerically 1000 is the max
	if parcel.DisplayId != "P1001" {
		t.Fatalf("display id after [P999 P1000] = %q, want P1001", parcel.DisplayId)
	}
}

func TestDisplayIdIgnoresMalformedRows(t *testing.T) {
	ctx := newTestContext(t)
	tenantId, _ := utils.GetTenantIdFromContext(ctx)

	db := config.GetDB()
	for _, id := range []string{"PX", "P002", "LEGACY-7"} {
		row := &models.Parcel{
			TenantId:     tenantId,
			DisplayId:    id,
			Name:         "Seed " + id,
			AreaM2:       decimal.NewFromInt(100),
			PlantingYear: 2020,
		}
		if err := db.WithContext(ctx).Create(row).Error; err != nil {
			t.Fatalf("seed row %s: %v", id, err)
		}
	}

	parcel, err := models.CreateParcel(ctx, &models.NewParcel{
		Name:         "Next",
		AreaM2:       decimal.NewFromInt(100),
		PlantingYear: 2023,
	})
	if err != nil {
		t.Fatalf("CreateParcel: %v", err)
	}
	if parcel.DisplayId != "P003" {
		t.Fatalf("display id with malformed rows present = %q, want P003", parcel.DisplayId)
	}
}

func TestConcurrentCreatesGetDistinctDisplayIds(t *testing.T) {
	ctx := newTestContext(t)

	// without redis the composite unique index plus the bounded regenerate
	// loop is the only thing keeping concurrent creations apart
	config.DisconnectRedis()

	const workers = 8
	var wg sync.WaitGroup
	ids := make(chan string, workers)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			parcel, err := models.CreateParcel(ctx, &models.NewParcel{
				Name:         fmt.Sprintf("Plot %d", n),
				AreaM2:       decimal.NewFromInt(100),
				PlantingYear: 2023,
			})
			if err != nil {
				errs <- err
				return
			}
			ids <- parcel.DisplayId
		}(i)
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent CreateParcel: %v", err)
	}

	seen := make(map[string]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("display id %q handed out twice", id)
		}
		seen[id] = true
	}
	if len(seen) != workers {
		t.Fatalf("got %d distinct display ids, want %d", len(seen), workers)
	}
	for n := int64(1); n <= workers; n++ {
		if want := models.FormatDisplayId("P", n); !seen[want] {
			t.Errorf("missing display id %s", want)
		}
	}
}

func TestDisplayIdPropagatesStoreErrors(t *testing.T) {
	ctx := newTestContext(t)
	tenantId, _ := utils.GetTenantIdFromContext(ctx)

	// a failing store must surface as an error, never as a fresh first id
	if err := config.GetDB().Migrator().DropTable(&models.Parcel{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}
	t.Cleanup(func() { models.MigrateTable() })

	if id, err := models.NextDisplayId[models.Parcel](ctx, tenantId); err == nil {
		t.Fatalf("NextDisplayId returned %q, want store error", id)
	}

	parcel, err := models.CreateParcel(ctx, &models.NewParcel{
		Name:         "Unreachable",
		AreaM2:       decimal.NewFromInt(100),
		PlantingYear: 2023,
	})
	if err == nil {
		t.Fatalf("CreateParcel returned %v, want store error", parcel)
	}
}

func TestDisplayIdUniqueAcrossEntityTypes(t *testing.T) {
	ctx := newTestContext(t)
	now := utils.DateOnly(time.Now())

	// each entity type runs its own sequence under its own prefix
	picker, err := models.CreatePicker(ctx, &models.NewPicker{FullName: "Ana"})
	if err != nil {
		t.Fatalf("CreatePicker: %v", err)
	}
	client, err := models.CreateClient(ctx, &models.NewClient{Name: "Aprozar"})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	expense, err := models.CreateExpense(ctx, &models.NewExpense{
		Date:      now,
		Category:  models.ExpenseCategoryFuel,
		AmountLei: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	if picker.DisplayId != "C001" {
		t.Errorf("picker display id = %q, want C001", picker.DisplayId)
	}
	if client.DisplayId != "CL001" {
		t.Errorf("client display id = %q, want CL001", client.DisplayId)
	}
	if expense.DisplayId != "CH001" {
		t.Errorf("expense display id = %q, want CH001", expense.DisplayId)
	}
}
