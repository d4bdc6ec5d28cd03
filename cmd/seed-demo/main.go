// seed-demo creates a demo farm with sample records for every record type.
// Safe to rerun: each run creates a fresh tenant.
//
// Usage:
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-demo
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/models"
	"github.com/zmeurelos/farm_backend/utils"
)

func main() {
	godotenv.Load(".env")

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	if config.GetDB() == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	models.MigrateTable()

	tenant, err := models.CreateTenant(ctx, &models.NewTenant{
		FarmName:    "Demo Raspberry Farm",
		OwnerUserId: "demo-owner",
		Plan:        "freemium",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create tenant: %v\n", err)
		os.Exit(1)
	}
	ctx = utils.SetTenantIdInContext(ctx, tenant.ID)
	ctx = utils.SetUserNameInContext(ctx, "seed-demo")

	parcel, err := models.CreateParcel(ctx, &models.NewParcel{
		Name:           "North Field",
		AreaM2:         decimal.NewFromInt(5000),
		PlantedVariety: "Polka",
		PlantingYear:   2022,
		PlantCount:     2400,
		Status:         models.ParcelStatusActive,
	})
	fatalOn(err, "parcel")

	picker, err := models.CreatePicker(ctx, &models.NewPicker{
		FullName:       "Maria Ionescu",
		Phone:          "0740000001",
		EmploymentType: models.EmploymentTypeSeasonal,
		RatePerKg:      decimal.NewFromFloat(2.5),
	})
	fatalOn(err, "picker")

	negotiated := decimal.NewFromFloat(18.5)
	client, err := models.CreateClient(ctx, &models.NewClient{
		Name:                 "Piata Centrala SRL",
		Phone:                "0740000002",
		NegotiatedPricePerKg: &negotiated,
	})
	fatalOn(err, "client")

	today := utils.DateOnly(time.Now())

	_, err = models.CreateHarvest(ctx, &models.NewHarvest{
		Date:       today,
		PickerId:   picker.ID,
		ParcelId:   parcel.ID,
		CrateCount: 40,
		TareKg:     decimal.NewFromFloat(1.2),
	})
	fatalOn(err, "harvest")

	_, err = models.CreateFruitSale(ctx, &models.NewFruitSale{
		Date:       today,
		ClientId:   client.ID,
		QuantityKg: decimal.NewFromFloat(18.8),
		PricePerKg: negotiated,
	})
	fatalOn(err, "fruit sale")

	_, err = models.CreateCuttingSale(ctx, &models.NewCuttingSale{
		Date:           today,
		ClientId:       client.ID,
		SourceParcelId: parcel.ID,
		CuttingVariety: "Polka",
		Quantity:       200,
		UnitPrice:      decimal.NewFromFloat(1.5),
	})
	fatalOn(err, "cutting sale")

	_, err = models.CreateFarmActivity(ctx, &models.NewFarmActivity{
		ApplicationDate:   today.AddDate(0, 0, -3),
		ParcelId:          parcel.ID,
		ActivityType:      models.ActivityTypeFungicideTreatment,
		ProductUsed:       "Signum",
		Dose:              "1.5 kg/ha",
		WaitingPeriodDays: 7,
		Operator:          "Maria Ionescu",
	})
	fatalOn(err, "farm activity")

	_, err = models.CreateInvestment(ctx, &models.NewInvestment{
		Date:      today.AddDate(0, -1, 0),
		ParcelId:  parcel.ID,
		Category:  models.InvestmentCategoryIrrigationSystem,
		Supplier:  "AgroTech SRL",
		AmountLei: decimal.NewFromInt(12000),
	})
	fatalOn(err, "investment")

	_, err = models.CreateExpense(ctx, &models.NewExpense{
		Date:        today,
		Category:    models.ExpenseCategoryFuel,
		Description: "Diesel for tractor",
		AmountLei:   decimal.NewFromFloat(450.75),
		Supplier:    "OMV",
	})
	fatalOn(err, "expense")

	fmt.Printf("seeded demo tenant %s (%s)\n", tenant.FarmName, tenant.ID)
}

func fatalOn(err error, what string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", what, err)
		os.Exit(1)
	}
}
