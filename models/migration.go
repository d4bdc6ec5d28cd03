package models

import (
	"log"

	"github.com/zmeurelos/farm_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Tenant{},
		&Parcel{}, &Picker{}, &Client{},
		&Harvest{}, &FruitSale{}, &CuttingSale{},
		&FarmActivity{}, &Investment{}, &Expense{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
