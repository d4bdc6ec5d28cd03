// migrate runs schema migrations against the configured database and exits.
//
// Usage:
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/migrate
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/models"
)

func main() {
	godotenv.Load(".env")

	config.ConnectDatabaseWithRetry()
	if config.GetDB() == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	models.MigrateTable()
	fmt.Println("migrations complete")
}
