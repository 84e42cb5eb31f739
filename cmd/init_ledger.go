package main

import (
	"log"
	"os"

	"sacco-backend/database"
	"sacco-backend/internal/ledger"
	"sacco-backend/internal/storage"
)

// Standalone initialisation tool: creates the database schema, seeds the
// ledger when empty and prints a status summary.
func main() {
	log.Println("Initializing SACCO ledger...")

	dbPath := os.Getenv("DATABASE_URL")
	if dbPath == "" {
		dbPath = "sacco.db"
	}
	log.Printf("Database: %s", dbPath)

	db, err := database.Initialize(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	gateway := storage.NewSQLiteGateway(db)
	seed := storage.SeedSnapshot(os.Getenv("SEED_DATA_PATH"))
	store := ledger.Open(gateway, seed, "")

	analytics := store.DashboardAnalytics()
	settings := store.Settings()

	log.Printf("Cooperative: %s (v%s)", settings.SaccoName, settings.SystemVersion)
	log.Printf("Members: %d (%d active)", analytics.TotalMembers, analytics.ActiveMembers)
	log.Printf("Loans: %d active, %d completed", analytics.ActiveLoans, analytics.CompletedLoans)
	log.Printf("Total disbursed: %s", ledger.FormatCurrency(analytics.TotalDisbursed, settings.Currency))

	log.Println("Ledger initialization completed successfully")
}
