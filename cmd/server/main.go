package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"skydesk/aerodrome/internal/common"
	"skydesk/aerodrome/internal/config"
	"skydesk/aerodrome/internal/db"
	"skydesk/aerodrome/internal/logging"
	"skydesk/aerodrome/internal/routes"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Aerodrome starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	dsn := cfg.PostgresDSN()

	// Plain connection for health pings
	if err := db.InitPostgres(dsn); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// ORM connection, migrates the airports table
	if _, err := db.InitPostgresORM(dsn); err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	// Seed the store from the bundled dataset when empty
	loader := common.NewAirportLoaderService(db.PgDB)
	if err := loader.AutoLoad(context.Background(), cfg.AirportsDataFile); err != nil {
		logging.Warn("Startup airport load failed", "error", err.Error())
	}

	upSince := time.Now()
	router := routes.RegisterRoutes(upSince)

	// Metrics endpoint lives outside the chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	logging.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.AppEnv,
	)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, mux))
}
