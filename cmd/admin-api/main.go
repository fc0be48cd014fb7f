package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"matka-admin/internal/api"
	"matka-admin/internal/api/handler"
	"matka-admin/internal/export"
	"matka-admin/internal/jobs"
	"matka-admin/internal/model"
	"matka-admin/internal/source"
	"matka-admin/internal/store"
	"matka-admin/internal/summary"
	"matka-admin/pkg/router"
	"matka-admin/pkg/utils"
)

// @title Matka Admin API
// @version 1.0
// @description Filtering, segmentation and report exports for the admin dashboard.
// @BasePath /api/v1
func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	addr := envOr("LISTEN_ADDR", ":8080")
	dbPath := envOr("DB_PATH", "admin.db")
	dataFile := envOr("DATA_FILE", "data/users.json")
	exportDir := envOr("EXPORT_DIR", "exports")
	locale := envOr("REPORT_LOCALE", "en")
	currency := envOr("CURRENCY_SYMBOL", "₹")
	retentionDays := envIntOr("EXPORT_RETENTION_DAYS", 30)

	tz := envOr("REPORT_TZ", "Asia/Kolkata")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		fmt.Printf("⚠️ Unknown REPORT_TZ %q, falling back to UTC\n", tz)
		loc = time.UTC
	}

	if err := store.InitDB(dbPath); err != nil {
		panic(err)
	}

	users, err := source.LoadFile(dataFile)
	if err != nil {
		fmt.Printf("⚠️ Could not load %s: %v (starting with empty dataset)\n", dataFile, err)
		users = []model.Record{}
	}
	fmt.Printf("✅ Loaded %d user records from %s\n", len(users), dataFile)

	output := utils.NewOutputManager(exportDir)
	if err := output.EnsureOutputDirExists(); err != nil {
		panic(err)
	}

	if retentionDays > 0 {
		sweeper := jobs.StartRetentionSweeper(exportDir, retentionDays)
		defer sweeper.Stop()
	}

	h := handler.New(
		users,
		loadDashboardSummary(),
		summary.NewFormatter(locale, currency),
		export.NewManager(output),
		func() time.Time { return time.Now().In(loc) },
	)

	r := router.New()
	api.RegisterRoutes(r, h)
	r.Start(addr)
}

// loadDashboardSummary reads the pre-aggregated totals file if one is
// configured. The dashboard endpoint serves zeroes otherwise.
func loadDashboardSummary() model.DashboardSummary {
	path := os.Getenv("SUMMARY_FILE")
	if path == "" {
		return model.DashboardSummary{}
	}
	s, err := source.LoadSummary(path)
	if err != nil {
		fmt.Printf("⚠️ Could not load %s: %v\n", path, err)
		return model.DashboardSummary{}
	}
	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
