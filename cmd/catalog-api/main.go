package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"

	_ "github.com/Fi1osof/hotels-booking-demo/docs"
	"github.com/Fi1osof/hotels-booking-demo/internal/api"
	"github.com/Fi1osof/hotels-booking-demo/internal/api/handler"
	"github.com/Fi1osof/hotels-booking-demo/internal/store"
	"github.com/Fi1osof/hotels-booking-demo/pkg/router"
	"github.com/Fi1osof/hotels-booking-demo/pkg/utils"
)

// @title Hotels Booking Demo API
// @version 1.0
// @description Catalog browsing API: hotel collection, statistics, transforms and listing sessions.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	viper.SetEnvPrefix("catalog")
	viper.AutomaticEnv()
	viper.SetDefault("addr", ":8080")
	viper.SetDefault("db", "catalog.db")
	viper.SetDefault("source", "")
	viper.SetDefault("search_debounce", "300ms")

	// Init DB
	if err := store.InitDB(viper.GetString("db")); err != nil {
		panic(err)
	}
	defer store.CloseDB()

	// Fill the catalog: external source when configured, embedded seed otherwise
	if source := viper.GetString("source"); source != "" {
		imported, err := store.ImportHotels(source)
		if err != nil {
			if errors.Is(err, store.ErrSourceUnavailable) {
				log.Fatalf("❌ Record source unavailable: %v", err)
			}
			log.Fatalf("❌ Catalog import failed: %v", err)
		}
		fmt.Printf("📦 Catalog ready: %d records imported\n", imported)
	} else {
		seeded, err := store.SeedHotels()
		if err != nil {
			log.Fatalf("❌ Catalog seeding failed: %v", err)
		}
		if seeded > 0 {
			fmt.Printf("📦 Catalog seeded with %d records\n", seeded)
		}
	}

	handler.SearchDebounce = utils.ParseDuration(
		viper.GetString("search_debounce"), handler.SearchDebounce)

	// Create router and register API routes
	r := router.New()
	api.RegisterRoutes(r)

	// Start server
	log.Fatal(r.Start(viper.GetString("addr")))
}
