package main

import (
	"log"

	"github.com/Typical-techno/investigation-backend/internals/config"
	"github.com/Typical-techno/investigation-backend/internals/initializers"
	"github.com/Typical-techno/investigation-backend/internals/routes"
)

var cfg *config.Config

func init() {
	initializers.LoadEnvVariables()

	cfg = config.Load()

	initializers.ConnectToDb(cfg.DBURL)
	initializers.SyncDatabase()

	initializers.StartOTPCleanup(cfg.CleanupInterval)
}

func main() {
	r := routes.SetupRouter(initializers.DB, cfg)

	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
