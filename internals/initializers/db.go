package initializers

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Global DB variable to be used across the application
var DB *gorm.DB

func ConnectToDb(dsn string) {
	var err error
	log.Println("Connecting to database at:", dsn)

	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB: ", err)
	}
}
