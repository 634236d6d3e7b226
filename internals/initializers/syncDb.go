package initializers

import (
	"log"

	"github.com/Typical-techno/investigation-backend/internals/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.OneTimeCode{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
}
