// infrastructure/persistence/database/migration.go
package database

import (
	"log"

	"github.com/vinachat/chat-api/domain/models"
	"gorm.io/gorm"
)

// RunMigration migrates all models. Parent tables go first so foreign keys
// resolve.
func RunMigration(db *gorm.DB) error {
	log.Println("Running auto migration...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Friendship{},
		&models.Group{},
		&models.GroupMember{},
		&models.Message{},
		&models.TokenBlacklist{},
	)
	if err != nil {
		log.Printf("Auto migration failed: %v", err)
		return err
	}

	log.Println("Auto migration complete")
	return nil
}
