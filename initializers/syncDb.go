package initializers

import (
	"github.com/Kariqs/amana-storefront/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.LocalEntry{}); err != nil {
		logrus.Errorf("SyncDatabase: failed to migrate err = %v", err)
		return err
	}
	logrus.Info("Database synced successfully.")
	return nil
}
