package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/nubereats/backend/internal/models"
)

// RunMigrations brings the schema up to date with the models
func RunMigrations(db *gorm.DB, log *zap.Logger) error {
	log.Info("running GORM auto-migration", zap.String("dialect", db.Dialector.Name()))
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
