package database

import (
	"github.com/yeremiapane/bar-api/models"
	"gorm.io/gorm"
)

// Models lists the schema in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Table{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderLine{},
	}
}

// Migrate creates or updates the tables, foreign keys and the unique index
// on tables.identifier.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
