package models

import (
	"time"
)

// Customer is one party served at a table, created by the welcome flow.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TableID   uint      `gorm:"not null;index" json:"table_id"`
	Table     *Table    `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"table,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
