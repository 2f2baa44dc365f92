package models

import "time"

// Table is a physical table in the venue. QRCode holds the base64 PNG once it
// has been generated for the first time.
type Table struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Identifier string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"identifier"`
	QRCode     *string   `gorm:"column:qr_code;type:text" json:"qr_code,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// HasQRCode reports whether a QR payload has already been stored.
func (t *Table) HasQRCode() bool {
	return t.QRCode != nil && *t.QRCode != ""
}
