package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yeremiapane/bar-api/models"
	"gorm.io/gorm"
)

// QRCodeEncoder renders the welcome QR payload for a table identifier.
type QRCodeEncoder interface {
	Encode(identifier string) (string, error)
}

type TableRepository struct {
	DB *gorm.DB
	QR QRCodeEncoder
}

func NewTableRepository(db *gorm.DB, qr QRCodeEncoder) *TableRepository {
	return &TableRepository{DB: db, QR: qr}
}

// CreateBatch creates count tables named {prefix}-{last+1}..{prefix}-{last+count}
// in a single transaction. A concurrent writer that took one of the
// identifiers first makes the whole batch fail with ErrConflict.
func (r *TableRepository) CreateBatch(ctx context.Context, count int, prefix string) ([]models.Table, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultTablePrefix
	}
	if count < 1 || count > MaxTableBatch {
		return nil, invalid("count must be between 1 and %d, got %d", MaxTableBatch, count)
	}
	if err := validatePrefix(prefix); err != nil {
		return nil, err
	}

	var tables []models.Table
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var identifiers []string
		if err := tx.Model(&models.Table{}).
			Where("identifier LIKE ?", prefix+identifierSeparator+"%").
			Order("identifier DESC").
			Pluck("identifier", &identifiers).Error; err != nil {
			return fmt.Errorf("lookup identifiers for %s: %w", prefix, err)
		}

		last := lastSuffix(prefix, identifiers)
		tables = make([]models.Table, 0, count)
		for i := 1; i <= count; i++ {
			tables = append(tables, models.Table{Identifier: FormatIdentifier(prefix, last+i)})
		}

		if err := tx.Create(&tables).Error; err != nil {
			if isDuplicateKey(err) {
				return fmt.Errorf("identifiers %s..%s already taken: %w",
					tables[0].Identifier, tables[len(tables)-1].Identifier, ErrConflict)
			}
			return fmt.Errorf("create tables: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *TableRepository) List(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := r.DB.WithContext(ctx).Find(&tables).Error; err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

// FindByIdentifier returns (nil, nil) when no table has the identifier.
func (r *TableRepository) FindByIdentifier(ctx context.Context, identifier string) (*models.Table, error) {
	var table models.Table
	err := r.DB.WithContext(ctx).Where("identifier = ?", identifier).First(&table).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find table %s: %w", identifier, err)
	}
	return &table, nil
}

// GetOrGenerateQRCode returns the stored QR payload of the table, generating
// and persisting it on the first call only.
func (r *TableRepository) GetOrGenerateQRCode(ctx context.Context, identifier string) (string, error) {
	table, err := r.FindByIdentifier(ctx, identifier)
	if err != nil {
		return "", err
	}
	if table == nil {
		return "", notFound("table %s", identifier)
	}
	if table.HasQRCode() {
		return *table.QRCode, nil
	}

	payload, err := r.QR.Encode(table.Identifier)
	if err != nil {
		return "", fmt.Errorf("encode qrcode for %s: %w", table.Identifier, err)
	}

	res := r.DB.WithContext(ctx).Model(&models.Table{}).
		Where("id = ? AND (qr_code IS NULL OR qr_code = '')", table.ID).
		Update("qr_code", payload)
	if res.Error != nil {
		return "", fmt.Errorf("store qrcode for %s: %w", table.Identifier, res.Error)
	}
	if res.RowsAffected == 1 {
		return payload, nil
	}

	// Another request stored a payload in the meantime; that one wins.
	stored, err := r.FindByIdentifier(ctx, identifier)
	if err != nil {
		return "", err
	}
	if stored == nil || !stored.HasQRCode() {
		return "", notFound("table %s", identifier)
	}
	return *stored.QRCode, nil
}
