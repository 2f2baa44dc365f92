package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/bar-api/models"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// CreateForTable seats a new customer at the table with the given identifier.
func (r *CustomerRepository) CreateForTable(ctx context.Context, identifier string) (*models.Customer, error) {
	var customer *models.Customer
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var table models.Table
		err := tx.Where("identifier = ?", identifier).First(&table).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("table %s", identifier)
		}
		if err != nil {
			return fmt.Errorf("find table %s: %w", identifier, err)
		}

		customer, err = createCustomer(tx, &table)
		return err
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// CreateForTableID is CreateForTable keyed by the numeric table id.
func (r *CustomerRepository) CreateForTableID(ctx context.Context, tableID uint) (*models.Customer, error) {
	var customer *models.Customer
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var table models.Table
		err := tx.First(&table, tableID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("table %d", tableID)
		}
		if err != nil {
			return fmt.Errorf("find table %d: %w", tableID, err)
		}

		customer, err = createCustomer(tx, &table)
		return err
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.DB.WithContext(ctx).Preload("Table").Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func createCustomer(tx *gorm.DB, table *models.Table) (*models.Customer, error) {
	customer := models.Customer{TableID: table.ID}
	if err := tx.Omit("Table").Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("create customer at table %s: %w", table.Identifier, err)
	}
	customer.Table = table
	return &customer, nil
}
