package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/bar-api/models"
	"gorm.io/gorm"
)

const maxProductName = 100

type ProductInput struct {
	Name  string
	Price decimal.Decimal
}

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// CreateBatch inserts every product in one commit and returns them in input
// order with their ids.
func (r *ProductRepository) CreateBatch(ctx context.Context, inputs []ProductInput) ([]models.Product, error) {
	if len(inputs) == 0 {
		return nil, invalid("at least one product is required")
	}

	products := make([]models.Product, 0, len(inputs))
	for i, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, invalid("product %d: name is required", i)
		}
		if utf8.RuneCountInString(name) > maxProductName {
			return nil, invalid("product %d: name longer than %d characters", i, maxProductName)
		}
		if !in.Price.IsPositive() {
			return nil, invalid("product %d: price must be greater than zero", i)
		}
		if !in.Price.Equal(in.Price.Round(2)) {
			return nil, invalid("product %d: price has more than two decimal places", i)
		}
		products = append(products, models.Product{Name: name, Price: in.Price})
	}

	if err := r.DB.WithContext(ctx).Create(&products).Error; err != nil {
		return nil, fmt.Errorf("create products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetByID returns (nil, nil) when the product does not exist.
func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &product, nil
}
