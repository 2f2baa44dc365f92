package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/bar-api/models"
	"gorm.io/gorm"
)

type OrderItemInput struct {
	ProductID uint
	Quantity  int
}

type OrderInput struct {
	CustomerID    uint
	PaymentMethod string
	Items         []OrderItemInput
}

// ProductSnapshot is the product as it was when the line was ordered.
type ProductSnapshot struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type OrderLineView struct {
	Product   ProductSnapshot `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderView is an order with its lines and product data already joined.
type OrderView struct {
	ID            uint                 `json:"id"`
	CustomerID    uint                 `json:"customer_id"`
	Status        models.OrderStatus   `json:"status"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	CreatedAt     time.Time            `json:"created_at"`
	Lines         []OrderLineView      `json:"lines"`
	Total         decimal.Decimal      `json:"total"`
}

func NewOrderView(order *models.Order) OrderView {
	view := OrderView{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt,
		Lines:         make([]OrderLineView, 0, len(order.Lines)),
		Total:         order.Total(),
	}
	for _, line := range order.Lines {
		snapshot := ProductSnapshot{ID: line.ProductID, Price: line.UnitPrice}
		if line.Product != nil {
			snapshot.Name = line.Product.Name
		}
		view.Lines = append(view.Lines, OrderLineView{
			Product:   snapshot,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal(),
		})
	}
	return view
}

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create places a PENDENTE order and its lines atomically. Nothing is written
// unless the customer and every product exist.
func (r *OrderRepository) Create(ctx context.Context, in OrderInput) (*models.Order, error) {
	method, ok := models.ParsePaymentMethod(in.PaymentMethod)
	if !ok {
		return nil, invalid("payment method %q must be one of %v", in.PaymentMethod, models.PaymentMethods)
	}
	if len(in.Items) == 0 {
		return nil, invalid("order must have at least one item")
	}
	ids := make([]uint, 0, len(in.Items))
	for i, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, invalid("item %d: quantity must be greater than zero", i)
		}
		ids = append(ids, item.ProductID)
	}

	var order models.Order
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		err := tx.First(&customer, in.CustomerID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("customer %d", in.CustomerID)
		}
		if err != nil {
			return fmt.Errorf("find customer %d: %w", in.CustomerID, err)
		}

		var products []models.Product
		if err := tx.Where("id IN ?", ids).Find(&products).Error; err != nil {
			return fmt.Errorf("load products: %w", err)
		}
		byID := make(map[uint]*models.Product, len(products))
		for i := range products {
			byID[products[i].ID] = &products[i]
		}
		for _, item := range in.Items {
			if _, ok := byID[item.ProductID]; !ok {
				return notFound("product %d", item.ProductID)
			}
		}

		order = models.Order{
			CustomerID:    customer.ID,
			PaymentMethod: method,
			Status:        models.StatusPendente,
			Lines:         make([]models.OrderLine, 0, len(in.Items)),
		}
		for _, item := range in.Items {
			order.Lines = append(order.Lines, models.OrderLine{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: byID[item.ProductID].Price,
			})
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for i := range order.Lines {
			order.Lines[i].Product = byID[order.Lines[i].ProductID]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns every order with lines and products, using one query per
// relation.
func (r *OrderRepository) List(ctx context.Context) ([]OrderView, error) {
	var orders []models.Order
	if err := r.withLines(r.DB.WithContext(ctx)).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, NewOrderView(&orders[i]))
	}
	return views, nil
}

func (r *OrderRepository) Get(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.withLines(r.DB.WithContext(ctx)).First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("order %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return &order, nil
}

// UpdateStatus validates status before touching the order.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	st, ok := models.ParseOrderStatus(status)
	if !ok {
		return nil, invalid("status %q must be one of %v", status, models.OrderStatuses)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.First(&order, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("order %d", id)
		}
		if err != nil {
			return fmt.Errorf("find order %d: %w", id, err)
		}
		if err := tx.Model(&order).Update("status", st).Error; err != nil {
			return fmt.Errorf("update order %d status: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *OrderRepository) withLines(db *gorm.DB) *gorm.DB {
	return db.Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_lines.id")
	}).Preload("Lines.Product")
}
