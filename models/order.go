package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPendente OrderStatus = "PENDENTE"
	StatusAprovado OrderStatus = "APROVADO"
	StatusRecusado OrderStatus = "RECUSADO"
)

// OrderStatuses lists every accepted status in lifecycle order.
var OrderStatuses = []OrderStatus{StatusPendente, StatusAprovado, StatusRecusado}

// ParseOrderStatus trims and upper-cases s before matching it against the
// known statuses.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	normalized := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range OrderStatuses {
		if st == normalized {
			return st, true
		}
	}
	return "", false
}

type PaymentMethod string

const (
	PaymentPix     PaymentMethod = "PIX"
	PaymentDebito  PaymentMethod = "DEBITO"
	PaymentCredito PaymentMethod = "CREDITO"
)

var PaymentMethods = []PaymentMethod{PaymentPix, PaymentDebito, PaymentCredito}

// ParsePaymentMethod normalizes s the same way ParseOrderStatus does.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	normalized := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	for _, pm := range PaymentMethods {
		if pm == normalized {
			return pm, true
		}
	}
	return "", false
}

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CustomerID    uint          `gorm:"not null;index" json:"customer_id"`
	Customer      *Customer     `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(10);not null" json:"payment_method"`
	Status        OrderStatus   `gorm:"type:varchar(10);not null;default:'PENDENTE'" json:"status"`
	CreatedAt     time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null" json:"updated_at"`
	Lines         []OrderLine   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"lines"`
}

// Total sums quantity x unit price over the loaded lines.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
