package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   OrderStatus
		wantOK bool
	}{
		{"PENDENTE", StatusPendente, true},
		{"aprovado", StatusAprovado, true},
		{"  Recusado ", StatusRecusado, true},
		{"bogus", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseOrderStatus(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePaymentMethod(t *testing.T) {
	got, ok := ParsePaymentMethod("pix")
	assert.True(t, ok)
	assert.Equal(t, PaymentPix, got)

	got, ok = ParsePaymentMethod("Credito")
	assert.True(t, ok)
	assert.Equal(t, PaymentCredito, got)

	_, ok = ParsePaymentMethod("dinheiro")
	assert.False(t, ok)
}

func TestOrderTotal(t *testing.T) {
	order := Order{Lines: []OrderLine{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("3.50")},
	}}
	assert.Equal(t, "13.50", order.Total().StringFixed(2))

	empty := Order{}
	assert.True(t, empty.Total().IsZero())
}

func TestTableHasQRCode(t *testing.T) {
	table := Table{Identifier: "MESA-1"}
	assert.False(t, table.HasQRCode())

	blank := ""
	table.QRCode = &blank
	assert.False(t, table.HasQRCode())

	payload := "iVBORw0KGgo="
	table.QRCode = &payload
	assert.True(t, table.HasQRCode())
}
