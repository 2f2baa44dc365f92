package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerTotals(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	idle := seedCustomer(t, f.db, f.customer.TableID)

	order, err := f.repo.Create(ctx, f.input("PIX",
		OrderItemInput{ProductID: f.productA.ID, Quantity: 2},
		OrderItemInput{ProductID: f.productB.ID, Quantity: 1},
	))
	require.NoError(t, err)
	_, err = f.repo.UpdateStatus(ctx, order.ID, "RECUSADO")
	require.NoError(t, err)
	// Pending orders count as well.
	_, err = f.repo.Create(ctx, f.input("DEBITO", OrderItemInput{ProductID: f.productB.ID, Quantity: 2}))
	require.NoError(t, err)

	rows, err := NewReportRepository(f.db).CustomerTotals(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, f.customer.ID, rows[0].CustomerID)
	assert.Equal(t, f.customer.TableID, rows[0].TableID)
	assert.Equal(t, "MESA-1", rows[0].TableIdentifier)
	assert.Equal(t, "20.50", rows[0].Total.StringFixed(2))

	assert.Equal(t, idle.ID, rows[1].CustomerID)
	assert.True(t, rows[1].Total.IsZero())
}

func TestCustomerTotalsSingleOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.repo.Create(ctx, f.input("PIX",
		OrderItemInput{ProductID: f.productA.ID, Quantity: 2},
		OrderItemInput{ProductID: f.productB.ID, Quantity: 1},
	))
	require.NoError(t, err)

	rows, err := NewReportRepository(f.db).CustomerTotals(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "13.50", rows[0].Total.StringFixed(2))
}

func TestCustomerTotalsEmptyStore(t *testing.T) {
	db := newTestDB(t)

	rows, err := NewReportRepository(db).CustomerTotals(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
