package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/bar-api/models"
)

func TestCreateCustomerForTable(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	table := seedTable(t, db, "MESA-1")

	customer, err := repo.CreateForTable(context.Background(), "MESA-1")
	require.NoError(t, err)

	assert.NotZero(t, customer.ID)
	assert.Equal(t, table.ID, customer.TableID)
	assert.False(t, customer.CreatedAt.IsZero())
	require.NotNil(t, customer.Table)
	assert.Equal(t, "MESA-1", customer.Table.Identifier)
}

func TestCreateCustomerForTableID(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	table := seedTable(t, db, "MESA-2")

	customer, err := repo.CreateForTableID(context.Background(), table.ID)
	require.NoError(t, err)
	assert.Equal(t, table.ID, customer.TableID)
}

func TestCreateCustomerMissingTable(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	_, err := repo.CreateForTable(ctx, "MESA-9")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.CreateForTableID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Zero(t, countRows(t, db, &models.Customer{}))
}

func TestListCustomers(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()
	seedTable(t, db, "MESA-1")

	_, err := repo.CreateForTable(ctx, "MESA-1")
	require.NoError(t, err)
	_, err = repo.CreateForTable(ctx, "MESA-1")
	require.NoError(t, err)

	customers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Less(t, customers[0].ID, customers[1].ID)
	assert.Equal(t, "MESA-1", customers[1].Table.Identifier)
}
