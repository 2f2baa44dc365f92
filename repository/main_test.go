package repository

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/bar-api/database"
	"github.com/yeremiapane/bar-api/models"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database for one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

// countingEncoder records how often a payload was rendered.
type countingEncoder struct {
	mu    sync.Mutex
	calls int
}

func (e *countingEncoder) Encode(identifier string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	return "qr:" + identifier, nil
}

func (e *countingEncoder) Calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

func seedTable(t *testing.T, db *gorm.DB, identifier string) models.Table {
	t.Helper()
	table := models.Table{Identifier: identifier}
	require.NoError(t, db.Create(&table).Error)
	return table
}

func seedCustomer(t *testing.T, db *gorm.DB, tableID uint) models.Customer {
	t.Helper()
	customer := models.Customer{TableID: tableID}
	require.NoError(t, db.Omit("Table").Create(&customer).Error)
	return customer
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: decimal.RequireFromString(price)}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
