package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/bar-api/controllers"
	"github.com/yeremiapane/bar-api/events"
	"github.com/yeremiapane/bar-api/models"
	"github.com/yeremiapane/bar-api/repository"
	"gorm.io/gorm"
)

func setupOrderRouter(db *gorm.DB, pub *recordingPublisher) *gin.Engine {
	router := gin.New()
	orderCtrl := controllers.NewOrderController(repository.NewOrderRepository(db), pub)
	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders/:order_id", orderCtrl.GetOrder)
	router.GET("/admin/orders", orderCtrl.GetAllOrders)
	router.PATCH("/admin/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	return router
}

type orderSeed struct {
	customer models.Customer
	chopp    models.Product
	pastel   models.Product
}

func seedOrderData(t *testing.T, db *gorm.DB) orderSeed {
	t.Helper()
	table := seedTable(t, db, "MESA-1")
	return orderSeed{
		customer: seedCustomer(t, db, table.ID),
		chopp:    seedProduct(t, db, "Chopp", "5.00"),
		pastel:   seedProduct(t, db, "Pastel", "3.50"),
	}
}

func (s orderSeed) body(method string) map[string]interface{} {
	return map[string]interface{}{
		"customer_id":    s.customer.ID,
		"payment_method": method,
		"items": []map[string]interface{}{
			{"product_id": s.chopp.ID, "quantity": 2},
			{"product_id": s.pastel.ID, "quantity": 1},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	db := setupTestDB(t)
	seed := seedOrderData(t, db)
	pub := &recordingPublisher{}
	router := setupOrderRouter(db, pub)

	w, env := doJSON(t, router, http.MethodPost, "/orders", seed.body(" pix "))
	require.Equal(t, http.StatusCreated, w.Code)

	var view repository.OrderView
	decodeData(t, env, &view)
	assert.Equal(t, models.StatusPendente, view.Status)
	assert.Equal(t, models.PaymentPix, view.PaymentMethod)
	assert.True(t, decimal.RequireFromString("13.50").Equal(view.Total), view.Total.String())
	require.Len(t, view.Lines, 2)
	assert.Equal(t, "Chopp", view.Lines[0].Product.Name)
	assert.True(t, decimal.RequireFromString("10.00").Equal(view.Lines[0].Subtotal))
	assert.Equal(t, []string{events.EventOrderCreated}, pub.Types())

	w, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/orders/%d", view.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched repository.OrderView
	decodeData(t, env, &fetched)
	assert.Equal(t, view.ID, fetched.ID)
	assert.True(t, fetched.Total.Equal(view.Total))
}

func TestCreateOrderErrors(t *testing.T) {
	db := setupTestDB(t)
	seed := seedOrderData(t, db)
	router := setupOrderRouter(db, &recordingPublisher{})

	bogusMethod := seed.body("BITCOIN")
	w, _ := doJSON(t, router, http.MethodPost, "/orders", bogusMethod)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	noItems := seed.body("PIX")
	noItems["items"] = []map[string]interface{}{}
	w, _ = doJSON(t, router, http.MethodPost, "/orders", noItems)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	zeroQty := seed.body("PIX")
	zeroQty["items"] = []map[string]interface{}{{"product_id": seed.chopp.ID, "quantity": 0}}
	w, _ = doJSON(t, router, http.MethodPost, "/orders", zeroQty)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	unknownProduct := seed.body("PIX")
	unknownProduct["items"] = []map[string]interface{}{{"product_id": 999, "quantity": 1}}
	w, env := doJSON(t, router, http.MethodPost, "/orders", unknownProduct)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, env.Message, "999")

	unknownCustomer := seed.body("PIX")
	unknownCustomer["customer_id"] = 999
	w, _ = doJSON(t, router, http.MethodPost, "/orders", unknownCustomer)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var orders, lines int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderLine{}).Count(&lines).Error)
	assert.Zero(t, orders)
	assert.Zero(t, lines)

	w, _ = doJSON(t, router, http.MethodGet, "/orders/77", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	seed := seedOrderData(t, db)
	pub := &recordingPublisher{}
	router := setupOrderRouter(db, pub)

	_, env := doJSON(t, router, http.MethodPost, "/orders", seed.body("CREDITO"))
	var created repository.OrderView
	decodeData(t, env, &created)
	path := fmt.Sprintf("/admin/orders/%d/status", created.ID)

	w, env := doJSON(t, router, http.MethodPatch, path, map[string]string{"status": "aprovado"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated repository.OrderView
	decodeData(t, env, &updated)
	assert.Equal(t, models.StatusAprovado, updated.Status)

	w, _ = doJSON(t, router, http.MethodPatch, path, map[string]string{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPatch, "/admin/orders/999/status", map[string]string{"status": "RECUSADO"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var stored models.Order
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, models.StatusAprovado, stored.Status)
	assert.Equal(t, []string{events.EventOrderCreated, events.EventOrderStatusUpdated}, pub.Types())

	w, env = doJSON(t, router, http.MethodGet, "/admin/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []repository.OrderView
	decodeData(t, env, &all)
	require.Len(t, all, 1)
	assert.Len(t, all[0].Lines, 2)
}
