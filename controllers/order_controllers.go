package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-api/events"
	"github.com/yeremiapane/bar-api/repository"
	"github.com/yeremiapane/bar-api/utils"
)

type OrderController struct {
	Orders    *repository.OrderRepository
	Publisher events.Publisher
}

func NewOrderController(orders *repository.OrderRepository, publisher events.Publisher) *OrderController {
	return &OrderController{Orders: orders, Publisher: publisher}
}

type orderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type createOrderRequest struct {
	CustomerID    uint               `json:"customer_id" binding:"required"`
	PaymentMethod string             `json:"payment_method"`
	Items         []orderItemRequest `json:"items" binding:"dive"`
}

// CreateOrder -> places an order for a seated customer
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	in := repository.OrderInput{
		CustomerID:    req.CustomerID,
		PaymentMethod: req.PaymentMethod,
		Items:         make([]repository.OrderItemInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, repository.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := oc.Orders.Create(c.Request.Context(), in)
	if err != nil {
		respondRepoError(c, "create order", err)
		return
	}

	view := repository.NewOrderView(order)
	publish(c, oc.Publisher, events.EventOrderCreated, view)
	utils.InfoLogger.Printf("Order %d created for customer %d (total=%s)", view.ID, view.CustomerID, view.Total.StringFixed(2))
	utils.RespondJSON(c, http.StatusCreated, "Order created", view)
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, "list orders", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}
	order, err := oc.Orders.Get(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, "get order", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", repository.NewOrderView(order))
}

// UpdateOrderStatus -> staff approves or refuses an order
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		respondRepoError(c, "update order status", err)
		return
	}

	view := repository.NewOrderView(order)
	publish(c, oc.Publisher, events.EventOrderStatusUpdated, view)
	utils.InfoLogger.Printf("Order %d status changed to %s", view.ID, view.Status)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", view)
}
