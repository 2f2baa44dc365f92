package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-api/events"
	"github.com/yeremiapane/bar-api/models"
	"github.com/yeremiapane/bar-api/repository"
	"github.com/yeremiapane/bar-api/utils"
)

type CustomerController struct {
	Customers *repository.CustomerRepository
	Products  *repository.ProductRepository
	Publisher events.Publisher
}

func NewCustomerController(customers *repository.CustomerRepository, products *repository.ProductRepository, publisher events.Publisher) *CustomerController {
	return &CustomerController{Customers: customers, Products: products, Publisher: publisher}
}

type welcomeResponse struct {
	TableIdentifier string           `json:"table_identifier"`
	CustomerID      uint             `json:"customer_id"`
	Products        []models.Product `json:"products"`
}

// Welcome -> landing of a QR scan: seats a customer and returns the menu
func (cc *CustomerController) Welcome(c *gin.Context) {
	identifier := c.Param("identifier")

	products, err := cc.Products.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, "list products", err)
		return
	}
	if len(products) == 0 {
		utils.RespondMessage(c, http.StatusNotFound, "no products available")
		return
	}

	customer, err := cc.Customers.CreateForTable(c.Request.Context(), identifier)
	if err != nil {
		respondRepoError(c, "welcome customer", err)
		return
	}

	publish(c, cc.Publisher, events.EventCustomerWelcomed, customer)
	utils.InfoLogger.Printf("Customer %d seated at %s", customer.ID, identifier)
	utils.RespondJSON(c, http.StatusOK, "Welcome", welcomeResponse{
		TableIdentifier: identifier,
		CustomerID:      customer.ID,
		Products:        products,
	})
}

// CreateCustomer -> seats a customer by table id or identifier
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		TableID         *uint  `json:"table_id"`
		TableIdentifier string `json:"table_identifier"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var (
		customer *models.Customer
		err      error
	)
	switch identifier := strings.TrimSpace(req.TableIdentifier); {
	case req.TableID != nil:
		customer, err = cc.Customers.CreateForTableID(c.Request.Context(), *req.TableID)
	case identifier != "":
		customer, err = cc.Customers.CreateForTable(c.Request.Context(), identifier)
	default:
		utils.RespondMessage(c, http.StatusBadRequest, "table_id or table_identifier is required")
		return
	}
	if err != nil {
		respondRepoError(c, "create customer", err)
		return
	}

	publish(c, cc.Publisher, events.EventCustomerWelcomed, customer)
	utils.InfoLogger.Printf("New customer created (ID=%d) at TableID=%d", customer.ID, customer.TableID)
	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Customers.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, "list customers", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}
