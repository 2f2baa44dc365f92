package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/bar-api/repository"
	"github.com/yeremiapane/bar-api/utils"
)

type ProductController struct {
	Products *repository.ProductRepository
}

func NewProductController(products *repository.ProductRepository) *ProductController {
	return &ProductController{Products: products}
}

func (pc *ProductController) GetAllProducts(c *gin.Context) {
	products, err := pc.Products.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, "list products", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}
	product, err := pc.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, "get product", err)
		return
	}
	if product == nil {
		utils.RespondMessage(c, http.StatusNotFound, "product not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

// CreateBatch -> registers several products in one commit
func (pc *ProductController) CreateBatch(c *gin.Context) {
	var req struct {
		Products []struct {
			Name  string          `json:"name"`
			Price decimal.Decimal `json:"price"`
		} `json:"products" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	inputs := make([]repository.ProductInput, 0, len(req.Products))
	for _, p := range req.Products {
		inputs = append(inputs, repository.ProductInput{Name: p.Name, Price: p.Price})
	}

	products, err := pc.Products.CreateBatch(c.Request.Context(), inputs)
	if err != nil {
		respondRepoError(c, "create products", err)
		return
	}

	utils.InfoLogger.Printf("%d products created", len(products))
	utils.RespondJSON(c, http.StatusCreated, fmt.Sprintf("%d products created", len(products)), products)
}
