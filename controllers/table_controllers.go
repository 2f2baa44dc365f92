package controllers

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-api/events"
	"github.com/yeremiapane/bar-api/repository"
	"github.com/yeremiapane/bar-api/utils"
)

type TableController struct {
	Tables    *repository.TableRepository
	Publisher events.Publisher
}

func NewTableController(tables *repository.TableRepository, publisher events.Publisher) *TableController {
	return &TableController{Tables: tables, Publisher: publisher}
}

// CreateBatch -> creates count tables numbered after the last one under prefix
func (tc *TableController) CreateBatch(c *gin.Context) {
	var req struct {
		Count  int    `json:"count"`
		Prefix string `json:"prefix"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tables, err := tc.Tables.CreateBatch(c.Request.Context(), req.Count, req.Prefix)
	if err != nil {
		respondRepoError(c, "create tables", err)
		return
	}

	publish(c, tc.Publisher, events.EventTablesCreated, tables)
	utils.InfoLogger.Printf("%d tables created (%s .. %s)", len(tables), tables[0].Identifier, tables[len(tables)-1].Identifier)
	utils.RespondJSON(c, http.StatusCreated, fmt.Sprintf("%d tables created", len(tables)), tables)
}

func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Tables.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, "list tables", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

func (tc *TableController) GetTable(c *gin.Context) {
	identifier := c.Param("identifier")
	table, err := tc.Tables.FindByIdentifier(c.Request.Context(), identifier)
	if err != nil {
		respondRepoError(c, "find table", err)
		return
	}
	if table == nil {
		utils.RespondMessage(c, http.StatusNotFound, "table not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// GetQRCode -> base64 PNG of the table's welcome link
func (tc *TableController) GetQRCode(c *gin.Context) {
	identifier := c.Param("identifier")
	payload, err := tc.Tables.GetOrGenerateQRCode(c.Request.Context(), identifier)
	if err != nil {
		respondRepoError(c, "get qrcode", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "QR code", gin.H{
		"identifier": identifier,
		"qr_code":    payload,
	})
}

// GetQRCodeImage -> the same code served as image/png
func (tc *TableController) GetQRCodeImage(c *gin.Context) {
	identifier := c.Param("identifier")
	payload, err := tc.Tables.GetOrGenerateQRCode(c.Request.Context(), identifier)
	if err != nil {
		respondRepoError(c, "get qrcode image", err)
		return
	}
	png, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		respondRepoError(c, "decode qrcode", fmt.Errorf("stored qrcode of %s: %w", identifier, err))
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}
