package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-api/repository"
	"github.com/yeremiapane/bar-api/utils"
)

type ReportController struct {
	Reports *repository.ReportRepository
}

func NewReportController(reports *repository.ReportRepository) *ReportController {
	return &ReportController{Reports: reports}
}

type customerTotalRow struct {
	repository.CustomerTotal
	FormattedTotal string `json:"formatted_total"`
}

// CustomerTotals -> spend per customer, all statuses included
func (rc *ReportController) CustomerTotals(c *gin.Context) {
	totals, err := rc.Reports.CustomerTotals(c.Request.Context())
	if err != nil {
		respondRepoError(c, "customer totals", err)
		return
	}

	rows := make([]customerTotalRow, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, customerTotalRow{CustomerTotal: t, FormattedTotal: utils.FormatCurrencyBRL(t.Total)})
	}
	utils.RespondJSON(c, http.StatusOK, "Customer totals", rows)
}
