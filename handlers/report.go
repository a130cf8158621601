package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shreeramenterprise/sems_backend/models/reports"
	"github.com/shreeramenterprise/sems_backend/pdf"
)

func reportFilterFromQuery(c *gin.Context) reports.ReportFilter {
	clientId, _ := strconv.Atoi(c.Query("client_id"))
	return reports.ReportFilter{
		Month:    c.Query("month"),
		ClientId: clientId,
		Material: c.Query("material"),
	}
}

func SummaryReportHandler(c *gin.Context) {
	report, err := reports.GetSummaryReport(c.Request.Context(), reportFilterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, report)
}

// ExportReportHandler streams the summary as a downloadable file,
// xlsx by default or pdf with ?format=pdf.
func ExportReportHandler(c *gin.Context) {
	filter := reportFilterFromQuery(c)
	report, err := reports.GetSummaryReport(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	stamp := time.Now().Format("2006-01-02")
	switch c.DefaultQuery("format", "xlsx") {
	case "pdf":
		var buf bytes.Buffer
		if err := pdf.RenderSummaryReport(&buf, report, filter); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render report"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="summary-`+stamp+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	case "xlsx":
		workbook, err := reports.BuildSummaryWorkbook(report, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build workbook"})
			return
		}
		var buf bytes.Buffer
		if err := workbook.Write(&buf); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not write workbook"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="summary-`+stamp+`.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format"})
	}
}
