package pdf

import (
	"io"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shreeramenterprise/sems_backend/models/reports"
)

// RenderSummaryReport writes the business summary as a printable table.
func RenderSummaryReport(w io.Writer, report *reports.SummaryReport, filter reports.ReportFilter) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Business Summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, 15)
	pdf.CellFormat(0, 8, "Business Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetX(marginLeft)
	period := "All time"
	if filter.Month != "" {
		if t, err := time.Parse("2006-01", filter.Month); err == nil {
			period = t.Format("January 2006")
		}
	}
	pdf.CellFormat(0, 5, "Period: "+period, "", 1, "L", false, 0, "")

	kpis := []struct {
		label string
		value string
	}{
		{"Total Revenue", money(report.TotalRevenue)},
		{"Total Payments", money(report.TotalPayments)},
		{"Pending Amount", money(report.PendingAmount)},
		{"Order Count", strconv.Itoa(report.OrderCount)},
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	for _, kpi := range kpis {
		pdf.SetX(marginLeft)
		pdf.CellFormat(60, 7, kpi.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, kpi.value, "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetX(marginLeft)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Material Breakdown", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 245)
	pdf.SetX(marginLeft)
	pdf.CellFormat(60, 7, "Material", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 7, "Orders", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, "Weight", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, stat := range report.MaterialStats {
		pdf.SetX(marginLeft)
		pdf.CellFormat(60, 6, stat.Material, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, strconv.Itoa(stat.OrderCount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, stat.TotalWeight.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, stat.TotalAmount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	if len(report.TopClients) > 0 {
		pdf.Ln(6)
		pdf.SetX(marginLeft)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Top Clients by Outstanding Balance", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetX(marginLeft)
		pdf.CellFormat(80, 7, "Client", "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 7, "City", "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 7, "Balance", "1", 1, "R", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, tc := range report.TopClients {
			pdf.SetX(marginLeft)
			pdf.CellFormat(80, 6, tc.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, tc.City, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, tc.CurrentBalance.StringFixed(2), "1", 1, "R", false, 0, "")
		}
	}

	return pdf.Output(w)
}
