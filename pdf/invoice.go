// Package pdf renders the printable documents: the tax invoice and the
// summary report table.
package pdf

import (
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/shreeramenterprise/sems_backend/models"
)

const (
	pageWidth  = 210.0
	marginLeft = 15.0
)

func money(d decimal.Decimal) string {
	return "Rs. " + d.StringFixed(2)
}

// RenderInvoice writes the fixed-layout tax invoice for one billing month.
func RenderInvoice(w io.Writer, invoice *models.Invoice, client *models.Client, settings *models.CompanySettings) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+invoice.InvoiceNumber, false)
	pdf.AddPage()

	// header band
	pdf.SetFillColor(79, 70, 229)
	pdf.Rect(0, 0, pageWidth, 32, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(marginLeft, 8)
	pdf.CellFormat(0, 8, settings.CompanyName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 5, settings.Address, "", 1, "L", false, 0, "")
	pdf.SetX(marginLeft)
	headerLine := "Phone: " + settings.Phone
	if settings.GstNumber != "" {
		headerLine += "   GSTIN: " + settings.GstNumber
	}
	pdf.CellFormat(0, 5, headerLine, "", 1, "L", false, 0, "")

	// invoice panel
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, 40)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(90, 6, "TAX INVOICE", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Invoice No: "+invoice.InvoiceNumber, "", 1, "R", false, 0, "")
	pdf.SetX(marginLeft + 90)
	pdf.CellFormat(0, 6, "Bill Month: "+invoice.BillMonth.Time().Format("January 2006"), "", 1, "R", false, 0, "")
	pdf.SetX(marginLeft + 90)
	pdf.CellFormat(0, 6, "Date: "+invoice.CreatedAt.Format("02 Jan 2006"), "", 1, "R", false, 0, "")

	// bill to
	pdf.SetXY(marginLeft, 62)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 5, client.Name, "", 1, "L", false, 0, "")
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 5, client.City, "", 1, "L", false, 0, "")
	if client.GstNumber != "" {
		pdf.SetX(marginLeft)
		pdf.CellFormat(0, 5, "GSTIN: "+client.GstNumber, "", 1, "L", false, 0, "")
	}

	// items table
	pdf.SetY(pdf.GetY() + 6)
	colWidths := []float64{70, 35, 35, 40}
	headers := []string{"Description", "Quantity", "Rate", "Amount"}
	pdf.SetX(marginLeft)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 245)
	for i, h := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(colWidths[i], 7, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range invoice.Details {
		pdf.SetX(marginLeft)
		pdf.CellFormat(colWidths[0], 6, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, item.Quantity.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, item.Rate.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, item.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// totals
	totals := []struct {
		label string
		value decimal.Decimal
	}{
		{"Orders Total", invoice.OrdersTotal},
		{"Previous Balance", invoice.PreviousBalance},
		{"Paid Amount", invoice.PaidAmount},
		{"Total Payable", invoice.TotalPayable},
	}
	pdf.Ln(4)
	for i, row := range totals {
		pdf.SetX(marginLeft + 90)
		style := ""
		if i == len(totals)-1 {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(50, 6, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, money(row.value), "", 1, "R", false, 0, "")
	}

	// bank details footer
	if settings.BankName != "" {
		pdf.Ln(8)
		pdf.SetX(marginLeft)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 5, "Payment Details", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetX(marginLeft)
		pdf.CellFormat(0, 5, "Bank: "+settings.BankName+"   A/C: "+settings.AccountNumber+"   IFSC: "+settings.IfscCode, "", 1, "L", false, 0, "")
		if settings.UpiId != "" {
			pdf.SetX(marginLeft)
			pdf.CellFormat(0, 5, "UPI: "+settings.UpiId, "", 1, "L", false, 0, "")
		}
	}

	pdf.SetY(-25)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Generated on "+time.Now().Format("02 Jan 2006 15:04"), "", 1, "C", false, 0, "")

	return pdf.Output(w)
}
