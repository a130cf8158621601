package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BuildSummaryWorkbook renders the summary report as an .xlsx workbook.
func BuildSummaryWorkbook(report *SummaryReport, filter ReportFilter) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", "Business Summary")
	if filter.Month != "" {
		f.SetCellValue(sheet, "B1", "Month: "+filter.Month)
	}
	if filter.Material != "" {
		f.SetCellValue(sheet, "C1", "Material: "+filter.Material)
	}

	f.SetCellValue(sheet, "A3", "Total Revenue")
	f.SetCellValue(sheet, "B3", report.TotalRevenue.InexactFloat64())
	f.SetCellValue(sheet, "A4", "Total Payments")
	f.SetCellValue(sheet, "B4", report.TotalPayments.InexactFloat64())
	f.SetCellValue(sheet, "A5", "Pending Amount")
	f.SetCellValue(sheet, "B5", report.PendingAmount.InexactFloat64())
	f.SetCellValue(sheet, "A6", "Order Count")
	f.SetCellValue(sheet, "B6", report.OrderCount)

	// material table
	f.SetCellValue(sheet, "A8", "Material")
	f.SetCellValue(sheet, "B8", "Total Weight")
	f.SetCellValue(sheet, "C8", "Total Amount")
	f.SetCellValue(sheet, "D8", "Orders")
	row := 9
	for _, stat := range report.MaterialStats {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), stat.Material)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), stat.TotalWeight.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), stat.TotalAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), stat.OrderCount)
		row++
	}

	// top clients table
	row += 1
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Top Clients")
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Client")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "City")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Outstanding")
	row++
	for _, c := range report.TopClients {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), c.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), c.City)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), c.CurrentBalance.InexactFloat64())
		row++
	}

	return f, nil
}
