package reportexport

import (
	"bytes"
	"fmt"
	"strings"

	"backoffice/internal/domain/models"
	"backoffice/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// SalesPDF renders a fetched sales report into a downloadable PDF and
// returns the bytes plus a suggested filename.
func SalesPDF(requestID string, report models.SalesReport) ([]byte, string, error) {
	utils.LogEvent(requestID, "reports", "export_sales_pdf",
		fmt.Sprintf("start=%s end=%s rows=%d", report.StartDate, report.EndDate, len(report.Rows)))
	return buildSalesPDF(report)
}

func buildSalesPDF(r models.SalesReport) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Sales Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SALES REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	period := fmt.Sprintf("Period       : %s to %s", safe(r.StartDate, "-"), safe(r.EndDate, "-"))
	summary := []string{
		period,
		fmt.Sprintf("Total Orders : %d", r.TotalOrders),
		fmt.Sprintf("Total Sales  : %s", utils.FormatCurrency(r.TotalSales)),
		fmt.Sprintf("Refunds      : %s", utils.FormatCurrency(r.Refunds)),
		fmt.Sprintf("Net Revenue  : %s", utils.FormatCurrency(r.NetRevenue)),
	}
	for _, line := range summary {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 8, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Orders", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 8, "Revenue", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 8, "Refunds", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range r.Rows {
		pdf.CellFormat(40, 7, safe(row.Date, "-"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", row.Orders), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, utils.FormatCurrency(row.Revenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, utils.FormatCurrency(row.Refunds), "1", 1, "R", false, 0, "")
	}
	if len(r.Rows) == 0 {
		pdf.CellFormat(160, 7, "No sales in this period", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("SALES_%s_%s.pdf", safeFilenamePart(r.StartDate), safeFilenamePart(r.EndDate))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "ALL"
	}
	var b strings.Builder
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
