package reportexport

import (
	"bytes"
	"testing"

	"backoffice/internal/domain/models"
)

func TestSalesPDF(t *testing.T) {
	report := models.SalesReport{
		StartDate:   "2026-01-01",
		EndDate:     "2026-01-31",
		TotalOrders: 12,
		TotalSales:  1450.50,
		Refunds:     120,
		NetRevenue:  1330.50,
		Rows: []models.SalesReportRow{
			{Date: "2026-01-05", Orders: 4, Revenue: 500, Refunds: 0},
			{Date: "2026-01-12", Orders: 8, Revenue: 950.50, Refunds: 120},
		},
	}

	pdf, filename, err := SalesPDF("test-req", report)
	if err != nil {
		t.Fatalf("SalesPDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("SalesPDF returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
	if filename != "SALES_2026-01-01_2026-01-31.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestSalesPDFEmptyPeriod(t *testing.T) {
	pdf, filename, err := SalesPDF("test-req", models.SalesReport{})
	if err != nil {
		t.Fatalf("SalesPDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty report produced no document")
	}
	if filename != "SALES_ALL_ALL.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}
