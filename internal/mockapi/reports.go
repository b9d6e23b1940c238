package mockapi

import (
	"sort"
	"strings"

	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/dashboard
func (s *Server) dashboard(c *gin.Context) {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	var revenue float64
	var pending int
	for _, o := range s.st.orders {
		switch o.Status {
		case models.OrderPaid, models.OrderActivated:
			revenue += o.Amount
		}
		if o.Status == models.OrderPending {
			pending++
		}
	}

	recent := make([]models.Order, len(s.st.orders))
	copy(recent, s.st.orders)
	sort.Slice(recent, func(i, j int) bool { return recent[i].ID > recent[j].ID })
	if len(recent) > 5 {
		recent = recent[:5]
	}

	respondOK(c, "", gin.H{
		"totalOrders":    len(s.st.orders),
		"totalRevenue":   revenue,
		"pendingOrders":  pending,
		"totalCustomers": len(s.st.customers),
		"recentOrders":   recent,
	})
}

// GET /api/admin/reports/sales
func (s *Server) salesReport(c *gin.Context) {
	start := strings.TrimSpace(c.Query("startDate"))
	end := strings.TrimSpace(c.Query("endDate"))

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	byDay := map[string]*models.SalesReportRow{}
	var totalOrders int
	var totalSales, refunds float64

	for _, o := range s.st.orders {
		if !inDateRange(o.CreatedAt, start, end) {
			continue
		}
		if o.Status != models.OrderPaid && o.Status != models.OrderActivated {
			continue
		}
		day := o.CreatedAt[:10]
		row := byDay[day]
		if row == nil {
			row = &models.SalesReportRow{Date: day}
			byDay[day] = row
		}
		row.Orders++
		row.Revenue += o.Amount
		totalOrders++
		totalSales += o.Amount
	}

	for _, pay := range s.st.payments {
		if pay.Status != models.PaymentRefunded || !inDateRange(pay.UpdatedAt, start, end) {
			continue
		}
		day := pay.UpdatedAt[:10]
		row := byDay[day]
		if row == nil {
			row = &models.SalesReportRow{Date: day}
			byDay[day] = row
		}
		row.Refunds += pay.Amount
		refunds += pay.Amount
	}

	rows := make([]models.SalesReportRow, 0, len(byDay))
	for _, row := range byDay {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })

	respondOK(c, "", gin.H{
		"startDate":   start,
		"endDate":     end,
		"totalOrders": totalOrders,
		"totalSales":  totalSales,
		"refunds":     refunds,
		"netRevenue":  totalSales - refunds,
		"rows":        rows,
	})
}
