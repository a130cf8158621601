package reports

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/shreeramenterprise/sems_backend/models"
)

type ReportFilter struct {
	Month    string // "2006-01", empty for all time
	ClientId int
	Material string
}

type MaterialStat struct {
	Material    string          `json:"material"`
	TotalWeight decimal.Decimal `json:"total_weight"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OrderCount  int             `json:"order_count"`
}

type TopClient struct {
	ClientId       int             `json:"client_id"`
	Name           string          `json:"name"`
	City           string          `json:"city"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

type SummaryReport struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalPayments decimal.Decimal `json:"total_payments"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	OrderCount    int             `json:"order_count"`
	MaterialStats []*MaterialStat `json:"material_stats"`
	TopClients    []*TopClient    `json:"top_clients"`
}

// BuildSummaryReport is the pure aggregation over already-fetched rows.
// Material stats cover the four stock materials plus any custom material
// seen in the filtered orders.
func BuildSummaryReport(orders []*models.Order, payments []*models.Payment, clients []*models.Client) *SummaryReport {
	report := &SummaryReport{
		TotalRevenue:  decimal.Zero,
		TotalPayments: decimal.Zero,
		PendingAmount: decimal.Zero,
		OrderCount:    len(orders),
	}

	materials := models.DefaultMaterials()
	seen := make(map[string]bool, len(materials))
	for _, m := range materials {
		seen[m] = true
	}
	for _, o := range orders {
		if !seen[o.Material] {
			seen[o.Material] = true
			materials = append(materials, o.Material)
		}
	}

	statByMaterial := make(map[string]*MaterialStat, len(materials))
	for _, m := range materials {
		stat := &MaterialStat{Material: m, TotalWeight: decimal.Zero, TotalAmount: decimal.Zero}
		statByMaterial[m] = stat
		report.MaterialStats = append(report.MaterialStats, stat)
	}

	for _, o := range orders {
		report.TotalRevenue = report.TotalRevenue.Add(o.Total)
		stat := statByMaterial[o.Material]
		stat.TotalWeight = stat.TotalWeight.Add(o.Weight)
		stat.TotalAmount = stat.TotalAmount.Add(o.Total)
		stat.OrderCount++
	}

	for _, p := range payments {
		report.TotalPayments = report.TotalPayments.Add(p.Amount)
	}

	for _, c := range clients {
		report.PendingAmount = report.PendingAmount.Add(c.CurrentBalance)
	}
	report.TopClients = topClientsByBalance(clients, 5)

	return report
}

func topClientsByBalance(clients []*models.Client, limit int) []*TopClient {
	sorted := make([]*models.Client, len(clients))
	copy(sorted, clients)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CurrentBalance.GreaterThan(sorted[j].CurrentBalance)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	top := make([]*TopClient, 0, len(sorted))
	for _, c := range sorted {
		top = append(top, &TopClient{
			ClientId:       c.ID,
			Name:           c.Name,
			City:           c.City,
			CurrentBalance: c.CurrentBalance,
		})
	}
	return top
}

// GetSummaryReport fetches the filtered rows and aggregates them.
func GetSummaryReport(ctx context.Context, filter ReportFilter) (*SummaryReport, error) {
	orderRows, err := models.ListOrders(ctx, models.OrderFilter{ClientId: filter.ClientId, Month: filter.Month})
	if err != nil {
		return nil, err
	}
	orders := make([]*models.Order, 0, len(orderRows))
	for _, row := range orderRows {
		if filter.Material != "" && row.Material != filter.Material {
			continue
		}
		order := row.Order
		orders = append(orders, &order)
	}

	paymentRows, err := models.ListPayments(ctx, models.PaymentFilter{ClientId: filter.ClientId, Month: filter.Month})
	if err != nil {
		return nil, err
	}
	payments := make([]*models.Payment, 0, len(paymentRows))
	for _, row := range paymentRows {
		payment := row.Payment
		payments = append(payments, &payment)
	}

	clients, err := models.GetAllClients(ctx)
	if err != nil {
		return nil, err
	}
	if filter.ClientId > 0 {
		filtered := make([]*models.Client, 0, 1)
		for _, c := range clients {
			if c.ID == filter.ClientId {
				filtered = append(filtered, c)
			}
		}
		clients = filtered
	}

	return BuildSummaryReport(orders, payments, clients), nil
}
