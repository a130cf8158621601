package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shreeramenterprise/sems_backend/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func orderOn(material string, weight, total string) *models.Order {
	return &models.Order{
		OrderDate: models.DateString(time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)),
		Material:  material,
		Weight:    dec(weight),
		Total:     dec(total),
	}
}

func TestBuildSummaryReport(t *testing.T) {
	orders := []*models.Order{
		orderOn(models.MaterialReti, "10", "15000"),
		orderOn(models.MaterialReti, "5", "7500"),
		orderOn(models.MaterialKapchi, "2", "2400"),
		orderOn("MURRUM", "8", "3200"), // custom material
	}
	payments := []*models.Payment{
		{Amount: dec("10000")},
		{Amount: dec("2000")},
	}
	clients := []*models.Client{
		{ID: 1, Name: "Patel Traders", City: "Surat", CurrentBalance: dec("9100")},
		{ID: 2, Name: "Om Builders", City: "Vapi", CurrentBalance: dec("7000")},
	}

	report := BuildSummaryReport(orders, payments, clients)

	if !report.TotalRevenue.Equal(dec("28100")) {
		t.Fatalf("expected revenue 28100, got %s", report.TotalRevenue)
	}
	if !report.TotalPayments.Equal(dec("12000")) {
		t.Fatalf("expected payments 12000, got %s", report.TotalPayments)
	}
	if !report.PendingAmount.Equal(dec("16100")) {
		t.Fatalf("expected pending 16100, got %s", report.PendingAmount)
	}
	if report.OrderCount != 4 {
		t.Fatalf("expected 4 orders, got %d", report.OrderCount)
	}

	// four default materials plus the custom one
	if len(report.MaterialStats) != 5 {
		t.Fatalf("expected 5 material stats, got %d", len(report.MaterialStats))
	}
	byMaterial := make(map[string]*MaterialStat)
	for _, s := range report.MaterialStats {
		byMaterial[s.Material] = s
	}
	reti := byMaterial[models.MaterialReti]
	if reti.OrderCount != 2 || !reti.TotalWeight.Equal(dec("15")) || !reti.TotalAmount.Equal(dec("22500")) {
		t.Fatalf("unexpected RETI stat: %+v", reti)
	}
	gsb := byMaterial[models.MaterialGSB]
	if gsb.OrderCount != 0 || !gsb.TotalAmount.IsZero() {
		t.Fatalf("expected empty GSB stat, got %+v", gsb)
	}
	if byMaterial["MURRUM"] == nil || byMaterial["MURRUM"].OrderCount != 1 {
		t.Fatalf("expected custom material MURRUM in stats")
	}

	if len(report.TopClients) != 2 {
		t.Fatalf("expected 2 top clients, got %d", len(report.TopClients))
	}
	if report.TopClients[0].Name != "Patel Traders" {
		t.Fatalf("expected highest balance first, got %s", report.TopClients[0].Name)
	}
}

func TestTopClientsByBalanceLimit(t *testing.T) {
	clients := make([]*models.Client, 0, 7)
	for i := 1; i <= 7; i++ {
		clients = append(clients, &models.Client{
			ID:             i,
			Name:           "c",
			CurrentBalance: decimal.NewFromInt(int64(i * 100)),
		})
	}
	top := topClientsByBalance(clients, 5)
	if len(top) != 5 {
		t.Fatalf("expected 5, got %d", len(top))
	}
	if !top[0].CurrentBalance.Equal(dec("700")) || !top[4].CurrentBalance.Equal(dec("300")) {
		t.Fatalf("unexpected ordering: first %s, last %s", top[0].CurrentBalance, top[4].CurrentBalance)
	}
}
