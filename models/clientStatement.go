package models

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shreeramenterprise/sems_backend/config"
	"github.com/shreeramenterprise/sems_backend/utils"
)

// ClientStatementEntry is one row of the client statement: an order or a
// payment, with the balance after applying it.
type ClientStatementEntry struct {
	ID         string          `json:"id"`
	SourceType string          `json:"source_type"` // "Order" or "Payment"
	SourceID   int             `json:"source_id"`
	Date       time.Time       `json:"date"`
	Reference  string          `json:"reference"`
	Amount     decimal.Decimal `json:"amount"` // signed: orders add, payments subtract
	Balance    decimal.Decimal `json:"balance"`
}

type ClientStatement struct {
	ClientId       int                     `json:"client_id"`
	ClientName     string                  `json:"client_name"`
	OpeningBalance decimal.Decimal         `json:"opening_balance"`
	ClosingBalance decimal.Decimal         `json:"closing_balance"`
	Entries        []*ClientStatementEntry `json:"entries"`
}

// BuildStatementEntries merges orders and payments into one chronological
// run with a running balance. Pure; exposed for the statement endpoint and
// the report PDF.
func BuildStatementEntries(openingBalance decimal.Decimal, orders []*Order, payments []*Payment) []*ClientStatementEntry {
	entries := make([]*ClientStatementEntry, 0, len(orders)+len(payments))

	for _, o := range orders {
		reference := o.Material
		if o.OrderNumber != "" {
			reference = o.OrderNumber + " " + o.Material
		}
		entries = append(entries, &ClientStatementEntry{
			ID:         fmt.Sprintf("order-%d", o.ID),
			SourceType: "Order",
			SourceID:   o.ID,
			Date:       o.OrderDate.Time(),
			Reference:  reference,
			Amount:     o.Total,
		})
	}
	for _, p := range payments {
		entries = append(entries, &ClientStatementEntry{
			ID:         fmt.Sprintf("payment-%d", p.ID),
			SourceType: "Payment",
			SourceID:   p.ID,
			Date:       p.PaymentDate.Time(),
			Reference:  string(p.Mode),
			Amount:     p.Amount.Neg(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date.Equal(entries[j].Date) {
			// orders before payments on the same day
			return entries[i].SourceType < entries[j].SourceType
		}
		return entries[i].Date.Before(entries[j].Date)
	})

	balance := openingBalance
	for _, e := range entries {
		balance = balance.Add(e.Amount)
		e.Balance = balance
	}
	return entries
}

func GetClientStatement(ctx context.Context, clientId int) (*ClientStatement, error) {
	client, err := utils.FetchModel[Client](ctx, clientId)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()

	var orders []*Order
	err = db.WithContext(ctx).
		Where("client_id = ?", clientId).
		Order("order_date ASC, id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	var payments []*Payment
	err = db.WithContext(ctx).
		Where("client_id = ?", clientId).
		Order("payment_date ASC, id ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	entries := BuildStatementEntries(client.OpeningBalance, orders, payments)

	closing := client.OpeningBalance
	if len(entries) > 0 {
		closing = entries[len(entries)-1].Balance
	}

	return &ClientStatement{
		ClientId:       client.ID,
		ClientName:     client.Name,
		OpeningBalance: client.OpeningBalance,
		ClosingBalance: closing,
		Entries:        entries,
	}, nil
}
