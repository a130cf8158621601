package models

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shreeramenterprise/sems_backend/config"
	"github.com/shreeramenterprise/sems_backend/utils"
)

type Invoice struct {
	ID               int             `gorm:"primary_key" json:"id"`
	ClientId         int             `gorm:"index;not null" json:"client_id" binding:"required"`
	InvoiceNumber    string          `gorm:"size:50;not null;uniqueIndex" json:"invoice_number"`
	SequenceNo       int64           `gorm:"not null" json:"sequence_no"`
	BillMonth        DateString      `gorm:"not null" json:"bill_month"`
	OrdersTotal      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"orders_total"`
	PreviousBalance  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"previous_balance"`
	PaidAmount       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"paid_amount"`
	TotalPayable     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_payable"`
	RemainingBalance decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"remaining_balance"`
	Details          []*InvoiceItem  `gorm:"foreignKey:InvoiceId" json:"items,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// InvoiceItem is a frozen copy of one billed order. Editing the order or its
// material rate later never touches the item.
type InvoiceItem struct {
	ID          int             `gorm:"primary_key" json:"id"`
	InvoiceId   int             `gorm:"index;not null" json:"invoice_id"`
	OrderId     int             `gorm:"default:0" json:"order_id"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	Rate        decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"rate"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type NewInvoice struct {
	ClientId  int    `json:"client_id" binding:"required"`
	BillMonth string `json:"bill_month" binding:"required"` // "2006-01"
}

// InvoiceUpdate edits the carried-forward figures and, optionally, replaces
// the line items wholesale. Nil fields keep the stored value.
type InvoiceUpdate struct {
	PreviousBalance *decimal.Decimal  `json:"previous_balance"`
	PaidAmount      *decimal.Decimal  `json:"paid_amount"`
	Items           []*NewInvoiceItem `json:"items"`
}

type NewInvoiceItem struct {
	OrderId     int             `json:"order_id"`
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

type InvoiceWithClient struct {
	Invoice
	Clients *ClientRef `json:"clients,omitempty"`
}

// ComputeTotalPayable: billed orders plus what was already owed, minus what
// was paid inside the billing month.
func ComputeTotalPayable(ordersTotal, previousBalance, paidAmount decimal.Decimal) decimal.Decimal {
	return ordersTotal.Add(previousBalance).Sub(paidAmount)
}

// FormatInvoiceNumber renders "{prefix}{seq}-{month}-{yy/yy+1}", the
// numbering scheme printed on the tax invoice, e.g. "SRE12-8-26/27".
func FormatInvoiceNumber(prefix string, seq int64, billMonth time.Time) string {
	year := billMonth.Year()
	yearSuffix := fmt.Sprintf("%02d/%02d", year%100, (year+1)%100)
	return fmt.Sprintf("%s%d-%d-%s", prefix, seq, int(billMonth.Month()), yearSuffix)
}

func (input *NewInvoice) validate(ctx context.Context) (time.Time, error) {
	if err := utils.ValidateResourceId[Client](ctx, input.ClientId); err != nil {
		return time.Time{}, utils.NewInputError("client not found")
	}
	monthStart, err := time.Parse("2006-01", input.BillMonth)
	if err != nil {
		return time.Time{}, utils.NewInputError("bill month must be formatted as 2006-01")
	}
	return monthStart, nil
}

// CreateInvoice snapshots the client's orders for the billing month into
// line items and carries the pre-month balance forward. The invoice number
// is allocated from CompanySettings under a redislock so two concurrent
// creates cannot hand out the same sequence.
func CreateInvoice(ctx context.Context, input *NewInvoice) (*Invoice, error) {
	db := config.GetDB()

	monthStart, err := input.validate(ctx)
	if err != nil {
		return nil, err
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	client, err := utils.FetchModel[Client](ctx, input.ClientId)
	if err != nil {
		return nil, err
	}

	var monthOrders []*Order
	err = db.WithContext(ctx).
		Where("client_id = ? AND order_date >= ? AND order_date < ?", input.ClientId, monthStart, monthEnd).
		Order("order_date ASC, id ASC").
		Find(&monthOrders).Error
	if err != nil {
		return nil, err
	}
	if len(monthOrders) == 0 {
		return nil, utils.NewInputError("no orders found for the selected period")
	}

	ordersTotal := decimal.Zero
	items := make([]*InvoiceItem, 0, len(monthOrders))
	for _, o := range monthOrders {
		ordersTotal = ordersTotal.Add(o.Total)
		items = append(items, &InvoiceItem{
			OrderId:     o.ID,
			Description: o.Material,
			Quantity:    o.Quantity,
			Rate:        o.Rate,
			Amount:      o.Total,
		})
	}

	var paidAmount decimal.Decimal
	err = db.WithContext(ctx).Model(&Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("client_id = ? AND payment_date >= ? AND payment_date < ?", input.ClientId, monthStart, monthEnd).
		Scan(&paidAmount).Error
	if err != nil {
		return nil, err
	}

	previousBalance, err := previousBalanceAsOf(ctx, client, monthStart)
	if err != nil {
		return nil, err
	}

	totalPayable := ComputeTotalPayable(ordersTotal, previousBalance, paidAmount)

	// serialize number allocation across instances
	lock, err := utils.ObtainLock(ctx, "invoice_seq", 30*time.Second, "invoice.go", "CreateInvoice")
	if err != nil {
		return nil, err
	}
	defer lock.Release(ctx)

	tx := db.Begin()

	settings, err := fetchSettingsForUpdate(tx.WithContext(ctx))
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	seqNo := settings.NextInvoiceNumber
	if seqNo <= 0 {
		seqNo = 1
	}

	invoice := Invoice{
		ClientId:         input.ClientId,
		InvoiceNumber:    FormatInvoiceNumber(settings.InvoicePrefix, seqNo, monthStart),
		SequenceNo:       seqNo,
		BillMonth:        DateString(monthStart),
		OrdersTotal:      ordersTotal,
		PreviousBalance:  previousBalance,
		PaidAmount:       paidAmount,
		TotalPayable:     totalPayable,
		RemainingBalance: totalPayable,
		Details:          items,
	}

	if err := tx.WithContext(ctx).Create(&invoice).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	err = tx.WithContext(ctx).Model(&CompanySettings{}).
		Where("id = ?", settings.ID).
		Update("next_invoice_number", seqNo+1).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	CompanySettings{}.RemoveInstanceRedis()

	return &invoice, nil
}

// previousBalanceAsOf derives what the client owed before the billing month:
// opening balance plus all earlier orders minus all earlier payments.
func previousBalanceAsOf(ctx context.Context, client *Client, monthStart time.Time) (decimal.Decimal, error) {
	db := config.GetDB()

	var priorOrdersTotal decimal.Decimal
	err := db.WithContext(ctx).Model(&Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("client_id = ? AND order_date < ?", client.ID, monthStart).
		Scan(&priorOrdersTotal).Error
	if err != nil {
		return decimal.Zero, err
	}

	var priorPaymentsTotal decimal.Decimal
	err = db.WithContext(ctx).Model(&Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("client_id = ? AND payment_date < ?", client.ID, monthStart).
		Scan(&priorPaymentsTotal).Error
	if err != nil {
		return decimal.Zero, err
	}

	return client.OpeningBalance.Add(priorOrdersTotal).Sub(priorPaymentsTotal), nil
}

func UpdateInvoice(ctx context.Context, id int, input *InvoiceUpdate) (*Invoice, error) {
	invoice, err := utils.FetchModel[Invoice](ctx, id)
	if err != nil {
		return nil, err
	}

	ordersTotal := invoice.OrdersTotal
	if len(input.Items) > 0 {
		ordersTotal = decimal.Zero
		for _, item := range input.Items {
			ordersTotal = ordersTotal.Add(item.Amount)
		}
	}
	previousBalance := utils.DereferencePtr(input.PreviousBalance, invoice.PreviousBalance)
	paidAmount := utils.DereferencePtr(input.PaidAmount, invoice.PaidAmount)
	totalPayable := ComputeTotalPayable(ordersTotal, previousBalance, paidAmount)

	db := config.GetDB()
	tx := db.Begin()
	err = tx.WithContext(ctx).Model(&invoice).Updates(map[string]interface{}{
		"OrdersTotal":      ordersTotal,
		"PreviousBalance":  previousBalance,
		"PaidAmount":       paidAmount,
		"TotalPayable":     totalPayable,
		"RemainingBalance": totalPayable,
	}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if len(input.Items) > 0 {
		// items are replaced wholesale
		if err := tx.WithContext(ctx).Where("invoice_id = ?", id).Delete(&InvoiceItem{}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		for _, item := range input.Items {
			record := InvoiceItem{
				InvoiceId:   id,
				OrderId:     item.OrderId,
				Description: item.Description,
				Quantity:    item.Quantity,
				Rate:        item.Rate,
				Amount:      item.Amount,
			}
			if err := tx.WithContext(ctx).Create(&record).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}

	if err = tx.Commit().Error; err != nil {
		return nil, err
	}

	return GetInvoice(ctx, id)
}

func DeleteInvoice(ctx context.Context, id int) (*Invoice, error) {
	invoice, err := utils.FetchModel[Invoice](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	// items never outlive the invoice
	if err := tx.WithContext(ctx).Where("invoice_id = ?", id).Delete(&InvoiceItem{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.WithContext(ctx).Delete(&invoice).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err = tx.Commit().Error; err != nil {
		return nil, err
	}

	return invoice, nil
}

func GetInvoice(ctx context.Context, id int) (*Invoice, error) {
	return utils.FetchModel[Invoice](ctx, id, "Details")
}

func ListInvoices(ctx context.Context, clientId int) ([]*InvoiceWithClient, error) {
	db := config.GetDB()

	query := db.WithContext(ctx).Model(&Invoice{})
	if clientId > 0 {
		query = query.Where("client_id = ?", clientId)
	}

	var invoices []*Invoice
	if err := query.Order("created_at DESC, id DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}

	clients, err := GetAllClients(ctx)
	if err != nil {
		return nil, err
	}
	byId := make(map[int]*Client, len(clients))
	for _, c := range clients {
		byId[c.ID] = c
	}

	results := make([]*InvoiceWithClient, 0, len(invoices))
	for _, inv := range invoices {
		row := &InvoiceWithClient{Invoice: *inv}
		if c, ok := byId[inv.ClientId]; ok {
			row.Clients = &ClientRef{Name: c.Name, City: c.City}
		}
		results = append(results, row)
	}
	return results, nil
}
