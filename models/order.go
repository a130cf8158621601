package models

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shreeramenterprise/sems_backend/config"
	"github.com/shreeramenterprise/sems_backend/utils"
)

type Order struct {
	ID               int             `gorm:"primary_key" json:"id"`
	ClientId         int             `gorm:"index;not null" json:"client_id" binding:"required"`
	OrderNumber      string          `gorm:"size:50" json:"order_number"`
	OrderDate        DateString      `gorm:"not null;index" json:"order_date" binding:"required"`
	OrderTime        string          `gorm:"size:10" json:"order_time"`
	Material         string          `gorm:"size:50;not null" json:"material" binding:"required"`
	Weight           decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"weight" binding:"required"`
	Quantity         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	Rate             decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"rate" binding:"required"`
	Total            decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total"`
	Location         string          `gorm:"size:255" json:"location"`
	TruckNumber      string          `gorm:"size:50" json:"truck_number"`
	DeliveryBoyName  string          `gorm:"size:100" json:"delivery_boy_name"`
	DeliveryBoyPhone string          `gorm:"size:20" json:"delivery_boy_mobile"`
	Notes            string          `gorm:"type:text" json:"notes"`
	CreatedBy        int             `gorm:"default:0" json:"created_by"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewOrder struct {
	ClientId         int             `json:"client_id" binding:"required"`
	OrderNumber      string          `json:"order_number"`
	OrderDate        DateString      `json:"order_date" binding:"required"`
	OrderTime        string          `json:"order_time"`
	Material         string          `json:"material" binding:"required"`
	Weight           decimal.Decimal `json:"weight" binding:"required"`
	Quantity         decimal.Decimal `json:"quantity"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
	Location         string          `json:"location"`
	TruckNumber      string          `json:"truck_number"`
	DeliveryBoyName  string          `json:"delivery_boy_name"`
	DeliveryBoyPhone string          `json:"delivery_boy_mobile"`
	Notes            string          `json:"notes"`
}

// OrderWithClient carries the denormalized client snippet list views expect.
type OrderWithClient struct {
	Order
	Clients *ClientRef `json:"clients,omitempty"`
}

// OrderTotal is the single place order totals come from. weight × rate.
func OrderTotal(weight, rate decimal.Decimal) decimal.Decimal {
	return weight.Mul(rate)
}

func (input *NewOrder) validate(ctx context.Context) error {
	if err := utils.ValidateResourceId[Client](ctx, input.ClientId); err != nil {
		return utils.NewInputError("client not found")
	}
	if input.Weight.LessThanOrEqual(decimal.Zero) {
		return utils.NewInputError("weight must be positive")
	}
	if input.Rate.IsNegative() {
		return utils.NewInputError("rate cannot be negative")
	}
	if input.OrderDate.IsZero() {
		return utils.NewInputError("order date is required")
	}
	return nil
}

func (input *NewOrder) toOrder(createdBy int) Order {
	quantity := input.Quantity
	if quantity.IsZero() {
		quantity = input.Weight
	}
	return Order{
		ClientId:         input.ClientId,
		OrderNumber:      input.OrderNumber,
		OrderDate:        input.OrderDate,
		OrderTime:        input.OrderTime,
		Material:         input.Material,
		Weight:           input.Weight,
		Quantity:         quantity,
		Rate:             input.Rate,
		Total:            OrderTotal(input.Weight, input.Rate),
		Location:         input.Location,
		TruckNumber:      input.TruckNumber,
		DeliveryBoyName:  input.DeliveryBoyName,
		DeliveryBoyPhone: input.DeliveryBoyPhone,
		Notes:            input.Notes,
		CreatedBy:        createdBy,
	}
}

func CreateOrder(ctx context.Context, input *NewOrder) (*Order, error) {
	db := config.GetDB()

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	createdBy, _ := utils.GetUserIdFromContext(ctx)
	order := input.toOrder(createdBy)

	tx := db.Begin()
	if err := AcquireClientLedgerLock(tx, order.ClientId); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.WithContext(ctx).Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := RecomputeClientBalance(tx.WithContext(ctx), order.ClientId); err != nil {
		tx.Rollback()
		return nil, err
	}

	ReleaseClientLedgerLock(tx, order.ClientId)
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	Client{}.RemoveAllRedis()

	return &order, nil
}

func UpdateOrder(ctx context.Context, id int, input *NewOrder) (*Order, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	order, err := utils.FetchModel[Order](ctx, id)
	if err != nil {
		return nil, err
	}
	if input.ClientId != order.ClientId {
		// moving an order between clients would need both ledgers re-derived;
		// the dashboard never does this, so refuse it outright
		return nil, utils.NewInputError("order client cannot be changed")
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := AcquireClientLedgerLock(tx, order.ClientId); err != nil {
		tx.Rollback()
		return nil, err
	}

	quantity := input.Quantity
	if quantity.IsZero() {
		quantity = input.Weight
	}
	err = tx.WithContext(ctx).Model(&order).Updates(map[string]interface{}{
		"OrderNumber":      input.OrderNumber,
		"OrderDate":        input.OrderDate,
		"OrderTime":        input.OrderTime,
		"Material":         input.Material,
		"Weight":           input.Weight,
		"Quantity":         quantity,
		"Rate":             input.Rate,
		"Total":            OrderTotal(input.Weight, input.Rate),
		"Location":         input.Location,
		"TruckNumber":      input.TruckNumber,
		"DeliveryBoyName":  input.DeliveryBoyName,
		"DeliveryBoyPhone": input.DeliveryBoyPhone,
		"Notes":            input.Notes,
	}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := RecomputeClientBalance(tx.WithContext(ctx), order.ClientId); err != nil {
		tx.Rollback()
		return nil, err
	}

	ReleaseClientLedgerLock(tx, order.ClientId)
	if err = tx.Commit().Error; err != nil {
		return nil, err
	}

	Client{}.RemoveAllRedis()

	return utils.FetchModel[Order](ctx, id)
}

func DeleteOrder(ctx context.Context, id int) (*Order, error) {
	order, err := utils.FetchModel[Order](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := AcquireClientLedgerLock(tx, order.ClientId); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.WithContext(ctx).Delete(&order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := RecomputeClientBalance(tx.WithContext(ctx), order.ClientId); err != nil {
		tx.Rollback()
		return nil, err
	}

	ReleaseClientLedgerLock(tx, order.ClientId)
	if err = tx.Commit().Error; err != nil {
		return nil, err
	}

	Client{}.RemoveAllRedis()

	return order, nil
}

func GetOrder(ctx context.Context, id int) (*Order, error) {
	return utils.FetchModel[Order](ctx, id)
}

type OrderFilter struct {
	ClientId    int
	Month       string // "2006-01": only orders inside the month
	BeforeYear  int    // with BeforeMonth: only orders strictly before that month
	BeforeMonth int
}

func ListOrders(ctx context.Context, filter OrderFilter) ([]*OrderWithClient, error) {
	db := config.GetDB()

	query := db.WithContext(ctx).Model(&Order{})
	if filter.ClientId > 0 {
		query = query.Where("client_id = ?", filter.ClientId)
	}
	if filter.Month != "" {
		monthStart, err := time.Parse("2006-01", filter.Month)
		if err != nil {
			return nil, utils.NewInputError("month must be formatted as 2006-01")
		}
		query = query.Where("order_date >= ? AND order_date < ?", monthStart, monthStart.AddDate(0, 1, 0))
	}
	if filter.BeforeYear > 0 && filter.BeforeMonth > 0 {
		before := fmt.Sprintf("%04d-%02d-01", filter.BeforeYear, filter.BeforeMonth)
		query = query.Where("order_date < ?", before)
	}

	var orders []*Order
	if err := query.Order("order_date DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}

	return attachClientRefs(ctx, orders)
}

func attachClientRefs(ctx context.Context, orders []*Order) ([]*OrderWithClient, error) {
	clients, err := GetAllClients(ctx)
	if err != nil {
		return nil, err
	}
	byId := make(map[int]*Client, len(clients))
	for _, c := range clients {
		byId[c.ID] = c
	}

	results := make([]*OrderWithClient, 0, len(orders))
	for _, o := range orders {
		row := &OrderWithClient{Order: *o}
		if c, ok := byId[o.ClientId]; ok {
			row.Clients = &ClientRef{Name: c.Name, City: c.City}
		}
		results = append(results, row)
	}
	return results, nil
}
