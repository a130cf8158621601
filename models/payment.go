package models

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shreeramenterprise/sems_backend/config"
	"github.com/shreeramenterprise/sems_backend/utils"
)

type Payment struct {
	ID          int             `gorm:"primary_key" json:"id"`
	ClientId    int             `gorm:"index;not null" json:"client_id" binding:"required"`
	PaymentDate DateString      `gorm:"not null;index" json:"payment_date" binding:"required"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount" binding:"required"`
	Mode        PaymentMode     `gorm:"type:enum('Cash','UPI','Bank');not null;default:'Cash'" json:"mode" binding:"required"`
	Notes       string          `gorm:"type:text" json:"notes"`
	CreatedBy   int             `gorm:"default:0" json:"created_by"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type NewPayment struct {
	ClientId    int             `json:"client_id" binding:"required"`
	PaymentDate DateString      `json:"payment_date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Mode        PaymentMode     `json:"mode" binding:"required"`
	Notes       string          `json:"notes"`
}

type PaymentWithClient struct {
	Payment
	Clients *ClientRef `json:"clients,omitempty"`
}

func (input *NewPayment) validate(ctx context.Context) error {
	if err := utils.ValidateResourceId[Client](ctx, input.ClientId); err != nil {
		return utils.NewInputError("client not found")
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return utils.NewInputError("amount must be positive")
	}
	if !input.Mode.Valid() {
		return utils.NewInputError("mode must be Cash, UPI or Bank")
	}
	if input.PaymentDate.IsZero() {
		return utils.NewInputError("payment date is required")
	}
	return nil
}

func CreatePayment(ctx context.Context, input *NewPayment) (*Payment, error) {
	db := config.GetDB()

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	createdBy, _ := utils.GetUserIdFromContext(ctx)
	payment := Payment{
		ClientId:    input.ClientId,
		PaymentDate: input.PaymentDate,
		Amount:      input.Amount,
		Mode:        input.Mode,
		Notes:       input.Notes,
		CreatedBy:   createdBy,
	}

	tx := db.Begin()
	if err := AcquireClientLedgerLock(tx, payment.ClientId); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.WithContext(ctx).Create(&payment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := RecomputeClientBalance(tx.WithContext(ctx), payment.ClientId); err != nil {
		tx.Rollback()
		return nil, err
	}

	ReleaseClientLedgerLock(tx, payment.ClientId)
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	Client{}.RemoveAllRedis()

	return &payment, nil
}

func DeletePayment(ctx context.Context, id int) (*Payment, error) {
	payment, err := utils.FetchModel[Payment](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := AcquireClientLedgerLock(tx, payment.ClientId); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.WithContext(ctx).Delete(&payment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := RecomputeClientBalance(tx.WithContext(ctx), payment.ClientId); err != nil {
		tx.Rollback()
		return nil, err
	}

	ReleaseClientLedgerLock(tx, payment.ClientId)
	if err = tx.Commit().Error; err != nil {
		return nil, err
	}

	Client{}.RemoveAllRedis()

	return payment, nil
}

func GetPayment(ctx context.Context, id int) (*Payment, error) {
	return utils.FetchModel[Payment](ctx, id)
}

type PaymentFilter struct {
	ClientId    int
	Month       string
	BeforeYear  int
	BeforeMonth int
}

func ListPayments(ctx context.Context, filter PaymentFilter) ([]*PaymentWithClient, error) {
	db := config.GetDB()

	query := db.WithContext(ctx).Model(&Payment{})
	if filter.ClientId > 0 {
		query = query.Where("client_id = ?", filter.ClientId)
	}
	if filter.Month != "" {
		monthStart, err := time.Parse("2006-01", filter.Month)
		if err != nil {
			return nil, utils.NewInputError("month must be formatted as 2006-01")
		}
		query = query.Where("payment_date >= ? AND payment_date < ?", monthStart, monthStart.AddDate(0, 1, 0))
	}
	if filter.BeforeYear > 0 && filter.BeforeMonth > 0 {
		before := fmt.Sprintf("%04d-%02d-01", filter.BeforeYear, filter.BeforeMonth)
		query = query.Where("payment_date < ?", before)
	}

	var payments []*Payment
	if err := query.Order("payment_date DESC, id DESC").Find(&payments).Error; err != nil {
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

	results := make([]*PaymentWithClient, 0, len(payments))
	for _, p := range payments {
		row := &PaymentWithClient{Payment: *p}
		if c, ok := byId[p.ClientId]; ok {
			row.Clients = &ClientRef{Name: c.Name}
		}
		results = append(results, row)
	}
	return results, nil
}
