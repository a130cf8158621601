package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shreeramenterprise/sems_backend/config"
	"github.com/shreeramenterprise/sems_backend/utils"
)

type Client struct {
	ID             int             `gorm:"primary_key" json:"id"`
	Name           string          `gorm:"size:100;not null;uniqueIndex" json:"name" binding:"required"`
	City           string          `gorm:"size:100;not null" json:"city" binding:"required"`
	Phone          string          `gorm:"size:20;not null" json:"phone" binding:"required"`
	Address        string          `gorm:"type:text" json:"address"`
	State          string          `gorm:"size:100" json:"state"`
	Pincode        string          `gorm:"size:10" json:"pincode"`
	GstNumber      string          `gorm:"size:20" json:"gst_number"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"opening_balance"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"current_balance"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewClient struct {
	Name           string          `json:"name" binding:"required"`
	City           string          `json:"city" binding:"required"`
	Phone          string          `json:"phone" binding:"required"`
	Address        string          `json:"address"`
	State          string          `json:"state"`
	Pincode        string          `json:"pincode"`
	GstNumber      string          `json:"gst_number"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// ClientRef is the denormalized client snippet embedded in order, payment
// and invoice list responses.
type ClientRef struct {
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

/*
caches:
	ClientList
*/

func (client Client) RemoveAllRedis() error {
	return utils.RemoveRedisList[Client]()
}

func (input *NewClient) validate(ctx context.Context, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[Client](ctx, id); err != nil {
			return err
		}
	}
	// validate unique name
	if err := utils.ValidateUnique[Client](ctx, "name", input.Name, id); err != nil {
		return err
	}
	// validate phone
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return utils.NewInputError("invalid phone number")
		}
	}
	return nil
}

func CreateClient(ctx context.Context, input *NewClient) (*Client, error) {
	db := config.GetDB()

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	client := Client{
		Name:           input.Name,
		City:           input.City,
		Phone:          input.Phone,
		Address:        input.Address,
		State:          input.State,
		Pincode:        input.Pincode,
		GstNumber:      input.GstNumber,
		OpeningBalance: input.OpeningBalance,
		// no orders or payments exist yet
		CurrentBalance: input.OpeningBalance,
	}

	if err := db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	client.RemoveAllRedis()

	return &client, nil
}

func UpdateClient(ctx context.Context, id int, input *NewClient) (*Client, error) {
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	client, err := utils.FetchModel[Client](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	err = tx.WithContext(ctx).Model(&client).Updates(map[string]interface{}{
		"Name":           input.Name,
		"City":           input.City,
		"Phone":          input.Phone,
		"Address":        input.Address,
		"State":          input.State,
		"Pincode":        input.Pincode,
		"GstNumber":      input.GstNumber,
		"OpeningBalance": input.OpeningBalance,
	}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// opening balance feeds the running balance, so re-derive it
	if err := RecomputeClientBalance(tx.WithContext(ctx), id); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err = tx.Commit().Error; err != nil {
		return nil, err
	}

	client.RemoveAllRedis()

	return utils.FetchModel[Client](ctx, id)
}

func DeleteClient(ctx context.Context, id int) (*Client, error) {
	client, err := utils.FetchModel[Client](ctx, id)
	if err != nil {
		return nil, err
	}

	// refuse while ledger documents still reference the client
	orderCount, err := utils.ResourceCountWhere[Order](ctx, "client_id = ?", id)
	if err != nil {
		return nil, err
	}
	paymentCount, err := utils.ResourceCountWhere[Payment](ctx, "client_id = ?", id)
	if err != nil {
		return nil, err
	}
	invoiceCount, err := utils.ResourceCountWhere[Invoice](ctx, "client_id = ?", id)
	if err != nil {
		return nil, err
	}
	if orderCount+paymentCount+invoiceCount > 0 {
		return nil, utils.NewInputError("client has orders, payments or invoices and cannot be deleted")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&client).Error; err != nil {
		return nil, err
	}

	client.RemoveAllRedis()

	return client, nil
}

func GetClient(ctx context.Context, id int) (*Client, error) {
	return utils.FetchModel[Client](ctx, id)
}

func GetAllClients(ctx context.Context) ([]*Client, error) {
	results, err := utils.RetrieveRedisList[Client]()
	if err != nil {
		return nil, err
	}
	if results == nil {
		results, err = utils.FetchAllModels[Client](ctx)
		if err != nil {
			return nil, err
		}
		if err := utils.StoreRedisList[Client](results); err != nil {
			return nil, err
		}
	}
	return results, nil
}
