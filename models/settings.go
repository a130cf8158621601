package models

import (
	"context"
	"time"

	"github.com/shreeramenterprise/sems_backend/config"
	"github.com/shreeramenterprise/sems_backend/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompanySettings is a singleton row: bank and branding details printed on
// invoices, plus the invoice numbering counter.
type CompanySettings struct {
	ID                int       `gorm:"primary_key" json:"id"`
	CompanyName       string    `gorm:"size:100;not null;default:'Shreeram Enterprise'" json:"company_name"`
	Address           string    `gorm:"type:text" json:"address"`
	Phone             string    `gorm:"size:20" json:"phone"`
	GstNumber         string    `gorm:"size:20" json:"gst_number"`
	BankName          string    `gorm:"size:100" json:"bank_name"`
	AccountNumber     string    `gorm:"size:30" json:"account_number"`
	IfscCode          string    `gorm:"size:20" json:"ifsc_code"`
	UpiId             string    `gorm:"size:100" json:"upi_id"`
	LogoUrl           string    `gorm:"size:255" json:"logo_url"`
	InvoicePrefix     string    `gorm:"size:10;default:''" json:"invoice_prefix"`
	NextInvoiceNumber int64     `gorm:"not null;default:1" json:"next_invoice_number"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CompanySettingsUpdate struct {
	CompanyName       string `json:"company_name"`
	Address           string `json:"address"`
	Phone             string `json:"phone"`
	GstNumber         string `json:"gst_number"`
	BankName          string `json:"bank_name"`
	AccountNumber     string `json:"account_number"`
	IfscCode          string `json:"ifsc_code"`
	UpiId             string `json:"upi_id"`
	LogoUrl           string `json:"logo_url"`
	InvoicePrefix     string `json:"invoice_prefix"`
	NextInvoiceNumber int64  `json:"next_invoice_number"`
}

/*
caches:
	CompanySettings
*/

func (CompanySettings) RemoveInstanceRedis() error {
	return utils.RemoveRedisItem[CompanySettings](1)
}

// GetSettings returns the singleton row, creating the default one if it
// does not exist yet.
func GetSettings(ctx context.Context) (*CompanySettings, error) {
	cached, err := utils.RetrieveRedis[CompanySettings](1)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}

	var settings CompanySettings
	db := config.GetDB()
	err = db.WithContext(ctx).FirstOrCreate(&settings, CompanySettings{ID: 1}).Error
	if err != nil {
		return nil, err
	}

	if err := utils.StoreRedis[CompanySettings](&settings, 1); err != nil {
		return nil, err
	}
	return &settings, nil
}

func UpdateSettings(ctx context.Context, input *CompanySettingsUpdate) (*CompanySettings, error) {
	settings, err := GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	nextInvoiceNumber := settings.NextInvoiceNumber
	if input.NextInvoiceNumber > 0 {
		nextInvoiceNumber = input.NextInvoiceNumber
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&CompanySettings{}).Where("id = ?", settings.ID).
		Updates(map[string]interface{}{
			"CompanyName":       input.CompanyName,
			"Address":           input.Address,
			"Phone":             input.Phone,
			"GstNumber":         input.GstNumber,
			"BankName":          input.BankName,
			"AccountNumber":     input.AccountNumber,
			"IfscCode":          input.IfscCode,
			"UpiId":             input.UpiId,
			"LogoUrl":           input.LogoUrl,
			"InvoicePrefix":     input.InvoicePrefix,
			"NextInvoiceNumber": nextInvoiceNumber,
		}).Error
	if err != nil {
		return nil, err
	}

	CompanySettings{}.RemoveInstanceRedis()

	return GetSettings(ctx)
}

// fetchSettingsForUpdate row-locks the singleton inside the caller's
// transaction (invoice number allocation).
func fetchSettingsForUpdate(tx *gorm.DB) (*CompanySettings, error) {
	var settings CompanySettings
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		FirstOrCreate(&settings, CompanySettings{ID: 1}).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
