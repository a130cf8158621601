package models

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shreeramenterprise/sems_backend/config"
	"github.com/shreeramenterprise/sems_backend/utils"
)

// MaterialRate is the current price per unit weight for a material. It only
// prefills the rate field at order entry; existing orders keep the rate they
// were created with.
type MaterialRate struct {
	ID        int             `gorm:"primary_key" json:"id"`
	Material  string          `gorm:"size:50;not null;uniqueIndex" json:"material" binding:"required"`
	Rate      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"rate"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewMaterialRate struct {
	Material string          `json:"material" binding:"required"`
	Rate     decimal.Decimal `json:"rate"`
}

func CreateMaterialRate(ctx context.Context, input *NewMaterialRate) (*MaterialRate, error) {
	db := config.GetDB()

	if err := utils.ValidateUnique[MaterialRate](ctx, "material", input.Material, 0); err != nil {
		return nil, err
	}
	if input.Rate.IsNegative() {
		return nil, utils.NewInputError("rate cannot be negative")
	}

	rate := MaterialRate{
		Material: input.Material,
		Rate:     input.Rate,
	}
	if err := db.WithContext(ctx).Create(&rate).Error; err != nil {
		return nil, err
	}
	return &rate, nil
}

// UpdateMaterialRate updates by id, or resolves the id by material name
// (case-insensitive) when the caller only knows the name.
func UpdateMaterialRate(ctx context.Context, id int, input *NewMaterialRate) (*MaterialRate, error) {
	db := config.GetDB()

	if input.Rate.IsNegative() {
		return nil, utils.NewInputError("rate cannot be negative")
	}

	if id == 0 {
		var existing MaterialRate
		err := db.WithContext(ctx).
			Where("LOWER(material) = ?", strings.ToLower(input.Material)).
			First(&existing).Error
		if err != nil {
			return nil, utils.ErrorRecordNotFound
		}
		id = existing.ID
	}

	rate, err := utils.FetchModel[MaterialRate](ctx, id)
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).Model(&rate).Updates(map[string]interface{}{
		"Material": input.Material,
		"Rate":     input.Rate,
	}).Error
	if err != nil {
		return nil, err
	}

	return utils.FetchModel[MaterialRate](ctx, id)
}

func DeleteMaterialRate(ctx context.Context, id int) (*MaterialRate, error) {
	rate, err := utils.FetchModel[MaterialRate](ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&rate).Error; err != nil {
		return nil, err
	}
	return rate, nil
}

func ListMaterialRates(ctx context.Context) ([]*MaterialRate, error) {
	db := config.GetDB()
	var rates []*MaterialRate
	if err := db.WithContext(ctx).Order("material ASC").Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}
