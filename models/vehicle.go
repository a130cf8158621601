package models

import (
	"context"
	"time"

	"github.com/shreeramenterprise/sems_backend/config"
	"github.com/shreeramenterprise/sems_backend/utils"
)

type Vehicle struct {
	ID            int       `gorm:"primary_key" json:"id"`
	VehicleNumber string    `gorm:"size:50;not null;uniqueIndex" json:"vehicle_number" binding:"required"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type NewVehicle struct {
	VehicleNumber string `json:"vehicle_number" binding:"required"`
}

func CreateVehicle(ctx context.Context, input *NewVehicle) (*Vehicle, error) {
	db := config.GetDB()

	if err := utils.ValidateUnique[Vehicle](ctx, "vehicle_number", input.VehicleNumber, 0); err != nil {
		return nil, err
	}

	vehicle := Vehicle{VehicleNumber: input.VehicleNumber}
	if err := db.WithContext(ctx).Create(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func DeleteVehicle(ctx context.Context, id int) (*Vehicle, error) {
	vehicle, err := utils.FetchModel[Vehicle](ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func ListVehicles(ctx context.Context) ([]*Vehicle, error) {
	db := config.GetDB()
	var vehicles []*Vehicle
	if err := db.WithContext(ctx).Order("vehicle_number ASC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}
