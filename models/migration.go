package models

import (
	"log"

	"github.com/shreeramenterprise/sems_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Client{},
		&Order{}, &Payment{},
		&Invoice{}, &InvoiceItem{},
		&MaterialRate{}, &Vehicle{},
		&CompanySettings{},
		&User{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
