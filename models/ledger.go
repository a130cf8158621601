package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// The client's running balance is never adjusted by deltas. Every order or
// payment mutation re-derives it inside the same transaction:
//
//	current_balance = opening_balance + Σ(order totals) − Σ(payment amounts)
//
// Re-derivation is serialized per client with a MySQL advisory lock so two
// sessions editing the same client's ledger cannot interleave.

// AcquireClientLedgerLock serializes ledger writes per client across instances.
// NOTE: GET_LOCK is connection-scoped, so this must be called on the same
// *gorm.DB that will run the ledger transaction.
func AcquireClientLedgerLock(tx *gorm.DB, clientId int) error {
	lockName := fmt.Sprintf("ledger:client:%d", clientId)
	var ok int
	if err := tx.Raw("SELECT GET_LOCK(?, 30)", lockName).Scan(&ok).Error; err != nil {
		return err
	}
	if ok != 1 {
		return fmt.Errorf("could not acquire ledger lock for client_id=%d", clientId)
	}
	return nil
}

func ReleaseClientLedgerLock(tx *gorm.DB, clientId int) {
	lockName := fmt.Sprintf("ledger:client:%d", clientId)
	var _ok int
	_ = tx.Raw("SELECT RELEASE_LOCK(?)", lockName).Scan(&_ok).Error
}

// ComputeClientBalance is the pure form of the ledger invariant.
func ComputeClientBalance(openingBalance decimal.Decimal, orderTotals []decimal.Decimal, paymentAmounts []decimal.Decimal) decimal.Decimal {
	balance := openingBalance
	for _, t := range orderTotals {
		balance = balance.Add(t)
	}
	for _, a := range paymentAmounts {
		balance = balance.Sub(a)
	}
	return balance
}

// RecomputeClientBalance re-derives current_balance from the order and
// payment tables and writes it back. Must run inside the caller's
// transaction, after the caller's own writes.
func RecomputeClientBalance(tx *gorm.DB, clientId int) error {
	var client Client
	if err := tx.First(&client, clientId).Error; err != nil {
		return err
	}

	var ordersTotal decimal.Decimal
	if err := tx.Model(&Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("client_id = ?", clientId).
		Scan(&ordersTotal).Error; err != nil {
		return err
	}

	var paymentsTotal decimal.Decimal
	if err := tx.Model(&Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("client_id = ?", clientId).
		Scan(&paymentsTotal).Error; err != nil {
		return err
	}

	balance := client.OpeningBalance.Add(ordersTotal).Sub(paymentsTotal)
	return tx.Model(&Client{}).Where("id = ?", clientId).
		Update("current_balance", balance).Error
}
