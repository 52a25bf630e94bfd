package repo

import "github.com/ravikant-sharma/shopledger/internal/models"

// SaleOutcome is the result of an outward movement. Insufficient stock is a
// first-class outcome, not an error: Insufficient is set and Available
// carries the stock quantity at the time of the attempt so the caller can
// report it. On success the recorded sale and the remaining stock are set.
type SaleOutcome struct {
	Sale         models.Sale
	StockAfter   int
	Insufficient bool
	Available    int
}

// AdjustmentOutcome mirrors SaleOutcome for manual corrections: a negative
// delta larger than the available stock is refused without writing.
type AdjustmentOutcome struct {
	Adjustment   models.Adjustment
	StockAfter   int
	Insufficient bool
	Available    int
}

// LedgerRepository records stock movements. Each record operation inserts
// the movement row and applies the stock delta in one atomic unit of work,
// so a failure mid-operation leaves both or neither applied.
type LedgerRepository interface {
	// RecordPurchase inserts an inward movement and increments stock.
	// qty must be positive; date must be a YYYY-MM-DD calendar day.
	RecordPurchase(productID, qty int, vendor, date string) (models.Purchase, error)

	// RecordSale inserts an outward movement priced at the product's
	// current selling price and decrements stock, refusing without any
	// write when stock is insufficient.
	RecordSale(productID, qty int, customer, paymentMode, date string) (SaleOutcome, error)

	// RecordAdjustment inserts a manual correction with a reason. Delta
	// may be negative but may not take stock below zero.
	RecordAdjustment(productID, delta int, reason, date string) (AdjustmentOutcome, error)

	// HasMovements reports whether any ledger row references the product.
	HasMovements(productID int) (bool, error)

	// PurchasesByProductID returns the inward history, most recent first.
	PurchasesByProductID(productID int) ([]models.Purchase, error)

	// SalesByProductID returns the outward history, most recent first.
	SalesByProductID(productID int) ([]models.Sale, error)
}
