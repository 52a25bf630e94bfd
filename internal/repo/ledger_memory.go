package repo

import (
	"sync"

	"github.com/ravikant-sharma/shopledger/internal/models"
)

// InMemoryLedgerRepository is an in-memory implementation of
// LedgerRepository backed by an InMemoryProductRepository for stock state.
// A single mutex serializes whole operations, mirroring the transaction
// boundary of the Postgres implementation.
type InMemoryLedgerRepository struct {
	mu          sync.Mutex
	products    *InMemoryProductRepository
	purchases   []models.Purchase
	sales       []models.Sale
	adjustments []models.Adjustment
	nextID      int
}

func NewInMemoryLedgerRepository(products *InMemoryProductRepository) *InMemoryLedgerRepository {
	return &InMemoryLedgerRepository{
		products: products,
		nextID:   1,
	}
}

func (r *InMemoryLedgerRepository) RecordPurchase(productID, qty int, vendor, date string) (models.Purchase, error) {
	if qty <= 0 {
		return models.Purchase{}, ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, _, err := r.products.adjustStock(productID, qty); err != nil {
		return models.Purchase{}, err
	}

	p := models.Purchase{
		ID:        r.nextID,
		ProductID: productID,
		Qty:       qty,
		Date:      date,
		Vendor:    vendor,
	}
	r.nextID++
	r.purchases = append(r.purchases, p)
	return p, nil
}

func (r *InMemoryLedgerRepository) RecordSale(productID, qty int, customer, paymentMode, date string) (SaleOutcome, error) {
	if qty <= 0 {
		return SaleOutcome{}, ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product, err := r.products.GetByID(productID)
	if err != nil {
		return SaleOutcome{}, err
	}

	before, ok, err := r.products.adjustStock(productID, -qty)
	if err != nil {
		return SaleOutcome{}, err
	}
	if !ok {
		return SaleOutcome{Insufficient: true, Available: before, StockAfter: before}, nil
	}

	s := models.Sale{
		ID:          r.nextID,
		ProductID:   productID,
		Qty:         qty,
		Date:        date,
		Customer:    customer,
		PaymentMode: paymentMode,
		TotalAmount: product.SellingPrice * float64(qty),
	}
	r.nextID++
	r.sales = append(r.sales, s)
	return SaleOutcome{Sale: s, StockAfter: before - qty}, nil
}

func (r *InMemoryLedgerRepository) RecordAdjustment(productID, delta int, reason, date string) (AdjustmentOutcome, error) {
	if delta == 0 {
		return AdjustmentOutcome{}, ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	before, ok, err := r.products.adjustStock(productID, delta)
	if err != nil {
		return AdjustmentOutcome{}, err
	}
	if !ok {
		return AdjustmentOutcome{Insufficient: true, Available: before, StockAfter: before}, nil
	}

	a := models.Adjustment{
		ID:        r.nextID,
		ProductID: productID,
		Delta:     delta,
		Reason:    reason,
		Date:      date,
	}
	r.nextID++
	r.adjustments = append(r.adjustments, a)
	return AdjustmentOutcome{Adjustment: a, StockAfter: before + delta}, nil
}

func (r *InMemoryLedgerRepository) HasMovements(productID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.purchases {
		if p.ProductID == productID {
			return true, nil
		}
	}
	for _, s := range r.sales {
		if s.ProductID == productID {
			return true, nil
		}
	}
	for _, a := range r.adjustments {
		if a.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryLedgerRepository) PurchasesByProductID(productID int) ([]models.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Purchase
	for i := len(r.purchases) - 1; i >= 0; i-- {
		if r.purchases[i].ProductID == productID {
			out = append(out, r.purchases[i])
		}
	}
	return out, nil
}

func (r *InMemoryLedgerRepository) SalesByProductID(productID int) ([]models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Sale
	for i := len(r.sales) - 1; i >= 0; i-- {
		if r.sales[i].ProductID == productID {
			out = append(out, r.sales[i])
		}
	}
	return out, nil
}

// allSales returns sales in insertion order. Used by the in-memory report
// repository.
func (r *InMemoryLedgerRepository) allSales() []models.Sale {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Sale, len(r.sales))
	copy(out, r.sales)
	return out
}

// Clear removes all movements. Test helper.
func (r *InMemoryLedgerRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases = nil
	r.sales = nil
	r.adjustments = nil
	r.nextID = 1
}
