package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ravikant-sharma/shopledger/internal/models"
)

// PostgresLedgerRepository records movements against Postgres. Every record
// operation runs the movement insert and the stock change in one
// transaction, so a failure mid-operation leaves no partial state.
type PostgresLedgerRepository struct {
	db *sql.DB
}

func NewPostgresLedgerRepository(db *sql.DB) *PostgresLedgerRepository {
	return &PostgresLedgerRepository{db: db}
}

func (r *PostgresLedgerRepository) RecordPurchase(productID, qty int, vendor, date string) (models.Purchase, error) {
	if qty <= 0 {
		return models.Purchase{}, ErrInvalidQuantity
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Purchase{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE products SET stock_qty = stock_qty + $1 WHERE id = $2`, qty, productID)
	if err != nil {
		return models.Purchase{}, fmt.Errorf("failed to increment stock: %w", err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Purchase{}, ErrProductNotFound
	}

	p := models.Purchase{ProductID: productID, Qty: qty, Date: date, Vendor: vendor}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO purchases (product_id, qty, date, vendor) VALUES ($1, $2, $3, $4) RETURNING id`,
		productID, qty, date, vendor).Scan(&p.ID)
	if err != nil {
		return models.Purchase{}, fmt.Errorf("failed to insert purchase: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Purchase{}, err
	}
	return p, nil
}

func (r *PostgresLedgerRepository) RecordSale(productID, qty int, customer, paymentMode, date string) (SaleOutcome, error) {
	if qty <= 0 {
		return SaleOutcome{}, ErrInvalidQuantity
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return SaleOutcome{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var sellingPrice float64
	var stock int
	err = tx.QueryRowContext(ctx,
		`SELECT selling_price, stock_qty FROM products WHERE id = $1`, productID).
		Scan(&sellingPrice, &stock)
	if errors.Is(err, sql.ErrNoRows) {
		return SaleOutcome{}, ErrProductNotFound
	}
	if err != nil {
		return SaleOutcome{}, err
	}

	if stock < qty {
		// No write happened; the deferred rollback closes the tx.
		return SaleOutcome{Insufficient: true, Available: stock, StockAfter: stock}, nil
	}

	s := models.Sale{
		ProductID:   productID,
		Qty:         qty,
		Date:        date,
		Customer:    customer,
		PaymentMode: paymentMode,
		TotalAmount: sellingPrice * float64(qty),
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO sales (product_id, qty, date, customer, payment_mode, total_amount)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		s.ProductID, s.Qty, s.Date, s.Customer, s.PaymentMode, s.TotalAmount).Scan(&s.ID)
	if err != nil {
		return SaleOutcome{}, fmt.Errorf("failed to insert sale: %w", err)
	}

	// The guard keeps the decrement conditional even with writers this
	// process does not know about.
	res, err := tx.ExecContext(ctx,
		`UPDATE products SET stock_qty = stock_qty - $1 WHERE id = $2 AND stock_qty >= $1`,
		qty, productID)
	if err != nil {
		return SaleOutcome{}, fmt.Errorf("failed to decrement stock: %w", err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return SaleOutcome{Insufficient: true, Available: stock, StockAfter: stock}, nil
	}

	if err := tx.Commit(); err != nil {
		return SaleOutcome{}, err
	}
	return SaleOutcome{Sale: s, StockAfter: stock - qty}, nil
}

func (r *PostgresLedgerRepository) RecordAdjustment(productID, delta int, reason, date string) (AdjustmentOutcome, error) {
	if delta == 0 {
		return AdjustmentOutcome{}, ErrInvalidQuantity
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return AdjustmentOutcome{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var stock int
	err = tx.QueryRowContext(ctx,
		`SELECT stock_qty FROM products WHERE id = $1`, productID).Scan(&stock)
	if errors.Is(err, sql.ErrNoRows) {
		return AdjustmentOutcome{}, ErrProductNotFound
	}
	if err != nil {
		return AdjustmentOutcome{}, err
	}

	if stock+delta < 0 {
		return AdjustmentOutcome{Insufficient: true, Available: stock, StockAfter: stock}, nil
	}

	a := models.Adjustment{ProductID: productID, Delta: delta, Reason: reason, Date: date}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO adjustments (product_id, delta, reason, date) VALUES ($1, $2, $3, $4) RETURNING id`,
		productID, delta, reason, date).Scan(&a.ID)
	if err != nil {
		return AdjustmentOutcome{}, fmt.Errorf("failed to insert adjustment: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE products SET stock_qty = stock_qty + $1 WHERE id = $2 AND stock_qty + $1 >= 0`,
		delta, productID)
	if err != nil {
		return AdjustmentOutcome{}, fmt.Errorf("failed to adjust stock: %w", err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return AdjustmentOutcome{Insufficient: true, Available: stock, StockAfter: stock}, nil
	}

	if err := tx.Commit(); err != nil {
		return AdjustmentOutcome{}, err
	}
	return AdjustmentOutcome{Adjustment: a, StockAfter: stock + delta}, nil
}

func (r *PostgresLedgerRepository) HasMovements(productID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM purchases WHERE product_id = $1)
		OR EXISTS (SELECT 1 FROM sales WHERE product_id = $1)
		OR EXISTS (SELECT 1 FROM adjustments WHERE product_id = $1)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx, query, productID).Scan(&exists)
	return exists, err
}

func (r *PostgresLedgerRepository) PurchasesByProductID(productID int) ([]models.Purchase, error) {
	query := `SELECT id, product_id, qty, date, vendor FROM purchases
		WHERE product_id = $1 ORDER BY id DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Qty, &p.Date, &p.Vendor); err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

func (r *PostgresLedgerRepository) SalesByProductID(productID int) ([]models.Sale, error) {
	query := `SELECT id, product_id, qty, date, customer, payment_mode, total_amount
		FROM sales WHERE product_id = $1 ORDER BY id DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Qty, &s.Date, &s.Customer,
			&s.PaymentMode, &s.TotalAmount); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
