package repo

import (
	"context"
	"database/sql"
	"time"
)

// PostgresReportRepository runs the read-only aggregation queries. It never
// mutates state; derived figures are recomputed from the ledger tables on
// every call.
type PostgresReportRepository struct {
	db *sql.DB
}

func NewPostgresReportRepository(db *sql.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

func (r *PostgresReportRepository) SalesByDate(date string) ([]SaleRecord, error) {
	query := `SELECT s.id, s.product_id, p.brand, p.model, s.qty, s.total_amount,
			s.customer, s.payment_mode, s.date
		FROM sales s JOIN products p ON s.product_id = p.id
		WHERE s.date = $1
		ORDER BY s.id DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []SaleRecord{}
	for rows.Next() {
		var rec SaleRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Brand, &rec.Model,
			&rec.Qty, &rec.TotalAmount, &rec.Customer, &rec.PaymentMode, &rec.Date); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresReportRepository) SalesTotalByDate(date string) (float64, error) {
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE date = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total float64
	err := r.db.QueryRowContext(ctx, query, date).Scan(&total)
	return total, err
}

func (r *PostgresReportRepository) DailySummaries() ([]DailySalesSummary, error) {
	query := `SELECT date, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sales GROUP BY date ORDER BY date DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []DailySalesSummary{}
	for rows.Next() {
		var s DailySalesSummary
		if err := rows.Scan(&s.Date, &s.SalesCount, &s.Total); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *PostgresReportRepository) StockReport() ([]StockRow, error) {
	query := `SELECT id, brand, model, imei, purchase_price, selling_price, stock_qty
		FROM products ORDER BY brand, model`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := []StockRow{}
	for rows.Next() {
		var row StockRow
		if err := rows.Scan(&row.ID, &row.Brand, &row.Model, &row.IMEI,
			&row.PurchasePrice, &row.SellingPrice, &row.StockQty); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

func (r *PostgresReportRepository) TotalStockValue() (float64, error) {
	query := `SELECT COALESCE(SUM(purchase_price * stock_qty), 0) FROM products`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var value float64
	err := r.db.QueryRowContext(ctx, query).Scan(&value)
	return value, err
}

func (r *PostgresReportRepository) Dashboard(date string) (DashboardSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var d DashboardSummary
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE date = $1`, date).
		Scan(&d.TodaysSalesTotal)
	if err != nil {
		return DashboardSummary{}, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(purchase_price * stock_qty), 0), COALESCE(SUM(stock_qty), 0)
		 FROM products`).
		Scan(&d.TotalProducts, &d.TotalStockValue, &d.UnitsInStock)
	if err != nil {
		return DashboardSummary{}, err
	}
	return d, nil
}
