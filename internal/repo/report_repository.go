package repo

// SaleRecord is a sale joined with its product for reporting.
type SaleRecord struct {
	ID          int     `json:"id"`
	ProductID   int     `json:"product_id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Qty         int     `json:"qty"`
	TotalAmount float64 `json:"total_amount"`
	Customer    string  `json:"customer"`
	PaymentMode string  `json:"payment_mode"`
	Date        string  `json:"date"`
}

// StockRow is one product line of the stock report.
type StockRow struct {
	ID            int     `json:"id"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	IMEI          string  `json:"imei"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	StockQty      int     `json:"stock_qty"`
}

// DailySalesSummary aggregates one calendar day of sales.
type DailySalesSummary struct {
	Date       string  `json:"date"`
	SalesCount int     `json:"sales_count"`
	Total      float64 `json:"total"`
}

// DashboardSummary carries the figures shown on the dashboard. It is
// recomputed from the ledger on every request; nothing is cached in the
// application between operations.
type DashboardSummary struct {
	TodaysSalesTotal float64 `json:"todays_sales_total"`
	TotalStockValue  float64 `json:"total_stock_value"`
	TotalProducts    int     `json:"total_products"`
	UnitsInStock     int     `json:"units_in_stock"`
}

// ReportRepository exposes read-only aggregation queries over the ledger.
type ReportRepository interface {
	// SalesByDate lists sales for one calendar day, most recent first.
	SalesByDate(date string) ([]SaleRecord, error)

	// SalesTotalByDate sums total_amount for one day, 0 when none.
	SalesTotalByDate(date string) (float64, error)

	// DailySummaries lists per-day sales totals, most recent day first.
	DailySummaries() ([]DailySalesSummary, error)

	// StockReport lists all products sorted by (brand, model).
	StockReport() ([]StockRow, error)

	// TotalStockValue sums purchase_price * stock_qty over all products,
	// 0 when no products exist.
	TotalStockValue() (float64, error)

	// Dashboard computes the dashboard figures for the given day.
	Dashboard(date string) (DashboardSummary, error)
}
