package repo

import "sort"

// InMemoryReportRepository derives report figures from the in-memory
// product and ledger repositories, mirroring the SQL aggregations.
type InMemoryReportRepository struct {
	products *InMemoryProductRepository
	ledger   *InMemoryLedgerRepository
}

func NewInMemoryReportRepository(products *InMemoryProductRepository, ledger *InMemoryLedgerRepository) *InMemoryReportRepository {
	return &InMemoryReportRepository{products: products, ledger: ledger}
}

func (r *InMemoryReportRepository) SalesByDate(date string) ([]SaleRecord, error) {
	sales := r.ledger.allSales()

	records := []SaleRecord{}
	// Most recent sale first, matching ORDER BY id DESC.
	for i := len(sales) - 1; i >= 0; i-- {
		s := sales[i]
		if s.Date != date {
			continue
		}
		rec := SaleRecord{
			ID:          s.ID,
			ProductID:   s.ProductID,
			Qty:         s.Qty,
			TotalAmount: s.TotalAmount,
			Customer:    s.Customer,
			PaymentMode: s.PaymentMode,
			Date:        s.Date,
		}
		if p, err := r.products.GetByID(s.ProductID); err == nil {
			rec.Brand = p.Brand
			rec.Model = p.Model
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *InMemoryReportRepository) SalesTotalByDate(date string) (float64, error) {
	var total float64
	for _, s := range r.ledger.allSales() {
		if s.Date == date {
			total += s.TotalAmount
		}
	}
	return total, nil
}

func (r *InMemoryReportRepository) DailySummaries() ([]DailySalesSummary, error) {
	totals := map[string]*DailySalesSummary{}
	for _, s := range r.ledger.allSales() {
		summary, ok := totals[s.Date]
		if !ok {
			summary = &DailySalesSummary{Date: s.Date}
			totals[s.Date] = summary
		}
		summary.SalesCount++
		summary.Total += s.TotalAmount
	}

	summaries := []DailySalesSummary{}
	for _, summary := range totals {
		summaries = append(summaries, *summary)
	}
	// Most recent day first; lexicographic order works for YYYY-MM-DD dates.
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date > summaries[j].Date
	})
	return summaries, nil
}

func (r *InMemoryReportRepository) StockReport() ([]StockRow, error) {
	products, err := r.products.GetAll()
	if err != nil {
		return nil, err
	}

	report := []StockRow{}
	for _, p := range products {
		report = append(report, StockRow{
			ID:            p.ID,
			Brand:         p.Brand,
			Model:         p.Model,
			IMEI:          p.IMEI,
			PurchasePrice: p.PurchasePrice,
			SellingPrice:  p.SellingPrice,
			StockQty:      p.StockQty,
		})
	}
	return report, nil
}

func (r *InMemoryReportRepository) TotalStockValue() (float64, error) {
	products, err := r.products.GetAll()
	if err != nil {
		return 0, err
	}

	var value float64
	for _, p := range products {
		value += p.PurchasePrice * float64(p.StockQty)
	}
	return value, nil
}

func (r *InMemoryReportRepository) Dashboard(date string) (DashboardSummary, error) {
	d := DashboardSummary{}

	total, err := r.SalesTotalByDate(date)
	if err != nil {
		return d, err
	}
	d.TodaysSalesTotal = total

	products, err := r.products.GetAll()
	if err != nil {
		return d, err
	}
	d.TotalProducts = len(products)
	for _, p := range products {
		d.TotalStockValue += p.PurchasePrice * float64(p.StockQty)
		d.UnitsInStock += p.StockQty
	}
	return d, nil
}
