package repo

import (
	"testing"

	"github.com/ravikant-sharma/shopledger/internal/models"
)

func newTestReports() (*InMemoryProductRepository, *InMemoryLedgerRepository, *InMemoryReportRepository) {
	products, ledger := newTestLedger()
	return products, ledger, NewInMemoryReportRepository(products, ledger)
}

func TestSalesTotalMatchesListing(t *testing.T) {
	products, ledger, reports := newTestReports()
	p := mustCreate(t, products, models.Product{Brand: "Apple", Model: "SE", SellingPrice: 150, StockQty: 20})

	for _, qty := range []int{1, 2, 3} {
		if _, err := ledger.RecordSale(p.ID, qty, "Cust", models.PaymentCash, testDay); err != nil {
			t.Fatalf("record sale: %v", err)
		}
	}
	// A sale on another day must not leak into the listing.
	if _, err := ledger.RecordSale(p.ID, 5, "Cust", models.PaymentCash, "2025-03-11"); err != nil {
		t.Fatalf("record sale: %v", err)
	}

	records, err := reports.SalesByDate(testDay)
	if err != nil {
		t.Fatalf("sales by date: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].ID < records[i].ID {
			t.Errorf("records not ordered most recent first: %d before %d", records[i-1].ID, records[i].ID)
		}
	}

	var sum float64
	for _, rec := range records {
		sum += rec.TotalAmount
	}
	total, err := reports.SalesTotalByDate(testDay)
	if err != nil {
		t.Fatalf("sales total: %v", err)
	}
	if total != sum {
		t.Errorf("total %v does not match listing sum %v", total, sum)
	}
	if total != 900.0 {
		t.Errorf("expected total 900.0, got %v", total)
	}
}

func TestSalesTotalZeroWhenNoSales(t *testing.T) {
	_, _, reports := newTestReports()

	total, err := reports.SalesTotalByDate(testDay)
	if err != nil {
		t.Fatalf("sales total: %v", err)
	}
	if total != 0 {
		t.Errorf("expected 0, got %v", total)
	}
	records, err := reports.SalesByDate(testDay)
	if err != nil {
		t.Fatalf("sales by date: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty listing, got %d records", len(records))
	}
}

func TestTotalStockValue(t *testing.T) {
	products, _, reports := newTestReports()

	value, err := reports.TotalStockValue()
	if err != nil {
		t.Fatalf("total stock value: %v", err)
	}
	if value != 0 {
		t.Errorf("expected 0 with no products, got %v", value)
	}

	mustCreate(t, products, models.Product{Brand: "Apple", Model: "SE", PurchasePrice: 100, StockQty: 3})
	mustCreate(t, products, models.Product{Brand: "Nokia", Model: "105", PurchasePrice: 15.5, StockQty: 10})

	value, err = reports.TotalStockValue()
	if err != nil {
		t.Fatalf("total stock value: %v", err)
	}
	if value != 100*3+15.5*10 {
		t.Errorf("expected 455, got %v", value)
	}
}

func TestStockReportSortedByBrandModel(t *testing.T) {
	products, _, reports := newTestReports()
	mustCreate(t, products, models.Product{Brand: "Samsung", Model: "S24"})
	mustCreate(t, products, models.Product{Brand: "Apple", Model: "SE"})
	mustCreate(t, products, models.Product{Brand: "Samsung", Model: "A14"})

	report, err := reports.StockReport()
	if err != nil {
		t.Fatalf("stock report: %v", err)
	}
	want := []string{"Apple SE", "Samsung A14", "Samsung S24"}
	if len(report) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(report))
	}
	for i, row := range report {
		if row.Brand+" "+row.Model != want[i] {
			t.Errorf("row %d: expected %q, got %q", i, want[i], row.Brand+" "+row.Model)
		}
	}
}

func TestDashboardRecomputesFromLedger(t *testing.T) {
	products, ledger, reports := newTestReports()
	p := mustCreate(t, products, models.Product{Brand: "Apple", Model: "SE", PurchasePrice: 100, SellingPrice: 150})

	if _, err := ledger.RecordPurchase(p.ID, 10, "VendorA", testDay); err != nil {
		t.Fatalf("record purchase: %v", err)
	}
	if _, err := ledger.RecordSale(p.ID, 4, "Cust1", models.PaymentCash, testDay); err != nil {
		t.Fatalf("record sale: %v", err)
	}

	d, err := reports.Dashboard(testDay)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.TodaysSalesTotal != 600.0 {
		t.Errorf("expected sales total 600.0, got %v", d.TodaysSalesTotal)
	}
	if d.TotalStockValue != 600.0 { // 6 units at purchase price 100
		t.Errorf("expected stock value 600.0, got %v", d.TotalStockValue)
	}
	if d.TotalProducts != 1 || d.UnitsInStock != 6 {
		t.Errorf("unexpected dashboard counts: %+v", d)
	}
}

func TestDailySummaries(t *testing.T) {
	products, ledger, reports := newTestReports()
	p := mustCreate(t, products, models.Product{Brand: "Apple", Model: "SE", SellingPrice: 10, StockQty: 100})

	// The 2025-03-10 sales arrive after the 2025-03-11 one; ordering must
	// follow the date, not the insertion order.
	days := []string{"2025-03-11", "2025-03-10", "2025-03-10"}
	for _, day := range days {
		if _, err := ledger.RecordSale(p.ID, 1, "Cust", models.PaymentCash, day); err != nil {
			t.Fatalf("record sale: %v", err)
		}
	}

	summaries, err := reports.DailySummaries()
	if err != nil {
		t.Fatalf("daily summaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 days, got %d", len(summaries))
	}
	if summaries[0].Date != "2025-03-11" || summaries[0].SalesCount != 1 || summaries[0].Total != 10 {
		t.Errorf("unexpected first summary: %+v", summaries[0])
	}
	if summaries[1].Date != "2025-03-10" || summaries[1].SalesCount != 2 || summaries[1].Total != 20 {
		t.Errorf("unexpected second summary: %+v", summaries[1])
	}
}
