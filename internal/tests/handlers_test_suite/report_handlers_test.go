package handlers_test_suite

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/ravikant-sharma/shopledger/internal/http"
	handler "github.com/ravikant-sharma/shopledger/internal/http/handlers"
	"github.com/ravikant-sharma/shopledger/internal/repo"
)

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDashboardHandler_EmptyLedger(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := get(r, "/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var d repo.DashboardSummary
	if err := json.NewDecoder(w.Body).Decode(&d); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if d.TodaysSalesTotal != 0 || d.TotalStockValue != 0 || d.TotalProducts != 0 {
		t.Errorf("expected zeroed dashboard, got %+v", d)
	}
}

func TestDashboardHandler_AfterMovements(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{
		Brand: "Apple", Model: "SE", PurchasePrice: 100, SellingPrice: 150,
	})
	recordPurchase(r, created.Id, handler.PurchaseRequest{Qty: 10, Vendor: "VendorA"})
	recordSale(r, created.Id, handler.SaleRequest{Qty: 4, Customer: "Cust1", PaymentMode: "Cash"})

	w := get(r, "/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var d repo.DashboardSummary
	if err := json.NewDecoder(w.Body).Decode(&d); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if d.TodaysSalesTotal != 600.0 {
		t.Errorf("expected sales total 600.0, got %v", d.TodaysSalesTotal)
	}
	if d.TotalStockValue != 600.0 {
		t.Errorf("expected stock value 600.0, got %v", d.TotalStockValue)
	}
	if d.UnitsInStock != 6 {
		t.Errorf("expected 6 units in stock, got %d", d.UnitsInStock)
	}
}

func TestTodaysSalesHandler_OrderAndTotal(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{
		Brand: "Apple", Model: "SE", SellingPrice: 150, InitialQty: 20,
	})
	recordSale(r, created.Id, handler.SaleRequest{Qty: 1, Customer: "Cust1", PaymentMode: "Cash"})
	recordSale(r, created.Id, handler.SaleRequest{Qty: 2, Customer: "Cust2", PaymentMode: "Card"})

	w := get(r, "/reports/sales/today")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var records []repo.SaleRecord
	if err := json.NewDecoder(w.Body).Decode(&records); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(records))
	}
	if records[0].Customer != "Cust2" {
		t.Errorf("expected most recent sale first, got %+v", records[0])
	}
	if records[0].Brand != "Apple" || records[0].Model != "SE" {
		t.Errorf("expected joined product fields, got %+v", records[0])
	}

	var sum float64
	for _, rec := range records {
		sum += rec.TotalAmount
	}
	if sum != 450.0 {
		t.Errorf("expected listing sum 450.0, got %v", sum)
	}
}

func TestSalesByDateHandler_InvalidDate(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := get(r, "/reports/sales?date=not-a-date")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSalesByDateHandler_FiltersByDay(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{
		Brand: "Apple", Model: "SE", SellingPrice: 10, InitialQty: 10,
	})
	recordSale(r, created.Id, handler.SaleRequest{Qty: 1, Customer: "Cust1", PaymentMode: "Cash", Date: "2025-03-10"})
	recordSale(r, created.Id, handler.SaleRequest{Qty: 1, Customer: "Cust2", PaymentMode: "Cash", Date: "2025-03-11"})

	w := get(r, "/reports/sales?date=2025-03-10")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var records []repo.SaleRecord
	if err := json.NewDecoder(w.Body).Decode(&records); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(records) != 1 || records[0].Customer != "Cust1" {
		t.Errorf("expected only the 2025-03-10 sale, got %+v", records)
	}
}

func TestDailySalesSummaryHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{
		Brand: "Apple", Model: "SE", SellingPrice: 10, InitialQty: 10,
	})
	recordSale(r, created.Id, handler.SaleRequest{Qty: 1, PaymentMode: "Cash", Date: "2025-03-10"})
	recordSale(r, created.Id, handler.SaleRequest{Qty: 2, PaymentMode: "Cash", Date: "2025-03-10"})
	recordSale(r, created.Id, handler.SaleRequest{Qty: 3, PaymentMode: "Cash", Date: "2025-03-11"})

	w := get(r, "/reports/sales/daily")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var summaries []repo.DailySalesSummary
	if err := json.NewDecoder(w.Body).Decode(&summaries); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 days, got %d", len(summaries))
	}
	if summaries[0].Date != "2025-03-11" || summaries[0].Total != 30 {
		t.Errorf("unexpected first summary: %+v", summaries[0])
	}
	if summaries[1].SalesCount != 2 || summaries[1].Total != 30 {
		t.Errorf("unexpected second summary: %+v", summaries[1])
	}
}

func TestStockReportHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{
		Brand: "Samsung", Model: "A14", PurchasePrice: 9500, SellingPrice: 11999, InitialQty: 3,
	})
	mustCreateProduct(r, handler.ProductRequest{
		Brand: "Apple", Model: "SE", PurchasePrice: 30000, SellingPrice: 35000, InitialQty: 1,
	})

	w := get(r, "/reports/stock")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var report []repo.StockRow
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report))
	}
	if report[0].Brand != "Apple" {
		t.Errorf("expected Apple first, got %+v", report[0])
	}
}

func TestExportStockReportHandler_CSV(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{
		Brand: "Samsung", Model: "A14", PurchasePrice: 9500, SellingPrice: 11999, InitialQty: 3,
	})

	w := get(r, "/reports/stock/export?format=csv")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %q", ct)
	}

	rows, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("error parsing CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][1] != "Brand" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "Samsung" || rows[1][4] != "9500.00" {
		t.Errorf("unexpected data row: %v", rows[1])
	}
}

func TestExportStockReportHandler_InvalidFormat(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := get(r, "/reports/stock/export?format=pdf")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestExportSalesHandler_XLSX(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{
		Brand: "Apple", Model: "SE", SellingPrice: 150, InitialQty: 5,
	})
	recordSale(r, created.Id, handler.SaleRequest{Qty: 1, Customer: "Cust1", PaymentMode: "Cash", Date: "2025-03-10"})

	w := get(r, "/reports/sales/export?date=2025-03-10&format=xlsx")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	ct := w.Header().Get("Content-Type")
	if !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("expected xlsx content type, got %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("expected non-empty workbook body")
	}
}
