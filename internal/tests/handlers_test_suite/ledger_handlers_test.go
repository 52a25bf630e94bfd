package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	api "github.com/ravikant-sharma/shopledger/internal/http"
	handler "github.com/ravikant-sharma/shopledger/internal/http/handlers"
)

func TestRecordPurchaseHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Brand: "Samsung", Model: "A14"})

	w := recordPurchase(r, created.Id, handler.PurchaseRequest{Qty: 10, Vendor: "VendorA"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.PurchaseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Qty != 10 || resp.Vendor != "VendorA" || resp.Date == "" {
		t.Errorf("unexpected purchase: %+v", resp)
	}

	product, _ := productRepo.GetByID(created.Id)
	if product.StockQty != 10 {
		t.Errorf("expected stock 10, got %d", product.StockQty)
	}
}

func TestRecordPurchaseHandler_InvalidQty(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Brand: "Samsung", Model: "A14"})

	for _, qty := range []int{0, -5} {
		w := recordPurchase(r, created.Id, handler.PurchaseRequest{Qty: qty, Vendor: "VendorA"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("qty %d: expected 400, got %d", qty, w.Code)
		}
	}
}

func TestRecordPurchaseHandler_UnknownProduct(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := recordPurchase(r, 999, handler.PurchaseRequest{Qty: 1, Vendor: "VendorA"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

// The dashboard scenario: purchase 10, sell 4 at 150, then try to sell 10.
func TestSaleFlow(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{
		Brand: "Apple", Model: "SE", PurchasePrice: 100, SellingPrice: 150,
	})

	if w := recordPurchase(r, created.Id, handler.PurchaseRequest{Qty: 10, Vendor: "VendorA"}); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 recording purchase, got %d", w.Code)
	}

	w := recordSale(r, created.Id, handler.SaleRequest{Qty: 4, Customer: "Cust1", PaymentMode: "Cash"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 recording sale, got %d: %s", w.Code, w.Body.String())
	}
	var sale handler.SaleResponse
	if err := json.NewDecoder(w.Body).Decode(&sale); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if sale.TotalAmount != 600.0 {
		t.Errorf("expected total 600.0, got %v", sale.TotalAmount)
	}
	if sale.StockQty != 6 {
		t.Errorf("expected stock 6, got %d", sale.StockQty)
	}

	w = recordSale(r, created.Id, handler.SaleRequest{Qty: 10, Customer: "Cust2", PaymentMode: "Cash"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on oversell, got %d", w.Code)
	}
	var refused handler.InsufficientStockResponse
	if err := json.NewDecoder(w.Body).Decode(&refused); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if refused.Available != 6 || refused.Requested != 10 {
		t.Errorf("unexpected refusal: %+v", refused)
	}

	product, _ := productRepo.GetByID(created.Id)
	if product.StockQty != 6 {
		t.Errorf("stock changed on refused sale: %d", product.StockQty)
	}
}

func TestRecordSaleHandler_ExactStock(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Brand: "Nokia", Model: "105", SellingPrice: 20, InitialQty: 3})

	w := recordSale(r, created.Id, handler.SaleRequest{Qty: 3, Customer: "Cust1", PaymentMode: "UPI"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var sale handler.SaleResponse
	if err := json.NewDecoder(w.Body).Decode(&sale); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if sale.StockQty != 0 {
		t.Errorf("expected stock 0, got %d", sale.StockQty)
	}
}

func TestRecordSaleHandler_Validation(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Brand: "Nokia", Model: "105", InitialQty: 5})

	tests := []struct {
		name    string
		payload handler.SaleRequest
	}{
		{"Zero quantity", handler.SaleRequest{Qty: 0, PaymentMode: "Cash"}},
		{"Negative quantity", handler.SaleRequest{Qty: -2, PaymentMode: "Cash"}},
		{"Unknown payment mode", handler.SaleRequest{Qty: 1, PaymentMode: "Cheque"}},
		{"Bad date", handler.SaleRequest{Qty: 1, PaymentMode: "Cash", Date: "10-03-2025"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := recordSale(r, created.Id, tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestRecordSaleHandler_UnknownProduct(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := recordSale(r, 999, handler.SaleRequest{Qty: 1, Customer: "Cust1", PaymentMode: "Cash"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRecordAdjustmentHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Brand: "Samsung", Model: "A14", InitialQty: 5})

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/products/%d/adjustments", created.Id),
		handler.AdjustmentRequest{Delta: -2, Reason: "damaged units written off"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp handler.AdjustmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.StockQty != 3 || resp.Reason != "damaged units written off" {
		t.Errorf("unexpected adjustment: %+v", resp)
	}

	// Below-zero correction is refused.
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/products/%d/adjustments", created.Id),
		handler.AdjustmentRequest{Delta: -10, Reason: "recount"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}

	// Zero delta is rejected at the boundary.
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/products/%d/adjustments", created.Id),
		handler.AdjustmentRequest{Delta: 0, Reason: "noop"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetPurchasesHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Brand: "Samsung", Model: "A14"})
	recordPurchase(r, created.Id, handler.PurchaseRequest{Qty: 2, Vendor: "VendorA"})
	recordPurchase(r, created.Id, handler.PurchaseRequest{Qty: 3, Vendor: "VendorB"})

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d/purchases", created.Id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []handler.PurchaseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 purchases, got %d", len(resp))
	}
	if resp[0].Vendor != "VendorB" {
		t.Errorf("expected most recent purchase first, got %+v", resp[0])
	}
}
