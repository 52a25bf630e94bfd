package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	repo "github.com/ravikant-sharma/shopledger/internal/repo"
)

// RecordPurchaseHandler godoc
// @Summary Record an inward stock movement
// @Description Inserts a purchase row and increments the product's stock in one transaction.
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param purchase body PurchaseRequest true "Quantity and vendor"
// @Success 201 {object} PurchaseResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/purchases [post]
func RecordPurchaseHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Qty <= 0 {
		http.Error(w, "quantity must be greater than zero", http.StatusBadRequest)
		return
	}
	if req.Date != "" && !validDate(req.Date) {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	purchase, err := ledgerRepo.RecordPurchase(id, req.Qty, req.Vendor, movementDate(req.Date))
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrInvalidQuantity):
			http.Error(w, "quantity must be greater than zero", http.StatusBadRequest)
		default:
			log.Printf("could not record purchase for product %d: %v", id, err)
			http.Error(w, "could not record purchase", http.StatusInternalServerError)
		}
		return
	}
	invalidateReports()

	writeJSON(w, http.StatusCreated, PurchaseResponse{
		ID:        purchase.ID,
		ProductID: purchase.ProductID,
		Qty:       purchase.Qty,
		Vendor:    purchase.Vendor,
		Date:      purchase.Date,
	})
}

// RecordSaleHandler godoc
// @Summary Record an outward stock movement
// @Description Prices the sale at the product's current selling price and decrements stock atomically. Insufficient stock returns 409 with the available quantity; nothing is written.
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param sale body SaleRequest true "Quantity, customer and payment mode"
// @Success 201 {object} SaleResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Product not found"
// @Failure 409 {object} InsufficientStockResponse
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/sales [post]
func RecordSaleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSale(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	outcome, err := ledgerRepo.RecordSale(id, req.Qty, req.Customer, req.PaymentMode, movementDate(req.Date))
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrInvalidQuantity):
			http.Error(w, "quantity must be greater than zero", http.StatusBadRequest)
		default:
			log.Printf("could not record sale for product %d: %v", id, err)
			http.Error(w, "could not record sale", http.StatusInternalServerError)
		}
		return
	}

	if outcome.Insufficient {
		writeJSON(w, http.StatusConflict, InsufficientStockResponse{
			Error:     "insufficient stock",
			Available: outcome.Available,
			Requested: req.Qty,
		})
		return
	}
	invalidateReports()

	writeJSON(w, http.StatusCreated, SaleResponse{
		ID:          outcome.Sale.ID,
		ProductID:   outcome.Sale.ProductID,
		Qty:         outcome.Sale.Qty,
		Customer:    outcome.Sale.Customer,
		PaymentMode: outcome.Sale.PaymentMode,
		TotalAmount: outcome.Sale.TotalAmount,
		StockQty:    outcome.StockAfter,
		Date:        outcome.Sale.Date,
	})
}

// RecordAdjustmentHandler godoc
// @Summary Record a manual stock correction
// @Description Manual corrections are ledger rows with a reason, never silent overwrites, so stock stays derivable from movement history. A negative delta may not take stock below zero.
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param adjustment body AdjustmentRequest true "Delta and reason"
// @Success 201 {object} AdjustmentResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 409 {object} InsufficientStockResponse
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/adjustments [post]
func RecordAdjustmentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req AdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Delta == 0 {
		http.Error(w, "delta must not be zero", http.StatusBadRequest)
		return
	}
	if req.Date != "" && !validDate(req.Date) {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	outcome, err := ledgerRepo.RecordAdjustment(id, req.Delta, req.Reason, movementDate(req.Date))
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrInvalidQuantity):
			http.Error(w, "delta must not be zero", http.StatusBadRequest)
		default:
			log.Printf("could not record adjustment for product %d: %v", id, err)
			http.Error(w, "could not record adjustment", http.StatusInternalServerError)
		}
		return
	}

	if outcome.Insufficient {
		writeJSON(w, http.StatusConflict, InsufficientStockResponse{
			Error:     "adjustment would take stock below zero",
			Available: outcome.Available,
			Requested: -req.Delta,
		})
		return
	}
	invalidateReports()
	log.Printf("stock of product %d adjusted by %d (%s) by %s",
		id, req.Delta, req.Reason, Username(r))

	writeJSON(w, http.StatusCreated, AdjustmentResponse{
		ID:        outcome.Adjustment.ID,
		ProductID: outcome.Adjustment.ProductID,
		Delta:     outcome.Adjustment.Delta,
		Reason:    outcome.Adjustment.Reason,
		StockQty:  outcome.StockAfter,
		Date:      outcome.Adjustment.Date,
	})
}

// GetPurchasesHandler godoc
// @Summary Get a product's inward movement history
// @Tags ledger
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} PurchaseResponse
// @Failure 404 {string} string "Product not found"
// @Router /products/{id}/purchases [get]
func GetPurchasesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if _, err := productRepo.GetByID(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	purchases, err := ledgerRepo.PurchasesByProductID(id)
	if err != nil {
		http.Error(w, "could not retrieve purchases", http.StatusInternalServerError)
		return
	}

	response := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		response[i] = PurchaseResponse{ID: p.ID, ProductID: p.ProductID, Qty: p.Qty, Vendor: p.Vendor, Date: p.Date}
	}
	writeJSON(w, http.StatusOK, response)
}

// GetSalesHandler godoc
// @Summary Get a product's outward movement history
// @Tags ledger
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} SaleResponse
// @Failure 404 {string} string "Product not found"
// @Router /products/{id}/sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if _, err := productRepo.GetByID(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	sales, err := ledgerRepo.SalesByProductID(id)
	if err != nil {
		http.Error(w, "could not retrieve sales", http.StatusInternalServerError)
		return
	}

	response := make([]SaleResponse, len(sales))
	for i, s := range sales {
		response[i] = SaleResponse{
			ID:          s.ID,
			ProductID:   s.ProductID,
			Qty:         s.Qty,
			Customer:    s.Customer,
			PaymentMode: s.PaymentMode,
			TotalAmount: s.TotalAmount,
			Date:        s.Date,
		}
	}
	writeJSON(w, http.StatusOK, response)
}
