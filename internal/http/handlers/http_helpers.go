package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ravikant-sharma/shopledger/internal/models"
)

// writeJSON takes a response status code and arbitrary data and writes a
// json response to the client.
func writeJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:            p.ID,
		Brand:         p.Brand,
		Model:         p.Model,
		IMEI:          p.IMEI,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		StockQty:      p.StockQty,
	}
}
