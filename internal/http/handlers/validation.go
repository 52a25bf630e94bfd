package handlers

import (
	"strings"
	"time"

	"github.com/ravikant-sharma/shopledger/internal/models"
)

const dateLayout = "2006-01-02"

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Brand) == "" {
		errs = append(errs, ValidationError{Field: "Brand", Description: "Brand is required"})
	}
	if strings.TrimSpace(p.Model) == "" {
		errs = append(errs, ValidationError{Field: "Model", Description: "Model is required"})
	}
	if p.PurchasePrice < 0 {
		errs = append(errs, ValidationError{Field: "PurchasePrice", Description: "Purchase price cannot be negative"})
	}
	if p.SellingPrice < 0 {
		errs = append(errs, ValidationError{Field: "SellingPrice", Description: "Selling price cannot be negative"})
	}
	if p.InitialQty < 0 {
		errs = append(errs, ValidationError{Field: "InitialQty", Description: "Initial quantity cannot be negative"})
	}
	return errs
}

func validateSale(s SaleRequest) []ValidationError {
	errs := []ValidationError{}
	if s.Qty <= 0 {
		errs = append(errs, ValidationError{Field: "Qty", Description: "Quantity must be greater than zero"})
	}
	if !models.ValidPaymentMode(s.PaymentMode) {
		errs = append(errs, ValidationError{Field: "PaymentMode",
			Description: "Payment mode must be one of: " + strings.Join(models.PaymentModes, ", ")})
	}
	if s.Date != "" && !validDate(s.Date) {
		errs = append(errs, ValidationError{Field: "Date", Description: "Date must be YYYY-MM-DD"})
	}
	return errs
}

func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// movementDate returns the given day or today when omitted.
func movementDate(date string) string {
	if date == "" {
		return time.Now().Format(dateLayout)
	}
	return date
}
