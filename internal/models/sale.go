package models

// Payment modes accepted at the sale boundary.
const (
	PaymentCash  = "Cash"
	PaymentCard  = "Card"
	PaymentUPI   = "UPI"
	PaymentOther = "Other"
)

// PaymentModes lists every accepted payment mode.
var PaymentModes = []string{PaymentCash, PaymentCard, PaymentUPI, PaymentOther}

// ValidPaymentMode reports whether mode is one of the accepted payment modes.
func ValidPaymentMode(mode string) bool {
	for _, m := range PaymentModes {
		if m == mode {
			return true
		}
	}
	return false
}

// Sale is an outward stock movement. TotalAmount is captured at sale time
// from the product's selling price; later price edits do not change it.
type Sale struct {
	ID          int     `json:"id"`
	ProductID   int     `json:"product_id"`
	Qty         int     `json:"qty"`
	Date        string  `json:"date"` // calendar day, YYYY-MM-DD
	Customer    string  `json:"customer"`
	PaymentMode string  `json:"payment_mode"`
	TotalAmount float64 `json:"total_amount"`
}
