package models

// Purchase is an inward stock movement: goods received from a vendor.
// Rows are immutable once recorded.
type Purchase struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Qty       int    `json:"qty"`
	Date      string `json:"date"` // calendar day, YYYY-MM-DD
	Vendor    string `json:"vendor"`
}
