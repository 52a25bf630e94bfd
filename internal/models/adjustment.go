package models

// Adjustment is a manual stock correction recorded in the ledger so that
// every stock change stays derivable from movement rows. Delta may be
// negative but never takes stock below zero.
type Adjustment struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Delta     int    `json:"delta"`
	Reason    string `json:"reason"`
	Date      string `json:"date"` // calendar day, YYYY-MM-DD
}
