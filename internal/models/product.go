package models

// Product represents a catalog entry in the shop inventory.
// StockQty is maintained by the ledger: it always equals the initial
// quantity plus all purchases minus all sales plus all adjustments.
type Product struct {
	ID            int     `json:"id"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	IMEI          string  `json:"imei"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	StockQty      int     `json:"stock_qty"`
}
