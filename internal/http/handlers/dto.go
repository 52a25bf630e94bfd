package handlers

type ProductRequest struct {
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	IMEI          string  `json:"imei"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	InitialQty    int     `json:"initial_qty"`
}

type ProductResponse struct {
	Id            int     `json:"id"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	IMEI          string  `json:"imei"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	StockQty      int     `json:"stock_qty"`
}

type PurchaseRequest struct {
	Qty    int    `json:"qty"`
	Vendor string `json:"vendor"`
	Date   string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

type PurchaseResponse struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Qty       int    `json:"qty"`
	Vendor    string `json:"vendor"`
	Date      string `json:"date"`
}

type SaleRequest struct {
	Qty         int    `json:"qty"`
	Customer    string `json:"customer"`
	PaymentMode string `json:"payment_mode"`
	Date        string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

type SaleResponse struct {
	ID          int     `json:"id"`
	ProductID   int     `json:"product_id"`
	Qty         int     `json:"qty"`
	Customer    string  `json:"customer"`
	PaymentMode string  `json:"payment_mode"`
	TotalAmount float64 `json:"total_amount"`
	StockQty    int     `json:"stock_qty"`
	Date        string  `json:"date"`
}

type AdjustmentRequest struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
	Date   string `json:"date,omitempty"`
}

type AdjustmentResponse struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Delta     int    `json:"delta"`
	Reason    string `json:"reason"`
	StockQty  int    `json:"stock_qty"`
	Date      string `json:"date"`
}

// InsufficientStockResponse reports a refused outward movement. It is an
// outcome, not a server error: the requested quantity exceeded Available.
type InsufficientStockResponse struct {
	Error     string `json:"error"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
