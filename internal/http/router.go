package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ravikant-sharma/shopledger/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)

	// Read-only catalog and reporting endpoints.
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/products/{id}/purchases", handlers.GetPurchasesHandler)
	r.Get("/products/{id}/sales", handlers.GetSalesHandler)

	r.Get("/dashboard", handlers.DashboardHandler)
	r.Get("/reports/sales/today", handlers.TodaysSalesHandler)
	r.Get("/reports/sales/daily", handlers.DailySalesSummaryHandler)
	r.Get("/reports/sales", handlers.SalesByDateHandler)
	r.Get("/reports/sales/export", handlers.ExportSalesHandler)
	r.Get("/reports/stock", handlers.StockReportHandler)
	r.Get("/reports/stock/export", handlers.ExportStockReportHandler)

	// Mutations require a valid token.
	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware)
		pr.Post("/products", handlers.CreateProductHandler)
		pr.Put("/products/{id}", handlers.UpdateProductHandler)
		pr.Delete("/products/{id}", handlers.DeleteProductHandler)
		pr.Post("/products/{id}/purchases", handlers.RecordPurchaseHandler)
		pr.Post("/products/{id}/sales", handlers.RecordSaleHandler)
		pr.Post("/products/{id}/adjustments", handlers.RecordAdjustmentHandler)
	})

	return r
}
