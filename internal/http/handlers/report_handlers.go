package handlers

import (
	"net/http"
	"time"

	repo "github.com/ravikant-sharma/shopledger/internal/repo"
)

// DashboardHandler godoc
// @Summary Dashboard figures
// @Description Today's sales total, stock valuation, product count and units in stock, recomputed from the ledger on every request.
// @Tags reports
// @Produce json
// @Success 200 {object} repo.DashboardSummary
// @Failure 500 {string} string "Internal error"
// @Router /dashboard [get]
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	today := time.Now().Format(dateLayout)

	var summary repo.DashboardSummary
	cacheKey := "dashboard:" + today
	if !cachedReport(cacheKey, &summary) {
		var err error
		summary, err = reportRepo.Dashboard(today)
		if err != nil {
			http.Error(w, "could not compute dashboard", http.StatusInternalServerError)
			return
		}
		cacheReport(cacheKey, summary)
	}
	writeJSON(w, http.StatusOK, summary)
}

// TodaysSalesHandler godoc
// @Summary Today's sales, most recent first
// @Tags reports
// @Produce json
// @Success 200 {array} repo.SaleRecord
// @Failure 500 {string} string "Internal error"
// @Router /reports/sales/today [get]
func TodaysSalesHandler(w http.ResponseWriter, r *http.Request) {
	writeSalesForDate(w, time.Now().Format(dateLayout))
}

// SalesByDateHandler godoc
// @Summary Sales for a calendar day, most recent first
// @Tags reports
// @Produce json
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {array} repo.SaleRecord
// @Failure 400 {string} string "Invalid date"
// @Failure 500 {string} string "Internal error"
// @Router /reports/sales [get]
func SalesByDateHandler(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !validDate(date) {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	writeSalesForDate(w, date)
}

func writeSalesForDate(w http.ResponseWriter, date string) {
	var records []repo.SaleRecord
	cacheKey := "sales:" + date
	if !cachedReport(cacheKey, &records) {
		var err error
		records, err = reportRepo.SalesByDate(date)
		if err != nil {
			http.Error(w, "could not retrieve sales", http.StatusInternalServerError)
			return
		}
		cacheReport(cacheKey, records)
	}
	writeJSON(w, http.StatusOK, records)
}

// DailySalesSummaryHandler godoc
// @Summary Per-day sales totals, most recent day first
// @Tags reports
// @Produce json
// @Success 200 {array} repo.DailySalesSummary
// @Failure 500 {string} string "Internal error"
// @Router /reports/sales/daily [get]
func DailySalesSummaryHandler(w http.ResponseWriter, r *http.Request) {
	var summaries []repo.DailySalesSummary
	if !cachedReport("sales:daily", &summaries) {
		var err error
		summaries, err = reportRepo.DailySummaries()
		if err != nil {
			http.Error(w, "could not retrieve sales summaries", http.StatusInternalServerError)
			return
		}
		cacheReport("sales:daily", summaries)
	}
	writeJSON(w, http.StatusOK, summaries)
}

// StockReportHandler godoc
// @Summary Stock report for all products
// @Tags reports
// @Produce json
// @Success 200 {array} repo.StockRow
// @Failure 500 {string} string "Internal error"
// @Router /reports/stock [get]
func StockReportHandler(w http.ResponseWriter, r *http.Request) {
	var report []repo.StockRow
	if !cachedReport("stock", &report) {
		var err error
		report, err = reportRepo.StockReport()
		if err != nil {
			http.Error(w, "could not retrieve stock report", http.StatusInternalServerError)
			return
		}
		cacheReport("stock", report)
	}
	writeJSON(w, http.StatusOK, report)
}
