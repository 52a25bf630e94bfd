package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportStockReportHandler godoc
// @Summary Export the stock report
// @Tags reports
// @Produce text/csv, application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "Export format (csv or xlsx, default csv)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid format"
// @Failure 500 {string} string "Internal error"
// @Router /reports/stock/export [get]
func ExportStockReportHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		http.Error(w, "format must be 'csv' or 'xlsx'", http.StatusBadRequest)
		return
	}

	report, err := reportRepo.StockReport()
	if err != nil {
		http.Error(w, "could not retrieve stock report", http.StatusInternalServerError)
		return
	}

	headers := []string{"ID", "Brand", "Model", "IMEI", "Purchase Price", "Selling Price", "Stock Qty"}
	data := make([][]string, len(report))
	for i, row := range report {
		data[i] = []string{
			strconv.Itoa(row.ID),
			row.Brand,
			row.Model,
			row.IMEI,
			strconv.FormatFloat(row.PurchasePrice, 'f', 2, 64),
			strconv.FormatFloat(row.SellingPrice, 'f', 2, 64),
			strconv.Itoa(row.StockQty),
		}
	}

	if format == "xlsx" {
		exportExcel(w, "Stock Report", "stock_report.xlsx", headers, data)
		return
	}
	exportCSV(w, "stock_report.csv", headers, data)
}

// ExportSalesHandler godoc
// @Summary Export the sales listing for a day
// @Tags reports
// @Produce text/csv, application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param date query string false "Calendar day (YYYY-MM-DD, default today)"
// @Param format query string false "Export format (csv or xlsx, default csv)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /reports/sales/export [get]
func ExportSalesHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		http.Error(w, "format must be 'csv' or 'xlsx'", http.StatusBadRequest)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(dateLayout)
	} else if !validDate(date) {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	records, err := reportRepo.SalesByDate(date)
	if err != nil {
		http.Error(w, "could not retrieve sales", http.StatusInternalServerError)
		return
	}

	headers := []string{"ID", "Product ID", "Brand", "Model", "Qty", "Total Amount", "Customer", "Payment Mode", "Date"}
	data := make([][]string, len(records))
	for i, rec := range records {
		data[i] = []string{
			strconv.Itoa(rec.ID),
			strconv.Itoa(rec.ProductID),
			rec.Brand,
			rec.Model,
			strconv.Itoa(rec.Qty),
			strconv.FormatFloat(rec.TotalAmount, 'f', 2, 64),
			rec.Customer,
			rec.PaymentMode,
			rec.Date,
		}
	}

	if format == "xlsx" {
		exportExcel(w, "Sales", "sales_"+date+".xlsx", headers, data)
		return
	}
	exportCSV(w, "sales_"+date+".csv", headers, data)
}

func exportCSV(w http.ResponseWriter, filename string, headers []string, data [][]string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		http.Error(w, "failed to write CSV headers", http.StatusInternalServerError)
		return
	}
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			http.Error(w, "failed to write CSV row", http.StatusInternalServerError)
			return
		}
	}
}

func exportExcel(w http.ResponseWriter, sheetName, filename string, headers []string, data [][]string) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		http.Error(w, "failed to create sheet", http.StatusInternalServerError)
		return
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		http.Error(w, "failed to create header style", http.StatusInternalServerError)
		return
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	for rowIdx, row := range data {
		for colIdx, value := range row {
			cell := fmt.Sprintf("%s%d", string(rune('A'+colIdx)), rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	if err := f.Write(w); err != nil {
		http.Error(w, "failed to write workbook", http.StatusInternalServerError)
	}
}
