package handlers

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	repo "github.com/nadeekaauto/parts-inventory/internal/repo"
)

// ExportInventoryReportHandler godoc
// @Summary Export a printable inventory report
// @Description Exports the current (optionally filtered) inventory as a CSV or JSON attachment
// @Tags inventory
// @Produce text/csv, application/json
// @Param format query string true "Export format (csv or json)"
// @Param search query string false "Substring match over all displayed columns"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /inventory/report [get]
func ExportInventoryReportHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	items, err := itemRepo.GetAll(repo.ItemFilter{Search: r.URL.Query().Get("search")})
	if err != nil {
		log.Printf("could not fetch inventory items for report: %v", err)
		http.Error(w, "could not fetch inventory items", http.StatusInternalServerError)
		return
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="inventory_report.json"`)
		json.NewEncoder(w).Encode(items)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="inventory_report.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"name", "location", "quantity", "purchased_price", "sell_price", "supplier_name", "supplier_phone", "supplier_email"})
		for _, it := range items {
			_ = csvWriter.Write([]string{
				it.Name,
				it.Location,
				strconv.Itoa(it.Quantity),
				strconv.FormatFloat(it.PurchasedPrice, 'f', 2, 64),
				strconv.FormatFloat(it.SellPrice, 'f', 2, 64),
				it.SupplierName,
				it.SupplierPhone,
				it.SupplierEmail,
			})
		}
		csvWriter.Flush()
	}
}
