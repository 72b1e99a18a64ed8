package handlers_test_suite

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/nadeekaauto/parts-inventory/internal/http"
	"github.com/nadeekaauto/parts-inventory/internal/models"
)

func TestExportInventoryReportHandler_CSV(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	for _, name := range []string{"Brake Pad", "Oil Filter"} {
		if w := createItem(r, validItem(name)); w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created for %q, got %d", name, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/inventory/report?format=csv", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected Content-Type text/csv, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "inventory_report.csv") {
		t.Errorf("expected attachment filename in Content-Disposition, got %q", cd)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("error parsing CSV: %v", err)
	}
	if len(records) != 3 { // header + two items
		t.Fatalf("expected 3 CSV records, got %d", len(records))
	}
	if records[0][0] != "name" {
		t.Errorf("expected header row first, got %v", records[0])
	}
	if records[1][0] != "BRAKE PAD" || records[2][0] != "OIL FILTER" {
		t.Errorf("expected item rows, got %v and %v", records[1], records[2])
	}
}

func TestExportInventoryReportHandler_JSONWithSearch(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	for _, name := range []string{"Brake Pad", "Oil Filter"} {
		if w := createItem(r, validItem(name)); w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created for %q, got %d", name, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/inventory/report?format=json&search=brake", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var items []models.InventoryItem
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("error decoding report: %v", err)
	}
	if len(items) != 1 || items[0].Name != "BRAKE PAD" {
		t.Errorf("expected only the matching item, got %+v", items)
	}
}

func TestExportInventoryReportHandler_InvalidFormat(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/inventory/report?format=xml", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unsupported format, got %d", w.Code)
	}
}
