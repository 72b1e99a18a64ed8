package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	handler "github.com/nadeekaauto/parts-inventory/internal/http/handlers"
	rl "github.com/nadeekaauto/parts-inventory/internal/http/rate_limiter"
	"github.com/nadeekaauto/parts-inventory/internal/repo"
)

var itemRepo *repo.InMemoryItemRepository

func init() {
	itemRepo = repo.NewInMemoryItemRepository()
	handler.SetItemRepo(itemRepo)
}

func clearAllItems() {
	itemRepo.Clear()
	rl.CleanupAllVisitors()
}

// validItem returns a complete create payload. Fields can be dropped or
// overridden per test.
func validItem(name string) map[string]any {
	return map[string]any{
		"Name":           name,
		"Location":       "Bin",
		"Quantity":       20,
		"PurchasedPrice": 10.0,
		"SellPrice":      15.0,
		"SupplierName":   "Acme",
		"SupplierPhone":  "0712345678",
		"SupplierEmail":  "a@acme.com",
	}
}

func createItem(r http.Handler, payload map[string]any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/inventory", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getJSON(r http.Handler, path string, out any) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		json.NewDecoder(w.Body).Decode(out)
	}
	return w
}
