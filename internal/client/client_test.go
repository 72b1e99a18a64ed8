package client

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/nadeekaauto/parts-inventory/internal/http"
	handler "github.com/nadeekaauto/parts-inventory/internal/http/handlers"
	rl "github.com/nadeekaauto/parts-inventory/internal/http/rate_limiter"
	models "github.com/nadeekaauto/parts-inventory/internal/models"
	"github.com/nadeekaauto/parts-inventory/internal/notify"
	"github.com/nadeekaauto/parts-inventory/internal/repo"
)

// newTestServer spins up the real router over the in-memory repository, so
// the client is exercised against the same handlers production runs.
func newTestServer(t *testing.T) (*Client, *repo.InMemoryItemRepository) {
	t.Helper()

	itemRepo := repo.NewInMemoryItemRepository()
	handler.SetItemRepo(itemRepo)
	rl.CleanupAllVisitors()

	srv := httptest.NewServer(api.NewRouter())
	t.Cleanup(srv.Close)

	return New(srv.URL), itemRepo
}

func TestClientCreateAndGet(t *testing.T) {
	c, _ := newTestServer(t)

	created, err := c.Create(validForm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "FILTER" {
		t.Errorf("expected name upper-cased to 'FILTER', got %q", created.Name)
	}

	fetched, err := c.Get(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.ID != created.ID || fetched.SupplierEmail != "a@acme.com" {
		t.Errorf("expected the created item back, got %+v", fetched)
	}
}

func TestClientCreateDuplicatePreCheck(t *testing.T) {
	c, _ := newTestServer(t)

	if _, err := c.Create(validForm()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	form := validForm()
	form.Name = "FILTER" // same normalized name
	_, err := c.Create(form)
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName from the pre-check, got %v", err)
	}
}

func TestClientCreateValidationBlocksNetwork(t *testing.T) {
	c, itemRepo := newTestServer(t)

	form := validForm()
	form.SupplierPhone = "12345"
	_, err := c.Create(form)

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}

	items, _ := itemRepo.GetAll(repo.ItemFilter{})
	if len(items) != 0 {
		t.Errorf("expected no item to reach the store, found %d", len(items))
	}
}

func TestClientUpdateValidationBlocksNetwork(t *testing.T) {
	c, itemRepo := newTestServer(t)

	created, err := c.Create(validForm()) // PurchasedPrice 10, SellPrice 15
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	badSell := 1.0
	badPhone := "12345"
	_, err = c.Update(created.ID, repo.ItemPatch{SellPrice: &badSell, SupplierPhone: &badPhone})

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	for _, field := range []string{"SellPrice", "SupplierPhone"} {
		found := false
		for _, fe := range verrs {
			if fe.Field == field {
				found = true
			}
		}
		if !found {
			t.Errorf("expected an error for field %q, got %v", field, verrs)
		}
	}

	stored, err := itemRepo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.SellPrice != 15 || stored.SupplierPhone != "0712345678" {
		t.Errorf("expected the stored record untouched, got %+v", stored)
	}
}

func TestClientListSearch(t *testing.T) {
	c, _ := newTestServer(t)

	form := validForm()
	if _, err := c.Create(form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	form2 := validForm()
	form2.Name = "Brake Pad"
	if _, err := c.Create(form2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := c.List("brake")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "BRAKE PAD" {
		t.Errorf("expected only the matching item, got %+v", items)
	}

	all, err := c.List("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 items without a filter, got %d", len(all))
	}
}

func TestClientUpdateMergeAndDelete(t *testing.T) {
	c, _ := newTestServer(t)

	created, err := c.Create(validForm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	quantity := 3
	updated, err := c.Update(created.ID, repo.ItemPatch{Quantity: &quantity})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 3 || updated.Name != created.Name {
		t.Errorf("expected merged update, got %+v", updated)
	}

	if err := c.Delete(created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Get(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := c.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestClientAddAndRetrieveStock(t *testing.T) {
	c, _ := newTestServer(t)

	created, err := c.Create(validForm()) // quantity 5
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := c.AddStock(created.ID, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 15 {
		t.Errorf("expected quantity 15 after adding stock, got %d", updated.Quantity)
	}

	updated, err = c.RetrieveStock(created.ID, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 11 {
		t.Errorf("expected quantity 11 after retrieving stock, got %d", updated.Quantity)
	}

	if _, err := c.RetrieveStock(created.ID, 100); err == nil {
		t.Error("expected an error retrieving more than the current quantity")
	}
	if _, err := c.AddStock(created.ID, 0); err == nil {
		t.Error("expected an error adding zero stock")
	}
}

func TestClientReport(t *testing.T) {
	c, _ := newTestServer(t)

	if _, err := c.Create(validForm()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := c.Report("csv", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := string(data)
	if !strings.HasPrefix(body, "name,location,quantity") {
		t.Errorf("expected CSV header, got %q", body)
	}
	if !strings.Contains(body, "FILTER") {
		t.Errorf("expected the item row in the report, got %q", body)
	}

	if _, err := c.Report("xml", ""); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

type recordingMailer struct {
	sent []models.InventoryItem
}

func (m *recordingMailer) SendRestockEmail(item models.InventoryItem) error {
	m.sent = append(m.sent, item)
	return nil
}

type acceptAllPrompter struct{}

func (acceptAllPrompter) ConfirmRestock([]models.InventoryItem) bool { return true }

// A freshly created item at or below the threshold shows up in the low-stock
// notice raised after the next listing.
func TestLowStockNoticeAfterCreate(t *testing.T) {
	c, _ := newTestServer(t)

	form := validForm() // quantity 5, at a low level
	if _, err := c.Create(form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := c.List("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mailer := &recordingMailer{}
	notifier := notify.New(mailer, acceptAllPrompter{}, nil)
	notifier.Alert(items)

	if len(mailer.sent) != 1 || mailer.sent[0].Name != "FILTER" {
		t.Errorf("expected a restock email for 'FILTER', got %+v", mailer.sent)
	}

	// The same session must not re-notify on a later fetch.
	items, _ = c.List("")
	notifier.Alert(items)
	if len(mailer.sent) != 1 {
		t.Errorf("expected no second email in the same session, got %d", len(mailer.sent))
	}
}
