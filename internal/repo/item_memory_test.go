package repo

import (
	"errors"
	"testing"

	models "github.com/nadeekaauto/parts-inventory/internal/models"
)

func sampleItem(name string) models.InventoryItem {
	return models.InventoryItem{
		Name:           name,
		Location:       "Bin",
		Quantity:       5,
		PurchasedPrice: 10,
		SellPrice:      15,
		SupplierName:   "Acme",
		SupplierPhone:  "0712345678",
		SupplierEmail:  "a@acme.com",
	}
}

func TestInMemoryCreateNormalizesName(t *testing.T) {
	r := NewInMemoryItemRepository()

	created, err := r.Create(sampleItem("filter"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "FILTER" {
		t.Errorf("expected name upper-cased to 'FILTER', got %q", created.Name)
	}
	if created.ID == "" {
		t.Error("expected a generated ID")
	}
	if created.CreatedAt == "" || created.UpdatedAt == "" {
		t.Error("expected timestamps to be stamped on create")
	}
}

func TestInMemoryCreateDuplicateName(t *testing.T) {
	r := NewInMemoryItemRepository()

	if _, err := r.Create(sampleItem("Filter")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := r.Create(sampleItem("FILTER"))
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestInMemoryUpdateMergesFields(t *testing.T) {
	r := NewInMemoryItemRepository()
	created, _ := r.Create(sampleItem("Brake Pad"))

	quantity := 9
	updated, err := r.Update(created.ID, ItemPatch{Quantity: &quantity})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 9 {
		t.Errorf("expected quantity 9, got %d", updated.Quantity)
	}
	if updated.Name != created.Name || updated.SellPrice != created.SellPrice ||
		updated.SupplierEmail != created.SupplierEmail {
		t.Errorf("expected untouched fields to survive the merge, got %+v", updated)
	}

	fetched, _ := r.GetByID(created.ID)
	if fetched.Quantity != 9 {
		t.Errorf("expected stored quantity 9, got %d", fetched.Quantity)
	}
}

func TestInMemoryUpdateRenameCollision(t *testing.T) {
	r := NewInMemoryItemRepository()
	r.Create(sampleItem("Fan Belt"))
	created, _ := r.Create(sampleItem("Timing Belt"))

	name := "fan belt"
	_, err := r.Update(created.ID, ItemPatch{Name: &name})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName on rename collision, got %v", err)
	}
}

func TestInMemoryDeleteThenGet(t *testing.T) {
	r := NewInMemoryItemRepository()
	created, _ := r.Create(sampleItem("Wiper Blade"))

	if err := r.Delete(created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.GetByID(created.ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound after delete, got %v", err)
	}
	if err := r.Delete(created.ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound deleting twice, got %v", err)
	}
}

func TestInMemorySearchAcrossColumns(t *testing.T) {
	r := NewInMemoryItemRepository()

	brake := sampleItem("Brake Pad")
	brake.SupplierName = "Bosch"
	oil := sampleItem("Oil Filter")
	oil.SupplierName = "Mahle"
	oil.Quantity = 42
	r.Create(brake)
	r.Create(oil)

	tests := []struct {
		query    string
		expected int
	}{
		{"BRAKE", 1},
		{"brake", 1},
		{"bosch", 1},  // supplier column
		{"42", 1},     // quantity rendered as text
		{"15", 2},     // sell price rendered as text, shared by both
		{"acme", 0},   // supplier overridden on both items
		{"a@acme", 2}, // email column
	}
	for _, tt := range tests {
		items, err := r.GetAll(ItemFilter{Search: tt.query})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != tt.expected {
			t.Errorf("search %q: expected %d items, got %d", tt.query, tt.expected, len(items))
		}
	}
}

func TestInMemoryExactNameFilter(t *testing.T) {
	r := NewInMemoryItemRepository()
	r.Create(sampleItem("Filter"))
	r.Create(sampleItem("Filter Wrench"))

	items, err := r.GetAll(ItemFilter{Name: "filter"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "FILTER" {
		t.Errorf("expected exactly the item 'FILTER', got %+v", items)
	}
}

func TestInMemoryLastWriterWins(t *testing.T) {
	r := NewInMemoryItemRepository()
	created, _ := r.Create(sampleItem("Head Gasket"))

	// Two unordered quantity updates: no conflict error, the later write
	// simply lands on top.
	q1, q2 := 5, 9
	if _, err := r.Update(created.ID, ItemPatch{Quantity: &q1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Update(created.ID, ItemPatch{Quantity: &q2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fetched, _ := r.GetByID(created.ID)
	if fetched.Quantity != 9 {
		t.Errorf("expected the last write to win, got quantity %d", fetched.Quantity)
	}
}
