package repo

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	models "github.com/nadeekaauto/parts-inventory/internal/models"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository.
// It mirrors the Postgres implementation's semantics, including the unique
// constraint on the normalized name, so the handler suite can run against it.
type InMemoryItemRepository struct {
	mu    sync.Mutex
	items []models.InventoryItem
}

// NewInMemoryItemRepository creates a new instance of InMemoryItemRepository.
func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{items: []models.InventoryItem{}}
}

func (r *InMemoryItemRepository) Create(item models.InventoryItem) (models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.Name = strings.ToUpper(item.Name)
	for _, it := range r.items {
		if it.Name == item.Name {
			return models.InventoryItem{}, ErrDuplicateName
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items = append(r.items, item)
	return item, nil
}

func (r *InMemoryItemRepository) GetAll(filter ItemFilter) ([]models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := []models.InventoryItem{}
	for _, it := range r.items {
		switch {
		case filter.Name != "":
			if it.Name == strings.ToUpper(filter.Name) {
				items = append(items, it)
			}
		case filter.Search != "":
			if itemMatches(it, filter.Search) {
				items = append(items, it)
			}
		default:
			items = append(items, it)
		}
	}
	return items, nil
}

// itemMatches reports whether the textual representation of any displayed
// column contains the query, case-insensitively.
func itemMatches(it models.InventoryItem, query string) bool {
	q := strings.ToLower(query)
	fields := []string{
		it.Name,
		it.Location,
		strconv.Itoa(it.Quantity),
		strconv.FormatFloat(it.PurchasedPrice, 'f', -1, 64),
		strconv.FormatFloat(it.SellPrice, 'f', -1, 64),
		it.SupplierName,
		it.SupplierPhone,
		it.SupplierEmail,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func (r *InMemoryItemRepository) GetByID(id string) (models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.InventoryItem{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) Update(id string, patch ItemPatch) (models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID != id {
			continue
		}
		if patch.Name != nil {
			name := strings.ToUpper(*patch.Name)
			for _, other := range r.items {
				if other.ID != id && other.Name == name {
					return models.InventoryItem{}, ErrDuplicateName
				}
			}
			it.Name = name
		}
		if patch.Location != nil {
			it.Location = *patch.Location
		}
		if patch.Quantity != nil {
			it.Quantity = *patch.Quantity
		}
		if patch.PurchasedPrice != nil {
			it.PurchasedPrice = *patch.PurchasedPrice
		}
		if patch.SellPrice != nil {
			it.SellPrice = *patch.SellPrice
		}
		if patch.SupplierName != nil {
			it.SupplierName = *patch.SupplierName
		}
		if patch.SupplierPhone != nil {
			it.SupplierPhone = *patch.SupplierPhone
		}
		if patch.SupplierEmail != nil {
			it.SupplierEmail = *patch.SupplierEmail
		}
		it.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		r.items[i] = it
		return it, nil
	}
	return models.InventoryItem{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Clear removes all items. Used by tests.
func (r *InMemoryItemRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = []models.InventoryItem{}
}
