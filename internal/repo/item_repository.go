package repo

import (
	"errors"

	models "github.com/nadeekaauto/parts-inventory/internal/models"
)

// ItemFilter narrows a listing. Search matches case-insensitively against the
// textual representation of every displayed column; Name matches the
// normalized (upper-cased) name exactly and is used by the duplicate
// pre-check before a create.
type ItemFilter struct {
	Search string
	Name   string
}

// ItemPatch carries a partial update. Nil fields are left unchanged.
type ItemPatch struct {
	Name           *string  `json:"Name"`
	Location       *string  `json:"Location"`
	Quantity       *int     `json:"Quantity"`
	PurchasedPrice *float64 `json:"PurchasedPrice"`
	SellPrice      *float64 `json:"SellPrice"`
	SupplierName   *string  `json:"SupplierName"`
	SupplierPhone  *string  `json:"SupplierPhone"`
	SupplierEmail  *string  `json:"SupplierEmail"`
}

// ItemRepository defines the interface for inventory data operations.
type ItemRepository interface {
	Create(item models.InventoryItem) (models.InventoryItem, error)
	GetAll(filter ItemFilter) ([]models.InventoryItem, error)
	GetByID(id string) (models.InventoryItem, error)
	Update(id string, patch ItemPatch) (models.InventoryItem, error)
	Delete(id string) error
}

// ErrItemNotFound is returned when an inventory item is not found in the repository.
var ErrItemNotFound = errors.New("inventory item not found")

// ErrDuplicateName is returned when a create or rename collides with the
// unique index on the normalized item name.
var ErrDuplicateName = errors.New("inventory item name already exists")
