package models

// InventoryItem represents one spare-part stock record.
// The JSON keys mirror the shape the browser clients were built against:
// item fields are capitalized, store-managed fields are lowercase.
type InventoryItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"Name"`
	Location       string  `json:"Location"`
	Quantity       int     `json:"Quantity"`
	PurchasedPrice float64 `json:"PurchasedPrice"`
	SellPrice      float64 `json:"SellPrice"`
	SupplierName   string  `json:"SupplierName"`
	SupplierPhone  string  `json:"SupplierPhone"`
	SupplierEmail  string  `json:"SupplierEmail"`
	CreatedAt      string  `json:"createdAt,omitempty"`
	UpdatedAt      string  `json:"updatedAt,omitempty"`
}

// Locations is the fixed set of storage-location labels.
var Locations = []string{
	"Vault",
	"Carton/Shelf",
	"Drawer",
	"Box",
	"Cabinet",
	"Locker",
	"Tray",
	"Rack",
	"Bin",
	"Compartment",
	"Container",
	"Barrel",
}

// IsValidLocation reports whether loc is one of the known storage labels.
func IsValidLocation(loc string) bool {
	for _, l := range Locations {
		if l == loc {
			return true
		}
	}
	return false
}
