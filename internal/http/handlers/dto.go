package handlers

import models "github.com/nadeekaauto/parts-inventory/internal/models"

// ItemRequest is the create payload. Pointer fields let the handler tell a
// missing field apart from a zero value when reporting validation errors.
type ItemRequest struct {
	Name           *string  `json:"Name"`
	Location       *string  `json:"Location"`
	Quantity       *int     `json:"Quantity"`
	PurchasedPrice *float64 `json:"PurchasedPrice"`
	SellPrice      *float64 `json:"SellPrice"`
	SupplierName   *string  `json:"SupplierName"`
	SupplierPhone  *string  `json:"SupplierPhone"`
	SupplierEmail  *string  `json:"SupplierEmail"`
}

type ItemsResult struct {
	Data []models.InventoryItem `json:"data"`
}

type MessageResult struct {
	Message string `json:"message"`
}
