package handlers

import (
	"strings"
)

type ItemValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateItemRequest checks required-field presence only. The numeric and
// format invariants are the calling page's responsibility; the store-level
// unique index backs up the duplicate-name rule.
func validateItemRequest(req ItemRequest) []ItemValidationError {
	errs := []ItemValidationError{}

	missingText := func(field string, v *string) {
		if v == nil || strings.TrimSpace(*v) == "" {
			errs = append(errs, ItemValidationError{Field: field, Description: field + " is required"})
		}
	}

	missingText("Name", req.Name)
	missingText("Location", req.Location)
	if req.Quantity == nil {
		errs = append(errs, ItemValidationError{Field: "Quantity", Description: "Quantity is required"})
	}
	if req.PurchasedPrice == nil {
		errs = append(errs, ItemValidationError{Field: "PurchasedPrice", Description: "PurchasedPrice is required"})
	}
	if req.SellPrice == nil {
		errs = append(errs, ItemValidationError{Field: "SellPrice", Description: "SellPrice is required"})
	}
	missingText("SupplierName", req.SupplierName)
	missingText("SupplierPhone", req.SupplierPhone)
	missingText("SupplierEmail", req.SupplierEmail)

	return errs
}
