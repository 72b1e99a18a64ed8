package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	models "github.com/nadeekaauto/parts-inventory/internal/models"
	repo "github.com/nadeekaauto/parts-inventory/internal/repo"
)

// CreateItemHandler godoc
// @Summary Create a new inventory item
// @Description Adds a spare-part record to the inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body ItemRequest true "Item to add"
// @Success 201 {object} models.InventoryItem
// @Failure 400 {array} ItemValidationError
// @Failure 409 {string} string "Duplicate name"
// @Failure 500 {string} string "Internal error"
// @Router /inventory [post]
func CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateItemRequest(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	item := models.InventoryItem{
		Name:           *req.Name,
		Location:       *req.Location,
		Quantity:       *req.Quantity,
		PurchasedPrice: *req.PurchasedPrice,
		SellPrice:      *req.SellPrice,
		SupplierName:   *req.SupplierName,
		SupplierPhone:  *req.SupplierPhone,
		SupplierEmail:  *req.SupplierEmail,
	}
	created, err := itemRepo.Create(item)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateName) {
			http.Error(w, "inventory item with the same name already exists", http.StatusConflict)
			return
		}
		log.Printf("could not create inventory item: %v", err)
		http.Error(w, "could not create inventory item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetItemsHandler godoc
// @Summary List inventory items
// @Description Lists all items, or items matching the search / exact-name filters
// @Tags inventory
// @Produce json
// @Param search query string false "Substring match over all displayed columns"
// @Param Name query string false "Exact match on the normalized name"
// @Success 200 {object} ItemsResult
// @Failure 500 {string} string "Internal error"
// @Router /inventory [get]
func GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repo.ItemFilter{
		Search: q.Get("search"),
		Name:   q.Get("Name"),
	}

	items, err := itemRepo.GetAll(filter)
	if err != nil {
		log.Printf("could not fetch inventory items: %v", err)
		http.Error(w, "could not fetch inventory items", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.InventoryItem{}
	}

	writeJSON(w, http.StatusOK, ItemsResult{Data: items})
}

// GetItemByIDHandler godoc
// @Summary Get inventory item by ID
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.InventoryItem
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /inventory/{id} [get]
func GetItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := itemRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "inventory item not found", http.StatusNotFound)
			return
		}
		log.Printf("could not fetch inventory item %s: %v", id, err)
		http.Error(w, "could not fetch inventory item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// UpdateItemHandler godoc
// @Summary Update an inventory item
// @Description Merges the supplied fields into the stored record; absent fields are left unchanged
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body repo.ItemPatch true "Fields to update"
// @Success 200 {object} models.InventoryItem
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Duplicate name"
// @Failure 500 {string} string "Internal error"
// @Router /inventory/{id} [put]
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch repo.ItemPatch
	if err := readJSON(w, r, &patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	updated, err := itemRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "inventory item not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, repo.ErrDuplicateName) {
			http.Error(w, "inventory item with the same name already exists", http.StatusConflict)
			return
		}
		log.Printf("could not update inventory item %s: %v", id, err)
		http.Error(w, "could not update inventory item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteItemHandler godoc
// @Summary Delete an inventory item
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} MessageResult
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /inventory/{id} [delete]
func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := itemRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "inventory item not found", http.StatusNotFound)
			return
		}
		log.Printf("could not delete inventory item %s: %v", id, err)
		http.Error(w, "could not delete inventory item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, MessageResult{Message: "inventory item deleted successfully"})
}
