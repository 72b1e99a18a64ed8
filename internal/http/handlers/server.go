package handlers

import (
	repo "github.com/nadeekaauto/parts-inventory/internal/repo"
)

var itemRepo repo.ItemRepository

func SetItemRepo(r repo.ItemRepository) {
	itemRepo = r
}
