// Package item defines the records kept in the inventory and the shopping list.
package item

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/shoplist/pkg/category"
)

// ListType names one of the two lists.
type ListType string

const (
	// Inventory is the list of known items.
	Inventory ListType = "inventory"
	// ShoppingList is the list of items currently needed.
	ShoppingList ListType = "shoppingList"
)

// ParseListType accepts the canonical names plus a few short aliases.
func ParseListType(raw string) (ListType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "inventory", "inv", "inventario", "inventário":
		return Inventory, nil
	case "shoppinglist", "shopping-list", "shopping", "list", "lista":
		return ShoppingList, nil
	}
	return "", fmt.Errorf("item: unknown list type %q", raw)
}

func (l ListType) String() string {
	return string(l)
}

// InventoryItem is a known item that can be moved to the shopping list.
type InventoryItem struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Category category.Key `json:"category"`
}

// ShoppingListItem is a copy of an InventoryItem sharing its ID.
type ShoppingListItem struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Category category.Key `json:"category"`
	Bought   bool         `json:"bought"`
}

// New builds an inventory item with an ID unique within existing.
func New(existing []InventoryItem, name string, cat category.Key, now time.Time) InventoryItem {
	return InventoryItem{
		ID:       NextID(existing, now),
		Name:     name,
		Category: cat,
	}
}

// NextID returns the creation time in milliseconds, bumped past the largest
// ID in existing when two items are created within the same millisecond.
func NextID(existing []InventoryItem, now time.Time) int64 {
	id := now.UnixMilli()
	for _, it := range existing {
		if it.ID >= id {
			id = it.ID + 1
		}
	}
	return id
}

// ToShoppingList copies the item into an unbought shopping list entry.
func (i InventoryItem) ToShoppingList() ShoppingListItem {
	return ShoppingListItem{
		ID:       i.ID,
		Name:     i.Name,
		Category: i.Category,
		Bought:   false,
	}
}

func (i InventoryItem) String() string {
	return fmt.Sprintf("%d %s (%s)", i.ID, i.Name, i.Category)
}

func (s ShoppingListItem) String() string {
	box := "[ ]"
	if s.Bought {
		box = "[x]"
	}
	return fmt.Sprintf("%s %d %s (%s)", box, s.ID, s.Name, s.Category)
}

// FindInventory returns the index of id in items, or -1.
func FindInventory(items []InventoryItem, id int64) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// FindShopping returns the index of id in items, or -1.
func FindShopping(items []ShoppingListItem, id int64) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
