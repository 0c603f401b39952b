package item

import "tableflip.dev/shoplist/pkg/category"

// CollapsedState records which category groups are collapsed, per list.
// Entries keep insertion order and are never purged when a category empties.
type CollapsedState struct {
	Inventory    []category.Key `json:"inventory"`
	ShoppingList []category.Key `json:"shoppingList"`
}

// DefaultCollapsed is the value used when nothing is stored.
func DefaultCollapsed() CollapsedState {
	return CollapsedState{
		Inventory:    []category.Key{},
		ShoppingList: []category.Key{},
	}
}

// Keys returns the collapsed keys for list.
func (c CollapsedState) Keys(list ListType) []category.Key {
	if list == ShoppingList {
		return c.ShoppingList
	}
	return c.Inventory
}

// Has reports whether key is collapsed in list.
func (c CollapsedState) Has(list ListType, key category.Key) bool {
	for _, k := range c.Keys(list) {
		if k == key {
			return true
		}
	}
	return false
}

// Toggle flips key in list and reports whether it is now collapsed.
func (c *CollapsedState) Toggle(list ListType, key category.Key) bool {
	keys := c.Keys(list)
	for i, k := range keys {
		if k == key {
			keys = append(keys[:i:i], keys[i+1:]...)
			c.set(list, keys)
			return false
		}
	}
	c.set(list, append(keys, key))
	return true
}

func (c *CollapsedState) set(list ListType, keys []category.Key) {
	if list == ShoppingList {
		c.ShoppingList = keys
		return
	}
	c.Inventory = keys
}

// Clone returns a deep copy.
func (c CollapsedState) Clone() CollapsedState {
	out := CollapsedState{
		Inventory:    make([]category.Key, len(c.Inventory)),
		ShoppingList: make([]category.Key, len(c.ShoppingList)),
	}
	copy(out.Inventory, c.Inventory)
	copy(out.ShoppingList, c.ShoppingList)
	return out
}

// Normalize replaces nil sides with empty slices and drops duplicates.
func (c CollapsedState) Normalize() CollapsedState {
	return CollapsedState{
		Inventory:    dedupe(c.Inventory),
		ShoppingList: dedupe(c.ShoppingList),
	}
}

func dedupe(keys []category.Key) []category.Key {
	out := make([]category.Key, 0, len(keys))
	seen := make(map[category.Key]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
