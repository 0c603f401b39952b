// Package view turns list state into grouped, sorted view trees. Rendering is
// pure: the same input always yields the same tree, and nothing is mutated.
package view

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/item"
)

// Group is the header shared by both list views.
type Group struct {
	Key       category.Key `json:"key"`
	Label     string       `json:"label"`
	Color     string       `json:"color,omitempty"`
	Collapsed bool         `json:"collapsed"`
}

// InventoryRow is one inventory item plus its derived list membership.
type InventoryRow struct {
	Item           item.InventoryItem `json:"item"`
	InShoppingList bool               `json:"inShoppingList"`
}

// InventoryGroup is a category of the inventory view.
type InventoryGroup struct {
	Group
	Rows []InventoryRow `json:"rows"`
}

// Inventory is the complete inventory view.
type Inventory struct {
	Groups []InventoryGroup `json:"groups"`
}

// ShoppingGroup is a category of the shopping list view; unbought rows come
// before bought rows.
type ShoppingGroup struct {
	Group
	Rows []item.ShoppingListItem `json:"rows"`
}

// ShoppingList is the complete shopping list view.
type ShoppingList struct {
	Groups []ShoppingGroup `json:"groups"`
}

// Len returns the number of rows across groups.
func (v Inventory) Len() int {
	n := 0
	for _, g := range v.Groups {
		n += len(g.Rows)
	}
	return n
}

// Len returns the number of rows across groups.
func (v ShoppingList) Len() int {
	n := 0
	for _, g := range v.Groups {
		n += len(g.Rows)
	}
	return n
}

// Bought returns how many rows are marked bought.
func (v ShoppingList) Bought() int {
	n := 0
	for _, g := range v.Groups {
		for _, r := range g.Rows {
			if r.Bought {
				n++
			}
		}
	}
	return n
}

// Option customises rendering.
type Option func(*options)

type options struct {
	tag language.Tag
}

// WithLocale selects the collation used to order item names.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.tag = tag
	}
}

// ParseLocale returns the tag for s, defaulting to Portuguese.
func ParseLocale(s string) language.Tag {
	if s == "" {
		return language.Portuguese
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Portuguese
	}
	return tag
}

func newOptions(opts []Option) *options {
	o := &options{tag: language.Portuguese}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func newGroup(key category.Key, collapsed []category.Key) Group {
	g := Group{
		Key:   key,
		Label: category.Label(key),
		Color: category.Color(key),
	}
	for _, c := range collapsed {
		if c == key {
			g.Collapsed = true
			break
		}
	}
	return g
}

// sortedKeys orders group keys by plain string comparison.
func sortedKeys[T any](groups map[category.Key][]T) []category.Key {
	keys := make([]category.Key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func byName[T any](col *collate.Collator, rows []T, name func(T) string) {
	sort.SliceStable(rows, func(i, j int) bool {
		return col.CompareString(name(rows[i]), name(rows[j])) < 0
	})
}

// RenderInventory groups inv by category. Rows whose ID is on shopping are
// flagged InShoppingList.
func RenderInventory(inv []item.InventoryItem, shopping []item.ShoppingListItem, collapsed []category.Key, opts ...Option) Inventory {
	o := newOptions(opts)
	col := collate.New(o.tag)

	onList := make(map[int64]struct{}, len(shopping))
	for _, s := range shopping {
		onList[s.ID] = struct{}{}
	}

	grouped := make(map[category.Key][]InventoryRow)
	for _, it := range inv {
		_, ok := onList[it.ID]
		grouped[it.Category] = append(grouped[it.Category], InventoryRow{Item: it, InShoppingList: ok})
	}

	out := Inventory{Groups: make([]InventoryGroup, 0, len(grouped))}
	for _, key := range sortedKeys(grouped) {
		rows := grouped[key]
		byName(col, rows, func(r InventoryRow) string { return r.Item.Name })
		out.Groups = append(out.Groups, InventoryGroup{Group: newGroup(key, collapsed), Rows: rows})
	}
	return out
}

// RenderShoppingList groups shopping by category, unbought rows first, each
// partition sorted by name independently.
func RenderShoppingList(shopping []item.ShoppingListItem, collapsed []category.Key, opts ...Option) ShoppingList {
	o := newOptions(opts)
	col := collate.New(o.tag)

	grouped := make(map[category.Key][]item.ShoppingListItem)
	for _, it := range shopping {
		grouped[it.Category] = append(grouped[it.Category], it)
	}

	name := func(s item.ShoppingListItem) string { return s.Name }
	out := ShoppingList{Groups: make([]ShoppingGroup, 0, len(grouped))}
	for _, key := range sortedKeys(grouped) {
		var unbought, bought []item.ShoppingListItem
		for _, it := range grouped[key] {
			if it.Bought {
				bought = append(bought, it)
			} else {
				unbought = append(unbought, it)
			}
		}
		byName(col, unbought, name)
		byName(col, bought, name)
		rows := make([]item.ShoppingListItem, 0, len(unbought)+len(bought))
		rows = append(rows, unbought...)
		rows = append(rows, bought...)
		out.Groups = append(out.Groups, ShoppingGroup{Group: newGroup(key, collapsed), Rows: rows})
	}
	return out
}
