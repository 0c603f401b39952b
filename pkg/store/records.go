package store

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"tableflip.dev/shoplist/pkg/item"
)

// Record names one of the three independently stored values.
type Record string

const (
	RecordInventory    Record = "shoppingListPWA_inventory"
	RecordShoppingList Record = "shoppingListPWA_shoppingList"
	RecordCollapsed    Record = "shoppingListPWA_collapsedCategories"
)

// Records lists every record key.
func Records() []Record {
	return []Record{RecordInventory, RecordShoppingList, RecordCollapsed}
}

func (r Record) String() string {
	return string(r)
}

func isRecord(name string) (Record, bool) {
	for _, r := range Records() {
		if string(r) == name {
			return r, true
		}
	}
	return "", false
}

// Decoding never fails: anything unusable becomes the default value.

func decodeInventory(log zerolog.Logger, data []byte) []item.InventoryItem {
	var items []item.InventoryItem
	if len(data) > 0 {
		if err := json.Unmarshal(data, &items); err != nil {
			log.Warn().Err(err).Str("record", string(RecordInventory)).Msg("discarding unreadable record")
			items = nil
		}
	}
	if items == nil {
		items = []item.InventoryItem{}
	}
	return items
}

func decodeShoppingList(log zerolog.Logger, data []byte) []item.ShoppingListItem {
	var items []item.ShoppingListItem
	if len(data) > 0 {
		if err := json.Unmarshal(data, &items); err != nil {
			log.Warn().Err(err).Str("record", string(RecordShoppingList)).Msg("discarding unreadable record")
			items = nil
		}
	}
	if items == nil {
		items = []item.ShoppingListItem{}
	}
	return items
}

func decodeCollapsed(log zerolog.Logger, data []byte) item.CollapsedState {
	if len(data) == 0 {
		return item.DefaultCollapsed()
	}
	var state *item.CollapsedState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Warn().Err(err).Str("record", string(RecordCollapsed)).Msg("discarding unreadable record")
		return item.DefaultCollapsed()
	}
	if state == nil {
		return item.DefaultCollapsed()
	}
	return state.Normalize()
}

func encode(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
