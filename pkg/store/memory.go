package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"tableflip.dev/shoplist/pkg/item"
)

// Memory is an in-process Persistence. Values are stored in their encoded
// form so loads exercise the same decoding as the disk store.
type Memory struct {
	mu     sync.Mutex
	data   map[Record][]byte
	writes map[Record]int
	log    zerolog.Logger
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		data:   make(map[Record][]byte),
		writes: make(map[Record]int),
		log:    zerolog.Nop(),
	}
}

// SetRaw stores data for r verbatim, bypassing encoding.
func (m *Memory) SetRaw(r Record, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[r] = append([]byte(nil), data...)
}

// Raw returns the stored bytes for r.
func (m *Memory) Raw(r Record) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[r]
	return append([]byte(nil), data...), ok
}

// Writes reports how many saves r has received.
func (m *Memory) Writes(r Record) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[r]
}

// TotalWrites reports saves across all records.
func (m *Memory) TotalWrites() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.writes {
		total += n
	}
	return total
}

func (m *Memory) get(r Record) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[r]
}

func (m *Memory) put(r Record, v interface{}) error {
	data, err := encode(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[r] = data
	m.writes[r]++
	return nil
}

func (m *Memory) LoadInventory() []item.InventoryItem {
	return decodeInventory(m.log, m.get(RecordInventory))
}

func (m *Memory) SaveInventory(items []item.InventoryItem) error {
	if items == nil {
		items = []item.InventoryItem{}
	}
	return m.put(RecordInventory, items)
}

func (m *Memory) LoadShoppingList() []item.ShoppingListItem {
	return decodeShoppingList(m.log, m.get(RecordShoppingList))
}

func (m *Memory) SaveShoppingList(items []item.ShoppingListItem) error {
	if items == nil {
		items = []item.ShoppingListItem{}
	}
	return m.put(RecordShoppingList, items)
}

func (m *Memory) LoadCollapsed() item.CollapsedState {
	return decodeCollapsed(m.log, m.get(RecordCollapsed))
}

func (m *Memory) SaveCollapsed(state item.CollapsedState) error {
	return m.put(RecordCollapsed, state.Normalize())
}

// Watch never emits; the channel closes when ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

var _ Persistence = (*Memory)(nil)
