package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/item"
)

func TestMemoryRoundTripAndWriteCounts(t *testing.T) {
	m := NewMemory()
	inv := []item.InventoryItem{{ID: 1, Name: "Leite", Category: category.Frigorifico}}

	require.NoError(t, m.SaveInventory(inv))
	require.NoError(t, m.SaveInventory(inv))
	require.NoError(t, m.SaveCollapsed(item.DefaultCollapsed()))

	assert.Equal(t, inv, m.LoadInventory())
	assert.Equal(t, 2, m.Writes(RecordInventory))
	assert.Equal(t, 0, m.Writes(RecordShoppingList))
	assert.Equal(t, 3, m.TotalWrites())
}

func TestMemoryCorruptFallsBack(t *testing.T) {
	m := NewMemory()
	m.SetRaw(RecordShoppingList, []byte("[{"))
	m.SetRaw(RecordCollapsed, []byte("42"))

	assert.Empty(t, m.LoadShoppingList())
	assert.Equal(t, item.DefaultCollapsed(), m.LoadCollapsed())
	assert.Equal(t, 0, m.TotalWrites())
}

func TestMemoryWatchClosesWithContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := m.Watch(ctx)
	require.NoError(t, err)
	cancel()
	_, ok := <-ch
	assert.False(t, ok)
}
