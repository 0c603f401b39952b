package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/shoplist/pkg/app"
	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/item"
	"tableflip.dev/shoplist/pkg/store"
)

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	clock := func() time.Time { return time.UnixMilli(1000) }
	return NewService(app.New(mem, app.WithClock(clock))), mem
}

func TestAddAndList(t *testing.T) {
	svc, _ := newTestService(t)

	it, err := svc.AddItem("Leite", "frigorifico")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), it.ID)

	_, err = svc.AddItem("  ", "frigorifico")
	assert.Error(t, err)

	_, added, err := svc.AddToShoppingList(it.ID)
	require.NoError(t, err)
	assert.True(t, added)

	_, added, err = svc.AddToShoppingList(it.ID)
	require.NoError(t, err)
	assert.False(t, added)

	inv, err := svc.Inventory()
	require.NoError(t, err)
	require.Len(t, inv.Groups, 1)
	assert.True(t, inv.Groups[0].Rows[0].InShoppingList)

	_, _, err = svc.AddToShoppingList(42)
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestToggleBoughtReturnsUpdatedItem(t *testing.T) {
	svc, _ := newTestService(t)
	it, err := svc.AddItem("Pão", "padaria")
	require.NoError(t, err)
	_, _, err = svc.AddToShoppingList(it.ID)
	require.NoError(t, err)

	got, err := svc.ToggleBought(it.ID)
	require.NoError(t, err)
	assert.True(t, got.Bought)

	_, err = svc.ToggleBought(7)
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestDestructiveOperationsNeedConfirm(t *testing.T) {
	svc, mem := newTestService(t)
	it, err := svc.AddItem("Arroz", "despensa")
	require.NoError(t, err)
	_, _, err = svc.AddToShoppingList(it.ID)
	require.NoError(t, err)
	writes := mem.TotalWrites()

	err = svc.ClearAll(false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Contains(t, err.Error(), app.MsgClearAll)
	assert.Equal(t, writes, mem.TotalWrites())

	list, err := svc.ShoppingList()
	require.NoError(t, err)
	assert.Equal(t, 1, list.Len())

	assert.ErrorIs(t, svc.RemoveFromShoppingList(it.ID, false), ErrConfirmationRequired)
	require.NoError(t, svc.RemoveFromShoppingList(it.ID, true))
	list, err = svc.ShoppingList()
	require.NoError(t, err)
	assert.Equal(t, 0, list.Len())

	require.NoError(t, svc.DeleteItem(it.ID, true))
	inv, err := svc.Inventory()
	require.NoError(t, err)
	assert.Empty(t, inv.Groups)

	assert.ErrorIs(t, svc.DeleteItem(it.ID, true), app.ErrNotFound)
}

func TestUncheckAll(t *testing.T) {
	svc, _ := newTestService(t)
	for _, name := range []string{"Alface", "Tomate"} {
		it, err := svc.AddItem(name, "frescos")
		require.NoError(t, err)
		_, _, err = svc.AddToShoppingList(it.ID)
		require.NoError(t, err)
		_, err = svc.ToggleBought(it.ID)
		require.NoError(t, err)
	}

	require.NoError(t, svc.UncheckAll(true))
	list, err := svc.ShoppingList()
	require.NoError(t, err)
	assert.Equal(t, 0, list.Bought())
}

func TestToggleCollapsed(t *testing.T) {
	svc, mem := newTestService(t)

	collapsed, err := svc.ToggleCollapsed("lista", "frescos")
	require.NoError(t, err)
	assert.True(t, collapsed)
	assert.True(t, mem.LoadCollapsed().Has(item.ShoppingList, category.Frescos))

	_, err = svc.ToggleCollapsed("pantry", "frescos")
	assert.Error(t, err)
}

func TestSeesExternalChanges(t *testing.T) {
	svc, mem := newTestService(t)
	require.NoError(t, mem.SaveInventory([]item.InventoryItem{{ID: 5, Name: "Sal", Category: category.Despensa}}))

	inv, err := svc.Inventory()
	require.NoError(t, err)
	assert.Equal(t, 1, inv.Len())
}

func callTool(t *testing.T, svc *Service, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	srv := NewServer(svc, "test")
	tool := srv.GetTool(name)
	require.NotNil(t, tool, name)

	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	return tc.Text
}

func TestToolsRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	res := callTool(t, svc, "add_item", map[string]any{"name": "Leite", "category": "frigorifico"})
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), `"name":"Leite"`)

	res = callTool(t, svc, "add_to_shopping_list", map[string]any{"id": float64(1000)})
	assert.False(t, res.IsError)
	assert.Equal(t, "added Leite to the shopping list", resultText(t, res))

	res = callTool(t, svc, "clear_shopping_list", map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "confirm=true")

	res = callTool(t, svc, "clear_shopping_list", map[string]any{"confirm": true})
	assert.False(t, res.IsError)

	res = callTool(t, svc, "list_shopping_list", nil)
	assert.False(t, res.IsError)
	assert.Equal(t, `{"groups":[]}`, resultText(t, res))

	res = callTool(t, svc, "toggle_bought", map[string]any{})
	assert.True(t, res.IsError)
}

func TestServerRegistersEveryTool(t *testing.T) {
	svc, _ := newTestService(t)
	tools := NewServer(svc, "").ListTools()
	for _, name := range []string{
		"list_inventory", "list_shopping_list", "add_item", "add_to_shopping_list",
		"toggle_bought", "toggle_category_collapsed", "delete_item",
		"remove_from_shopping_list", "uncheck_all", "clear_shopping_list",
	} {
		assert.Contains(t, tools, name)
	}
}
