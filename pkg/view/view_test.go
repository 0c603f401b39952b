package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/item"
)

func inventoryNames(g InventoryGroup) []string {
	names := make([]string, 0, len(g.Rows))
	for _, r := range g.Rows {
		names = append(names, r.Item.Name)
	}
	return names
}

func shoppingNames(g ShoppingGroup) []string {
	names := make([]string, 0, len(g.Rows))
	for _, r := range g.Rows {
		names = append(names, r.Name)
	}
	return names
}

func TestRenderInventorySortsNames(t *testing.T) {
	inv := []item.InventoryItem{
		{ID: 1, Name: "Banana", Category: category.Frescos},
		{ID: 2, Name: "Abacate", Category: category.Frescos},
	}
	v := RenderInventory(inv, nil, nil)
	require.Len(t, v.Groups, 1)
	assert.Equal(t, []string{"Abacate", "Banana"}, inventoryNames(v.Groups[0]))
	assert.Equal(t, "🍎 Frescos", v.Groups[0].Label)
}

func TestRenderInventoryGroupKeysSorted(t *testing.T) {
	inv := []item.InventoryItem{
		{ID: 1, Name: "Pão", Category: category.Padaria},
		{ID: 2, Name: "Sumo", Category: "bebidas"},
		{ID: 3, Name: "Leite", Category: category.Frigorifico},
	}
	v := RenderInventory(inv, nil, nil)
	keys := make([]category.Key, 0, len(v.Groups))
	for _, g := range v.Groups {
		keys = append(keys, g.Key)
	}
	assert.Equal(t, []category.Key{"bebidas", category.Frigorifico, category.Padaria}, keys)
	assert.Equal(t, "bebidas", v.Groups[0].Label, "unknown category renders its key")
}

func TestRenderInventoryLocaleAwareOrder(t *testing.T) {
	inv := []item.InventoryItem{
		{ID: 1, Name: "ovos", Category: category.Frigorifico},
		{ID: 2, Name: "Óleo", Category: category.Frigorifico},
		{ID: 3, Name: "Natas", Category: category.Frigorifico},
	}
	v := RenderInventory(inv, nil, nil, WithLocale(language.Portuguese))
	assert.Equal(t, []string{"Natas", "Óleo", "ovos"}, inventoryNames(v.Groups[0]))
}

func TestRenderInventoryFlagsShoppingListMembership(t *testing.T) {
	inv := []item.InventoryItem{
		{ID: 1, Name: "Leite", Category: category.Frigorifico},
		{ID: 2, Name: "Manteiga", Category: category.Frigorifico},
	}
	shopping := []item.ShoppingListItem{{ID: 2, Name: "Manteiga", Category: category.Frigorifico, Bought: true}}
	v := RenderInventory(inv, shopping, nil)
	require.Len(t, v.Groups[0].Rows, 2)
	assert.False(t, v.Groups[0].Rows[0].InShoppingList)
	assert.True(t, v.Groups[0].Rows[1].InShoppingList, "presence only, bought does not matter")
}

func TestRenderCollapsedFlag(t *testing.T) {
	inv := []item.InventoryItem{
		{ID: 1, Name: "Pão", Category: category.Padaria},
		{ID: 2, Name: "Arroz", Category: category.Despensa},
	}
	v := RenderInventory(inv, nil, []category.Key{category.Padaria, "stale"})
	require.Len(t, v.Groups, 2)
	assert.False(t, v.Groups[0].Collapsed)
	assert.True(t, v.Groups[1].Collapsed)
}

func TestRenderShoppingListPartitionsUnboughtFirst(t *testing.T) {
	shopping := []item.ShoppingListItem{
		{ID: 1, Name: "Alface", Category: category.Frescos, Bought: true},
		{ID: 2, Name: "Tomate", Category: category.Frescos},
		{ID: 3, Name: "Cenoura", Category: category.Frescos},
		{ID: 4, Name: "Batata", Category: category.Frescos, Bought: true},
	}
	v := RenderShoppingList(shopping, []category.Key{category.Frescos})
	require.Len(t, v.Groups, 1)
	assert.Equal(t, []string{"Cenoura", "Tomate", "Alface", "Batata"}, shoppingNames(v.Groups[0]))
	assert.True(t, v.Groups[0].Collapsed)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 2, v.Bought())
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	shopping := []item.ShoppingListItem{
		{ID: 1, Name: "B", Category: category.Outros},
		{ID: 2, Name: "A", Category: category.Outros},
	}
	RenderShoppingList(shopping, nil)
	assert.Equal(t, "B", shopping[0].Name)
}

func TestRenderEmpty(t *testing.T) {
	assert.Empty(t, RenderInventory(nil, nil, nil).Groups)
	assert.Equal(t, 0, RenderShoppingList(nil, nil).Len())
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, language.Portuguese, ParseLocale(""))
	assert.Equal(t, language.Portuguese, ParseLocale("!!"))
	assert.Equal(t, language.English, ParseLocale("en"))
}
