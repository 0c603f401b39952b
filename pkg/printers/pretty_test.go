package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"tableflip.dev/shoplist/pkg/app"
	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/item"
	"tableflip.dev/shoplist/pkg/view"
)

func init() {
	color.NoColor = true
}

func TestInventoryPrintsGroupsAndRows(t *testing.T) {
	inv := []item.InventoryItem{
		{ID: 11, Name: "Leite", Category: category.Frigorifico},
		{ID: 12, Name: "Pão", Category: category.Padaria},
	}
	shopping := []item.ShoppingListItem{{ID: 11, Name: "Leite", Category: category.Frigorifico}}

	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, ShowID: true}
	pp.Inventory(view.RenderInventory(inv, shopping, nil))

	out := buf.String()
	assert.Contains(t, out, "Inventário - 2 itens")
	assert.Contains(t, out, "▾ ❄️ Frigorífico (1)")
	assert.Contains(t, out, "🛒")
	assert.Contains(t, out, "11")
	assert.Contains(t, out, "Pão")
}

func TestInventoryCollapsedGroupHidesRows(t *testing.T) {
	inv := []item.InventoryItem{{ID: 1, Name: "Arroz", Category: category.Despensa}}

	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Inventory(view.RenderInventory(inv, nil, []category.Key{category.Despensa}))

	out := buf.String()
	assert.Contains(t, out, "▸")
	assert.NotContains(t, out, "Arroz")
}

func TestShoppingListMarksBought(t *testing.T) {
	shopping := []item.ShoppingListItem{
		{ID: 1, Name: "Tomate", Category: category.Frescos, Bought: true},
		{ID: 2, Name: "Alface", Category: category.Frescos},
	}

	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.ShoppingList(view.RenderShoppingList(shopping, nil))

	out := buf.String()
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")
	assert.Less(t, strings.Index(out, "Alface"), strings.Index(out, "Tomate"))
	assert.Contains(t, out, "1/2 comprados")
}

func TestEmptyListsPrintNone(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.ShoppingList(view.ShoppingList{})
	assert.Contains(t, buf.String(), "Lista de Compras - 0 itens")
	assert.Contains(t, buf.String(), "nenhum")
}

func TestLongNamesAreTruncated(t *testing.T) {
	long := strings.Repeat("a", 60)
	shopping := []item.ShoppingListItem{{ID: 1, Name: long, Category: category.Outros}}

	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, NameWidth: 10}
	pp.ShoppingList(view.RenderShoppingList(shopping, nil))

	assert.NotContains(t, buf.String(), long)
	assert.Contains(t, buf.String(), "…")
}

func TestCategoriesAndReport(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Categories(category.All())
	for _, d := range category.All() {
		assert.Contains(t, buf.String(), string(d.Key))
	}

	buf.Reset()
	pp.Report(app.ReportResult{
		Sections:  []app.ReportSection{{Category: category.Padaria, Label: "🍞 Padaria", Inventory: 2, Listed: 1}},
		Inventory: 2,
		Listed:    1,
	})
	assert.Contains(t, buf.String(), "🍞 Padaria")
	assert.Contains(t, buf.String(), "Total")
}

func TestCategoryColor(t *testing.T) {
	assert.NotNil(t, categoryColor("114"))
	assert.NotNil(t, categoryColor(""))
	assert.NotNil(t, categoryColor("999"))
}
