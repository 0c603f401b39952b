package ui

import (
	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/item"
	"tableflip.dev/shoplist/pkg/store"
)

// StaticDemo returns a small pantry used by ephemeral sessions.
func StaticDemo() ([]item.InventoryItem, []item.ShoppingListItem) {
	inv := []item.InventoryItem{
		{ID: 1, Name: "Maçãs", Category: category.Frescos},
		{ID: 2, Name: "Tomate", Category: category.Frescos},
		{ID: 3, Name: "Leite", Category: category.Frigorifico},
		{ID: 4, Name: "Iogurte", Category: category.Frigorifico},
		{ID: 5, Name: "Pão", Category: category.Padaria},
		{ID: 6, Name: "Frango", Category: category.TalhoPeixaria},
		{ID: 7, Name: "Arroz", Category: category.Despensa},
		{ID: 8, Name: "Azeite", Category: category.Despensa},
		{ID: 9, Name: "Detergente", Category: category.LimpezaHigiene},
		{ID: 10, Name: "Ervilhas", Category: category.Congelados},
		{ID: 11, Name: "Pilhas", Category: category.Outros},
	}

	shopping := []item.ShoppingListItem{
		inv[2].ToShoppingList(),
		inv[4].ToShoppingList(),
		inv[6].ToShoppingList(),
	}
	shopping[1].Bought = true

	return inv, shopping
}

// Seed writes the demo records to p.
func Seed(p store.Persistence) error {
	inv, shopping := StaticDemo()
	if err := p.SaveInventory(inv); err != nil {
		return err
	}
	return p.SaveShoppingList(shopping)
}
