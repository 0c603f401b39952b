package inventory

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/shoplist/pkg/app"
	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/store"
)

func TestAddValidates(t *testing.T) {
	svc := app.New(store.NewMemory())

	assert.EqualError(t, (&Add{Name: "  ", Category: category.Frescos, Service: svc}).Do(context.Background()), "item name is required")
	assert.EqualError(t, (&Add{Name: "Leite", Service: svc}).Do(context.Background()), "category is required")
	assert.Error(t, (&Add{Name: "Leite", Category: category.Frescos}).Do(context.Background()))
	assert.Empty(t, svc.Inventory())
}

func TestAddStoresItem(t *testing.T) {
	mem := store.NewMemory()
	svc := app.New(mem)

	require.NoError(t, (&Add{Name: "Leite", Category: category.Frigorifico, Service: svc}).Do(context.Background()))

	again := app.New(mem)
	require.Len(t, again.Inventory(), 1)
	assert.Equal(t, "Leite", again.Inventory()[0].Name)
}

func TestRemoveKeepsShoppingListCopy(t *testing.T) {
	mem := store.NewMemory()
	mem.SetRaw(store.RecordInventory, []byte(`[{"id":1,"name":"Leite","category":"frigorifico"}]`))
	mem.SetRaw(store.RecordShoppingList, []byte(`[{"id":1,"name":"Leite","category":"frigorifico","bought":false}]`))
	svc := app.New(mem)

	var out bytes.Buffer
	r := Remove{ID: 1, In: strings.NewReader("y\n"), Out: &out, Service: svc}
	require.NoError(t, r.Do(context.Background()))

	assert.Empty(t, svc.Inventory())
	assert.Len(t, svc.ShoppingList(), 1)
	assert.Contains(t, out.String(), "Apagado: Leite")
}

func TestRemoveDeclined(t *testing.T) {
	mem := store.NewMemory()
	mem.SetRaw(store.RecordInventory, []byte(`[{"id":1,"name":"Leite","category":"frigorifico"}]`))
	svc := app.New(mem)

	var out bytes.Buffer
	r := Remove{ID: 1, In: strings.NewReader("\n"), Out: &out, Service: svc}
	require.NoError(t, r.Do(context.Background()))

	assert.Len(t, svc.Inventory(), 1)
	assert.Zero(t, mem.TotalWrites())
	assert.Contains(t, out.String(), "Cancelado.")
}

func TestRemoveUnknown(t *testing.T) {
	svc := app.New(store.NewMemory())
	r := Remove{ID: 5, Yes: true, Service: svc}
	assert.ErrorIs(t, r.Do(context.Background()), app.ErrNotFound)
}
