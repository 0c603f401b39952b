package shopping

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/shoplist/pkg/app"
	"tableflip.dev/shoplist/pkg/item"
	"tableflip.dev/shoplist/pkg/store"
)

func newService(t *testing.T) (*app.Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	mem.SetRaw(store.RecordInventory, []byte(`[{"id":1,"name":"Leite","category":"frigorifico"}]`))
	mem.SetRaw(store.RecordShoppingList, []byte(`[{"id":1,"name":"Leite","category":"frigorifico","bought":true}]`))
	return app.New(mem), mem
}

func prompted(svc *app.Service, answer string, yes bool) (Prompted, *bytes.Buffer) {
	var out bytes.Buffer
	return Prompted{Yes: yes, In: strings.NewReader(answer), Out: &out, Service: svc}, &out
}

func TestRemoveConfirmed(t *testing.T) {
	svc, _ := newService(t)
	p, out := prompted(svc, "sim\n", false)

	r := Remove{Prompted: p, ID: 1}
	require.NoError(t, r.Do(context.Background()))
	assert.Empty(t, svc.ShoppingList())
	assert.Contains(t, out.String(), app.MsgRemoveShoppingItem)
	assert.Contains(t, out.String(), "Removido: Leite")
}

func TestRemoveDeclined(t *testing.T) {
	svc, mem := newService(t)
	p, out := prompted(svc, "n\n", false)

	r := Remove{Prompted: p, ID: 1}
	require.NoError(t, r.Do(context.Background()))
	assert.Len(t, svc.ShoppingList(), 1)
	assert.Zero(t, mem.TotalWrites())
	assert.Contains(t, out.String(), "Cancelado.")
}

func TestRemoveUnknownID(t *testing.T) {
	svc, _ := newService(t)
	p, _ := prompted(svc, "", true)

	r := Remove{Prompted: p, ID: 99}
	err := r.Do(context.Background())
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestUncheckAllWithYes(t *testing.T) {
	svc, _ := newService(t)
	p, out := prompted(svc, "", true)

	u := UncheckAll{Prompted: p}
	require.NoError(t, u.Do(context.Background()))
	assert.False(t, svc.ShoppingList()[0].Bought)
	assert.NotContains(t, out.String(), app.MsgUncheckAll, "--yes does not print the question")
}

func TestClearAll(t *testing.T) {
	svc, mem := newService(t)
	p, _ := prompted(svc, "s\n", false)

	c := Clear{Prompted: p}
	require.NoError(t, c.Do(context.Background()))
	assert.Empty(t, svc.ShoppingList())
	raw, _ := mem.Raw(store.RecordShoppingList)
	assert.JSONEq(t, `[]`, string(raw))
}

type readOnly struct {
	*store.Memory
}

func (readOnly) SaveShoppingList([]item.ShoppingListItem) error { return errors.New("read-only") }

func TestClearReportsSaveFailure(t *testing.T) {
	mem := store.NewMemory()
	mem.SetRaw(store.RecordShoppingList, []byte(`[{"id":1,"name":"Leite","category":"frigorifico"}]`))
	svc := app.New(readOnly{Memory: mem})
	p, _ := prompted(svc, "", true)

	c := Clear{Prompted: p}
	assert.EqualError(t, c.Do(context.Background()), "read-only")
}

func TestAddAndToggle(t *testing.T) {
	mem := store.NewMemory()
	mem.SetRaw(store.RecordInventory, []byte(`[{"id":1,"name":"Leite","category":"frigorifico"}]`))
	svc := app.New(mem)

	a := Add{ID: 1, Service: svc}
	require.NoError(t, a.Do(context.Background()))
	require.NoError(t, a.Do(context.Background()), "adding twice is not an error")
	assert.Len(t, svc.ShoppingList(), 1)

	tg := Toggle{ID: 1, Service: svc}
	require.NoError(t, tg.Do(context.Background()))
	assert.True(t, svc.ShoppingList()[0].Bought)

	missing := Toggle{ID: 2, Service: svc}
	assert.ErrorIs(t, missing.Do(context.Background()), app.ErrNotFound)
	assert.ErrorIs(t, (&Add{ID: 2, Service: svc}).Do(context.Background()), app.ErrNotFound)
}

func TestNoService(t *testing.T) {
	assert.Error(t, (&List{}).Do(context.Background()))
	assert.Error(t, (&Clear{}).Do(context.Background()))
}
