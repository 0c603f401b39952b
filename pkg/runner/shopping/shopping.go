// Package shopping contains runners for the shopping list commands.
package shopping

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/shoplist/pkg/app"
	"tableflip.dev/shoplist/pkg/confirm"
	"tableflip.dev/shoplist/pkg/printers"
)

var errNoService = errors.New("no service")

// Add configures `shoplist list add`.
type Add struct {
	ID      int64
	Service *app.Service
}

// Do copies the inventory item onto the list.
func (a *Add) Do(_ context.Context) error {
	if a.Service == nil {
		return errNoService
	}
	it, err := a.Service.FindInventoryItem(a.ID)
	if err != nil {
		return fmt.Errorf("inventory item %d: %w", a.ID, err)
	}
	moved, err := a.Service.MoveItemToShoppingList(a.ID)
	if err != nil {
		return err
	}
	if !moved {
		_, _ = fmt.Fprintf(color.Output, "%s já está na lista de compras.\n", it.Name)
		return nil
	}
	_, _ = fmt.Fprintf(color.Output, "%s adicionado à lista de compras.\n", it.Name)
	return nil
}

// List configures `shoplist list ls`.
type List struct {
	ShowID  bool
	JSON    bool
	Service *app.Service
}

// Do prints the shopping list view.
func (l *List) Do(_ context.Context) error {
	if l.Service == nil {
		return errNoService
	}
	pp := printers.PrettyPrint{ShowID: l.ShowID}
	v := l.Service.ShoppingListView()
	if l.JSON {
		return pp.JSON(v)
	}
	pp.NewLine()
	pp.ShoppingList(v)
	return nil
}

// Toggle configures `shoplist list toggle`.
type Toggle struct {
	ID      int64
	Service *app.Service
}

// Do flips the bought flag.
func (t *Toggle) Do(_ context.Context) error {
	if t.Service == nil {
		return errNoService
	}
	if _, err := t.Service.FindShoppingListItem(t.ID); err != nil {
		return fmt.Errorf("shopping list item %d: %w", t.ID, err)
	}
	if _, err := t.Service.ToggleItemBought(t.ID); err != nil {
		return err
	}
	it, _ := t.Service.FindShoppingListItem(t.ID)
	_, _ = fmt.Fprintln(color.Output, it.String())
	return nil
}

// Prompted holds what every confirmed command needs.
type Prompted struct {
	Yes     bool
	In      io.Reader
	Out     io.Writer
	Service *app.Service
}

func (p *Prompted) in() io.Reader {
	if p.In == nil {
		return os.Stdin
	}
	return p.In
}

func (p *Prompted) out() io.Writer {
	if p.Out == nil {
		return color.Output
	}
	return p.Out
}

// ask runs op, which shows a prompt, then resolves it from the terminal. It
// reports whether the user confirmed and any save failure that followed.
func (p *Prompted) ask(op func()) (bool, error) {
	var saveErr error
	p.Service.SetErrorHandler(func(err error) { saveErr = err })
	op()
	ok := confirm.Ask(p.Service.Prompt(), p.in(), p.out(), p.Yes)
	return ok, saveErr
}

// Remove configures `shoplist list rm`.
type Remove struct {
	Prompted
	ID int64
}

// Do asks for confirmation and removes the item.
func (r *Remove) Do(_ context.Context) error {
	if r.Service == nil {
		return errNoService
	}
	it, err := r.Service.FindShoppingListItem(r.ID)
	if err != nil {
		return fmt.Errorf("shopping list item %d: %w", r.ID, err)
	}
	ok, err := r.ask(func() { r.Service.RemoveItemFromShoppingList(r.ID) })
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(r.out(), "Cancelado.")
		return nil
	}
	_, _ = fmt.Fprintf(r.out(), "Removido: %s\n", it.Name)
	return nil
}

// UncheckAll configures `shoplist list uncheck-all`.
type UncheckAll struct {
	Prompted
}

// Do asks for confirmation and clears every bought flag.
func (u *UncheckAll) Do(_ context.Context) error {
	if u.Service == nil {
		return errNoService
	}
	ok, err := u.ask(u.Service.UncheckAllShoppingListItems)
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(u.out(), "Cancelado.")
		return nil
	}
	_, _ = fmt.Fprintln(u.out(), "Todos os itens desmarcados.")
	return nil
}

// Clear configures `shoplist list clear`.
type Clear struct {
	Prompted
}

// Do asks for confirmation and empties the list.
func (c *Clear) Do(_ context.Context) error {
	if c.Service == nil {
		return errNoService
	}
	ok, err := c.ask(c.Service.ClearAllShoppingListItems)
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(c.out(), "Cancelado.")
		return nil
	}
	_, _ = fmt.Fprintln(c.out(), "Lista de compras limpa.")
	return nil
}
