// Package inventory contains runners for the inventory commands.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/shoplist/pkg/app"
	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/confirm"
	"tableflip.dev/shoplist/pkg/printers"
)

// Add configures `shoplist inventory add`.
type Add struct {
	Name     string
	Category category.Key
	JSON     bool
	Service  *app.Service
}

// Do adds the item and prints it.
func (a *Add) Do(_ context.Context) error {
	if a.Service == nil {
		return errors.New("can not add, no service")
	}
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("item name is required")
	}
	if a.Category == "" {
		return errors.New("category is required")
	}
	it, _, err := a.Service.AddInventoryItem(a.Name, a.Category)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	if a.JSON {
		return pp.JSON(it)
	}
	_, _ = fmt.Fprintf(color.Output, "%d %s (%s)\n", it.ID, it.Name, category.Label(it.Category))
	return nil
}

// List configures `shoplist inventory ls`.
type List struct {
	ShowID  bool
	JSON    bool
	Service *app.Service
}

// Do prints the inventory view.
func (l *List) Do(_ context.Context) error {
	if l.Service == nil {
		return errors.New("can not list, no service")
	}
	pp := printers.PrettyPrint{ShowID: l.ShowID}
	v := l.Service.InventoryView()
	if l.JSON {
		return pp.JSON(v)
	}
	pp.NewLine()
	pp.Inventory(v)
	return nil
}

// Remove configures `shoplist inventory rm`.
type Remove struct {
	ID      int64
	Yes     bool
	In      io.Reader
	Out     io.Writer
	Service *app.Service
}

// Do asks for confirmation and deletes the item.
func (r *Remove) Do(_ context.Context) error {
	if r.Service == nil {
		return errors.New("can not remove, no service")
	}
	it, err := r.Service.FindInventoryItem(r.ID)
	if err != nil {
		return fmt.Errorf("inventory item %d: %w", r.ID, err)
	}

	var saveErr error
	r.Service.SetErrorHandler(func(err error) { saveErr = err })
	r.Service.DeleteInventoryItem(r.ID)
	if !confirm.Ask(r.Service.Prompt(), r.in(), r.out(), r.Yes) {
		_, _ = fmt.Fprintln(r.out(), "Cancelado.")
		return nil
	}
	if saveErr != nil {
		return saveErr
	}
	_, _ = fmt.Fprintf(r.out(), "Apagado: %s\n", it.Name)
	return nil
}

func (r *Remove) in() io.Reader {
	if r.In == nil {
		return os.Stdin
	}
	return r.In
}

func (r *Remove) out() io.Writer {
	if r.Out == nil {
		return color.Output
	}
	return r.Out
}
