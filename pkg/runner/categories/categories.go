// Package categories contains runners for category listing and collapse.
package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/shoplist/pkg/app"
	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/item"
	"tableflip.dev/shoplist/pkg/printers"
)

// Categories prints the category registry.
type Categories struct {
	JSON bool
}

// Do renders the registry to stdout.
func (c *Categories) Do(_ context.Context) error {
	pp := printers.PrettyPrint{}
	if c.JSON {
		return pp.JSON(category.All())
	}
	pp.NewLine()
	pp.Categories(category.All())
	return nil
}

// Collapse configures `shoplist collapse`.
type Collapse struct {
	List     item.ListType
	Category category.Key
	Service  *app.Service
}

// Do flips the group and reports its new state.
func (c *Collapse) Do(_ context.Context) error {
	if c.Service == nil {
		return errors.New("can not collapse, no service")
	}
	if c.Category == "" {
		return errors.New("category is required")
	}
	collapsed, err := c.Service.ToggleCategoryCollapsed(c.List, c.Category)
	if err != nil {
		return err
	}
	state := "expandido"
	if collapsed {
		state = "recolhido"
	}
	_, _ = fmt.Fprintf(color.Output, "%s em %s: %s\n", category.Label(c.Category), c.List, state)
	return nil
}
