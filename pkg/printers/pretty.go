package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/shoplist/pkg/app"
	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/view"
)

// DefaultNameWidth bounds item names in table output.
const DefaultNameWidth = 40

type PrettyPrint struct {
	ShowID    bool
	NameWidth uint
	Out       io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) name(s string) string {
	w := pp.NameWidth
	if w == 0 {
		w = DefaultNameWidth
	}
	return truncate.StringWithTail(s, w, "…")
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " itens")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " nenhum\n\n")
}

// header prints a group line in the category colour. Collapsed groups get a
// closed marker and no rows.
func (pp *PrettyPrint) header(g view.Group, rows int) {
	marker := "▾"
	if g.Collapsed {
		marker = "▸"
	}
	h := categoryColor(g.Color).Add(color.Bold)
	_, _ = h.Fprintf(pp.out(), "%s %s", marker, g.Label)
	_, _ = color.New(color.Faint).Fprintf(pp.out(), " (%d)\n", rows)
}

// Inventory prints every group of v. Items already on the shopping list are
// shown in green.
func (pp *PrettyPrint) Inventory(v view.Inventory) {
	pp.TitleWithCount("Inventário", v.Len())
	if len(v.Groups) == 0 {
		pp.none()
		return
	}

	listed := color.New(color.FgGreen)
	plain := color.New()
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, g := range v.Groups {
		pp.header(g.Group, len(g.Rows))
		if g.Collapsed {
			continue
		}
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, r := range g.Rows {
			c, mark := plain, " "
			if r.InShoppingList {
				c, mark = listed, "🛒"
			}
			if pp.ShowID {
				tbl.AddRow(" ", id.Sprint(r.Item.ID), mark, c.Sprint(pp.name(r.Item.Name)))
			} else {
				tbl.AddRow(" ", mark, c.Sprint(pp.name(r.Item.Name)))
			}
		}
		_, _ = fmt.Fprintln(pp.out(), tbl)
	}
	pp.NewLine()
}

// ShoppingList prints every group of v. Bought items are struck through.
func (pp *PrettyPrint) ShoppingList(v view.ShoppingList) {
	pp.TitleWithCount("Lista de Compras", v.Len())
	if len(v.Groups) == 0 {
		pp.none()
		return
	}

	bought := color.New(color.CrossedOut, color.Faint)
	plain := color.New()
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, g := range v.Groups {
		pp.header(g.Group, len(g.Rows))
		if g.Collapsed {
			continue
		}
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, r := range g.Rows {
			c, box := plain, "[ ]"
			if r.Bought {
				c, box = bought, "[x]"
			}
			if pp.ShowID {
				tbl.AddRow(" ", id.Sprint(r.ID), box, c.Sprint(pp.name(r.Name)))
			} else {
				tbl.AddRow(" ", box, c.Sprint(pp.name(r.Name)))
			}
		}
		_, _ = fmt.Fprintln(pp.out(), tbl)
	}
	_, _ = color.New(color.Faint).Fprintf(pp.out(), "%d/%d comprados\n\n", v.Bought(), v.Len())
}

// Categories prints the registry as a key/label table.
func (pp *PrettyPrint) Categories(defs []category.Definition) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Label"))
	for _, d := range defs {
		tbl.AddRow(d.Key, categoryColor(d.Color).Sprint(d.Label))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Report prints per-category counts.
func (pp *PrettyPrint) Report(r app.ReportResult) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Categoria"), bold.Sprint("Inventário"), bold.Sprint("Na lista"), bold.Sprint("Comprados"))
	for _, s := range r.Sections {
		tbl.AddRow(s.Label, s.Inventory, s.Listed, s.Bought)
	}
	tbl.AddRow(bold.Sprint("Total"), r.Inventory, r.Listed, r.Bought)
	for col := 1; col <= 3; col++ {
		tbl.RightAlign(col)
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// categoryColor maps a 256-colour palette index to a foreground colour.
func categoryColor(code string) *color.Color {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil || n < 0 || n > 255 {
		return color.New()
	}
	return color.New(38, 5, color.Attribute(n))
}

// JSON prints v as indented JSON.
func (pp *PrettyPrint) JSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
