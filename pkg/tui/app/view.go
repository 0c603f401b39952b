package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/item"
	"tableflip.dev/shoplist/pkg/view"
)

const (
	tabInventory    = "Inventário"
	tabShoppingList = "Lista de Compras"
)

// View renders the tab bar, the active list, any open form or dialog, and
// the footer.
func (m *Model) View() string {
	sections := []string{m.renderTabs(), m.renderBody()}

	switch m.mode {
	case modeAdd:
		sections = append(sections, m.renderAddForm())
	case modeConfirm:
		sections = append(sections, m.renderConfirm())
	}
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n\n")
}

func (m *Model) renderTabs() string {
	inv := fmt.Sprintf("%s (%d)", tabInventory, m.inventory.Len())
	shop := fmt.Sprintf("%s (%d/%d)", tabShoppingList, m.shopping.Bought(), m.shopping.Len())

	active, inactive := m.theme.Tabs.Active, m.theme.Tabs.Inactive
	left, right := active.Render(inv), inactive.Render(shop)
	if m.activeTab() == item.ShoppingList {
		left, right = inactive.Render(inv), active.Render(shop)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.theme.Tabs.Gap.Render("│"), right)
}

func (m *Model) renderBody() string {
	if len(m.rows) == 0 {
		if m.activeTab() == item.ShoppingList {
			return m.theme.List.Empty.Render("A lista de compras está vazia. Use + no inventário para adicionar itens.")
		}
		return m.theme.List.Empty.Render("O inventário está vazio. Prima a para adicionar um item.")
	}

	start, end := 0, len(m.rows)
	if h := m.bodyHeight(); h > 0 {
		start = min(m.offset, end)
		end = min(start+h, end)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		marker := "  "
		if i == m.cursor {
			marker = m.theme.List.Cursor.Render("→ ")
		}
		lines = append(lines, marker+m.renderRow(m.rows[i]))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(r row) string {
	if r.kind == rowHeader {
		return m.renderHeader(r.key)
	}
	if m.activeTab() == item.ShoppingList {
		return m.renderShoppingRow(r)
	}
	return m.renderInventoryRow(r)
}

func (m *Model) renderHeader(key category.Key) string {
	var g view.Group
	n := 0
	if m.activeTab() == item.ShoppingList {
		for _, sg := range m.shopping.Groups {
			if sg.Key == key {
				g, n = sg.Group, len(sg.Rows)
			}
		}
	} else {
		for _, ig := range m.inventory.Groups {
			if ig.Key == key {
				g, n = ig.Group, len(ig.Rows)
			}
		}
	}
	arrow := "▾"
	if g.Collapsed {
		arrow = "▸"
	}
	return m.theme.CategoryHeader(g.Color).Render(arrow+" "+g.Label) +
		m.theme.List.Count.Render(fmt.Sprintf(" (%d)", n))
}

func (m *Model) renderInventoryRow(r row) string {
	name := m.truncateName(r.name)
	for _, g := range m.inventory.Groups {
		if g.Key != r.key {
			continue
		}
		for _, ir := range g.Rows {
			if ir.Item.ID == r.id && ir.InShoppingList {
				return "  " + m.theme.List.Listed.Render(name+" 🛒")
			}
		}
	}
	return "  " + m.theme.List.Row.Render(name)
}

func (m *Model) renderShoppingRow(r row) string {
	name := m.truncateName(r.name)
	for _, g := range m.shopping.Groups {
		if g.Key != r.key {
			continue
		}
		for _, it := range g.Rows {
			if it.ID == r.id && it.Bought {
				return "  [x] " + m.theme.List.Bought.Render(name)
			}
		}
	}
	return "  [ ] " + m.theme.List.Row.Render(name)
}

func (m *Model) nameWidth() int {
	if m.termWidth <= 0 {
		return 0
	}
	if w := m.termWidth - 12; w > 8 {
		return w
	}
	return 8
}

func (m *Model) truncateName(name string) string {
	w := m.nameWidth()
	if w == 0 {
		return name
	}
	return truncate.StringWithTail(name, uint(w), "…")
}

func (m *Model) renderAddForm() string {
	def := m.categories[m.categoryIndex]
	body := strings.Join([]string{
		m.theme.Form.Title.Render("Novo item"),
		m.theme.Form.Label.Render("Nome:      ") + m.input.View(),
		m.theme.Form.Label.Render("Categoria: ") + m.theme.CategoryHeader(def.Color).Render("‹ "+def.Label+" ›"),
	}, "\n")
	return m.theme.Form.Frame.Render(body)
}

func (m *Model) renderConfirm() string {
	body := strings.Join([]string{
		m.theme.Modal.Title.Render("Confirmar"),
		m.theme.Modal.Body.Render(m.confirmMessage),
		m.theme.Modal.Keys.Render("[y] sim   [n] não"),
	}, "\n\n")
	return m.theme.Modal.Frame.Render(body)
}

func (m *Model) renderFooter() string {
	var help string
	switch {
	case m.mode == modeAdd:
		help = "enter guardar · tab/shift+tab categoria · esc cancelar"
	case m.mode == modeConfirm:
		help = "y confirmar · n cancelar"
	case m.activeTab() == item.ShoppingList:
		help = "j/k mover · espaço comprado/recolher · x remover · u desmarcar tudo · c limpar · tab inventário · q sair"
	default:
		help = "j/k mover · a adicionar · + para a lista · x apagar · espaço recolher · tab lista · q sair"
	}
	lines := []string{m.theme.Footer.Help.Render(help)}
	if m.status != "" {
		style := m.theme.Footer.Status
		if m.statusErr {
			style = m.theme.Footer.Error
		}
		lines = append(lines, style.Render(m.status))
	}
	return strings.Join(lines, "\n")
}
