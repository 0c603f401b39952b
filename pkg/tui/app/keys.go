package teaui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/shoplist/pkg/item"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.shutdown()
		return tea.Quit
	}
	switch m.mode {
	case modeAdd:
		return m.handleAddKey(msg)
	case modeConfirm:
		m.handleConfirmKey(msg)
		return nil
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) {
	if m.svc == nil {
		m.mode = modeNormal
		return
	}
	switch msg.String() {
	case "y", "s", "enter":
		m.svc.Prompt().Confirm()
	case "n", "esc", "q":
		m.svc.Prompt().Cancel()
		m.setStatus("Cancelado")
	}
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		m.shutdown()
		return tea.Quit
	case "tab":
		if m.activeTab() == item.Inventory {
			m.switchTab(item.ShoppingList)
		} else {
			m.switchTab(item.Inventory)
		}
	case "1":
		m.switchTab(item.Inventory)
	case "2":
		m.switchTab(item.ShoppingList)
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.cursor = 0
		m.clampCursor()
	case "G", "end":
		m.cursor = len(m.rows) - 1
		m.clampCursor()
	case "enter":
		if r, ok := m.currentRow(); ok && r.kind == rowHeader {
			m.toggleCollapsed(r)
		}
	case " ":
		r, ok := m.currentRow()
		if !ok {
			break
		}
		if r.kind == rowHeader {
			m.toggleCollapsed(r)
		} else if m.activeTab() == item.ShoppingList {
			m.toggleBought(r)
		}
	default:
		if m.activeTab() == item.ShoppingList {
			m.handleShoppingKey(msg)
			return nil
		}
		return m.handleInventoryKey(msg)
	}
	return nil
}

func (m *Model) handleInventoryKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "a":
		return m.enterAddMode()
	case "+":
		if r, ok := m.currentRow(); ok && r.kind == rowItem {
			m.moveToShoppingList(r)
		}
	case "x", "d":
		if r, ok := m.currentRow(); ok && r.kind == rowItem && m.svc != nil {
			m.svc.DeleteInventoryItem(r.id)
		}
	}
	return nil
}

func (m *Model) handleShoppingKey(msg tea.KeyMsg) {
	if m.svc == nil {
		return
	}
	switch msg.String() {
	case "x", "d":
		if r, ok := m.currentRow(); ok && r.kind == rowItem {
			m.svc.RemoveItemFromShoppingList(r.id)
		}
	case "u":
		m.svc.UncheckAllShoppingListItems()
	case "c":
		m.svc.ClearAllShoppingListItems()
	}
}

func (m *Model) handleAddKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.exitAddMode()
		return nil
	case "enter":
		m.submitAdd()
		return nil
	case "tab":
		m.categoryIndex = (m.categoryIndex + 1) % len(m.categories)
		return nil
	case "shift+tab":
		m.categoryIndex = (m.categoryIndex - 1 + len(m.categories)) % len(m.categories)
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) switchTab(list item.ListType) {
	if m.svc == nil || m.activeTab() == list {
		return
	}
	m.cursor = 0
	m.offset = 0
	m.rows = nil
	m.svc.SetActiveTab(list)
}

func (m *Model) toggleCollapsed(r row) {
	if m.svc == nil {
		m.setError(errServiceUnavailable)
		return
	}
	if _, err := m.svc.ToggleCategoryCollapsed(m.activeTab(), r.key); err != nil {
		m.setError(err)
	}
}

func (m *Model) toggleBought(r row) {
	if m.svc == nil {
		m.setError(errServiceUnavailable)
		return
	}
	if _, err := m.svc.ToggleItemBought(r.id); err != nil {
		m.setError(err)
	}
}

func (m *Model) moveToShoppingList(r row) {
	if m.svc == nil {
		m.setError(errServiceUnavailable)
		return
	}
	moved, err := m.svc.MoveItemToShoppingList(r.id)
	switch {
	case err != nil:
		m.setError(err)
	case moved:
		m.setStatus(fmt.Sprintf("%s adicionado à lista de compras", r.name))
	default:
		m.setStatus(fmt.Sprintf("%s já está na lista de compras", r.name))
	}
}

func (m *Model) enterAddMode() tea.Cmd {
	if m.svc == nil {
		m.setError(errServiceUnavailable)
		return nil
	}
	if r, ok := m.currentRow(); ok {
		for i, def := range m.categories {
			if def.Key == r.key {
				m.categoryIndex = i
				break
			}
		}
	}
	m.mode = modeAdd
	m.input.Reset()
	m.ensureVisible()
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) exitAddMode() {
	m.input.Reset()
	m.input.Blur()
	m.mode = modeNormal
	m.ensureVisible()
}

func (m *Model) submitAdd() {
	cat := m.categories[m.categoryIndex].Key
	it, ok, err := m.svc.AddInventoryItem(m.input.Value(), cat)
	if err != nil {
		m.setError(err)
	}
	if !ok {
		if err == nil {
			m.setStatus("Indique o nome do item")
		}
		return
	}
	m.exitAddMode()
	m.selectItem(it.ID)
	if err == nil {
		m.setStatus(fmt.Sprintf("%s adicionado ao inventário", it.Name))
	}
}

// selectItem moves the cursor onto id when it is visible.
func (m *Model) selectItem(id int64) {
	for i, r := range m.rows {
		if r.kind == rowItem && r.id == id {
			m.cursor = i
			m.ensureVisible()
			return
		}
	}
}
