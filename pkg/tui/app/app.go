// Package teaui hosts the Bubble Tea program for the shoplist TUI.
package teaui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"tableflip.dev/shoplist/pkg/app"
	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/item"
	"tableflip.dev/shoplist/pkg/store"
	"tableflip.dev/shoplist/pkg/tui/theme"
	"tableflip.dev/shoplist/pkg/view"
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeConfirm
)

type rowKind int

const (
	rowHeader rowKind = iota
	rowItem
)

// row is one selectable line of the active list: a category header or an
// item inside an expanded group.
type row struct {
	kind rowKind
	key  category.Key
	id   int64
	name string
}

var errServiceUnavailable = errors.New("service unavailable")

// Model contains UI state. It is the renderer for the Service it wraps, so
// every operation redraws through RenderInventory and RenderShoppingList.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc
	log    zerolog.Logger
	mode   mode
	theme  theme.Theme

	inventory view.Inventory
	shopping  view.ShoppingList

	rows   []row
	cursor int
	offset int

	input         textinput.Model
	categories    []category.Definition
	categoryIndex int

	confirmMessage string

	status    string
	statusErr bool

	termWidth  int
	termHeight int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// Option customises a Model.
type Option func(*Model)

// WithLogger sets the logger used for watch and operation diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) { m.log = l }
}

// New creates a UI model backed by svc and performs the initial render.
func New(svc *app.Service, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "Nome do item"
	ti.CharLimit = 120
	ti.Prompt = ""

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		svc:        svc,
		ctx:        ctx,
		cancel:     cancel,
		log:        zerolog.Nop(),
		mode:       modeNormal,
		theme:      theme.Default(),
		input:      ti,
		categories: category.All(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if svc != nil {
		svc.SetRenderer(m)
		svc.SetErrorHandler(m.setError)
		svc.Prompt().OnChange = m.promptChanged
		svc.RenderAll()
	}
	return m
}

// Init starts watching the store for external changes.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.svc)
}

// RenderInventory implements app.Renderer.
func (m *Model) RenderInventory(v view.Inventory) {
	m.inventory = v
	if m.activeTab() == item.Inventory {
		m.rebuildRows()
	}
}

// RenderShoppingList implements app.Renderer.
func (m *Model) RenderShoppingList(v view.ShoppingList) {
	m.shopping = v
	if m.activeTab() == item.ShoppingList {
		m.rebuildRows()
	}
}

// SetGroupCollapsed implements app.Renderer by flipping one header in place.
func (m *Model) SetGroupCollapsed(list item.ListType, key category.Key, collapsed bool) {
	switch list {
	case item.Inventory:
		for i := range m.inventory.Groups {
			if m.inventory.Groups[i].Key == key {
				m.inventory.Groups[i].Collapsed = collapsed
			}
		}
	case item.ShoppingList:
		for i := range m.shopping.Groups {
			if m.shopping.Groups[i].Key == key {
				m.shopping.Groups[i].Collapsed = collapsed
			}
		}
	}
	if list == m.activeTab() {
		m.rebuildRows()
	}
}

func (m *Model) activeTab() item.ListType {
	if m.svc == nil {
		return item.Inventory
	}
	return m.svc.ActiveTab()
}

// rebuildRows flattens the active view into selectable rows, keeping the
// cursor on the same header or item when it is still present.
func (m *Model) rebuildRows() {
	var selected *row
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		r := m.rows[m.cursor]
		selected = &r
	}

	var rows []row
	if m.activeTab() == item.ShoppingList {
		for _, g := range m.shopping.Groups {
			rows = append(rows, row{kind: rowHeader, key: g.Key})
			if g.Collapsed {
				continue
			}
			for _, it := range g.Rows {
				rows = append(rows, row{kind: rowItem, key: g.Key, id: it.ID, name: it.Name})
			}
		}
	} else {
		for _, g := range m.inventory.Groups {
			rows = append(rows, row{kind: rowHeader, key: g.Key})
			if g.Collapsed {
				continue
			}
			for _, r := range g.Rows {
				rows = append(rows, row{kind: rowItem, key: g.Key, id: r.Item.ID, name: r.Item.Name})
			}
		}
	}
	m.rows = rows

	if selected != nil {
		for i, r := range rows {
			if r.kind == selected.kind && r.key == selected.key && r.id == selected.id {
				m.cursor = i
				m.ensureVisible()
				return
			}
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// bodyHeight is the number of list lines that fit the terminal; zero means
// the size is not known yet and everything is drawn.
func (m *Model) bodyHeight() int {
	if m.termHeight == 0 {
		return 0
	}
	reserve := 8
	if m.mode != modeNormal {
		reserve += 7
	}
	if h := m.termHeight - reserve; h > 3 {
		return h
	}
	return 3
}

func (m *Model) ensureVisible() {
	h := m.bodyHeight()
	if h == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) promptChanged(message string, visible bool) {
	if visible {
		m.confirmMessage = message
		m.mode = modeConfirm
		return
	}
	m.confirmMessage = ""
	if m.mode == modeConfirm {
		m.mode = modeNormal
	}
	m.ensureVisible()
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.log.Error().Err(err).Msg("operation failed")
	m.status = "Erro: " + err.Error()
	m.statusErr = true
}

// Update routes messages by mode.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.input.Width = m.nameWidth()
		m.ensureVisible()
	case watchStartedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
		}
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// Run launches the interactive TUI program.
func Run(svc *app.Service, opts ...Option) error {
	m := New(svc, opts...)
	defer m.shutdown()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) shutdown() {
	m.stopWatch()
	m.cancel()
}
