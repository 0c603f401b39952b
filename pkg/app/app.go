// Package app owns the inventory and shopping list state and implements the
// operations that change it. UIs and CLIs share it so every surface persists
// and re-renders the same way.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/confirm"
	"tableflip.dev/shoplist/pkg/item"
	"tableflip.dev/shoplist/pkg/store"
	"tableflip.dev/shoplist/pkg/view"
)

// Prompt messages shown before destructive operations.
const (
	MsgDeleteInventoryItem = "Tem certeza que deseja apagar este item do inventário?"
	MsgRemoveShoppingItem  = "Tem certeza que deseja remover este item da lista de compras?"
	MsgUncheckAll          = "Tem certeza que deseja desmarcar todos os itens da lista de compras?"
	MsgClearAll            = "Tem certeza que deseja limpar toda a lista de compras? Esta ação é irreversível."
)

// ErrNotFound is returned by lookups for IDs that are not present.
var ErrNotFound = errors.New("app: item not found")

// Renderer receives view trees whenever a list needs redrawing.
type Renderer interface {
	RenderInventory(v view.Inventory)
	RenderShoppingList(v view.ShoppingList)
	// SetGroupCollapsed flips a single group without a full re-render.
	SetGroupCollapsed(list item.ListType, key category.Key, collapsed bool)
}

// Service provides the domain operations over the two lists.
// It is not safe for concurrent use; callers drive it from one event loop.
type Service struct {
	persistence store.Persistence
	prompt      *confirm.Prompt
	renderer    Renderer
	log         zerolog.Logger
	locale      language.Tag
	now         func() time.Time
	onError     func(error)

	inventory []item.InventoryItem
	shopping  []item.ShoppingListItem
	collapsed item.CollapsedState
	active    item.ListType
}

// Option customises a Service.
type Option func(*Service)

// WithRenderer sets the sink for view trees.
func WithRenderer(r Renderer) Option {
	return func(s *Service) { s.renderer = r }
}

// WithPrompt sets the confirmation prompt used by destructive operations.
func WithPrompt(p *confirm.Prompt) Option {
	return func(s *Service) { s.prompt = p }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithLocale sets the collation used by the renderer.
func WithLocale(tag language.Tag) Option {
	return func(s *Service) { s.locale = tag }
}

// WithClock overrides the time source used for new IDs.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithErrorHandler receives save failures from confirmed operations, which
// have no caller to return them to.
func WithErrorHandler(fn func(error)) Option {
	return func(s *Service) { s.onError = fn }
}

// New loads all records from p and returns a Service showing the inventory
// tab. Nothing is rendered until RenderAll or Reload.
func New(p store.Persistence, opts ...Option) *Service {
	s := &Service{
		persistence: p,
		log:         zerolog.Nop(),
		locale:      language.Portuguese,
		now:         time.Now,
		active:      item.Inventory,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.prompt == nil {
		s.prompt = confirm.New()
	}
	s.load()
	return s
}

func (s *Service) load() {
	s.inventory = s.persistence.LoadInventory()
	s.shopping = s.persistence.LoadShoppingList()
	s.collapsed = s.persistence.LoadCollapsed()
}

// Prompt returns the confirmation prompt the Service waits on.
func (s *Service) Prompt() *confirm.Prompt {
	return s.prompt
}

// SetRenderer replaces the render sink.
func (s *Service) SetRenderer(r Renderer) {
	s.renderer = r
}

// SetErrorHandler replaces the receiver of save failures from confirmed
// operations.
func (s *Service) SetErrorHandler(fn func(error)) {
	s.onError = fn
}

// Watch streams change events for the persisted records.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.persistence.Watch(ctx)
}

// Reload re-reads every record and re-renders both lists.
func (s *Service) Reload() {
	s.load()
	s.RenderAll()
}

// RenderAll renders both lists.
func (s *Service) RenderAll() {
	s.renderInventory()
	s.renderShoppingList()
}

// ActiveTab returns the list currently shown.
func (s *Service) ActiveTab() item.ListType {
	return s.active
}

// SetActiveTab switches the visible list and renders it.
func (s *Service) SetActiveTab(list item.ListType) {
	s.active = list
	if list == item.ShoppingList {
		s.renderShoppingList()
		return
	}
	s.renderInventory()
}

// Inventory returns a copy of the inventory.
func (s *Service) Inventory() []item.InventoryItem {
	out := make([]item.InventoryItem, len(s.inventory))
	copy(out, s.inventory)
	return out
}

// ShoppingList returns a copy of the shopping list.
func (s *Service) ShoppingList() []item.ShoppingListItem {
	out := make([]item.ShoppingListItem, len(s.shopping))
	copy(out, s.shopping)
	return out
}

// Collapsed returns a copy of the collapsed state.
func (s *Service) Collapsed() item.CollapsedState {
	return s.collapsed.Clone()
}

// InventoryView renders the inventory without notifying the renderer.
func (s *Service) InventoryView() view.Inventory {
	return view.RenderInventory(s.inventory, s.shopping, s.collapsed.Inventory, view.WithLocale(s.locale))
}

// ShoppingListView renders the shopping list without notifying the renderer.
func (s *Service) ShoppingListView() view.ShoppingList {
	return view.RenderShoppingList(s.shopping, s.collapsed.ShoppingList, view.WithLocale(s.locale))
}

// FindInventoryItem looks up id in the inventory.
func (s *Service) FindInventoryItem(id int64) (item.InventoryItem, error) {
	if i := item.FindInventory(s.inventory, id); i >= 0 {
		return s.inventory[i], nil
	}
	return item.InventoryItem{}, ErrNotFound
}

// FindShoppingListItem looks up id in the shopping list.
func (s *Service) FindShoppingListItem(id int64) (item.ShoppingListItem, error) {
	if i := item.FindShopping(s.shopping, id); i >= 0 {
		return s.shopping[i], nil
	}
	return item.ShoppingListItem{}, ErrNotFound
}

// AddInventoryItem appends a new item. It is a no-op, reporting false, when
// the trimmed name or the category is empty.
func (s *Service) AddInventoryItem(name string, cat category.Key) (item.InventoryItem, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" || cat == "" {
		return item.InventoryItem{}, false, nil
	}
	if !category.Known(cat) {
		s.log.Warn().Str("category", string(cat)).Msg("adding item with unregistered category")
	}
	it := item.New(s.inventory, name, cat, s.now())
	s.inventory = append(s.inventory, it)
	err := s.saveInventory()
	s.renderInventory()
	return it, true, err
}

// DeleteInventoryItem asks for confirmation, then removes id from the
// inventory. Shopping list entries with the same ID are kept.
func (s *Service) DeleteInventoryItem(id int64) {
	s.prompt.Show(MsgDeleteInventoryItem, func(ok bool) {
		if !ok {
			return
		}
		s.inventory = filterInventory(s.inventory, id)
		s.report(s.saveInventory())
		s.renderInventory()
	})
}

// MoveItemToShoppingList copies inventory item id onto the shopping list. It
// reports false when id is unknown or already on the list.
func (s *Service) MoveItemToShoppingList(id int64) (bool, error) {
	i := item.FindInventory(s.inventory, id)
	if i < 0 || item.FindShopping(s.shopping, id) >= 0 {
		return false, nil
	}
	s.shopping = append(s.shopping, s.inventory[i].ToShoppingList())
	err := s.saveShoppingList()
	s.renderInventory()
	if s.active == item.ShoppingList {
		s.renderShoppingList()
	}
	return true, err
}

// ToggleItemBought flips the bought flag of shopping list item id.
func (s *Service) ToggleItemBought(id int64) (bool, error) {
	i := item.FindShopping(s.shopping, id)
	if i < 0 {
		return false, nil
	}
	s.shopping[i].Bought = !s.shopping[i].Bought
	err := s.saveShoppingList()
	s.renderShoppingList()
	// Membership is unchanged, but the inventory is refreshed as well.
	s.renderInventory()
	return true, err
}

// RemoveItemFromShoppingList asks for confirmation, then removes id.
func (s *Service) RemoveItemFromShoppingList(id int64) {
	s.prompt.Show(MsgRemoveShoppingItem, func(ok bool) {
		if !ok {
			return
		}
		s.shopping = filterShopping(s.shopping, id)
		s.report(s.saveShoppingList())
		s.renderShoppingList()
		s.renderInventory()
	})
}

// UncheckAllShoppingListItems asks for confirmation, then clears every
// bought flag.
func (s *Service) UncheckAllShoppingListItems() {
	s.prompt.Show(MsgUncheckAll, func(ok bool) {
		if !ok {
			return
		}
		for i := range s.shopping {
			s.shopping[i].Bought = false
		}
		s.report(s.saveShoppingList())
		s.renderShoppingList()
	})
}

// ClearAllShoppingListItems asks for confirmation, then empties the list.
func (s *Service) ClearAllShoppingListItems() {
	s.prompt.Show(MsgClearAll, func(ok bool) {
		if !ok {
			return
		}
		s.shopping = []item.ShoppingListItem{}
		s.report(s.saveShoppingList())
		s.renderShoppingList()
		s.renderInventory()
	})
}

// ToggleCategoryCollapsed flips key in the collapsed set of list and reports
// whether the group is now collapsed.
func (s *Service) ToggleCategoryCollapsed(list item.ListType, key category.Key) (bool, error) {
	collapsed := s.collapsed.Toggle(list, key)
	err := s.persistence.SaveCollapsed(s.collapsed)
	if err != nil {
		s.log.Error().Err(err).Str("record", string(store.RecordCollapsed)).Msg("save failed")
	}
	if s.renderer != nil {
		s.renderer.SetGroupCollapsed(list, key, collapsed)
	}
	return collapsed, err
}

func (s *Service) saveInventory() error {
	if err := s.persistence.SaveInventory(s.inventory); err != nil {
		s.log.Error().Err(err).Str("record", string(store.RecordInventory)).Msg("save failed")
		return err
	}
	return nil
}

func (s *Service) saveShoppingList() error {
	if err := s.persistence.SaveShoppingList(s.shopping); err != nil {
		s.log.Error().Err(err).Str("record", string(store.RecordShoppingList)).Msg("save failed")
		return err
	}
	return nil
}

func (s *Service) report(err error) {
	if err != nil && s.onError != nil {
		s.onError(err)
	}
}

func (s *Service) renderInventory() {
	if s.renderer != nil {
		s.renderer.RenderInventory(s.InventoryView())
	}
}

func (s *Service) renderShoppingList() {
	if s.renderer != nil {
		s.renderer.RenderShoppingList(s.ShoppingListView())
	}
}

func filterInventory(items []item.InventoryItem, id int64) []item.InventoryItem {
	out := make([]item.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func filterShopping(items []item.ShoppingListItem, id int64) []item.ShoppingListItem {
	out := make([]item.ShoppingListItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}
