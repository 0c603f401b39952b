// Package mcp exposes the inventory and shopping list over the Model Context
// Protocol.
package mcp

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"tableflip.dev/shoplist/pkg/app"
	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/item"
	"tableflip.dev/shoplist/pkg/view"
)

// ErrConfirmationRequired is returned by destructive operations called
// without confirm set. The error text carries the question to relay.
var ErrConfirmationRequired = errors.New("confirmation required")

// Service serialises MCP requests onto an app.Service, re-reading the
// records first so changes made by other processes are seen.
type Service struct {
	mu  sync.Mutex
	app *app.Service
}

// CategoryDTO describes a registered category.
type CategoryDTO struct {
	Key   category.Key `json:"key"`
	Label string       `json:"label"`
}

// NewService wraps svc.
func NewService(svc *app.Service) *Service {
	return &Service{app: svc}
}

func (s *Service) do(fn func(*app.Service) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.app == nil {
		return errors.New("mcp: service is not configured")
	}
	s.app.Reload()
	return fn(s.app)
}

// Inventory returns the grouped inventory view.
func (s *Service) Inventory() (v view.Inventory, err error) {
	err = s.do(func(a *app.Service) error {
		v = a.InventoryView()
		return nil
	})
	return v, err
}

// ShoppingList returns the grouped shopping list view.
func (s *Service) ShoppingList() (v view.ShoppingList, err error) {
	err = s.do(func(a *app.Service) error {
		v = a.ShoppingListView()
		return nil
	})
	return v, err
}

// Report returns per-category counts.
func (s *Service) Report() (r app.ReportResult, err error) {
	err = s.do(func(a *app.Service) error {
		r = a.Report()
		return nil
	})
	return r, err
}

// Categories lists the registry.
func (s *Service) Categories() []CategoryDTO {
	defs := category.All()
	out := make([]CategoryDTO, 0, len(defs))
	for _, d := range defs {
		out = append(out, CategoryDTO{Key: d.Key, Label: d.Label})
	}
	return out
}

// AddItem adds name to the inventory under cat.
func (s *Service) AddItem(name, cat string) (it item.InventoryItem, err error) {
	err = s.do(func(a *app.Service) error {
		var ok bool
		it, ok, err = a.AddInventoryItem(name, category.Parse(cat))
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("name and category are required")
		}
		return nil
	})
	return it, err
}

// AddToShoppingList copies inventory item id onto the shopping list. It
// reports false when the item was already listed.
func (s *Service) AddToShoppingList(id int64) (it item.InventoryItem, added bool, err error) {
	err = s.do(func(a *app.Service) error {
		if it, err = a.FindInventoryItem(id); err != nil {
			return fmt.Errorf("inventory item %d: %w", id, err)
		}
		added, err = a.MoveItemToShoppingList(id)
		return err
	})
	return it, added, err
}

// ToggleBought flips the bought flag of shopping list item id.
func (s *Service) ToggleBought(id int64) (it item.ShoppingListItem, err error) {
	err = s.do(func(a *app.Service) error {
		if _, err := a.FindShoppingListItem(id); err != nil {
			return fmt.Errorf("shopping list item %d: %w", id, err)
		}
		if _, err := a.ToggleItemBought(id); err != nil {
			return err
		}
		it, err = a.FindShoppingListItem(id)
		return err
	})
	return it, err
}

// ToggleCollapsed flips a category group of list and reports whether it is
// now collapsed.
func (s *Service) ToggleCollapsed(list, cat string) (collapsed bool, err error) {
	lt, err := item.ParseListType(list)
	if err != nil {
		return false, err
	}
	err = s.do(func(a *app.Service) error {
		collapsed, err = a.ToggleCategoryCollapsed(lt, category.Parse(cat))
		return err
	})
	return collapsed, err
}

// DeleteItem removes id from the inventory.
func (s *Service) DeleteItem(id int64, confirm bool) error {
	return s.do(func(a *app.Service) error {
		if _, err := a.FindInventoryItem(id); err != nil {
			return fmt.Errorf("inventory item %d: %w", id, err)
		}
		return answer(a, confirm, func() { a.DeleteInventoryItem(id) })
	})
}

// RemoveFromShoppingList removes id from the shopping list.
func (s *Service) RemoveFromShoppingList(id int64, confirm bool) error {
	return s.do(func(a *app.Service) error {
		if _, err := a.FindShoppingListItem(id); err != nil {
			return fmt.Errorf("shopping list item %d: %w", id, err)
		}
		return answer(a, confirm, func() { a.RemoveItemFromShoppingList(id) })
	})
}

// UncheckAll clears every bought flag.
func (s *Service) UncheckAll(confirm bool) error {
	return s.do(func(a *app.Service) error {
		return answer(a, confirm, a.UncheckAllShoppingListItems)
	})
}

// ClearAll empties the shopping list.
func (s *Service) ClearAll(confirm bool) error {
	return s.do(func(a *app.Service) error {
		return answer(a, confirm, a.ClearAllShoppingListItems)
	})
}

// answer runs a prompting operation and resolves its prompt with confirm.
func answer(a *app.Service, confirm bool, op func()) error {
	var saveErr error
	a.SetErrorHandler(func(err error) { saveErr = err })
	defer a.SetErrorHandler(nil)

	op()
	msg, pending := a.Prompt().Pending()
	if !confirm {
		a.Prompt().Hide()
		if pending {
			return fmt.Errorf("%w: %s", ErrConfirmationRequired, strings.TrimSpace(msg))
		}
		return ErrConfirmationRequired
	}
	a.Prompt().Confirm()
	return saveErr
}
