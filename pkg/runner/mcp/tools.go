package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/shoplist/pkg/category"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListInventoryTool(srv, svc)
	registerListShoppingListTool(srv, svc)
	registerAddItemTool(srv, svc)
	registerAddToShoppingListTool(srv, svc)
	registerToggleBoughtTool(srv, svc)
	registerToggleCollapsedTool(srv, svc)
	registerDeleteItemTool(srv, svc)
	registerRemoveFromShoppingListTool(srv, svc)
	registerUncheckAllTool(srv, svc)
	registerClearAllTool(srv, svc)
}

func idArg(desc string) mcp.ToolOption {
	return mcp.WithNumber("id", mcp.Required(), mcp.Description(desc))
}

func confirmArg() mcp.ToolOption {
	return mcp.WithBoolean("confirm",
		mcp.Description("Must be true. Ask the user first; the action cannot be undone."),
	)
}

func requireID(request mcp.CallToolRequest) (int64, error) {
	id, err := request.RequireFloat("id")
	if err != nil {
		return 0, err
	}
	return int64(id), nil
}

func categoryKeys() []string {
	keys := category.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, string(k))
	}
	return out
}

func registerListInventoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_inventory",
		mcp.WithDescription("List the inventory grouped by category, flagging items already on the shopping list."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		v, err := svc.Inventory()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(v)
	})
}

func registerListShoppingListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_shopping_list",
		mcp.WithDescription("List the shopping list grouped by category, unbought items first."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		v, err := svc.ShoppingList()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(v)
	})
}

func registerAddItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_item",
		mcp.WithDescription("Add a new item to the inventory."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Item name."),
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category key."),
			mcp.Enum(categoryKeys()...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name     string `json:"name"`
			Category string `json:"category"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		it, err := svc.AddItem(args.Name, args.Category)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(it)
	})
}

func registerAddToShoppingListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_to_shopping_list",
		mcp.WithDescription("Put an inventory item on the shopping list."),
		idArg("Inventory item identifier."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := requireID(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		it, added, err := svc.AddToShoppingList(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !added {
			return mcp.NewToolResultText(fmt.Sprintf("%s is already on the shopping list", it.Name)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("added %s to the shopping list", it.Name)), nil
	})
}

func registerToggleBoughtTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_bought",
		mcp.WithDescription("Mark a shopping list item as bought, or not bought if it already was."),
		idArg("Shopping list item identifier."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := requireID(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		it, err := svc.ToggleBought(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(it)
	})
}

func registerToggleCollapsedTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_category_collapsed",
		mcp.WithDescription("Collapse or expand a category group in one of the lists."),
		mcp.WithString("list",
			mcp.Required(),
			mcp.Description("Which list the group belongs to."),
			mcp.Enum("inventory", "shoppingList"),
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category key."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			List     string `json:"list"`
			Category string `json:"category"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		collapsed, err := svc.ToggleCollapsed(args.List, args.Category)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"list":      args.List,
			"category":  args.Category,
			"collapsed": collapsed,
		})
	})
}

func registerDeleteItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_item",
		mcp.WithDescription("Delete an item from the inventory. Its shopping list entry, if any, is kept."),
		idArg("Inventory item identifier."),
		confirmArg(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := requireID(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return confirmedResult(svc.DeleteItem(id, request.GetBool("confirm", false)), "deleted")
	})
}

func registerRemoveFromShoppingListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_from_shopping_list",
		mcp.WithDescription("Remove an item from the shopping list."),
		idArg("Shopping list item identifier."),
		confirmArg(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := requireID(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return confirmedResult(svc.RemoveFromShoppingList(id, request.GetBool("confirm", false)), "removed")
	})
}

func registerUncheckAllTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"uncheck_all",
		mcp.WithDescription("Mark every shopping list item as not bought."),
		confirmArg(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return confirmedResult(svc.UncheckAll(request.GetBool("confirm", false)), "unchecked all items")
	})
}

func registerClearAllTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"clear_shopping_list",
		mcp.WithDescription("Remove every item from the shopping list."),
		confirmArg(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return confirmedResult(svc.ClearAll(request.GetBool("confirm", false)), "cleared the shopping list")
	})
}

func confirmedResult(err error, done string) (*mcp.CallToolResult, error) {
	switch {
	case errors.Is(err, ErrConfirmationRequired):
		return mcp.NewToolResultError(err.Error() + " (call again with confirm=true)"), nil
	case err != nil:
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(done), nil
}

func toJSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
