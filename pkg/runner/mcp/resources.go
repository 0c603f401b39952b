package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	addJSONResource(srv, "shoplist://inventory", "Inventory",
		"Known items grouped by category.",
		func() (any, error) { return svc.Inventory() })
	addJSONResource(srv, "shoplist://shopping-list", "Shopping List",
		"Items currently needed grouped by category, unbought first.",
		func() (any, error) { return svc.ShoppingList() })
	addJSONResource(srv, "shoplist://categories", "Categories",
		"Registered category keys and labels.",
		func() (any, error) { return svc.Categories(), nil })
	addJSONResource(srv, "shoplist://report", "Report",
		"Per-category counts across both lists.",
		func() (any, error) { return svc.Report() })
}

func addJSONResource(srv *server.MCPServer, uri, name, desc string, load func() (any, error)) {
	resource := mcp.NewResource(
		uri,
		name,
		mcp.WithResourceDescription(desc),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		payload, err := load()
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
