// Package mcp builds and dispatches MCP tools from loaded GraphQL operations.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sableworks/gqlbridge/internal/operation"
)

// BuildTool converts an Operation and its parameter schema into an mcp.Tool.
func BuildTool(op operation.Operation, params []operation.Parameter) mcp.Tool {
	opts := []mcp.ToolOption{}
	if op.Description != "" {
		opts = append(opts, mcp.WithDescription(op.Description))
	}
	for _, p := range params {
		opts = append(opts, buildParamOption(p))
	}
	return mcp.NewTool(op.Name, opts...)
}

// buildParamOption maps a schema parameter to the appropriate mcp-go tool option.
func buildParamOption(p operation.Parameter) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Required {
		opts = append(opts, mcp.Required())
	}

	if p.IsArray {
		items := mcp.Items(map[string]interface{}{"type": p.JSONType})
		return mcp.WithArray(p.Name, append([]mcp.PropertyOption{items}, opts...)...)
	}

	switch p.JSONType {
	case "number":
		return mcp.WithNumber(p.Name, opts...)
	case "boolean":
		return mcp.WithBoolean(p.Name, opts...)
	default:
		return mcp.WithString(p.Name, opts...)
	}
}
