package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sableworks/gqlbridge/internal/common"
	"github.com/sableworks/gqlbridge/internal/graphql"
	"github.com/sableworks/gqlbridge/internal/operation"
)

// Registry holds the tool set derived from the loaded operations. It is
// built once at startup and never mutated afterwards, so dispatch needs no
// synchronization.
type Registry struct {
	tools  []mcp.Tool
	ops    map[string]operation.Operation
	client *graphql.Client
	logger *common.Logger
}

// NewRegistry derives one tool per operation. Extraction failures (such as a
// duplicate variable declaration) abort registry construction.
func NewRegistry(ops []operation.Operation, client *graphql.Client, logger *common.Logger) (*Registry, error) {
	r := &Registry{
		ops:    make(map[string]operation.Operation, len(ops)),
		client: client,
		logger: logger,
	}

	for _, op := range ops {
		vars, err := operation.ExtractVariables(op.Document)
		if err != nil {
			return nil, fmt.Errorf("operation %q (%s): %w", op.Name, op.SourceFile, err)
		}
		r.tools = append(r.tools, BuildTool(op, operation.ParameterSchema(vars)))
		r.ops[op.Name] = op
	}
	return r, nil
}

// Tools returns a copy of the advertised tool list.
func (r *Registry) Tools() []mcp.Tool {
	tools := make([]mcp.Tool, len(r.tools))
	copy(tools, r.tools)
	return tools
}

// Register registers every tool on the MCP server, all routed through HandleCall.
func (r *Registry) Register(s *server.MCPServer) int {
	for _, t := range r.tools {
		s.AddTool(t, r.HandleCall)
	}
	return len(r.tools)
}

// HandleCall resolves a tool call to its operation and executes it against
// the endpoint. Execution failures are returned as error-flagged results,
// never as process failures: one bad call must not destabilize the server.
func (r *Registry) HandleCall(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.Params.Name
	logger := r.logger.WithCorrelationId(uuid.NewString())

	op, ok := r.ops[name]
	if !ok {
		logger.Warn().Str("tool", name).Msg("tool call for unknown tool")
		return errorResult(fmt.Sprintf("Unknown tool: %s", name)), nil
	}

	args := request.GetArguments()
	if args == nil {
		args = map[string]interface{}{}
	}

	logger.Info().Str("tool", name).Int("arguments", len(args)).Msg("dispatching tool call")

	data, err := r.client.Execute(ctx, op.Document, args)
	if err != nil {
		logger.Warn().Str("tool", name).Str("error", err.Error()).Msg("tool call failed")
		return errorResult(fmt.Sprintf("Error executing %s: %v", name, err)), nil
	}

	if len(data) == 0 {
		data = []byte("null")
	}
	return textResult(string(data)), nil
}

// textResult creates a successful MCP text result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
