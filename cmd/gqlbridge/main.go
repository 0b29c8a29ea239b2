package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/sableworks/gqlbridge/internal/common"
	"github.com/sableworks/gqlbridge/internal/config"
	"github.com/sableworks/gqlbridge/internal/graphql"
	gqlmcp "github.com/sableworks/gqlbridge/internal/mcp"
	"github.com/sableworks/gqlbridge/internal/operation"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "", "Path to config file (default: gqlbridge.toml or $GQLBRIDGE_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(config.ResolvePath(*configFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gqlbridge: %v\n\n%s\n", err, config.Usage)
		os.Exit(1)
	}

	common.LoadVersionFromFile()
	version := cfg.Version
	if version == "" {
		version = common.GetVersion()
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)

	ops, err := operation.LoadDir(cfg.GraphQL.Operations)
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("failed to load operations")
		fmt.Fprintf(os.Stderr, "gqlbridge: %v\n", err)
		os.Exit(1)
	}

	client := graphql.NewClient(cfg.GraphQL.Endpoint, cfg.GraphQL.Headers, logger)

	registry, err := gqlmcp.NewRegistry(ops, client, logger)
	if err != nil {
		logger.Error().Str("error", err.Error()).Msg("failed to build tool registry")
		fmt.Fprintf(os.Stderr, "gqlbridge: %v\n", err)
		os.Exit(1)
	}

	mcpServer := server.NewMCPServer(
		cfg.Name,
		version,
		server.WithToolCapabilities(true),
	)
	count := registry.Register(mcpServer)

	logger.Info().
		Int("tools", count).
		Str("endpoint", cfg.GraphQL.Endpoint).
		Str("operations_dir", cfg.GraphQL.Operations).
		Str("version", common.GetFullVersion()).
		Msg("registered GraphQL operations as MCP tools")

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	logger.Info().Str("port", cfg.Server.Port).Msg("starting MCP streamable HTTP")
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", cfg.Server.Port)

	if err := httpServer.Start(":" + cfg.Server.Port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
