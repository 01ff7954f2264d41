package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"filesense/internal/adapters/filesystem"
	mcpadapter "filesense/internal/adapters/mcp"
	"filesense/internal/adapters/sqlite"
	"filesense/internal/config"
)

func main() {
	journalFlag := flag.String("journal", config.JournalPath(), "path to the move-log journal")
	flag.Parse()

	scanner := filesystem.NewScanner()
	mover := filesystem.NewMover()

	journal, err := sqlite.Open(*journalFlag)
	if err != nil {
		log.Fatalf("filesense-mcp: %v", err)
	}
	defer journal.Close()

	mcpServer := server.NewMCPServer(
		"filesense-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, scanner)
	mcpadapter.RegisterWriteTools(mcpServer, mover, journal)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("filesense-mcp: %v", err)
	}
}
