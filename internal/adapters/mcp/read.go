package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"filesense/internal/application/commands"
	"filesense/internal/domain"
	"filesense/internal/ports"
)

// RegisterReadTools adds the read-only organizer tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, scanner ports.FolderScanner) {
	s.AddTool(selectFolderTool(), selectFolderHandler())
	s.AddTool(analyzeFolderTool(), analyzeFolderHandler(scanner))
	s.AddTool(listCategoriesTool(), listCategoriesHandler())
}

// --- select_folder ---

func selectFolderTool() mcp.Tool {
	return mcp.NewTool("select_folder",
		mcp.WithDescription("Return the default folder to organize. Fails if the location does not exist."),
	)
}

func selectFolderHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewSelectFolderCommand().Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Path), nil
	}
}

// --- analyze_folder ---

func analyzeFolderTool() mcp.Tool {
	return mcp.NewTool("analyze_folder",
		mcp.WithDescription("Scan a folder (non-recursive) and classify every file into one of the eleven categories. Returns the analysis as JSON."),
		mcp.WithString("folder_path",
			mcp.Description("Absolute path of the folder to analyze"),
			mcp.Required(),
		),
	)
}

func analyzeFolderHandler(scanner ports.FolderScanner) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folderPath := req.GetString("folder_path", "")

		cmd := commands.NewAnalyzeCommand(scanner, folderPath)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		payload, err := json.MarshalIndent(result.Analysis, "", "  ")
		if err != nil {
			return toolError(fmt.Errorf("encoding analysis: %w", err))
		}
		return mcp.NewToolResultText(string(payload)), nil
	}
}

// --- list_categories ---

func listCategoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List the fixed set of categories files are sorted into."),
	)
}

func listCategoriesHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		for _, c := range domain.Categories() {
			sb.WriteString(c.String())
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
