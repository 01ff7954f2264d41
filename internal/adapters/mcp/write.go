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

// RegisterWriteTools adds the organize and undo tools to the MCP server.
// The journal retains each run's move log so undo_organize can be
// called later without re-supplying it; pass nil to disable journaling.
func RegisterWriteTools(s *server.MCPServer, mover ports.Organizer, journal ports.MoveJournal) {
	s.AddTool(organizeFilesTool(), organizeFilesHandler(mover, journal))
	s.AddTool(undoOrganizeTool(), undoOrganizeHandler(mover, journal))
}

// --- organize_files ---

func organizeFilesTool() mcp.Tool {
	return mcp.NewTool("organize_files",
		mcp.WithDescription("Move files into per-category subfolders. The plan is a JSON object with a target_root string; every other key maps a category name to a list of {\"path\": ...} objects. Returns the move log needed for undo."),
		mcp.WithString("plan",
			mcp.Description("Organization plan as a JSON object"),
			mcp.Required(),
		),
	)
}

func organizeFilesHandler(mover ports.Organizer, journal ports.MoveJournal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		planJSON := req.GetString("plan", "")
		if planJSON == "" {
			return toolError(fmt.Errorf("plan is required"))
		}

		var raw map[string]any
		if err := json.Unmarshal([]byte(planJSON), &raw); err != nil {
			return toolError(fmt.Errorf("plan is not valid JSON: %w", err))
		}

		cmd, err := commands.NewOrganizeCommandFromValue(mover, raw)
		if err != nil {
			return toolError(err)
		}

		result, execErr := cmd.Execute(ctx)

		// Journal whatever succeeded before reporting, so a partial run
		// stays undoable.
		if journal != nil && result != nil && len(result.Moves) > 0 {
			if _, err := journal.SaveBatch(cmd.Plan.TargetRoot, result.Moves); err != nil {
				return toolError(fmt.Errorf("saving move log: %w", err))
			}
		}

		if execErr != nil {
			return toolError(execErr)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteByte('\n')
		for _, w := range cmd.Warnings {
			fmt.Fprintf(&sb, "warning: %s\n", w)
		}
		payload, err := json.MarshalIndent(result.Moves, "", "  ")
		if err != nil {
			return toolError(fmt.Errorf("encoding move log: %w", err))
		}
		sb.Write(payload)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- undo_organize ---

func undoOrganizeTool() mcp.Tool {
	return mcp.NewTool("undo_organize",
		mcp.WithDescription("Reverse a previous organize run. Pass the move log returned by organize_files, or omit it to undo the most recent journaled run."),
		mcp.WithString("moves",
			mcp.Description("Move log as a JSON array of {\"from\", \"to\"} objects. Optional when a journaled run exists."),
		),
	)
}

func undoOrganizeHandler(mover ports.Organizer, journal ports.MoveJournal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		movesJSON := req.GetString("moves", "")

		var moves []domain.MoveRecord
		var batchID int64

		switch {
		case movesJSON != "":
			if err := json.Unmarshal([]byte(movesJSON), &moves); err != nil {
				return toolError(fmt.Errorf("moves is not a valid move log: %w", err))
			}
		case journal != nil:
			batch, journaled, err := journal.LatestBatch()
			if err != nil {
				return toolError(err)
			}
			moves = journaled
			batchID = batch.ID
		default:
			return toolError(fmt.Errorf("moves is required"))
		}

		result, err := commands.NewUndoCommand(mover, moves).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if batchID != 0 {
			if err := journal.DeleteBatch(batchID); err != nil {
				return toolError(fmt.Errorf("clearing move log: %w", err))
			}
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
