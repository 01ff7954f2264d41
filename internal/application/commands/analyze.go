package commands

import (
	"context"
	"fmt"

	"filesense/internal/application"
	"filesense/internal/domain"
	"filesense/internal/ports"
)

// AnalyzeResult contains the result of analyzing a folder
type AnalyzeResult struct {
	Analysis *domain.FolderAnalysis
	Message  string
}

// AnalyzeCommand scans a folder and classifies every file in it
type AnalyzeCommand struct {
	scanner    ports.FolderScanner
	FolderPath string
}

// NewAnalyzeCommand creates a new AnalyzeCommand
func NewAnalyzeCommand(scanner ports.FolderScanner, folderPath string) *AnalyzeCommand {
	return &AnalyzeCommand{
		scanner:    scanner,
		FolderPath: folderPath,
	}
}

// Validate checks if the analyze operation is valid
func (c *AnalyzeCommand) Validate() error {
	return application.ValidateRequired("folder path", c.FolderPath)
}

// Execute runs the analyze command
func (c *AnalyzeCommand) Execute(ctx context.Context) (*AnalyzeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	analysis, err := c.scanner.Analyze(c.FolderPath)
	if err != nil {
		return nil, err
	}

	return &AnalyzeResult{
		Analysis: analysis,
		Message:  fmt.Sprintf("Analyzed %d files in %s", analysis.TotalFiles, c.FolderPath),
	}, nil
}
