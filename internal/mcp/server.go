package mcp

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/finlens/pnl-metrics/internal/config"
	"github.com/finlens/pnl-metrics/internal/pnl"
)

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	pnlService *pnl.Service
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, pnlService *pnl.Service) (*Server, error) {
	if pnlService == nil {
		return nil, fmt.Errorf("pnlService cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:     cfg,
		pnlService: pnlService,
		mcpServer:  mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register P&L extract file tool
	pnlExtractFileTool := mcp.NewTool(
		"pnl_extract_file",
		mcp.WithDescription("Extract financial metrics (income, COGS, expenses, net income) from a P&L report PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the P&L report PDF"),
		),
		mcp.WithString("source",
			mcp.Description("Text source to use: auto, ledongthuc or pdftotext (uses auto if empty)"),
		),
	)
	s.mcpServer.AddTool(pnlExtractFileTool, s.handlePNLExtractFile)

	// Register P&L read file tool
	pnlReadFileTool := mcp.NewTool(
		"pnl_read_file",
		mcp.WithDescription("Read and extract the raw text content of a P&L report PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the P&L report PDF"),
		),
		mcp.WithString("source",
			mcp.Description("Text source to use: auto, ledongthuc or pdftotext (uses auto if empty)"),
		),
	)
	s.mcpServer.AddTool(pnlReadFileTool, s.handlePNLReadFile)

	// Register P&L validate file tool
	pnlValidateFileTool := mcp.NewTool(
		"pnl_validate_file",
		mcp.WithDescription("Validate if a file is a readable P&L report PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the P&L report PDF"),
		),
	)
	s.mcpServer.AddTool(pnlValidateFileTool, s.handlePNLValidateFile)

	// Register P&L search directory tool
	pnlSearchDirectoryTool := mcp.NewTool(
		"pnl_search_directory",
		mcp.WithDescription("Search for P&L report PDFs in a directory with optional fuzzy matching"),
		mcp.WithString("directory",
			mcp.Description("Directory path to search (uses default if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional search query for fuzzy matching"),
		),
	)
	s.mcpServer.AddTool(pnlSearchDirectoryTool, s.handlePNLSearchDirectory)
}

// Handler functions
func (s *Server) handlePNLExtractFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	source := s.config.Source // default
	if src, ok := args["source"].(string); ok && src != "" {
		source = src
	}

	req := pnl.PNLExtractFileRequest{Path: path, Source: source}
	result, err := s.pnlService.ExtractFile(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := s.formatPNLExtractFileResult(result)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handlePNLReadFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	source := s.config.Source // default
	if src, ok := args["source"].(string); ok && src != "" {
		source = src
	}

	req := pnl.PNLReadFileRequest{Path: path, Source: source}
	result, err := s.pnlService.ReadFile(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Successfully read report: %s\n", result.Path)
	responseText += fmt.Sprintf("Text source: %s\n", result.Source)
	responseText += "\nContent:\n"
	responseText += result.Content

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handlePNLValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := pnl.PNLValidateFileRequest{Path: path}
	result, err := s.pnlService.ValidateFile(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.Valid {
		responseText = fmt.Sprintf("Report file %s is valid and readable", result.Path)
	} else {
		responseText = fmt.Sprintf("Report validation failed for %s: %s", result.Path, result.Message)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handlePNLSearchDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.ReportDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	query := ""
	if q, ok := args["query"].(string); ok {
		query = q
	}

	req := pnl.PNLSearchDirectoryRequest{
		Directory: directory,
		Query:     query,
	}

	result, err := s.pnlService.SearchDirectory(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.TotalCount == 0 {
		responseText = fmt.Sprintf("No report files found in directory: %s", result.Directory)
		if result.SearchQuery != "" {
			responseText += fmt.Sprintf(" (searched for: %s)", result.SearchQuery)
		}
	} else {
		responseText = s.formatPNLSearchDirectoryResult(result)
	}

	return mcp.NewToolResultText(responseText), nil
}

// Formatting methods
func (s *Server) formatPNLExtractFileResult(result *pnl.PNLExtractFileResult) string {
	text := fmt.Sprintf("Financial metrics for: %s\n", result.Path)
	text += fmt.Sprintf("Text source: %s\n", result.Source)
	text += fmt.Sprintf("Text length: %d characters\n", result.TextLength)

	if len(result.Metrics) == 0 {
		text += "\nNo financial metrics could be located in this report.\n"
		return text
	}

	keys := make([]string, 0, len(result.Metrics))
	for key := range result.Metrics {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	text += "\nMetrics:\n"
	for _, key := range keys {
		text += fmt.Sprintf("  %s: %.2f\n", key, result.Metrics[key])
	}

	return text
}

func (s *Server) formatPNLSearchDirectoryResult(result *pnl.PNLSearchDirectoryResult) string {
	text := fmt.Sprintf("Found %d report file(s) in directory: %s\n", result.TotalCount, result.Directory)
	if result.SearchQuery != "" {
		text += fmt.Sprintf("Search query: %s\n", result.SearchQuery)
	}
	text += "\nFiles:\n"

	for i, file := range result.Files {
		text += fmt.Sprintf("%d. %s\n", i+1, file.Name)
		text += fmt.Sprintf("   Path: %s\n", file.Path)
		text += fmt.Sprintf("   Size: %d bytes\n", file.Size)
		text += fmt.Sprintf("   Modified: %s\n", file.ModifiedTime)
		if i < len(result.Files)-1 {
			text += "\n"
		}
	}

	return text
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	} else {
		return s.runStdioMode(ctx)
	}
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting P&L metrics MCP server in stdio mode")
		log.Printf("Report directory: %s", s.config.ReportDirectory)
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// For now, we'll just use stdio mode since the mark3labs library
	// handles the transport differently
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}
