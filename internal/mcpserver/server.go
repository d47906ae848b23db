// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes daybook tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/evensrud/daybook/internal/clock"
	"github.com/evensrud/daybook/internal/index"
	"github.com/evensrud/daybook/internal/vault"
)

// Server wraps the MCP server with daybook tools.
type Server struct {
	mcp   *server.MCPServer
	store *vault.Store
	db    *index.DB
}

// New creates a new MCP server with all daybook tools registered.
// db may be nil; search_notes then reports an error to the client.
func New(store *vault.Store, db *index.DB) *Server {
	s := &Server{store: store, db: db}

	s.mcp = server.NewMCPServer(
		"Daybook",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("add_note",
		mcp.WithDescription("Append a timestamped note to the day file. "+
			"The note is stored in the vault's configured representation; read the "+
			"daybook://note-format resource for the file layout."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Note text")),
		mcp.WithString("date", mcp.Description("Optional date (vault locale formats or the configured override)")),
		mcp.WithString("time", mcp.Description("Optional time of day (HH:MM, HH:MM:SS, or 12-hour forms)")),
		mcp.WithString("category", mcp.Description("Optional category selecting a section header")),
	), s.addNote)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List the (time, content) entries of one day, optionally scoped to a category's section."),
		mcp.WithString("date", mcp.Description("Optional date; defaults to today")),
		mcp.WithString("category", mcp.Description("Optional category selecting a section header")),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("search_notes",
		mcp.WithDescription("Full-text search through indexed note entries."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchNotes)

	s.mcp.AddResource(
		mcp.NewResource("daybook://note-format", "Day File Format",
			mcp.WithResourceDescription("Layout of the per-day markdown files daybook reads and writes."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readNoteFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) addNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	date := req.GetString("date", "")
	timeStr := req.GetString("time", "")
	category := req.GetString("category", "")

	ts, err := s.store.ResolveTimestamp(date, nil, timeStr, "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.store.AddNote(content, ts, category); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("added note at %s on %s",
		clock.FormatTime(ts), clock.FormatDate(ts))), nil
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := s.store.ResolveDate(req.GetString("date", ""), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rows, err := s.store.ListNotes(date, req.GetString("category", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(rows) == 0 {
		return mcp.NewToolResultText("no notes for " + clock.FormatDate(date)), nil
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", r.Time, r.Content)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) searchNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if s.db == nil {
		return mcp.NewToolResultError("search index is not available"), nil
	}
	results, err := s.db.Search(query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readNoteFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "daybook://note-format",
			MIMEType: "text/markdown",
			Text:     NoteFormatContract,
		},
	}, nil
}
