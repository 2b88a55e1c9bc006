package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/sahaj"
	"github.com/aretw0/sahaj/pkg/domain"
)

// Assistant defines what the MCP surface needs from the dialogue runtime.
type Assistant interface {
	Process(ctx context.Context, sessionID, message string) (domain.Reply, error)
	Session(ctx context.Context, sessionID string) (*domain.Session, error)
	ResetSession(ctx context.Context, sessionID string) error
}

// GraphExporter renders the dialogue graph for the graph tool and resource.
type GraphExporter interface {
	Mermaid() string
}

// Server exposes the filing assistant as an MCP server, so agent hosts can
// drive the dialogue tool-by-tool.
type Server struct {
	assistant Assistant
	graph     GraphExporter
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(assistant Assistant, graph GraphExporter) *Server {
	s := &Server{
		assistant: assistant,
		graph:     graph,
		mcpServer: server.NewMCPServer("sahaj-mcp", strings.TrimSpace(sahaj.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	chatTool := mcp.NewTool("chat",
		mcp.WithDescription("Send one message to the ITR filing dialogue and get the reply. Sessions are created on first use."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Conversation identifier")),
		mcp.WithString("message", mcp.Required(), mcp.Description("User message")),
		mcp.WithOutputSchema[domain.Reply](),
	)
	s.mcpServer.AddTool(chatTool, mcp.NewStructuredToolHandler(s.handleChat))

	sessionTool := mcp.NewTool("get_session",
		mcp.WithDescription("Inspect a session: current state and the filing data collected so far."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Conversation identifier")),
	)
	s.mcpServer.AddTool(sessionTool, s.handleGetSession)

	resetTool := mcp.NewTool("reset_session",
		mcp.WithDescription("Delete a session. The next chat call starts the dialogue from the top."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Conversation identifier")),
	)
	s.mcpServer.AddTool(resetTool, s.handleResetSession)

	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the dialogue graph as a Mermaid state diagram."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(s.graph.Mermaid()), nil
	})
}

func (s *Server) handleChat(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Reply, error) {
	sessionID, _ := args["session_id"].(string)
	message, _ := args["message"].(string)
	if sessionID == "" {
		return domain.Reply{}, fmt.Errorf("session_id is required")
	}

	reply, err := s.assistant.Process(ctx, sessionID, message)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("chat failed: %w", err)
	}
	return reply, nil
}

func (s *Server) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")
	if sessionID == "" {
		return mcp.NewToolResultError("session_id is required"), nil
	}

	sess, err := s.assistant.Session(ctx, sessionID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	jsonBytes, _ := json.Marshal(sess)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleResetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")
	if sessionID == "" {
		return mcp.NewToolResultError("session_id is required"), nil
	}

	if err := s.assistant.ResetSession(ctx, sessionID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reset failed: %v", err)), nil
	}
	return mcp.NewToolResultText("session reset"), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("sahaj://graph", "Filing Dialogue Graph",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "sahaj://graph",
				MIMEType: "text/plain",
				Text:     s.graph.Mermaid(),
			},
		}, nil
	})
}
