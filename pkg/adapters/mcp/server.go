package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aretw0/transducer"
	"github.com/aretw0/transducer/internal/logging"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SummaryURI is the resource exposing the loaded table's summary.
const SummaryURI = "transducer://table/summary"

// TransduceResponse is the structured result of the generate and analyze tools.
type TransduceResponse struct {
	Table     string   `json:"table" jsonschema_description:"Name of the loaded table"`
	Direction string   `json:"direction" jsonschema_description:"generate or analyze"`
	Input     string   `json:"input" jsonschema_description:"The input string as received"`
	Outputs   []string `json:"outputs" jsonschema_description:"Every output reachable at an accepting state, in search order"`
}

// Server wraps a Transducer and exposes it as an MCP Server.
type Server struct {
	engine    ports.Transducer
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Transducer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("transducer-mcp", transducer.Version),
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
	generateTool := mcp.NewTool("generate",
		mcp.WithDescription(fmt.Sprintf("Generate surface forms from an analysis string (e.g. cat<N><PL>) using the %q table.", s.engine.Name())),
		mcp.WithString("input", mcp.Required(), mcp.Description("Analysis string, tags in angle brackets")),
		mcp.WithOutputSchema[TransduceResponse](),
	)
	s.mcpServer.AddTool(generateTool, mcp.NewStructuredToolHandler(s.handleTransduce(domain.DirectionGenerate)))

	analyzeTool := mcp.NewTool("analyze",
		mcp.WithDescription(fmt.Sprintf("Analyze a surface form (e.g. cats) into every possible analysis using the %q table.", s.engine.Name())),
		mcp.WithString("input", mcp.Required(), mcp.Description("Surface string")),
		mcp.WithOutputSchema[TransduceResponse](),
	)
	s.mcpServer.AddTool(analyzeTool, mcp.NewStructuredToolHandler(s.handleTransduce(domain.DirectionAnalyze)))

	s.mcpServer.AddTool(mcp.NewTool("describe_table",
		mcp.WithDescription("Describe the loaded table: start state, accepting states, alphabets and sizes."),
	), s.handleDescribe)
}

func (s *Server) handleTransduce(dir domain.Direction) func(context.Context, mcp.CallToolRequest, map[string]interface{}) (TransduceResponse, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TransduceResponse, error) {
		input, _ := args["input"].(string)

		outputs, err := s.engine.Transduce(ctx, dir, input)
		if err != nil {
			s.logger.Warn("MCP transduction failed", "err", err, "direction", dir)
			return TransduceResponse{}, fmt.Errorf("%s failed: %w", dir, err)
		}
		if outputs == nil {
			outputs = []string{}
		}
		return TransduceResponse{
			Table:     s.engine.Name(),
			Direction: string(dir),
			Input:     input,
			Outputs:   outputs,
		}, nil
	}
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(s.summary())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("describe failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

type namedSummary struct {
	Name string `json:"name"`
	domain.Summary
}

func (s *Server) summary() namedSummary {
	return namedSummary{Name: s.engine.Name(), Summary: s.engine.Describe()}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(SummaryURI, "Loaded Table Summary",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.summary())
		if err != nil {
			return nil, fmt.Errorf("failed to describe table: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      SummaryURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
