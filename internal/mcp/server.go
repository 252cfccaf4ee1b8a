// Package mcp implements the Model Context Protocol server that exposes the
// provider registry to LLM agents.  It registers tools for the read
// operations (search, profiles, threads, trending, channels, balances),
// resource templates under the social:// scheme, and analysis prompts.
//
// The surface is read-only: nothing here writes to any platform.
//
// Transport: stdio (default, for local agent integrations) or Streamable
// HTTP behind a mux with a health endpoint.
package mcp

// In this file: MCP server construction and transport management.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
)

const (
	serverName    = "Beyond MCP Server"
	serverVersion = "1.0.0"
)

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout (default, suitable for local agent
	// integrations such as Claude Desktop).
	TransportStdio Transport = "stdio"
	// TransportHTTP uses Streamable HTTP (suitable for remote agents or
	// multiple concurrent clients).
	TransportHTTP Transport = "http"
)

// Server wraps an MCP server and the provider registry it serves.
type Server struct {
	mcp    *mcpsrv.MCPServer
	reg    *social.Registry
	logger *slog.Logger
}

// New creates the MCP server backed by the given registry.  All tools,
// resources and prompts are registered; the server does not start listening
// until one of the Serve* methods is called.
func New(reg *social.Registry, lg *slog.Logger) *Server {
	if lg == nil {
		lg = slog.Default()
	}
	s := &Server{
		reg:    reg,
		logger: lg,
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		serverVersion,
		mcpsrv.WithInstructions(instructions(reg)),
	)

	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}
	s.registerResources(mcpServer)
	s.registerPrompts(mcpServer)

	s.mcp = mcpServer
	return s
}

// instructions describes the capability surface to the connecting agent.
func instructions(reg *social.Registry) string {
	var platforms []string
	for _, p := range reg.AllProviders() {
		platforms = append(platforms, p.Platform())
	}
	return fmt.Sprintf(`You are connected to the Beyond MCP server, an extensible gateway for social media context.

Registered platforms: %s.

Available tools allow you to:
- Search platform content (use "from:<user>" to search a single author)
- Look up user profiles by id, username or wallet address
- Read a thread with its replies
- Get trending topics and the trending content feed
- Search channels (single or bulk queries)
- Look up a user's on-chain token balances

All operations are read-only. Use list-providers to see which platforms are currently reachable.
`, strings.Join(platforms, ", "))
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server over Streamable HTTP on addr until ctx is
// cancelled.  The MCP endpoint is mounted at /mcp next to a /healthcheck
// endpoint.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithEndpointPath("/mcp"),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthcheck", s.handleHealthcheck)
	mux.Handle("/mcp", streamSrv)

	httpSrv := &http.Server{
		Addr:    addr,
		Handler: middleware.Logger(mux),
	}

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := httpSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   serverVersion,
	})
}

// provider resolves the platform argument, or explains why it cannot.
func (s *Server) provider(platform string) (social.Provider, error) {
	p := s.reg.ProviderForPlatform(platform)
	if p == nil {
		return nil, fmt.Errorf("Provider for platform '%s' not found or not enabled", platform)
	}
	return p, nil
}

// resultText wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// resultErr wraps an error in a CallToolResult with IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	args := req.GetArguments()
	if args == nil {
		return "", false
	}
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intArg extracts a named int argument.  The MCP protocol serialises numbers
// as float64, so we convert accordingly.
func intArg(req mcplib.CallToolRequest, name string, defaultVal int) int {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return defaultVal
}

// stringSliceArg extracts a named []string argument, accepting both a JSON
// array and a comma-separated string.
func stringSliceArg(req mcplib.CallToolRequest, name string) []string {
	args := req.GetArguments()
	if args == nil {
		return nil
	}
	switch v := args[name].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, el := range v {
			if s, ok := el.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return nil
}
