// Package mcpserver exposes one calculator over the Model Context Protocol so
// an agent can press keys and read the display.
package mcpserver

import (
	"fmt"
	"log"
	"sync"

	"pocketcalc/calc"
	"pocketcalc/internal/buildinfo"

	"github.com/mark3labs/mcp-go/server"
)

const Name = "pocketcalc"

// Session is a calculator shared by every tool call.
type Session struct {
	mu    sync.Mutex
	state calc.State
}

func NewSession() *Session {
	return &Session{state: calc.New()}
}

// Press applies keys in order and returns the resulting display.
func (s *Session) Press(keys ...calc.Key) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.PressAll(keys...)
	return s.state.Display()
}

func (s *Session) Display() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Display()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() calc.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Server wires a Session into an MCP server.
type Server struct {
	mcpServer *server.MCPServer
	session   *Session
	trace     bool
}

// NewServer creates the MCP server and registers the calculator tools.
func NewServer(trace bool) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(Name, buildinfo.Short()),
		session:   NewSession(),
		trace:     trace,
	}
	s.registerTools()
	return s
}

func (s *Server) Session() *Session { return s.session }

// Start serves over stdio until the client disconnects.
func (s *Server) Start() error {
	log.Printf("Starting %s MCP server %s", Name, buildinfo.Long())
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	return nil
}

func (s *Server) registerTools() {
	press := NewPressTool(s.session, s.trace)
	s.mcpServer.AddTool(press.GetTool(), press.Handle)

	display := NewDisplayTool(s.session)
	s.mcpServer.AddTool(display.GetTool(), display.Handle)

	clearTool := NewClearTool(s.session)
	s.mcpServer.AddTool(clearTool.GetTool(), clearTool.Handle)
}
