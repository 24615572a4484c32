package mcpserver

import (
	"context"
	"fmt"
	"log"

	"pocketcalc/calc"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names
const (
	ToolPress   = "calc_press"
	ToolDisplay = "calc_display"
	ToolClear   = "calc_clear"
)

// PressTool presses a sequence of keys.
type PressTool struct {
	session *Session
	trace   bool
}

func NewPressTool(session *Session, trace bool) *PressTool {
	return &PressTool{session: session, trace: trace}
}

// GetTool returns the MCP tool definition
func (t *PressTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPress,
		mcp.WithDescription("Press calculator keys in order and return the display. "+
			"Keys are separated by spaces, e.g. \"1 2 + 3 =\". "+
			"Accepted labels: 0-9 . ± % ⌫ C + - × ÷ = and the aliases +/- * x / bs ac."),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Keys to press")),
	)
}

// Handle processes the tool request
func (t *PressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	script := mcp.ParseString(req, "keys", "")
	if script == "" {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}
	keys, err := calc.ParseKeys(script)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse keys: %v", err)), nil
	}
	display := t.session.Press(keys...)
	if t.trace {
		log.Printf("%s %q -> %s", ToolPress, script, display)
	}
	return mcp.NewToolResultText(display), nil
}

// DisplayTool reads the display without pressing anything.
type DisplayTool struct {
	session *Session
}

func NewDisplayTool(session *Session) *DisplayTool {
	return &DisplayTool{session: session}
}

// GetTool returns the MCP tool definition
func (t *DisplayTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolDisplay,
		mcp.WithDescription("Return the calculator display and any pending operation"),
	)
}

// Handle processes the tool request
func (t *DisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st := t.session.Snapshot()
	text := st.Display()
	if op, prev, ok := st.Pending(); ok {
		text = fmt.Sprintf("%s\npending: %s %s", text, calc.FormatNumber(prev), op)
	}
	return mcp.NewToolResultText(text), nil
}

// ClearTool resets the calculator.
type ClearTool struct {
	session *Session
}

func NewClearTool(session *Session) *ClearTool {
	return &ClearTool{session: session}
}

// GetTool returns the MCP tool definition
func (t *ClearTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolClear,
		mcp.WithDescription("Clear the calculator back to 0"),
	)
}

// Handle processes the tool request
func (t *ClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.session.Press(calc.KeyClear)), nil
}
