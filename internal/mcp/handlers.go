package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/grovetools/wordpad/errors"
	"github.com/grovetools/wordpad/logging"
	"github.com/grovetools/wordpad/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	clipboard session.Clipboard
	wpm       int
	logger    *logrus.Entry
}

// NewHandlers creates handlers that copy to clipboard and estimate reading
// time at wpm words per minute.
func NewHandlers(clipboard session.Clipboard, wpm int) *Handlers {
	return &Handlers{
		clipboard: clipboard,
		wpm:       wpm,
		logger:    logging.NewLogger("wordpad-mcp"),
	}
}

// TransformRequest represents the arguments for transform_text.
type TransformRequest struct {
	Text    string   `json:"text"`
	Actions []string `json:"actions"`
	Payload string   `json:"payload,omitempty"`
}

// TransformResponse is the result of transform_text.
type TransformResponse struct {
	Text          string              `json:"text"`
	Mode          session.DisplayMode `json:"mode"`
	Stats         session.Stats       `json:"stats"`
	Ignored       []string            `json:"ignored,omitempty"`
	Notifications []string            `json:"notifications,omitempty"`
}

// StatsRequest represents the arguments for text_stats.
type StatsRequest struct {
	Text           string `json:"text"`
	WordsPerMinute int    `json:"words_per_minute,omitempty"`
}

// HandleTransform handles the transform_text tool call.
func (h *Handlers) HandleTransform(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TransformRequest](req)
	if err != nil {
		return errorResult(errors.InvalidInput(err.Error())), nil
	}
	if len(input.Actions) == 0 {
		return errorResult(errors.InvalidInput("actions must name at least one action")), nil
	}

	notes := &collector{}
	store := session.NewStore(
		session.WithInitial(session.Session{Text: input.Text, Mode: session.ModeLight}),
		session.WithClipboard(h.clipboard),
		session.WithNotifier(notes),
		session.WithWordsPerMinute(h.wpm),
		session.WithLogger(h.logger),
	)

	var ignored []string
	for _, name := range input.Actions {
		t, ok := session.ParseActionType(name)
		if !ok {
			ignored = append(ignored, name)
		}
		action := session.Action{Type: t}
		if t == session.ActionSetText {
			action.Payload = input.Payload
		}
		store.Dispatch(action)
	}
	store.Wait()

	snap := store.Snapshot()
	h.logger.WithFields(logrus.Fields{
		"actions": len(input.Actions),
		"ignored": len(ignored),
	}).Debug("Handled transform_text")

	return successResult(TransformResponse{
		Text:          snap.Text,
		Mode:          snap.Mode,
		Stats:         store.Stats(),
		Ignored:       ignored,
		Notifications: notes.messages(),
	})
}

// HandleStats handles the text_stats tool call.
func (h *Handlers) HandleStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[StatsRequest](req)
	if err != nil {
		return errorResult(errors.InvalidInput(err.Error())), nil
	}
	wpm := input.WordsPerMinute
	if wpm <= 0 {
		wpm = h.wpm
	}
	return successResult(session.AnalyzeAt(input.Text, wpm))
}

// decode unmarshals MCP request arguments into a typed struct.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var result T
	b, err := json.Marshal(req.GetArguments())
	if err != nil {
		return result, fmt.Errorf("marshal args: %w", err)
	}
	if err := json.Unmarshal(b, &result); err != nil {
		return result, fmt.Errorf("unmarshal args: %w", err)
	}
	return result, nil
}

// errorResult creates an MCP error result. Internal error details are not
// exposed to the client.
func errorResult(err error) *mcp.CallToolResult {
	errorObj := map[string]any{
		"code":    errors.ErrCodeInternal,
		"message": "an internal error occurred",
	}
	if wpErr, ok := errors.As(err); ok && wpErr.Code != errors.ErrCodeInternal {
		errorObj["code"] = wpErr.Code
		errorObj["message"] = wpErr.Message
	}

	content, _ := json.Marshal(map[string]any{"error": errorObj})
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}

// collector records notifications so they can be returned to the client.
type collector struct {
	mu   sync.Mutex
	msgs []string
}

func (c *collector) NotifySuccess(message string) { c.add(message) }
func (c *collector) NotifyFailure(message string) { c.add(message) }

func (c *collector) add(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, message)
}

func (c *collector) messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}
