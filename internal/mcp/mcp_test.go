package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/grovetools/wordpad/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleTransform(t *testing.T) {
	var copied []string
	h := NewHandlers(session.ClipboardFunc(func(text string) error {
		copied = append(copied, text)
		return nil
	}), 200)

	result, err := h.HandleTransform(context.Background(), makeRequest(map[string]any{
		"text":    "  hello   world  ",
		"actions": []any{"collapseWhitespace", "upper", "copy", "toggleTheme", "shout"},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var out TransformResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, "HELLO WORLD", out.Text)
	assert.Equal(t, session.ModeDark, out.Mode)
	assert.Equal(t, session.Stats{Words: 2, Characters: 11, ReadingMinutes: 1}, out.Stats)
	assert.Equal(t, []string{"shout"}, out.Ignored)
	assert.Equal(t, []string{session.CopySuccessMessage}, out.Notifications)
	assert.Equal(t, []string{"HELLO WORLD"}, copied)
}

func TestHandleTransformSetTextUsesPayload(t *testing.T) {
	h := NewHandlers(nil, 200)
	result, err := h.HandleTransform(context.Background(), makeRequest(map[string]any{
		"text":    "old",
		"actions": []any{"setText", "toUppercase"},
		"payload": "new text",
	}))
	require.NoError(t, err)

	var out TransformResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, "NEW TEXT", out.Text)
}

func TestHandleTransformReportsCopyFailure(t *testing.T) {
	h := NewHandlers(session.ClipboardFunc(func(string) error { return stderrors.New("denied") }), 200)
	result, err := h.HandleTransform(context.Background(), makeRequest(map[string]any{
		"text":    "abc",
		"actions": []any{"copyToClipboard"},
	}))
	require.NoError(t, err)

	var out TransformResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, "abc", out.Text)
	assert.Equal(t, []string{"Failed to copy text to clipboard: denied"}, out.Notifications)
}

func TestHandleTransformRequiresActions(t *testing.T) {
	h := NewHandlers(nil, 200)
	result, err := h.HandleTransform(context.Background(), makeRequest(map[string]any{"text": "abc"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "INVALID_INPUT")
}

func TestHandleTransformRejectsMalformedArguments(t *testing.T) {
	h := NewHandlers(nil, 200)
	result, err := h.HandleTransform(context.Background(), makeRequest(map[string]any{
		"text":    42,
		"actions": []any{"clear"},
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleStats(t *testing.T) {
	h := NewHandlers(nil, 200)

	result, err := h.HandleStats(context.Background(), makeRequest(map[string]any{"text": "hello world"}))
	require.NoError(t, err)
	var stats session.Stats
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &stats))
	assert.Equal(t, session.Stats{Words: 2, Characters: 11, ReadingMinutes: 1}, stats)

	result, err = h.HandleStats(context.Background(), makeRequest(map[string]any{
		"text":             "a b c",
		"words_per_minute": 2,
	}))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &stats))
	assert.Equal(t, 2, stats.ReadingMinutes)

	result, err = h.HandleStats(context.Background(), makeRequest(map[string]any{"text": ""}))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &stats))
	assert.Equal(t, session.Stats{}, stats)
}

func TestNewServerRegistersTools(t *testing.T) {
	s := NewServer(NewHandlers(nil, 200), "test")
	require.NotNil(t, s)
	assert.Len(t, toolRegistry, 2)
	assert.Contains(t, toolRegistry, "transform_text")
	assert.Contains(t, toolRegistry, "text_stats")
}
