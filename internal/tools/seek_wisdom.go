package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"debugquest/internal/quest"

	"github.com/mark3labs/mcp-go/mcp"
)

// SeekWisdomTool handles the seek_wisdom MCP tool.
// A read-only consultation: the help request is bucketed by keyword
// (approach, testing, investigation, or general) and the matching counsel
// returned. Phase and findings are untouched.
type SeekWisdomTool struct {
	tracker *quest.Tracker
}

// NewSeekWisdomTool creates a SeekWisdomTool bound to the session tracker.
func NewSeekWisdomTool(tracker *quest.Tracker) *SeekWisdomTool {
	return &SeekWisdomTool{tracker: tracker}
}

// Definition returns the MCP tool definition for registration.
func (t *SeekWisdomTool) Definition() mcp.Tool {
	return mcp.NewTool("seek_wisdom",
		mcp.WithDescription(
			"Ask the sages for debugging counsel on the active quest. Mention "+
				"'approach' or 'strategy' for tactical advice, 'test' or 'verify' "+
				"for testing counsel, 'investigate' or 'explore' for investigation "+
				"techniques — anything else returns wisdom fitted to the quest's "+
				"current phase. Does not change quest state. Requires an active quest.",
		),
		mcp.WithString("help_type",
			mcp.Description("What kind of help is wanted, in free text"),
		),
	)
}

// Handle processes the seek_wisdom tool call.
func (t *SeekWisdomTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	helpType := req.GetString("help_type", "")

	payload, err := t.tracker.SeekWisdom(helpType)
	if err != nil {
		if errors.Is(err, quest.ErrNoActiveQuest) {
			return noActiveQuestResult(), nil
		}
		return nil, fmt.Errorf("seeking wisdom: %w", err)
	}

	var b strings.Builder
	b.WriteString("# 🔮 The Sages Speak\n\n")
	fmt.Fprintf(&b, "%s\n\n", payload.Message)
	b.WriteString("## Counsel\n\n")
	b.WriteString(bulletList(payload.Questions))
	fmt.Fprintf(&b, "\n> %s\n", payload.Encouragement)
	b.WriteString("\n## Next Steps\n\n")
	b.WriteString(numberedList(payload.NextSuggestions))

	return mcp.NewToolResultText(b.String()), nil
}
