package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"debugquest/internal/quest"

	"github.com/mark3labs/mcp-go/mcp"
)

// RecordFindingTool handles the record_finding MCP tool.
// Findings accumulate on the active quest and drive the automatic phase
// advances: three findings open the investigation, six findings or one
// breakthrough open the battle.
type RecordFindingTool struct {
	tracker *quest.Tracker
}

// NewRecordFindingTool creates a RecordFindingTool bound to the session tracker.
func NewRecordFindingTool(tracker *quest.Tracker) *RecordFindingTool {
	return &RecordFindingTool{tracker: tracker}
}

// Definition returns the MCP tool definition for registration.
func (t *RecordFindingTool) Definition() mcp.Tool {
	return mcp.NewTool("record_finding",
		mcp.WithDescription(
			"Record a clue discovered during the active quest: an observation, "+
				"a ruled-out hypothesis, a suspicious log line. Findings drive phase "+
				"progression — a breakthrough finding sends the quest straight into "+
				"battle. Requires an active quest.",
		),
		mcp.WithString("finding",
			mcp.Required(),
			mcp.Description("What was discovered, in one or two sentences"),
		),
		mcp.WithString("significance",
			mcp.Description("How weighty the clue is. Use 'breakthrough' only when "+
				"the root cause is essentially identified. Default: moderate"),
			mcp.Enum("minor", "moderate", "major", "breakthrough"),
		),
	)
}

// Handle processes the record_finding tool call.
func (t *RecordFindingTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content := strings.TrimSpace(req.GetString("finding", ""))
	if content == "" {
		return mcp.NewToolResultError("'finding' is required — what did you discover?"), nil
	}

	significance := quest.Significance(req.GetString("significance", string(quest.SignificanceModerate)))
	if err := quest.ValidateSignificance(significance); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := t.tracker.AddFinding(content, significance)
	if err != nil {
		if errors.Is(err, quest.ErrNoActiveQuest) {
			return noActiveQuestResult(), nil
		}
		return nil, fmt.Errorf("recording finding: %w", err)
	}

	q := t.tracker.Current()

	var b strings.Builder
	b.WriteString("# 📜 Finding Recorded\n\n")
	fmt.Fprintf(&b, "%s\n\n", payload.Message)
	fmt.Fprintf(&b, "**Quest:** %s — **Phase:** %s\n", q.Title, q.Phase.Display())
	fmt.Fprintf(&b, "**Findings so far:** %d — **Milestones:** %d\n", len(q.Findings), len(q.Milestones))
	b.WriteString("\n## Questions for This Phase\n\n")
	b.WriteString(bulletList(payload.Questions))
	fmt.Fprintf(&b, "\n> %s\n", payload.Encouragement)
	b.WriteString("\n## Next Steps\n\n")
	b.WriteString(numberedList(payload.NextSuggestions))

	return mcp.NewToolResultText(b.String()), nil
}
