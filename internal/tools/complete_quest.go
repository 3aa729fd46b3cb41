package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"debugquest/internal/quest"

	"github.com/mark3labs/mcp-go/mcp"
)

// CompleteQuestTool handles the complete_quest MCP tool.
// One atomic call: the quest moves to victory, the completion milestone is
// struck, experience is awarded, the quest is archived into hero history,
// and the active slot clears.
type CompleteQuestTool struct {
	tracker *quest.Tracker
}

// NewCompleteQuestTool creates a CompleteQuestTool bound to the session tracker.
func NewCompleteQuestTool(tracker *quest.Tracker) *CompleteQuestTool {
	return &CompleteQuestTool{tracker: tracker}
}

// Definition returns the MCP tool definition for registration.
func (t *CompleteQuestTool) Definition() mcp.Tool {
	return mcp.NewTool("complete_quest",
		mcp.WithDescription(
			"Declare victory over the active quest. Awards experience based on "+
				"the monster tier plus findings and milestones, archives the quest "+
				"in the hero's history, and clears the ledger for the next foe. "+
				"Requires an active quest.",
		),
		mcp.WithString("solution_summary",
			mcp.Description("How the bug was actually fixed — recorded on the "+
				"completion milestone for posterity"),
		),
	)
}

// Handle processes the complete_quest tool call.
func (t *CompleteQuestTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary := req.GetString("solution_summary", "")

	report, err := t.tracker.Complete(summary)
	if err != nil {
		if errors.Is(err, quest.ErrNoActiveQuest) {
			return noActiveQuestResult(), nil
		}
		return nil, fmt.Errorf("completing quest: %w", err)
	}

	var b strings.Builder
	b.WriteString("# 🏆 Victory!\n\n")
	fmt.Fprintf(&b, "%s\n\n", report.Message)
	fmt.Fprintf(&b, "**Quest:** %s\n", report.Quest.Title)
	fmt.Fprintf(&b, "**Solution:** %s\n", report.Solution)
	fmt.Fprintf(&b, "**Time in the field:** %d min\n", report.ElapsedMinutes)
	fmt.Fprintf(&b, "**Experience gained:** %d XP\n", report.XPGained)
	if report.LeveledUp {
		fmt.Fprintf(&b, "\n🎉 **LEVEL UP!** The hero rises from level %d to level %d!\n",
			report.LevelBefore, report.LevelAfter)
	}
	b.WriteString("\n## Reflect on the Hunt\n\n")
	b.WriteString(bulletList(report.Reflections))
	fmt.Fprintf(&b, "\n> %s\n", report.Encouragement)
	b.WriteString("\n## Onward\n\n")
	b.WriteString(numberedList(report.NextSteps))

	return mcp.NewToolResultText(b.String()), nil
}
