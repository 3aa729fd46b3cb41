package tools

import (
	"context"
	"fmt"
	"strings"

	"debugquest/internal/quest"

	"github.com/mark3labs/mcp-go/mcp"
)

// QuestStatusTool handles the quest_status MCP tool.
// A pure read: it never fails and never mutates anything. With no active
// quest it reports the idle ledger plus hero progress instead of erroring.
type QuestStatusTool struct {
	tracker *quest.Tracker
}

// NewQuestStatusTool creates a QuestStatusTool bound to the session tracker.
func NewQuestStatusTool(tracker *quest.Tracker) *QuestStatusTool {
	return &QuestStatusTool{tracker: tracker}
}

// Definition returns the MCP tool definition for registration.
func (t *QuestStatusTool) Definition() mcp.Tool {
	return mcp.NewTool("quest_status",
		mcp.WithDescription(
			"Show the state of the active quest: phase, elapsed time, finding and "+
				"milestone counts, the three most recent findings, and the hero's "+
				"cumulative progress. Safe to call at any time.",
		),
	)
}

// Handle processes the quest_status tool call.
func (t *QuestStatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := t.tracker.Status()

	var b strings.Builder
	if !snap.Active {
		b.WriteString("# 🗺️ The Ledger Is Quiet\n\n")
		b.WriteString("No quest is underway. Start one with `start_quest` when a bug shows itself.\n")
	} else {
		b.WriteString("# 🗺️ Quest Status\n\n")
		fmt.Fprintf(&b, "**Quest:** %s\n", snap.Title)
		fmt.Fprintf(&b, "**Foe:** %s — **Domain:** %s\n", snap.Severity.Display(), snap.Category.Display())
		fmt.Fprintf(&b, "**Phase:** %s\n", snap.Phase.Display())
		fmt.Fprintf(&b, "**Time in the field:** %d min\n", snap.ElapsedMinutes)
		fmt.Fprintf(&b, "**Findings:** %d — **Milestones:** %d\n", snap.FindingCount, snap.MilestoneCount)

		if len(snap.RecentFindings) > 0 {
			b.WriteString("\n## Recent Findings\n\n")
			for _, f := range snap.RecentFindings {
				fmt.Fprintf(&b, "- [%s] %s\n", f.Significance, f.Content)
			}
		}
	}

	b.WriteString("\n## Hero Progress\n\n")
	fmt.Fprintf(&b, "**Level:** %d — **XP:** %d — **Quests completed:** %d\n",
		snap.Hero.Level, snap.Hero.XP, snap.Hero.QuestsCompleted)

	return mcp.NewToolResultText(b.String()), nil
}
