package tools

import (
	"context"
	"fmt"
	"strings"

	"debugquest/internal/quest"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartQuestTool handles the start_quest MCP tool.
// It classifies the reported problem into a monster (severity) and a bug
// domain (category), opens a new quest at the preparation phase, and
// returns the opening guidance.
type StartQuestTool struct {
	tracker *quest.Tracker
}

// NewStartQuestTool creates a StartQuestTool bound to the session tracker.
func NewStartQuestTool(tracker *quest.Tracker) *StartQuestTool {
	return &StartQuestTool{tracker: tracker}
}

// Definition returns the MCP tool definition for registration.
func (t *StartQuestTool) Definition() mcp.Tool {
	return mcp.NewTool("start_quest",
		mcp.WithDescription(
			"Begin a new debugging quest. Describe the bug and it will be "+
				"classified as a monster (goblin, orc, troll, dragon, or hydra) "+
				"with a bug category (logic, performance, integration, ui, data, "+
				"architecture). Starting a new quest abandons any quest already "+
				"in progress. Never fails — vague descriptions simply summon a goblin.",
		),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("What is going wrong, in the user's own words. "+
				"Keywords in the description drive the classification."),
		),
		mcp.WithArray("tech_stack",
			mcp.Description("Technologies involved (e.g. [\"go\", \"postgres\", \"react\"]). "+
				"Folded into category classification."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("urgency",
			mcp.Description("How urgent the problem feels. Critical urgency summons a dragon "+
				"regardless of wording."),
			mcp.Enum("low", "moderate", "high", "critical"),
		),
	)
}

// Handle processes the start_quest tool call.
func (t *StartQuestTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description := strings.TrimSpace(req.GetString("description", ""))
	if description == "" {
		return mcp.NewToolResultError("'description' is required — tell the ledger what foe you face"), nil
	}

	techStack := req.GetStringSlice("tech_stack", nil)
	urgency := quest.Urgency(req.GetString("urgency", ""))

	abandoned := t.tracker.Current()

	q, payload := t.tracker.Open(description, techStack, urgency)

	var b strings.Builder
	b.WriteString("# ⚔️ A New Quest Begins\n\n")
	if abandoned != nil {
		fmt.Fprintf(&b, "_The unfinished quest \"%s\" fades from the ledger, abandoned._\n\n", abandoned.Title)
	}
	fmt.Fprintf(&b, "%s\n\n", payload.Message)
	fmt.Fprintf(&b, "**Quest:** %s\n", q.Title)
	fmt.Fprintf(&b, "**Foe:** %s — **Domain:** %s\n", q.Severity.Display(), q.Category.Display())
	fmt.Fprintf(&b, "**Phase:** %s\n", q.Phase.Display())
	if len(q.TechStack) > 0 {
		fmt.Fprintf(&b, "**Arsenal:** %s\n", strings.Join(q.TechStack, ", "))
	}
	b.WriteString("\n## Questions to Arm Yourself\n\n")
	b.WriteString(bulletList(payload.Questions))
	fmt.Fprintf(&b, "\n> %s\n", payload.Encouragement)
	b.WriteString("\n## Next Steps\n\n")
	b.WriteString(numberedList(payload.NextSuggestions))
	b.WriteString("\nRecord what you learn with `record_finding` — three findings open the Investigation phase.")

	return mcp.NewToolResultText(b.String()), nil
}
