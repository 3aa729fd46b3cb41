package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// QuestReportPrompt handles the quest-report MCP prompt.
// It asks the AI to read the current quest state and narrate it.
type QuestReportPrompt struct{}

// NewQuestReportPrompt creates a QuestReportPrompt.
func NewQuestReportPrompt() *QuestReportPrompt {
	return &QuestReportPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *QuestReportPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("quest-report",
		mcp.WithPromptDescription(
			"Report on the active quest: phase, findings so far, and what to do next.",
		),
	)
}

// Handle processes the quest-report prompt request.
func (p *QuestReportPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Quest status report",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Give me a report on my debugging quest.\n\n" +
						"Please:\n" +
						"1. Call `quest_status`\n" +
						"2. Summarize where the hunt stands: the foe, the phase, how long I've been at it\n" +
						"3. Remind me of my most recent findings\n" +
						"4. Suggest the single most useful next step for the current phase\n\n" +
						"If no quest is active, ask me what bug I'm facing and offer to start one.",
				),
			},
		},
	}, nil
}
