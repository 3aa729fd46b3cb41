// Package prompts implements the MCP prompt handlers for the quest server.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which the
// AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// BeginQuestPrompt handles the begin-quest MCP prompt.
// It guides the AI to open a quest for the user's problem and walk the
// debugging flow in character.
type BeginQuestPrompt struct{}

// NewBeginQuestPrompt creates a BeginQuestPrompt.
func NewBeginQuestPrompt() *BeginQuestPrompt {
	return &BeginQuestPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *BeginQuestPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("begin-quest",
		mcp.WithPromptDescription(
			"Turn a bug into a debugging quest. Classifies the problem, opens "+
				"the quest ledger, and guides the hunt phase by phase.",
		),
		mcp.WithArgument("problem",
			mcp.ArgumentDescription("What is going wrong"),
		),
	)
}

// Handle processes the begin-quest prompt request.
func (p *BeginQuestPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	problem := "my bug"
	if args := req.Params.Arguments; args != nil {
		if v, ok := args["problem"]; ok && v != "" {
			problem = v
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Begin a debugging quest: %s", problem),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I have a bug to slay: %s\n\n"+
						"Please:\n"+
						"1. Call `start_quest` with my description (ask me for tech stack and urgency if unclear)\n"+
						"2. Walk me through the preparation questions the quest returns\n"+
						"3. As I learn things, call `record_finding` for each discovery — mark the decisive one 'breakthrough'\n"+
						"4. When I'm stuck, call `seek_wisdom` with what kind of help I need\n"+
						"5. When the bug is fixed, call `complete_quest` with a summary of the fix\n\n"+
						"Stay in character — I'm the hero, the bug is the monster.",
					problem,
				)),
			},
		},
	}, nil
}
