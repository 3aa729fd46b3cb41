// Package server wires all MCP components and creates the server instance.
//
// This is the composition root (DIP): it creates the one Tracker that holds
// session state and injects it into the tools and resources that depend on
// it. No business logic lives here — only wiring.
package server

import (
	"fmt"

	"debugquest/internal/guidance"
	"debugquest/internal/prompts"
	"debugquest/internal/quest"
	"debugquest/internal/resources"
	"debugquest/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts, and
// resources registered. The single Tracker created here is the session
// context: one active quest slot plus the hero-progress record, alive for
// the lifetime of the process.
func New() (*server.MCPServer, error) {
	// A hole in the guidance tables is a build defect, not a runtime
	// fallback — refuse to start.
	if err := guidance.Validate(); err != nil {
		return nil, fmt.Errorf("validating guidance tables: %w", err)
	}

	tracker := quest.NewTracker(guidance.NewSelector())

	s := server.NewMCPServer(
		"debugquest",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register quest tools ---

	startTool := tools.NewStartQuestTool(tracker)
	s.AddTool(startTool.Definition(), startTool.Handle)

	findingTool := tools.NewRecordFindingTool(tracker)
	s.AddTool(findingTool.Definition(), findingTool.Handle)

	statusTool := tools.NewQuestStatusTool(tracker)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	wisdomTool := tools.NewSeekWisdomTool(tracker)
	s.AddTool(wisdomTool.Definition(), wisdomTool.Handle)

	completeTool := tools.NewCompleteQuestTool(tracker)
	s.AddTool(completeTool.Definition(), completeTool.Handle)

	// --- Register prompts ---

	beginPrompt := prompts.NewBeginQuestPrompt()
	s.AddPrompt(beginPrompt.Definition(), beginPrompt.Handle)

	reportPrompt := prompts.NewQuestReportPrompt()
	s.AddPrompt(reportPrompt.Definition(), reportPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(tracker)
	s.AddResource(resourceHandler.HandbookResource(), resourceHandler.HandleHandbook)
	s.AddResource(resourceHandler.BestiaryResource(), resourceHandler.HandleBestiary)
	s.AddResource(resourceHandler.HeroResource(), resourceHandler.HandleHero)

	return s, nil
}

// serverInstructions returns the system instructions that tell the AI how
// to run debugging sessions as quests.
func serverInstructions() string {
	return `You have access to DebugQuest, an MCP server that turns debugging
sessions into fantasy quests. You are the narrator; the user is the hero;
the bug is the monster.

## WHEN TO ACTIVATE DebugQuest

Proactively suggest a quest when the user:
- Reports a bug, error, crash, or unexpected behavior
- Says things like "this is broken", "why doesn't this work", "it's failing"
- Starts a debugging session that will take more than a trivial fix

Say something like: "This foe deserves a proper hunt. Shall I open a quest?"

Do NOT open a quest for: one-line typo fixes, questions, code review, or
feature work. Quests are for hunting bugs.

## THE FLOW

1. **start_quest** — pass the user's own description of the problem, plus
   tech_stack and urgency when known. The ledger classifies the bug as a
   monster (goblin/orc/troll/dragon/hydra) and a domain (logic/performance/
   integration/ui/data/architecture). Classification happens ONCE, at open.
   Starting a new quest silently abandons the old one — warn the user if a
   quest is already active.

2. **record_finding** — call this EVERY time something is learned: an
   observation, a log line, a ruled-out hypothesis. Dead ends count.
   Significance matters:
   - minor/moderate/major: your judgment of the clue's weight
   - breakthrough: ONLY when the root cause is essentially identified —
     it throws the quest straight into the battle phase
   Three findings open the investigation phase; six findings (or one
   breakthrough) open the battle phase. Phases never move backward.

3. **quest_status** — call when the user asks where things stand, or at
   the start of a session. Never fails; reports the idle ledger when no
   quest is active.

4. **seek_wisdom** — when the user is stuck. Word the help_type to pick
   the counsel: 'approach'/'strategy', 'test'/'verify', or
   'investigate'/'explore'; anything else returns phase-fitted questions.

5. **complete_quest** — when the bug is FIXED and verified, with a real
   solution_summary of what the fix was. Awards XP, may level the hero up,
   archives the quest, clears the ledger.

## RESOURCES

- quest://handbook — how quests, phases, findings, and XP work
- quest://bestiary — the five monsters, their signs and bounties
- quest://hero — live hero progress as JSON

## IMPORTANT RULES

- Relay the quest's questions to the user — they are real debugging
  questions dressed in quest clothing; the fantasy is the sugar, the
  method is the medicine.
- Record findings faithfully in the USER'S words, not placeholders.
- Never mark a finding 'breakthrough' to speed the quest along — only
  when the root cause is genuinely in hand.
- Hero progress lives only for this server process. Do not promise the
  user a permanent record.
- Stay in character, but never let the theater obstruct the debugging.`
}
