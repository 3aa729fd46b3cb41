package tools

import (
	"context"
	"strings"
	"testing"

	"debugquest/internal/guidance"
	"debugquest/internal/quest"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Test helpers ---

// newTestTracker builds a tracker with deterministic text selection so
// assertions on response content are stable.
func newTestTracker() *quest.Tracker {
	return quest.NewTracker(guidance.NewDeterministicSelector())
}

// isErrorResult checks if the result is a tool error.
func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// callTool invokes a handler with the given arguments.
func callTool(t *testing.T, handle func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	return result
}

// --- StartQuestTool ---

func TestStartQuest_Success(t *testing.T) {
	tracker := newTestTracker()
	tool := NewStartQuestTool(tracker)

	result := callTool(t, tool.Handle, map[string]interface{}{
		"description": "My API call times out under load",
		"tech_stack":  []interface{}{"go", "postgres"},
		"urgency":     "high",
	})
	if isErrorResult(result) {
		t.Fatalf("unexpected tool error: %s", getResultText(result))
	}

	text := getResultText(result)
	if !strings.Contains(text, "The Troll of Performance") {
		t.Errorf("response should contain the quest title, got:\n%s", text)
	}
	if !strings.Contains(text, "Preparation") {
		t.Errorf("response should name the preparation phase, got:\n%s", text)
	}

	q := tracker.Current()
	if q == nil {
		t.Fatal("tracker should hold the new quest")
	}
	if len(q.TechStack) != 2 || q.TechStack[0] != "go" {
		t.Errorf("tech stack = %v, want [go postgres]", q.TechStack)
	}
}

func TestStartQuest_MissingDescription(t *testing.T) {
	tracker := newTestTracker()
	tool := NewStartQuestTool(tracker)
	result := callTool(t, tool.Handle, map[string]interface{}{})
	if !isErrorResult(result) {
		t.Fatal("missing description should be a tool error")
	}
	if tracker.Current() != nil {
		t.Error("no quest should have been opened")
	}
}

func TestStartQuest_MentionsAbandonedQuest(t *testing.T) {
	tracker := newTestTracker()
	tool := NewStartQuestTool(tracker)

	callTool(t, tool.Handle, map[string]interface{}{"description": "production outage"})
	result := callTool(t, tool.Handle, map[string]interface{}{"description": "small typo"})

	text := getResultText(result)
	if !strings.Contains(text, "abandoned") {
		t.Errorf("second start should mention the abandoned quest, got:\n%s", text)
	}
	if !strings.Contains(text, "The Dragon of Logic") {
		t.Errorf("abandoned quest should be named by title, got:\n%s", text)
	}
}

// --- RecordFindingTool ---

func TestRecordFinding_NoActiveQuest(t *testing.T) {
	tool := NewRecordFindingTool(newTestTracker())
	result := callTool(t, tool.Handle, map[string]interface{}{"finding": "a clue"})
	if !isErrorResult(result) {
		t.Fatal("recording without a quest should be a tool error")
	}
	if !strings.Contains(getResultText(result), "start_quest") {
		t.Errorf("error should invite the user to start a quest, got:\n%s", getResultText(result))
	}
}

func TestRecordFinding_MissingContent(t *testing.T) {
	tracker := newTestTracker()
	tracker.Open("a bug", nil, quest.UrgencyNone)
	tool := NewRecordFindingTool(tracker)

	result := callTool(t, tool.Handle, map[string]interface{}{})
	if !isErrorResult(result) {
		t.Fatal("missing finding should be a tool error")
	}
}

func TestRecordFinding_InvalidSignificance(t *testing.T) {
	tracker := newTestTracker()
	tracker.Open("a bug", nil, quest.UrgencyNone)
	tool := NewRecordFindingTool(tracker)

	result := callTool(t, tool.Handle, map[string]interface{}{
		"finding":      "a clue",
		"significance": "legendary",
	})
	if !isErrorResult(result) {
		t.Fatal("invalid significance should be a tool error")
	}
}

func TestRecordFinding_DefaultsToModerate(t *testing.T) {
	tracker := newTestTracker()
	tracker.Open("a bug", nil, quest.UrgencyNone)
	tool := NewRecordFindingTool(tracker)

	result := callTool(t, tool.Handle, map[string]interface{}{"finding": "a clue"})
	if isErrorResult(result) {
		t.Fatalf("unexpected tool error: %s", getResultText(result))
	}
	findings := tracker.Current().Findings
	if len(findings) != 1 || findings[0].Significance != quest.SignificanceModerate {
		t.Errorf("findings = %+v, want one moderate finding", findings)
	}
}

func TestRecordFinding_AnnouncesPhaseAdvance(t *testing.T) {
	tracker := newTestTracker()
	tracker.Open("a bug", nil, quest.UrgencyNone)
	tool := NewRecordFindingTool(tracker)

	var result *mcp.CallToolResult
	for _, clue := range []string{"one", "two", "three"} {
		result = callTool(t, tool.Handle, map[string]interface{}{"finding": clue})
	}
	text := getResultText(result)
	if !strings.Contains(text, "Investigation") {
		t.Errorf("third finding should announce the investigation phase, got:\n%s", text)
	}
	if !strings.Contains(text, "**Milestones:** 1") {
		t.Errorf("response should show the new milestone count, got:\n%s", text)
	}
}

// --- QuestStatusTool ---

func TestQuestStatus_NoActiveQuest(t *testing.T) {
	tool := NewQuestStatusTool(newTestTracker())
	result := callTool(t, tool.Handle, map[string]interface{}{})
	if isErrorResult(result) {
		t.Fatal("status must never be a tool error")
	}
	text := getResultText(result)
	if !strings.Contains(text, "No quest is underway") {
		t.Errorf("idle status should say so, got:\n%s", text)
	}
	if !strings.Contains(text, "**Level:** 1") {
		t.Errorf("idle status should still show hero progress, got:\n%s", text)
	}
}

func TestQuestStatus_ActiveQuest(t *testing.T) {
	tracker := newTestTracker()
	tracker.Open("the dashboard is slow", nil, quest.UrgencyNone)
	if _, err := tracker.AddFinding("profiled the handler", quest.SignificanceMajor); err != nil {
		t.Fatalf("AddFinding: %v", err)
	}
	tool := NewQuestStatusTool(tracker)

	text := getResultText(callTool(t, tool.Handle, map[string]interface{}{}))
	if !strings.Contains(text, "The Troll of Performance") {
		t.Errorf("status should show the quest title, got:\n%s", text)
	}
	if !strings.Contains(text, "profiled the handler") {
		t.Errorf("status should list recent findings, got:\n%s", text)
	}
}

// --- SeekWisdomTool ---

func TestSeekWisdom_NoActiveQuest(t *testing.T) {
	tool := NewSeekWisdomTool(newTestTracker())
	result := callTool(t, tool.Handle, map[string]interface{}{"help_type": "approach"})
	if !isErrorResult(result) {
		t.Fatal("wisdom without a quest should be a tool error")
	}
}

func TestSeekWisdom_Success(t *testing.T) {
	tracker := newTestTracker()
	tracker.Open("a bug", nil, quest.UrgencyNone)
	tool := NewSeekWisdomTool(tracker)

	result := callTool(t, tool.Handle, map[string]interface{}{"help_type": "how do I test this"})
	if isErrorResult(result) {
		t.Fatalf("unexpected tool error: %s", getResultText(result))
	}
	if !strings.Contains(getResultText(result), "Counsel") {
		t.Errorf("wisdom response should carry counsel, got:\n%s", getResultText(result))
	}
}

// --- CompleteQuestTool ---

func TestCompleteQuest_NoActiveQuest(t *testing.T) {
	tool := NewCompleteQuestTool(newTestTracker())
	result := callTool(t, tool.Handle, map[string]interface{}{})
	if !isErrorResult(result) {
		t.Fatal("completing without a quest should be a tool error")
	}
}

func TestCompleteQuest_Success(t *testing.T) {
	tracker := newTestTracker()
	tracker.Open("small typo somewhere", nil, quest.UrgencyNone)
	for _, clue := range []string{"one", "two"} {
		if _, err := tracker.AddFinding(clue, quest.SignificanceMinor); err != nil {
			t.Fatalf("AddFinding: %v", err)
		}
	}
	tool := NewCompleteQuestTool(tracker)

	result := callTool(t, tool.Handle, map[string]interface{}{
		"solution_summary": "fixed the off-by-one",
	})
	if isErrorResult(result) {
		t.Fatalf("unexpected tool error: %s", getResultText(result))
	}
	text := getResultText(result)
	if !strings.Contains(text, "19 XP") {
		t.Errorf("goblin + 2 findings + completion milestone should pay 19 XP, got:\n%s", text)
	}
	if !strings.Contains(text, "fixed the off-by-one") {
		t.Errorf("response should echo the solution, got:\n%s", text)
	}
	if tracker.Current() != nil {
		t.Error("tracker slot should be clear after completion")
	}
}

func TestCompleteQuest_LevelUpAnnounced(t *testing.T) {
	tracker := newTestTracker()
	tracker.Open("production outage", nil, quest.UrgencyNone)
	tool := NewCompleteQuestTool(tracker)

	text := getResultText(callTool(t, tool.Handle, map[string]interface{}{
		"solution_summary": "rolled back",
	}))
	if !strings.Contains(text, "LEVEL UP") {
		t.Errorf("dragon bounty should trigger a level-up note, got:\n%s", text)
	}
}

// --- Full flow ---

func TestQuestFlow_EndToEnd(t *testing.T) {
	tracker := newTestTracker()
	start := NewStartQuestTool(tracker)
	finding := NewRecordFindingTool(tracker)
	status := NewQuestStatusTool(tracker)
	complete := NewCompleteQuestTool(tracker)

	callTool(t, start.Handle, map[string]interface{}{
		"description": "checkout crashes for several users and carts and orders desync",
	})
	if sev := tracker.Current().Severity; sev != quest.SeverityDragon {
		t.Fatalf("severity = %s, want dragon (crash outranks hydra signals)", sev)
	}

	for i, clue := range []string{"repro found", "only logged-in users", "started after deploy"} {
		result := callTool(t, finding.Handle, map[string]interface{}{"finding": clue})
		if isErrorResult(result) {
			t.Fatalf("finding %d failed: %s", i+1, getResultText(result))
		}
	}
	if phase := tracker.Current().Phase; phase != quest.PhaseInvestigation {
		t.Fatalf("phase = %s, want investigation", phase)
	}

	callTool(t, finding.Handle, map[string]interface{}{
		"finding":      "deploy included a nil cart dereference",
		"significance": "breakthrough",
	})
	if phase := tracker.Current().Phase; phase != quest.PhaseBattle {
		t.Fatalf("phase = %s, want battle after breakthrough", phase)
	}

	statusText := getResultText(callTool(t, status.Handle, map[string]interface{}{}))
	if !strings.Contains(statusText, "Battle") {
		t.Errorf("status should report the battle phase, got:\n%s", statusText)
	}

	completeText := getResultText(callTool(t, complete.Handle, map[string]interface{}{
		"solution_summary": "guarded the nil cart",
	}))
	// Dragon 100 + 2×4 findings + 5×3 milestones = 123.
	if !strings.Contains(completeText, "123 XP") {
		t.Errorf("want 123 XP in victory report, got:\n%s", completeText)
	}

	idleText := getResultText(callTool(t, status.Handle, map[string]interface{}{}))
	if !strings.Contains(idleText, "No quest is underway") {
		t.Errorf("ledger should be idle after completion, got:\n%s", idleText)
	}
	if !strings.Contains(idleText, "**Quests completed:** 1") {
		t.Errorf("hero history should show one completed quest, got:\n%s", idleText)
	}
}
