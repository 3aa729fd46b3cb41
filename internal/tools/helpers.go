// Package tools implements the MCP tool handlers for the debugging quest.
//
// Each tool is a struct that receives the shared quest.Tracker (DIP) and
// returns a handler compatible with mcp-go's CallToolRequest signature.
//
// Design principles:
// - SRP: each file = one tool
// - errors the user can fix (missing argument, no active quest) are tool
//   results via mcp.NewToolResultError; Go errors are reserved for
//   protocol-level failures
package tools

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// noActiveQuestResult renders the no-active-quest condition as a friendly,
// in-character tool error. It is always recoverable — the host invites the
// user to start a quest, it never crashes anything.
func noActiveQuestResult() *mcp.CallToolResult {
	return mcp.NewToolResultError(
		"🛡️ No quest is underway, hero. The ledger lies open and waiting — " +
			"describe your bug with `start_quest` and the hunt shall begin.",
	)
}

// bulletList renders items as a markdown bullet list.
func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}

// numberedList renders items as a markdown numbered list.
func numberedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return b.String()
}
