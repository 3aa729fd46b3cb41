// Package resources implements the MCP resource handlers for the quest server.
//
// Resources provide read-only data the host can pull for context. They use
// URI-based addressing (quest://...) following MCP conventions. The handbook
// and bestiary are fixed reference content; the hero resource reads live
// tracker state.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"debugquest/internal/guidance"
	"debugquest/internal/quest"

	"github.com/mark3labs/mcp-go/mcp"
)

// Handler manages the quest resource endpoints.
type Handler struct {
	tracker *quest.Tracker
}

// NewHandler creates a resource Handler bound to the session tracker.
func NewHandler(tracker *quest.Tracker) *Handler {
	return &Handler{tracker: tracker}
}

// HandbookResource returns the MCP resource definition for the handbook.
func (h *Handler) HandbookResource() mcp.Resource {
	return mcp.NewResource(
		"quest://handbook",
		"The Debugging Hero's Handbook",
		mcp.WithResourceDescription("How quests work: phases, findings, milestones, and experience"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleHandbook serves the static handbook text.
func (h *Handler) HandleHandbook(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     handbook,
		},
	}, nil
}

// BestiaryResource returns the MCP resource definition for the bestiary.
func (h *Handler) BestiaryResource() mcp.Resource {
	return mcp.NewResource(
		"quest://bestiary",
		"The Bug Bestiary",
		mcp.WithResourceDescription("The five bug monsters, their signs, tactics, and bounties"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleBestiary renders the bestiary from the guidance monster cards.
// Bounties come from the engine's XP table so the text can never drift
// from the rewards actually paid.
func (h *Handler) HandleBestiary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var b strings.Builder
	b.WriteString("# 🐉 The Bug Bestiary\n\n")
	b.WriteString("Five monsters roam the realm. Every quest names one of them.\n\n")
	for _, m := range guidance.Bestiary {
		fmt.Fprintf(&b, "## %s %s — %s\n\n", m.Emoji, m.Severity.Display(), m.Threat)
		fmt.Fprintf(&b, "%s\n\n", m.Lore)
		fmt.Fprintf(&b, "**Signs:** %s\n\n", m.Signs)
		fmt.Fprintf(&b, "**Tactics:** %s\n\n", m.Tactics)
		fmt.Fprintf(&b, "**Bounty:** %d XP base, plus 2 per finding and 5 per milestone.\n\n", quest.BaseXP(m.Severity))
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     b.String(),
		},
	}, nil
}

// HeroResource returns the MCP resource definition for hero progress.
func (h *Handler) HeroResource() mcp.Resource {
	return mcp.NewResource(
		"quest://hero",
		"Hall of Achievements",
		mcp.WithResourceDescription("The hero's level, experience, and completed quest history"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleHero serves the live hero-progress record as JSON.
func (h *Handler) HandleHero(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	hero := h.tracker.Hero()
	data, err := json.MarshalIndent(hero, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling hero progress: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
