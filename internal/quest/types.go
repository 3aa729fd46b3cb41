// Package quest implements the core debugging-quest engine: the
// severity/category classifier and the tracker state machine that moves a
// quest through its phases as findings accumulate.
//
// This package follows the same design principles as the rest of the server:
// - SRP: types, classifier, and state machine in separate files
// - DIP: the Tracker depends on the Adviser abstraction, not on the
//   concrete guidance tables
package quest

import (
	"fmt"
	"time"
)

// --- Severity enum ---

// Severity is the monster tier assigned to a bug at quest-open time.
// It never changes for the lifetime of a quest.
type Severity string

const (
	SeverityGoblin Severity = "goblin" // trivial bug
	SeverityOrc    Severity = "orc"    // standard bug
	SeverityTroll  Severity = "troll"  // tough bug
	SeverityDragon Severity = "dragon" // critical bug
	SeverityHydra  Severity = "hydra"  // multi-headed bug
)

// Severities lists all tiers in ascending base-XP order.
var Severities = []Severity{
	SeverityGoblin, SeverityOrc, SeverityTroll, SeverityDragon, SeverityHydra,
}

// severityNames maps each tier to its display name.
var severityNames = map[Severity]string{
	SeverityGoblin: "Goblin",
	SeverityOrc:    "Orc",
	SeverityTroll:  "Troll",
	SeverityDragon: "Dragon",
	SeverityHydra:  "Hydra",
}

// Display returns the capitalized monster name, e.g. "Dragon".
func (s Severity) Display() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return string(s)
}

// --- Category enum ---

// Category is the bug domain assigned at quest-open time.
type Category string

const (
	CategoryLogic        Category = "logic"
	CategoryPerformance  Category = "performance"
	CategoryIntegration  Category = "integration"
	CategoryUI           Category = "ui"
	CategoryData         Category = "data"
	CategoryArchitecture Category = "architecture"
)

// Categories lists all bug domains.
var Categories = []Category{
	CategoryLogic, CategoryPerformance, CategoryIntegration,
	CategoryUI, CategoryData, CategoryArchitecture,
}

// categoryNames maps each category to its display name.
var categoryNames = map[Category]string{
	CategoryLogic:        "Logic",
	CategoryPerformance:  "Performance",
	CategoryIntegration:  "Integration",
	CategoryUI:           "UI",
	CategoryData:         "Data",
	CategoryArchitecture: "Architecture",
}

// Display returns the capitalized category name, e.g. "Performance".
func (c Category) Display() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// --- Phase enum ---

// Phase is a quest's position in its lifecycle. Phases only move forward:
// preparation → investigation → battle → victory (terminal).
type Phase string

const (
	PhasePreparation   Phase = "preparation"
	PhaseInvestigation Phase = "investigation"
	PhaseBattle        Phase = "battle"
	PhaseVictory       Phase = "victory"
)

// Phases lists all phases in progression order.
var Phases = []Phase{
	PhasePreparation, PhaseInvestigation, PhaseBattle, PhaseVictory,
}

// phaseNames maps each phase to its display name.
var phaseNames = map[Phase]string{
	PhasePreparation:   "Preparation",
	PhaseInvestigation: "Investigation",
	PhaseBattle:        "Battle",
	PhaseVictory:       "Victory",
}

// Display returns the capitalized phase name, e.g. "Investigation".
func (p Phase) Display() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return string(p)
}

// --- Urgency enum ---

// Urgency is optional caller-supplied metadata that feeds the severity
// classifier. An empty value means "not specified".
type Urgency string

const (
	UrgencyNone     Urgency = ""
	UrgencyLow      Urgency = "low"
	UrgencyModerate Urgency = "moderate"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// --- Significance enum ---

// Significance tiers a finding's weight. Breakthrough findings short-circuit
// the investigation phase.
type Significance string

const (
	SignificanceMinor        Significance = "minor"
	SignificanceModerate     Significance = "moderate"
	SignificanceMajor        Significance = "major"
	SignificanceBreakthrough Significance = "breakthrough"
)

// validSignificances is the set of allowed finding significances.
var validSignificances = map[Significance]bool{
	SignificanceMinor:        true,
	SignificanceModerate:     true,
	SignificanceMajor:        true,
	SignificanceBreakthrough: true,
}

// ValidateSignificance returns an error if the significance is not recognized.
func ValidateSignificance(s Significance) error {
	if !validSignificances[s] {
		return fmt.Errorf("invalid significance %q: must be one of: minor, moderate, major, breakthrough", s)
	}
	return nil
}

// --- Core data structures ---

// Finding is an append-only clue recorded against the active quest.
// Immutable once appended.
type Finding struct {
	Content      string       `json:"content"`
	Significance Significance `json:"significance"`
	RecordedAt   time.Time    `json:"recorded_at"`
}

// Milestone marks a phase transition or quest completion. Milestones are
// generated by the Tracker, never supplied by the caller.
type Milestone struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Phase       Phase     `json:"phase"`
	ReachedAt   time.Time `json:"reached_at"`
}

// Quest is the root record for one debugging quest. Severity, category,
// title, and description are fixed at creation; phase, findings, and
// milestones evolve as the hero works.
type Quest struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	TechStack   []string    `json:"tech_stack,omitempty"`
	Severity    Severity    `json:"severity"`
	Category    Category    `json:"category"`
	Phase       Phase       `json:"phase"`
	Findings    []Finding   `json:"findings"`
	Milestones  []Milestone `json:"milestones"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt time.Time   `json:"completed_at,omitempty"`
	Solution    string      `json:"solution,omitempty"`
	XPEarned    int         `json:"xp_earned,omitempty"`
}

// QuestTitle derives the fixed quest title from severity and category.
// Same (severity, category) always yields the same title.
func QuestTitle(s Severity, c Category) string {
	return fmt.Sprintf("The %s of %s", s.Display(), c.Display())
}

// HeroProgress accumulates across quests for the lifetime of the process.
// XP only increases; completed quests are archived and never removed.
type HeroProgress struct {
	XP        int      `json:"xp"`
	Level     int      `json:"level"`
	Completed []*Quest `json:"completed"`
}

// LevelForXP computes the hero level for a cumulative XP total.
func LevelForXP(xp int) int {
	return xp/100 + 1
}

// --- Payload shapes returned to the tool layer ---

// GuidancePayload is the stable reply shape for open/finding/wisdom
// operations. The tool layer owns all markdown formatting.
type GuidancePayload struct {
	Message         string
	Questions       []string
	Encouragement   string
	NextSuggestions []string
}

// VictoryReport is the reply shape for quest completion.
type VictoryReport struct {
	Quest          *Quest
	Message        string
	Solution       string
	XPGained       int
	LevelBefore    int
	LevelAfter     int
	LeveledUp      bool
	ElapsedMinutes int
	Reflections    []string
	Encouragement  string
	NextSteps      []string
}

// HeroSnapshot is the hero-progress slice of a status reply.
type HeroSnapshot struct {
	Level           int
	XP              int
	QuestsCompleted int
}

// StatusSnapshot is the full read-only view returned by Status. When no
// quest is active, Active is false and only Hero is meaningful.
type StatusSnapshot struct {
	Active         bool
	Title          string
	Severity       Severity
	Category       Category
	Phase          Phase
	ElapsedMinutes int
	FindingCount   int
	MilestoneCount int
	RecentFindings []Finding // at most 3, oldest of the three first
	Hero           HeroSnapshot
}
