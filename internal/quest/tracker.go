package quest

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrNoActiveQuest is returned by operations that require an active quest
// when none exists. It is always recoverable: the tool layer renders it as
// an in-character invitation to start a quest, never as a crash.
var ErrNoActiveQuest = errors.New("no active quest")

// WisdomKind buckets a free-text help request.
type WisdomKind string

const (
	WisdomApproach      WisdomKind = "approach"
	WisdomTesting       WisdomKind = "testing"
	WisdomInvestigation WisdomKind = "investigation"
	WisdomGeneral       WisdomKind = "general"
)

// Adviser supplies the guidance text pools the Tracker draws from.
// The concrete implementation lives in the guidance package; tests can
// substitute a deterministic one. Selection randomness is cosmetic only —
// nothing the Tracker decides depends on which line comes back.
type Adviser interface {
	// Greeting returns one opening line for a new quest.
	Greeting() string
	// Questions returns the question pool for a (category, phase) pair.
	Questions(c Category, p Phase) []string
	// Encouragement returns one line sized to the monster tier.
	Encouragement(s Severity) string
	// Suggestions returns the fixed next-step list for a phase.
	Suggestions(p Phase) []string
	// FindingAck returns one acknowledgment line for a recorded finding.
	// Breakthrough findings get their own, more dramatic pool.
	FindingAck(breakthrough bool) string
	// MilestoneAck returns one line celebrating a phase advance.
	MilestoneAck() string
	// VictoryLine returns one line for quest completion.
	VictoryLine() string
	// Reflections returns the fixed post-victory reflection questions.
	Reflections() []string
	// VictoryEncouragement returns the fixed completion encouragement.
	VictoryEncouragement() string
	// VictoryNextSteps returns the fixed forward-looking suggestions.
	VictoryNextSteps() []string
	// Wisdom returns the fixed pool for a non-general wisdom bucket.
	Wisdom(k WisdomKind) []string
}

// findingsToInvestigation and findingsToBattle are the cumulative finding
// counts that trigger automatic phase advances.
const (
	findingsToInvestigation = 3
	findingsToBattle        = 6
)

// severityBaseXP is the experience reward base per monster tier.
var severityBaseXP = map[Severity]int{
	SeverityGoblin: 10,
	SeverityOrc:    25,
	SeverityTroll:  50,
	SeverityDragon: 100,
	SeverityHydra:  150,
}

// BaseXP returns the experience base for a monster tier.
func BaseXP(s Severity) int {
	return severityBaseXP[s]
}

// Tracker owns the single active quest and the hero-progress record.
//
// It is the explicit session context: the composition root creates one
// Tracker and threads it through every tool. Access is assumed serialized —
// the stdio MCP transport delivers one request at a time, so there is no
// locking here.
type Tracker struct {
	adviser Adviser
	current *Quest
	hero    HeroProgress
}

// NewTracker creates a Tracker with no active quest and a fresh level-1 hero.
func NewTracker(adviser Adviser) *Tracker {
	return &Tracker{
		adviser: adviser,
		hero:    HeroProgress{Level: 1},
	}
}

// Current returns the active quest, or nil when none exists. The returned
// quest is the Tracker's own record — callers read, never mutate.
func (t *Tracker) Current() *Quest {
	return t.current
}

// Hero returns a copy of the hero-progress record.
func (t *Tracker) Hero() HeroProgress {
	return t.hero
}

// Open starts a new quest from a problem description. It never fails:
// degenerate input simply falls through the classifiers to the Goblin/Logic
// defaults. Any quest already in progress is discarded without archival.
func (t *Tracker) Open(description string, techStack []string, urgency Urgency) (*Quest, *GuidancePayload) {
	severity := ClassifySeverity(description, urgency)
	category := ClassifyCategory(description, techStack)

	q := &Quest{
		ID:          uuid.NewString(),
		Title:       QuestTitle(severity, category),
		Description: description,
		TechStack:   techStack,
		Severity:    severity,
		Category:    category,
		Phase:       PhasePreparation,
		Findings:    []Finding{},
		Milestones:  []Milestone{},
		CreatedAt:   timeNow(),
	}
	t.current = q

	payload := &GuidancePayload{
		Message:         t.adviser.Greeting(),
		Questions:       t.adviser.Questions(category, PhasePreparation),
		Encouragement:   t.adviser.Encouragement(severity),
		NextSuggestions: t.adviser.Suggestions(PhasePreparation),
	}
	return q, payload
}

// AddFinding appends a clue to the active quest and re-evaluates the
// phase-advance rule against the full finding history. At most one phase
// transition happens per call; a transition appends one auto-generated
// milestone.
func (t *Tracker) AddFinding(content string, significance Significance) (*GuidancePayload, error) {
	if t.current == nil {
		return nil, ErrNoActiveQuest
	}
	q := t.current

	q.Findings = append(q.Findings, Finding{
		Content:      content,
		Significance: significance,
		RecordedAt:   timeNow(),
	})

	message := t.adviser.FindingAck(significance == SignificanceBreakthrough)
	if milestone := t.advancePhase(q); milestone != nil {
		message += " " + t.adviser.MilestoneAck() + " " + milestone.Title + " — the quest enters the " + q.Phase.Display() + " phase."
	}

	return &GuidancePayload{
		Message:         message,
		Questions:       t.adviser.Questions(q.Category, q.Phase),
		Encouragement:   t.adviser.Encouragement(q.Severity),
		NextSuggestions: t.adviser.Suggestions(q.Phase),
	}, nil
}

// advancePhase applies the automatic transition rule and returns the new
// milestone when a transition happened, nil otherwise.
//
// The rule deliberately re-scans the entire finding history rather than
// just the newest entry, so a breakthrough recorded earlier still counts.
func (t *Tracker) advancePhase(q *Quest) *Milestone {
	switch q.Phase {
	case PhasePreparation:
		if len(q.Findings) >= findingsToInvestigation {
			return t.transition(q, PhaseInvestigation,
				"The Investigation Begins",
				"Enough clues gathered — the hunt for the root cause is on.")
		}
	case PhaseInvestigation:
		if len(q.Findings) >= findingsToBattle || hasBreakthrough(q.Findings) {
			return t.transition(q, PhaseBattle,
				"The Battle Is Joined",
				"The source of the trouble is cornered. Time to strike.")
		}
	}
	return nil
}

// transition moves the quest to the next phase and records the milestone.
func (t *Tracker) transition(q *Quest, next Phase, title, description string) *Milestone {
	q.Phase = next
	q.Milestones = append(q.Milestones, Milestone{
		Title:       title,
		Description: description,
		Phase:       next,
		ReachedAt:   timeNow(),
	})
	return &q.Milestones[len(q.Milestones)-1]
}

// hasBreakthrough reports whether any finding in the history is a
// breakthrough.
func hasBreakthrough(findings []Finding) bool {
	for _, f := range findings {
		if f.Significance == SignificanceBreakthrough {
			return true
		}
	}
	return false
}

// Status returns a read-only snapshot. It never fails: with no active
// quest the snapshot reports Active=false and carries only hero progress.
func (t *Tracker) Status() *StatusSnapshot {
	snap := &StatusSnapshot{
		Hero: HeroSnapshot{
			Level:           t.hero.Level,
			XP:              t.hero.XP,
			QuestsCompleted: len(t.hero.Completed),
		},
	}
	q := t.current
	if q == nil {
		return snap
	}

	snap.Active = true
	snap.Title = q.Title
	snap.Severity = q.Severity
	snap.Category = q.Category
	snap.Phase = q.Phase
	snap.ElapsedMinutes = int(timeNow().Sub(q.CreatedAt).Minutes())
	snap.FindingCount = len(q.Findings)
	snap.MilestoneCount = len(q.Milestones)

	recent := q.Findings
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	snap.RecentFindings = append([]Finding(nil), recent...)

	return snap
}

// ClassifyWisdom buckets a free-text help request. First match wins;
// anything unmatched falls to the general bucket.
func ClassifyWisdom(helpType string) WisdomKind {
	lower := strings.ToLower(helpType)
	switch {
	case containsAny(lower, "approach", "strategy"):
		return WisdomApproach
	case containsAny(lower, "test", "verify"):
		return WisdomTesting
	case containsAny(lower, "investigate", "explore"):
		return WisdomInvestigation
	default:
		return WisdomGeneral
	}
}

// SeekWisdom returns phase-aware guidance without mutating any state.
// The general bucket reuses the (category, phase) question pool; the other
// buckets have fixed lists.
func (t *Tracker) SeekWisdom(helpType string) (*GuidancePayload, error) {
	if t.current == nil {
		return nil, ErrNoActiveQuest
	}
	q := t.current

	kind := ClassifyWisdom(helpType)
	var questions []string
	if kind == WisdomGeneral {
		questions = t.adviser.Questions(q.Category, q.Phase)
	} else {
		questions = t.adviser.Wisdom(kind)
	}

	return &GuidancePayload{
		Message:         "The sages have counsel on " + string(kind) + " for " + q.Title + ".",
		Questions:       questions,
		Encouragement:   t.adviser.Encouragement(q.Severity),
		NextSuggestions: t.adviser.Suggestions(q.Phase),
	}, nil
}

// defaultSolution is recorded when a quest is completed without a summary.
const defaultSolution = "The bug was vanquished, its dark magic dispelled."

// Complete closes the active quest: forces the victory phase, appends the
// completion milestone, awards experience, archives the quest into hero
// history, and clears the active slot. All of it happens in one call —
// there is no partially completed state.
//
// Experience: base(severity) + 2 per finding + 5 per milestone, where the
// milestone count includes the completion milestone appended here.
func (t *Tracker) Complete(solutionSummary string) (*VictoryReport, error) {
	if t.current == nil {
		return nil, ErrNoActiveQuest
	}
	q := t.current

	solution := strings.TrimSpace(solutionSummary)
	if solution == "" {
		solution = defaultSolution
	}

	now := timeNow()
	q.Phase = PhaseVictory
	q.Milestones = append(q.Milestones, Milestone{
		Title:       "Victory!",
		Description: solution,
		Phase:       PhaseVictory,
		ReachedAt:   now,
	})
	q.CompletedAt = now
	q.Solution = solution

	xp := BaseXP(q.Severity) + 2*len(q.Findings) + 5*len(q.Milestones)
	q.XPEarned = xp

	levelBefore := t.hero.Level
	t.hero.XP += xp
	t.hero.Level = LevelForXP(t.hero.XP)
	t.hero.Completed = append(t.hero.Completed, q)
	t.current = nil

	return &VictoryReport{
		Quest:          q,
		Message:        t.adviser.VictoryLine(),
		Solution:       solution,
		XPGained:       xp,
		LevelBefore:    levelBefore,
		LevelAfter:     t.hero.Level,
		LeveledUp:      t.hero.Level > levelBefore,
		ElapsedMinutes: int(now.Sub(q.CreatedAt).Minutes()),
		Reflections:    t.adviser.Reflections(),
		Encouragement:  t.adviser.VictoryEncouragement(),
		NextSteps:      t.adviser.VictoryNextSteps(),
	}, nil
}
