// Package guidance holds the static text pools a quest draws from and the
// Selector that picks from them.
//
// Randomness here is cosmetic: it flavors which greeting or encouragement
// line comes back, never which questions exist or how a quest advances.
// The pick function is a seam — tests inject a deterministic one and every
// engine invariant still holds.
package guidance

import (
	"fmt"
	"math/rand/v2"

	"debugquest/internal/quest"
)

// Selector implements quest.Adviser over the static pools in tables.go.
type Selector struct {
	pick func(n int) int
}

// NewSelector creates a Selector with uniform random selection.
func NewSelector() *Selector {
	return &Selector{pick: rand.IntN}
}

// NewDeterministicSelector creates a Selector that always picks the first
// entry of every pool. Used in tests.
func NewDeterministicSelector() *Selector {
	return &Selector{pick: func(int) int { return 0 }}
}

// pickFrom returns one entry of a non-empty pool.
func (s *Selector) pickFrom(pool []string) string {
	return pool[s.pick(len(pool))]
}

// Greeting returns one opening line for a new quest.
func (s *Selector) Greeting() string {
	return s.pickFrom(greetings)
}

// Questions returns the full question pool for a (category, phase) pair.
// Validate guarantees every pair has a non-empty pool, so the lookup
// cannot miss at runtime.
func (s *Selector) Questions(c quest.Category, p quest.Phase) []string {
	return questions[c][p]
}

// Encouragement returns one line sized to the monster tier.
func (s *Selector) Encouragement(sev quest.Severity) string {
	return s.pickFrom(encouragement[sev])
}

// Suggestions returns the fixed next-step list for a phase.
func (s *Selector) Suggestions(p quest.Phase) []string {
	return suggestions[p]
}

// FindingAck returns one acknowledgment line for a recorded finding.
func (s *Selector) FindingAck(breakthrough bool) string {
	if breakthrough {
		return s.pickFrom(breakthroughAcks)
	}
	return s.pickFrom(findingAcks)
}

// MilestoneAck returns one line celebrating a phase advance.
func (s *Selector) MilestoneAck() string {
	return s.pickFrom(milestoneAcks)
}

// VictoryLine returns one line for quest completion.
func (s *Selector) VictoryLine() string {
	return s.pickFrom(victoryLines)
}

// Reflections returns the fixed post-victory reflection questions.
func (s *Selector) Reflections() []string {
	return reflections
}

// VictoryEncouragement returns the fixed completion encouragement.
func (s *Selector) VictoryEncouragement() string {
	return victoryEncouragement
}

// VictoryNextSteps returns the fixed forward-looking suggestions.
func (s *Selector) VictoryNextSteps() []string {
	return victoryNextSteps
}

// Wisdom returns the fixed pool for a non-general wisdom bucket.
func (s *Selector) Wisdom(k quest.WisdomKind) []string {
	return wisdom[k]
}

// Validate checks that every text pool the engine can reach is non-empty.
// A missing (category, phase) question pool is a build defect, not a
// runtime fallback — the composition root and the tests both call this.
func Validate() error {
	for _, c := range quest.Categories {
		byPhase, ok := questions[c]
		if !ok {
			return fmt.Errorf("guidance: no question pools for category %q", c)
		}
		for _, p := range quest.Phases {
			if len(byPhase[p]) == 0 {
				return fmt.Errorf("guidance: empty question pool for (%s, %s)", c, p)
			}
		}
	}
	for _, sev := range quest.Severities {
		if len(encouragement[sev]) == 0 {
			return fmt.Errorf("guidance: empty encouragement pool for severity %q", sev)
		}
	}
	for _, p := range quest.Phases {
		if len(suggestions[p]) == 0 {
			return fmt.Errorf("guidance: empty suggestion list for phase %q", p)
		}
	}
	for _, k := range []quest.WisdomKind{quest.WisdomApproach, quest.WisdomTesting, quest.WisdomInvestigation} {
		if len(wisdom[k]) == 0 {
			return fmt.Errorf("guidance: empty wisdom pool for %q", k)
		}
	}
	for name, pool := range map[string][]string{
		"greetings":          greetings,
		"finding acks":       findingAcks,
		"breakthrough acks":  breakthroughAcks,
		"milestone acks":     milestoneAcks,
		"victory lines":      victoryLines,
		"reflections":        reflections,
		"victory next steps": victoryNextSteps,
	} {
		if len(pool) == 0 {
			return fmt.Errorf("guidance: empty %s pool", name)
		}
	}
	return nil
}
