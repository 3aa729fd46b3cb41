package guidance

import "debugquest/internal/quest"

// --- Question pools, keyed by (category × phase) ---
//
// Every pair must have a non-empty pool; Validate enforces it.

var questions = map[quest.Category]map[quest.Phase][]string{
	quest.CategoryLogic: {
		quest.PhasePreparation: {
			"What exact output did you expect, and what did you get instead?",
			"Can you reproduce the wrong behavior with a single, minimal input?",
			"When did this logic last work correctly — what changed since?",
		},
		quest.PhaseInvestigation: {
			"Which branch of the code actually runs for the failing input? Have you verified, not assumed?",
			"Are there off-by-one boundaries (first element, last element, empty input) in the failing path?",
			"What happens if you trace the value step by step — where does it first diverge from your expectation?",
		},
		quest.PhaseBattle: {
			"You know where the logic diverges — what is the smallest change that corrects it?",
			"Does your fix handle the boundary cases, or just the one input you tested?",
			"Could another caller depend on the old, wrong behavior?",
		},
		quest.PhaseVictory: {
			"Which assumption turned out to be false, and why did it look true?",
			"What test would have caught this before it shipped?",
			"Is the same flawed pattern copied anywhere else in the codebase?",
		},
	},
	quest.CategoryPerformance: {
		quest.PhasePreparation: {
			"What is slow, exactly — and slow compared to what baseline?",
			"Is it slow always, or only under load, at scale, or at certain times?",
			"Have you measured, or is the slowness a feeling so far?",
		},
		quest.PhaseInvestigation: {
			"Where does the profiler say the time actually goes? The hot spot is rarely where you guess.",
			"Is the work O(n) that should be O(1) — a query in a loop, a scan instead of an index?",
			"Are you waiting on I/O, CPU, locks, or the network? Each calls for a different weapon.",
		},
		quest.PhaseBattle: {
			"What does the measurement say after your change — faster by how much?",
			"Did the optimization change behavior anywhere, or only speed?",
			"Is there a cache, an index, or a batch that removes the work entirely instead of shaving it?",
		},
		quest.PhaseVictory: {
			"What metric will tell you if this regresses again?",
			"Was the root cause a missing measurement, a wrong algorithm, or growth nobody planned for?",
			"Which other paths share the pattern you just fixed?",
		},
	},
	quest.CategoryIntegration: {
		quest.PhasePreparation: {
			"Which side of the integration misbehaves — your call, their response, or the contract between?",
			"Do you have the exact request and response captured, headers and all?",
			"Does the failure reproduce in isolation, outside your application?",
		},
		quest.PhaseInvestigation: {
			"What does the other system actually return — have you looked at the raw payload?",
			"Are timeouts, retries, and error codes handled, or silently swallowed?",
			"Did the external API change version, schema, or rate limits recently?",
		},
		quest.PhaseBattle: {
			"Can you make the failing exchange pass in a standalone test before wiring the fix in?",
			"What happens when the remote side is slow, down, or returns garbage — does your fix survive?",
			"Is the contract now written down where both sides can see it?",
		},
		quest.PhaseVictory: {
			"Which assumption about the external system was wrong?",
			"Would a contract test or a recorded fixture have caught this?",
			"What is the alerting story the next time the other side changes?",
		},
	},
	quest.CategoryUI: {
		quest.PhasePreparation: {
			"What does the user see, and what should they see? A screenshot is worth a scroll of words.",
			"Does it misrender everywhere, or only in certain browsers, sizes, or states?",
			"Is the data wrong, or only its presentation?",
		},
		quest.PhaseInvestigation: {
			"What does the element inspector show — is the markup wrong, the style wrong, or both?",
			"Is state updating but not re-rendering, or re-rendering with stale state?",
			"Does the problem survive with caching and extensions disabled?",
		},
		quest.PhaseBattle: {
			"Does the fix hold at the smallest and largest viewport you support?",
			"Did you fix the symptom in one component or the cause in the shared style?",
			"Does keyboard and screen-reader flow still work after the change?",
		},
		quest.PhaseVictory: {
			"Could a visual regression test have caught this?",
			"Was the cause in this component, or in a global style it inherited?",
			"What device or browser matrix should this be verified on going forward?",
		},
	},
	quest.CategoryData: {
		quest.PhasePreparation: {
			"Is the data wrong at rest, wrong in transit, or wrong only when displayed?",
			"Can you point at one concrete record that is wrong and say what it should be?",
			"When did the bad data first appear — and what ran at that time?",
		},
		quest.PhaseInvestigation: {
			"What does the query actually return when you run it by hand?",
			"Is there a write path that skips validation — an import, a migration, an admin tool?",
			"Are two sources of truth disagreeing, and if so, which one is canonical?",
		},
		quest.PhaseBattle: {
			"Does your fix stop new corruption, repair the old, or both? You likely need both.",
			"Have you tried the repair on a copy before touching the real records?",
			"What constraint or validation would make this corruption impossible?",
		},
		quest.PhaseVictory: {
			"Is the invariant that was violated now enforced by the schema itself?",
			"How would you detect this corruption within hours instead of weeks next time?",
			"Did the repair cover every affected record, and how do you know?",
		},
	},
	quest.CategoryArchitecture: {
		quest.PhasePreparation: {
			"Is this one bug, or a symptom that keeps resurfacing in different places?",
			"Which components are tangled together in the failure?",
			"What boundary, if it existed, would have contained this problem?",
		},
		quest.PhaseInvestigation: {
			"Draw the dependency arrows for the failing flow — where do they form a cycle or a knot?",
			"Which module knows something it has no business knowing?",
			"Is the coupling in the code, the data, or the deployment?",
		},
		quest.PhaseBattle: {
			"What is the smallest seam you can introduce now, without a grand rewrite?",
			"Can you strangle the tangled path behind an interface before replacing it?",
			"What tests pin the current behavior so the restructuring can't silently change it?",
		},
		quest.PhaseVictory: {
			"Which boundary did you introduce, and what enforces it now?",
			"What would stop the next developer from re-coupling what you just separated?",
			"Is the design decision and its rationale written down?",
		},
	},
}

// --- Encouragement pools, keyed by severity ---

var encouragement = map[quest.Severity][]string{
	quest.SeverityGoblin: {
		"A mere goblin — it squeals loudly but falls to a single well-aimed print statement.",
		"Goblins are quick work for a hero of your experience. Dispatch it and move on.",
		"Small foe, small fuss. You have slain a hundred of these.",
	},
	quest.SeverityOrc: {
		"An orc stands before you — sturdy, but no match for methodical steel.",
		"Orcs fall to discipline, not heroics. One reproducible case and it is half beaten.",
		"Solid foe, solid plan: reproduce, isolate, strike.",
	},
	quest.SeverityTroll: {
		"A troll blocks the bridge. Trolls regenerate — if you don't find the root cause, it will be back.",
		"Patience slays trolls. Measure twice, strike once.",
		"This one is tough, but trolls are slow. Your profiler is faster.",
	},
	quest.SeverityDragon: {
		"A dragon wakes — production trembles. Keep your head: even dragons die to a single precise blow.",
		"Dragonfire is loud, but a calm hero checks the logs before drawing the sword.",
		"This is the big one. Breathe, stabilize the realm first, then hunt the beast to its lair.",
	},
	quest.SeverityHydra: {
		"A hydra — cut off one head and two more appear. Find the heart, not the heads.",
		"Many symptoms, one beast. Do not chase every head; trace them back to the body.",
		"The hydra thrives on confusion. List the heads, then look for what they share.",
	},
}

// --- Fixed next-step suggestions per phase ---

var suggestions = map[quest.Phase][]string{
	quest.PhasePreparation: {
		"Reproduce the problem reliably before anything else",
		"Write down the expected vs. actual behavior in one sentence each",
		"Record your first finding with record_finding as soon as you learn anything",
	},
	quest.PhaseInvestigation: {
		"Form one specific hypothesis and design the cheapest test that could falsify it",
		"Read the actual error, log, or payload — not your memory of it",
		"Record each ruled-out hypothesis as a finding; dead ends are progress",
	},
	quest.PhaseBattle: {
		"Make the smallest change that addresses the root cause",
		"Prove the fix with a test that failed before and passes after",
		"Check the surrounding code for the same flaw before declaring victory",
	},
	quest.PhaseVictory: {
		"Write the regression test while the failure is fresh in your mind",
		"Note the root cause where the next debugger will find it",
		"Complete the quest with complete_quest to claim your experience",
	},
}

// --- Fixed single-line pools ---

var greetings = []string{
	"A new quest is inscribed in the ledger. Sharpen your mind, hero.",
	"The horn sounds — a bug has been sighted and your name was called.",
	"Another foe dares disturb the realm. The quest begins now.",
	"Your quest is recorded. May your stack traces be shallow and your logs verbose.",
}

var findingAcks = []string{
	"The clue is etched into the quest ledger.",
	"A finding recorded — the picture sharpens.",
	"Noted and filed. Every clue narrows the hunt.",
	"The ledger grows. So does your advantage.",
}

var breakthroughAcks = []string{
	"A BREAKTHROUGH! The fog lifts and the beast's lair stands revealed!",
	"The decisive clue! Bards will sing of this moment.",
	"Eureka! That finding changes everything — the hunt becomes a charge.",
}

var milestoneAcks = []string{
	"A milestone is struck into the stone!",
	"The quest advances — a new chapter opens.",
	"Progress worthy of the chronicle!",
}

var victoryLines = []string{
	"The beast is slain! The realm is calm once more.",
	"Victory! Another bug falls to your blade.",
	"The quest is complete — let the tale be told in the great hall.",
}

// --- Fixed victory content ---

var reflections = []string{
	"What was the true root cause, beneath the first explanation you reached for?",
	"What would have made this bug impossible, or at least loud, from the start?",
	"What did this quest teach you that the next one will need?",
}

const victoryEncouragement = "Every slain bug leaves you stronger. The realm rests easier tonight because of you."

var victoryNextSteps = []string{
	"Add the regression test before the context fades",
	"Share the root cause with your party — someone else is near the same beast",
	"Rest, then start your next quest when a new foe appears",
}

// --- Wisdom pools for the fixed buckets ---

var wisdom = map[quest.WisdomKind][]string{
	quest.WisdomApproach: {
		"Divide the battlefield: binary-search the failure by disabling half of everything at a time.",
		"Walk the path backwards from the symptom to the first point where the data was still correct.",
		"Change one thing at a time. Two changes at once is how heroes get lost in the dungeon.",
		"If you have stared for an hour, explain the problem aloud to a rubber duck or a colleague.",
	},
	quest.WisdomTesting: {
		"Write the failing test first — it is both your compass and your proof of victory.",
		"Test the boundary, not the middle: empty, one, many, too many.",
		"A fix without a test is a truce, not a victory.",
		"Run the whole suite, not just your new test — beasts have allies.",
	},
	quest.WisdomInvestigation: {
		"Read the error message again, slowly. It usually says exactly what is wrong.",
		"Logs before theories: gather what actually happened before deciding what must have happened.",
		"Check the timeline — what deployed, changed, or expired right before the trouble began?",
		"Trust nothing you have not verified in this session. Yesterday's truths expire.",
	},
}
