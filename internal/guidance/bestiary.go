package guidance

import "debugquest/internal/quest"

// Monster is one bestiary entry: the lore card for a severity tier.
type Monster struct {
	Severity quest.Severity
	Emoji    string
	Threat   string
	Lore     string
	Signs    string
	Tactics  string
}

// Bestiary lists the five bug monsters in ascending threat order.
// XP rewards come from quest.BaseXP so the bestiary can never drift from
// the engine.
var Bestiary = []Monster{
	{
		Severity: quest.SeverityGoblin,
		Emoji:    "👺",
		Threat:   "Trivial",
		Lore: "The common goblin: a typo, a missing null check, a flag set the " +
			"wrong way. Loud, annoying, and dead in minutes once you look at it directly.",
		Signs:   "No alarming keywords in the report; nothing matched a fiercer beast.",
		Tactics: "Read the line the error points at. It is almost always that line.",
	},
	{
		Severity: quest.SeverityOrc,
		Emoji:    "👹",
		Threat:   "Standard",
		Lore: "The orc: a solid, everyday bug in feature logic. It fights back, " +
			"but it fights fair — reproduce it and it is already bleeding.",
		Signs:   "Reports of features misbehaving, logic gone wrong, unexpected results; moderate urgency.",
		Tactics: "Reproduce, isolate, fix, test. No heroics required, only discipline.",
	},
	{
		Severity: quest.SeverityTroll,
		Emoji:    "🧌",
		Threat:   "Tough",
		Lore: "The troll lairs under bridges between systems: slow queries, timeouts, " +
			"flaky integrations. Wound it carelessly and it regenerates by morning.",
		Signs:   "Slowness, performance complaints, timeouts, API and database trouble.",
		Tactics: "Measure before you swing. Trolls die to profilers and root causes, not to guesses.",
	},
	{
		Severity: quest.SeverityDragon,
		Emoji:    "🐉",
		Threat:   "Critical",
		Lore: "The dragon: production is burning and everyone can see the smoke. " +
			"Dragons command respect, but they are large targets — the evidence trail is everywhere.",
		Signs:   "Crashes, outages, anything with the word 'production' in it; critical urgency.",
		Tactics: "Stabilize the realm first (rollback, failover), then hunt the beast to its lair at leisure.",
	},
	{
		Severity: quest.SeverityHydra,
		Emoji:    "🐍",
		Threat:   "Multi-headed",
		Lore: "The hydra: many symptoms, one body. Fix one head and two more appear, " +
			"because the heads were never the problem.",
		Signs:   "Reports of multiple, several, various interacting failures — and a lot of 'and'.",
		Tactics: "List every head, then look for what they share. Strike the heart: the common cause.",
	},
}
