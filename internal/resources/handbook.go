package resources

// handbook is the static reference text served at quest://handbook.
const handbook = `# 🗡️ The Debugging Hero's Handbook

Welcome, hero. Every bug is a monster, every debugging session a quest.
This handbook explains how the quest ledger works.

## The Quest

A quest begins when you describe a bug with ` + "`start_quest`" + `. The ledger
classifies it twice:

- **Foe (severity):** Goblin, Orc, Troll, Dragon, or Hydra — how fearsome
  the bug is. Crashes and production fires summon Dragons; tangles of many
  interacting symptoms summon Hydras; slowness and flaky integrations
  summon Trolls. Anything humble is a Goblin.
- **Domain (category):** Logic, Performance, Integration, UI, Data, or
  Architecture — where the bug lives. The domain picks which questions the
  ledger asks you at each phase.

Only one quest is active at a time. Starting a new quest abandons the old
one without ceremony — finish what you hunt.

## The Phases

Every quest marches through four phases, forward only:

1. **Preparation** — understand the problem, reproduce it, define success.
2. **Investigation** — opens after 3 recorded findings. Form hypotheses and
   test them.
3. **Battle** — opens after 6 findings, or immediately upon a breakthrough
   finding. You know the cause; now fix it.
4. **Victory** — declared explicitly with ` + "`complete_quest`" + `. Terminal.

## Findings

Record everything you learn with ` + "`record_finding`" + `: observations,
ruled-out hypotheses, suspicious logs. Each carries a significance —
minor, moderate, major, or breakthrough. A breakthrough means the root
cause is essentially in hand, and it hurls the quest straight into battle.

Dead ends count. A ruled-out hypothesis is a finding.

## Milestones

Milestones are struck automatically when a phase opens and when the quest
completes. You never write them yourself; you earn them.

## Experience

Completing a quest pays a bounty:

| Foe    | Base XP |
|--------|---------|
| Goblin | 10      |
| Orc    | 25      |
| Troll  | 50      |
| Dragon | 100     |
| Hydra  | 150     |

Plus 2 XP per finding and 5 XP per milestone. Every 100 XP raises the
hero a level. Progress lasts as long as the ledger is open — it is a
companion for the session, not an archive.

## Counsel

Stuck? ` + "`seek_wisdom`" + ` consults the sages. Ask about approach, testing,
or investigation — or ask anything and receive counsel fitted to your
quest's phase and domain.
`
