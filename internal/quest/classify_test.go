package quest

import "testing"

// --- ClassifySeverity ---

func TestClassifySeverity_Dragon(t *testing.T) {
	got := ClassifySeverity("the login service is down in production", UrgencyNone)
	if got != SeverityDragon {
		t.Errorf("ClassifySeverity = %s, want dragon", got)
	}
}

func TestClassifySeverity_DragonFromUrgency(t *testing.T) {
	got := ClassifySeverity("button label wrong", UrgencyCritical)
	if got != SeverityDragon {
		t.Errorf("ClassifySeverity with critical urgency = %s, want dragon", got)
	}
}

func TestClassifySeverity_Hydra(t *testing.T) {
	got := ClassifySeverity("several unrelated symptoms keep appearing", UrgencyNone)
	if got != SeverityHydra {
		t.Errorf("ClassifySeverity = %s, want hydra", got)
	}
}

func TestClassifySeverity_HydraFromAndCount(t *testing.T) {
	// The token "and" more than twice signals a many-headed problem.
	got := ClassifySeverity("login breaks and signup breaks and checkout breaks and search is weird", UrgencyNone)
	if got != SeverityHydra {
		t.Errorf("ClassifySeverity = %s, want hydra", got)
	}
}

func TestClassifySeverity_AndInsideWordDoesNotCount(t *testing.T) {
	got := ClassifySeverity("standard handler randomly mishandles sandboxed commands", UrgencyNone)
	if got == SeverityHydra {
		t.Error("'and' inside longer words should not summon a hydra")
	}
}

func TestClassifySeverity_Troll(t *testing.T) {
	got := ClassifySeverity("the dashboard is slow to refresh", UrgencyNone)
	if got != SeverityTroll {
		t.Errorf("ClassifySeverity = %s, want troll", got)
	}
}

func TestClassifySeverity_Orc(t *testing.T) {
	got := ClassifySeverity("the export feature returns the wrong rows", UrgencyNone)
	if got != SeverityOrc {
		t.Errorf("ClassifySeverity = %s, want orc", got)
	}
}

func TestClassifySeverity_OrcFromUrgency(t *testing.T) {
	got := ClassifySeverity("something is off", UrgencyModerate)
	if got != SeverityOrc {
		t.Errorf("ClassifySeverity with moderate urgency = %s, want orc", got)
	}
}

func TestClassifySeverity_GoblinDefault(t *testing.T) {
	got := ClassifySeverity("small typo somewhere", UrgencyNone)
	if got != SeverityGoblin {
		t.Errorf("ClassifySeverity = %s, want goblin", got)
	}
}

func TestClassifySeverity_EmptyInput(t *testing.T) {
	got := ClassifySeverity("", UrgencyNone)
	if got != SeverityGoblin {
		t.Errorf("ClassifySeverity(\"\") = %s, want goblin", got)
	}
}

func TestClassifySeverity_CaseInsensitive(t *testing.T) {
	got := ClassifySeverity("PRODUCTION OUTAGE", UrgencyNone)
	if got != SeverityDragon {
		t.Errorf("ClassifySeverity uppercase = %s, want dragon", got)
	}
}

// TestClassifySeverity_RulePriority checks every pairwise combination:
// a description carrying keywords for two tiers always classifies as the
// earlier-listed (fiercer) tier.
func TestClassifySeverity_RulePriority(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        Severity
	}{
		{"dragon over hydra", "multiple services crash at once", SeverityDragon},
		{"dragon over troll", "slow requests ended in a production outage", SeverityDragon},
		{"dragon over orc", "the new feature brought the site down", SeverityDragon},
		{"dragon over goblin", "tiny crash", SeverityDragon},
		{"hydra over troll", "several slow endpoints", SeverityHydra},
		{"hydra over orc", "complex feature misbehavior", SeverityHydra},
		{"hydra over goblin", "various oddities", SeverityHydra},
		{"troll over orc", "the report feature is slow", SeverityTroll},
		{"troll over goblin", "timeout somewhere", SeverityTroll},
		{"orc over goblin", "unexpected result", SeverityOrc},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifySeverity(tc.description, UrgencyNone)
			if got != tc.want {
				t.Errorf("ClassifySeverity(%q) = %s, want %s", tc.description, got, tc.want)
			}
		})
	}
}

func TestClassifySeverity_Deterministic(t *testing.T) {
	description := "several slow api calls and a crash"
	first := ClassifySeverity(description, UrgencyHigh)
	for i := 0; i < 10; i++ {
		if got := ClassifySeverity(description, UrgencyHigh); got != first {
			t.Fatalf("ClassifySeverity not deterministic: %s then %s", first, got)
		}
	}
}

// --- ClassifyCategory ---

func TestClassifyCategory_EachCategory(t *testing.T) {
	cases := []struct {
		description string
		want        Category
	}{
		{"the button renders off screen", CategoryUI},
		{"requests have terrible latency", CategoryPerformance},
		{"the webhook endpoint rejects our request", CategoryIntegration},
		{"the migration corrupted user records", CategoryData},
		{"circular dependency between modules", CategoryArchitecture},
		{"the calculation returns the wrong total", CategoryLogic},
	}
	for _, tc := range cases {
		t.Run(string(tc.want), func(t *testing.T) {
			got := ClassifyCategory(tc.description, nil)
			if got != tc.want {
				t.Errorf("ClassifyCategory(%q) = %s, want %s", tc.description, got, tc.want)
			}
		})
	}
}

func TestClassifyCategory_DefaultLogic(t *testing.T) {
	got := ClassifyCategory("something is wrong", nil)
	if got != CategoryLogic {
		t.Errorf("ClassifyCategory = %s, want logic", got)
	}
}

func TestClassifyCategory_EmptyInput(t *testing.T) {
	got := ClassifyCategory("", nil)
	if got != CategoryLogic {
		t.Errorf("ClassifyCategory(\"\") = %s, want logic", got)
	}
}

func TestClassifyCategory_UIBeatsPerformance(t *testing.T) {
	got := ClassifyCategory("the screen is slow to repaint", nil)
	if got != CategoryUI {
		t.Errorf("ClassifyCategory = %s, want ui (checked before performance)", got)
	}
}

func TestClassifyCategory_PerformanceBeatsIntegration(t *testing.T) {
	// End-to-end property: "timeout"/"times out" lands in Performance even
	// though "api" would match Integration.
	got := ClassifyCategory("My API call times out under load", nil)
	if got != CategoryPerformance {
		t.Errorf("ClassifyCategory = %s, want performance (checked before integration)", got)
	}
}

func TestClassifyCategory_TechStackFoldedIn(t *testing.T) {
	got := ClassifyCategory("numbers come out wrong", []string{"css", "react"})
	if got != CategoryUI {
		t.Errorf("ClassifyCategory with css in stack = %s, want ui", got)
	}
}

// --- End-to-end classification scenario ---

func TestClassify_APITimeoutScenario(t *testing.T) {
	description := "My API call times out under load"
	if sev := ClassifySeverity(description, UrgencyNone); sev != SeverityTroll {
		t.Errorf("severity = %s, want troll", sev)
	}
	if cat := ClassifyCategory(description, nil); cat != CategoryPerformance {
		t.Errorf("category = %s, want performance", cat)
	}
}

// --- countToken ---

func TestCountToken_Punctuation(t *testing.T) {
	got := countToken("this, and that. and, the other and", "and")
	if got != 3 {
		t.Errorf("countToken = %d, want 3", got)
	}
}
