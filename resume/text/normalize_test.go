package text

import (
	"reflect"
	"strings"
	"testing"
)

func TestCleanCommaListDedupesCaseInsensitively(t *testing.T) {
	got := CleanCommaList("Forklift, forklift, Inventory, FORKLIFT, Safety")
	want := "Forklift, Inventory, Safety"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCleanCommaListPreservesFirstSeenCasing(t *testing.T) {
	got := CleanCommaList("sql, SQL, Sql")
	if got != "sql" {
		t.Fatalf("expected first-seen casing to win, got %q", got)
	}
}

func TestCleanCommaListDropsEmptyParts(t *testing.T) {
	got := CleanCommaList(" , a,, b , ")
	if got != "a, b" {
		t.Fatalf("expected %q, got %q", "a, b", got)
	}
	if CleanCommaList("") != "" {
		t.Fatalf("expected empty output for empty input")
	}
}

func TestSplitWinsHandlesMixedDelimiters(t *testing.T) {
	got := SplitWins("cut waste 12%; hired 4 reps • led launch")
	want := []string{"cut waste 12%", "hired 4 reps", "led launch"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplitWinsCapsList(t *testing.T) {
	parts := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		parts = append(parts, "win")
	}
	// duplicates survive here on purpose; dedupe belongs to skill lists
	got := SplitWins(strings.Join(parts, ","))
	if len(got) != MaxWins {
		t.Fatalf("expected cap of %d, got %d", MaxWins, len(got))
	}
}

func TestJoinAndSplitWinsRoundTrip(t *testing.T) {
	wins := []string{"grew revenue", "mentored juniors"}
	if got := SplitJoinedWins(JoinWins(wins)); !reflect.DeepEqual(got, wins) {
		t.Fatalf("round trip mismatch: %v", got)
	}
	if got := SplitJoinedWins("||  || grew revenue ||"); !reflect.DeepEqual(got, []string{"grew revenue"}) {
		t.Fatalf("expected blanks dropped, got %v", got)
	}
}

func TestGenerateSummaryNeverEmpty(t *testing.T) {
	got := GenerateSummary("", "", "", "")
	if got == "" {
		t.Fatal("expected non-empty summary for empty inputs")
	}
	if !strings.HasPrefix(got, "Professional with proven experience.") {
		t.Fatalf("expected fallback opener, got %q", got)
	}
}

func TestGenerateSummaryUsesYearsAndWins(t *testing.T) {
	got := GenerateSummary("Area Manager", "7", "coaching, scheduling", "cut churn; raised NPS; third win")
	if !strings.HasPrefix(got, "Area Manager with 7 years of experience.") {
		t.Fatalf("unexpected opener: %q", got)
	}
	if !strings.Contains(got, "Strengths include coaching, scheduling.") {
		t.Fatalf("missing strengths sentence: %q", got)
	}
	if !strings.Contains(got, "Known for cut churn and raised NPS.") {
		t.Fatalf("expected first two wins only: %q", got)
	}
}

func TestGenerateSummarySingleWin(t *testing.T) {
	got := GenerateSummary("Clerk", "", "", "perfect attendance")
	if !strings.Contains(got, "Known for perfect attendance.") {
		t.Fatalf("missing single-win sentence: %q", got)
	}
}

func TestFallbackSkillsPicksBucketByTitle(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Area Manager", "Team Leadership"},
		{"Hotel Front Desk", "Customer Service"},
		{"IT Support Tech", "Troubleshooting"},
		{"Welder", "Time Management"},
	}
	for _, tc := range cases {
		got := FallbackSkills(tc.title, "")
		if !strings.Contains(got, tc.want) {
			t.Fatalf("title %q: expected %q in %q", tc.title, tc.want, got)
		}
	}
}

func TestFallbackSkillsKeepsStrengthsFirstWithoutDuplicates(t *testing.T) {
	got := FallbackSkills("Area Manager", "Communication, Forklift")
	if !strings.HasPrefix(got, "Communication, Forklift") {
		t.Fatalf("expected strengths first, got %q", got)
	}
	if strings.Count(got, "Communication") != 1 {
		t.Fatalf("expected Communication deduped, got %q", got)
	}
}
