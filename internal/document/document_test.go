package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{-50, 1},
		{0, 1},
		{999, 1},
		{1000, 2},
		{1150, 2},
		{2999, 3},
		{10000, 11},
	}
	for _, tc := range cases {
		if got := LevelForXP(tc.xp); got != tc.want {
			t.Fatalf("LevelForXP(%d)=%d, want %d", tc.xp, got, tc.want)
		}
	}
	if got := XPRequiredForLevel(LevelForXP(1150)); got != 1000 {
		t.Fatalf("XPRequiredForLevel(2)=%d, want 1000", got)
	}
}

func TestSeedIsNormalizedAndIndependent(t *testing.T) {
	a := Seed()
	b := Seed()
	a.Habits[0].CompletedDates = append(a.Habits[0].CompletedDates, "2026-01-01")
	if len(b.Habits[0].CompletedDates) != 0 {
		t.Fatalf("seed values share completion slices")
	}

	s := Seed()
	normalized := Seed()
	normalized.Normalize()
	if diff := cmp.Diff(s, normalized); diff != "" {
		t.Fatalf("seed changed under Normalize (-seed +normalized):\n%s", diff)
	}

	h := s.Habits[s.HabitByID("h1")]
	if h.Name != "7h+ Sleep (Growth Hormone)" || h.XPValue != 50 {
		t.Fatalf("unexpected h1: %+v", h)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Seed()
	orig.Exams[0].StudyMaterials = []string{"notes.pdf"}
	c := orig.Clone()

	c.Habits[0].CompletedDates = append(c.Habits[0].CompletedDates, "2026-10-19")
	c.Exams[0].StudyMaterials[0] = "changed"
	c.Projects[0].Title = "changed"
	c.Stats.XP = 500

	if len(orig.Habits[0].CompletedDates) != 0 {
		t.Fatalf("clone shares habit dates")
	}
	if orig.Exams[0].StudyMaterials[0] != "notes.pdf" {
		t.Fatalf("clone shares study materials")
	}
	if orig.Projects[0].Title != "Portfolio Website" {
		t.Fatalf("clone shares projects")
	}
	if orig.Stats.XP != 0 {
		t.Fatalf("clone shares stats")
	}
}

func TestNormalize(t *testing.T) {
	d := Document{
		Version: 0,
		Stats:   Stats{XP: -20, Level: 9},
		Habits: []Habit{
			{ID: "x", CompletedDates: []string{"2026-10-18", "2026-10-19", "2026-10-18"}},
		},
		Exams: []Exam{{ID: "e"}},
	}
	for i := 0; i < MaxLogEntries+5; i++ {
		d.Logs = append(d.Logs, LogEntry{Label: "l"})
	}

	d.Normalize()

	if d.Stats.XP != 0 || d.Stats.Level != 1 {
		t.Fatalf("stats=%+v, want xp 0 level 1", d.Stats)
	}
	if d.Version != CurrentVersion {
		t.Fatalf("version=%d, want %d", d.Version, CurrentVersion)
	}
	if diff := cmp.Diff([]string{"2026-10-18", "2026-10-19"}, d.Habits[0].CompletedDates); diff != "" {
		t.Fatalf("dates (-want +got):\n%s", diff)
	}
	if len(d.Logs) != MaxLogEntries {
		t.Fatalf("logs=%d, want %d", len(d.Logs), MaxLogEntries)
	}
	if d.Projects == nil || d.Skills == nil || d.Topics == nil || d.Exams[0].StudyMaterials == nil {
		t.Fatalf("expected empty collections instead of nil")
	}
}
