package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"ascend/internal/document"
	"ascend/internal/logging"
	"ascend/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryKV, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	kv := storage.NewMemoryKV()
	return New(kv, logging.FromZap(zap.New(core))), kv, logs
}

func putRaw(t *testing.T, kv storage.KV, raw string) {
	t.Helper()
	if err := kv.Put(context.Background(), DefaultKey, []byte(raw)); err != nil {
		t.Fatalf("put: %v", err)
	}
}

func sampleDocument() document.Document {
	d := document.Seed()
	d.Stats.XP = 2350
	d.Stats.Streak = 4
	d.User.Name = "Kunal"
	d.Habits[0].CompletedDates = []string{"2026-10-18", "2026-10-19"}
	d.Logs = []document.LogEntry{
		{ID: "l1", Timestamp: time.Date(2026, 10, 19, 7, 30, 0, 0, time.UTC), Type: document.LogXP, Value: 50, Label: "Habit: 7h+ Sleep (Growth Hormone)"},
	}
	d.Exams[0].StudyMaterials = []string{"hc-verma.pdf"}
	d.Physical.PBs.Squat = 100
	d.Settings.ActiveSections.Skills = false
	return *d.Normalize()
}

func TestLoadAbsentReturnsSeed(t *testing.T) {
	s, _, logs := newTestStore(t)
	got := s.Load(context.Background())
	if diff := cmp.Diff(document.Seed(), got); diff != "" {
		t.Fatalf("load on empty storage (-seed +got):\n%s", diff)
	}
	if logs.Len() != 0 {
		t.Fatalf("absent document should not log, got %d entries", logs.Len())
	}
}

func TestLoadCorruptReturnsSeed(t *testing.T) {
	for name, raw := range map[string]string{
		"garbage":    "{not json",
		"array":      `[1,2,3]`,
		"string":     `"hello"`,
		"null":       `null`,
		"trailing":   `{"stats":{}} {"stats":{}}`,
		"future":     `{"version":99,"stats":{"xp":5}}`,
		"badVersion": `{"version":"one"}`,
	} {
		t.Run(name, func(t *testing.T) {
			s, kv, logs := newTestStore(t)
			putRaw(t, kv, raw)

			got := s.Load(context.Background())
			if diff := cmp.Diff(document.Seed(), got); diff != "" {
				t.Fatalf("corrupt payload should load as seed (-seed +got):\n%s", diff)
			}
			if logs.FilterMessage("stored document unreadable, using seed").Len() != 1 {
				t.Fatalf("expected one warning, got %v", logs.All())
			}
		})
	}
}

func TestLoadFillsOmittedTopLevelFields(t *testing.T) {
	full := sampleDocument()
	raw, err := Encode(full)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	omitted := []string{"projects", "skills", "physical", "settings", "topics"}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range omitted {
		delete(payload, k)
	}
	trimmed, _ := json.Marshal(payload)

	s, kv, _ := newTestStore(t)
	putRaw(t, kv, string(trimmed))
	got := s.Load(context.Background())

	seed := document.Seed()
	want := full
	want.Projects = seed.Projects
	want.Skills = seed.Skills
	want.Physical = seed.Physical
	want.Settings = seed.Settings
	want.Topics = seed.Topics

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMergesNestedObjectsOneFieldAtATime(t *testing.T) {
	s, kv, _ := newTestStore(t)
	putRaw(t, kv, `{
		"version": 1,
		"stats": {"xp": 1234, "level": 40},
		"physical": {"weight": 72.5, "pbs": {"deadlift": 140}},
		"settings": {"theme": "light", "activeSections": {"exams": false}},
		"user": "not an object",
		"unknownField": {"x": 1}
	}`)

	got := s.Load(context.Background())
	seed := document.Seed()

	if got.Stats.XP != 1234 || got.Stats.Level != 2 || got.Stats.Streak != 0 {
		t.Fatalf("stats=%+v, want xp 1234 level 2 streak 0", got.Stats)
	}
	if got.Physical.Weight != 72.5 || got.Physical.PBs.Deadlift != 140 || got.Physical.PBs.Squat != 0 {
		t.Fatalf("physical=%+v", got.Physical)
	}
	if got.Settings.Theme != "light" || got.Settings.DailyXPGoal != seed.Settings.DailyXPGoal {
		t.Fatalf("settings=%+v", got.Settings)
	}
	if got.Settings.ActiveSections.Exams || !got.Settings.ActiveSections.Habits {
		t.Fatalf("activeSections=%+v", got.Settings.ActiveSections)
	}
	if diff := cmp.Diff(seed.User, got.User); diff != "" {
		t.Fatalf("non-object user should fall back to seed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(seed.Habits, got.Habits); diff != "" {
		t.Fatalf("habits (-want +got):\n%s", diff)
	}
}

func TestLoadReplacesNonArraysAndSanitizesExams(t *testing.T) {
	s, kv, _ := newTestStore(t)
	putRaw(t, kv, `{
		"version": 1,
		"habits": {"h1": true},
		"logs": "none",
		"projects": [],
		"exams": [
			{"id": "e9", "name": "Finals", "studyMaterials": "notes.pdf"},
			{"id": "e10", "name": "Mocks"},
			{"id": "e11", "name": "Orals", "studyMaterials": ["a.pdf", 3, null]}
		],
		"stats": {"xp": "lots", "streak": 3}
	}`)

	got := s.Load(context.Background())
	seed := document.Seed()

	if diff := cmp.Diff(seed.Habits, got.Habits); diff != "" {
		t.Fatalf("habits (-want +got):\n%s", diff)
	}
	if len(got.Logs) != 0 || got.Logs == nil {
		t.Fatalf("logs=%v, want seed's empty array", got.Logs)
	}
	if len(got.Projects) != 0 {
		t.Fatalf("empty projects array must be kept, got %d", len(got.Projects))
	}
	want := []document.Exam{
		{ID: "e9", Name: "Finals", StudyMaterials: []string{}},
		{ID: "e10", Name: "Mocks", StudyMaterials: []string{}},
		{ID: "e11", Name: "Orals", StudyMaterials: []string{"a.pdf"}},
	}
	if diff := cmp.Diff(want, got.Exams); diff != "" {
		t.Fatalf("exams (-want +got):\n%s", diff)
	}
	if got.Stats.XP != 0 || got.Stats.Streak != 3 {
		t.Fatalf("stats=%+v, want seed xp with stored streak", got.Stats)
	}
}

func TestLoadSaveLoadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, kv, _ := newTestStore(t)
	putRaw(t, kv, `{"stats":{"xp":3100,"level":1},"habits":[{"id":"h1","name":"Sleep","category":"Physical","completedDates":["2026-10-19T06:00:00Z","2026-10-19"],"xpValue":50}]}`)

	first := s.Load(ctx)
	s.Save(ctx, first)
	second := s.Load(ctx)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("load/save/load drifted (-first +second):\n%s", diff)
	}

	doc := sampleDocument()
	s.Save(ctx, doc)
	if diff := cmp.Diff(doc, s.Load(ctx)); diff != "" {
		t.Fatalf("round trip (-saved +loaded):\n%s", diff)
	}
}

func TestUnversionedPayloadIsMigrated(t *testing.T) {
	s, kv, _ := newTestStore(t)
	putRaw(t, kv, `{"stats":{"xp":2500,"level":7},"habits":[{"id":"h1","name":"Sleep","category":"Physical","frequency":"daily","completedDates":["2026-10-18T22:10:00.000Z","2026-10-18"],"xpValue":50}]}`)

	got := s.Load(context.Background())
	if got.Version != document.CurrentVersion {
		t.Fatalf("version=%d, want %d", got.Version, document.CurrentVersion)
	}
	if got.Stats.Level != 3 {
		t.Fatalf("level=%d, want derived 3", got.Stats.Level)
	}
	if diff := cmp.Diff([]string{"2026-10-18"}, got.Habits[0].CompletedDates); diff != "" {
		t.Fatalf("completion dates (-want +got):\n%s", diff)
	}
}

func TestMigrationTableIsApplied(t *testing.T) {
	calls := 0
	table := map[int]Migration{
		0: func(doc map[string]any) error {
			calls++
			doc["user"] = map[string]any{"name": "migrated"}
			return nil
		},
	}
	core, _ := observer.New(zapcore.DebugLevel)
	kv := storage.NewMemoryKV()
	s := New(kv, logging.FromZap(zap.New(core)), WithMigrations(table), WithKey("custom"))
	if err := kv.Put(context.Background(), "custom", []byte(`{}`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	got := s.Load(context.Background())
	if calls != 1 || got.User.Name != "migrated" {
		t.Fatalf("calls=%d user=%+v", calls, got.User)
	}

	failing := New(kv, nil, WithMigrations(map[int]Migration{
		0: func(map[string]any) error { return errors.New("boom") },
	}), WithKey("custom"))
	if diff := cmp.Diff(document.Seed(), failing.Load(context.Background())); diff != "" {
		t.Fatalf("failed migration should load seed (-seed +got):\n%s", diff)
	}
}

func TestSaveFailureIsLoggedNotPropagated(t *testing.T) {
	ctx := context.Background()
	s, kv, logs := newTestStore(t)
	kv.PutErr = errors.New("quota exceeded")

	s.Save(ctx, sampleDocument())

	entries := logs.FilterMessage("write document").All()
	if len(entries) != 1 {
		t.Fatalf("expected one write failure log, got %v", logs.All())
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("level=%v, want error", entries[0].Level)
	}
	if _, ok, _ := kv.Get(ctx, DefaultKey); ok {
		t.Fatalf("nothing should have been written")
	}
}

func TestResetAndExport(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	s.Save(ctx, sampleDocument())

	out, err := s.Export(ctx)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	var exported document.Document
	if err := json.Unmarshal(out, &exported); err != nil {
		t.Fatalf("exported JSON: %v", err)
	}
	if exported.Stats.XP != 2350 {
		t.Fatalf("exported xp=%d", exported.Stats.XP)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if diff := cmp.Diff(document.Seed(), s.Load(ctx)); diff != "" {
		t.Fatalf("after reset (-seed +got):\n%s", diff)
	}
}

func TestSaveEmitsFullShape(t *testing.T) {
	d := document.Document{}
	raw, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"version", "habits", "projects", "logs", "exams", "subjects", "chapters", "topics", "skills"} {
		v, ok := payload[k]
		if !ok {
			t.Fatalf("missing %q", k)
		}
		if k != "version" {
			if _, ok := v.([]any); !ok {
				t.Fatalf("%q=%v, want array", k, v)
			}
		}
	}
	if d.Habits != nil {
		t.Fatalf("Encode must not mutate its argument")
	}
}

func TestLoadShapesMalformedElementsInsteadOfDroppingDocument(t *testing.T) {
	millis := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	for name, tc := range map[string]struct {
		raw   string
		check func(t *testing.T, got document.Document)
	}{
		"logTimestampMillis": {
			raw: `{"version":1,"stats":{"xp":4200},"logs":[{"id":"l1","timestamp":1700000000000,"type":"xp","value":50,"label":"a"}]}`,
			check: func(t *testing.T, got document.Document) {
				if len(got.Logs) != 1 || !got.Logs[0].Timestamp.Equal(millis) {
					t.Fatalf("logs=%+v, want timestamp %v", got.Logs, millis)
				}
			},
		},
		"logTimestampNoZone": {
			raw: `{"version":1,"stats":{"xp":4200},"logs":[{"id":"l1","timestamp":"2026-10-19 07:30:00","type":"xp","value":50,"label":"a"}]}`,
			check: func(t *testing.T, got document.Document) {
				want := time.Date(2026, 10, 19, 7, 30, 0, 0, time.Local)
				if len(got.Logs) != 1 || !got.Logs[0].Timestamp.Equal(want) {
					t.Fatalf("logs=%+v, want timestamp %v", got.Logs, want)
				}
			},
		},
		"logTimestampGarbage": {
			raw: `{"version":1,"stats":{"xp":4200},"logs":[{"id":"l1","timestamp":"yesterday","type":"xp","value":50,"label":"a"}]}`,
			check: func(t *testing.T, got document.Document) {
				if len(got.Logs) != 1 || !got.Logs[0].Timestamp.IsZero() || got.Logs[0].Label != "a" {
					t.Fatalf("logs=%+v, want entry kept with zero timestamp", got.Logs)
				}
			},
		},
		"habitXPString": {
			raw: `{"version":1,"stats":{"xp":4200},"habits":[{"id":"h1","name":"Sleep","xpValue":"50"},{"id":"h2","name":"Read","xpValue":"fifty"}]}`,
			check: func(t *testing.T, got document.Document) {
				if len(got.Habits) != 2 || got.Habits[0].XPValue != 50 || got.Habits[1].XPValue != 0 {
					t.Fatalf("habits=%+v, want xpValue 50 and 0", got.Habits)
				}
			},
		},
		"fractionalXP": {
			raw: `{"version":1,"stats":{"xp":4200.5}}`,
			check: func(t *testing.T, got document.Document) {},
		},
		"incomeString": {
			raw: `{"version":1,"stats":{"xp":4200},"projects":[{"id":"p9","title":"Shop","income":"12","status":"Planning"}]}`,
			check: func(t *testing.T, got document.Document) {
				if len(got.Projects) != 1 || got.Projects[0].Income != 12 {
					t.Fatalf("projects=%+v, want income 12", got.Projects)
				}
			},
		},
		"nonObjectElement": {
			raw: `{"version":1,"stats":{"xp":4200},"skills":[7,{"id":"sk9","name":"Go","level":2.9}]}`,
			check: func(t *testing.T, got document.Document) {
				if len(got.Skills) != 1 || got.Skills[0].ID != "sk9" || got.Skills[0].Level != 2 {
					t.Fatalf("skills=%+v, want only sk9 at level 2", got.Skills)
				}
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			s, kv, logs := newTestStore(t)
			putRaw(t, kv, tc.raw)

			got := s.Load(context.Background())
			if got.Stats.XP != 4200 || got.Stats.Level != 5 {
				t.Fatalf("stats=%+v, want stored xp 4200 at level 5", got.Stats)
			}
			if logs.FilterMessage("stored document unreadable, using seed").Len() != 0 {
				t.Fatalf("document should not be treated as corrupt: %v", logs.All())
			}
			tc.check(t, got)
		})
	}
}

func TestLoadAcceptsIntegralFloatVersion(t *testing.T) {
	s, kv, _ := newTestStore(t)
	putRaw(t, kv, `{"version":1.0,"stats":{"xp":4200}}`)

	got := s.Load(context.Background())
	if got.Stats.XP != 4200 || got.Version != document.CurrentVersion {
		t.Fatalf("version=%d xp=%d, want stored document kept", got.Version, got.Stats.XP)
	}

	putRaw(t, kv, `{"version":1.5,"stats":{"xp":4200}}`)
	if diff := cmp.Diff(document.Seed(), s.Load(context.Background())); diff != "" {
		t.Fatalf("fractional version should load as seed (-seed +got):\n%s", diff)
	}
}

type flakyKV struct {
	*storage.MemoryKV
	getErr error
}

func (f *flakyKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.MemoryKV.Get(ctx, key)
}

func TestSaveIsSkippedAfterFailedRead(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)
	kv := &flakyKV{MemoryKV: storage.NewMemoryKV()}
	s := New(kv, logging.FromZap(zap.New(core)))
	stored := sampleDocument()
	s.Save(ctx, stored)

	kv.getErr = errors.New("database is locked")
	got := s.Load(ctx)
	if diff := cmp.Diff(document.Seed(), got); diff != "" {
		t.Fatalf("failed read should serve the seed (-seed +got):\n%s", diff)
	}
	got.Stats.XP = 10
	s.Save(ctx, got)
	if logs.FilterMessage("skip write after failed read").Len() != 1 {
		t.Fatalf("expected skipped write to be logged, got %v", logs.All())
	}

	kv.getErr = nil
	if diff := cmp.Diff(stored, s.Load(ctx)); diff != "" {
		t.Fatalf("stored document was overwritten (-stored +got):\n%s", diff)
	}

	stored.Stats.XP = 5000
	s.Save(ctx, stored)
	if got := s.Load(ctx); got.Stats.XP != 5000 {
		t.Fatalf("xp=%d, want writes resumed after a good read", got.Stats.XP)
	}
}
