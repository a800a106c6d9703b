package store

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Migration upgrades a raw payload from version N to N+1 in place.
type Migration func(doc map[string]any) error

// DefaultMigrations returns the migration table keyed by source version.
func DefaultMigrations() map[int]Migration {
	return map[int]Migration{
		0: migrateV0ToV1,
	}
}

// payloadVersion reads the version field. Missing means 0; integral floats
// such as 1.0 are accepted.
func payloadVersion(doc map[string]any) (int, error) {
	raw, ok := doc["version"]
	if !ok || raw == nil {
		return 0, nil
	}
	n, ok := raw.(json.Number)
	if !ok {
		return 0, fmt.Errorf("version is %T, want number", raw)
	}
	f, err := n.Float64()
	if err != nil || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, fmt.Errorf("invalid version %q", n.String())
	}
	return int(f), nil
}

// runMigrations applies table entries from the payload version up to target.
func runMigrations(doc map[string]any, table map[int]Migration, target int) error {
	from, err := payloadVersion(doc)
	if err != nil {
		return err
	}
	if from > target {
		return fmt.Errorf("payload version %d is newer than supported %d", from, target)
	}
	for v := from; v < target; v++ {
		m, ok := table[v]
		if !ok {
			return fmt.Errorf("no migration from version %d", v)
		}
		if err := m(doc); err != nil {
			return fmt.Errorf("migrate v%d: %w", v, err)
		}
		doc["version"] = json.Number(strconv.Itoa(v + 1))
	}
	return nil
}

// migrateV0ToV1 handles documents written before the version field existed.
// The stored level was never authoritative, and early builds wrote full
// timestamps into completion sets.
func migrateV0ToV1(doc map[string]any) error {
	if stats, ok := doc["stats"].(map[string]any); ok {
		delete(stats, "level")
	}
	habits, ok := doc["habits"].([]any)
	if !ok {
		return nil
	}
	for _, h := range habits {
		habit, ok := h.(map[string]any)
		if !ok {
			continue
		}
		dates, ok := habit["completedDates"].([]any)
		if !ok {
			continue
		}
		for i, d := range dates {
			if s, ok := d.(string); ok && len(s) > len("2006-01-02") {
				dates[i] = s[:len("2006-01-02")]
			}
		}
	}
	return nil
}
