package store

import (
	"encoding/json"
	"fmt"
)

// mergeWithSeed fills a decoded payload from the seed, field by field.
//
// Only keys the seed declares survive. Objects are merged recursively (the
// seed nests user, stats, discipline, physical{pbs,measurements} and
// settings{activeSections}). Arrays are taken wholesale when the payload
// holds an array and replaced by the seed's array otherwise. Scalars are
// taken from the payload when their JSON kind matches the seed's; a
// numeric string counts as a number. Elements inside arrays are shaped
// afterwards by conform.
func mergeWithSeed(seed, payload map[string]any) map[string]any {
	out := mergeObject(seed, payload)
	sanitizeExams(out)
	return out
}

func mergeObject(seed, payload map[string]any) map[string]any {
	out := make(map[string]any, len(seed))
	for key, seedVal := range seed {
		v, ok := payload[key]
		if !ok || v == nil {
			out[key] = seedVal
			continue
		}
		out[key] = mergeValue(seedVal, v)
	}
	return out
}

func mergeValue(seedVal, v any) any {
	switch sv := seedVal.(type) {
	case map[string]any:
		pv, ok := v.(map[string]any)
		if !ok {
			return sv
		}
		return mergeObject(sv, pv)
	case []any:
		if pv, ok := v.([]any); ok {
			return pv
		}
		return sv
	default:
		if sameKind(seedVal, v) {
			return v
		}
		return seedVal
	}
}

func sameKind(a, b any) bool {
	switch a.(type) {
	case json.Number:
		_, ok := number(b)
		return ok
	case string:
		_, ok := b.(string)
		return ok
	case bool:
		_, ok := b.(bool)
		return ok
	default:
		return a == nil
	}
}

// sanitizeExams forces exams[*].studyMaterials to an array of strings.
func sanitizeExams(doc map[string]any) {
	exams, ok := doc["exams"].([]any)
	if !ok {
		return
	}
	for _, e := range exams {
		exam, ok := e.(map[string]any)
		if !ok {
			continue
		}
		materials, _ := exam["studyMaterials"].([]any)
		kept := make([]any, 0, len(materials))
		for _, m := range materials {
			if _, ok := m.(string); ok {
				kept = append(kept, m)
			}
		}
		exam["studyMaterials"] = kept
	}
}

// toMap renders v the way the decoder sees stored payloads.
func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	return decodeObject(raw)
}
