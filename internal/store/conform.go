package store

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// timeLayouts are tried in order for stored timestamps without a zone.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// conform shapes a decoded JSON value so it unmarshals into t. Struct keys
// without a json field are dropped, fields that cannot be coerced are
// dropped (they decode as zero), and slice elements that cannot be coerced
// are removed. ok is false when v as a whole does not fit t.
//
// Coercions: numeric strings become numbers, fractional numbers going into
// integer fields are truncated, and timestamps accept RFC 3339, zone-less
// layouts (local time), and epoch seconds or milliseconds.
func conform(v any, t reflect.Type) (any, bool) {
	if t == timeType {
		return conformTime(v)
	}
	switch t.Kind() {
	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		out := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name := jsonName(f)
			if name == "" {
				continue
			}
			fv, present := obj[name]
			if !present || fv == nil {
				continue
			}
			if cv, ok := conform(fv, f.Type); ok {
				out[name] = cv
			}
		}
		return out, true
	case reflect.Slice:
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		out := make([]any, 0, len(arr))
		for _, el := range arr {
			if cv, ok := conform(el, t.Elem()); ok {
				out = append(out, cv)
			}
		}
		return out, true
	case reflect.String:
		s, ok := v.(string)
		return s, ok
	case reflect.Bool:
		b, ok := v.(bool)
		return b, ok
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, ok := number(v)
		if !ok {
			return nil, false
		}
		f = math.Trunc(f)
		bits := t.Bits()
		if f < -math.Ldexp(1, bits-1) || f >= math.Ldexp(1, bits-1) {
			return nil, false
		}
		return json.Number(strconv.FormatInt(int64(f), 10)), true
	case reflect.Float32, reflect.Float64:
		f, ok := number(v)
		if !ok {
			return nil, false
		}
		return json.Number(strconv.FormatFloat(f, 'g', -1, 64)), true
	default:
		return v, true
	}
}

func jsonName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

// number reads a JSON number or a numeric string.
func number(v any) (float64, bool) {
	var s string
	switch n := v.(type) {
	case json.Number:
		s = n.String()
	case string:
		s = strings.TrimSpace(n)
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func conformTime(v any) (any, bool) {
	if s, ok := v.(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return ts.Format(time.RFC3339Nano), true
		}
		for _, layout := range timeLayouts {
			if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return ts.Format(time.RFC3339Nano), true
			}
		}
	}
	f, ok := number(v)
	if !ok {
		return nil, false
	}
	// Values this large are milliseconds; smaller ones are seconds.
	var ts time.Time
	if math.Abs(f) >= 1e11 {
		ts = time.UnixMilli(int64(f))
	} else {
		ts = time.Unix(int64(f), 0)
	}
	return ts.UTC().Format(time.RFC3339Nano), true
}
