package wire

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Object is a decoded wire-shape JSON object, as produced by encoding/json
// or structpb.Struct.AsMap.
type Object = map[string]any

// The readers below accept whatever JSON type the remote service chose to
// send and never fail: an unusable value reads as absent.

func readObject(v any) (Object, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	default:
		return nil, false
	}
}

func readList(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, o := range t {
			out[i] = o
		}
		return out
	default:
		return nil
	}
}

func readString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

func readNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func readBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return b, err == nil
	case float64:
		return t != 0, true
	case int:
		return t != 0, true
	default:
		return false, false
	}
}

func str(o Object, key string) string {
	s, _ := readString(o[key])
	return s
}

func strs(o Object, key string) []string {
	items := readList(o[key])
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := readString(it); ok {
			out = append(out, s)
		}
	}
	return out
}

func optBool(o Object, key string) *bool {
	b, ok := readBool(o[key])
	if !ok {
		return nil
	}
	return &b
}

func optInt(o Object, key string) *int {
	f, ok := readNumber(o[key])
	if !ok {
		return nil
	}
	i := int(math.Round(f))
	return &i
}

func optFloat(o Object, key string) *float64 {
	f, ok := readNumber(o[key])
	if !ok {
		return nil
	}
	return &f
}

func objects(o Object, key string) []Object {
	items := readList(o[key])
	out := make([]Object, 0, len(items))
	for _, it := range items {
		if obj, ok := readObject(it); ok {
			out = append(out, obj)
		}
	}
	return out
}
