package product

import (
	"math"
	"strconv"
	"strings"
)

// Write-side coercion: clients send numerics as numbers or strings, and list
// fields as arrays or comma-separated strings. Unreadable numerics coerce to
// the given default (zero for persisted prices/ratings).

func coerceFloat(v any, def float64) float64 {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return def
		}
		return t
	case int:
		return float64(t)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return def
		}
		return n
	}
	return def
}

func coerceStringList(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, el := range t {
			if s, ok := el.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		out := make([]string, 0)
		for _, part := range strings.Split(t, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return []string{}
}

func coerceBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	case float64:
		return t != 0
	}
	return false
}
