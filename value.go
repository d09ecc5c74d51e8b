package model

import (
	"encoding/json"
	"strconv"
)

type absentValue struct{}

func (absentValue) String() string { return "absent" }

// Absent is the distinguished value an Optional descriptor decodes a
// missing input into. Object decoding never stores it: absence inside
// an object is key omission. It appears at the top level of a decode,
// inside arrays of optional elements, and in hand-constructed values.
var Absent absentValue

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absentValue)
	return ok
}

// asNumber reports v as a JSON number when it natively carries one.
// The wire model has a single double-precision number kind, so Go
// integer kinds and json.Number count as numbers here, not as casts.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// formatNumber renders f the shortest way that parses back exactly.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
