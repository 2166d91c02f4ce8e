package protocol

import (
	"fmt"
	"math"

	"github.com/automoto/maverick2d/shared/messages"
)

// asObject accepts both decoded map flavours; msgpack may hand back
// interface-keyed maps for payloads written by other encoders.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func asFloat(v any) (float64, bool) {
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
	}
	return 0, false
}

func asPlayerID(v any) (messages.PlayerID, bool) {
	f, ok := asFloat(v)
	if !ok || f != math.Trunc(f) || f < 0 || f > math.MaxUint16 {
		return 0, false
	}
	return messages.PlayerID(f), true
}
