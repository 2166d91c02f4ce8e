// Package protocol encodes client messages into self-describing payloads and
// classifies payloads received from the relay host.
package protocol

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/automoto/maverick2d/shared/messages"
	"github.com/vmihailenco/msgpack/v5"
)

// Format is the wire encoding of a datagram.
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	}
	return "unknown"
}

// ParseFormat maps a config string onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	}
	return FormatJSON, fmt.Errorf("unknown wire format %q", s)
}

// Field names shared by every message shape.
const (
	fieldID        = "id"
	fieldType      = "type"
	fieldX         = "x"
	fieldY         = "y"
	fieldAngle     = "angle"
	fieldSpeed     = "speed"
	fieldTimestamp = "timestamp"
	fieldTurnDelta = "turnDelta"
)

// Codec converts messages to and from one wire format. It is stateless and
// safe for concurrent use.
type Codec struct {
	format Format
}

func NewCodec(format Format) *Codec {
	return &Codec{format: format}
}

func (c *Codec) Format() Format {
	return c.format
}

// Encode serializes an outbound message. A message that cannot be
// represented (for example a NaN coordinate in JSON) yields ErrEncode.
func (c *Codec) Encode(msg messages.Outbound) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("%w: nil message", ErrEncode)
	}
	fields, err := outboundFields(msg)
	if err != nil {
		return nil, err
	}

	var payload []byte
	switch c.format {
	case FormatMsgpack:
		payload, err = msgpack.Marshal(fields)
	default:
		payload, err = json.Marshal(fields)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrEncode, msg.Kind(), err)
	}
	return payload, nil
}

func outboundFields(msg messages.Outbound) (map[string]any, error) {
	fields := map[string]any{
		fieldID:   uint16(msg.Sender()),
		fieldType: string(msg.Kind()),
	}

	switch m := msg.(type) {
	case messages.Join:
		fields[fieldX] = m.X
		fields[fieldY] = m.Y
		fields[fieldAngle] = m.Angle
		fields[fieldSpeed] = m.Speed
	case messages.Input:
		fields[fieldTimestamp] = m.Timestamp
		fields[fieldX] = m.X
		fields[fieldY] = m.Y
		fields[fieldAngle] = m.Angle
		if m.TurnDelta != nil {
			fields[fieldTurnDelta] = *m.TurnDelta
		}
	case messages.Die:
	default:
		return nil, fmt.Errorf("%w: unsupported message %T", ErrEncode, msg)
	}
	return fields, nil
}

// Decode classifies a datagram from the host. An object tagged
// "correction" becomes a Correction; an untagged array becomes a
// RosterUpdate with invalid entries dropped individually. Any other
// well-formed payload returns ErrUnknownShape.
func (c *Codec) Decode(payload []byte) (messages.Inbound, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrDecode)
	}

	var v any
	var err error
	switch c.format {
	case FormatMsgpack:
		err = msgpack.Unmarshal(payload, &v)
	default:
		err = json.Unmarshal(payload, &v)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if obj, ok := asObject(v); ok {
		return decodeObject(obj)
	}
	if list, ok := v.([]any); ok {
		return decodeRoster(list), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownShape, v)
}

func decodeObject(obj map[string]any) (messages.Inbound, error) {
	kind, _ := obj[fieldType].(string)
	if messages.Kind(kind) != messages.KindCorrection {
		return nil, fmt.Errorf("%w: object type %q", ErrUnknownShape, kind)
	}

	x, okX := asFloat(obj[fieldX])
	y, okY := asFloat(obj[fieldY])
	angle, okA := asFloat(obj[fieldAngle])
	if !okX || !okY || !okA {
		return nil, fmt.Errorf("%w: correction needs numeric x, y and angle", ErrField)
	}
	return messages.Correction{X: x, Y: y, Angle: angle}, nil
}

func decodeRoster(list []any) messages.RosterUpdate {
	update := messages.RosterUpdate{
		Entries: make([]messages.RosterEntry, 0, len(list)),
	}
	for i, raw := range list {
		entry, err := decodeRosterEntry(raw)
		if err != nil {
			update.Dropped++
			update.Errs = append(update.Errs, fmt.Errorf("roster entry %d: %w", i, err))
			continue
		}
		update.Entries = append(update.Entries, entry)
	}
	return update
}

func decodeRosterEntry(raw any) (messages.RosterEntry, error) {
	obj, ok := asObject(raw)
	if !ok {
		return messages.RosterEntry{}, fmt.Errorf("%w: not an object", ErrField)
	}

	id, ok := asPlayerID(obj[fieldID])
	if !ok {
		return messages.RosterEntry{}, fmt.Errorf("%w: id", ErrField)
	}
	x, ok := asFloat(obj[fieldX])
	if !ok {
		return messages.RosterEntry{}, fmt.Errorf("%w: x", ErrField)
	}
	y, ok := asFloat(obj[fieldY])
	if !ok {
		return messages.RosterEntry{}, fmt.Errorf("%w: y", ErrField)
	}
	angle, ok := asFloat(obj[fieldAngle])
	if !ok {
		return messages.RosterEntry{}, fmt.Errorf("%w: angle", ErrField)
	}
	return messages.RosterEntry{ID: id, X: x, Y: y, Angle: angle}, nil
}
