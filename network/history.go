package network

import (
	"math"

	"github.com/automoto/maverick2d/shared/messages"
)

const historySize = 64

// SentInput is an input message alongside the transport tag it went out
// with.
type SentInput struct {
	Tag   uint32
	Input messages.Input
}

// InputHistory is a ring buffer of recently sent inputs. Corrections carry
// no sequence number, so the buffer is only used to measure how far a
// correction moved the player from what was last reported.
type InputHistory struct {
	ring   [historySize]SentInput
	latest uint32
}

// Store records an input. Tags start at 1; zero marks an empty slot.
func (h *InputHistory) Store(tag uint32, in messages.Input) {
	if tag == 0 {
		return
	}
	h.ring[tag%historySize] = SentInput{Tag: tag, Input: in}
	if tag > h.latest {
		h.latest = tag
	}
}

// Get returns the input sent with tag, or false if it was never stored or
// its slot has been reused.
func (h *InputHistory) Get(tag uint32) (SentInput, bool) {
	rec := h.ring[tag%historySize]
	if tag == 0 || rec.Tag != tag {
		return SentInput{}, false
	}
	return rec, true
}

// Latest returns the most recently sent input.
func (h *InputHistory) Latest() (SentInput, bool) {
	return h.Get(h.latest)
}

// Since returns stored inputs with tags greater than tag, oldest first.
func (h *InputHistory) Since(tag uint32) []SentInput {
	var out []SentInput
	start := tag + 1
	if h.latest >= historySize && start <= h.latest-historySize {
		start = h.latest - historySize + 1
	}
	for t := start; t <= h.latest; t++ {
		if rec, ok := h.Get(t); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Drift is the distance between a correction and the last reported
// position, or 0 if nothing has been sent.
func (h *InputHistory) Drift(c messages.Correction) float64 {
	rec, ok := h.Latest()
	if !ok {
		return 0
	}
	dx := rec.Input.X - c.X
	dy := rec.Input.Y - c.Y
	return math.Sqrt(dx*dx + dy*dy)
}
