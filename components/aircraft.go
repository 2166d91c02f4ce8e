package components

import (
	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/shared/messages"
	"github.com/yohamta/donburi"
)

// AircraftData is what the renderer knows about one aircraft. The local
// aircraft mirrors the session's player every frame; remote aircraft glide
// toward the last roster position.
type AircraftData struct {
	ID    messages.PlayerID
	Local bool
	State flight.State
}

var Aircraft = donburi.NewComponentType[AircraftData]()
