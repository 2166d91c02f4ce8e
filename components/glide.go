package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GlideData smooths a remote aircraft between roster updates. A nil tween
// means the axis is at rest.
type GlideData struct {
	X, Y, Heading *gween.Tween
}

var Glide = donburi.NewComponentType[GlideData]()
