package tags

import "github.com/yohamta/donburi"

var (
	LocalAircraft  = donburi.NewTag().SetName("LocalAircraft")
	RemoteAircraft = donburi.NewTag().SetName("RemoteAircraft")
	Projectile     = donburi.NewTag().SetName("Projectile")
)
