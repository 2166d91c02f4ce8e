package scenes

import (
	"errors"
	"sync"
	"time"

	"github.com/automoto/maverick2d/components"
	cfg "github.com/automoto/maverick2d/config"
	"github.com/automoto/maverick2d/netsync"
	"github.com/automoto/maverick2d/network"
	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/systems"
	"github.com/automoto/maverick2d/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ErrQuit is returned from Update once the player asked to leave.
var ErrQuit = errors.New("quit requested")

// FlightScene flies the local aircraft and shows the remote roster. client
// is nil when flying offline.
type FlightScene struct {
	ecs     *ecs.ECS
	session *netsync.Session
	client  *network.Client
	log     *zap.SugaredLogger

	once     sync.Once
	shutdown sync.Once
}

func NewFlightScene(session *netsync.Session, client *network.Client, log *zap.SugaredLogger) *FlightScene {
	return &FlightScene{
		session: session,
		client:  client,
		log:     log,
	}
}

func (fs *FlightScene) Update() error {
	fs.once.Do(fs.configure)
	fs.ecs.Update()

	if fs.quitRequested() {
		fs.Shutdown()
		return ErrQuit
	}
	return nil
}

func (fs *FlightScene) Draw(screen *ebiten.Image) {
	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

// Shutdown announces the departure and releases the socket. Only the first
// call has an effect. It must run on the game loop goroutine.
func (fs *FlightScene) Shutdown() {
	fs.shutdown.Do(func() {
		if err := fs.session.Die(); err != nil {
			fs.log.Warnw("die not sent", "err", err)
		}
		if fs.client == nil {
			return
		}
		if err := fs.client.Close(); err != nil {
			fs.log.Warnw("close client", "err", err)
		}
	})
}

func (fs *FlightScene) quitRequested() bool {
	if ebiten.IsWindowBeingClosed() {
		return true
	}
	entry, ok := components.Input.First(fs.ecs.World)
	if !ok {
		return false
	}
	return systems.GetAction(components.Input.Get(entry), cfg.ActionQuit).JustPressed
}

func (fs *FlightScene) configure() {
	fs.ecs = ecs.NewECS(donburi.NewWorld())

	factory.CreateInput(fs.ecs)
	factory.CreateCamera(fs.ecs)
	factory.CreateLocalAircraft(fs.ecs, fs.session.Player().State())

	fs.session.Roster().AddListener(systems.NewRosterView(fs.ecs, cfg.UI.RemoteSmoothing))

	player := func() flight.State { return fs.session.Player().State() }

	fs.ecs.AddSystem(systems.UpdateInput)
	fs.ecs.AddSystem(systems.NewSteeringSystem(fs.session, fs.log))
	fs.ecs.AddSystem(systems.NewSessionSystem(fs.session, time.Now(), fs.log))
	fs.ecs.AddSystem(systems.NewFireSystem(player))
	fs.ecs.AddSystem(systems.NewAircraftSystem(player))
	fs.ecs.AddSystem(systems.UpdateProjectiles)
	fs.ecs.AddSystem(systems.UpdateCamera)
	fs.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	fs.ecs.AddRenderer(cfg.HUD, systems.NewHUDRenderer(fs.session, fs.linkStatus))
}

func (fs *FlightScene) linkStatus() systems.LinkStatus {
	if fs.client == nil {
		return systems.LinkStatus{}
	}
	stats := fs.client.TransportStats()
	return systems.LinkStatus{
		Online:  true,
		State:   fs.client.State().String(),
		Sent:    stats.Sent,
		Dropped: stats.Dropped + stats.Failed,
		Drift:   fs.client.LastDrift(),
	}
}
