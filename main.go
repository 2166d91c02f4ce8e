package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/maverick2d/config"
	"github.com/automoto/maverick2d/fonts"
	"github.com/automoto/maverick2d/logging"
	"github.com/automoto/maverick2d/netsync"
	"github.com/automoto/maverick2d/network"
	"github.com/automoto/maverick2d/scenes"
	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/shared/protocol"
	"github.com/automoto/maverick2d/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Shutdown()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	ctx    context.Context
}

func NewGame(ctx context.Context, scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
		ctx:    ctx,
	}
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		g.scene.Shutdown()
		return ebiten.Termination
	default:
	}

	if err := g.scene.Update(); err != nil {
		if errors.Is(err, scenes.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadConfig layers configuration: defaults, then saved settings, then the
// environment, then flags. Problems are returned together so they can be
// logged once the logger exists.
func loadConfig() []error {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	var problems []error
	if err := systems.InitPersistence("maverick2d"); err != nil {
		problems = append(problems, err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		problems = append(problems, err)
	}
	systems.ApplySavedSettings(saved)

	if err := config.LoadDotEnv(".env"); err != nil {
		problems = append(problems, err)
	}
	if err := config.ApplyEnv(); err != nil {
		problems = append(problems, err)
	}
	if err := flags.Apply(); err != nil {
		problems = append(problems, err)
	}
	return problems
}

func run() error {
	problems := loadConfig()

	if err := logging.Init(logging.Config{
		File:       config.Log.File,
		MaxSizeMB:  config.Log.MaxSizeMB,
		MaxBackups: config.Log.MaxBackups,
		MaxAgeDays: config.Log.MaxAgeDays,
		Console:    config.Log.Console,
		Debug:      config.Log.Debug,
	}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Sync()

	log := logging.Named("main")
	for _, err := range problems {
		log.Warnw("configuration", "err", err)
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		return err
	}

	opts := netsync.Options{
		Start: flight.State{
			X:       config.Flight.StartX,
			Y:       config.Flight.StartY,
			Heading: config.Flight.StartHeading,
			Speed:   config.Flight.Speed,
		},
		Order:          config.Flight.StepOrder,
		StepsPerSecond: config.Flight.StepsPerSecond,
		Logger:         logging.Named("session"),
	}

	var (
		session *netsync.Session
		client  *network.Client
	)
	if config.Net.Offline {
		session = netsync.NewSession(nil, nil, opts)
		log.Infow("flying offline")
	} else {
		client = network.NewClient(protocol.NewCodec(config.Net.Format), logging.Named("client"))
		id, err := client.Start(network.TransportConfig{
			Host:        config.Net.Host,
			Port:        config.Net.Port,
			LocalAddr:   config.Net.LocalAddr,
			SendTimeout: config.Net.SendTimeout,
			QueueSize:   config.Net.SendQueue,
		})
		if err != nil {
			return err
		}
		systems.SaveCurrentSettings()

		session = netsync.NewSession(client, client, opts)
		if err := session.Join(id); err != nil {
			log.Warnw("join not sent", "err", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scene := scenes.NewFlightScene(session, client, logging.Named("scene"))
	defer scene.Shutdown()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowClosingHandled(true)

	return ebiten.RunGame(NewGame(ctx, scene))
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "maverick2d:", err)
		os.Exit(1)
	}
}
