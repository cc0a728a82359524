// Command arena-desktop plays arena or survival sessions in a native window.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/simukka/arena-blaster/common"
	"github.com/simukka/arena-blaster/game"
	"github.com/simukka/arena-blaster/internal/hostlog"
)

type options struct {
	mode      string
	character string
	seed      uint
	endless   bool
	infinite  bool
	logLevel  string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.mode, "mode", common.GetEnv("ARENA_MODE", "arena"), "Mode: arena or survival")
	flag.StringVar(&o.character, "character", common.GetEnv("ARENA_CHARACTER", "soldier"), "Survival character")
	flag.UintVar(&o.seed, "seed", uint(common.GetEnvInt("ARENA_SEED", 0)), "Session seed, 0 for random")
	flag.BoolVar(&o.endless, "endless", false, "Arena respawns bots and never ends in victory")
	flag.BoolVar(&o.infinite, "infinite-ammo", false, "Survival weapons never run dry")
	flag.StringVar(&o.logLevel, "log-level", common.GetEnv("ARENA_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	flag.Parse()
	return o
}

// desktopGame adapts a session to ebiten.Game. Each ebiten update advances
// the manual scheduler by one fixed frame.
type desktopGame struct {
	game     *game.Game
	runner   *game.Runner
	sched    *game.ManualScheduler
	input    *game.InputState
	renderer *desktopRenderer
	opts     game.Options
	log      *log.Logger
}

func newDesktopGame(opts game.Options, logger *log.Logger) (*desktopGame, error) {
	r, err := newDesktopRenderer()
	if err != nil {
		return nil, err
	}
	d := &desktopGame{
		game:     game.NewGame(),
		sched:    &game.ManualScheduler{},
		input:    &game.InputState{},
		renderer: r,
		opts:     opts,
		log:      logger,
	}
	d.game.SetLogger(logger)
	d.game.SetRenderer(r)
	d.runner = game.NewRunner(d.game, d.input, d.sched)
	d.runner.OnEnd = func(phase game.Phase, err error) {
		logger.Info("session ended", "session", d.game.SessionID(), "phase", phase, "score", d.game.Score, "err", err)
	}
	return d, nil
}

func (d *desktopGame) restart() {
	d.input.Reset()
	d.renderer.Reset()
	if err := d.runner.Restart(d.opts); err != nil {
		d.log.Error("restart failed", "err", err)
	}
}

func (d *desktopGame) togglePause() {
	if d.game.Phase() != game.PhasePlaying {
		return
	}
	if d.runner.Running() {
		d.runner.Stop()
		d.renderer.paused = true
		return
	}
	d.input.Reset()
	d.renderer.paused = false
	d.runner.Start()
}

// Update implements ebiten.Game.
func (d *desktopGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	pollKeys(d.input)
	cursor := pollPointer(d.input, d.renderer.proj)
	if s := d.renderer.last; s != nil && s.Mode == game.ModeSurvival && s.HasPlayer {
		// Top-down survival aims the view at the cursor
		yaw := math.Atan2(cursor.X-s.Player.Pos.X, cursor.Z-s.Player.Pos.Z)
		d.input.SetView(yaw, 0)
	}

	if d.input.ConsumeStart() && d.game.Phase().Terminal() {
		d.restart()
	}
	if d.input.ConsumePause() {
		d.togglePause()
	}

	d.sched.Advance(game.FrameDuration)
	return nil
}

// Draw implements ebiten.Game.
func (d *desktopGame) Draw(screen *ebiten.Image) {
	d.renderer.Draw(screen)
}

// Layout implements ebiten.Game.
func (d *desktopGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.WIDTH, game.HEIGHT + hudHeight
}

func sessionOptions(o options) (game.Options, error) {
	mode, err := game.ParseMode(o.mode)
	if err != nil {
		return game.Options{}, err
	}
	opts := game.Options{
		Mode:         mode,
		Seed:         uint32(o.seed),
		Endless:      o.endless,
		InfiniteAmmo: o.infinite,
	}
	if mode == game.ModeSurvival {
		if opts.Character, err = game.ParseCharacter(o.character); err != nil {
			return game.Options{}, err
		}
	}
	return opts, nil
}

func main() {
	o := parseFlags()

	logger, err := hostlog.New(os.Stderr, hostlog.Options{Prefix: "desktop", Level: o.logLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	opts, err := sessionOptions(o)
	if err != nil {
		logger.Fatal("invalid options", "err", err)
	}

	d, err := newDesktopGame(opts, logger)
	if err != nil {
		logger.Fatal("failed to load font", "err", err)
	}
	d.restart()

	ebiten.SetWindowSize(game.WIDTH, game.HEIGHT+hudHeight)
	ebiten.SetWindowTitle("Arena Blaster")
	if err := ebiten.RunGame(d); err != nil {
		logger.Fatal("game loop failed", "err", err)
	}
}
