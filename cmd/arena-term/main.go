// Command arena-term plays arena or survival sessions in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/simukka/arena-blaster/common"
	"github.com/simukka/arena-blaster/game"
	"github.com/simukka/arena-blaster/internal/hostlog"
)

// turnStep is the survival yaw change per turn key press.
const turnStep = 0.08

// Extra runes handled by the host.
const (
	runeTurnLeft  = ','
	runeTurnRight = '.'
	runeQuit      = 'q'
)

type options struct {
	mode      string
	character string
	seed      uint
	endless   bool
	infinite  bool
	logFile   string
	logLevel  string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.mode, "mode", common.GetEnv("ARENA_MODE", "arena"), "Mode: arena or survival")
	flag.StringVar(&o.character, "character", common.GetEnv("ARENA_CHARACTER", "soldier"), "Survival character")
	flag.UintVar(&o.seed, "seed", uint(common.GetEnvInt("ARENA_SEED", 0)), "Session seed, 0 for random")
	flag.BoolVar(&o.endless, "endless", false, "Arena respawns bots and never ends in victory")
	flag.BoolVar(&o.infinite, "infinite-ammo", false, "Survival weapons never run dry")
	flag.StringVar(&o.logFile, "log", common.GetEnv("ARENA_LOG", "arena-term.log"), "Log file path")
	flag.StringVar(&o.logLevel, "log-level", common.GetEnv("ARENA_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	flag.Parse()
	return o
}

// sessionOptions converts flags into game options.
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

// app owns the terminal session loop.
type app struct {
	screen   tcell.Screen
	game     *game.Game
	runner   *game.Runner
	sched    *game.ManualScheduler
	input    *game.InputState
	holds    *holdTracker
	renderer *termRenderer
	opts     game.Options
	log      *log.Logger
}

func newApp(screen tcell.Screen, opts game.Options, logger *log.Logger) *app {
	a := &app{
		screen: screen,
		game:   game.NewGame(),
		sched:  &game.ManualScheduler{},
		input:  &game.InputState{},
		opts:   opts,
		log:    logger,
	}
	a.holds = newHoldTracker(a.input)
	a.renderer = newTermRenderer(screen)
	a.game.SetLogger(logger)
	a.game.SetRenderer(a.renderer)
	a.runner = game.NewRunner(a.game, a.input, a.sched)
	a.runner.OnEnd = func(phase game.Phase, err error) {
		logger.Info("session ended", "session", a.game.SessionID(), "phase", phase, "score", a.game.Score, "err", err)
	}
	return a
}

func (a *app) restart() error {
	a.holds.Reset()
	a.renderer.Reset()
	return a.runner.Restart(a.opts)
}

func (a *app) togglePause() {
	if a.game.Phase() != game.PhasePlaying {
		return
	}
	if a.runner.Running() {
		a.runner.Stop()
		a.renderer.paused = true
	} else {
		a.holds.Reset()
		a.renderer.paused = false
		a.runner.Start()
	}
	a.renderer.Redraw()
}

// handleEvent applies one terminal event. Returns false to quit.
func (a *app) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == runeQuit) {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case runeTurnLeft:
				a.turn(-turnStep)
				return true
			case runeTurnRight:
				a.turn(turnStep)
				return true
			}
		}
		if code, ok := keyCode(ev); ok {
			a.holds.Press(code, now)
		}
		a.handleEdges()

	case *tcell.EventMouse:
		col, row := ev.Position()
		p := a.renderer.view.world(col, row)
		a.input.SetPointer(p.X, p.Y)
		if ev.Buttons()&tcell.Button1 != 0 {
			if a.game.Phase().Terminal() {
				a.restartOrLog()
				return true
			}
			a.input.PointerDown()
		} else {
			a.input.PointerUp()
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Redraw()
	}
	return true
}

func (a *app) turn(delta float64) {
	yaw, pitch := a.input.View()
	a.input.SetView(yaw+delta, pitch)
}

func (a *app) handleEdges() {
	if a.input.ConsumeStart() && a.game.Phase().Terminal() {
		a.restartOrLog()
	}
	if a.input.ConsumePause() {
		a.togglePause()
	}
}

func (a *app) restartOrLog() {
	if err := a.restart(); err != nil {
		a.log.Error("restart failed", "err", err)
	}
}

// run drives the loop until quit. Screen events are funneled through a
// channel so the session is only touched from this goroutine.
func (a *app) run() {
	ticker := time.NewTicker(time.Second / game.TicksPerSecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			a.holds.Expire(now)
			a.sched.Advance(float64(now.Sub(last)) / float64(time.Millisecond))
			last = now
		}
	}
}

func main() {
	o := parseFlags()

	opts, err := sessionOptions(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		os.Exit(2)
	}

	logger, closer, err := hostlog.Open(hostlog.Options{Prefix: "term", Level: o.logLevel, File: o.logFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	a := newApp(screen, opts, logger)
	if err := a.restart(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	a.run()
}
