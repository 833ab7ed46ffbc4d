package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fieldsim/internal/field"
	"github.com/samdwyer/fieldsim/internal/gamedata"
	"github.com/samdwyer/fieldsim/internal/telemetry"
	"github.com/samdwyer/fieldsim/internal/ui"
)

// maxFrameDelta caps the time fed to the field in one frame, so a stalled
// terminal does not make enemies jump past their targets on resume.
const maxFrameDelta = 0.25

const helpLine = "space pause  v sight  q quit"

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	field    *field.Field
	logger   *slog.Logger
	state    State
	running  bool
}

// New creates a new game on the terminal.
func New(cfg Config, logger *slog.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := NewWithScreen(cfg, screen, logger)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to the given screen.
func NewWithScreen(cfg Config, screen *ui.Screen, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	behavior, err := loadBehavior(cfg.BehaviorFile)
	if err != nil {
		return nil, err
	}
	palette, err := behavior.Colors.Palette()
	if err != nil {
		return nil, err
	}

	renderer := ui.NewRenderer(screen, palette)
	renderer.SetFooter(helpLine)

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: renderer,
		field: field.New(field.Config{
			Seed:     cfg.Seed,
			Behavior: behavior,
			Logger:   logger,
		}),
		logger:  logger,
		state:   StateRunning,
		running: true,
	}, nil
}

func loadBehavior(path string) (gamedata.Behavior, error) {
	if path == "" {
		return gamedata.LoadBehavior()
	}
	return gamedata.LoadBehaviorFile(path)
}

// Field returns the simulated field.
func (g *Game) Field() *field.Field {
	return g.field
}

// State returns whether the game is running or paused.
func (g *Game) State() State {
	return g.state
}

// Running returns false once the player asked to quit.
func (g *Game) Running() bool {
	return g.running
}

// Run executes the main game loop until quit or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	g.Init(ctx)

	var watcher *Watcher
	var reloads <-chan string
	var watchErrs <-chan error
	if g.cfg.BehaviorFile != "" {
		w, err := NewWatcher(g.cfg.BehaviorFile)
		if err != nil {
			g.logger.Warn("behavior file not watched", "path", g.cfg.BehaviorFile, "error", err)
		} else {
			watcher = w
			defer watcher.Close()
			reloads, watchErrs = w.Events, w.Errors
		}
	}

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FPS))
	defer ticker.Stop()

	last := time.Now()
	g.renderer.Render(g.field)

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			g.handleEvent(ev)
		case path := <-reloads:
			g.reloadBehavior(ctx, path)
		case err := <-watchErrs:
			g.logger.Warn("behavior watcher error", "error", err)
		case now := <-ticker.C:
			g.Step(now.Sub(last).Seconds())
			last = now
		}
	}

	stats := g.field.Scheduler().Stats()
	g.logger.Info("game stopped",
		"visits", stats.Visits,
		"decisions", stats.Decisions,
		"laps", stats.Laps,
	)
	return nil
}

// Init sets up the field (traced).
func (g *Game) Init(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	g.field.Init(ctx)

	span.SetAttributes(
		attribute.Int64("game.seed", g.field.Seed()),
		attribute.Int("game.fps", g.cfg.FPS),
		attribute.String("game.behavior_file", g.cfg.BehaviorFile),
		attribute.String("game.run_id", telemetry.RunID()),
	)
}

// Step advances the field by delta seconds, unless paused, and draws a frame.
func (g *Game) Step(delta float64) {
	if g.state == StateRunning {
		g.field.Tick(min(max(delta, 0), maxFrameDelta))
	}
	g.renderer.Render(g.field)
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input. The player is static; keys only
// control the viewer.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case ' ':
			g.togglePause()
		case 'v', 'V':
			g.renderer.SetSightLines(!g.renderer.SightLines())
		}
	}
}

func (g *Game) togglePause() {
	if g.state == StateRunning {
		g.state = StatePaused
		g.renderer.SetFooter("paused  " + helpLine)
	} else {
		g.state = StateRunning
		g.renderer.SetFooter(helpLine)
	}
	g.logger.Debug("game state", "state", g.state.String())
}

// reloadBehavior swaps in tunables from path, keeping the old ones on error.
func (g *Game) reloadBehavior(ctx context.Context, path string) {
	_, span := telemetry.Tracer("game").Start(ctx, "behavior.reload")
	defer span.End()
	span.SetAttributes(attribute.String("behavior.path", path))

	b, err := gamedata.LoadBehaviorFile(path)
	if err == nil {
		var palette gamedata.Palette
		palette, err = b.Colors.Palette()
		if err == nil {
			g.field.SetBehavior(b)
			g.renderer.SetPalette(palette)
		}
	}

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("failed", true))
		g.logger.Warn("behavior reload failed", "path", path, "error", err)
		g.renderer.SetFooter(fmt.Sprintf("reload failed: %v", err))
		return
	}

	g.logger.Info("behavior reloaded", "path", path, "speed", b.Enemy.Speed)
	g.renderer.SetFooter("reloaded  " + helpLine)
}
