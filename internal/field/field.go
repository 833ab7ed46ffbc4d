// Package field owns the grid, the enemies and the player, and advances them
// once per simulation tick.
package field

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fieldsim/internal/entity"
	"github.com/samdwyer/fieldsim/internal/gamedata"
	"github.com/samdwyer/fieldsim/internal/telemetry"
	"github.com/samdwyer/fieldsim/internal/world"
)

// EnemyCount is the fixed size of the enemy pool.
const EnemyCount = 8

// Config holds field construction options.
type Config struct {
	// Seed for every random stream of the field. A seed of 0 means a
	// random seed will be generated.
	Seed     int64
	Behavior gamedata.Behavior
	// Logger receives enemy state transitions at debug level. Nil discards them.
	Logger *slog.Logger
}

// Field is the play field.
type Field struct {
	grid      world.Grid
	player    entity.Player
	enemies   [EnemyCount]entity.Enemy
	scheduler *Scheduler
	behavior  gamedata.Behavior
	seed      int64
	initRng   *rand.Rand // enemy placement and obstacles
	decideRng *rand.Rand // wander targets
	logger    *slog.Logger
}

// New creates an uninitialized field. Call Init before the first Tick.
func New(cfg Config) *Field {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Each use gets its own stream so that, for instance, extra decisions do
	// not shift the scheduler's gate draws.
	master := rand.New(rand.NewSource(seed))
	initRng := rand.New(rand.NewSource(master.Int63()))
	gateRng := rand.New(rand.NewSource(master.Int63()))
	decideRng := rand.New(rand.NewSource(master.Int63()))

	return &Field{
		player:    entity.NewPlayer(),
		scheduler: NewScheduler(EnemyCount, gateRng),
		behavior:  cfg.Behavior,
		seed:      seed,
		initRng:   initRng,
		decideRng: decideRng,
		logger:    logger,
	}
}

// Init places every enemy at random and scatters obstacles over the grid.
func (f *Field) Init(ctx context.Context) {
	ctx, span := telemetry.Tracer("field").Start(ctx, "field.init")
	defer span.End()

	for i := range f.enemies {
		f.enemies[i].Randomize(f.initRng)
	}
	f.grid.Randomize(ctx, f.initRng, f.behavior.Field.ObstacleChance)

	span.SetAttributes(
		attribute.Int64("field.seed", f.seed),
		attribute.Int("field.enemies", EnemyCount),
		attribute.Int("field.obstacles", f.grid.Obstacles()),
	)
	f.logger.Info("field initialized",
		"seed", f.seed,
		"enemies", EnemyCount,
		"obstacles", f.grid.Obstacles(),
	)
}

// Tick advances the simulation by delta seconds: every enemy moves, then
// the scheduler runs whatever decisions fall due.
func (f *Field) Tick(delta float64) {
	speed := f.behavior.Enemy.Speed
	for i := range f.enemies {
		f.enemies[i].Tick(delta, speed)
	}
	f.scheduler.Advance(delta, f.decide)
}

func (f *Field) decide(i int) {
	tr := f.enemies[i].Decide(&f.grid, f.player, f.decideRng, f.behavior.Enemy)
	if !tr.Changed() {
		return
	}
	e := &f.enemies[i]
	f.logger.Debug("enemy transition",
		"enemy", i,
		"from", tr.From.String(),
		"to", tr.To.String(),
		"x", e.X,
		"y", e.Y,
		"target_x", e.TargetX,
		"target_y", e.TargetY,
	)
}

// Grid returns a copy of the tile grid.
func (f *Field) Grid() world.Grid { return f.grid }

// TileAt returns the tile at the given cell.
func (f *Field) TileAt(x, y int) world.Tile { return f.grid.TileAt(x, y) }

// Player returns the player.
func (f *Field) Player() entity.Player { return f.player }

// Enemies returns a copy of the enemy pool.
func (f *Field) Enemies() [EnemyCount]entity.Enemy { return f.enemies }

// Enemy returns the enemy at index i.
func (f *Field) Enemy(i int) entity.Enemy { return f.enemies[i] }

// Scheduler returns the decision scheduler.
func (f *Field) Scheduler() *Scheduler { return f.scheduler }

// Seed returns the seed the field's random streams derive from.
func (f *Field) Seed() int64 { return f.seed }

// Behavior returns the active tunables.
func (f *Field) Behavior() gamedata.Behavior { return f.behavior }

// SetBehavior swaps the tunables. Obstacles already placed are kept.
func (f *Field) SetBehavior(b gamedata.Behavior) { f.behavior = b }

// SetPlayer moves the player.
func (f *Field) SetPlayer(p entity.Player) { f.player = p }

// SetEnemy replaces the enemy at index i.
func (f *Field) SetEnemy(i int, e entity.Enemy) { f.enemies[i] = e }

// Counts returns how many enemies are in each state.
func (f *Field) Counts() map[entity.State]int {
	counts := make(map[entity.State]int, len(entity.States))
	for _, s := range entity.States {
		counts[s] = 0
	}
	for _, e := range f.enemies {
		counts[e.State]++
	}
	return counts
}
