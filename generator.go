package maze

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// nopHandler is a slog.Handler that discards everything. Enabled returns
// false so disabled logging skips message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Distinguishes the two decisions the generator can make after popping a
// cell from its stack.
type StepKind uint8

const (
	// A wall was opened between the current cell and a new neighbor.
	StepCarve StepKind = iota
	// The current cell had no unvisited neighbors and was dropped.
	StepBacktrack
)

func (k StepKind) String() string {
	switch k {
	case StepCarve:
		return "carve"
	case StepBacktrack:
		return "backtrack"
	}
	return fmt.Sprintf("Unknown StepKind: %d", uint8(k))
}

// Describes a single generation step. Entities are copies taken after the
// step was applied. Wall and Next are only set for StepCarve.
type Step struct {
	Kind    StepKind
	Current Entity
	Wall    Entity
	Next    Entity
}

// Receives generation steps. Observers must not assume they can affect the
// generator; a panicking observer is logged and otherwise ignored.
type StepObserver func(Step)

// Carves perfect mazes into grids using an iterative randomized depth-first
// search. A Generator isn't safe for concurrent use, since it owns an RNG.
type Generator struct {
	rng      *rand.Rand
	seed     int64
	observer StepObserver
	logger   *slog.Logger
}

// Configures a Generator.
type GeneratorOption func(*Generator)

// Uses the given RNG for neighbor selection.
func WithRand(rng *rand.Rand) GeneratorOption {
	return func(gen *Generator) {
		gen.rng = rng
		gen.seed = 0
	}
}

// Uses a new RNG seeded with the given value for neighbor selection.
func WithSeed(seed int64) GeneratorOption {
	return func(gen *Generator) {
		gen.rng = rand.New(rand.NewSource(seed))
		gen.seed = seed
	}
}

// Calls the observer once after every carve or backtrack decision.
func WithObserver(observer StepObserver) GeneratorOption {
	return func(gen *Generator) {
		gen.observer = observer
	}
}

// Sets the logger. Nil keeps the default, which discards everything.
func WithLogger(l *slog.Logger) GeneratorOption {
	return func(gen *Generator) {
		if l != nil {
			gen.logger = l
		}
	}
}

// Returns a new Generator. Without WithRand or WithSeed, the RNG is seeded
// from the current time.
func NewGenerator(opts ...GeneratorOption) *Generator {
	toReturn := &Generator{
		logger: slog.New(nopHandler{}),
	}
	for _, opt := range opts {
		opt(toReturn)
	}
	if toReturn.rng == nil {
		WithSeed(time.Now().UnixNano())(toReturn)
	}
	return toReturn
}

// Forwards the step to the observer, if any. Never lets an observer panic
// escape into the generation loop.
func (gen *Generator) notify(s Step) {
	if gen.observer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			gen.logger.Warn("Step observer panicked", "step", s.Kind.String(),
				"cell", s.Current.coord.String(), "panic", r)
		}
	}()
	gen.observer(s)
}

// Carves a perfect maze into the grid, starting at the given cell. Any
// previous carving is discarded first. The grid must not be read by other
// goroutines until this returns.
//
// If ctx is cancelled, generation stops between steps and the context's error
// is returned. The grid is left consistent but its Complete method returns
// false, as some cells may never have been reached.
func (gen *Generator) Generate(ctx context.Context, g *Grid, start Coordinate) error {
	startCell, e := g.cellAt(start)
	if e != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStart, e)
	}
	g.reset()
	g.start = start
	g.randomSeed = gen.seed
	startTime := time.Now()

	startCell.visited = true
	// A cell may be pushed many times, but never more than once per carve.
	stack := make([]*Entity, 0, g.CellCount())
	stack = append(stack, startCell)
	for len(stack) != 0 {
		if e = ctx.Err(); e != nil {
			g.generationTime = time.Since(startTime).Seconds()
			gen.logger.Info("Maze generation cancelled", "opened",
				g.carveCount, "cells", g.CellCount())
			return fmt.Errorf("Generation stopped after %d walls: %w",
				g.carveCount, e)
		}
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		unvisited := g.unvisitedNeighbors(current)
		if len(unvisited) == 0 {
			// Nothing left to explore from here, so leave it popped and
			// resume from whatever is below it on the stack.
			gen.notify(Step{
				Kind:    StepBacktrack,
				Current: *current,
			})
			continue
		}
		stack = append(stack, current)
		next := unvisited[gen.rng.Intn(len(unvisited))]
		wall, e := g.wallBetween(current.coord, next.coord)
		if e != nil {
			return fmt.Errorf("Internal error: %w", e)
		}
		wall.open = true
		next.visited = true
		stack = append(stack, next)
		g.carveCount++
		gen.logger.Debug("Opened wall", "from", current.coord.String(),
			"wall", wall.coord.String(), "to", next.coord.String())
		gen.notify(Step{
			Kind:    StepCarve,
			Current: *current,
			Wall:    *wall,
			Next:    *next,
		})
	}

	g.generationTime = time.Since(startTime).Seconds()
	g.complete = true
	gen.logger.Info("Maze generated", "height", g.height, "width", g.width,
		"start", start.String(), "opened", g.carveCount,
		"seconds", g.generationTime)
	return nil
}
