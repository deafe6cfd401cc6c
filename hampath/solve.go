package hampath

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hamroute/matrix"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// rootOutcome is the per-root result of one direction run.
type rootOutcome struct {
	path Path
	ok   bool // false: the root has no completion
}

// SolveFrom computes the best Hamiltonian path that starts at start, in the
// given direction, with a fresh memo table.
//
// Errors:
//   - ErrNilMatrix, ErrTooManyLocations, ErrDistanceTooLarge,
//     ErrStartOutOfRange, ErrUnknownDirection on bad input.
//   - ErrNoCompletion when no path from start visits every location.
//
// Complexity: O(2ⁿ·n²) time, O(2ⁿ·n) memory.
func SolveFrom(d *matrix.Distance, start int, dir Direction) (Path, error) {
	n, err := validateMatrix(d, MaxLocations)
	if err != nil {
		return Path{}, err
	}
	if err = validateStart(n, start); err != nil {
		return Path{}, err
	}
	if err = validateDirection(dir); err != nil {
		return Path{}, err
	}

	p, ok := newEngine(d, dir, nil).run(start)
	if !ok {
		return Path{}, fmt.Errorf("%s from %d: %w", dir, start, ErrNoCompletion)
	}

	return p, nil
}

// Solve returns the global shortest and longest Hamiltonian paths of d.
//
// Every location is tried as the starting root in both directions. Roots
// without a completion are ignored; ties keep the lowest root index.
//
// Errors:
//   - input errors as in SolveFrom (except ErrStartOutOfRange).
//   - ErrNoHamiltonianPath when no root completes. Reachability does not
//     depend on the direction, so both directions fail together.
//   - ctx.Err() when the context is cancelled between roots.
func Solve(ctx context.Context, d *matrix.Distance, opts ...Option) (Result, error) {
	cfg := gatherOptions(opts)

	shortest, err := solveDirection(ctx, d, Minimize, cfg)
	if err != nil {
		return Result{}, err
	}
	longest, err := solveDirection(ctx, d, Maximize, cfg)
	if err != nil {
		return Result{}, err
	}

	return Result{Shortest: shortest, Longest: longest}, nil
}

// SolveDirection is Solve restricted to one direction.
func SolveDirection(ctx context.Context, d *matrix.Distance, dir Direction, opts ...Option) (Path, error) {
	return solveDirection(ctx, d, dir, gatherOptions(opts))
}

// solveDirection is the multi-start driver for one direction.
//
// Implementation:
//   - Stage 1: validate matrix and direction.
//   - Stage 2: optional connectivity pre-check (disconnected ⇒ no path).
//   - Stage 3: solve every root, sequentially or on a worker pool.
//   - Stage 4: combine roots; an all-empty outcome is ErrNoHamiltonianPath.
func solveDirection(ctx context.Context, d *matrix.Distance, dir Direction, cfg config) (Path, error) {
	// Stage 1: validation.
	n, err := validateMatrix(d, cfg.maxLocations)
	if err != nil {
		return Path{}, err
	}
	if err = validateDirection(dir); err != nil {
		return Path{}, err
	}
	log := cfg.logger.With(zap.Stringer("direction", dir), zap.Int("locations", n))

	// Stage 2: a disconnected graph has no spanning path at all.
	if cfg.connectivityCheck && !d.Connected() {
		log.Debug("input is disconnected, search skipped")
		return Path{}, fmt.Errorf("%s: disconnected input: %w", dir, ErrNoHamiltonianPath)
	}

	// Stage 3: per-root search.
	var outcomes []rootOutcome
	if cfg.parallel > 1 && n > 1 {
		outcomes, err = solveRootsParallel(ctx, d, dir, cfg.parallel, log)
	} else {
		outcomes, err = solveRootsSequential(ctx, d, dir, cfg.sharedMemo, log)
	}
	if err != nil {
		return Path{}, err
	}

	// Stage 4: combine.
	best, found := pickBest(outcomes, dir)
	if !found {
		return Path{}, fmt.Errorf("%s: %w", dir, ErrNoHamiltonianPath)
	}
	log.Debug("direction solved", zap.Int("start", best.Start), zap.Int64("cost", best.Cost))

	return best, nil
}

// solveRootsSequential runs every root on one engine.
// With shared == true the memo survives between roots (values are
// root-independent); otherwise it is reset before each root after the first.
// The memo is never reused across directions: each call owns a new engine.
func solveRootsSequential(ctx context.Context, d *matrix.Distance, dir Direction, shared bool, log *zap.Logger) ([]rootOutcome, error) {
	n := d.N()
	e := newEngine(d, dir, nil)
	out := make([]rootOutcome, n)
	for root := 0; root < n; root++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !shared && root > 0 {
			e.memo.reset()
		}
		p, ok := e.run(root)
		out[root] = rootOutcome{path: p, ok: ok}
		logRoot(log, root, p, ok, e.states)
	}

	return out, nil
}

// solveRootsParallel runs roots on up to workers goroutines. Each worker
// borrows a private memo table from a fixed pool and resets it before use,
// so no table is ever written by two goroutines at once.
func solveRootsParallel(ctx context.Context, d *matrix.Distance, dir Direction, workers int, log *zap.Logger) ([]rootOutcome, error) {
	n := d.N()
	if workers > n {
		workers = n
	}
	pool := make(chan *memo, workers)
	for i := 0; i < workers; i++ {
		pool <- newMemo(n)
	}

	out := make([]rootOutcome, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for root := 0; root < n; root++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m := <-pool
			defer func() { pool <- m }()
			m.reset()

			e := newEngine(d, dir, m)
			p, ok := e.run(root)
			out[root] = rootOutcome{path: p, ok: ok} // one writer per index
			logRoot(log, root, p, ok, e.states)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// pickBest folds per-root outcomes in root order. Roots without a completion
// never take part in the comparison; on equal cost the lower root wins.
func pickBest(outcomes []rootOutcome, dir Direction) (Path, bool) {
	var (
		best  Path
		found bool
	)
	for _, o := range outcomes {
		if !o.ok {
			continue
		}
		if !found || dir.better(o.path.Cost, best.Cost) {
			best = o.path
			found = true
		}
	}

	return best, found
}

func logRoot(log *zap.Logger, root int, p Path, ok bool, states int) {
	if !ok {
		log.Debug("root has no completion", zap.Int("root", root), zap.Int("memo_states", states))
		return
	}
	log.Debug("root solved", zap.Int("root", root), zap.Int64("cost", p.Cost), zap.Int("memo_states", states))
}
