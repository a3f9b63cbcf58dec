// Package batch runs patterns headlessly across a bounded pool of workers.
package batch

import (
	"context"
	"runtime"
	"slices"
	"time"

	"fade-life/internal/rle"
	"fade-life/internal/sims/life"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Job runs one pattern for a number of generations. Config supplies the
// margin, wrap, fade and interval settings; dimensions and rule come from
// the pattern.
type Job struct {
	Name        string
	Pattern     rle.Pattern
	Config      life.Config
	Generations int
}

// Result summarises a finished job.
type Result struct {
	Name        string
	Generations int
	Frames      int
	Population  int
	Final       rle.Pattern
	// Matches reports whether the final generation equals the one reached
	// when every generation is evaluated in a single frame.
	Matches bool
	Elapsed time.Duration
}

// Run executes jobs with at most workers running at once (runtime.NumCPU
// when workers < 1). Results keep the order of jobs. The first failing job
// cancels the rest.
func Run(ctx context.Context, jobs []Job, workers int) ([]Result, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, job := range jobs {
		eg.Go(func() error {
			res, err := RunJob(ctx, job)
			if err != nil {
				return errors.Wrapf(err, "[Run] job %q", job.Name)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunJob runs a single job and checks it against the single-frame reference.
func RunJob(ctx context.Context, job Job) (Result, error) {
	if job.Generations < 0 {
		return Result{}, errors.Errorf("[RunJob] negative generation count %d", job.Generations)
	}
	start := time.Now()

	sim := life.NewFromPattern(job.Pattern, job.Config)
	if err := advance(ctx, sim, job.Generations); err != nil {
		return Result{}, err
	}
	res := Result{
		Name:        job.Name,
		Generations: sim.Generation(),
		Frames:      sim.Frame(),
		Population:  sim.Population(),
		Final:       sim.Snapshot(),
		Matches:     true,
	}

	if job.Config.Interval > 1 {
		refCfg := job.Config
		refCfg.Interval = 1
		ref := life.NewFromPattern(job.Pattern, refCfg)
		if err := advance(ctx, ref, job.Generations); err != nil {
			return Result{}, err
		}
		res.Matches = slices.Equal(sim.AliveCells(), ref.AliveCells())
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

func advance(ctx context.Context, sim *life.Life, generations int) error {
	for sim.Generation() < generations {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "[advance] stopped at generation %d", sim.Generation())
		}
		gen := sim.Generation()
		for sim.Generation() == gen {
			sim.Step()
		}
	}
	return nil
}
