package drill

import (
	"context"
	"fmt"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"github.com/outofforest/blocklist"
)

// Config stores configuration of the drill.
type Config struct {
	// Workers is the number of lists exercised concurrently, each one by its own worker.
	Workers int
	// Rounds is the number of fresh lists each worker goes through.
	Rounds int
	// Ops is the number of random operations applied to each list.
	Ops int
	// Seed is the seed of the first worker, next workers use the following ones.
	Seed int64
}

// DefaultConfig is the default configuration of the drill.
var DefaultConfig = Config{
	Workers: 4,
	Rounds:  100,
	Ops:     500,
	Seed:    1,
}

// Run applies random operation sequences to lists and compares every step against a slice model.
// The first mismatch stops all the workers and is returned.
func Run(ctx context.Context, config Config) error {
	if config.Workers <= 0 || config.Rounds < 0 || config.Ops < 0 {
		return errors.Errorf("invalid drill config: %+v", config)
	}

	return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i := 0; i < config.Workers; i++ {
			seed := config.Seed + int64(i)
			spawn(fmt.Sprintf("worker-%d", i), parallel.Continue, func(ctx context.Context) error {
				return worker(ctx, seed, config)
			})
		}
		return nil
	})
}

func worker(ctx context.Context, seed int64, config Config) error {
	log := logger.Get(ctx).With(zap.Int64("seed", seed))
	r := rand.New(rand.NewSource(uint64(seed)))

	for round := 0; round < config.Rounds; round++ {
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		default:
		}

		if err := runRound(r, config.Ops); err != nil {
			return errors.Wrapf(err, "round %d with seed %d failed", round, seed)
		}
	}

	log.Info("Drill passed", zap.Int("rounds", config.Rounds), zap.Int("ops", config.Ops))
	return nil
}

func runRound(r *rand.Rand, ops int) error {
	l, model := newRoundList(r)

	for step := 0; step < ops; step++ {
		op := operations[r.Intn(len(operations))]

		var err error
		model, err = op.Apply(r, l, model)
		if err != nil {
			return errors.Wrapf(err, "operation %q at step %d failed", op.Name, step)
		}
		if err := verify(l, model); err != nil {
			return errors.Wrapf(err, "state after operation %q at step %d is invalid", op.Name, step)
		}
	}
	return nil
}

// newRoundList returns an empty list, a copied one or one adopting a caller buffer, together with its model.
// The model never shares memory with an adopted buffer.
func newRoundList(r *rand.Rand) (*blocklist.List[int], []int) {
	switch r.Intn(3) {
	case 0:
		return blocklist.New[int](), nil
	case 1:
		values := randomValues(r, 16)
		return blocklist.FromSlice(values, blocklist.Copy), slices.Clone(values)
	default:
		values := randomValues(r, 16)
		return blocklist.FromSlice(values, blocklist.NoCopy), slices.Clone(values)
	}
}

func verify(l *blocklist.List[int], model []int) error {
	if l.Len() != len(model) {
		return errors.Errorf("length mismatch: list %d, model %d", l.Len(), len(model))
	}
	if l.Cap() < l.Len() {
		return errors.Errorf("capacity %d below length %d", l.Cap(), l.Len())
	}
	for i, v := range model {
		if got := l.Get(i); got != v {
			return errors.Errorf("element %d mismatch: list %d, model %d", i, got, v)
		}
	}
	return nil
}
