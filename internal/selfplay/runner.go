package selfplay

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Options controls a self-play run.
type Options struct {
	Games        int
	Workers      int
	MaxTurns     int
	OpeningPlies int
	Seed         uint64 // 0 seeds from the clock
}

// Stats summarises a run.
type Stats struct {
	Games    int
	Finished int
	Samples  int
	Elapsed  time.Duration
}

// Run plays opts.Games games on opts.Workers goroutines, each owning its own
// Game values and random source, and hands every record to w.
// Cancelling ctx stops handing out new games; games in flight complete.
func Run(ctx context.Context, opts Options, w *Writer) (Stats, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	start := time.Now()

	var (
		games, finished, samples atomic.Int64
		errOnce                  sync.Once
		firstErr                 error
	)
	log.Info().
		Int("games", opts.Games).
		Int("workers", opts.Workers).
		Int("max_turns", opts.MaxTurns).
		Uint64("seed", seed).
		Msg("starting self-play")

	jobs := make(chan int, opts.Workers*2)
	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed + uint64(workerID)))
			for id := range jobs {
				rec := PlayOneGame(r, opts.MaxTurns, opts.OpeningPlies)
				if err := w.WriteRecord(&rec); err != nil {
					errOnce.Do(func() { firstErr = fmt.Errorf("write game %d: %w", id, err) })
					continue
				}
				games.Add(1)
				samples.Add(int64(len(rec.Samples)))
				if rec.Finished {
					finished.Add(1)
				}
				log.Debug().
					Int("game", id).
					Str("id", rec.ID.String()).
					Int("turns", rec.Turns).
					Bool("finished", rec.Finished).
					Stringer("winner", rec.Winner).
					Msg("game done")
			}
		}(i)
	}

feed:
	for g := 0; g < opts.Games; g++ {
		if ctx.Err() != nil {
			log.Warn().Int("queued", g).Msg("self-play interrupted")
			break
		}
		select {
		case <-ctx.Done():
			log.Warn().Int("queued", g).Msg("self-play interrupted")
			break feed
		case jobs <- g:
		}
		if (g+1)%100 == 0 {
			log.Info().Msgf("queued %d/%d games", g+1, opts.Games)
		}
	}
	close(jobs)
	wg.Wait()

	stats := Stats{
		Games:    int(games.Load()),
		Finished: int(finished.Load()),
		Samples:  int(samples.Load()),
		Elapsed:  time.Since(start),
	}
	log.Info().
		Int("games", stats.Games).
		Int("finished", stats.Finished).
		Int("samples", stats.Samples).
		Dur("elapsed", stats.Elapsed).
		Msg("self-play complete")
	if firstErr != nil {
		return stats, firstErr
	}
	return stats, ctx.Err()
}
