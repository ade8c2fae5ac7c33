package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/camelup/oracle"
	"github.com/lox/camelup/race"
)

type CLI struct {
	Race    string `arg:"" help:"Race literal, e.g. 'gy,r,+,w'"`
	Dice    string `arg:"" optional:"" help:"Dice literal (defaults to all five dice)"`
	Rounds  int    `default:"100000" help:"Number of rounds to simulate"`
	Seed    int64  `default:"0" help:"RNG seed (0 for random)"`
	Workers int    `default:"0" help:"Worker count (0 uses all CPUs, capped at 8)"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("camel-sim"),
		kong.Description("Monte Carlo cross-check of the exact round odds."))

	level := log.InfoLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	if cli.Seed == 0 {
		cli.Seed = time.Now().UnixNano()
	}

	r, err := race.ParseRace(cli.Race)
	if err != nil {
		logger.Error("parsing race", "err", err)
		ctx.Exit(1)
	}
	dice := race.DefaultDice()
	if cli.Dice != "" {
		if dice, err = race.ParseDice(cli.Dice); err != nil {
			logger.Error("parsing dice", "err", err)
			ctx.Exit(1)
		}
	}

	logger.Info("simulating", "race", r.String(), "dice", dice.Len(), "rounds", cli.Rounds, "seed", cli.Seed)

	exact := oracle.Project(r, dice)
	logger.Debug("exact projection computed", "outcomes", exact.Total)

	startTime := time.Now()
	estimate := simulateParallel(r, dice, cli.Rounds, cli.Seed, workerCount(cli.Workers), logger)
	duration := time.Since(startTime)

	displayComparison(exact, estimate)
	fmt.Printf("\n%d rounds in %v (%.0f rounds/sec)\n",
		estimate.rounds, duration.Truncate(time.Millisecond),
		float64(estimate.rounds)/duration.Seconds())
}

func workerCount(requested int) int {
	if requested > 0 {
		return requested
	}
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	return workers
}

// simResult tallies outcome counts over a batch of simulated rounds.
type simResult struct {
	rounds  int
	winners map[race.Camel]int
	losers  map[race.Camel]int
}

func newSimResult() simResult {
	return simResult{
		winners: make(map[race.Camel]int),
		losers:  make(map[race.Camel]int),
	}
}

func (s *simResult) merge(o simResult) {
	s.rounds += o.rounds
	for c, n := range o.winners {
		s.winners[c] += n
	}
	for c, n := range o.losers {
		s.losers[c] += n
	}
}

// simulateParallel fans rounds out over independently seeded workers.
// Subtree tallies are independent and combine by addition, so the split is
// embarrassingly parallel.
func simulateParallel(r race.Race, dice race.Dice, rounds int, seed int64, workers int, logger *log.Logger) simResult {
	masterRng := rand.New(rand.NewSource(seed))

	g, ctx := errgroup.WithContext(context.Background())
	results := make(chan simResult, workers)

	perWorker := rounds / workers
	remainder := rounds % workers
	for w := 0; w < workers; w++ {
		workerRounds := perWorker
		if w < remainder {
			workerRounds++
		}
		workerSeed := masterRng.Int63()

		g.Go(func() error {
			workerRng := rand.New(rand.NewSource(workerSeed))
			result := simulateRounds(r, dice, workerRounds, workerRng)
			select {
			case results <- result:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		if err := g.Wait(); err != nil {
			logger.Error("simulation worker failed", "err", err)
		}
	}()

	total := newSimResult()
	for result := range results {
		total.merge(result)
	}
	return total
}

// simulateRounds plays full rounds with the real random process: dice drawn
// one at a time without replacement in random order, each face uniform.
func simulateRounds(start race.Race, dice race.Dice, rounds int, rng *rand.Rand) simResult {
	result := newSimResult()
	camels := dice.Camels()
	faces := race.Faces()

	for i := 0; i < rounds; i++ {
		current := start
		for _, idx := range rng.Perm(len(camels)) {
			roll := race.Roll{
				Camel: camels[idx],
				Face:  faces[rng.Intn(len(faces))],
			}
			current = current.Perform(roll)
		}

		result.rounds++
		if winner, ok := current.Winner(); ok {
			result.winners[winner]++
		}
		if loser, ok := current.Loser(); ok {
			result.losers[loser]++
		}
	}

	return result
}

func displayComparison(exact oracle.Projection, estimate simResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "camel\texact win\testimated\terror\n")

	for _, c := range race.Camels() {
		chance := exact.Winner.Chance(c)
		estimated := float64(estimate.winners[c]) / float64(estimate.rounds)
		if chance.Num() == 0 && estimate.winners[c] == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%s (%.3f%%)\t%.3f%%\t%.4f\n",
			c,
			chance,
			chance.Float64()*100,
			estimated*100,
			math.Abs(estimated-chance.Float64()))
	}

	w.Flush()
}
