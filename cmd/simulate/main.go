package main

import (
	"context"
	"flag"
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"pokertable-server/internal/rng"
	"pokertable-server/pkg/engine"
	"pokertable-server/pkg/room"
	"pokertable-server/pkg/strategy"
)

var tables = flag.Int("tables", 1, "the number of tables to run concurrently")
var bots = flag.Int("bots", 4, "the number of bots at each table")
var rounds = flag.Int("rounds", 3, "the number of rounds to play at each table")
var maxBet = flag.Int("max-bet", 25, "the largest bet a bot will make")
var seed = flag.Int64("seed", 0, "seed the bots and decks for a reproducible run; zero is random")
var verbose = flag.Bool("v", false, "enable debug logging")

func main() {
	flag.Parse()
	setupLogger()

	if err := simulate(context.Background(), logrus.StandardLogger()); err != nil {
		logrus.WithError(err).Fatal("simulation failed")
	}
}

func setupLogger() {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   true,
			FullTimestamp: false,
		})
	}

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func simulate(ctx context.Context, logger logrus.FieldLogger) error {
	var botSeed int64
	opts := room.Options{
		NewBot: func() strategy.Strategy {
			if *seed == 0 {
				return strategy.NewRandom(nil, *maxBet)
			}

			n := atomic.AddInt64(&botSeed, 1)
			return strategy.NewRandom(rng.Seeded(*seed+n)(), *maxBet)
		},
	}

	if *seed != 0 {
		opts.Dealer.Engine.DeckSource = rng.Seeded(*seed)
	}

	pitBoss := room.NewPitBoss(logger, opts)
	defer pitBoss.Close(ctx)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < *tables; i++ {
		g.Go(func() error {
			d, err := pitBoss.NewTable(*bots)
			if err != nil {
				return err
			}

			return playTable(ctx, logger.WithField("table", d.UUID), d)
		})
	}

	return g.Wait()
}

func playTable(ctx context.Context, logger logrus.FieldLogger, d *room.Dealer) error {
	for round := 1; round <= *rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := d.PlayRound(); err != nil {
			return err
		}

		err := d.Do(func(e *engine.Engine) error {
			for {
				msg, ok := e.NextMessage()
				if !ok {
					break
				}

				logger.WithField("round", round).Info(msg.Text)
			}

			s := e.Snapshot()
			logger.WithFields(logrus.Fields{
				"round":     round,
				"stage":     s.CurrentRoundType,
				"community": s.CommunityCards.String(),
				"pot":       s.PotSize,
				"remaining": len(s.CurrentPlayers),
			}).Info("round finished")

			return nil
		})

		if err != nil {
			return err
		}
	}

	return nil
}
