// Command analyze inspects Klondike deals and rule presets offline.
//
//	analyze deal --seed 42            print the opening layout for a seed
//	analyze stats --games 100         autoplay many deals and report win rate
//	analyze validate configs/*.yaml   check preset files
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/klondike-solitaire/game/engine"
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the command tree writing to w
func newApp(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "analyze",
		Usage:  "inspect Klondike deals and rule presets",
		Writer: w,
		Commands: []*cli.Command{
			{
				Name:  "deal",
				Usage: "print the opening layout for a seed",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "seed", Value: 1, Usage: "shuffle seed"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					seed := cmd.Int64("seed")
					if seed < 0 {
						return fmt.Errorf("seed must be non-negative, got %d", seed)
					}
					renderDeal(cmd.Root().Writer, engine.NewGameState(seed))
					return nil
				},
			},
			{
				Name:  "stats",
				Usage: "autoplay consecutive seeds with a greedy strategy",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "games", Value: 100, Usage: "number of deals to play"},
					&cli.Int64Flag{Name: "seed", Value: 1, Usage: "seed of the first deal"},
					&cli.StringFlag{Name: "config", Usage: "rule preset file (defaults to classic rules)"},
					&cli.IntFlag{Name: "max-steps", Value: defaultMaxSteps, Usage: "command budget per game"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					config := engine.DefaultConfig()
					if path := cmd.String("config"); path != "" {
						loaded, err := engine.LoadGameConfig(path)
						if err != nil {
							return err
						}
						config = loaded
					}
					games := cmd.Int("games")
					if games <= 0 {
						return fmt.Errorf("games must be positive, got %d", games)
					}
					stats, err := playMany(ctx, config, cmd.Int64("seed"), games, cmd.Int("max-steps"))
					if err != nil {
						return err
					}
					stats.write(cmd.Root().Writer)
					return nil
				},
			},
			{
				Name:      "validate",
				Usage:     "validate rule preset files",
				ArgsUsage: "FILE...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					files := cmd.Args().Slice()
					if len(files) == 0 {
						return fmt.Errorf("no preset files given")
					}
					return validateFiles(cmd.Root().Writer, files)
				},
			},
		},
	}
}

// renderDeal prints a layout with face-down cards as ## and the stock bottom first
func renderDeal(w io.Writer, state *engine.GameState) {
	fmt.Fprintf(w, "Seed: %d\n\n", state.Seed)
	for i, pile := range state.Tableau {
		cards := make([]string, len(pile))
		for j, card := range pile {
			if card.FaceUp {
				cards[j] = card.String()
			} else {
				cards[j] = "##"
			}
		}
		fmt.Fprintf(w, "Tableau %d: %s\n", i, strings.Join(cards, " "))
	}

	stock := make([]string, len(state.Stock))
	for i, card := range state.Stock {
		stock[i] = card.String()
	}
	fmt.Fprintf(w, "\nStock (%d, next draw last): %s\n", len(state.Stock), strings.Join(stock, " "))
}

// validateFiles reports every file and fails if any preset is invalid
func validateFiles(w io.Writer, files []string) error {
	invalid := 0
	for _, file := range files {
		config, err := engine.LoadGameConfig(file)
		if err != nil {
			invalid++
			fmt.Fprintf(w, "❌ %s: %v\n", filepath.Base(file), err)
			continue
		}

		details := []string{}
		if config.AllowPlayAfterWin {
			details = append(details, "play after win")
		}
		if config.Seed != nil {
			details = append(details, fmt.Sprintf("seed %d", *config.Seed))
		}
		suffix := ""
		if len(details) > 0 {
			suffix = " (" + strings.Join(details, ", ") + ")"
		}
		fmt.Fprintf(w, "✅ %s: %s%s\n", filepath.Base(file), config.Name, suffix)
	}

	fmt.Fprintf(w, "\n%d file(s), %d invalid\n", len(files), invalid)
	if invalid > 0 {
		return fmt.Errorf("%d invalid preset file(s)", invalid)
	}
	return nil
}
