package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/abenz1267/stringscore/internal/common"
	"github.com/abenz1267/stringscore/internal/util"
	"github.com/abenz1267/stringscore/internal/walk"
	"github.com/abenz1267/stringscore/pkg/score"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	var config string
	var debug bool
	var source, query, root string

	return &cli.Command{
		Name:                   "stringscore",
		Usage:                  "scores how well a query matches a string",
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:    "generatedoc",
				Aliases: []string{"d"},
				Usage:   "generates a markdown documentation",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					util.GenerateDoc(cmd.Root().Writer)
					return nil
				},
			},
			{
				Name:  "score",
				Usage: "prints the score of a query against a string",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "string", Destination: &source},
					&cli.StringArg{Name: "query", Destination: &query},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, scorer, err := setup(cmd, debug)
					if err != nil {
						return err
					}

					fmt.Fprintf(cmd.Root().Writer, "%.6f\n", scorer.Score(source, query))

					return nil
				},
			},
			{
				Name:  "compare",
				Usage: "prints the score and the fzf score of a query against a string",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "string", Destination: &source},
					&cli.StringArg{Name: "query", Destination: &query},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, scorer, err := setup(cmd, debug)
					if err != nil {
						return err
					}

					fzfScore, pos, _ := common.FuzzyScore(query, source, false)

					fmt.Fprintf(cmd.Root().Writer, "stringscore\t%.6f\n", scorer.Score(source, query))
					fmt.Fprintf(cmd.Root().Writer, "fzf\t%d\t%v\n", fzfScore, pos)

					return nil
				},
			},
			{
				Name:  "walk",
				Usage: "prints the paths below a directory matching a query",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "root", Destination: &root},
					&cli.StringArg{Name: "query", Destination: &query},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, scorer, err := setup(cmd, debug)
					if err != nil {
						return err
					}

					if root == "" {
						root = "."
					}

					w := cmd.Root().Writer

					return walk.Paths(ctx, root, query, scorer, cfg.MinScore, func(m walk.Match) error {
						_, err := fmt.Fprintf(w, "%.6f\t%s\n", m.Score, m.Path)
						return err
					})
				},
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Value:       "",
				Destination: &config,
				Usage:       "config folder location",
				Action: func(ctx context.Context, cmd *cli.Command, val string) error {
					common.SetExplicitDir(val)
					return nil
				},
			},
			&cli.BoolFlag{
				Name:        "debug",
				Aliases:     []string{"d"},
				Usage:       "enable debug logging",
				Destination: &debug,
			},
			&cli.FloatFlag{
				Name:    "fuzziness",
				Aliases: []string{"f"},
				Usage:   "tolerance for query characters missing in the string (0...1)",
			},
			&cli.StringFlag{
				Name:    "option",
				Aliases: []string{"o"},
				Usage:   "default, favor_smaller_words or reduced_long_string_penalty",
			},
		},
	}
}

// setup loads the configuration and applies the command line overrides.
func setup(cmd *cli.Command, debug bool) (common.Config, score.Scorer, error) {
	if debug {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		slog.SetDefault(logger)
	}

	if err := common.LoadLocalEnv(); err != nil {
		slog.Error(common.Name, "localenv", err)
	}

	cfg := common.DefaultConfig()

	if err := common.LoadConfig(common.Name, &cfg); err != nil {
		return cfg, score.Scorer{}, err
	}

	if cmd.IsSet("fuzziness") {
		cfg.Fuzziness = float32(cmd.Float("fuzziness"))
	}

	if cmd.IsSet("option") {
		cfg.Option = cmd.String("option")
	}

	scorer, err := cfg.Scorer()
	if err != nil {
		return cfg, scorer, err
	}

	slog.Debug(common.Name, "fuzziness", scorer.Fuzziness, "option", scorer.Option)

	return cfg, scorer, nil
}
