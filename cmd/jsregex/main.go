// Command jsregex converts ECMAScript regex literals to the target dialect
// from the command line.
//
// Each argument is a /pattern/flags literal; with no arguments, literals
// are read one per line from stdin. For every input the rewritten pattern
// and its option letters are printed to stdout; diagnostics go to stderr.
//
//	$ jsregex '/^foo$/i'
//	\Afoo\z	i
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/coregx/jsregex"
	"github.com/coregx/jsregex/literal"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	app := &cli.App{
		Name:      "jsregex",
		Usage:     "convert ECMAScript regex literals to the target dialect",
		UsageText: "jsregex [options] [literal...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-compile",
				Usage: "rewrite only, skip the compile probe",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every conversion step",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal().Err(err).Msg("conversion failed")
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if c.NArg() > 0 {
		for _, lit := range c.Args().Slice() {
			if err := convertOne(lit, c.Bool("no-compile")); err != nil {
				return err
			}
		}
		return nil
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if err := convertOne(line, c.Bool("no-compile")); err != nil {
			return err
		}
	}
	return sc.Err()
}

func convertOne(lit string, noCompile bool) error {
	logger.Debug().Str("literal", lit).Msg("converting")

	pattern, flagStr, err := literal.Split(lit)
	if err != nil {
		return err
	}
	cfg := jsregex.DefaultConfig()
	cfg.Flags = flagStr
	cfg.Compile = !noCompile
	res := jsregex.ConvertWithConfig(pattern, cfg)

	for _, d := range res.Diagnostics {
		logger.Warn().Str("literal", lit).Msg(d)
	}
	fmt.Printf("%s\t%s\n", res.Output, res.Options.Letters())
	return nil
}
