package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/phrasal/sentiment"
)

func scoreCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "score",
		Usage:     "Score the sentiment of a text",
		ArgsUsage: "<text>...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("score command needs a text")
			}

			a, err := e.analyzer()
			if err != nil {
				return err
			}
			return scoreCommand(a, strings.Join(c.Args().Slice(), " "), e.ui)
		},
	}
}

func scoreCommand(scorer sentiment.Scorer, text string, ui UI) error {
	s := scorer.Score(sentiment.Clean(text))

	fmt.Fprintf(ui.Out, "Original Text: %s\n", text)
	fmt.Fprintf(ui.Out, "Sentiment: %s\n", strings.ToUpper(sentiment.Label(s)))
	fmt.Fprintf(ui.Out, "Polarity Score: %.3f\n", s.Polarity)
	fmt.Fprintf(ui.Out, "Subjectivity Score: %.3f\n", s.Subjectivity)
	fmt.Fprintf(ui.Out, "Confidence: %.3f\n", sentiment.Confidence(s))
	fmt.Fprintf(ui.Out, "Strength: %s\n", sentiment.Strength(s))
	return nil
}
