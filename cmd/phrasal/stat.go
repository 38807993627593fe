package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/phrasal/extract"
	"github.com/revelaction/phrasal/render"
	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/stat"
	"github.com/revelaction/phrasal/storage"
)

func statCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "Show the parse and sentiment figures of a doc, a sentence or all docs",
		ArgsUsage: "[docId [sentenceId]]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "label", Usage: "Only docs with a label containing the string"},
		},
		Action: func(c *cli.Context) error {
			opts := AnalyzeOptions{Workers: e.cfg.Workers, Label: c.String("label")}
			if c.NArg() > 0 {
				t, err := parseTarget(c)
				if err != nil {
					return err
				}
				opts.Target = &t
			}

			repo, err := e.repo()
			if err != nil {
				return err
			}

			// malformed sentences are counted, not rejected
			e.cfg.Strict = false
			ex, err := e.extractor()
			if err != nil {
				return err
			}
			return statCommand(c.Context, repo, ex, opts, e.ui)
		},
	}
}

func statCommand(ctx context.Context, repo storage.DocReader, ex *extract.Extractor, opts AnalyzeOptions, ui UI) error {
	sentences, err := selectSentences(repo, render.NewRenderer(ui.Out), opts)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(sent.Doc{Sentences: sentences})

	analyses, err := ex.AnalyzeAll(ctx, sentences, opts.Workers)
	if err != nil {
		return err
	}
	for _, a := range analyses {
		hdl.AggregateAnalysis(a)
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Total Sentences Analyzed: %d\n", stats.NumSentences)
	fmt.Fprintf(ui.Out, "Num tokens %d, num tokens per sentence %d\n", stats.NumTokens, stats.TokensPerSentenceMean)
	fmt.Fprintf(ui.Out, "Num roots %d, num amod relations %d, num malformed %d\n", stats.NumRoots, stats.NumAmods, stats.NumMalformed)
	fmt.Fprintf(ui.Out, "Num aspects %d, num opinions %d\n", stats.NumAspects, stats.NumOpinions)
	return nil
}
