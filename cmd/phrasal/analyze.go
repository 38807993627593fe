package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/phrasal/extract"
	"github.com/revelaction/phrasal/render"
	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/storage"
)

type AnalyzeOptions struct {
	JSON    bool
	Indent  bool
	Workers int
	Label   string

	// Target is nil when all docs are analyzed.
	Target *target
}

func analyzeCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Analyze key phrases, noun phrases, aspects and opinions with their sentiment",
		ArgsUsage: "[docId [sentenceId]]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Aliases: []string{"j"}, Usage: "Write the analyses as a JSON array"},
			&cli.BoolFlag{Name: "indent", Usage: "Indent the JSON output"},
			&cli.BoolFlag{Name: "strict", Aliases: []string{"s"}, Usage: "Fail on sentences whose heads do not form a tree"},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Number of concurrent analyses"},
			&cli.StringFlag{Name: "label", Usage: "Only docs with a label containing the string"},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Report sections: " + strings.Join(render.SupportedFormats(), ", "),
			},
		},
		Action: func(c *cli.Context) error {
			opts := AnalyzeOptions{
				JSON:    c.Bool("json"),
				Indent:  c.Bool("indent"),
				Workers: e.cfg.Workers,
				Label:   c.String("label"),
			}
			if c.IsSet("workers") {
				opts.Workers = c.Int("workers")
			}
			if c.Bool("strict") {
				e.cfg.Strict = true
			}
			if c.IsSet("format") {
				f := c.String("format")
				if !slices.Contains(render.SupportedFormats(), f) {
					return fmt.Errorf("allowed formats are %s", strings.Join(render.SupportedFormats(), ", "))
				}
				e.cfg.Format = f
			}

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

			ex, err := e.extractor()
			if err != nil {
				return err
			}
			return analyzeCommand(c.Context, repo, ex, e.renderer(), opts, e.logger, e.ui)
		},
	}
}

func analyzeCommand(ctx context.Context, repo storage.DocReader, ex *extract.Extractor, r *render.Renderer, opts AnalyzeOptions, logger *zap.Logger, ui UI) error {
	sentences, err := selectSentences(repo, r, opts)
	if err != nil {
		return err
	}

	logger.Debug("analyzing", zap.Int("sentences", len(sentences)), zap.Int("workers", opts.Workers))

	analyses, err := ex.AnalyzeAll(ctx, sentences, opts.Workers)
	if err != nil {
		return err
	}

	if opts.JSON {
		jr := render.NewJSONRenderer(ui.Out)
		jr.Indent = opts.Indent
		return jr.Render(analyses)
	}

	for _, a := range analyses {
		r.Analysis(a)
	}

	return nil
}

// selectSentences returns the sentences of the target, or of all docs
// matching the label.
func selectSentences(repo storage.DocReader, r *render.Renderer, opts AnalyzeOptions) ([]sent.Sentence, error) {
	if opts.Target != nil {
		doc, sentences, err := opts.Target.sentences(repo)
		if err != nil {
			return nil, err
		}
		r.AddDocName(doc.Id, doc.Title)
		return sentences, nil
	}

	docs, err := repo.List(opts.Label)
	if err != nil {
		return nil, err
	}

	var sentences []sent.Sentence
	for _, d := range docs {
		doc, err := repo.Read(d.Id)
		if err != nil {
			return nil, err
		}
		r.AddDocName(doc.Id, doc.Title)
		sentences = append(sentences, doc.Sentences...)
	}

	return sentences, nil
}
