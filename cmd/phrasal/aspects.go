package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/phrasal/extract"
	"github.com/revelaction/phrasal/render"
	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/storage"
)

type AspectsOptions struct {
	// All shows every modified occurrence of a noun, not only the last one.
	All bool
}

func aspectsCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "aspects",
		Usage:     "Show the sentiment of the nouns modified by adjectives or adverbs",
		ArgsUsage: "<docId> [sentenceId]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "Show every occurrence of a repeated noun"},
		},
		Action: func(c *cli.Context) error {
			t, err := parseTarget(c)
			if err != nil {
				return err
			}

			repo, err := e.repo()
			if err != nil {
				return err
			}

			ex, err := e.extractor()
			if err != nil {
				return err
			}
			return aspectsCommand(repo, ex, e.renderer(), AspectsOptions{All: c.Bool("all")}, t, e.ui)
		},
	}
}

func aspectsCommand(repo storage.DocReader, ex *extract.Extractor, r *render.Renderer, opts AspectsOptions, t target, ui UI) error {
	_, sentences, err := t.sentences(repo)
	if err != nil {
		return err
	}

	for _, s := range sentences {
		tree := sent.NewTree(s)
		r.Sentence(s.Tokens, nil, fmt.Sprintf("✍  %d-%d ", t.DocId, s.Id))

		if !opts.All {
			r.Aspects(ex.AspectSentiments(tree))
			continue
		}

		for _, as := range ex.Aspects(tree) {
			r.Aspects(map[string]extract.AspectSentiment{as.Aspect: as})
		}
	}

	return nil
}
