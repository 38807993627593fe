package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/phrasal/extract"
	"github.com/revelaction/phrasal/render"
	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/storage"
)

func opinionsCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "opinions",
		Usage:     "Show the adjectival modifier opinions of a doc or a sentence",
		ArgsUsage: "<docId> [sentenceId]",
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
			return opinionsCommand(repo, ex, e.renderer(), t, e.ui)
		},
	}
}

func opinionsCommand(repo storage.DocReader, ex *extract.Extractor, r *render.Renderer, t target, ui UI) error {
	_, sentences, err := t.sentences(repo)
	if err != nil {
		return err
	}

	for _, s := range sentences {
		opinions := ex.Opinions(sent.NewTree(s))
		if len(opinions) == 0 {
			continue
		}

		r.Sentence(s.Tokens, opinionTokens(s), fmt.Sprintf("✍  %d-%d ", t.DocId, s.Id))
		r.Opinions(opinions)
	}

	return nil
}

// opinionTokens are the adjectives of s in an amod relation.
func opinionTokens(s sent.Sentence) []sent.Token {
	var out []sent.Token
	for _, t := range s.Tokens {
		if t.Pos == sent.PosAdj && t.Dep == sent.DepAmod {
			out = append(out, t)
		}
	}
	return out
}
