package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/phrasal/extract"
	"github.com/revelaction/phrasal/render"
	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/storage"
)

func phrasesCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "phrases",
		Usage:     "Extract the key phrases and noun phrases of a doc or a sentence",
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
			return phrasesCommand(repo, ex, e.renderer(), t, e.ui)
		},
	}
}

func phrasesCommand(repo storage.DocReader, ex *extract.Extractor, r *render.Renderer, t target, ui UI) error {
	_, sentences, err := t.sentences(repo)
	if err != nil {
		return err
	}

	for _, s := range sentences {
		r.Sentence(s.Tokens, nil, fmt.Sprintf("✍  %d-%d ", t.DocId, s.Id))
		r.Phrases(ex.KeyPhrases(sent.NewTree(s)))
		fmt.Fprintln(ui.Out)
	}

	return nil
}
