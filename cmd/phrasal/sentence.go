package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/phrasal/render"
	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/storage"
)

func sentenceCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "sentence",
		Usage:     "Show the tokens, part of speech and dependencies of a sentence",
		ArgsUsage: "<docId> <sentenceId>",
		Action: func(c *cli.Context) error {
			t, err := parseTarget(c)
			if err != nil {
				return err
			}
			if t.SentId == nil {
				return errors.New("sentence command needs exactly two arguments: <docId> <sentenceId>")
			}

			repo, err := e.repo()
			if err != nil {
				return err
			}
			return sentenceCommand(repo, e.renderer(), t, e.ui)
		},
	}
}

func sentenceCommand(repo storage.DocReader, r *render.Renderer, t target, ui UI) error {
	_, sentences, err := t.sentences(repo)
	if err != nil {
		return err
	}

	s := sentences[0]
	prefix := fmt.Sprintf("✍  %d-%d ", t.DocId, *t.SentId)
	r.Sentence(s.Tokens, nil, prefix)
	fmt.Fprintln(ui.Out)

	if err := sent.Validate(s); err != nil {
		fmt.Fprintf(ui.Out, "⚠  %v\n\n", err)
	}

	r.Tokens(s)
	return nil
}
