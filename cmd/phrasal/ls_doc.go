package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/phrasal/storage"
)

type LsDocOptions struct {
	Label string
}

func lsDocCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "ls",
		Usage: "List the docs",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "label", Usage: "Only docs with a label containing the string"},
		},
		Action: func(c *cli.Context) error {
			repo, err := e.repo()
			if err != nil {
				return err
			}
			return lsDocCommand(repo, LsDocOptions{Label: c.String("label")}, e.ui)
		},
	}
}

func lsDocCommand(repo storage.DocReader, opts LsDocOptions, ui UI) error {
	docs, err := repo.List(opts.Label)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Fprintf(ui.Out, "📖 %d %s\n", doc.Id, doc.Title)
	}

	return nil
}
