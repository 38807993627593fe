package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/phrasal/storage"
)

type LsLabelsOptions struct {
	Match string
}

func lsLabelsCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "labels",
		Usage:     "List the doc labels",
		ArgsUsage: "[match]",
		Action: func(c *cli.Context) error {
			repo, err := e.repo()
			if err != nil {
				return err
			}
			return lsLabelsCommand(repo, LsLabelsOptions{Match: c.Args().First()}, e.ui)
		},
	}
}

func lsLabelsCommand(repo storage.DocReader, opts LsLabelsOptions, ui UI) error {
	labels, err := repo.Labels(opts.Match)
	if err != nil {
		return err
	}

	if len(labels) > 0 {
		fmt.Fprintln(ui.Out, strings.Join(labels, ", "))
	}

	return nil
}
