package main

import (
	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/phrasal/query"
	"github.com/revelaction/phrasal/storage"
)

func queryCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Analyze docs and aspects in an interactive prompt",
		Action: func(c *cli.Context) error {
			repo, err := e.repo()
			if err != nil {
				return err
			}

			if p, ok := repo.(storage.Preloader); ok {
				if err := preload(p); err != nil {
					return err
				}
			}

			ex, err := e.extractor()
			if err != nil {
				return err
			}

			// now present the REPL
			h := query.NewHandler(repo, ex, e.renderer(), e.logger)
			return h.Run()
		},
	}
}

// preload loads the docs into memory showing a progress bar.
func preload(p storage.Preloader) error {
	uiprogress.Start()
	defer uiprogress.Stop()

	bar := uiprogress.AddBar(1) // Placeholder, updated in callback
	bar.AppendCompleted()
	bar.PrependElapsed()

	var currentName string
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return currentName
	})

	return p.Preload(func(current, total int, name string) {
		if bar.Total <= 1 {
			bar.Total = total
			bar.Set(0)
		}
		currentName = name
		bar.Set(current)
	})
}
