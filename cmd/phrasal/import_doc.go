package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/phrasal/storage/filesystem"
	"github.com/revelaction/phrasal/storage/sqlite/zombiezen"
)

type ImportDocOptions struct {
	From string
	To   string

	// NoProgress hides the progress bar.
	NoProgress bool
}

func importDocCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import a directory of JSON docs into a SQLite file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "Directory of JSON docs", Required: true},
			&cli.StringFlag{Name: "to", Usage: "SQLite file, created if missing", Required: true},
			&cli.BoolFlag{Name: "no-progress", Usage: "Do not show the progress bar"},
		},
		Action: func(c *cli.Context) error {
			opts := ImportDocOptions{
				From:       c.String("from"),
				To:         c.String("to"),
				NoProgress: c.Bool("no-progress") || !isTerminal(e.ui.Out),
			}
			return importDocCommand(c.Context, opts, e.ui)
		},
	}
}

func importDocCommand(ctx context.Context, opts ImportDocOptions, ui UI) error {
	if opts.From == opts.To {
		return errors.New("source and destination are the same")
	}

	src, err := filesystem.NewDocStore(opts.From)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(opts.To)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateDocTables(ctx, pool); err != nil {
		return fmt.Errorf("failed to create docs table: %w", err)
	}

	dst := zombiezen.NewDocStore(pool)

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", opts.From)
	docs, err := src.List("")
	if err != nil {
		return err
	}

	var bar *uiprogress.Bar
	if !opts.NoProgress {
		uiprogress.Start()
		defer uiprogress.Stop()

		bar = uiprogress.AddBar(len(docs))
		bar.AppendCompleted()
		bar.PrependElapsed()
		bar.AppendFunc(func(b *uiprogress.Bar) string {
			if b.Current() == 0 {
				return ""
			}
			return docs[b.Current()-1].Title
		})
	}

	count := 0
	for _, docMeta := range docs {
		doc, err := src.Read(docMeta.Id)
		if err != nil {
			return fmt.Errorf("failed to read doc %s: %w", docMeta.Title, err)
		}

		if err := dst.Write(doc); err != nil {
			return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
		}
		count++
		if bar != nil {
			bar.Incr()
		}
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, opts.From, opts.To)
	return nil
}
