package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/revelaction/phrasal/config"
	"github.com/revelaction/phrasal/extract"
	"github.com/revelaction/phrasal/render"
	"github.com/revelaction/phrasal/sentiment"
	"github.com/revelaction/phrasal/storage"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).RunContext(context.Background(), os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "phrasal: %v\n", err)
}

// env is the state shared by the commands of one run, built from the config
// file, the environment and the global flags.
type env struct {
	ui     UI
	cfg    *config.Config
	logger *zap.Logger
	pool   Pool
}

func newApp(ui UI) *cli.App {
	e := &env{ui: ui, logger: zap.NewNop()}

	return &cli.App{
		Name:                 "phrasal",
		Usage:                "extract key phrases, aspect sentiments and opinions from parsed sentences",
		Version:              version(),
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file",
				EnvVars: []string{"PHRASAL_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "doc-path",
				Aliases: []string{"d"},
				Usage:   "Path to docs directory or SQLite file",
			},
			&cli.StringFlag{
				Name:    "lexicon",
				Aliases: []string{"l"},
				Usage:   "Sentiment lexicon file replacing the embedded one",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&cli.BoolFlag{
				Name:  "prefix",
				Usage: "Prefix each analysis with doc and sentence ids",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log at debug level",
			},
		},
		Before: e.before,
		After:  e.after,
		Commands: []*cli.Command{
			lsDocCmd(e),
			lsLabelsCmd(e),
			sentenceCmd(e),
			phrasesCmd(e),
			aspectsCmd(e),
			opinionsCmd(e),
			analyzeCmd(e),
			scoreCmd(e),
			statCmd(e),
			importDocCmd(e),
			queryCmd(e),
			bashCmd(e),
		},
	}
}

func (e *env) before(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	if c.IsSet("doc-path") {
		cfg.DocPath = c.String("doc-path")
	}
	if c.IsSet("lexicon") {
		cfg.Lexicon = c.String("lexicon")
	}
	if c.Bool("no-color") {
		cfg.NoColor = true
	}
	if c.Bool("prefix") {
		cfg.Prefix = true
	}
	if c.Bool("verbose") {
		cfg.LogLevel = zapcore.DebugLevel.String()
	}

	e.cfg = cfg
	e.logger = newLogger(e.ui.Err, cfg.Level())
	return nil
}

func (e *env) after(c *cli.Context) error {
	_ = e.logger.Sync()
	return e.pool.Close()
}

// newLogger writes development style console logs to w.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core).Named("phrasal")
}

// repo opens the doc repository of the configured doc path.
func (e *env) repo() (storage.DocRepository, error) {
	if e.cfg.DocPath == "" {
		return nil, errors.New("Doc path must be specified via -d or PHRASAL_DOC_PATH")
	}
	return NewDocRepository(&e.pool, e.cfg.DocPath)
}

func (e *env) analyzer() (*sentiment.Analyzer, error) {
	if e.cfg.Lexicon != "" {
		return sentiment.NewAnalyzerFromFile(e.cfg.Lexicon)
	}
	return sentiment.NewAnalyzer()
}

func (e *env) extractor() (*extract.Extractor, error) {
	a, err := e.analyzer()
	if err != nil {
		return nil, err
	}

	ex := extract.New(a, e.logger)
	ex.Strict = e.cfg.Strict
	return ex, nil
}

func (e *env) renderer() *render.Renderer {
	r := render.NewRenderer(e.ui.Out)
	r.HasColor = !e.cfg.NoColor && isTerminal(e.ui.Out)
	r.HasPrefix = e.cfg.Prefix
	r.Format = e.cfg.Format
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
