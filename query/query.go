package query

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"go.uber.org/zap"

	"github.com/revelaction/phrasal/extract"
	"github.com/revelaction/phrasal/render"
	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/storage"
)

const (
	// aspectPrefix is the Character in the prompt that prefixes an aspect
	// search
	aspectPrefix = "/"

	quit = "quit"
)

// Handler runs an interactive prompt over the docs of a repository.
//
// The input is one of:
//
//	<doc title>               analyze every sentence of the doc
//	<doc title> <sentence id> analyze one sentence
//	/<aspect>                 show the sentiment of an aspect in all docs
type Handler struct {
	DocRepo   storage.DocReader
	Extractor *extract.Extractor
	Renderer  *render.Renderer
	Logger    *zap.Logger

	titles  map[string]int
	aspects []string
}

func NewHandler(dr storage.DocReader, e *extract.Extractor, r *render.Renderer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		DocRepo:   dr,
		Extractor: e,
		Renderer:  r,
		Logger:    logger.Named("query"),
	}
}

// Load reads the doc titles and the aspects used by the completer.
func (h *Handler) Load() error {
	docs, err := h.DocRepo.List("")
	if err != nil {
		return err
	}

	h.titles = make(map[string]int, len(docs))
	seen := map[string]bool{}
	for _, d := range docs {
		h.titles[d.Title] = d.Id
		h.Renderer.AddDocName(d.Id, d.Title)

		doc, err := h.DocRepo.Read(d.Id)
		if err != nil {
			return err
		}
		for _, s := range doc.Sentences {
			for _, a := range h.Extractor.Aspects(sent.NewTree(s)) {
				seen[a.Aspect] = true
			}
		}
	}

	h.aspects = make([]string, 0, len(seen))
	for a := range seen {
		h.aspects = append(h.aspects, a)
	}
	sort.Strings(h.aspects)

	return nil
}

func (h *Handler) Run() error {
	if err := h.Load(); err != nil {
		return err
	}

	fmt.Fprintln(h.Renderer.W, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", h.completer,
			prompt.OptionTitle("phrasal query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Renderer.W, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintln(h.Renderer.W, "Prefix set to "+fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		if strings.TrimSpace(in) == quit {
			return nil
		}

		history = append(history, in)
		if err := h.Handle(in); err != nil {
			fmt.Fprintf(h.Renderer.W, "Error: %v\n", err)
		}
	}
}

// Handle runs one line of input.
func (h *Handler) Handle(in string) error {
	c, err := h.parse(in)
	if err != nil {
		return err
	}

	if c.aspect != "" {
		return h.aspect(c.aspect)
	}

	doc, err := h.DocRepo.Read(c.docId)
	if err != nil {
		return err
	}

	found := false
	for _, s := range doc.Sentences {
		if c.sentenceId >= 0 && s.Id != c.sentenceId {
			continue
		}
		found = true

		a, err := h.Extractor.AnalyzeSentence(s)
		if err != nil {
			h.Logger.Warn("skipping sentence", zap.Int("sentence", s.Id), zap.Error(err))
			continue
		}
		h.Renderer.Analysis(a)
	}

	if !found && c.sentenceId >= 0 {
		return fmt.Errorf("sentence %d not found in doc %d", c.sentenceId, c.docId)
	}

	return nil
}

// aspect writes every occurrence of the aspect in the docs.
func (h *Handler) aspect(name string) error {
	docs, err := h.DocRepo.List("")
	if err != nil {
		return err
	}

	for _, d := range docs {
		doc, err := h.DocRepo.Read(d.Id)
		if err != nil {
			return err
		}

		for _, s := range doc.Sentences {
			for _, as := range h.Extractor.Aspects(sent.NewTree(s)) {
				if as.Aspect != name {
					continue
				}
				prefix := ""
				if h.Renderer.HasPrefix {
					prefix = fmt.Sprintf("[%s %2d %5d] ", d.Title, d.Id, s.Id)
				}
				fmt.Fprintf(h.Renderer.W, "%s%-30s %.3f %.3f\n", prefix, as.Phrase, as.Polarity, as.Subjectivity)
			}
		}
	}

	return nil
}

type command struct {
	docId      int
	sentenceId int
	aspect     string
}

func (h *Handler) parse(in string) (command, error) {
	c := command{sentenceId: -1}

	tokens := strings.Fields(in)
	if len(tokens) == 0 {
		return c, errors.New("No doc given")
	}

	if strings.HasPrefix(tokens[0], aspectPrefix) {
		c.aspect = strings.TrimPrefix(tokens[0], aspectPrefix)
		if c.aspect == "" {
			return c, errors.New("No aspect given")
		}
		return c, nil
	}

	id, ok := h.titles[tokens[0]]
	if !ok {
		return c, fmt.Errorf("Unknown doc %q", tokens[0])
	}
	c.docId = id

	if len(tokens) > 1 {
		sid, err := strconv.Atoi(tokens[1])
		if err != nil || sid < 0 {
			return c, fmt.Errorf("Invalid sentence id %q", tokens[1])
		}
		c.sentenceId = sid
	}

	return c, nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{}
	befCursor := in.TextBeforeCursor()

	// Only one character in line
	if "" == befCursor {
		return s
	}

	tokens := strings.Split(befCursor, " ")
	if len(tokens) > 1 {
		return s
	}

	token := tokens[0]
	if strings.HasPrefix(token, aspectPrefix) {
		return h.completeAspect(strings.TrimPrefix(token, aspectPrefix))
	}

	return h.completeTitle(token)
}

func (h *Handler) completeTitle(token string) (s []prompt.Suggest) {
	titles := make([]string, 0, len(h.titles))
	for t := range h.titles {
		titles = append(titles, t)
	}
	sort.Strings(titles)

	for _, t := range titles {
		if strings.HasPrefix(t, token) {
			s = append(s, prompt.Suggest{Text: t, Description: "📄 doc"})
		}
	}

	return s
}

func (h *Handler) completeAspect(token string) (s []prompt.Suggest) {
	for _, a := range h.aspects {
		if strings.HasPrefix(a, token) {
			s = append(s, prompt.Suggest{Text: aspectPrefix + a, Description: "🔖 aspect"})
		}
	}

	return s
}
