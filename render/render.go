package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/revelaction/phrasal/extract"
	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/sentiment"
)

const (
	ruleWidth     = 80
	Defaultformat = "all"
)

// ANSI colors
var (
	Red       = "\033[1;31m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

// SupportedFormats are the sections an analysis report can be limited to.
func SupportedFormats() []string {
	return []string{"all", "phrases", "aspects", "opinions"}
}

type Renderer struct {
	W io.Writer

	HasColor bool

	HasPrefix bool

	// Format determines the sections of an analysis report
	//
	// all: every section
	// phrases: key phrases and noun phrases with their scores
	// aspects: aspect sentiments
	// opinions: opinion patterns
	Format string

	DocNames map[int]string
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w, Format: Defaultformat, DocNames: map[int]string{}}
}

func (r *Renderer) AddDocName(docId int, name string) {
	r.DocNames[docId] = name
}

// Sentence writes the text of the tokens. Tokens in marks are highlighted.
func (r *Renderer) Sentence(tokens []sent.Token, marks []sent.Token, prefix string) {
	fmt.Fprintf(r.W, "%s%s\n", prefix, r.sentence(tokens, marks))
}

// SentenceString returns the text of the tokens with marks highlighted.
func (r *Renderer) SentenceString(tokens []sent.Token, marks []sent.Token) string {
	return r.sentence(tokens, marks)
}

func (r *Renderer) sentence(tokens, marks []sent.Token) string {
	if !r.HasColor || len(marks) == 0 {
		return sent.Text(tokens)
	}

	var str strings.Builder
	var lastIdx, lastLen int
	for i, token := range tokens {
		l := len([]rune(token.Text))
		if i == 0 {
			str.WriteString(colorToken(token, marks))
			lastIdx = token.Idx
			lastLen = l
			continue
		}

		// parts of a multi token word share `idx` and are written once.
		diff := token.Idx - lastIdx
		if diff > 0 {
			if gap := diff - lastLen; gap > 0 {
				str.WriteString(strings.Repeat(" ", gap))
			}
			str.WriteString(colorToken(token, marks))
		}

		lastIdx = token.Idx
		lastLen = l
	}

	return strings.ReplaceAll(str.String(), "\n", " ")
}

// Analysis writes the report of one analyzed sentence, limited to the
// sections of the current Format.
func (r *Renderer) Analysis(a extract.Analysis) {
	fmt.Fprintf(r.W, "%sText: %s\n", r.prefix(a), a.Text)
	fmt.Fprintf(r.W, "Sentiment: %s (polarity %s, subjectivity %.3f)\n",
		strings.ToUpper(sentiment.Label(a.Sentiment)), r.polarity(a.Sentiment), a.Sentiment.Subjectivity)
	fmt.Fprintf(r.W, "Confidence: %.3f (%s)\n", sentiment.Confidence(a.Sentiment), sentiment.Strength(a.Sentiment))
	fmt.Fprintln(r.W, strings.Repeat("-", ruleWidth))

	if r.shows("phrases") {
		fmt.Fprintln(r.W, "\nKey Phrase Analysis:")
		r.phraseSentiments(a.KeyPhrases)

		fmt.Fprintln(r.W, "\nNoun Phrase Analysis:")
		r.phraseSentiments(a.NounPhrases)
	}

	if r.shows("aspects") {
		fmt.Fprintln(r.W, "\nAspect Sentiments:")
		r.Aspects(a.Aspects)
	}

	if r.shows("opinions") {
		fmt.Fprintln(r.W, "\nOpinion Patterns:")
		r.Opinions(a.Opinions)
	}

	fmt.Fprintln(r.W, "\n"+strings.Repeat("=", ruleWidth))
}

func (r *Renderer) shows(section string) bool {
	return r.Format == "" || r.Format == "all" || r.Format == section
}

func (r *Renderer) phraseSentiments(phrases []extract.PhraseSentiment) {
	for _, p := range phrases {
		fmt.Fprintf(r.W, "\nPhrase: %s\n", p.Phrase)
		fmt.Fprintf(r.W, "Sentiment: %s\n", r.polarity(p.Sentiment))
		fmt.Fprintf(r.W, "Subjectivity: %.3f\n", p.Subjectivity)
	}
}

// Phrases writes the unscored key phrases and noun phrases.
func (r *Renderer) Phrases(p extract.Phrases) {
	fmt.Fprintln(r.W, "Key Phrases:")
	for _, k := range p.KeyPhrases {
		fmt.Fprintf(r.W, "  %s\n", k)
	}

	fmt.Fprintln(r.W, "Noun Phrases:")
	for _, n := range p.NounPhrases {
		fmt.Fprintf(r.W, "  %s\n", n)
	}
}

// Aspects writes one line per aspect, sorted by aspect.
func (r *Renderer) Aspects(aspects map[string]extract.AspectSentiment) {
	keys := make([]string, 0, len(aspects))
	for k := range aspects {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		as := aspects[k]
		fmt.Fprintf(r.W, "  %-15s %-30s %s %.3f\n", k, as.Phrase, r.polarity(as.Sentiment), as.Subjectivity)
	}
}

func (r *Renderer) Opinions(opinions []extract.Opinion) {
	for _, o := range opinions {
		pattern := o.Pattern
		if r.HasColor {
			pattern = Yellow256 + pattern + Off
		}
		fmt.Fprintf(r.W, "  %s\n", pattern)
	}
}

// Tokens writes the part of speech and the dependency tables of s.
func (r *Renderer) Tokens(s sent.Sentence) {
	rule := strings.Repeat("-", ruleWidth)

	fmt.Fprintln(r.W, "Part of Speech (POS) Analysis:")
	fmt.Fprintln(r.W, rule)
	fmt.Fprintf(r.W, "%-15s %-10s %-10s %s\n", "Token", "POS", "Tag", "Explanation")
	fmt.Fprintln(r.W, rule)
	for _, t := range s.Tokens {
		fmt.Fprintf(r.W, "%-15s %-10s %-10s %s\n", t.Text, t.Pos, t.Tag, sent.Explain(t.Pos))
	}

	fmt.Fprintln(r.W, "\nDependency Parsing Analysis:")
	fmt.Fprintln(r.W, rule)
	fmt.Fprintf(r.W, "%-15s %-15s %-15s %s\n", "Token", "Dependency", "Head", "Explanation")
	fmt.Fprintln(r.W, rule)
	for _, t := range s.Tokens {
		head := ""
		if t.Head >= 0 && t.Head < len(s.Tokens) {
			head = s.Tokens[t.Head].Text
		}
		fmt.Fprintf(r.W, "%-15s %-15s %-15s %s\n", t.Text, t.Dep, head, sent.Explain(t.Dep))
	}
}

// polarity formats the polarity score, colored by its label.
func (r *Renderer) polarity(s sentiment.Sentiment) string {
	score := fmt.Sprintf("%.3f", s.Polarity)
	if !r.HasColor {
		return score
	}

	switch sentiment.Label(s) {
	case sentiment.Positive:
		return Green256 + score + Off
	case sentiment.Negative:
		return Red + score + Off
	}
	return Grey256 + score + Off
}

func (r *Renderer) prefix(a extract.Analysis) string {
	if !r.HasPrefix {
		return ""
	}

	return fmt.Sprintf("[%s %2d %5d] ✍  ", r.title(a.DocId), a.DocId, a.SentenceId)
}

func colorToken(token sent.Token, marks []sent.Token) string {
	for _, mt := range marks {
		if mt.Index == token.Index {
			return Green256 + token.Text + Off
		}
	}

	return token.Text
}

func (r *Renderer) title(docId int) string {
	title := []rune(r.DocNames[docId])
	var part string
	if len(title) <= 20 {
		part = fmt.Sprintf("%-20s", string(title))
	} else {
		part = string(title[:20])
	}

	if !r.HasColor {
		return part
	}
	return Grey256 + part + Off
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}
