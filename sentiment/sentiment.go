package sentiment

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gonum/floats"
)

//go:embed lexicon/en.tsv
var defaultLexicon string

// Sentiment is the polarity and subjectivity of a text.
//
// Polarity is in [-1, 1], negative values are negative valence. Subjectivity
// is in [0, 1], from factual to opinionated.
type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// Scorer gives a sentiment to a phrase. Implementations must be pure: same
// text, same sentiment, and safe for concurrent use. The empty text scores
// zero.
type Scorer interface {
	Score(text string) Sentiment
}

// Entry is the lexicon information of a word.
type Entry struct {
	Polarity     float64
	Subjectivity float64

	// Intensity is not zero for degree adverbs (very, really, too). They
	// multiply the scores of the next lexicon word.
	Intensity float64
}

// negationFactor scales the polarity of a negated word: "not good" is mildly
// negative, not the opposite of good.
const negationFactor = -0.5

var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"nor":     true,
	"neither": true,
	"without": true,
}

// Analyzer is a lexicon based Scorer. Each word of the lexicon found in the
// text is an assessment; the sentiment is the mean of the assessments.
type Analyzer struct {
	Lexicon map[string]Entry
}

var _ Scorer = (*Analyzer)(nil)

// NewAnalyzer returns an Analyzer with the embedded english lexicon.
func NewAnalyzer() (*Analyzer, error) {
	lex, err := ParseLexicon(strings.NewReader(defaultLexicon))
	if err != nil {
		return nil, err
	}
	return &Analyzer{Lexicon: lex}, nil
}

// NewAnalyzerFromFile returns an Analyzer with the lexicon at path.
func NewAnalyzerFromFile(path string) (*Analyzer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lex, err := ParseLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return &Analyzer{Lexicon: lex}, nil
}

// ParseLexicon reads tab separated lines `word polarity subjectivity
// [intensity]`. Empty lines and lines starting with # are ignored.
func ParseLexicon(r io.Reader) (map[string]Entry, error) {
	lex := map[string]Entry{}
	scan := bufio.NewScanner(r)
	line := 0
	for scan.Scan() {
		line++
		text := strings.TrimSpace(scan.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		parts := strings.Split(text, "\t")
		if len(parts) < 3 || len(parts) > 4 {
			return nil, fmt.Errorf("line %d: expected 3 or 4 fields, got %d", line, len(parts))
		}

		values := make([]float64, 3)
		for i, p := range parts[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			values[i] = v
		}

		lex[strings.ToLower(parts[0])] = Entry{
			Polarity:     values[0],
			Subjectivity: values[1],
			Intensity:    values[2],
		}
	}

	if err := scan.Err(); err != nil {
		return nil, err
	}

	return lex, nil
}

// Score returns the mean polarity and subjectivity of the lexicon words of
// text, rounded to 3 decimals.
//
// A negation only reaches the next lexicon word, optionally after degree
// adverbs ("not very good"). Any other word or clause punctuation ends it.
func (a *Analyzer) Score(text string) Sentiment {
	var polarities, subjectivities []float64

	for _, clause := range clauses(text) {
		words := Words(clause)
		negated := false
		multiplier := 1.0

		for i, w := range words {
			if isNegation(w) {
				negated = true
				continue
			}

			e, ok := a.Lexicon[w]
			if !ok {
				negated = false
				multiplier = 1.0
				continue
			}

			if e.Intensity != 0 {
				if i+1 < len(words) && a.known(words[i+1]) {
					multiplier *= e.Intensity
					continue
				}
				// a trailing degree adverb without valence says nothing
				if e.Polarity == 0 && e.Subjectivity == 0 {
					continue
				}
			}

			p := e.Polarity * multiplier
			s := e.Subjectivity * multiplier
			if negated {
				p *= negationFactor
			}

			polarities = append(polarities, p)
			subjectivities = append(subjectivities, s)
			negated = false
			multiplier = 1.0
		}
	}

	if len(polarities) == 0 {
		return Sentiment{}
	}

	n := float64(len(polarities))
	return Sentiment{
		Polarity:     floats.Round(clamp(floats.Sum(polarities)/n, -1, 1), 3),
		Subjectivity: floats.Round(clamp(floats.Sum(subjectivities)/n, 0, 1), 3),
	}
}

// clauses splits text at clause punctuation.
func clauses(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(",;:.!?", r)
	})
}

func (a *Analyzer) known(w string) bool {
	_, ok := a.Lexicon[w]
	return ok
}

func isNegation(w string) bool {
	return negations[w] || strings.HasSuffix(w, "n't")
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

const (
	Positive = "positive"
	Negative = "negative"
	Neutral  = "neutral"
)

// Strength classes of a sentiment, see Strength.
const (
	Weak     = "weak"
	Moderate = "moderate"
	Strong   = "strong"
)

// Confidence is the absolute polarity weighted by subjectivity, in [0, 1]:
// opinionated texts with a clear valence score high.
func Confidence(s Sentiment) float64 {
	return floats.Round(math.Abs(s.Polarity)*(1+s.Subjectivity)/2, 3)
}

// Strength classifies the absolute polarity: weak below 0.3, moderate below
// 0.6, strong otherwise.
func Strength(s Sentiment) string {
	p := math.Abs(s.Polarity)
	switch {
	case p < 0.3:
		return Weak
	case p < 0.6:
		return Moderate
	default:
		return Strong
	}
}

// Label classifies a sentiment by the sign of its polarity.
func Label(s Sentiment) string {
	switch {
	case s.Polarity > 0:
		return Positive
	case s.Polarity < 0:
		return Negative
	default:
		return Neutral
	}
}
