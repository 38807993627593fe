package extract

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	sent "github.com/revelaction/phrasal/sentence"
	"github.com/revelaction/phrasal/sentiment"
)

// Phrases are the phrases of one sentence.
type Phrases struct {
	// KeyPhrases has one subject-verb-object phrase per root.
	KeyPhrases []string `json:"key_phrases"`

	// NounPhrases are the noun chunks of the sentence.
	NounPhrases []string `json:"noun_phrases"`
}

// PhraseSentiment is a phrase with its score.
type PhraseSentiment struct {
	Phrase string `json:"phrase"`
	sentiment.Sentiment
}

// AspectSentiment is the sentiment of a noun (the aspect) as qualified by its
// adjective and adverb children.
type AspectSentiment struct {
	Aspect    string   `json:"aspect"`
	Modifiers []string `json:"modifiers"`
	Phrase    string   `json:"phrase"`
	sentiment.Sentiment
}

// Opinion is an adjective modifying a word through an amod relation.
type Opinion struct {
	OpinionWord string `json:"opinion_word"`
	Target      string `json:"target"`
	Pattern     string `json:"pattern"`
}

// Extractor pulls phrases, aspects and opinions out of dependency parsed
// sentences. It holds no per sentence state and is safe for concurrent use.
type Extractor struct {
	scorer sentiment.Scorer
	logger *zap.Logger

	// Strict makes AnalyzeSentence reject sentences whose heads do not form
	// a single rooted tree.
	Strict bool
}

// New returns an Extractor scoring phrases with scorer.
func New(scorer sentiment.Scorer, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		scorer: scorer,
		logger: logger.Named("extract"),
	}
}

// KeyPhrases builds a subject-verb-object phrase for each root of p and
// collects the noun chunks.
//
// For a root, the phrase is: the left children of each nsubj left child of
// the root followed by the subject, the root, and the left children of each
// dobj or pobj right child followed by the object. A root without subject or
// object gives a one word phrase.
func (e *Extractor) KeyPhrases(p sent.Parse) Phrases {
	out := Phrases{KeyPhrases: []string{}, NounPhrases: []string{}}

	for _, n := range p.Nodes() {
		if n.Dep() != sent.DepRoot {
			continue
		}

		var words []string

		for _, subj := range n.Lefts() {
			if subj.Dep() != sent.DepNsubj {
				continue
			}
			words = appendTexts(words, subj.Lefts())
			words = append(words, subj.Text())
		}

		words = append(words, n.Text())

		for _, obj := range n.Rights() {
			if obj.Dep() != sent.DepDobj && obj.Dep() != sent.DepPobj {
				continue
			}
			words = appendTexts(words, obj.Lefts())
			words = append(words, obj.Text())
		}

		out.KeyPhrases = append(out.KeyPhrases, strings.Join(words, " "))
	}

	out.NounPhrases = append(out.NounPhrases, p.NounChunks()...)

	return out
}

// Aspects returns, in sentence order, every noun modified by adjective or
// adverb children, with the phrase made of the modifiers and the noun scored.
func (e *Extractor) Aspects(p sent.Parse) []AspectSentiment {
	aspects := []AspectSentiment{}

	for _, n := range p.Nodes() {
		if n.Pos() != sent.PosNoun {
			continue
		}

		var modifiers []string
		for _, c := range n.Children() {
			if c.Pos() == sent.PosAdj || c.Pos() == sent.PosAdv {
				modifiers = append(modifiers, c.Text())
			}
		}

		if len(modifiers) == 0 {
			continue
		}

		phrase := strings.Join(modifiers, " ") + " " + n.Text()
		aspects = append(aspects, AspectSentiment{
			Aspect:    n.Text(),
			Modifiers: modifiers,
			Phrase:    phrase,
			Sentiment: e.scorer.Score(phrase),
		})
	}

	return aspects
}

// AspectSentiments maps each modified noun text to its aspect sentiment.
//
// The noun text is the key: when a noun occurs twice, the last occurrence
// wins. Use Aspects to get all of them.
func (e *Extractor) AspectSentiments(p sent.Parse) map[string]AspectSentiment {
	m := map[string]AspectSentiment{}
	for _, a := range e.Aspects(p) {
		m[a.Aspect] = a
	}
	return m
}

// Opinions returns an Opinion for every adjective attached to its head by an
// amod relation, in sentence order. Repeated opinions are kept.
func (e *Extractor) Opinions(p sent.Parse) []Opinion {
	opinions := []Opinion{}

	for _, n := range p.Nodes() {
		if n.Pos() != sent.PosAdj || n.Dep() != sent.DepAmod {
			continue
		}

		target := n.Head().Text()
		opinions = append(opinions, Opinion{
			OpinionWord: n.Text(),
			Target:      target,
			Pattern:     fmt.Sprintf("amod(%s, %s)", target, n.Text()),
		})
	}

	return opinions
}

func appendTexts(words []string, nodes []sent.Node) []string {
	for _, n := range nodes {
		words = append(words, n.Text())
	}
	return words
}
